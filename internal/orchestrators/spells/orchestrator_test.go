package spells_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	catalogmock "github.com/KirkDiggler/rpg-sheet/internal/catalog/mock"
	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/spells"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

type SpellsTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockResolver *catalogmock.MockResolver
	orchestrator spells.Service
	ctx          context.Context
}

func TestSpellsSuite(t *testing.T) {
	suite.Run(t, new(SpellsTestSuite))
}

func (s *SpellsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockResolver = catalogmock.NewMockResolver(s.ctrl)
	s.ctx = context.Background()

	eng, err := engine.New(&engine.Config{})
	s.Require().NoError(err)

	o, err := spells.NewOrchestrator(&spells.Config{Resolver: s.mockResolver, Engine: eng})
	s.Require().NoError(err)
	s.orchestrator = o
}

func (s *SpellsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func entryNames(entries []spells.SpellEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

func (s *SpellsTestSuite) TestConfigValidation() {
	_, err := spells.NewOrchestrator(&spells.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *SpellsTestSuite) TestRequiresCharacter() {
	_, err := s.orchestrator.BuildSpellModel(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *SpellsTestSuite) TestClericModel() {
	c := &entities.Character{
		Name:      "Mira",
		Class:     "Cleric",
		Build:     "Life Domain",
		Race:      "Human",
		Level:     5,
		Abilities: entities.AbilityScores{rules.Wisdom: 14},
		Spells:    []string{"Guiding Bolt", "Homebrew Hex"},
	}
	state := entities.NewSessionState("mira")
	state.Spells.PreparedByLevel = map[int][]string{1: {"Guiding Bolt"}}

	s.mockResolver.EXPECT().ResolveClass(gomock.Any(), "Cleric", 5).Return(&entities.ClassRecord{
		Name: "Cleric",
		Actions: []entities.ActionRecord{
			{Name: "Turn Undead", Badge: "Channel", Level: 2, Desc: "Undead flee."},
			{Name: "Destroy Undead", Badge: "Channel", Level: 5, Desc: "Undead crumble."},
			{Name: "Divine Intervention", Badge: "Divine", Level: 10},
			{Name: "Unbadged", Level: 1},
		},
	}, true)
	s.mockResolver.EXPECT().ResolveSubclass(gomock.Any(), "Life Domain", "Cleric").Return(&entities.SubclassRecord{
		Name:                 "Life Domain",
		Class:                "Cleric",
		AlwaysPreparedSpells: entities.SpellsByLevel{"1": {"Bless", "Cure Wounds"}, "9": {"Mass Cure Wounds"}},
	}, true)
	s.mockResolver.EXPECT().ResolveSpell(gomock.Any(), "Guiding Bolt").Return(&entities.SpellRecord{Name: "Guiding Bolt", Level: 1}, true)
	s.mockResolver.EXPECT().ResolveSpell(gomock.Any(), "Homebrew Hex").Return(nil, false)
	s.mockResolver.EXPECT().ResolveSpell(gomock.Any(), "Bless").Return(&entities.SpellRecord{Name: "Bless", Level: 1}, true)
	s.mockResolver.EXPECT().ResolveSpell(gomock.Any(), "Cure Wounds").Return(&entities.SpellRecord{Name: "Cure Wounds", Level: 1}, true)
	s.mockResolver.EXPECT().ClassSpells(gomock.Any(), "Cleric", 3).Return([]*entities.SpellRecord{
		{Name: "Sacred Flame", Level: 0},
		{Name: "Bless", Level: 1},
		{Name: "Command", Level: 1},
		{Name: "Aid", Level: 2},
		{Name: "Spirit Guardians", Level: 3},
	})

	out, err := s.orchestrator.BuildSpellModel(s.ctx, &spells.BuildSpellModelInput{Character: c, State: state})
	s.Require().NoError(err)

	s.Equal(7, out.PrepLimit)
	s.Equal(0, out.KnownLimit)
	s.Equal(1, out.PreparedCount)
	s.Equal(map[int]int{1: 4, 2: 3, 3: 2}, out.Slots)
	s.Equal(1, out.Resources.ChannelDivinityMax)
	s.Require().NotNil(out.Spellcasting)
	s.Equal(13, out.Spellcasting.SaveDC)
	s.Nil(out.Infusions)

	s.Equal([]string{"Destroy Undead", "Turn Undead", "Sacred Flame"}, entryNames(out.ByLevel[0]))
	s.Equal([]string{"Bless", "Cure Wounds", "Guiding Bolt", "Command", "Homebrew Hex"}, entryNames(out.ByLevel[1]))

	bless := out.ByLevel[1][0]
	s.True(bless.Locked)
	s.True(bless.Prepared)
	s.Equal("Domain", bless.Badge)

	bolt := out.ByLevel[1][2]
	s.False(bolt.Locked)
	s.True(bolt.Prepared)
	s.Empty(bolt.Badge)

	s.Equal("Class", out.ByLevel[1][3].Badge)
	s.False(out.ByLevel[1][3].Prepared)
	s.Equal("Undead crumble.", out.ByLevel[0][0].Desc)
	s.Equal([]string{"Aid"}, entryNames(out.ByLevel[2]))
}

func (s *SpellsTestSuite) TestArtificerInfusions() {
	c := &entities.Character{
		Name:      "Tink",
		Class:     "Artificer",
		Race:      "Gnome",
		Level:     2,
		Abilities: entities.AbilityScores{rules.Intelligence: 16},
		Infusions: entities.InfusionSettings{
			Known:       []string{"Enhanced Weapon"},
			KnownLimit:  4,
			ActiveLimit: 2,
		},
	}
	active := []entities.ActiveInfusion{{Name: "Enhanced Weapon", Item: "Light Crossbow", Owner: "Tink", Bonus: 1}}

	s.mockResolver.EXPECT().ResolveClass(gomock.Any(), "Artificer", 2).Return(nil, false)
	s.mockResolver.EXPECT().ClassSpells(gomock.Any(), "Artificer", 1).Return(nil)
	s.mockResolver.EXPECT().Infusions(gomock.Any()).Return([]*entities.InfusionRecord{
		{Name: "Repeating Shot", Level: 2},
		{Name: "Boots of the Winding Path", Level: 6},
		{Name: "Enhanced Weapon", Level: 2},
	})

	out, err := s.orchestrator.BuildSpellModel(s.ctx, &spells.BuildSpellModelInput{
		Character:       c,
		ActiveInfusions: active,
	})
	s.Require().NoError(err)

	s.Equal(4, out.PrepLimit)
	s.Equal(map[int]int{1: 2}, out.Slots)
	s.Require().NotNil(out.Infusions)
	s.Len(out.Infusions.Available, 2)
	s.Equal("Enhanced Weapon", out.Infusions.Available[0].Name)
	s.Equal([]string{"Enhanced Weapon"}, out.Infusions.Known)
	s.Equal(4, out.Infusions.KnownLimit)
	s.Equal(2, out.Infusions.ActiveLimit)
	s.Equal(active, out.Infusions.Active)
}

func (s *SpellsTestSuite) TestMonkResources() {
	c := &entities.Character{Name: "Ash", Class: "Monk", Race: "Human", Level: 4}
	s.mockResolver.EXPECT().ResolveClass(gomock.Any(), "Monk", 4).Return(nil, false)

	out, err := s.orchestrator.BuildSpellModel(s.ctx, &spells.BuildSpellModelInput{Character: c})
	s.Require().NoError(err)
	s.Equal(4, out.Resources.KiMax)
	s.Empty(out.Slots)
	for _, row := range out.ByLevel {
		s.Empty(row)
	}
}

func (s *SpellsTestSuite) TestRacialSpells() {
	testCases := []struct {
		name   string
		race   string
		traits []string
		level  int
		want   []string
	}{
		{name: "not a tiefling", race: "Human", level: 5},
		{name: "infernal legacy at 1", race: "Tiefling", level: 1, want: []string{"Thaumaturgy"}},
		{
			name:  "infernal legacy at 5",
			race:  "Tiefling",
			level: 5,
			want:  []string{"Thaumaturgy", "Hellish Rebuke", "Darkness"},
		},
		{
			name:   "devil's tongue at 3",
			race:   "Variant Tiefling",
			traits: []string{"Devil's Tongue"},
			level:  3,
			want:   []string{"Vicious Mockery", "Charm Person"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			got := spells.RacialSpells(&entities.Character{Race: tc.race, Traits: tc.traits, Level: tc.level})
			if tc.want == nil {
				s.Empty(got)
				return
			}
			s.Equal(tc.want, entryNames(got))
			for _, e := range got {
				s.True(e.Locked)
				s.Equal(spells.BadgeRacial, e.Badge)
			}
		})
	}
}

func (s *SpellsTestSuite) TestDedupe() {
	got := spells.Dedupe([]spells.SpellEntry{
		{Name: "Bless", Level: 1},
		{Name: "bless", Level: 1, Badge: "Class"},
		{Name: "Bless", Level: 1, Badge: "Domain", Locked: true},
		{Name: "Bless", Level: 2},
		{Name: "Wish", Level: 10},
		{Name: " ", Level: 0},
	})
	s.Require().Len(got, 2)
	s.Equal(spells.SpellEntry{Name: "Bless", Level: 1, Badge: "Class", Locked: true}, got[0])
	s.Equal(2, got[1].Level)
}

func (s *SpellsTestSuite) TestClassAbilities() {
	class := &entities.ClassRecord{
		BonusCantrips: entities.SpellsByLevel{"1": {"Guidance"}, "6": {"Light"}},
	}
	sub := &entities.SubclassRecord{
		Actions: []entities.ActionRecord{{Name: "Warding Flare", Badge: "Light", Level: 1}},
	}

	got := spells.ClassAbilities(3, class, sub)
	s.Equal([]string{"Guidance", "Warding Flare"}, entryNames(got))
	s.Equal(spells.BadgeCantrip, got[0].Badge)
	s.Equal("Light", got[1].Badge)

	s.Empty(spells.ClassAbilities(3, nil, nil))
}
