package catalog_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-sheet/internal/catalog"
	externalmock "github.com/KirkDiggler/rpg-sheet/internal/clients/external/mock"
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
)

type ResolverTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	remote   *externalmock.MockClient
	dir      string
	resolver catalog.Resolver
	ctx      context.Context
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func (s *ResolverTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.remote = externalmock.NewMockClient(s.ctrl)
	s.dir = s.T().TempDir()
	s.ctx = context.Background()

	s.write("classes.json", `[{"name": "Artificer", "levels": [{"level": 1, "features": ["Magical Tinkering"]}]}]`)
	s.write("subclasses.json", `[
		{"name": "Oath of Devotion", "class": "Paladin"},
		{"name": "Battle Smith", "class": "Artificer"}
	]`)
	s.write("races.json", `[
		{"name": "Harengon", "speed": 30, "traits": [{"name": "Hare-Trigger", "desc": "PB to initiative."}]},
		{"name": "Dwarf", "speed": 25, "traits": ["Darkvision"], "actions": [{"name": "Stonecunning", "type": "action"}]}
	]`)
	s.write("spells.json", `[
		{"name": "Hunter's Mark", "level": 1, "casting_time": "1 bonus action", "classes": ["Ranger"]},
		{"name": "Cure Wounds", "level": 1, "classes": [{"name": "Ranger"}, {"name": "Cleric"}]},
		{"name": "Spike Growth", "level": 2, "classes": ["ranger"]}
	]`)
	s.write("equipment.json", `[{"index": "shortsword", "name": "Shortsword", "weapon_range": "Melee"}]`)

	store, err := catalog.NewStore(&catalog.StoreConfig{DataDirs: []string{s.dir}})
	s.Require().NoError(err)
	s.resolver, err = catalog.NewResolver(&catalog.ResolverConfig{
		Store:   store,
		Remote:  s.remote,
		Timeout: time.Second,
	})
	s.Require().NoError(err)
}

func (s *ResolverTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ResolverTestSuite) write(file, content string) {
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, file), []byte(content), 0o600))
}

func (s *ResolverTestSuite) TestLocalHitShortCircuits() {
	rec, ok := s.resolver.ResolveEquipment(s.ctx, " SHORTSWORD ")
	s.Require().True(ok)
	s.Equal("shortsword", rec.Index)
}

func (s *ResolverTestSuite) TestRemoteFallbackIsCachedIncludingMisses() {
	s.remote.EXPECT().GetSpell(gomock.Any(), "healing-word").
		Return(&entities.SpellRecord{Name: "Healing Word", Level: 1}, nil).Times(1)
	s.remote.EXPECT().GetSpell(gomock.Any(), "not-a-spell").
		Return(nil, errors.New("404")).Times(1)

	for range 3 {
		spell, ok := s.resolver.ResolveSpell(s.ctx, "Healing Word")
		s.Require().True(ok)
		s.Equal(1, spell.Level)

		_, ok = s.resolver.ResolveSpell(s.ctx, "Not a Spell")
		s.False(ok)
	}
}

func (s *ResolverTestSuite) TestBlockedClassNeverGoesRemote() {
	_, ok := s.resolver.ResolveClass(s.ctx, "Artificer", 3)
	s.True(ok, "local artificer still resolves")

	s.write("classes.json", `[]`)
	store, err := catalog.NewStore(&catalog.StoreConfig{DataDirs: []string{s.dir}})
	s.Require().NoError(err)
	r, err := catalog.NewResolver(&catalog.ResolverConfig{Store: store, Remote: s.remote})
	s.Require().NoError(err)

	_, ok = r.ResolveClass(s.ctx, "Artificer", 3)
	s.False(ok)
}

func (s *ResolverTestSuite) TestRemoteClassKeyedByLevel() {
	s.remote.EXPECT().GetClass(gomock.Any(), "monk", 2).
		Return(&entities.ClassRecord{Name: "Monk", Remote: true}, nil)
	s.remote.EXPECT().GetClass(gomock.Any(), "monk", 5).
		Return(&entities.ClassRecord{Name: "Monk", Remote: true}, nil)

	_, ok := s.resolver.ResolveClass(s.ctx, "Monk", 2)
	s.True(ok)
	_, ok = s.resolver.ResolveClass(s.ctx, "Monk", 5)
	s.True(ok)
	_, ok = s.resolver.ResolveClass(s.ctx, "monk", 2)
	s.True(ok)
}

func (s *ResolverTestSuite) TestRacePolicyAndAlias() {
	s.remote.EXPECT().GetRace(gomock.Any(), "elf").Return(&entities.RaceRecord{
		Index:    "elf",
		Name:     "Elf",
		Speed:    30,
		Remote:   true,
		Subraces: []entities.Reference{{Index: "high-elf", Name: "High Elf"}},
	}, nil)

	race, ok := s.resolver.ResolveRace(s.ctx, "Moon Elf")
	s.Require().True(ok)
	s.Equal("Moon Elf", race.Display)
	s.Require().NotNil(race.Subrace)
	s.Equal("High Elf", race.Subrace.Name)

	_, ok = s.resolver.ResolveRace(s.ctx, "Tabaxi")
	s.False(ok, "races outside the SRD list stay local")

	local, ok := s.resolver.ResolveRace(s.ctx, "harengon")
	s.Require().True(ok)
	s.False(local.Remote)
}

func (s *ResolverTestSuite) TestLocalRaceStubFallsBackToRemote() {
	s.remote.EXPECT().GetRace(gomock.Any(), "dwarf").Return(&entities.RaceRecord{
		Index:  "dwarf",
		Name:   "Dwarf",
		Speed:  25,
		Remote: true,
		Traits: []entities.NamedText{{Name: "Darkvision", Desc: "You can see in dim light."}},
	}, nil)

	race, ok := s.resolver.ResolveRace(s.ctx, "Dwarf")
	s.Require().True(ok)
	s.True(race.Remote)
	s.Equal("You can see in dim light.", string(race.Traits[0].Desc))
	s.Require().Len(race.Actions, 1)
	s.Equal("Stonecunning", race.Actions[0].Name)
}

func (s *ResolverTestSuite) TestSubclassMatchesClass() {
	sc, ok := s.resolver.ResolveSubclass(s.ctx, "oath of devotion", "Paladin")
	s.Require().True(ok)
	s.Equal("Devotion", sc.Badge())

	_, ok = s.resolver.ResolveSubclass(s.ctx, "Oath of Devotion", "Cleric")
	s.False(ok)
}

func (s *ResolverTestSuite) TestArmorResolution() {
	s.remote.EXPECT().GetEquipment(gomock.Any(), "chain-mail").Return(nil, errors.New("offline"))

	shield, ok := s.resolver.ResolveArmor(s.ctx, "Spiked Shield")
	s.Require().True(ok)
	s.True(shield.IsShield)
	s.Equal(2, shield.Bonus)

	chain, ok := s.resolver.ResolveArmor(s.ctx, "Chain Mail")
	s.Require().True(ok)
	s.Equal(16, chain.BaseAC)
	s.False(chain.DexBonus)
	s.True(chain.StealthDisadvantage)
}

func (s *ResolverTestSuite) TestClassSpellsMergesLocalAndRemote() {
	s.remote.EXPECT().ListClassSpells(gomock.Any(), "ranger", 1).Return([]*entities.SpellRecord{
		{Name: "Cure Wounds", Level: 1},
		{Name: "Alarm", Level: 1},
	}, nil)

	spells := s.resolver.ClassSpells(s.ctx, "Ranger", 1)

	var names []string
	for _, sp := range spells {
		names = append(names, sp.Name)
	}
	s.Equal([]string{"Alarm", "Cure Wounds", "Hunter's Mark"}, names)
}

func (s *ResolverTestSuite) TestBaseSpeed() {
	testCases := []struct {
		race      string
		wantSpeed int
		wantSrc   string
	}{
		{race: "Harengon", wantSpeed: 30, wantSrc: "Base (Harengon)"},
		{race: "Wood Elf", wantSpeed: 35, wantSrc: "Base (Wood Elf)"},
		{race: "Warforged", wantSpeed: 30, wantSrc: "Base (default)"},
	}
	for _, tc := range testCases {
		s.Run(tc.race, func() {
			speed, src := s.resolver.BaseSpeed(s.ctx, tc.race)
			s.Equal(tc.wantSpeed, speed)
			s.Equal(tc.wantSrc, src)
		})
	}
}

func (s *ResolverTestSuite) TestLocalOnlyWithoutRemote() {
	store, err := catalog.NewStore(&catalog.StoreConfig{DataDirs: []string{s.dir}})
	s.Require().NoError(err)
	r, err := catalog.NewResolver(&catalog.ResolverConfig{Store: store})
	s.Require().NoError(err)

	_, ok := r.ResolveSpell(s.ctx, "Fireball")
	s.False(ok)
	s.Len(r.ClassSpells(s.ctx, "ranger", 2), 3)
}

func (s *ResolverTestSuite) TestRaceDisplayName() {
	s.Equal("Half-Orc", catalog.RaceDisplayName("half-orc"))
	s.Equal("Moon Elf", catalog.RaceDisplayName("moon-elf"))
}
