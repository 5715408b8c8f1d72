package actions_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-sheet/internal/catalog"
	catalogmock "github.com/KirkDiggler/rpg-sheet/internal/catalog/mock"
	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/actions"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

type ActionsTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockResolver *catalogmock.MockResolver
	orchestrator actions.Service
	ctx          context.Context
}

func TestActionsSuite(t *testing.T) {
	suite.Run(t, new(ActionsTestSuite))
}

func (s *ActionsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockResolver = catalogmock.NewMockResolver(s.ctrl)
	s.ctx = context.Background()

	eng, err := engine.New(&engine.Config{})
	s.Require().NoError(err)

	o, err := actions.NewOrchestrator(&actions.Config{Resolver: s.mockResolver, Engine: eng})
	s.Require().NoError(err)
	s.orchestrator = o
}

func (s *ActionsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func names(list []entities.Action) []string {
	out := make([]string, 0, len(list))
	for _, a := range list {
		out = append(out, a.Name)
	}
	return out
}

func find(list []entities.Action, name string) *entities.Action {
	for i := range list {
		if list[i].Name == name {
			return &list[i]
		}
	}
	return nil
}

func (s *ActionsTestSuite) barbarian(level int) *entities.Character {
	return &entities.Character{
		Name:  "Ulfa",
		Class: "Barbarian",
		Race:  "Half-Orc",
		Level: level,
		Abilities: entities.AbilityScores{
			rules.Strength:     16,
			rules.Constitution: 14,
		},
	}
}

func (s *ActionsTestSuite) expectBarbarianRecords() {
	s.mockResolver.EXPECT().ResolveClass(gomock.Any(), "Barbarian", gomock.Any()).Return(&entities.ClassRecord{
		Name: "Barbarian",
		Actions: []entities.ActionRecord{
			{Name: "Rage", Desc: "Enter a rage.", Type: "bonus", Level: 1},
			{Name: "Reckless Attack", Desc: "Attack recklessly.", Type: "special", Level: 2},
			{Name: "End Rage", Desc: "Stop raging.", Type: "bonus", Condition: "isRaging"},
			{Name: "Brutal Critical", Desc: "Extra die.", Type: "special", Level: 9},
		},
	}, true)
	s.mockResolver.EXPECT().ResolveRace(gomock.Any(), "Half-Orc").Return(&catalog.ResolvedRace{
		RaceRecord: &entities.RaceRecord{
			Name: "Half-Orc",
			Actions: []entities.ActionRecord{
				{Name: "Relentless Endurance", Desc: "Drop to 1 HP instead.", Type: "reaction"},
				{Name: "Mystery", Type: "legendary"},
				{Name: "Hidden", Type: "action", Condition: "isFlying"},
			},
		},
		Display: "Half-Orc",
	}, true)
}

func (s *ActionsTestSuite) TestConfigValidation() {
	_, err := actions.NewOrchestrator(&actions.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = actions.NewOrchestrator(nil)
	s.Require().Error(err)
}

func (s *ActionsTestSuite) TestRequiresCharacter() {
	_, err := s.orchestrator.AggregateActions(s.ctx, &actions.AggregateActionsInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *ActionsTestSuite) TestUniversalThenDataDriven() {
	s.expectBarbarianRecords()

	out, err := s.orchestrator.AggregateActions(s.ctx, &actions.AggregateActionsInput{Character: s.barbarian(3)})
	s.Require().NoError(err)

	s.Equal([]string{"Two-Weapon Fighting", "Rage"}, names(out.Bonus))
	s.Equal([]string{"Opportunity Attack", "Relentless Endurance"}, names(out.Reaction))
	s.Equal("Attack", out.Action[0].Name)
	s.Nil(find(out.Action, "Reckless Attack"))
	s.Nil(find(out.Action, "Hidden"))

	attack := out.Action[0].Desc
	s.Contains(attack, "\n\nReckless Attack: Attack recklessly.")
	s.NotContains(attack, "Brutal Critical")

	s.Equal("Barbarian", find(out.Bonus, "Rage").Source)
	s.Equal("Enter a rage.", find(out.Bonus, "Rage").Desc)
}

func (s *ActionsTestSuite) TestMovementUsesStrength() {
	s.expectBarbarianRecords()

	out, err := s.orchestrator.AggregateActions(s.ctx, &actions.AggregateActionsInput{Character: s.barbarian(1)})
	s.Require().NoError(err)

	s.Equal("Move", out.Move[0].Name)
	s.Contains(find(out.Move, "Long Jump").Desc, "(16 ft)")
	s.Contains(find(out.Move, "High Jump").Desc, "(6 ft)")
}

func (s *ActionsTestSuite) TestRagingRewritesRage() {
	testCases := []struct {
		name     string
		level    int
		bonus    string
		fanatics bool
	}{
		{name: "level 3", level: 3, bonus: "+2 bonus"},
		{name: "level 9", level: 9, bonus: "+3 bonus", fanatics: true},
		{name: "level 16", level: 16, bonus: "+4 bonus", fanatics: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.expectBarbarianRecords()
			state := entities.NewSessionState("ulfa")
			state.Actions.IsRaging = true

			out, err := s.orchestrator.AggregateActions(s.ctx, &actions.AggregateActionsInput{
				Character: s.barbarian(tc.level),
				State:     state,
			})
			s.Require().NoError(err)

			rage := find(out.Bonus, "Rage")
			s.Require().NotNil(rage)
			s.True(strings.HasPrefix(rage.Desc, "You are currently raging."))
			s.Contains(rage.Desc, tc.bonus)
			s.Equal(tc.fanatics, strings.Contains(rage.Desc, "Fanatical Focus"))
			s.True(strings.HasSuffix(rage.Desc, "You can end your rage as a bonus action."))
			s.NotNil(find(out.Bonus, "End Rage"))
		})
	}
}

func (s *ActionsTestSuite) TestBreathWeaponIsTemplated() {
	c := &entities.Character{
		Name:  "Vyr",
		Class: "Sorcerer",
		Race:  "Dragonborn",
		Level: 6,
		Abilities: entities.AbilityScores{
			rules.Constitution: 14,
		},
	}
	s.mockResolver.EXPECT().ResolveClass(gomock.Any(), "Sorcerer", 6).Return(nil, false)
	s.mockResolver.EXPECT().ResolveRace(gomock.Any(), "Dragonborn").Return(&catalog.ResolvedRace{
		RaceRecord: &entities.RaceRecord{
			Name: "Dragonborn",
			Actions: []entities.ActionRecord{
				{Name: "Breath Weapon", Desc: "DC {DC}, {DMG} damage. {DC} again.", Type: "action"},
			},
		},
		Display: "Dragonborn",
	}, true)

	out, err := s.orchestrator.AggregateActions(s.ctx, &actions.AggregateActionsInput{Character: c})
	s.Require().NoError(err)

	bw := find(out.Action, "Breath Weapon")
	s.Require().NotNil(bw)
	s.Equal("DC 13, 3d6 damage. 13 again.", bw.Desc)
}

func (s *ActionsTestSuite) TestPreparedCasterBonusSpells() {
	c := &entities.Character{Name: "Mira", Class: "Cleric", Race: "Human", Level: 5}
	state := entities.NewSessionState("mira")
	state.Spells.PreparedByLevel = map[int][]string{
		2: {"Spiritual Weapon"},
		1: {"Healing Word", "Bless", "healing word"},
	}

	s.mockResolver.EXPECT().ResolveClass(gomock.Any(), "Cleric", 5).Return(nil, false)
	s.mockResolver.EXPECT().ResolveRace(gomock.Any(), "Human").Return(nil, false)
	s.mockResolver.EXPECT().ResolveSpell(gomock.Any(), "Healing Word").Return(&entities.SpellRecord{
		Name: "Healing Word", Level: 1, CastingTime: " 1 Bonus Action ", Desc: "Heal 1d4.",
	}, true)
	s.mockResolver.EXPECT().ResolveSpell(gomock.Any(), "Bless").Return(&entities.SpellRecord{
		Name: "Bless", Level: 1, CastingTime: "1 action",
	}, true)
	s.mockResolver.EXPECT().ResolveSpell(gomock.Any(), "Spiritual Weapon").Return(&entities.SpellRecord{
		Name: "Spiritual Weapon", Level: 2, CastingTime: "1 bonus action",
	}, true)

	out, err := s.orchestrator.AggregateActions(s.ctx, &actions.AggregateActionsInput{Character: c, State: state})
	s.Require().NoError(err)

	s.Equal([]string{"Two-Weapon Fighting", "Healing Word", "Spiritual Weapon"}, names(out.Bonus))
	s.Equal("Spell (Lvl 1)", out.Bonus[1].Source)
	s.Equal("Spell (Lvl 2)", out.Bonus[2].Source)
}

func (s *ActionsTestSuite) TestKnownCasterBonusSpells() {
	c := &entities.Character{
		Name:   "Lark",
		Class:  "Bard",
		Build:  "College of Lore",
		Race:   "Human",
		Level:  3,
		Spells: []string{"Healing Word", "Unknown Spell"},
	}
	s.mockResolver.EXPECT().ResolveClass(gomock.Any(), "Bard", 3).Return(nil, false)
	s.mockResolver.EXPECT().ResolveSubclass(gomock.Any(), "College of Lore", "Bard").Return(nil, false)
	s.mockResolver.EXPECT().ResolveRace(gomock.Any(), "Human").Return(nil, false)
	s.mockResolver.EXPECT().ResolveSpell(gomock.Any(), "Healing Word").Return(&entities.SpellRecord{
		Name: "Healing Word", Level: 1, CastingTime: "1 bonus action",
	}, true)
	s.mockResolver.EXPECT().ResolveSpell(gomock.Any(), "Unknown Spell").Return(nil, false)

	out, err := s.orchestrator.AggregateActions(s.ctx, &actions.AggregateActionsInput{Character: c})
	s.Require().NoError(err)
	s.Equal([]string{"Two-Weapon Fighting", "Healing Word"}, names(out.Bonus))
}

func (s *ActionsTestSuite) TestRagingDescription() {
	s.NotContains(actions.RagingDescription(5), "Fanatical Focus")
	s.Contains(actions.RagingDescription(6), "Fanatical Focus")
}
