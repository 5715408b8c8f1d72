package combat_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	catalogmock "github.com/KirkDiggler/rpg-sheet/internal/catalog/mock"
	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	enginemock "github.com/KirkDiggler/rpg-sheet/internal/engine/mock"
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/combat"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

type CombatTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockResolver *catalogmock.MockResolver
	orchestrator combat.Service
	ctx          context.Context
}

func TestCombatSuite(t *testing.T) {
	suite.Run(t, new(CombatTestSuite))
}

func (s *CombatTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockResolver = catalogmock.NewMockResolver(s.ctrl)
	s.ctx = context.Background()

	eng, err := engine.New(&engine.Config{})
	s.Require().NoError(err)

	o, err := combat.NewOrchestrator(&combat.Config{Resolver: s.mockResolver, Engine: eng})
	s.Require().NoError(err)
	s.orchestrator = o
}

func (s *CombatTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func shortsword() *entities.EquipmentRecord {
	return &entities.EquipmentRecord{
		Name:              "Shortsword",
		EquipmentCategory: entities.Reference{Index: "weapon"},
		WeaponCategory:    "Martial",
		WeaponRange:       "Melee",
		Damage:            &entities.Damage{DamageDice: "1d6", DamageType: entities.Reference{Name: "Piercing"}},
		Properties:        []entities.Reference{{Index: "finesse"}, {Index: "light"}},
	}
}

func (s *CombatTestSuite) TestConfigValidation() {
	_, err := combat.NewOrchestrator(&combat.Config{Resolver: s.mockResolver})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *CombatTestSuite) TestRequiresCharacter() {
	_, err := s.orchestrator.ComputeDerivedStats(s.ctx, &combat.ComputeDerivedStatsInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *CombatTestSuite) TestUnarmoredMonkUsesDefaultLoadout() {
	c := &entities.Character{
		Name:  "Ash",
		Class: "Monk",
		Race:  "Human",
		Level: 5,
		Abilities: entities.AbilityScores{
			rules.Dexterity: 16,
			rules.Wisdom:    14,
		},
	}
	s.mockResolver.EXPECT().ResolveEquipment(gomock.Any(), "Shortsword").Return(shortsword(), true)
	s.mockResolver.EXPECT().BaseSpeed(gomock.Any(), "Human").Return(30, "Base (Human)")

	out, err := s.orchestrator.ComputeDerivedStats(s.ctx, &combat.ComputeDerivedStatsInput{Character: c})
	s.Require().NoError(err)

	s.Equal(15, out.ArmorClass.ArmorClass)
	s.Equal("Unarmored", out.ArmorClass.Label)
	s.Equal(3, out.Initiative.Initiative)
	s.Equal(40, out.Speed.Speed)
	s.Require().NotNil(out.Spellcasting)
	s.Equal(rules.Wisdom, out.Spellcasting.Ability)

	s.Require().Len(out.Attacks, 2)
	s.Equal("Unarmed Strike", out.Attacks[0].Name)
	s.Equal("Shortsword", out.Attacks[1].Name)
	s.Equal(6, *out.Attacks[1].ToHit)
	s.Equal("1d6+3", out.Attacks[1].Damage)
	s.Equal("Unarmed Strike", out.Headline.Name)
	s.Empty(out.ActiveConditions)
}

func (s *CombatTestSuite) TestArmorShieldAndConditions() {
	c := &entities.Character{
		Name:    "Brakka",
		Class:   "Fighter",
		Race:    "Dwarf",
		Level:   1,
		Armor:   []string{"Shield", "Chain Mail", "Plate"},
		Weapons: []string{"Shortsword", "Vorpal Spoon"},
		Abilities: entities.AbilityScores{
			rules.Strength:  16,
			rules.Dexterity: 12,
		},
	}
	state := entities.NewSessionState("brakka")
	state.Conditions = []entities.ConditionKind{entities.ConditionRestrained, entities.ConditionPoisoned}

	s.mockResolver.EXPECT().ResolveArmor(gomock.Any(), "Chain Mail").Return(&entities.ArmorInfo{
		Name:   "Chain Mail",
		BaseAC: 16,
	}, true)
	s.mockResolver.EXPECT().ResolveEquipment(gomock.Any(), "Shortsword").Return(shortsword(), true)
	s.mockResolver.EXPECT().ResolveEquipment(gomock.Any(), "Vorpal Spoon").Return(nil, false)
	s.mockResolver.EXPECT().BaseSpeed(gomock.Any(), "Dwarf").Return(25, "Base (Dwarf)")

	out, err := s.orchestrator.ComputeDerivedStats(s.ctx, &combat.ComputeDerivedStatsInput{Character: c, State: state})
	s.Require().NoError(err)

	s.Equal(18, out.ArmorClass.ArmorClass)
	s.Equal("Chain Mail + Shield", out.ArmorClass.Label)
	s.Equal(0, out.Speed.Speed)
	s.Equal([]string{"Condition (Restrained): Speed is 0"}, out.Speed.Breakdown)
	s.Nil(out.Spellcasting)

	s.Require().Len(out.Attacks, 1)
	s.Equal("Poisoned", out.Attacks[0].Disadvantage)
	s.Equal("Poisoned", out.Conditions.AttackDisadvantage)
	s.Equal("Restrained", out.Conditions.SaveDisadvantage[rules.Dexterity])
	s.Equal([]entities.ConditionKind{entities.ConditionPoisoned, entities.ConditionRestrained}, out.ActiveConditions)
}

func (s *CombatTestSuite) TestUnresolvedArmorCountsAsUnarmored() {
	c := &entities.Character{Name: "Pip", Class: "Rogue", Race: "Halfling", Level: 1, Armor: []string{"Mithral Coat"}, Weapons: []string{"Dagger"}}
	s.mockResolver.EXPECT().ResolveArmor(gomock.Any(), "Mithral Coat").Return(nil, false)
	s.mockResolver.EXPECT().ResolveEquipment(gomock.Any(), "Dagger").Return(nil, false)
	s.mockResolver.EXPECT().BaseSpeed(gomock.Any(), "Halfling").Return(25, "Base (Halfling)")

	out, err := s.orchestrator.ComputeDerivedStats(s.ctx, &combat.ComputeDerivedStatsInput{Character: c})
	s.Require().NoError(err)
	s.Equal(10, out.ArmorClass.ArmorClass)
	s.Equal("Unarmored", out.ArmorClass.Label)
	s.Empty(out.Attacks)
	s.Nil(out.Headline)
}

func (s *CombatTestSuite) TestEngineErrorsAreWrapped() {
	mockEngine := enginemock.NewMockEngine(s.ctrl)
	o, err := combat.NewOrchestrator(&combat.Config{Resolver: s.mockResolver, Engine: mockEngine})
	s.Require().NoError(err)

	c := &entities.Character{Name: "Pip", Class: "Rogue", Race: "Halfling", Level: 1, Weapons: []string{"Dagger"}}
	mockEngine.EXPECT().EvaluateConditions(gomock.Any()).Return(&engine.ConditionEffects{})
	s.mockResolver.EXPECT().ResolveEquipment(gomock.Any(), "Dagger").Return(nil, false)
	s.mockResolver.EXPECT().BaseSpeed(gomock.Any(), "Halfling").Return(25, "Base (Halfling)")
	mockEngine.EXPECT().CalculateArmorClass(gomock.Any(), gomock.Any()).Return(nil, errors.Internal("boom"))

	_, err = o.ComputeDerivedStats(s.ctx, &combat.ComputeDerivedStatsInput{Character: c})
	s.Require().Error(err)
	s.Contains(err.Error(), "failed to calculate armor class")
}
