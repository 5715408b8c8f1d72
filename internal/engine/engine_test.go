package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

type EngineTestSuite struct {
	suite.Suite
	engine engine.Engine
	ctx    context.Context
}

func (s *EngineTestSuite) SetupTest() {
	e, err := engine.New(&engine.Config{})
	s.Require().NoError(err)
	s.engine = e
	s.ctx = context.Background()
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func character(class string, level int, scores map[rules.Ability]int) *entities.Character {
	abilities := entities.AbilityScores{}
	for k, v := range scores {
		abilities[k] = v
	}
	return &entities.Character{Name: "Psalm", Class: class, Race: "Human", Level: level, Abilities: abilities}
}

func intPtr(v int) *int { return &v }

func (s *EngineTestSuite) TestNewRequiresConfig() {
	_, err := engine.New(nil)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *EngineTestSuite) TestArmorClassUnarmored() {
	monk := character("Monk", 3, map[rules.Ability]int{rules.Dexterity: 16, rules.Wisdom: 14})

	testCases := []struct {
		name      string
		input     *engine.CalculateArmorClassInput
		wantAC    int
		wantLabel string
		wantLines []string
	}{
		{
			name:      "monk unarmored defense",
			input:     &engine.CalculateArmorClassInput{Character: monk},
			wantAC:    15,
			wantLabel: "Unarmored",
			wantLines: []string{"Unarmored Defense (Monk): 10 + Dex (+3) + Wis (+2)"},
		},
		{
			name:      "monk with shield",
			input:     &engine.CalculateArmorClassInput{Character: monk, HasShield: true, ShieldItem: "Shield"},
			wantAC:    17,
			wantLabel: "Unarmored + Shield",
			wantLines: []string{"Unarmored Defense (Monk): 10 + Dex (+3) + Wis (+2)", "Shield: +2"},
		},
		{
			name: "barbarian adds con",
			input: &engine.CalculateArmorClassInput{
				Character: character("Barbarian", 1, map[rules.Ability]int{rules.Dexterity: 14, rules.Constitution: 16}),
			},
			wantAC:    15,
			wantLabel: "Unarmored",
			wantLines: []string{"Unarmored Defense (Barbarian): 10 + Dex (+2) + Con (+3)"},
		},
		{
			name: "everyone else",
			input: &engine.CalculateArmorClassInput{
				Character: character("Wizard", 1, map[rules.Ability]int{rules.Dexterity: 8}),
			},
			wantAC:    9,
			wantLabel: "Unarmored",
			wantLines: []string{"Unarmored: 10 + Dex (-1)"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.engine.CalculateArmorClass(s.ctx, tc.input)
			s.Require().NoError(err)
			s.Equal(tc.wantAC, out.ArmorClass)
			s.Equal(tc.wantLabel, out.Label)
			s.Equal(tc.wantLines, out.Breakdown)
		})
	}
}

func (s *EngineTestSuite) TestArmorClassWithArmor() {
	fighter := character("Fighter", 5, map[rules.Ability]int{rules.Dexterity: 18})

	s.Run("medium armor caps dex", func() {
		out, err := s.engine.CalculateArmorClass(s.ctx, &engine.CalculateArmorClassInput{
			Character: fighter,
			Armor:     &entities.ArmorInfo{Name: "Hide Armor", BaseAC: 12, DexBonus: true, MaxDex: intPtr(2)},
			ArmorItem: "Hide Armor",
		})
		s.Require().NoError(err)
		s.Equal(14, out.ArmorClass)
		s.Equal("Hide Armor", out.Label)
		s.Equal([]string{"Hide Armor: 12", "Dex Mod (cap 2): +2"}, out.Breakdown)
	})

	s.Run("heavy armor ignores dex", func() {
		out, err := s.engine.CalculateArmorClass(s.ctx, &engine.CalculateArmorClassInput{
			Character: fighter,
			Armor:     &entities.ArmorInfo{Name: "Chain Mail", BaseAC: 16},
			ArmorItem: "Chain Mail",
			HasShield: true,
		})
		s.Require().NoError(err)
		s.Equal(18, out.ArmorClass)
		s.Equal("Chain Mail + Shield", out.Label)
	})

	s.Run("enhanced defense infusions owned by the character", func() {
		out, err := s.engine.CalculateArmorClass(s.ctx, &engine.CalculateArmorClassInput{
			Character:  fighter,
			Armor:      &entities.ArmorInfo{Name: "Leather Armor", BaseAC: 11, DexBonus: true},
			ArmorItem:  "Leather Armor",
			HasShield:  true,
			ShieldItem: "Spiked Shield",
			Infusions: []entities.ActiveInfusion{
				{Name: "Enhanced Defense", Item: "Leather Armor", Owner: "Psalm", Bonus: 1},
				{Name: "Enhanced Defense", Item: "Spiked Shield", Owner: "Psalm", Bonus: 1},
				{Name: "Enhanced Defense", Item: "Leather Armor", Owner: "Someone Else", Bonus: 2},
			},
		})
		s.Require().NoError(err)
		s.Equal(11+4+2+1+1, out.ArmorClass)
		s.Equal([]string{
			"Leather Armor: 11",
			"Dex Mod: +4",
			"Shield: +2",
			"Infusion (Armor): +1",
			"Infusion (Shield): +1",
		}, out.Breakdown)
	})
}

func (s *EngineTestSuite) TestInitiative() {
	c := character("Bard", 5, map[rules.Ability]int{rules.Dexterity: 14, rules.Charisma: 16})
	c.Race = "Harengon"
	c.Feats = []string{"Alert"}
	c.AddChaToInitiative = true
	c.InitiativeBonus = intPtr(1)

	out, err := s.engine.CalculateInitiative(s.ctx, &engine.CalculateInitiativeInput{Character: c})
	s.Require().NoError(err)
	s.Equal(2+5+3+1+3, out.Initiative)
	s.Equal([]string{
		"Dex: +2",
		"Alert feat: +5",
		"Bonus (CHA): +3",
		"Bonus (Misc): +1",
		"Hare-Trigger (PB): +3",
	}, out.Breakdown)
}

func (s *EngineTestSuite) TestPassivePerception() {
	testCases := []struct {
		name    string
		setup   func(c *entities.Character)
		effects *engine.ConditionEffects
		want    int
	}{
		{
			name: "untrained",
			want: 12,
		},
		{
			name:  "proficient from skill list",
			setup: func(c *entities.Character) { c.Proficiencies.Skills = []string{"Perception"} },
			want:  15,
		},
		{
			name: "expertise",
			setup: func(c *entities.Character) {
				c.SkillLevels = map[string]entities.ProficiencyLevel{"Perception": entities.ProficiencyExpertise}
			},
			want: 18,
		},
		{
			name:  "jack of all trades floors half proficiency",
			setup: func(c *entities.Character) { c.Features = []string{"Jack of All Trades"} },
			want:  13,
		},
		{
			name: "observant and bonus field",
			setup: func(c *entities.Character) {
				c.Feats = []string{"Observant"}
				c.BonusPassivePerception = 1
			},
			want: 18,
		},
		{
			name:    "blinded penalty",
			effects: &engine.ConditionEffects{PassivePerceptionPenalty: -5},
			want:    7,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c := character("Bard", 5, map[rules.Ability]int{rules.Wisdom: 14})
			if tc.setup != nil {
				tc.setup(c)
			}
			out, err := s.engine.CalculatePassivePerception(s.ctx, &engine.CalculatePassivePerceptionInput{
				Character: c,
				Effects:   tc.effects,
			})
			s.Require().NoError(err)
			s.Equal(tc.want, out.PassivePerception)
		})
	}
}

func (s *EngineTestSuite) TestPassivePerceptionBreakdownNamesPenalty() {
	c := character("Rogue", 1, map[rules.Ability]int{rules.Wisdom: 12})
	out, err := s.engine.CalculatePassivePerception(s.ctx, &engine.CalculatePassivePerceptionInput{
		Character: c,
		Effects:   engine.EvaluateConditions([]entities.ConditionKind{entities.ConditionBlinded}),
	})
	s.Require().NoError(err)
	s.Equal([]string{"Base: 10", "Perception Bonus: +1", "Condition Penalty: -5"}, out.Breakdown)
}

func (s *EngineTestSuite) TestSpellcasting() {
	s.Run("cleric casts with wisdom", func() {
		c := character("Cleric", 5, map[rules.Ability]int{rules.Wisdom: 16})
		c.SpellSaveDCMod = 1
		out, err := s.engine.CalculateSpellcasting(s.ctx, &engine.CalculateSpellcastingInput{Character: c})
		s.Require().NoError(err)
		s.Require().NotNil(out.Spellcasting)
		s.Equal(rules.Wisdom, out.Spellcasting.Ability)
		s.Equal(15, out.Spellcasting.SaveDC)
		s.Equal(6, out.Spellcasting.AttackBonus)
		s.Equal("8 + PB (3) + WIS mod (+3) + Bonus (+1)", out.Spellcasting.SaveBreakdown)
	})

	s.Run("tiefling barbarian casts with charisma", func() {
		c := character("Barbarian", 1, map[rules.Ability]int{rules.Charisma: 12})
		c.Race = "Tiefling"
		out, err := s.engine.CalculateSpellcasting(s.ctx, &engine.CalculateSpellcastingInput{Character: c})
		s.Require().NoError(err)
		s.Require().NotNil(out.Spellcasting)
		s.Equal(rules.Charisma, out.Spellcasting.Ability)
		s.Equal(11, out.Spellcasting.SaveDC)
	})

	s.Run("fighter has none", func() {
		out, err := s.engine.CalculateSpellcasting(s.ctx, &engine.CalculateSpellcastingInput{
			Character: character("Fighter", 5, nil),
		})
		s.Require().NoError(err)
		s.Nil(out.Spellcasting)
	})
}

func (s *EngineTestSuite) TestSpeed() {
	monk := character("Monk", 6, nil)

	testCases := []struct {
		name      string
		input     *engine.CalculateSpeedInput
		want      int
		wantLines []string
	}{
		{
			name: "first zero-speed condition in order is named",
			input: &engine.CalculateSpeedInput{
				Character:  monk,
				Conditions: []entities.ConditionKind{entities.ConditionRestrained, entities.ConditionGrappled},
				BaseSpeed:  30,
			},
			want:      0,
			wantLines: []string{"Condition (Grappled): Speed is 0"},
		},
		{
			name:      "monk unarmored movement",
			input:     &engine.CalculateSpeedInput{Character: monk, BaseSpeed: 30, BaseSource: "Base (Human)"},
			want:      45,
			wantLines: []string{"Base (Human): 30", "Monk Unarmored Movement (lvl 6): +15"},
		},
		{
			name:      "monk with shield loses the bonus",
			input:     &engine.CalculateSpeedInput{Character: monk, BaseSpeed: 30, BaseSource: "Base (default)", HasShield: true},
			want:      30,
			wantLines: []string{"Base (default): 30"},
		},
		{
			name:      "negative base clamps",
			input:     &engine.CalculateSpeedInput{Character: character("Wizard", 1, nil), BaseSpeed: -5, BaseSource: "Base"},
			want:      0,
			wantLines: []string{"Base: -5"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.engine.CalculateSpeed(s.ctx, tc.input)
			s.Require().NoError(err)
			s.Equal(tc.want, out.Speed)
			s.Equal(tc.wantLines, out.Breakdown)
		})
	}
}

func (s *EngineTestSuite) TestEvaluateConditions() {
	s.Run("poisoned and restrained", func() {
		fx := s.engine.EvaluateConditions([]entities.ConditionKind{
			entities.ConditionRestrained,
			entities.ConditionPoisoned,
		})
		s.Equal("Poisoned", fx.AttackDisadvantage)
		s.Equal("Poisoned", fx.AbilityCheckDisadvantage)
		s.Equal("Restrained", fx.SaveDisadvantage[rules.Dexterity])
		s.False(fx.Incapacitated)
	})

	s.Run("blinded penalty is flat", func() {
		fx := s.engine.EvaluateConditions([]entities.ConditionKind{entities.ConditionBlinded, entities.ConditionBlinded})
		s.Equal(-5, fx.PassivePerceptionPenalty)
		s.Equal("Blinded", fx.AttackDisadvantage)
	})

	s.Run("first auto-fail condition wins", func() {
		fx := s.engine.EvaluateConditions([]entities.ConditionKind{entities.ConditionStunned, entities.ConditionParalyzed})
		s.Equal("Paralyzed", fx.SaveAutoFail[rules.Strength])
		s.Equal("Paralyzed", fx.SaveAutoFail[rules.Dexterity])
		s.True(fx.Incapacitated)
	})

	s.Run("incapacitated alone", func() {
		fx := s.engine.EvaluateConditions([]entities.ConditionKind{entities.ConditionIncapacitated})
		s.True(fx.Incapacitated)
		s.Empty(fx.SaveAutoFail)
	})

	s.Run("none", func() {
		fx := s.engine.EvaluateConditions(nil)
		s.Empty(fx.AttackDisadvantage)
		s.Zero(fx.PassivePerceptionPenalty)
	})
}

func longsword() *entities.EquipmentRecord {
	return &entities.EquipmentRecord{
		Name:        "Longsword",
		WeaponRange: "Melee",
		Damage:      &entities.Damage{DamageDice: "1d8", DamageType: entities.Reference{Name: "Slashing"}},
		Properties:  []entities.Reference{{Index: "versatile", Name: "Versatile"}},
	}
}

func longbow() *entities.EquipmentRecord {
	return &entities.EquipmentRecord{
		Name:        "Longbow",
		WeaponRange: "Ranged",
		Damage:      &entities.Damage{DamageDice: "1d8", DamageType: entities.Reference{Name: "Piercing"}},
	}
}

func (s *EngineTestSuite) TestWeaponAttacks() {
	s.Run("strength melee", func() {
		c := character("Fighter", 5, map[rules.Ability]int{rules.Strength: 16})
		out, err := s.engine.CalculateAttacks(s.ctx, &engine.CalculateAttacksInput{
			Character: c,
			Weapons:   []*entities.EquipmentRecord{longsword()},
		})
		s.Require().NoError(err)
		s.Require().Len(out.Lines, 1)
		line := out.Lines[0]
		s.Equal(6, *line.ToHit)
		s.Equal(rules.Strength, line.Ability)
		s.Equal("Longsword: +6 to hit", line.Line1)
		s.Equal("1d8+3 slashing", line.Line2)
		s.Equal("1d8+3", line.Damage)
		s.Equal("1d8 slashing, ver", line.Tooltip)
	})

	s.Run("rage adds damage and zealot divine fury", func() {
		c := character("Barbarian", 9, map[rules.Ability]int{rules.Strength: 18})
		c.Build = "Path of the Zealot"
		state := entities.NewSessionState("psalm")
		state.Actions.IsRaging = true
		out, err := s.engine.CalculateAttacks(s.ctx, &engine.CalculateAttacksInput{
			Character: c,
			State:     state,
			Weapons:   []*entities.EquipmentRecord{longsword()},
		})
		s.Require().NoError(err)
		line := out.Lines[0]
		s.Equal("1d8+7 slashing", line.Line2)
		s.True(line.Raging)
		s.Contains(line.Tooltip, "Divine Fury: +1d6+4 radiant or necrotic damage")
	})

	s.Run("ranged archery uses dex", func() {
		c := character("Ranger", 3, map[rules.Ability]int{rules.Dexterity: 16, rules.Strength: 18})
		c.Traits = []string{"Fighting Style: Archery"}
		c.Build = "Fey Wanderer"
		out, err := s.engine.CalculateAttacks(s.ctx, &engine.CalculateAttacksInput{
			Character: c,
			Weapons:   []*entities.EquipmentRecord{longbow()},
		})
		s.Require().NoError(err)
		line := out.Lines[0]
		s.Equal(rules.Dexterity, line.Ability)
		s.Equal(3+2+2, *line.ToHit)
		s.Equal("1d8+3 piercing + 1d4 psychic", line.Line2)
		s.Contains(line.Tooltip, "Fighting Style (Archery): +2 to attack rolls")
	})

	s.Run("finesse ties go to dex", func() {
		c := character("Rogue", 1, map[rules.Ability]int{rules.Dexterity: 14, rules.Strength: 14})
		dagger := &entities.EquipmentRecord{
			Name:       "Dagger",
			Damage:     &entities.Damage{DamageDice: "1d4", DamageType: entities.Reference{Name: "Piercing"}},
			Properties: []entities.Reference{{Index: "finesse"}},
		}
		out, err := s.engine.CalculateAttacks(s.ctx, &engine.CalculateAttacksInput{
			Character: c,
			Weapons:   []*entities.EquipmentRecord{dagger},
		})
		s.Require().NoError(err)
		s.Equal(rules.Dexterity, out.Lines[0].Ability)
	})

	s.Run("infusion bonus, magic bonus and disadvantage", func() {
		c := character("Fighter", 1, map[rules.Ability]int{rules.Strength: 10})
		club := &entities.EquipmentRecord{Name: "Club", AttackBonus: intPtr(1), DamageBonus: intPtr(1)}
		out, err := s.engine.CalculateAttacks(s.ctx, &engine.CalculateAttacksInput{
			Character: c,
			Weapons:   []*entities.EquipmentRecord{club},
			Infusions: []entities.ActiveInfusion{{Name: "Enhanced Weapon", Item: "Club", Owner: "Psalm", Bonus: 1}},
			Effects:   engine.EvaluateConditions([]entities.ConditionKind{entities.ConditionPoisoned}),
		})
		s.Require().NoError(err)
		line := out.Lines[0]
		s.Equal(0+2+1+1, *line.ToHit)
		s.Equal("1d4+2 bludgeoning", line.Line2)
		s.Equal("Poisoned", line.Disadvantage)
		s.Contains(line.Tooltip, "Infused: Enhanced Weapon")
		s.Contains(line.Tooltip, "Disadvantage from Poisoned condition.")
	})
}

func (s *EngineTestSuite) TestSpecialAttacks() {
	s.Run("monk unarmed strike comes first", func() {
		c := character("Monk", 5, map[rules.Ability]int{rules.Dexterity: 16, rules.Strength: 10})
		out, err := s.engine.CalculateAttacks(s.ctx, &engine.CalculateAttacksInput{
			Character: c,
			Weapons:   []*entities.EquipmentRecord{longsword()},
		})
		s.Require().NoError(err)
		s.Require().Len(out.Lines, 2)
		s.Equal("Unarmed Strike", out.Lines[0].Name)
		s.Equal("1d6+3 bludgeoning", out.Lines[0].Line2)
		s.Equal("Unarmed Strike", out.Headline.Name)
	})

	s.Run("dragonborn breath weapon", func() {
		c := character("Fighter", 6, map[rules.Ability]int{rules.Constitution: 14})
		c.Race = "Dragonborn"
		c.RaceAncestry = "Bronze"
		out, err := s.engine.CalculateAttacks(s.ctx, &engine.CalculateAttacksInput{Character: c})
		s.Require().NoError(err)
		s.Require().Len(out.Lines, 1)
		s.Equal("Breath Weapon (DC 13)", out.Lines[0].Line1)
		s.Equal("3d6 lightning (DEX save)", out.Lines[0].Line2)
		s.Nil(out.Lines[0].ToHit)
	})

	s.Run("artillerist cannons", func() {
		c := character("Artificer", 9, map[rules.Ability]int{rules.Intelligence: 16})
		c.Build = "Artillerist"
		out, err := s.engine.CalculateAttacks(s.ctx, &engine.CalculateAttacksInput{Character: c})
		s.Require().NoError(err)
		s.Require().Len(out.Lines, 3)
		s.Equal("Force Ballista: +7 to hit", out.Lines[0].Line1)
		s.Equal("3d8 force, push 5 ft", out.Lines[0].Line2)
		s.Equal("Flamethrower (DC 15)", out.Lines[1].Line1)
		s.Equal("1d8+3 temp HP (10-ft aura)", out.Lines[2].Line2)
	})
}

func (s *EngineTestSuite) TestHeadline() {
	plus := func(n int) *engine.AttackLine { return &engine.AttackLine{Name: "hit", ToHit: &n} }
	save := &engine.AttackLine{Name: "save"}

	s.Nil(engine.Headline(nil))
	s.Same(save, engine.Headline([]*engine.AttackLine{save}))

	first, second := plus(5), plus(5)
	s.Same(first, engine.Headline([]*engine.AttackLine{save, first, second}))

	best := plus(7)
	s.Same(best, engine.Headline([]*engine.AttackLine{first, best, second}))
}

func (s *EngineTestSuite) TestTemplate() {
	values := map[string]string{"DC": "13", "DMG": "2d6"}
	s.Equal("DC 13 or 2d6, DC 13 again {HP}",
		engine.Template("DC {DC} or {DMG}, DC {DC} again {HP}", values))
	s.Equal("no placeholders", engine.Template("no placeholders", values))
	s.Equal("{DC}", engine.Template("{DC}", nil))
}

func (s *EngineTestSuite) TestTemplateValues() {
	c := character("Artificer", 3, map[rules.Ability]int{rules.Intelligence: 16, rules.Constitution: 12})
	s.Equal(map[string]string{"DC": "13", "DMG": "2d8", "HP": "1d8+3"},
		s.engine.TemplateValues(c, "Activate Eldritch Cannon"))
	s.Equal(map[string]string{"DC": "11", "DMG": "2d6"}, s.engine.TemplateValues(c, "Breath Weapon"))
	s.Nil(s.engine.TemplateValues(c, "Dash"))
}

func (s *EngineTestSuite) TestDefaultWeapons() {
	s.Equal([]string{"Longbow", "Shortsword"}, s.engine.DefaultWeapons("Ranger"))
	s.Equal([]string{"Dagger"}, s.engine.DefaultWeapons("wizard"))

	e, err := engine.New(&engine.Config{DefaultWeapons: map[string][]string{"Wizard": {"Quarterstaff"}}})
	s.Require().NoError(err)
	s.Equal([]string{"Quarterstaff"}, e.DefaultWeapons("Wizard"))
}

func (s *EngineTestSuite) TestNilInputs() {
	_, err := s.engine.CalculateArmorClass(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
	_, err = s.engine.CalculateAttacks(s.ctx, &engine.CalculateAttacksInput{})
	s.True(errors.IsInvalidArgument(err))
}
