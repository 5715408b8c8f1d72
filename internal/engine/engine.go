package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

type engine struct {
	defaultWeapons map[string][]string
}

// Config holds engine configuration
type Config struct {
	// DefaultWeapons overrides the per-class loadout used when a character
	// lists no weapons. Keys are lowercase class names.
	DefaultWeapons map[string][]string
}

// Validate validates the configuration
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config is required")
	}
	return nil
}

// New creates an engine
func New(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	weapons := make(map[string][]string, len(defaultLoadouts))
	for k, v := range defaultLoadouts {
		weapons[k] = v
	}
	for k, v := range cfg.DefaultWeapons {
		weapons[strings.ToLower(k)] = v
	}

	return &engine{defaultWeapons: weapons}, nil
}

var defaultLoadouts = map[string][]string{
	"monk":      {"Shortsword"},
	"barbarian": {"Greataxe"},
	"ranger":    {"Longbow", "Shortsword"},
	"artificer": {"Light Crossbow"},
	"cleric":    {"Mace"},
	"druid":     {"Quarterstaff"},
}

func (e *engine) DefaultWeapons(class string) []string {
	if w, ok := e.defaultWeapons[strings.ToLower(strings.TrimSpace(class))]; ok {
		return append([]string(nil), w...)
	}
	return []string{"Dagger"}
}

func requireCharacter(c *entities.Character) error {
	if c == nil {
		return errors.InvalidArgument("character is required")
	}
	return nil
}

func (e *engine) CalculateInitiative(
	_ context.Context,
	input *CalculateInitiativeInput,
) (*CalculateInitiativeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireCharacter(input.Character); err != nil {
		return nil, err
	}

	c := input.Character
	dex := c.Abilities.Mod(rules.Dexterity)
	total := dex
	breakdown := []string{"Dex: " + rules.FormatSigned(dex)}

	if c.HasFeat("Alert") {
		total += 5
		breakdown = append(breakdown, "Alert feat: +5")
	}
	if c.AddChaToInitiative {
		cha := c.Abilities.Mod(rules.Charisma)
		total += cha
		breakdown = append(breakdown, "Bonus (CHA): "+rules.FormatSigned(cha))
	}
	if c.InitiativeBonus != nil {
		total += *c.InitiativeBonus
		breakdown = append(breakdown, "Bonus (Misc): "+rules.FormatSigned(*c.InitiativeBonus))
	}
	if strings.EqualFold(strings.TrimSpace(c.Race), "harengon") {
		pb := c.ProficiencyBonus()
		total += pb
		breakdown = append(breakdown, fmt.Sprintf("Hare-Trigger (PB): +%d", pb))
	}

	return &CalculateInitiativeOutput{Initiative: total, Breakdown: breakdown}, nil
}

func (e *engine) CalculatePassivePerception(
	_ context.Context,
	input *CalculatePassivePerceptionInput,
) (*CalculatePassivePerceptionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireCharacter(input.Character); err != nil {
		return nil, err
	}

	c := input.Character
	mult := c.SkillLevel("Perception").Multiplier()
	if mult == 0 && c.HasNamed("Jack of All Trades") {
		mult = 0.5
	}

	bonus := c.Abilities.Mod(rules.Wisdom) + int(float64(c.ProficiencyBonus())*mult)
	if c.HasNamed("Observant") {
		bonus += 5
	}
	bonus += c.BonusPassivePerception

	total := 10 + bonus
	breakdown := []string{"Base: 10", "Perception Bonus: " + rules.FormatSigned(bonus)}
	if input.Effects != nil && input.Effects.PassivePerceptionPenalty != 0 {
		total += input.Effects.PassivePerceptionPenalty
		breakdown = append(breakdown, fmt.Sprintf("Condition Penalty: %d", input.Effects.PassivePerceptionPenalty))
	}

	return &CalculatePassivePerceptionOutput{PassivePerception: total, Breakdown: breakdown}, nil
}

func (e *engine) CalculateSpellcasting(
	_ context.Context,
	input *CalculateSpellcastingInput,
) (*CalculateSpellcastingOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireCharacter(input.Character); err != nil {
		return nil, err
	}

	c := input.Character
	ability, ok := rules.SpellcastingAbility(c.Class, c.Race)
	if !ok {
		return &CalculateSpellcastingOutput{}, nil
	}

	pb := c.ProficiencyBonus()
	mod := c.Abilities.Mod(ability)
	sc := &Spellcasting{
		Ability:         ability,
		SaveDC:          8 + pb + mod + c.SpellSaveDCMod,
		AttackBonus:     pb + mod + c.SpellAttackBonusMod,
		SaveBreakdown:   fmt.Sprintf("8 + PB (%d) + %s mod (%s)", pb, ability, rules.FormatSigned(mod)),
		AttackBreakdown: fmt.Sprintf("PB (%d) + %s mod (%s)", pb, ability, rules.FormatSigned(mod)),
	}
	if c.SpellSaveDCMod != 0 {
		sc.SaveBreakdown += " + Bonus (" + rules.FormatSigned(c.SpellSaveDCMod) + ")"
	}
	if c.SpellAttackBonusMod != 0 {
		sc.AttackBreakdown += " + Bonus (" + rules.FormatSigned(c.SpellAttackBonusMod) + ")"
	}

	return &CalculateSpellcastingOutput{Spellcasting: sc}, nil
}
