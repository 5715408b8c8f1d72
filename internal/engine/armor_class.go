package engine

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

const infusionEnhancedDefense = "Enhanced Defense"

func (e *engine) CalculateArmorClass(
	_ context.Context,
	input *CalculateArmorClassInput,
) (*CalculateArmorClassOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireCharacter(input.Character); err != nil {
		return nil, err
	}

	c := input.Character
	dex := c.Abilities.Mod(rules.Dexterity)

	infusionBonus, infusionLines := defenseInfusions(input)

	shieldBonus := 0
	if input.HasShield {
		shieldBonus = entities.ShieldBonus
	}

	if input.Armor == nil {
		var base int
		var line string
		switch {
		case c.ClassIs("monk"):
			wis := c.Abilities.Mod(rules.Wisdom)
			base = 10 + dex + wis
			line = fmt.Sprintf("Unarmored Defense (Monk): 10 + Dex (%s) + Wis (%s)",
				rules.FormatSigned(dex), rules.FormatSigned(wis))
		case c.ClassIs("barbarian"):
			con := c.Abilities.Mod(rules.Constitution)
			base = 10 + dex + con
			line = fmt.Sprintf("Unarmored Defense (Barbarian): 10 + Dex (%s) + Con (%s)",
				rules.FormatSigned(dex), rules.FormatSigned(con))
		default:
			base = 10 + dex
			line = fmt.Sprintf("Unarmored: 10 + Dex (%s)", rules.FormatSigned(dex))
		}

		breakdown := []string{line}
		label := "Unarmored"
		if input.HasShield {
			breakdown = append(breakdown, fmt.Sprintf("Shield: +%d", shieldBonus))
			label = "Unarmored + Shield"
		}
		breakdown = append(breakdown, infusionLines...)

		return &CalculateArmorClassOutput{
			ArmorClass: base + shieldBonus + infusionBonus,
			Label:      label,
			Breakdown:  breakdown,
		}, nil
	}

	armor := input.Armor
	name := armor.Name
	if name == "" {
		name = input.ArmorItem
	}

	total := armor.BaseAC
	breakdown := []string{fmt.Sprintf("%s: %d", name, armor.BaseAC)}
	if armor.DexBonus {
		used := dex
		capNote := ""
		if armor.MaxDex != nil {
			used = min(dex, *armor.MaxDex)
			capNote = fmt.Sprintf(" (cap %d)", *armor.MaxDex)
		}
		total += used
		breakdown = append(breakdown, fmt.Sprintf("Dex Mod%s: %s", capNote, rules.FormatSigned(used)))
	}

	label := name
	if input.HasShield {
		total += shieldBonus
		breakdown = append(breakdown, fmt.Sprintf("Shield: +%d", shieldBonus))
		label = name + " + Shield"
	}
	total += infusionBonus
	breakdown = append(breakdown, infusionLines...)

	return &CalculateArmorClassOutput{ArmorClass: total, Label: label, Breakdown: breakdown}, nil
}

// defenseInfusions sums Enhanced Defense infusions the character owns on
// its armor and shield.
func defenseInfusions(input *CalculateArmorClassInput) (int, []string) {
	owner := input.Character.Name
	total := 0
	var lines []string

	find := func(item string) *entities.ActiveInfusion {
		if item == "" {
			return nil
		}
		for i := range input.Infusions {
			inf := &input.Infusions[i]
			if inf.Name == infusionEnhancedDefense && inf.AppliesTo(item, owner) {
				return inf
			}
		}
		return nil
	}

	if inf := find(input.ArmorItem); inf != nil && inf.Bonus > 0 {
		total += inf.Bonus
		lines = append(lines, fmt.Sprintf("Infusion (Armor): +%d", inf.Bonus))
	}
	if input.HasShield {
		if inf := find(input.ShieldItem); inf != nil && inf.Bonus > 0 {
			total += inf.Bonus
			lines = append(lines, fmt.Sprintf("Infusion (Shield): +%d", inf.Bonus))
		}
	}
	return total, lines
}
