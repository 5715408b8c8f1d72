package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

const (
	defaultDamageDice = "1d4"
	defaultDamageType = "bludgeoning"
)

// weaponInfusions add their bonus to attack and damage rolls.
var weaponInfusions = []string{"Enhanced Weapon", "Returning Weapon"}

type draconicAncestry struct {
	damage string
	save   rules.Ability
}

var draconicAncestries = map[string]draconicAncestry{
	"black":  {"acid", rules.Dexterity},
	"blue":   {"lightning", rules.Dexterity},
	"brass":  {"fire", rules.Dexterity},
	"bronze": {"lightning", rules.Dexterity},
	"copper": {"acid", rules.Dexterity},
	"gold":   {"fire", rules.Dexterity},
	"green":  {"poison", rules.Constitution},
	"red":    {"fire", rules.Dexterity},
	"silver": {"cold", rules.Constitution},
	"white":  {"cold", rules.Constitution},
}

func (e *engine) CalculateAttacks(_ context.Context, input *CalculateAttacksInput) (*CalculateAttacksOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireCharacter(input.Character); err != nil {
		return nil, err
	}

	c := input.Character
	var lines []*AttackLine
	if l := monkUnarmedStrike(c); l != nil {
		lines = append(lines, l)
	}
	if l := breathWeapon(c); l != nil {
		lines = append(lines, l)
	}
	lines = append(lines, eldritchCannons(c)...)

	for _, w := range input.Weapons {
		if w == nil {
			continue
		}
		lines = append(lines, weaponAttack(input, w))
	}

	return &CalculateAttacksOutput{Lines: lines, Headline: Headline(lines)}, nil
}

// Headline picks the line with the highest to-hit. Ties keep the earlier
// line; save-based lines count as zero.
func Headline(lines []*AttackLine) *AttackLine {
	var best *AttackLine
	bestVal := 0
	for _, l := range lines {
		v := 0
		if l.ToHit != nil {
			v = *l.ToHit
		}
		if best == nil || v > bestVal {
			best, bestVal = l, v
		}
	}
	return best
}

func weaponAttack(input *CalculateAttacksInput, w *entities.EquipmentRecord) *AttackLine {
	c := input.Character
	ranged := w.IsRanged()

	ability := rules.Strength
	if ranged {
		ability = rules.Dexterity
	}
	if w.HasProperty("finesse") {
		ability, _ = c.Abilities.BestOf(rules.Dexterity, rules.Strength)
	}
	mod := c.Abilities.Mod(ability)

	toHit := mod + c.ProficiencyBonus() + w.MagicAttack()
	archery := ranged && c.HasNamed("archery")
	if archery {
		toHit += 2
	}

	var infusion *entities.ActiveInfusion
	infusionBonus := 0
	for i := range input.Infusions {
		inf := &input.Infusions[i]
		if !inf.AppliesTo(w.Name, c.Name) {
			continue
		}
		infusion = inf
		for _, name := range weaponInfusions {
			if inf.Name == name {
				infusionBonus = inf.Bonus
			}
		}
		break
	}
	toHit += infusionBonus

	raging := input.State != nil && input.State.Actions.IsRaging
	strMelee := ability == rules.Strength && !ranged
	rageBonus := 0
	if raging && strMelee {
		rageBonus = rules.RageDamageBonus(c.Level)
	}

	dice, dmgType := defaultDamageDice, defaultDamageType
	if w.Damage != nil {
		if w.Damage.DamageDice != "" {
			dice = w.Damage.DamageDice
		}
		if w.Damage.DamageType.Name != "" {
			dmgType = strings.ToLower(w.Damage.DamageType.Name)
		}
	}
	dmgMod := mod + w.MagicDamage() + rageBonus + infusionBonus
	notation := dice
	if dmgMod != 0 {
		notation += rules.FormatSigned(dmgMod)
	}

	line := &AttackLine{
		Name:    w.Name,
		ToHit:   &toHit,
		Ability: ability,
		Damage:  notation,
		Line1:   fmt.Sprintf("%s: %s to hit", w.Name, rules.FormatSigned(toHit)),
		Line2:   notation + " " + dmgType,
		Raging:  raging && strMelee,
	}

	tips := []string{weaponSummary(w)}
	if archery {
		tips = append(tips, "Fighting Style (Archery): +2 to attack rolls")
	}
	if infusion != nil {
		tips = append(tips, "Infused: "+infusion.Name)
	}
	if input.Effects != nil && input.Effects.AttackDisadvantage != "" {
		line.Disadvantage = input.Effects.AttackDisadvantage
		tips = append(tips, fmt.Sprintf("Disadvantage from %s condition.", line.Disadvantage))
	}
	if c.BuildContains("fey wanderer") && c.Level >= 3 {
		die := "1d4"
		if c.Level >= 11 {
			die = "1d6"
		}
		line.Line2 += " + " + die + " psychic"
		tips = append(tips, fmt.Sprintf("Dreadful Strikes: +%s psychic damage (once per turn).", die))
	}
	if raging && strMelee && c.BuildContains("zealot") {
		tips = append(tips, fmt.Sprintf(
			"Divine Fury: +1d6%s radiant or necrotic damage (if first hit this turn).",
			rules.FormatSigned(c.Level/2)))
	}
	line.Tooltip = joinNonEmpty(tips, "\n\n")

	return line
}

// weaponSummary is the short "1d8 slashing, ver, +1 magic" tooltip header.
func weaponSummary(w *entities.EquipmentRecord) string {
	var parts []string
	if w.Damage != nil && w.Damage.DamageDice != "" && w.Damage.DamageType.Name != "" {
		parts = append(parts, w.Damage.DamageDice+" "+strings.ToLower(w.Damage.DamageType.Name))
	}
	if w.HasProperty("versatile") {
		parts = append(parts, "ver")
	}
	if magic := w.MagicAttack(); magic != 0 {
		parts = append(parts, fmt.Sprintf("+%d magic", magic))
	} else if magic := w.MagicDamage(); magic != 0 {
		parts = append(parts, fmt.Sprintf("+%d magic", magic))
	}
	return strings.Join(parts, ", ")
}

// MartialArtsDie is the monk's unarmed strike die by level.
func MartialArtsDie(level int) string {
	switch {
	case level >= 17:
		return "1d10"
	case level >= 11:
		return "1d8"
	case level >= 5:
		return "1d6"
	}
	return "1d4"
}

func monkUnarmedStrike(c *entities.Character) *AttackLine {
	if !c.ClassIs("monk") {
		return nil
	}
	die := MartialArtsDie(c.Level)
	ability, mod := c.Abilities.BestOf(rules.Dexterity, rules.Strength)
	pb := c.ProficiencyBonus()
	toHit := mod + pb
	notation := die + rules.FormatSigned(mod)

	return &AttackLine{
		Name:    "Unarmed Strike",
		ToHit:   &toHit,
		Ability: ability,
		Damage:  notation,
		Line1:   fmt.Sprintf("Unarmed Strike: %s to hit", rules.FormatSigned(toHit)),
		Line2:   notation + " bludgeoning",
		Tooltip: fmt.Sprintf("Unarmed Strike (Monk)\nAbility: %s (%s)\nProficiency: +%d\nDamage: %s bludgeoning + %s mod",
			ability, rules.FormatSigned(mod), pb, die, ability),
	}
}

// BreathWeaponDice scales with character level.
func BreathWeaponDice(level int) string {
	switch {
	case level >= 16:
		return "5d6"
	case level >= 11:
		return "4d6"
	case level >= 6:
		return "3d6"
	}
	return "2d6"
}

func breathWeapon(c *entities.Character) *AttackLine {
	if !c.RaceContains("dragonborn") {
		return nil
	}
	key := entities.Fold(c.RaceAncestry)
	anc, ok := draconicAncestries[key]
	if !ok {
		return nil
	}
	pb := c.ProficiencyBonus()
	con := c.Abilities.Mod(rules.Constitution)
	dc := 8 + pb + con
	dice := BreathWeaponDice(c.Level)

	return &AttackLine{
		Name:    "Breath Weapon",
		Damage:  dice,
		Line1:   fmt.Sprintf("Breath Weapon (DC %d)", dc),
		Line2:   fmt.Sprintf("%s %s (%s save)", dice, anc.damage, anc.save),
		Tooltip: fmt.Sprintf("Dragonborn Breath Weapon (%s)\nSave DC: 8 + CON mod (%s) + PB (+%d) = %d", key, rules.FormatSigned(con), pb, dc),
	}
}

// CannonDice is the eldritch cannon damage by artificer level.
func CannonDice(level int) string {
	if level >= 9 {
		return "3d8"
	}
	return "2d8"
}

func eldritchCannons(c *entities.Character) []*AttackLine {
	if !c.ClassIs("artificer") || !c.BuildContains("artillerist") {
		return nil
	}
	pb := c.ProficiencyBonus()
	intMod := c.Abilities.Mod(rules.Intelligence)
	dc := 8 + pb + intMod
	atk := pb + intMod
	dice := CannonDice(c.Level)
	protector := "1d8" + rules.FormatSigned(intMod)

	return []*AttackLine{
		{
			Name:    "Eldritch Cannon: Force Ballista",
			ToHit:   &atk,
			Ability: rules.Intelligence,
			Damage:  dice,
			Line1:   fmt.Sprintf("Force Ballista: %s to hit", rules.FormatSigned(atk)),
			Line2:   dice + " force, push 5 ft",
			Tooltip: "Ranged spell attack using INT. On hit, pushes target 5 ft away.",
		},
		{
			Name:    "Eldritch Cannon: Flamethrower",
			Damage:  dice,
			Line1:   fmt.Sprintf("Flamethrower (DC %d)", dc),
			Line2:   dice + " fire, 15-ft cone (DEX save half)",
			Tooltip: fmt.Sprintf("15-ft cone. DEX save vs DC %d for half of %s fire damage.", dc, dice),
		},
		{
			Name:    "Eldritch Cannon: Protector",
			Damage:  protector,
			Line1:   "Protector",
			Line2:   protector + " temp HP (10-ft aura)",
			Tooltip: "Grant 1d8 + INT modifier temporary HP to creatures within 10 ft.",
		},
	}
}

func joinNonEmpty(parts []string, sep string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
