package rules

import (
	"math"
	"strings"
)

// Ability is one of the six ability scores.
type Ability string

const (
	Strength     Ability = "STR"
	Dexterity    Ability = "DEX"
	Constitution Ability = "CON"
	Intelligence Ability = "INT"
	Wisdom       Ability = "WIS"
	Charisma     Ability = "CHA"
)

// Abilities lists the scores in sheet order.
var Abilities = []Ability{Strength, Dexterity, Constitution, Intelligence, Wisdom, Charisma}

var abilityAliases = map[string]Ability{
	"str": Strength, "strength": Strength,
	"dex": Dexterity, "dexterity": Dexterity,
	"con": Constitution, "constitution": Constitution,
	"int": Intelligence, "intelligence": Intelligence,
	"wis": Wisdom, "wisdom": Wisdom,
	"cha": Charisma, "charisma": Charisma,
}

// ParseAbility accepts the short or long name in any case.
func ParseAbility(s string) (Ability, bool) {
	a, ok := abilityAliases[strings.ToLower(strings.TrimSpace(s))]
	return a, ok
}

// Short returns the title-cased abbreviation used in breakdown lines ("Dex").
func (a Ability) Short() string {
	s := string(a)
	if len(s) < 3 {
		return s
	}
	return s[:1] + strings.ToLower(s[1:])
}

// AbilityModifier returns floor((score-10)/2).
func AbilityModifier(score int) int {
	d := score - 10
	if d < 0 {
		return -((-d + 1) / 2)
	}
	return d / 2
}

// AbilityModifierFloat is AbilityModifier for untrusted numeric input; NaN
// and infinities are treated as a score of 10.
func AbilityModifierFloat(score float64) int {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return 0
	}
	return int(math.Floor((score - 10) / 2))
}

// ProficiencyBonus returns 2 + floor((max(level,1)-1)/4).
func ProficiencyBonus(level int) int {
	if level < 1 {
		level = 1
	}
	return 2 + (level-1)/4
}
