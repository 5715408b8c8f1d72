package catalog

import "github.com/KirkDiggler/rpg-sheet/internal/entities"

// DefaultSpeed is used when nothing knows the race.
const DefaultSpeed = 30

func intPtr(n int) *int { return &n }

// armorFallback covers the common armors when neither catalog has them.
var armorFallback = map[string]entities.ArmorInfo{
	"leather armor":   {Name: "Leather Armor", BaseAC: 11, DexBonus: true},
	"studded leather": {Name: "Studded Leather", BaseAC: 12, DexBonus: true},
	"hide armor":      {Name: "Hide Armor", BaseAC: 12, DexBonus: true, MaxDex: intPtr(2)},
	"chain shirt":     {Name: "Chain Shirt", BaseAC: 13, DexBonus: true, MaxDex: intPtr(2)},
	"chain mail":      {Name: "Chain Mail", BaseAC: 16, StrMinimum: 13, StealthDisadvantage: true},
	"shield":          {Name: "Shield", IsShield: true, Bonus: entities.ShieldBonus},
}

var baseSpeedFallback = map[string]int{
	"dragonborn":         30,
	"dwarf":              25,
	"duergar":            25,
	"hill dwarf":         25,
	"mountain dwarf":     25,
	"elf":                30,
	"high elf":           30,
	"drow":               30,
	"moon elf":           30,
	"wood elf":           35,
	"halfling":           25,
	"lightfoot halfling": 25,
	"stout halfling":     25,
	"human":              30,
	"tiefling":           30,
	"harengon":           30,
}

// FallbackArmor returns the built-in armor entry for name.
func FallbackArmor(name string) (*entities.ArmorInfo, bool) {
	info, ok := armorFallback[entities.Fold(name)]
	if !ok {
		return nil, false
	}
	return &info, true
}

// FallbackSpeed returns the built-in base speed for a race.
func FallbackSpeed(race string) (int, bool) {
	speed, ok := baseSpeedFallback[entities.Fold(race)]
	return speed, ok
}
