package rules

import "strings"

// RageUnlimited is the rage capacity at level 20.
const RageUnlimited = 99

// RageDots is how many rage dots a sheet shows once rages are unlimited.
const RageDots = 6

// RageMax returns the number of rages per long rest for a barbarian.
func RageMax(level int) int {
	switch l := clampLevel(level); {
	case l >= 20:
		return RageUnlimited
	case l >= 17:
		return 6
	case l >= 12:
		return 5
	case l >= 6:
		return 4
	case l >= 3:
		return 3
	}
	return 2
}

// RageDamageBonus is the melee damage bonus while raging.
func RageDamageBonus(level int) int {
	switch {
	case level >= 16:
		return 4
	case level >= 9:
		return 3
	}
	return 2
}

// ZealousPresenceMax is 1 for a level 10+ zealot barbarian.
func ZealousPresenceMax(class, build string, level int) int {
	if normalizeClass(class) == "barbarian" && strings.Contains(strings.ToLower(build), "zealot") && level >= 10 {
		return 1
	}
	return 0
}

// EldritchCannonMax is the artillerist's cannon uses, equal to PB from level 3.
func EldritchCannonMax(class, build string, level int) int {
	if normalizeClass(class) == "artificer" && strings.EqualFold(strings.TrimSpace(build), "artillerist") && level >= 3 {
		return ProficiencyBonus(level)
	}
	return 0
}

// RabbitHopMax is the harengon's Rabbit Hop uses, equal to PB.
func RabbitHopMax(race string, level int) int {
	if strings.EqualFold(strings.TrimSpace(race), "harengon") {
		return ProficiencyBonus(level)
	}
	return 0
}

// KiMax equals monk level.
func KiMax(class string, level int) int {
	if normalizeClass(class) == "monk" {
		return clampLevel(level)
	}
	return 0
}

// WildShapeMax is 2 uses for a druid from level 2.
func WildShapeMax(class string, level int) int {
	if normalizeClass(class) == "druid" && level >= 2 {
		return 2
	}
	return 0
}

// ChannelDivinityMax applies to clerics and paladins from level 2.
func ChannelDivinityMax(class string, level int) int {
	c := normalizeClass(class)
	if (c != "cleric" && c != "paladin") || level < 2 {
		return 0
	}
	switch {
	case level >= 18:
		return 3
	case level >= 6:
		return 2
	}
	return 1
}

// PreparedLimit is the number of spells a prepared caster may prepare. Zero
// means the class does not prepare spells on the sheet.
func PreparedLimit(class string, mod, level int) int {
	switch normalizeClass(class) {
	case "cleric", "druid", "wizard":
		return max(1, mod+level)
	case "artificer":
		return max(1, mod+level/2)
	}
	return 0
}

var rangerSpellsKnown = [21]int{0, 0, 2, 3, 3, 4, 4, 5, 5, 6, 6, 7, 7, 8, 8, 9, 9, 10, 10, 11, 11}

// KnownLimit is the ranger's spells known; other classes have no sheet-side
// known limit.
func KnownLimit(class string, level int) int {
	if normalizeClass(class) == "ranger" {
		return rangerSpellsKnown[clampLevel(level)]
	}
	return 0
}

// ToggleDot applies a click on dot index (0-based) to a used counter. Clicking
// the last filled dot clears it; any other dot fills up to and including
// itself. The result is clamped to [0, capacity].
func ToggleDot(used, index, capacity int) int {
	next := index + 1
	if used == index+1 {
		next = index
	}
	return Clamp(next, 0, capacity)
}

// ToggleFull flips a counter between empty and full.
func ToggleFull(used, capacity int) int {
	if used >= capacity {
		return 0
	}
	return capacity
}

// Clamp bounds v to [lo, hi]. A negative hi is treated as 0.
func Clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	return min(max(v, lo), hi)
}
