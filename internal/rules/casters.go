package rules

import (
	"slices"
	"strings"
)

// CasterTier groups classes by how they progress spell slots.
type CasterTier int

const (
	CasterNone CasterTier = iota
	CasterFull
	CasterHalf
	CasterThird
	CasterPact
)

// String implements fmt.Stringer
func (t CasterTier) String() string {
	switch t {
	case CasterFull:
		return "full"
	case CasterHalf:
		return "half"
	case CasterThird:
		return "third"
	case CasterPact:
		return "pact"
	default:
		return "none"
	}
}

// Third casters are keyed by "class-subclass" since the class alone does not
// grant spellcasting.
const (
	ClassEldritchKnight = "fighter-eldritch knight"
	ClassArcaneTrickster = "rogue-arcane trickster"
)

var casterTiers = map[string]CasterTier{
	"bard":               CasterFull,
	"cleric":             CasterFull,
	"druid":              CasterFull,
	"sorcerer":           CasterFull,
	"wizard":             CasterFull,
	"artificer":          CasterHalf,
	"paladin":            CasterHalf,
	"ranger":             CasterHalf,
	"warlock":            CasterPact,
	ClassEldritchKnight:  CasterThird,
	ClassArcaneTrickster: CasterThird,
}

// CasterTierFor maps a class name to its tier; unknown classes are CasterNone.
func CasterTierFor(class string) CasterTier {
	return casterTiers[normalizeClass(class)]
}

// fullCasterSlots[level-1][spellLevel-1]
var fullCasterSlots = [20][9]int{
	{2},
	{3},
	{4, 2},
	{4, 3},
	{4, 3, 2},
	{4, 3, 3},
	{4, 3, 3, 1},
	{4, 3, 3, 2},
	{4, 3, 3, 3, 1},
	{4, 3, 3, 3, 2},
	{4, 3, 3, 3, 2, 1},
	{4, 3, 3, 3, 2, 1},
	{4, 3, 3, 3, 2, 1, 1},
	{4, 3, 3, 3, 2, 1, 1},
	{4, 3, 3, 3, 2, 1, 1, 1},
	{4, 3, 3, 3, 2, 1, 1, 1},
	{4, 3, 3, 3, 2, 1, 1, 1, 1},
	{4, 3, 3, 3, 3, 1, 1, 1, 1},
	{4, 3, 3, 3, 3, 2, 1, 1, 1},
	{4, 3, 3, 3, 3, 2, 2, 1, 1},
}

var halfCasterSlots = [20][9]int{
	{},
	{2},
	{3},
	{3},
	{4, 2},
	{4, 2},
	{4, 3},
	{4, 3},
	{4, 3, 2},
	{4, 3, 2},
	{4, 3, 3},
	{4, 3, 3},
	{4, 3, 3, 1},
	{4, 3, 3, 1},
	{4, 3, 3, 2},
	{4, 3, 3, 2},
	{4, 3, 3, 3, 1},
	{4, 3, 3, 3, 1},
	{4, 3, 3, 3, 2},
	{4, 3, 3, 3, 2},
}

// SlotTable returns spell level -> slot count. Only full and half casters
// have a table; pact and third casters get an empty map. Levels outside
// 1..20 clamp to the nearest row.
func SlotTable(tier CasterTier, level int) map[int]int {
	var row [9]int
	switch tier {
	case CasterFull:
		row = fullCasterSlots[clampLevel(level)-1]
	case CasterHalf:
		row = halfCasterSlots[clampLevel(level)-1]
	default:
		return map[int]int{}
	}

	out := make(map[int]int)
	for i, n := range row {
		if n > 0 {
			out[i+1] = n
		}
	}
	return out
}

// SlotsFor is SlotTable keyed by class name.
func SlotsFor(class string, level int) map[int]int {
	return SlotTable(CasterTierFor(class), level)
}

// MaxSpellSlotLevel is the highest spell slot level.
const MaxSpellSlotLevel = 9

var fullMaxSpellLevel = [21]int{0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6, 7, 7, 8, 8, 9, 9, 9, 9}

// MaxSpellLevel returns the highest spell level the class can cast at level.
func MaxSpellLevel(class string, level int) int {
	l := clampLevel(level)
	switch CasterTierFor(class) {
	case CasterFull:
		return fullMaxSpellLevel[l]
	case CasterHalf:
		switch {
		case l <= 1:
			return 0
		case l <= 4:
			return 1
		case l <= 8:
			return 2
		case l <= 12:
			return 3
		case l <= 16:
			return 4
		}
		return 5
	case CasterThird:
		switch {
		case l <= 2:
			return 0
		case l <= 6:
			return 1
		case l <= 12:
			return 2
		case l <= 18:
			return 3
		}
		return 4
	case CasterPact:
		switch {
		case l <= 2:
			return 1
		case l <= 4:
			return 2
		case l <= 6:
			return 3
		case l <= 8:
			return 4
		}
		return 5
	}
	return 0
}

var spellcastingAbilities = map[string]Ability{
	"artificer": Intelligence,
	"wizard":    Intelligence,
	"cleric":    Wisdom,
	"druid":     Wisdom,
	"ranger":    Wisdom,
	"monk":      Wisdom,
	"bard":      Charisma,
	"sorcerer":  Charisma,
	"warlock":   Charisma,
	"paladin":   Charisma,
}

// SpellcastingAbility returns the ability a class casts with. A tiefling
// barbarian casts its racial spells with Charisma.
func SpellcastingAbility(class, race string) (Ability, bool) {
	c := normalizeClass(class)
	if a, ok := spellcastingAbilities[c]; ok {
		return a, true
	}
	if c == "barbarian" && strings.Contains(strings.ToLower(race), "tiefling") {
		return Charisma, true
	}
	return "", false
}

var (
	preparedCasters = []string{"cleric", "druid", "paladin", "wizard", "artificer"}
	knownCasters    = []string{"bard", "ranger", "sorcerer", "warlock"}
	// known casters that still pick from the full class list on the sheet
	knownCastersWithChoice = []string{"ranger", "bard", "sorcerer"}
)

// IsPreparedCaster reports whether the class prepares spells from its list.
func IsPreparedCaster(class string) bool {
	return slices.Contains(preparedCasters, normalizeClass(class))
}

// IsKnownCaster reports whether the class casts from a fixed known list.
func IsKnownCaster(class string) bool {
	return slices.Contains(knownCasters, normalizeClass(class))
}

// ListsClassSpells reports whether the sheet offers the whole class spell
// list for the class.
func ListsClassSpells(class string) bool {
	c := normalizeClass(class)
	return slices.Contains(preparedCasters, c) || slices.Contains(knownCastersWithChoice, c)
}

func normalizeClass(class string) string {
	return strings.ToLower(strings.TrimSpace(class))
}

func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 20 {
		return 20
	}
	return level
}
