package catalog

import (
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
)

// Policy controls whether a kind may fall back to the remote API.
type Policy struct {
	Remote bool
	// Allow, when non-empty, restricts remote lookups to these slugs.
	Allow []string
	Block []string
}

// Permits reports whether slug may be fetched remotely.
func (p Policy) Permits(slug string) bool {
	if !p.Remote || slug == "" {
		return false
	}
	if slices.Contains(p.Block, slug) {
		return false
	}
	return len(p.Allow) == 0 || slices.Contains(p.Allow, slug)
}

// Policies maps each kind to its remote policy. Kinds without an entry
// are local-only.
type Policies map[Kind]Policy

// DefaultPolicies are the remote rules the sheet ships with. Subclasses,
// backgrounds, feats, conditions and infusions have no remote endpoint.
func DefaultPolicies() Policies {
	return Policies{
		KindClasses: {Remote: true, Block: []string{"artificer"}},
		KindRaces: {
			Remote: true,
			Allow: []string{
				"dragonborn", "dwarf", "elf", "gnome", "half-elf",
				"half-orc", "halfling", "human", "tiefling",
			},
			Block: []string{"harengon"},
		},
		KindSpells:    {Remote: true},
		KindEquipment: {Remote: true},
	}
}

func (p Policies) permits(kind Kind, slug string) bool {
	return p[kind].Permits(slug)
}

// raceAlias maps a homebrew race name onto an SRD race and subrace.
type raceAlias struct {
	Race    string
	Subrace string
	Display string
}

var raceAliases = map[string]raceAlias{
	"moon elf": {Race: "elf", Subrace: "high-elf", Display: "Moon Elf"},
	"moon-elf": {Race: "elf", Subrace: "high-elf", Display: "Moon Elf"},
}

// RaceDisplayName returns the name a sheet shows for a race.
func RaceDisplayName(race string) string {
	if alias, ok := raceAliases[entities.Fold(race)]; ok {
		return alias.Display
	}
	// a Caser is stateful, so one per call
	return cases.Title(language.English).String(entities.Fold(race))
}
