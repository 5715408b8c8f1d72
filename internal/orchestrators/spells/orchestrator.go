// Package spells builds the spells page model: every spell the character
// knows, has always prepared or can prepare, grouped by spell level, plus
// slots, preparation limits, resource maxima and artificer infusions.
package spells

//go:generate mockgen -destination=mock/mock_service.go -package=spellsmock github.com/KirkDiggler/rpg-sheet/internal/orchestrators/spells Service

import (
	"context"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/catalog"
	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// MaxSpellLevel is the highest spell level the model has a row for.
const MaxSpellLevel = 9

// Badges shown on locked entries.
const (
	BadgeRacial  = "Racial"
	BadgeCantrip = "Cantrip"
	BadgeClass   = "Class"
)

// Service builds the spell model
type Service interface {
	BuildSpellModel(ctx context.Context, input *BuildSpellModelInput) (*BuildSpellModelOutput, error)
}

// BuildSpellModelInput for BuildSpellModel. ActiveInfusions is the shared
// list across all characters.
type BuildSpellModelInput struct {
	Character       *entities.Character
	State           *entities.SessionState
	ActiveInfusions []entities.ActiveInfusion
}

// SpellEntry is one row on the spells page.
type SpellEntry struct {
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Badge    string `json:"badge,omitempty"`
	Locked   bool   `json:"locked"`
	Prepared bool   `json:"prepared"`
	Desc     string `json:"desc,omitempty"`
}

// Resources are the per-rest pools shown on the spells page.
type Resources struct {
	KiMax              int `json:"kiMax"`
	WildShapeMax       int `json:"wildShapeMax"`
	ChannelDivinityMax int `json:"channelDivinityMax"`
}

// Infusions is the artificer infusion panel.
type Infusions struct {
	Available   []*entities.InfusionRecord `json:"available"`
	Known       []string                   `json:"known"`
	KnownLimit  int                        `json:"knownLimit"`
	ActiveLimit int                        `json:"activeLimit"`
	Active      []entities.ActiveInfusion  `json:"active"`
}

// BuildSpellModelOutput is the spells page model
type BuildSpellModelOutput struct {
	ByLevel       [MaxSpellLevel + 1][]SpellEntry `json:"byLevel"`
	Slots         map[int]int                     `json:"slots"`
	PrepLimit     int                             `json:"prepLimit"`
	KnownLimit    int                             `json:"knownLimit"`
	PreparedCount int                             `json:"preparedCount"`
	Resources     Resources                       `json:"resources"`
	Spellcasting  *engine.Spellcasting            `json:"spellcasting,omitempty"`
	Infusions     *Infusions                      `json:"infusions,omitempty"`
}

// Config holds the dependencies for the spells orchestrator
type Config struct {
	Resolver catalog.Resolver
	Engine   engine.Engine
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	vb := errors.NewValidationBuilder()
	if c.Resolver == nil {
		vb.RequiredField("Resolver")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	return vb.Build()
}

type orchestrator struct {
	resolver catalog.Resolver
	engine   engine.Engine
}

// NewOrchestrator creates a spells orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &orchestrator{resolver: cfg.Resolver, engine: cfg.Engine}, nil
}

func (o *orchestrator) BuildSpellModel(
	ctx context.Context,
	input *BuildSpellModelInput,
) (*BuildSpellModelOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	c := input.Character
	state := input.State
	if state == nil {
		state = entities.NewSessionState(c.GetID())
	}

	sc, err := o.engine.CalculateSpellcasting(ctx, &engine.CalculateSpellcastingInput{Character: c})
	if err != nil {
		return nil, errors.Wrap(err, "failed to calculate spellcasting")
	}
	mod := 0
	if sc.Spellcasting != nil {
		mod = c.Abilities.Mod(sc.Spellcasting.Ability)
	}

	class, _ := o.resolver.ResolveClass(ctx, c.Class, c.Level)
	var sub *entities.SubclassRecord
	if c.Build != "" {
		sub, _ = o.resolver.ResolveSubclass(ctx, c.Build, c.Class)
	}

	var entries []SpellEntry
	entries = append(entries, o.knownSpells(ctx, c)...)
	entries = append(entries, RacialSpells(c)...)
	entries = append(entries, o.alwaysPrepared(ctx, c, sub)...)
	entries = append(entries, ClassAbilities(c.Level, class, sub)...)
	entries = append(entries, o.classList(ctx, c)...)

	out := &BuildSpellModelOutput{
		Slots:         rules.SlotsFor(c.Class, c.Level),
		PrepLimit:     rules.PreparedLimit(c.Class, mod, c.Level),
		KnownLimit:    rules.KnownLimit(c.Class, c.Level),
		PreparedCount: state.Spells.PreparedCount(),
		Resources: Resources{
			KiMax:              rules.KiMax(c.Class, c.Level),
			WildShapeMax:       rules.WildShapeMax(c.Class, c.Level),
			ChannelDivinityMax: rules.ChannelDivinityMax(c.Class, c.Level),
		},
		Spellcasting: sc.Spellcasting,
	}

	for _, e := range Dedupe(entries) {
		e.Prepared = e.Locked || state.Spells.IsPrepared(e.Level, e.Name)
		out.ByLevel[e.Level] = append(out.ByLevel[e.Level], e)
	}
	for lvl := range out.ByLevel {
		SortEntries(out.ByLevel[lvl])
	}

	if c.ClassIs("artificer") || c.Infusions.KnownLimit > 0 {
		out.Infusions = o.infusions(ctx, c, state, input.ActiveInfusions)
	}

	slog.Debug("Spell model built",
		"character", c.Name,
		"entries", len(entries),
		"prep_limit", out.PrepLimit,
		"known_limit", out.KnownLimit,
	)

	return out, nil
}

// Dedupe merges entries sharing level and name. The first entry wins; a
// later duplicate can only lock it or supply a missing badge.
func Dedupe(entries []SpellEntry) []SpellEntry {
	index := make(map[string]int)
	var out []SpellEntry
	for _, e := range entries {
		if e.Level < 0 || e.Level > MaxSpellLevel || strings.TrimSpace(e.Name) == "" {
			continue
		}
		key := dedupeKey(e)
		i, ok := index[key]
		if !ok {
			index[key] = len(out)
			out = append(out, e)
			continue
		}
		out[i].Locked = out[i].Locked || e.Locked
		if out[i].Badge == "" {
			out[i].Badge = e.Badge
		}
		if out[i].Desc == "" {
			out[i].Desc = e.Desc
		}
	}
	return out
}

func dedupeKey(e SpellEntry) string {
	return strconv.Itoa(e.Level) + "|" + strings.ToLower(e.Name)
}

// SortEntries puts prepared entries first, then orders by name.
func SortEntries(entries []SpellEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Prepared != entries[j].Prepared {
			return entries[i].Prepared
		}
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
}

// knownSpells are the spells listed on the character. Unresolved spells
// default to level 1.
func (o *orchestrator) knownSpells(ctx context.Context, c *entities.Character) []SpellEntry {
	out := make([]SpellEntry, 0, len(c.Spells))
	for _, name := range c.Spells {
		e := SpellEntry{Name: name, Level: 1}
		if rec, ok := o.resolver.ResolveSpell(ctx, name); ok {
			e.Level = rec.Level
			e.Desc = rec.Desc.String()
		}
		out = append(out, e)
	}
	return out
}

type racialSpell struct {
	name  string
	level int
	minL  int
	desc  string
}

var (
	infernalLegacy = []racialSpell{
		{"Thaumaturgy", 0, 1, "You know the Thaumaturgy cantrip."},
		{"Hellish Rebuke", 1, 3, "You can cast Hellish Rebuke as a 2nd-level spell once per long rest."},
		{"Darkness", 2, 5, "You can cast Darkness once per long rest."},
	}
	devilsTongue = []racialSpell{
		{"Vicious Mockery", 0, 1, "You know the Vicious Mockery cantrip."},
		{"Charm Person", 1, 3, "You can cast Charm Person as a 2nd-level spell once per long rest."},
		{"Enthrall", 2, 5, "You can cast Enthrall once per long rest."},
	}
)

// RacialSpells returns the tiefling legacy spells unlocked at the
// character's level. The Devil's Tongue variant replaces Infernal Legacy.
func RacialSpells(c *entities.Character) []SpellEntry {
	if !c.RaceContains("tiefling") {
		return nil
	}
	legacy := infernalLegacy
	if c.HasTraitContaining("devil's tongue") {
		legacy = devilsTongue
	}
	var out []SpellEntry
	for _, s := range legacy {
		if c.Level < s.minL {
			continue
		}
		out = append(out, SpellEntry{
			Name:   s.name,
			Level:  s.level,
			Badge:  BadgeRacial,
			Locked: true,
			Desc:   s.desc + "\n(Spellcasting ability: Charisma)",
		})
	}
	return out
}

func (o *orchestrator) alwaysPrepared(
	ctx context.Context,
	c *entities.Character,
	sub *entities.SubclassRecord,
) []SpellEntry {
	if sub == nil {
		return nil
	}
	var out []SpellEntry
	for _, name := range sub.AlwaysPreparedSpells.UpTo(c.Level) {
		e := SpellEntry{Name: name, Badge: sub.Badge(), Locked: true}
		if rec, ok := o.resolver.ResolveSpell(ctx, name); ok {
			e.Level = rec.Level
			e.Desc = rec.Desc.String()
		}
		out = append(out, e)
	}
	return out
}

// ClassAbilities are bonus cantrips and badged actions from the class and
// subclass records, shown as locked cantrip-level entries. Either record
// may be nil.
func ClassAbilities(level int, class *entities.ClassRecord, sub *entities.SubclassRecord) []SpellEntry {
	type source struct {
		cantrips entities.SpellsByLevel
		actions  []entities.ActionRecord
	}
	var sources []source
	if class != nil {
		sources = append(sources, source{class.BonusCantrips, class.Actions})
	}
	if sub != nil {
		sources = append(sources, source{sub.BonusCantrips, sub.Actions})
	}

	var out []SpellEntry
	for _, src := range sources {
		for _, name := range src.cantrips.UpTo(level) {
			out = append(out, SpellEntry{Name: name, Badge: BadgeCantrip, Locked: true})
		}
		for _, a := range src.actions {
			if a.Badge == "" || a.Level == 0 || level < a.Level {
				continue
			}
			out = append(out, SpellEntry{Name: a.Name, Badge: a.Badge, Locked: true, Desc: a.Desc.String()})
		}
	}
	return out
}

// classList offers the whole class list up to the highest castable level
// to prepared casters and to known casters that pick from it.
func (o *orchestrator) classList(ctx context.Context, c *entities.Character) []SpellEntry {
	if !rules.ListsClassSpells(c.Class) {
		return nil
	}
	upTo := min(MaxSpellLevel, rules.MaxSpellLevel(c.Class, c.Level))
	spells := o.resolver.ClassSpells(ctx, c.Class, upTo)
	out := make([]SpellEntry, 0, len(spells))
	for _, s := range spells {
		out = append(out, SpellEntry{Name: s.Name, Level: s.Level, Badge: BadgeClass, Desc: s.Desc.String()})
	}
	return out
}

func (o *orchestrator) infusions(
	ctx context.Context,
	c *entities.Character,
	state *entities.SessionState,
	active []entities.ActiveInfusion,
) *Infusions {
	var available []*entities.InfusionRecord
	for _, inf := range o.resolver.Infusions(ctx) {
		if inf.Level <= c.Level {
			available = append(available, inf)
		}
	}
	sort.SliceStable(available, func(i, j int) bool { return available[i].Name < available[j].Name })

	return &Infusions{
		Available:   available,
		Known:       state.KnownInfusions(c),
		KnownLimit:  c.Infusions.KnownLimit,
		ActiveLimit: c.Infusions.ActiveLimit,
		Active:      active,
	}
}
