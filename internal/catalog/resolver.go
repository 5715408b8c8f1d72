package catalog

//go:generate mockgen -destination=mock/mock_resolver.go -package=catalogmock github.com/KirkDiggler/rpg-sheet/internal/catalog Resolver

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/KirkDiggler/rpg-sheet/internal/clients/external"
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

const defaultRemoteTimeout = 7 * time.Second

// Resolver looks named entities up in the local catalog first and the
// remote API second. Lookups never fail: a miss, a blocked name or a
// remote error all report not found.
type Resolver interface {
	ResolveClass(ctx context.Context, name string, level int) (*entities.ClassRecord, bool)
	// ResolveSubclass matches on name and, when the record names one, class.
	ResolveSubclass(ctx context.Context, name, class string) (*entities.SubclassRecord, bool)
	ResolveRace(ctx context.Context, name string) (*ResolvedRace, bool)
	ResolveBackground(ctx context.Context, name string) (*entities.BackgroundRecord, bool)
	ResolveSpell(ctx context.Context, name string) (*entities.SpellRecord, bool)
	ResolveEquipment(ctx context.Context, name string) (*entities.EquipmentRecord, bool)
	ResolveArmor(ctx context.Context, name string) (*entities.ArmorInfo, bool)
	ResolveCondition(ctx context.Context, name string) (*entities.ConditionRecord, bool)
	ResolveInfusion(ctx context.Context, name string) (*entities.InfusionRecord, bool)
	ResolveFeat(ctx context.Context, name string) (*entities.FeatRecord, bool)

	// ClassSpells lists spells of a class up to maxLevel, local entries
	// first, sorted by level then name.
	ClassSpells(ctx context.Context, class string, maxLevel int) []*entities.SpellRecord
	// BaseSpeed returns a race's walking speed and the label it came from.
	BaseSpeed(ctx context.Context, race string) (int, string)
	// Infusions lists every known infusion.
	Infusions(ctx context.Context) []*entities.InfusionRecord
}

// ResolvedRace is a race record plus how it was reached.
type ResolvedRace struct {
	*entities.RaceRecord
	// Subrace is set when an alias mapped the name onto an SRD subrace the
	// remote race offers.
	Subrace *entities.Reference
	Display string
}

// ResolverConfig configures a Resolver.
type ResolverConfig struct {
	Store *Store
	// Remote is optional; without it the resolver is local-only.
	Remote   external.Client
	Policies Policies
	// Timeout bounds each remote call (default 7s).
	Timeout time.Duration
}

// Validate checks required dependencies and fills defaults.
func (c *ResolverConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("resolver config is required")
	}
	if c.Store == nil {
		return errors.InvalidArgument("store is required")
	}
	if c.Policies == nil {
		c.Policies = DefaultPolicies()
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultRemoteTimeout
	}
	return nil
}

type resolver struct {
	store    *Store
	remote   external.Client
	policies Policies
	timeout  time.Duration

	group singleflight.Group
	mu    sync.RWMutex
	// remote results by kind:key; a nil value records a miss
	cache map[string]any
}

// NewResolver creates a Resolver.
func NewResolver(cfg *ResolverConfig) (Resolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &resolver{
		store:    cfg.Store,
		remote:   cfg.Remote,
		policies: cfg.Policies,
		timeout:  cfg.Timeout,
		cache:    make(map[string]any),
	}, nil
}

var _ Resolver = (*resolver)(nil)

// fetch runs a remote lookup once per key, caching hits and misses.
func fetch[T any](ctx context.Context, r *resolver, kind Kind, key string, fn func(context.Context) (T, error)) (T, bool) {
	var zero T
	if r.remote == nil {
		return zero, false
	}
	cacheKey := string(kind) + ":" + key

	r.mu.RLock()
	cached, ok := r.cache[cacheKey]
	r.mu.RUnlock()
	if ok {
		if cached == nil {
			return zero, false
		}
		return cached.(T), true
	}

	v, _, _ := r.group.Do(cacheKey, func() (any, error) {
		callCtx, cancel := context.WithTimeout(ctx, r.timeout)
		defer cancel()

		result, err := fn(callCtx)
		var stored any
		if err != nil {
			slog.Warn("Remote lookup failed", "kind", kind, "key", key, "error", err)
		} else {
			stored = result
		}

		// cancellation of the caller is not a verdict on the key
		if err != nil && ctx.Err() != nil {
			return nil, nil
		}
		r.mu.Lock()
		r.cache[cacheKey] = stored
		r.mu.Unlock()
		return stored, nil
	})
	if v == nil {
		return zero, false
	}
	return v.(T), true
}

func (r *resolver) ResolveClass(ctx context.Context, name string, level int) (*entities.ClassRecord, bool) {
	if rec, ok := r.store.Classes(ctx).Find(name); ok {
		return rec, true
	}
	slug := entities.Slug(name)
	if !r.policies.permits(KindClasses, slug) {
		return nil, false
	}
	key := fmt.Sprintf("%s:%d", slug, level)
	return fetch(ctx, r, KindClasses, key, func(ctx context.Context) (*entities.ClassRecord, error) {
		return r.remote.GetClass(ctx, slug, level)
	})
}

func (r *resolver) ResolveSubclass(ctx context.Context, name, class string) (*entities.SubclassRecord, bool) {
	if strings.TrimSpace(name) == "" {
		return nil, false
	}
	for _, rec := range r.store.Subclasses(ctx).All() {
		if !strings.EqualFold(strings.TrimSpace(rec.Name), strings.TrimSpace(name)) &&
			!strings.EqualFold(rec.Index, entities.Slug(name)) {
			continue
		}
		if rec.Class != "" && class != "" && !strings.EqualFold(rec.Class, strings.TrimSpace(class)) {
			continue
		}
		return rec, true
	}
	return nil, false
}

func (r *resolver) ResolveRace(ctx context.Context, name string) (*ResolvedRace, bool) {
	if strings.TrimSpace(name) == "" {
		return nil, false
	}
	display := RaceDisplayName(name)
	local, hasLocal := r.store.Races(ctx).Find(name)
	if hasLocal && local.HasTraitDescriptions() {
		return &ResolvedRace{RaceRecord: local, Display: display}, true
	}

	// A local entry without trait text is a stub; prefer the SRD record
	// but keep the stub's actions.
	out, ok := r.remoteRace(ctx, name, display)
	if !ok {
		if hasLocal {
			return &ResolvedRace{RaceRecord: local, Display: display}, true
		}
		return nil, false
	}
	if hasLocal && len(local.Actions) > 0 {
		merged := *out.RaceRecord
		merged.Actions = append(append([]entities.ActionRecord(nil), merged.Actions...), local.Actions...)
		out.RaceRecord = &merged
	}
	return out, true
}

func (r *resolver) remoteRace(ctx context.Context, name, display string) (*ResolvedRace, bool) {
	slug := entities.Slug(name)
	alias, aliased := raceAliases[entities.Fold(name)]
	if aliased {
		slug = alias.Race
	}
	if !r.policies.permits(KindRaces, slug) {
		return nil, false
	}
	rec, ok := fetch(ctx, r, KindRaces, slug, func(ctx context.Context) (*entities.RaceRecord, error) {
		return r.remote.GetRace(ctx, slug)
	})
	if !ok {
		return nil, false
	}

	out := &ResolvedRace{RaceRecord: rec, Display: display}
	if aliased {
		for i := range rec.Subraces {
			if rec.Subraces[i].Index == alias.Subrace {
				sub := rec.Subraces[i]
				out.Subrace = &sub
			}
		}
	}
	return out, true
}

func (r *resolver) ResolveBackground(ctx context.Context, name string) (*entities.BackgroundRecord, bool) {
	return r.store.Backgrounds(ctx).Find(name)
}

func (r *resolver) ResolveSpell(ctx context.Context, name string) (*entities.SpellRecord, bool) {
	if rec, ok := r.store.Spells(ctx).Find(name); ok {
		return rec, true
	}
	slug := entities.Slug(name)
	if !r.policies.permits(KindSpells, slug) {
		return nil, false
	}
	return fetch(ctx, r, KindSpells, slug, func(ctx context.Context) (*entities.SpellRecord, error) {
		return r.remote.GetSpell(ctx, slug)
	})
}

func (r *resolver) ResolveEquipment(ctx context.Context, name string) (*entities.EquipmentRecord, bool) {
	if rec, ok := r.store.Equipment(ctx).Find(name); ok {
		return rec, true
	}
	slug := entities.Slug(name)
	if !r.policies.permits(KindEquipment, slug) {
		return nil, false
	}
	return fetch(ctx, r, KindEquipment, slug, func(ctx context.Context) (*entities.EquipmentRecord, error) {
		return r.remote.GetEquipment(ctx, slug)
	})
}

// ResolveArmor resolves body armor or a shield. Any name ending in
// "shield" is a plain shield; otherwise local, remote, then the built-in
// table.
func (r *resolver) ResolveArmor(ctx context.Context, name string) (*entities.ArmorInfo, bool) {
	if strings.TrimSpace(name) == "" {
		return nil, false
	}
	if entities.IsShieldName(name) {
		return entities.ShieldInfo(), true
	}
	if rec, ok := r.ResolveEquipment(ctx, name); ok {
		if info, ok := entities.ArmorFromEquipment(rec); ok {
			return info, true
		}
	}
	return FallbackArmor(name)
}

func (r *resolver) ResolveCondition(ctx context.Context, name string) (*entities.ConditionRecord, bool) {
	return r.store.Conditions(ctx).Find(name)
}

func (r *resolver) ResolveInfusion(ctx context.Context, name string) (*entities.InfusionRecord, bool) {
	return r.store.Infusions(ctx).Find(name)
}

func (r *resolver) ResolveFeat(ctx context.Context, name string) (*entities.FeatRecord, bool) {
	return r.store.Feats(ctx).Find(name)
}

func (r *resolver) ClassSpells(ctx context.Context, class string, maxLevel int) []*entities.SpellRecord {
	var out []*entities.SpellRecord
	seen := make(map[string]bool)
	add := func(s *entities.SpellRecord) {
		key := entities.Fold(s.Name)
		if s.Level > maxLevel || seen[key] {
			return
		}
		seen[key] = true
		out = append(out, s)
	}

	for _, s := range r.store.Spells(ctx).All() {
		if s.Classes.Contains(class) || s.Classes.Contains(entities.Slug(class)) {
			add(s)
		}
	}

	classSlug := entities.Slug(class)
	if r.policies.permits(KindSpells, classSlug) && r.policies.permits(KindClasses, classSlug) {
		key := fmt.Sprintf("class:%s:%d", classSlug, maxLevel)
		remote, _ := fetch(ctx, r, KindSpells, key, func(ctx context.Context) ([]*entities.SpellRecord, error) {
			return r.remote.ListClassSpells(ctx, classSlug, maxLevel)
		})
		for _, s := range remote {
			add(s)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Level != out[j].Level {
			return out[i].Level < out[j].Level
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func (r *resolver) BaseSpeed(ctx context.Context, race string) (int, string) {
	if rec, ok := r.store.Races(ctx).Find(race); ok && rec.Speed > 0 {
		name := rec.Name
		if name == "" {
			name = race
		}
		return rec.Speed, fmt.Sprintf("Base (%s)", name)
	}
	if speed, ok := FallbackSpeed(race); ok {
		return speed, fmt.Sprintf("Base (%s)", race)
	}
	if resolved, ok := r.ResolveRace(ctx, race); ok && resolved.Remote && resolved.Speed > 0 {
		return resolved.Speed, fmt.Sprintf("Base (%s, API)", race)
	}
	return DefaultSpeed, "Base (default)"
}

func (r *resolver) Infusions(ctx context.Context) []*entities.InfusionRecord {
	return r.store.Infusions(ctx).All()
}
