// Package catalog loads the read-only rules catalogs (classes, races, spells,
// equipment, ...) from data directories and resolves named entities against
// them, falling back to the remote SRD API where policy allows.
package catalog

import (
	"context"
	"encoding/json"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Kind names a catalog file (<dir>/<kind>.json|.yaml|.yml).
type Kind string

const (
	KindClasses     Kind = "classes"
	KindSubclasses  Kind = "subclasses"
	KindRaces       Kind = "races"
	KindBackgrounds Kind = "backgrounds"
	KindSpells      Kind = "spells"
	KindEquipment   Kind = "equipment"
	KindConditions  Kind = "conditions"
	KindInfusions   Kind = "infusions"
	KindFeats       Kind = "feats"
)

var catalogExtensions = []string{".json", ".yaml", ".yml"}

// Kinds lists every catalog kind. Character loaders use it to tell catalog
// files apart from character files sharing a data directory.
func Kinds() []Kind {
	return []Kind{
		KindClasses, KindSubclasses, KindRaces, KindBackgrounds, KindSpells,
		KindEquipment, KindConditions, KindInfusions, KindFeats,
	}
}

// Extensions lists the file extensions catalogs and characters load from.
func Extensions() []string {
	return slices.Clone(catalogExtensions)
}

// StoreConfig configures a Store.
type StoreConfig struct {
	// DataDirs are searched in order; the first directory holding a kind's
	// file wins.
	DataDirs []string
}

// Validate ensures the store has somewhere to read from.
func (c *StoreConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("store config is required")
	}
	vb := errors.NewValidationBuilder()
	if len(c.DataDirs) == 0 {
		vb.RequiredField("data_dirs")
	}
	return vb.Build()
}

// Store holds the loaded catalogs. Each kind is read at most once per
// Store; concurrent first reads share the same load.
type Store struct {
	dirs     []string
	readFile func(string) ([]byte, error)

	group  singleflight.Group
	mu     sync.RWMutex
	tables map[Kind]any
}

// NewStore creates a Store over the configured data directories.
func NewStore(cfg *StoreConfig) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Store{
		dirs:     cfg.DataDirs,
		readFile: os.ReadFile,
		tables:   make(map[Kind]any),
	}, nil
}

// Table is one loaded catalog, indexed by folded name and SRD index.
type Table[T entities.Record] struct {
	items []T
	byKey map[string]T
}

func newTable[T entities.Record](items []T) *Table[T] {
	t := &Table[T]{items: items, byKey: make(map[string]T, len(items)*2)}
	for _, item := range items {
		for _, key := range []string{entities.Fold(item.RecordName()), entities.Fold(item.RecordIndex())} {
			if key == "" {
				continue
			}
			if _, exists := t.byKey[key]; !exists {
				t.byKey[key] = item
			}
		}
	}
	return t
}

// All returns the records in file order.
func (t *Table[T]) All() []T {
	if t == nil {
		return nil
	}
	return t.items
}

// Len returns the number of records.
func (t *Table[T]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.items)
}

// Find looks a record up by name or index, ignoring case and surrounding
// whitespace. Slug spellings ("hunters-mark") also match.
func (t *Table[T]) Find(name string) (T, bool) {
	var zero T
	if t == nil {
		return zero, false
	}
	if v, ok := t.byKey[entities.Fold(name)]; ok {
		return v, true
	}
	slug := entities.Slug(name)
	for _, item := range t.items {
		if entities.Slug(item.RecordName()) == slug || entities.Slug(item.RecordIndex()) == slug {
			return item, true
		}
	}
	return zero, false
}

// Classes returns the class catalog.
func (s *Store) Classes(ctx context.Context) *Table[*entities.ClassRecord] {
	return load[entities.ClassRecord](ctx, s, KindClasses)
}

// Subclasses returns the subclass catalog.
func (s *Store) Subclasses(ctx context.Context) *Table[*entities.SubclassRecord] {
	return load[entities.SubclassRecord](ctx, s, KindSubclasses)
}

// Races returns the race catalog.
func (s *Store) Races(ctx context.Context) *Table[*entities.RaceRecord] {
	return load[entities.RaceRecord](ctx, s, KindRaces)
}

// Backgrounds returns the background catalog.
func (s *Store) Backgrounds(ctx context.Context) *Table[*entities.BackgroundRecord] {
	return load[entities.BackgroundRecord](ctx, s, KindBackgrounds)
}

// Spells returns the spell catalog.
func (s *Store) Spells(ctx context.Context) *Table[*entities.SpellRecord] {
	return load[entities.SpellRecord](ctx, s, KindSpells)
}

// Equipment returns the equipment catalog.
func (s *Store) Equipment(ctx context.Context) *Table[*entities.EquipmentRecord] {
	return load[entities.EquipmentRecord](ctx, s, KindEquipment)
}

// Conditions returns the condition catalog.
func (s *Store) Conditions(ctx context.Context) *Table[*entities.ConditionRecord] {
	return load[entities.ConditionRecord](ctx, s, KindConditions)
}

// Infusions returns the infusion catalog.
func (s *Store) Infusions(ctx context.Context) *Table[*entities.InfusionRecord] {
	return load[entities.InfusionRecord](ctx, s, KindInfusions)
}

// Feats returns the feat catalog.
func (s *Store) Feats(ctx context.Context) *Table[*entities.FeatRecord] {
	return load[entities.FeatRecord](ctx, s, KindFeats)
}

// load returns the memoized table for kind. A missing or unreadable file
// yields an empty table, which is memoized too. Parsing is local, so a
// cancelled ctx never cuts a load short.
func load[T any, P interface {
	*T
	entities.Record
}](ctx context.Context, s *Store, kind Kind) *Table[P] {
	s.mu.RLock()
	cached, ok := s.tables[kind]
	s.mu.RUnlock()
	if ok {
		return cached.(*Table[P])
	}

	v, _, _ := s.group.Do(string(kind), func() (any, error) {
		s.mu.RLock()
		cached, ok := s.tables[kind]
		s.mu.RUnlock()
		if ok {
			return cached, nil
		}

		items := readKind[T, P](ctx, s, kind)
		table := newTable(items)

		s.mu.Lock()
		s.tables[kind] = table
		s.mu.Unlock()
		return table, nil
	})
	return v.(*Table[P])
}

func readKind[T any, P interface {
	*T
	entities.Record
}](ctx context.Context, s *Store, kind Kind) []P {
	path, data, ok := s.find(kind)
	if !ok {
		slog.DebugContext(ctx, "No catalog file", "kind", kind, "dirs", s.dirs)
		return nil
	}

	docs, err := decodeDocument(path, data)
	if err != nil {
		slog.Warn("Failed to parse catalog", "kind", kind, "path", path, "error", err)
		return nil
	}

	out := make([]P, 0, len(docs))
	for i, doc := range docs {
		raw, err := json.Marshal(doc)
		if err != nil {
			slog.Warn("Skipping catalog entry", "kind", kind, "entry", i, "error", err)
			continue
		}
		var rec T
		if err := json.Unmarshal(raw, &rec); err != nil {
			slog.Warn("Skipping catalog entry", "kind", kind, "entry", i, "error", err)
			continue
		}
		out = append(out, P(&rec))
	}
	slog.DebugContext(ctx, "Loaded catalog", "kind", kind, "path", path, "count", len(out))
	return out
}

func (s *Store) find(kind Kind) (string, []byte, bool) {
	for _, dir := range s.dirs {
		for _, ext := range catalogExtensions {
			path := filepath.Join(dir, string(kind)+ext)
			data, err := s.readFile(path)
			if err == nil {
				return path, data, true
			}
			if !errors.Is(err, fs.ErrNotExist) {
				slog.Warn("Failed to read catalog", "path", path, "error", err)
			}
		}
	}
	return "", nil, false
}

// decodeDocument parses a JSON or YAML catalog into a list of entries.
// Accepted shapes: a list, a single record, a wrapper object holding one
// list, or an object keyed by record name.
func decodeDocument(path string, data []byte) ([]any, error) {
	var doc any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		doc = entities.StringKeys(doc)
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	}

	switch t := doc.(type) {
	case []any:
		return t, nil
	case map[string]any:
		if _, ok := t["name"]; ok {
			return []any{t}, nil
		}
		if _, ok := t["index"]; ok {
			return []any{t}, nil
		}
		if len(t) == 1 {
			for _, v := range t {
				if list, ok := v.([]any); ok {
					return list, nil
				}
			}
		}
		keys := make([]string, 0, len(t))
		for key := range t {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		out := make([]any, 0, len(t))
		for _, key := range keys {
			m, ok := t[key].(map[string]any)
			if !ok {
				continue
			}
			if _, named := m["name"]; !named {
				m["name"] = key
			}
			out = append(out, m)
		}
		return out, nil
	case nil:
		return nil, nil
	}
	return nil, errors.InvalidArgumentf("unsupported catalog document in %s", path)
}
