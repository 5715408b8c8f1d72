// Package external is the location for the dnd5e-api client
package external

//go:generate mockgen -destination=mock/mock_client.go -package=externalmock github.com/KirkDiggler/rpg-sheet/internal/clients/external Client

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	srd "github.com/fadedpez/dnd5e-api/entities"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

const (
	defaultBaseURL  = "https://www.dnd5eapi.co/api/2014/"
	defaultTimeout  = 7 * time.Second
	defaultCacheTTL = 24 * time.Hour

	// fan-out limit for per-item detail calls
	detailConcurrency = 8
)

// Client fetches SRD reference data and returns it as catalog records.
// Indexes are SRD slugs ("half-elf", "cure-wounds").
type Client interface {
	// GetClass returns the class with its features for levels 1..level.
	GetClass(ctx context.Context, index string, level int) (*entities.ClassRecord, error)
	GetRace(ctx context.Context, index string) (*entities.RaceRecord, error)
	GetSpell(ctx context.Context, index string) (*entities.SpellRecord, error)
	// ListClassSpells returns the class spell list up to maxLevel.
	ListClassSpells(ctx context.Context, classIndex string, maxLevel int) ([]*entities.SpellRecord, error)
	GetEquipment(ctx context.Context, index string) (*entities.EquipmentRecord, error)
}

type client struct {
	dnd5eClient dnd5e.Interface
}

// Config contains configuration options for the external client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 7 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = defaultTimeout
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if cfg.HTTPTimeout < 0 || cfg.CacheTTL < 0 {
		return errors.InvalidArgument("timeouts must not be negative")
	}
	return nil
}

// New creates a new external client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  httpClient,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create D&D 5e API client")
	}

	return &client{
		dnd5eClient: dnd5e.NewCachedClient(baseClient, cfg.CacheTTL),
	}, nil
}

// call runs a blocking SDK call and gives up when ctx ends. The SDK has no
// context support, so an abandoned call finishes in the background.
func call[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	type result struct {
		v   T
		err error
	}
	done := make(chan result, 1)
	go func() {
		v, err := fn()
		done <- result{v, err}
	}()

	select {
	case r := <-done:
		return r.v, r.err
	case <-ctx.Done():
		var zero T
		return zero, errors.FromContext(ctx.Err(), "D&D 5e API call abandoned")
	}
}

func (c *client) GetClass(ctx context.Context, index string, level int) (*entities.ClassRecord, error) {
	class, err := call(ctx, func() (*srd.Class, error) { return c.dnd5eClient.GetClass(index) })
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get class %s", index)
	}
	if class == nil {
		return nil, errors.NotFoundf("class %s not found", index)
	}

	record := &entities.ClassRecord{
		Index:  class.Key,
		Name:   class.Name,
		Remote: true,
	}

	for lvl := 1; lvl <= level && lvl <= 20; lvl++ {
		features, err := c.levelFeatures(ctx, class, lvl)
		if err != nil {
			return nil, err
		}
		record.Levels = append(record.Levels, features...)
	}

	return record, nil
}

// levelFeatures loads the features gained at one class level. A feature
// whose detail call fails keeps its reference name with a generic
// description.
func (c *client) levelFeatures(ctx context.Context, class *srd.Class, level int) ([]entities.LeveledFeature, error) {
	lvl, err := call(ctx, func() (*srd.Level, error) { return c.dnd5eClient.GetClassLevel(class.Key, level) })
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get %s level %d", class.Key, level)
	}
	if lvl == nil {
		return nil, nil
	}

	out := make([]entities.LeveledFeature, len(lvl.Features))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(detailConcurrency)
	for i, ref := range lvl.Features {
		if ref == nil {
			continue
		}
		g.Go(func() error {
			out[i] = entities.LeveledFeature{
				Level: level,
				Name:  ref.Name,
				Desc:  buildFeatureDescription(class.Name, level),
			}
			feature, err := call(gctx, func() (*srd.Feature, error) { return c.dnd5eClient.GetFeature(ref.Key) })
			if err != nil {
				slog.Warn("Failed to fetch feature details", "feature", ref.Key, "error", err)
				return nil
			}
			if feature != nil && feature.Name != "" {
				out[i].Name = feature.Name
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	features := out[:0]
	for _, f := range out {
		if f.Name != "" {
			features = append(features, f)
		}
	}
	return features, nil
}

// buildFeatureDescription is used for remote class features; the API
// entity carries no description text.
func buildFeatureDescription(className string, level int) string {
	return fmt.Sprintf("A %s class feature gained at level %d.", className, level)
}

func (c *client) GetRace(ctx context.Context, index string) (*entities.RaceRecord, error) {
	race, err := call(ctx, func() (*srd.Race, error) { return c.dnd5eClient.GetRace(index) })
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get race %s", index)
	}
	if race == nil {
		return nil, errors.NotFoundf("race %s not found", index)
	}
	return convertRace(race), nil
}

func convertRace(race *srd.Race) *entities.RaceRecord {
	record := &entities.RaceRecord{
		Index:  race.Key,
		Name:   race.Name,
		Speed:  race.Speed,
		Remote: true,
	}
	for _, t := range race.Traits {
		if t != nil {
			record.Traits = append(record.Traits, entities.NamedText{Name: t.Name})
		}
	}
	for _, sr := range race.SubRaces {
		if sr != nil {
			record.Subraces = append(record.Subraces, entities.Reference{Index: sr.Key, Name: sr.Name})
		}
	}
	return record
}

func (c *client) GetSpell(ctx context.Context, index string) (*entities.SpellRecord, error) {
	spell, err := call(ctx, func() (*srd.Spell, error) { return c.dnd5eClient.GetSpell(index) })
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get spell %s", index)
	}
	if spell == nil {
		return nil, errors.NotFoundf("spell %s not found", index)
	}
	return convertSpell(spell), nil
}

func (c *client) ListClassSpells(ctx context.Context, classIndex string, maxLevel int) ([]*entities.SpellRecord, error) {
	input := &dnd5e.ListSpellsInput{Class: classIndex}
	refs, err := call(ctx, func() ([]*srd.ReferenceItem, error) { return c.dnd5eClient.ListSpells(input) })
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s spells", classIndex)
	}
	slog.Debug("Got spell references", "class", classIndex, "count", len(refs))

	spells := make([]*entities.SpellRecord, len(refs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(detailConcurrency)
	for i, ref := range refs {
		if ref == nil {
			continue
		}
		g.Go(func() error {
			spell, err := call(gctx, func() (*srd.Spell, error) { return c.dnd5eClient.GetSpell(ref.Key) })
			if err != nil {
				slog.Warn("Failed to get spell details", "spell", ref.Key, "error", err)
				return nil
			}
			if spell != nil {
				spells[i] = convertSpell(spell)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.FromContext(err, "listing class spells")
	}

	out := make([]*entities.SpellRecord, 0, len(spells))
	for _, s := range spells {
		if s != nil && s.Level <= maxLevel {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Level != out[j].Level {
			return out[i].Level < out[j].Level
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func convertSpell(spell *srd.Spell) *entities.SpellRecord {
	record := &entities.SpellRecord{
		Index:         spell.Key,
		Name:          spell.Name,
		Level:         spell.SpellLevel,
		CastingTime:   spell.CastingTime,
		Range:         spell.Range,
		Duration:      spell.Duration,
		Ritual:        spell.Ritual,
		Concentration: spell.Concentration,
		Desc:          entities.Text(buildSpellDescription(spell)),
	}
	if spell.SpellSchool != nil {
		record.School = spell.SpellSchool.Name
	}
	for _, class := range spell.SpellClasses {
		if class != nil {
			record.Classes = append(record.Classes, class.Name)
		}
	}
	return record
}

// buildSpellDescription summarizes the fields the API exposes; the
// entity has no rules text.
func buildSpellDescription(spell *srd.Spell) string {
	parts := []string{buildSpellHeader(spell)}

	if spell.CastingTime != "" {
		parts = append(parts, fmt.Sprintf("Casting Time: %s", spell.CastingTime))
	}
	if spell.Range != "" {
		parts = append(parts, fmt.Sprintf("Range: %s", spell.Range))
	}
	if spell.Duration != "" {
		parts = append(parts, fmt.Sprintf("Duration: %s", spell.Duration))
	}

	var properties []string
	if spell.Ritual {
		properties = append(properties, "Ritual")
	}
	if spell.Concentration {
		properties = append(properties, "Concentration")
	}
	if len(properties) > 0 {
		parts = append(parts, fmt.Sprintf("Properties: %s", strings.Join(properties, ", ")))
	}

	if spell.DC != nil {
		dcInfo := "Saving Throw"
		if spell.DC.DCType != nil {
			dcInfo = fmt.Sprintf("%s Save", spell.DC.DCType.Name)
		}
		if spell.DC.DCSuccess != "" {
			dcInfo += fmt.Sprintf(" (%s)", spell.DC.DCSuccess)
		}
		parts = append(parts, dcInfo)
	}

	return strings.Join(parts, "\n")
}

func buildSpellHeader(spell *srd.Spell) string {
	levelStr := "Cantrip"
	if spell.SpellLevel > 0 {
		levelStr = fmt.Sprintf("Level %d", spell.SpellLevel)
	}

	schoolName := "Unknown School"
	if spell.SpellSchool != nil {
		schoolName = spell.SpellSchool.Name
	}

	return fmt.Sprintf("%s %s spell", levelStr, schoolName)
}

func (c *client) GetEquipment(ctx context.Context, index string) (*entities.EquipmentRecord, error) {
	item, err := call(ctx, func() (dnd5e.EquipmentInterface, error) { return c.dnd5eClient.GetEquipment(index) })
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get equipment %s", index)
	}
	record := convertEquipment(item)
	if record == nil {
		return nil, errors.NotFoundf("equipment %s not found", index)
	}
	return record, nil
}

func convertEquipment(equipment dnd5e.EquipmentInterface) *entities.EquipmentRecord {
	if equipment == nil {
		return nil
	}

	switch eq := equipment.(type) {
	case *srd.Weapon:
		record := &entities.EquipmentRecord{
			Index:             eq.Key,
			Name:              eq.Name,
			EquipmentCategory: reference(eq.EquipmentCategory),
			WeaponCategory:    eq.WeaponCategory,
			WeaponRange:       eq.WeaponRange,
		}
		if eq.Damage != nil {
			record.Damage = &entities.Damage{DamageDice: eq.Damage.DamageDice}
			if eq.Damage.DamageType != nil {
				record.Damage.DamageType = reference(eq.Damage.DamageType)
			}
		}
		for _, prop := range eq.Properties {
			if prop != nil {
				record.Properties = append(record.Properties, reference(prop))
			}
		}
		return record

	case *srd.Armor:
		record := &entities.EquipmentRecord{
			Index:               eq.Key,
			Name:                eq.Name,
			EquipmentCategory:   reference(eq.EquipmentCategory),
			ArmorCategory:       eq.ArmorCategory,
			StrMinimum:          eq.StrMinimum,
			StealthDisadvantage: eq.StealthDisadvantage,
		}
		if eq.ArmorClass != nil {
			record.ArmorClass = &entities.ArmorClass{
				Base:     eq.ArmorClass.Base,
				DexBonus: eq.ArmorClass.DexBonus,
			}
		}
		return record

	case *srd.Equipment:
		return &entities.EquipmentRecord{
			Index:             eq.Key,
			Name:              eq.Name,
			EquipmentCategory: reference(eq.EquipmentCategory),
		}
	}

	return nil
}

func reference(ref *srd.ReferenceItem) entities.Reference {
	if ref == nil {
		return entities.Reference{}
	}
	return entities.Reference{Index: ref.Key, Name: ref.Name}
}
