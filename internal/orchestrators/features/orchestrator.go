// Package features aggregates the named features a character has from its
// race, class, subclass, feats and background.
package features

//go:generate mockgen -destination=mock/mock_service.go -package=featuresmock github.com/KirkDiggler/rpg-sheet/internal/orchestrators/features Service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/rpg-sheet/internal/catalog"
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Service aggregates character features
type Service interface {
	AggregateFeatures(ctx context.Context, input *AggregateFeaturesInput) (*AggregateFeaturesOutput, error)
}

// AggregateFeaturesInput for AggregateFeatures
type AggregateFeaturesInput struct {
	Character *entities.Character
}

// AggregateFeaturesOutput lists the merged features in display order
type AggregateFeaturesOutput struct {
	Features []entities.Feature
}

// Config holds the dependencies for the features orchestrator
type Config struct {
	Resolver catalog.Resolver
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
	return vb.Build()
}

type orchestrator struct {
	resolver catalog.Resolver
}

// NewOrchestrator creates a features orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &orchestrator{resolver: cfg.Resolver}, nil
}

// AggregateFeatures resolves every source concurrently, then merges them
// race, class, subclass, feats, background. A source that fails to resolve
// contributes nothing.
func (o *orchestrator) AggregateFeatures(
	ctx context.Context,
	input *AggregateFeaturesInput,
) (*AggregateFeaturesOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	c := input.Character

	sources := []func(context.Context, *entities.Character) []entities.Feature{
		o.raceFeatures,
		o.classFeatures,
		o.subclassFeatures,
		o.featFeatures,
		o.backgroundFeatures,
	}
	results := make([][]entities.Feature, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	for i, fn := range sources {
		g.Go(func() error {
			results[i] = fn(gctx, c)
			return nil
		})
	}
	_ = g.Wait()

	var all []entities.Feature
	for _, r := range results {
		all = append(all, r...)
	}

	merged := Merge(all)
	slog.Debug("Features aggregated",
		"character", c.Name,
		"raw", len(all),
		"merged", len(merged),
	)

	return &AggregateFeaturesOutput{Features: merged}, nil
}

// IsNoise reports feature names that never appear on the features page:
// proficiencies, languages and the generic spellcasting entries.
func IsNoise(name string) bool {
	n := strings.ToLower(strings.TrimSpace(name))
	return n == "" ||
		strings.HasSuffix(n, " proficiency") ||
		strings.HasSuffix(n, " language") ||
		strings.HasPrefix(n, "spellcasting")
}

// Merge trims names, drops noise and (source, name) duplicates, then suppresses generic
// entries ("Fighting Style") once a qualified one ("Fighting Style:
// Archery") is present, and repeated names from other sources.
func Merge(features []entities.Feature) []entities.Feature {
	seen := make(map[string]bool)
	var kept []entities.Feature
	for _, f := range features {
		f.Name = strings.TrimSpace(f.Name)
		if IsNoise(f.Name) {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(f.Source) + "::" + f.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, f)
	}

	var bases []string
	for _, f := range kept {
		if base, _, ok := strings.Cut(f.Name, ":"); ok {
			bases = append(bases, strings.ToLower(strings.TrimSpace(base)))
		}
	}

	names := make(map[string]bool)
	out := make([]entities.Feature, 0, len(kept))
	for _, f := range kept {
		lower := strings.ToLower(f.Name)
		if names[lower] {
			continue
		}
		if !strings.Contains(f.Name, ":") && hasAnyPrefix(lower, bases) {
			continue
		}
		names[lower] = true
		out = append(out, f)
	}
	return out
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func (o *orchestrator) raceFeatures(ctx context.Context, c *entities.Character) []entities.Feature {
	race, ok := o.resolver.ResolveRace(ctx, c.Race)
	if !ok {
		return nil
	}
	source := "Race (Local)"
	if race.Remote {
		source = "Race"
	}

	out := make([]entities.Feature, 0, len(race.Traits)+1)
	for _, t := range race.Traits {
		if t.Name == "" {
			continue
		}
		out = append(out, entities.Feature{Name: t.Name, Desc: race.TraitDesc(t), Source: source})
	}
	if race.Subrace != nil {
		out = append(out, entities.Feature{
			Name:   race.Subrace.Name,
			Desc:   fmt.Sprintf("%s subrace of the %s.", race.Subrace.Name, race.Name),
			Source: "Subrace",
		})
	}
	return out
}

func (o *orchestrator) classFeatures(ctx context.Context, c *entities.Character) []entities.Feature {
	class, ok := o.resolver.ResolveClass(ctx, c.Class, c.Level)
	if !ok {
		return nil
	}
	var out []entities.Feature
	for _, f := range class.Progression() {
		if f.Level > c.Level {
			continue
		}
		source := fmt.Sprintf("Class %d (Local)", f.Level)
		if class.Remote {
			source = fmt.Sprintf("Class %d", f.Level)
		}
		out = append(out, entities.Feature{Name: f.Name, Desc: f.Desc, Source: source})
	}
	return out
}

func (o *orchestrator) subclassFeatures(ctx context.Context, c *entities.Character) []entities.Feature {
	if c.Build == "" {
		return nil
	}
	sub, ok := o.resolver.ResolveSubclass(ctx, c.Build, c.Class)
	if !ok {
		return nil
	}
	var out []entities.Feature
	for _, f := range sub.Progression() {
		if f.Level > c.Level {
			continue
		}
		source := fmt.Sprintf("Subclass %d (Local)", f.Level)
		if f.Unleveled {
			source = "Subclass (Local)"
		}
		out = append(out, entities.Feature{Name: f.Name, Desc: f.Desc, Source: source})
	}
	return out
}

func (o *orchestrator) featFeatures(ctx context.Context, c *entities.Character) []entities.Feature {
	var out []entities.Feature
	for _, name := range c.Feats {
		feat, ok := o.resolver.ResolveFeat(ctx, name)
		if !ok {
			continue
		}
		out = append(out, entities.Feature{Name: feat.Name, Desc: feat.Desc.String(), Source: "Feat"})
	}
	return out
}

func (o *orchestrator) backgroundFeatures(ctx context.Context, c *entities.Character) []entities.Feature {
	if c.Background == "" {
		return nil
	}
	bg, ok := o.resolver.ResolveBackground(ctx, c.Background)
	if !ok {
		return nil
	}
	source := fmt.Sprintf("Background (%s)", bg.Source)
	if bg.Source == "" {
		source = "Background (Local)"
	}
	out := make([]entities.Feature, 0, len(bg.Features))
	for _, f := range bg.Features {
		out = append(out, entities.Feature{Name: f.Name, Desc: f.Desc.String(), Source: source})
	}
	return out
}
