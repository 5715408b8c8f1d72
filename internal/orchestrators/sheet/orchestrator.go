// Package sheet loads a character with its session state and assembles
// the full sheet view from the derived-state orchestrators.
package sheet

//go:generate mockgen -destination=mock/mock_service.go -package=sheetmock github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet Service

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/actions"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/combat"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/features"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/spells"
	characterrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/character"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/sessionstate"
)

// Service builds sheet views
type Service interface {
	// LoadSheet returns the full view for a character.
	// Returns errors:
	// - InvalidArgument if the id is empty
	// - NotFound if no character file matches the id
	LoadSheet(ctx context.Context, input *LoadSheetInput) (*LoadSheetOutput, error)

	// Refresh rebuilds the view for an already loaded character and state,
	// typically after a tracker mutation
	Refresh(ctx context.Context, input *RefreshInput) (*LoadSheetOutput, error)
}

// LoadSheetInput accepts the same id forms as the character repository
type LoadSheetInput struct {
	CharacterID string
}

// RefreshInput for Refresh. A nil State is read from the repository.
type RefreshInput struct {
	Character *entities.Character
	State     *entities.SessionState
}

// LoadSheetOutput is the complete sheet view model
type LoadSheetOutput struct {
	Character       *entities.Character               `json:"character"`
	Path            string                            `json:"path,omitempty"`
	State           *entities.SessionState            `json:"state"`
	ActiveInfusions []entities.ActiveInfusion         `json:"activeInfusions"`
	Stats           *combat.ComputeDerivedStatsOutput `json:"stats"`
	Features        []entities.Feature                `json:"features"`
	Actions         *actions.AggregateActionsOutput   `json:"actions"`
	Spells          *spells.BuildSpellModelOutput     `json:"spells"`
	Message         string                            `json:"message"`
}

// Config holds the dependencies for the sheet facade
type Config struct {
	Characters characterrepo.Repository
	States     sessionstate.Repository
	Combat     combat.Service
	Features   features.Service
	Actions    actions.Service
	Spells     spells.Service
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	vb := errors.NewValidationBuilder()
	if c.Characters == nil {
		vb.RequiredField("Characters")
	}
	if c.States == nil {
		vb.RequiredField("States")
	}
	if c.Combat == nil {
		vb.RequiredField("Combat")
	}
	if c.Features == nil {
		vb.RequiredField("Features")
	}
	if c.Actions == nil {
		vb.RequiredField("Actions")
	}
	if c.Spells == nil {
		vb.RequiredField("Spells")
	}
	return vb.Build()
}

type orchestrator struct {
	characters characterrepo.Repository
	states     sessionstate.Repository
	combat     combat.Service
	features   features.Service
	actions    actions.Service
	spells     spells.Service
}

// NewOrchestrator creates the sheet facade
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &orchestrator{
		characters: cfg.Characters,
		states:     cfg.States,
		combat:     cfg.Combat,
		features:   cfg.Features,
		actions:    cfg.Actions,
		spells:     cfg.Spells,
	}, nil
}

func (o *orchestrator) LoadSheet(ctx context.Context, input *LoadSheetInput) (*LoadSheetOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character id is required")
	}

	got, err := o.characters.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NotFoundf("Could not load %s", input.CharacterID)
		}
		return nil, errors.Wrapf(err, "failed to load character %s", input.CharacterID)
	}

	out, err := o.Refresh(ctx, &RefreshInput{Character: got.Character})
	if err != nil {
		return nil, err
	}
	out.Path = got.Path
	slog.Info("Sheet loaded", "character", got.Character.Name, "path", got.Path)
	return out, nil
}

func (o *orchestrator) Refresh(ctx context.Context, input *RefreshInput) (*LoadSheetOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	c := input.Character
	state := input.State
	if state == nil {
		state = o.loadState(ctx, c)
	}
	active := o.loadInfusions(ctx)

	out := &LoadSheetOutput{
		Character:       c,
		State:           state,
		ActiveInfusions: active,
		Message:         fmt.Sprintf("Loaded %s", c.Name),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := o.combat.ComputeDerivedStats(gctx, &combat.ComputeDerivedStatsInput{
			Character: c,
			State:     state,
			Infusions: active,
		})
		if err != nil {
			return errors.Wrap(err, "failed to compute derived stats")
		}
		out.Stats = stats
		return nil
	})
	g.Go(func() error {
		feats, err := o.features.AggregateFeatures(gctx, &features.AggregateFeaturesInput{Character: c})
		if err != nil {
			return errors.Wrap(err, "failed to aggregate features")
		}
		out.Features = feats.Features
		return nil
	})
	g.Go(func() error {
		acts, err := o.actions.AggregateActions(gctx, &actions.AggregateActionsInput{Character: c, State: state})
		if err != nil {
			return errors.Wrap(err, "failed to aggregate actions")
		}
		out.Actions = acts
		return nil
	})
	g.Go(func() error {
		model, err := o.spells.BuildSpellModel(gctx, &spells.BuildSpellModelInput{
			Character:       c,
			State:           state,
			ActiveInfusions: active,
		})
		if err != nil {
			return errors.Wrap(err, "failed to build spell model")
		}
		out.Spells = model
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// loadState never fails: a missing or unreadable state starts fresh
func (o *orchestrator) loadState(ctx context.Context, c *entities.Character) *entities.SessionState {
	got, err := o.states.Get(ctx, sessionstate.GetInput{Entity: c})
	if err == nil {
		return got.State
	}
	if !errors.IsNotFound(err) {
		slog.Warn("Failed to load session state", "character", c.Name, "error", err)
	}
	return entities.NewSessionState(c.GetID())
}

func (o *orchestrator) loadInfusions(ctx context.Context) []entities.ActiveInfusion {
	got, err := o.states.ListActiveInfusions(ctx)
	if err != nil {
		slog.Warn("Failed to load active infusions", "error", err)
		return []entities.ActiveInfusion{}
	}
	return got.Infusions
}
