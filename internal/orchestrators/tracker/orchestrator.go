// Package tracker applies sheet interactions (dot clicks, rests, damage,
// condition and infusion toggles) to a character's session state.
//
// Every mutator works on a copy of the state and returns the new state with
// a status message. Capacity violations are reported through the message
// with the state unchanged; errors are reserved for caller mistakes. A
// changed state is saved best-effort and announced on the event bus as
// "sheet.<mutator>".
package tracker

//go:generate mockgen -destination=mock/mock_service.go -package=trackermock github.com/KirkDiggler/rpg-sheet/internal/orchestrators/tracker Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-sheet/internal/catalog"
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/spells"
	characterrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/character"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/sessionstate"
)

// EventPrefix prefixes every event type the tracker publishes
const EventPrefix = "sheet."

// Event context keys
const (
	EventKeyMessage  = "message"
	EventKeyResource = "resource"
)

// Operations name the published events: EventPrefix + op
const (
	OpToggleResourceUse   = "toggle_resource_use"
	OpTogglePreparedSpell = "toggle_prepared_spell"
	OpApplyShortRest      = "apply_short_rest"
	OpApplyLongRest       = "apply_long_rest"
	OpApplyDamage         = "apply_damage"
	OpApplyHealing        = "apply_healing"
	OpToggleCondition     = "toggle_condition"
	OpReprepare           = "reprepare"
	OpResetSlots          = "reset_slots"
	OpToggleRage          = "toggle_rage"
	OpToggleSymbiotic     = "toggle_symbiotic"
	OpGrantTempHP         = "grant_temp_hp"
	OpClearTempHP         = "clear_temp_hp"
	OpToggleDeathSave     = "toggle_death_save"
	OpSetKnownInfusions   = "set_known_infusions"
	OpActivateInfusion    = "activate_infusion"
	OpDeactivateInfusion  = "deactivate_infusion"
)

// Ops lists every operation in Service order
var Ops = []string{
	OpToggleResourceUse,
	OpTogglePreparedSpell,
	OpApplyShortRest,
	OpApplyLongRest,
	OpApplyDamage,
	OpApplyHealing,
	OpToggleCondition,
	OpReprepare,
	OpResetSlots,
	OpToggleRage,
	OpToggleSymbiotic,
	OpGrantTempHP,
	OpClearTempHP,
	OpToggleDeathSave,
	OpSetKnownInfusions,
	OpActivateInfusion,
	OpDeactivateInfusion,
}

// Service mutates session state
type Service interface {
	ToggleResourceUse(ctx context.Context, input *ToggleResourceUseInput) (*Result, error)
	TogglePreparedSpell(ctx context.Context, input *TogglePreparedSpellInput) (*Result, error)
	ApplyShortRest(ctx context.Context, input *Target) (*Result, error)
	ApplyLongRest(ctx context.Context, input *Target) (*Result, error)
	ApplyDamage(ctx context.Context, input *AmountInput) (*Result, error)
	ApplyHealing(ctx context.Context, input *AmountInput) (*Result, error)
	ToggleCondition(ctx context.Context, input *ToggleConditionInput) (*Result, error)

	Reprepare(ctx context.Context, input *Target) (*Result, error)
	ResetSlots(ctx context.Context, input *ResetSlotsInput) (*Result, error)
	ToggleRage(ctx context.Context, input *ToggleInput) (*Result, error)
	ToggleSymbiotic(ctx context.Context, input *ToggleInput) (*Result, error)
	GrantTempHP(ctx context.Context, input *AmountInput) (*Result, error)
	ClearTempHP(ctx context.Context, input *Target) (*Result, error)
	ToggleDeathSave(ctx context.Context, input *ToggleDeathSaveInput) (*Result, error)

	SetKnownInfusions(ctx context.Context, input *SetKnownInfusionsInput) (*Result, error)
	ActivateInfusion(ctx context.Context, input *ActivateInfusionInput) (*Result, error)
	DeactivateInfusion(ctx context.Context, input *DeactivateInfusionInput) (*Result, error)
	ListInfusionTargets(ctx context.Context, input *ListInfusionTargetsInput) (*ListInfusionTargetsOutput, error)
}

// Target names the character a mutator applies to. A nil State is loaded
// from the repository, starting empty when none was saved.
type Target struct {
	Character *entities.Character
	State     *entities.SessionState
}

// Result is the outcome of a mutation
type Result struct {
	State *entities.SessionState `json:"state"`
	// ActiveInfusions is set by the infusion mutators
	ActiveInfusions []entities.ActiveInfusion `json:"activeInfusions,omitempty"`
	Message         string                    `json:"message,omitempty"`
	// Changed is false when the request was rejected or was a no-op
	Changed bool `json:"changed"`
}

// ToggleResourceUseInput clicks dot Index of a resource tracker
type ToggleResourceUseInput struct {
	Target
	Resource entities.ResourceKind
	Index    int
	// SlotLevel picks the slot row for ResourceSpellSlot
	SlotLevel int
	// Alt is the modifier click: reset to 0, or flip empty/full for slots
	Alt bool
}

// TogglePreparedSpellInput stars or unstars a spell
type TogglePreparedSpellInput struct {
	Target
	Level int
	Name  string
}

// AmountInput carries a hit point amount; negatives count as 0
type AmountInput struct {
	Target
	Amount int
}

// ToggleConditionInput flips a condition by name
type ToggleConditionInput struct {
	Target
	Name string
}

// ResetSlotsInput clears spent slots of one level, or all levels when
// Level is 0
type ResetSlotsInput struct {
	Target
	Level int
}

// ToggleInput turns a flag on or off
type ToggleInput struct {
	Target
	On bool
}

// ToggleDeathSaveInput clicks circle Index of the success or failure row
type ToggleDeathSaveInput struct {
	Target
	Success bool
	Index   int
}

// SetKnownInfusionsInput replaces the known infusion list
type SetKnownInfusionsInput struct {
	Target
	Names []string
}

// ActivateInfusionInput infuses an item. Owner defaults to the artificer.
type ActivateInfusionInput struct {
	Target
	Name  string
	Item  string
	Owner string
}

// DeactivateInfusionInput ends infusions by name, optionally narrowed to
// one item and owner
type DeactivateInfusionInput struct {
	Target
	Name  string
	Item  string
	Owner string
}

// ListInfusionTargetsInput names the infusion to find items for
type ListInfusionTargetsInput struct {
	Name string
}

// InfusionTarget is an item some character carries
type InfusionTarget struct {
	Owner string `json:"owner"`
	Item  string `json:"item"`
}

// ListInfusionTargetsOutput lists matching items grouped by owner in
// character order
type ListInfusionTargetsOutput struct {
	Targets []InfusionTarget `json:"targets"`
}

// Config holds the dependencies for the tracker
type Config struct {
	Resolver   catalog.Resolver
	Spells     spells.Service
	Repository sessionstate.Repository
	Characters characterrepo.Repository
	// EventBus defaults to a private bus
	EventBus events.EventBus
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
	if c.Spells == nil {
		vb.RequiredField("Spells")
	}
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Characters == nil {
		vb.RequiredField("Characters")
	}
	return vb.Build()
}

type orchestrator struct {
	resolver   catalog.Resolver
	spells     spells.Service
	repo       sessionstate.Repository
	characters characterrepo.Repository
	bus        events.EventBus
}

// NewOrchestrator creates a tracker
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	bus := cfg.EventBus
	if bus == nil {
		bus = events.NewBus()
	}
	return &orchestrator{
		resolver:   cfg.Resolver,
		spells:     cfg.Spells,
		repo:       cfg.Repository,
		characters: cfg.Characters,
		bus:        bus,
	}, nil
}

// begin validates the target and returns a private copy of its state
func (o *orchestrator) begin(ctx context.Context, t *Target) (*entities.Character, *entities.SessionState, error) {
	if t == nil || t.Character == nil {
		return nil, nil, errors.InvalidArgument("character is required")
	}
	c := t.Character
	if t.State != nil {
		return c, t.State.Clone(), nil
	}

	out, err := o.repo.Get(ctx, sessionstate.GetInput{Entity: c})
	switch {
	case err == nil:
		return c, out.State, nil
	case errors.IsNotFound(err):
		slog.Debug("No saved session state", "character", c.Name)
	default:
		slog.Warn("Failed to load session state, starting empty", "character", c.Name, "error", err)
	}
	return c, entities.NewSessionState(c.GetID()), nil
}

// unchanged reports a rejected or no-op request
func unchanged(state *entities.SessionState, msg string) *Result {
	return &Result{State: state, Message: msg}
}

// commit saves a changed state and announces it. Neither failure changes
// the result.
func (o *orchestrator) commit(
	ctx context.Context,
	op string,
	c *entities.Character,
	state *entities.SessionState,
	msg string,
	extra map[string]any,
) *Result {
	if out, err := o.repo.Save(ctx, sessionstate.SaveInput{Entity: c, State: state}); err != nil {
		slog.Warn("Failed to save session state", "character", c.Name, "op", op, "error", err)
	} else {
		state = out.State
	}
	o.publish(ctx, op, c, msg, extra)
	return &Result{State: state, Message: msg, Changed: true}
}

func (o *orchestrator) publish(ctx context.Context, op string, c *entities.Character, msg string, extra map[string]any) {
	event := events.NewGameEvent(EventPrefix+op, c, nil)
	event.Context().Set(EventKeyMessage, msg)
	for k, v := range extra {
		event.Context().Set(k, v)
	}
	if err := o.bus.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish sheet event", "op", op, "character", c.Name, "error", err)
	}
}
