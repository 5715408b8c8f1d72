package tracker

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

const deathSaveCircles = 3

var resourceLabels = map[entities.ResourceKind]string{
	entities.ResourceRage:             "Rage",
	entities.ResourceZealousPresence:  "Zealous Presence",
	entities.ResourceEldritchCannon:   "Eldritch Cannon",
	entities.ResourceRabbitHop:        "Rabbit Hop",
	entities.ResourceKi:               "Ki",
	entities.ResourceChannelDivinity:  "Channel Divinity",
	entities.ResourceWildShape:        "Wild Shape",
	entities.ResourceSpellSlot:        "Spell slots",
	entities.ResourceDeathSaveSuccess: "Death save successes",
	entities.ResourceDeathSaveFailure: "Death save failures",
}

// Capacity is the number of dots a resource shows for a character.
// slotLevel is only read for spell slots.
func Capacity(c *entities.Character, kind entities.ResourceKind, slotLevel int) int {
	switch kind {
	case entities.ResourceRage:
		if !c.ClassIs("barbarian") {
			return 0
		}
		return min(rules.RageMax(c.Level), rules.RageDots)
	case entities.ResourceZealousPresence:
		return rules.ZealousPresenceMax(c.Class, c.Build, c.Level)
	case entities.ResourceEldritchCannon:
		return rules.EldritchCannonMax(c.Class, c.Build, c.Level)
	case entities.ResourceRabbitHop:
		return rules.RabbitHopMax(c.Race, c.Level)
	case entities.ResourceKi:
		return rules.KiMax(c.Class, c.Level)
	case entities.ResourceChannelDivinity:
		return rules.ChannelDivinityMax(c.Class, c.Level)
	case entities.ResourceWildShape:
		return rules.WildShapeMax(c.Class, c.Level)
	case entities.ResourceSpellSlot:
		return rules.SlotsFor(c.Class, c.Level)[slotLevel]
	case entities.ResourceDeathSaveSuccess, entities.ResourceDeathSaveFailure:
		return deathSaveCircles
	}
	return 0
}

// counter returns the used count a dot resource is stored in. Spell slots
// and death saves are stored elsewhere.
func counter(state *entities.SessionState, kind entities.ResourceKind) *int {
	switch kind {
	case entities.ResourceRage:
		return &state.Actions.RageUsed
	case entities.ResourceZealousPresence:
		return &state.Actions.ZealousPresenceUsed
	case entities.ResourceEldritchCannon:
		return &state.Actions.EldritchCannonUsed
	case entities.ResourceRabbitHop:
		return &state.Actions.RabbitHopUsed
	case entities.ResourceKi:
		return &state.Spells.KiSpent
	case entities.ResourceChannelDivinity:
		return &state.Spells.ChannelDivinityUsed
	case entities.ResourceWildShape:
		return &state.Spells.WildShapeUsed
	}
	return nil
}

func (o *orchestrator) ToggleResourceUse(ctx context.Context, input *ToggleResourceUseInput) (*Result, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	switch input.Resource {
	case entities.ResourceDeathSaveSuccess, entities.ResourceDeathSaveFailure:
		return o.ToggleDeathSave(ctx, &ToggleDeathSaveInput{
			Target:  input.Target,
			Success: input.Resource == entities.ResourceDeathSaveSuccess,
			Index:   input.Index,
		})
	}
	if _, err := entities.ParseResourceKind(string(input.Resource)); err != nil {
		return nil, err
	}
	if input.Index < 0 {
		return nil, errors.InvalidArgumentf("dot index %d is negative", input.Index)
	}
	if input.Resource == entities.ResourceSpellSlot && (input.SlotLevel < 1 || input.SlotLevel > rules.MaxSpellSlotLevel) {
		return nil, errors.InvalidArgumentf("slot level %d out of range", input.SlotLevel)
	}

	c, state, err := o.begin(ctx, &input.Target)
	if err != nil {
		return nil, err
	}

	label := resourceLabels[input.Resource]
	capacity := Capacity(c, input.Resource, input.SlotLevel)
	if capacity <= 0 {
		return unchanged(state, fmt.Sprintf("%s is not available.", label)), nil
	}

	slot := input.Resource == entities.ResourceSpellSlot
	var before int
	if slot {
		before = state.Spells.SlotsSpent[input.SlotLevel]
		label = fmt.Sprintf("Level %d slots", input.SlotLevel)
	} else {
		before = *counter(state, input.Resource)
	}

	var after int
	switch {
	case input.Alt && slot:
		after = rules.ToggleFull(before, capacity)
	case input.Alt:
		after = 0
	default:
		after = rules.ToggleDot(before, input.Index, capacity)
	}

	msg := fmt.Sprintf("%s: %d/%d used.", label, after, capacity)
	if after == before {
		return unchanged(state, msg), nil
	}
	if slot {
		if state.Spells.SlotsSpent == nil {
			state.Spells.SlotsSpent = make(map[int]int)
		}
		state.Spells.SlotsSpent[input.SlotLevel] = after
	} else {
		*counter(state, input.Resource) = after
	}
	if input.Resource == entities.ResourceWildShape && after < 1 {
		state.Spells.SymbioticActive = false
	}
	return o.commit(ctx, OpToggleResourceUse, c, state, msg, map[string]any{
		EventKeyResource: string(input.Resource),
	}), nil
}

func (o *orchestrator) ToggleDeathSave(ctx context.Context, input *ToggleDeathSaveInput) (*Result, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Index < 0 || input.Index >= deathSaveCircles {
		return nil, errors.InvalidArgumentf("death save index %d out of range", input.Index)
	}
	c, state, err := o.begin(ctx, &input.Target)
	if err != nil {
		return nil, err
	}

	saves := &state.SeedVitals(c).DeathSaves
	row := &saves.Failures
	if input.Success {
		row = &saves.Successes
	}
	*row = rules.ToggleDot(*row, input.Index, deathSaveCircles)

	var msg string
	switch {
	case saves.Successes >= deathSaveCircles:
		saves.Successes, saves.Failures = 0, 0
		msg = "Stabilized."
	case saves.Failures >= deathSaveCircles:
		saves.Successes, saves.Failures = 0, 0
		msg = "Dead."
	default:
		msg = fmt.Sprintf("Death saves: %d successes, %d failures.", saves.Successes, saves.Failures)
	}
	return o.commit(ctx, OpToggleDeathSave, c, state, msg, nil), nil
}

func (o *orchestrator) ApplyShortRest(ctx context.Context, input *Target) (*Result, error) {
	c, state, err := o.begin(ctx, input)
	if err != nil {
		return nil, err
	}
	state.Spells.ChannelDivinityUsed = 0
	state.Spells.KiSpent = 0
	state.Spells.WildShapeUsed = 0
	state.Spells.SymbioticActive = false
	return o.commit(ctx, OpApplyShortRest, c, state, "Short Rest applied.", nil), nil
}

// ApplyLongRest restores every per-rest resource. Prepared spells, hit
// points and conditions are left alone.
func (o *orchestrator) ApplyLongRest(ctx context.Context, input *Target) (*Result, error) {
	c, state, err := o.begin(ctx, input)
	if err != nil {
		return nil, err
	}
	state.Spells.SlotsSpent = nil
	state.Spells.ChannelDivinityUsed = 0
	state.Spells.KiSpent = 0
	state.Spells.WildShapeUsed = 0
	state.Spells.SymbioticActive = false
	state.Actions = entities.ActionState{}
	return o.commit(ctx, OpApplyLongRest, c, state, "Long Rest: all slots/resources restored.", nil), nil
}

func (o *orchestrator) ResetSlots(ctx context.Context, input *ResetSlotsInput) (*Result, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Level < 0 || input.Level > rules.MaxSpellSlotLevel {
		return nil, errors.InvalidArgumentf("slot level %d out of range", input.Level)
	}
	c, state, err := o.begin(ctx, &input.Target)
	if err != nil {
		return nil, err
	}
	if input.Level == 0 {
		state.Spells.SlotsSpent = nil
		return o.commit(ctx, OpResetSlots, c, state, "Spell slots reset.", nil), nil
	}
	if state.Spells.SlotsSpent[input.Level] == 0 {
		return unchanged(state, fmt.Sprintf("Level %d slots are already full.", input.Level)), nil
	}
	delete(state.Spells.SlotsSpent, input.Level)
	return o.commit(ctx, OpResetSlots, c, state, fmt.Sprintf("Level %d slots reset.", input.Level), nil), nil
}

func (o *orchestrator) ToggleRage(ctx context.Context, input *ToggleInput) (*Result, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	c, state, err := o.begin(ctx, &input.Target)
	if err != nil {
		return nil, err
	}
	if !input.On {
		if !state.Actions.IsRaging {
			return unchanged(state, "Not raging."), nil
		}
		state.Actions.IsRaging = false
		return o.commit(ctx, OpToggleRage, c, state, "Rage ended.", nil), nil
	}

	if !c.ClassIs("barbarian") {
		return unchanged(state, "Only barbarians can rage."), nil
	}
	if state.Actions.IsRaging {
		return unchanged(state, "Already raging."), nil
	}
	if state.Actions.RageUsed >= rules.RageMax(c.Level) {
		return unchanged(state, "No rages remaining."), nil
	}
	state.Actions.IsRaging = true
	state.Actions.RageUsed++
	return o.commit(ctx, OpToggleRage, c, state, "Raging.", nil), nil
}

// ToggleSymbiotic switches Symbiotic Entity. Turning it on spends a Wild
// Shape use.
func (o *orchestrator) ToggleSymbiotic(ctx context.Context, input *ToggleInput) (*Result, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	c, state, err := o.begin(ctx, &input.Target)
	if err != nil {
		return nil, err
	}
	if !input.On {
		if !state.Spells.SymbioticActive {
			return unchanged(state, "Symbiotic Entity is not active."), nil
		}
		state.Spells.SymbioticActive = false
		return o.commit(ctx, OpToggleSymbiotic, c, state, "Symbiotic Entity ended.", nil), nil
	}

	if state.Spells.SymbioticActive {
		return unchanged(state, "Symbiotic Entity is already active."), nil
	}
	if state.Spells.WildShapeUsed >= rules.WildShapeMax(c.Class, c.Level) {
		return unchanged(state, "No Wild Shape uses remaining."), nil
	}
	state.Spells.WildShapeUsed++
	state.Spells.SymbioticActive = true
	return o.commit(ctx, OpToggleSymbiotic, c, state, "Symbiotic Entity active.", nil), nil
}
