package tracker

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// ApplyDamage drains temporary hit points first, then current, floored at 0
func (o *orchestrator) ApplyDamage(ctx context.Context, input *AmountInput) (*Result, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	c, state, err := o.begin(ctx, &input.Target)
	if err != nil {
		return nil, err
	}
	amount := max(0, input.Amount)
	v := state.SeedVitals(c)
	if amount == 0 {
		return unchanged(state, "No damage taken."), nil
	}

	absorbed := min(v.TempHP, amount)
	v.TempHP -= absorbed
	v.CurrentHP = max(0, v.CurrentHP-(amount-absorbed))

	msg := fmt.Sprintf("Took %d damage (HP %d", amount, v.CurrentHP)
	if absorbed > 0 {
		msg += fmt.Sprintf(", %d absorbed by temporary HP", absorbed)
	}
	return o.commit(ctx, OpApplyDamage, c, state, msg+").", nil), nil
}

// ApplyHealing raises current hit points up to max. Healing from 0 clears
// death saves.
func (o *orchestrator) ApplyHealing(ctx context.Context, input *AmountInput) (*Result, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	c, state, err := o.begin(ctx, &input.Target)
	if err != nil {
		return nil, err
	}
	amount := max(0, input.Amount)
	v := state.SeedVitals(c)
	if amount == 0 {
		return unchanged(state, "No healing applied."), nil
	}

	if v.CurrentHP == 0 {
		v.DeathSaves = entities.DeathSaves{}
	}
	v.CurrentHP += amount
	if c.MaxHP > 0 {
		v.CurrentHP = min(v.CurrentHP, c.MaxHP)
	}
	return o.commit(ctx, OpApplyHealing, c, state, fmt.Sprintf("Healed %d (HP %d).", amount, v.CurrentHP), nil), nil
}

// GrantTempHP keeps the higher of the current and granted temporary hit
// points
func (o *orchestrator) GrantTempHP(ctx context.Context, input *AmountInput) (*Result, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	c, state, err := o.begin(ctx, &input.Target)
	if err != nil {
		return nil, err
	}
	v := state.SeedVitals(c)
	amount := max(0, input.Amount)
	if amount <= v.TempHP {
		return unchanged(state, fmt.Sprintf("Kept %d temporary HP.", v.TempHP)), nil
	}
	v.TempHP = amount
	return o.commit(ctx, OpGrantTempHP, c, state, fmt.Sprintf("Temporary HP set to %d.", amount), nil), nil
}

func (o *orchestrator) ClearTempHP(ctx context.Context, input *Target) (*Result, error) {
	c, state, err := o.begin(ctx, input)
	if err != nil {
		return nil, err
	}
	v := state.SeedVitals(c)
	if v.TempHP == 0 {
		return unchanged(state, "No temporary HP."), nil
	}
	v.TempHP = 0
	return o.commit(ctx, OpClearTempHP, c, state, "Temporary HP cleared.", nil), nil
}

// ToggleCondition adds or removes a condition. Unknown names are rejected
// with a message.
func (o *orchestrator) ToggleCondition(ctx context.Context, input *ToggleConditionInput) (*Result, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	c, state, err := o.begin(ctx, &input.Target)
	if err != nil {
		return nil, err
	}
	kind, ok := entities.ParseCondition(input.Name)
	if !ok {
		return unchanged(state, fmt.Sprintf("Unknown condition %q.", input.Name)), nil
	}

	var msg string
	if state.HasCondition(kind) {
		kept := make([]entities.ConditionKind, 0, len(state.Conditions))
		for _, k := range state.Conditions {
			if k != kind {
				kept = append(kept, k)
			}
		}
		state.Conditions = kept
		msg = fmt.Sprintf("%s removed.", kind)
	} else {
		state.Conditions = append(state.Conditions, kind)
		msg = fmt.Sprintf("%s added.", kind)
	}
	state.Conditions = entities.SortConditions(state.Conditions)
	return o.commit(ctx, OpToggleCondition, c, state, msg, map[string]any{"condition": string(kind)}), nil
}
