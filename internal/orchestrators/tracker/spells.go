package tracker

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/spells"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// TogglePreparedSpell stars or unstars a spell. Prepared casters are held
// to their prepared limit and rangers to spells known; always-prepared
// spells and cantrips cannot be toggled.
func (o *orchestrator) TogglePreparedSpell(ctx context.Context, input *TogglePreparedSpellInput) (*Result, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.InvalidArgument("spell name is required")
	}
	if input.Level < 0 || input.Level > rules.MaxSpellSlotLevel {
		return nil, errors.InvalidArgumentf("spell level %d out of range", input.Level)
	}
	c, state, err := o.begin(ctx, &input.Target)
	if err != nil {
		return nil, err
	}
	if input.Level == 0 {
		return unchanged(state, "Cantrips are always prepared."), nil
	}

	prepared := state.Spells.PreparedByLevel[input.Level]
	if i := slices.IndexFunc(prepared, func(n string) bool { return strings.EqualFold(n, name) }); i >= 0 {
		state.Spells.PreparedByLevel[input.Level] = slices.Delete(slices.Clone(prepared), i, i+1)
		if len(state.Spells.PreparedByLevel[input.Level]) == 0 {
			delete(state.Spells.PreparedByLevel, input.Level)
		}
		return o.commit(ctx, OpTogglePreparedSpell, c, state, fmt.Sprintf("%s unprepared.", prepared[i]), nil), nil
	}

	model, err := o.spells.BuildSpellModel(ctx, &spells.BuildSpellModelInput{Character: c, State: state})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build spell model")
	}
	for _, e := range model.ByLevel[input.Level] {
		if e.Locked && strings.EqualFold(e.Name, name) {
			return unchanged(state, fmt.Sprintf("%s is always prepared.", e.Name)), nil
		}
	}

	limit, kind := model.PrepLimit, "Prepared"
	if limit <= 0 {
		limit, kind = model.KnownLimit, "Known"
	}
	if limit <= 0 {
		return unchanged(state, fmt.Sprintf("%s spells are not prepared on the sheet.", c.Class)), nil
	}
	if state.Spells.PreparedCount() >= limit {
		return unchanged(state, kind+" spell limit reached."), nil
	}

	if state.Spells.PreparedByLevel == nil {
		state.Spells.PreparedByLevel = make(map[int][]string)
	}
	state.Spells.PreparedByLevel[input.Level] = append(slices.Clone(prepared), name)
	return o.commit(ctx, OpTogglePreparedSpell, c, state, fmt.Sprintf("%s prepared.", name), nil), nil
}

func (o *orchestrator) Reprepare(ctx context.Context, input *Target) (*Result, error) {
	c, state, err := o.begin(ctx, input)
	if err != nil {
		return nil, err
	}
	state.Spells.PreparedByLevel = nil
	return o.commit(ctx, OpReprepare, c, state, "Prepared spells cleared.", nil), nil
}
