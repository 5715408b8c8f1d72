package engine

import (
	"context"
	"fmt"
	"slices"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// speedZeroConditions are checked in order; the first active one is named.
var speedZeroConditions = []entities.ConditionKind{
	entities.ConditionGrappled,
	entities.ConditionParalyzed,
	entities.ConditionPetrified,
	entities.ConditionRestrained,
	entities.ConditionStunned,
	entities.ConditionUnconscious,
}

// monkMovementBonus is Unarmored Movement by monk level.
func monkMovementBonus(level int) int {
	switch {
	case level >= 18:
		return 30
	case level >= 14:
		return 25
	case level >= 10:
		return 20
	case level >= 6:
		return 15
	case level >= 2:
		return 10
	}
	return 0
}

func (e *engine) CalculateSpeed(_ context.Context, input *CalculateSpeedInput) (*CalculateSpeedOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireCharacter(input.Character); err != nil {
		return nil, err
	}

	for _, cond := range speedZeroConditions {
		if slices.Contains(input.Conditions, cond) {
			return &CalculateSpeedOutput{
				Speed:     0,
				Breakdown: []string{fmt.Sprintf("Condition (%s): Speed is 0", cond)},
			}, nil
		}
	}

	c := input.Character
	source := input.BaseSource
	if source == "" {
		source = "Base"
	}
	total := input.BaseSpeed
	breakdown := []string{fmt.Sprintf("%s: %d", source, input.BaseSpeed)}

	if c.ClassIs("monk") && !input.WearingArmor && !input.HasShield {
		if bonus := monkMovementBonus(c.Level); bonus > 0 {
			total += bonus
			breakdown = append(breakdown, fmt.Sprintf("Monk Unarmored Movement (lvl %d): +%d", c.Level, bonus))
		}
	}

	return &CalculateSpeedOutput{Speed: max(0, total), Breakdown: breakdown}, nil
}
