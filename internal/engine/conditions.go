package engine

import (
	"slices"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// BlindedPerceptionPenalty is the flat passive perception penalty while blinded.
const BlindedPerceptionPenalty = -5

var autoFailConditions = []entities.ConditionKind{
	entities.ConditionParalyzed,
	entities.ConditionPetrified,
	entities.ConditionStunned,
	entities.ConditionUnconscious,
}

// EvaluateConditions is exported on the engine and as a plain function for
// callers that only need the effects.
func (e *engine) EvaluateConditions(active []entities.ConditionKind) *ConditionEffects {
	return EvaluateConditions(active)
}

// EvaluateConditions applies Blinded, Poisoned, Frightened, Restrained and
// Prone in that order; the first condition to impose attack or ability check
// disadvantage is the one reported.
func EvaluateConditions(active []entities.ConditionKind) *ConditionEffects {
	fx := &ConditionEffects{
		SaveDisadvantage: map[rules.Ability]string{},
		SaveAutoFail:     map[rules.Ability]string{},
	}
	has := func(c entities.ConditionKind) bool { return slices.Contains(active, c) }
	attack := func(c entities.ConditionKind) {
		if fx.AttackDisadvantage == "" {
			fx.AttackDisadvantage = string(c)
		}
	}
	check := func(c entities.ConditionKind) {
		if fx.AbilityCheckDisadvantage == "" {
			fx.AbilityCheckDisadvantage = string(c)
		}
	}

	if has(entities.ConditionBlinded) {
		attack(entities.ConditionBlinded)
		fx.PassivePerceptionPenalty = BlindedPerceptionPenalty
	}
	if has(entities.ConditionPoisoned) {
		attack(entities.ConditionPoisoned)
		check(entities.ConditionPoisoned)
	}
	if has(entities.ConditionFrightened) {
		attack(entities.ConditionFrightened)
		check(entities.ConditionFrightened)
	}
	if has(entities.ConditionRestrained) {
		attack(entities.ConditionRestrained)
		fx.SaveDisadvantage[rules.Dexterity] = string(entities.ConditionRestrained)
	}
	if has(entities.ConditionProne) {
		attack(entities.ConditionProne)
	}

	for _, c := range autoFailConditions {
		if has(c) {
			fx.SaveAutoFail[rules.Strength] = string(c)
			fx.SaveAutoFail[rules.Dexterity] = string(c)
			fx.Incapacitated = true
			break
		}
	}
	if has(entities.ConditionIncapacitated) {
		fx.Incapacitated = true
	}

	return fx
}
