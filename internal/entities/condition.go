package entities

import (
	"slices"
	"strings"
)

// ConditionKind is one of the SRD conditions.
type ConditionKind string

// Conditions recognized by the effects engine and the tracker.
const (
	ConditionBlinded       ConditionKind = "Blinded"
	ConditionCharmed       ConditionKind = "Charmed"
	ConditionDeafened      ConditionKind = "Deafened"
	ConditionExhaustion    ConditionKind = "Exhaustion"
	ConditionFrightened    ConditionKind = "Frightened"
	ConditionGrappled      ConditionKind = "Grappled"
	ConditionIncapacitated ConditionKind = "Incapacitated"
	ConditionInvisible     ConditionKind = "Invisible"
	ConditionParalyzed     ConditionKind = "Paralyzed"
	ConditionPetrified     ConditionKind = "Petrified"
	ConditionPoisoned      ConditionKind = "Poisoned"
	ConditionProne         ConditionKind = "Prone"
	ConditionRestrained    ConditionKind = "Restrained"
	ConditionStunned       ConditionKind = "Stunned"
	ConditionUnconscious   ConditionKind = "Unconscious"
)

// AllConditions lists every condition in display order.
var AllConditions = []ConditionKind{
	ConditionBlinded,
	ConditionCharmed,
	ConditionDeafened,
	ConditionExhaustion,
	ConditionFrightened,
	ConditionGrappled,
	ConditionIncapacitated,
	ConditionInvisible,
	ConditionParalyzed,
	ConditionPetrified,
	ConditionPoisoned,
	ConditionProne,
	ConditionRestrained,
	ConditionStunned,
	ConditionUnconscious,
}

// ParseCondition maps a condition name in any case to its kind.
func ParseCondition(s string) (ConditionKind, bool) {
	s = strings.TrimSpace(s)
	for _, c := range AllConditions {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}

func (c ConditionKind) String() string { return string(c) }

// SortConditions returns the distinct known conditions of active in
// display order.
func SortConditions(active []ConditionKind) []ConditionKind {
	var out []ConditionKind
	for _, c := range AllConditions {
		if slices.Contains(active, c) {
			out = append(out, c)
		}
	}
	return out
}
