package entities

import "strings"

// Feature is an aggregated class, subclass, race, feat or background
// feature. Source labels where it came from ("Class 3 (Local)", "Race").
type Feature struct {
	Name   string `json:"name"`
	Desc   string `json:"desc"`
	Source string `json:"source"`
}

// ActionType buckets an action on the actions page.
type ActionType string

const (
	ActionTypeAction   ActionType = "action"
	ActionTypeBonus    ActionType = "bonus"
	ActionTypeReaction ActionType = "reaction"
	ActionTypeMove     ActionType = "move"
	// ActionTypeSpecial actions are folded into the Attack action.
	ActionTypeSpecial ActionType = "special"
)

// ParseActionType accepts the spellings used in data files.
func ParseActionType(s string) (ActionType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "action":
		return ActionTypeAction, true
	case "bonus", "bonus action", "bonus_action":
		return ActionTypeBonus, true
	case "reaction":
		return ActionTypeReaction, true
	case "move", "movement":
		return ActionTypeMove, true
	case "special":
		return ActionTypeSpecial, true
	}
	return "", false
}

// Action is one entry on the actions page.
type Action struct {
	Name   string     `json:"name"`
	Desc   string     `json:"desc"`
	Source string     `json:"source,omitempty"`
	Type   ActionType `json:"type"`
	// Level gates the action to characters at or above it.
	Level int `json:"level,omitempty"`
	// Condition gates the action on session state ("isRaging").
	Condition string `json:"condition,omitempty"`
	Badge     string `json:"badge,omitempty"`
}

// ActionFromRecord converts a catalog action. ok is false when the type
// is not recognized.
func ActionFromRecord(r ActionRecord, source string) (Action, bool) {
	t, ok := ParseActionType(r.Type)
	if !ok {
		return Action{}, false
	}
	return Action{
		Name:      r.Name,
		Desc:      string(r.Desc),
		Source:    source,
		Type:      t,
		Level:     r.Level,
		Condition: r.Condition,
		Badge:     r.Badge,
	}, true
}
