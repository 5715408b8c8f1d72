// Package engine holds the pure rules calculators behind the sheet's combat
// block: armor class, initiative, passive perception, spellcasting, speed,
// attack lines and condition effects. Calculators never fetch data; callers
// resolve armor, weapons and race speed first and pass the results in.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/rpg-sheet/internal/engine Engine

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
)

// Engine provides the derived-stat calculations
type Engine interface {
	CalculateArmorClass(ctx context.Context, input *CalculateArmorClassInput) (*CalculateArmorClassOutput, error)
	CalculateInitiative(ctx context.Context, input *CalculateInitiativeInput) (*CalculateInitiativeOutput, error)
	CalculatePassivePerception(
		ctx context.Context,
		input *CalculatePassivePerceptionInput,
	) (*CalculatePassivePerceptionOutput, error)
	CalculateSpellcasting(
		ctx context.Context,
		input *CalculateSpellcastingInput,
	) (*CalculateSpellcastingOutput, error)
	CalculateSpeed(ctx context.Context, input *CalculateSpeedInput) (*CalculateSpeedOutput, error)
	CalculateAttacks(ctx context.Context, input *CalculateAttacksInput) (*CalculateAttacksOutput, error)

	// EvaluateConditions folds the active conditions into their effects
	EvaluateConditions(active []entities.ConditionKind) *ConditionEffects

	// DefaultWeapons is the loadout used when a character lists no weapons
	DefaultWeapons(class string) []string

	// TemplateValues returns the placeholder values for an action description
	TemplateValues(character *entities.Character, actionName string) map[string]string
}
