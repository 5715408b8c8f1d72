// Package sessionstate persists the mutable per-character sheet state and
// the shared active infusion list.
package sessionstate

//go:generate mockgen -destination=mock/mock_repository.go -package=sessionstatemock github.com/KirkDiggler/rpg-sheet/internal/repositories/sessionstate Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Repository stores session state keyed by entity identity
type Repository interface {
	// Get loads the state for an entity
	// Returns errors.InvalidArgument for a nil entity or empty ID
	// Returns errors.NotFound if no state has been saved
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save writes the state, stamping UpdatedAt
	// Returns errors.InvalidArgument for a nil entity or state
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete removes the state. Deleting a missing state is not an error.
	Delete(ctx context.Context, input DeleteInput) error

	// ListActiveInfusions returns the shared active infusion list, empty
	// when none were saved
	ListActiveInfusions(ctx context.Context) (*ListActiveInfusionsOutput, error)

	// SaveActiveInfusions replaces the shared active infusion list
	SaveActiveInfusions(ctx context.Context, input SaveActiveInfusionsInput) error
}

// GetInput defines the input for loading state
type GetInput struct {
	Entity core.Entity
}

// GetOutput defines the output for loading state
type GetOutput struct {
	State *entities.SessionState
}

// SaveInput defines the input for saving state
type SaveInput struct {
	Entity core.Entity
	State  *entities.SessionState
}

// SaveOutput returns the state as stored
type SaveOutput struct {
	State *entities.SessionState
}

// DeleteInput defines the input for deleting state
type DeleteInput struct {
	Entity core.Entity
}

// ListActiveInfusionsOutput holds the shared infusion list
type ListActiveInfusionsOutput struct {
	Infusions []entities.ActiveInfusion
}

// SaveActiveInfusionsInput replaces the shared infusion list
type SaveActiveInfusionsInput struct {
	Infusions []entities.ActiveInfusion
}

func validateEntity(e core.Entity) error {
	if e == nil {
		return errors.InvalidArgument("entity is required")
	}
	if e.GetID() == "" {
		return errors.InvalidArgument("entity ID is required")
	}
	if e.GetType() == "" {
		return errors.InvalidArgument("entity type is required")
	}
	return nil
}
