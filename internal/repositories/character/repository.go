// Package character loads character records from JSON or YAML files in the
// configured data directories.
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/KirkDiggler/rpg-sheet/internal/repositories/character Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
)

// Repository reads character records
type Repository interface {
	// Get loads one character by identifier ("psalm", "psalm.json",
	// "data/psalm.yaml")
	// Returns errors.InvalidArgument for an empty or path-like ID
	// Returns errors.NotFound if no data directory holds the file
	// Returns errors.Internal if the file exists but cannot be decoded
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List loads every character file across the data directories. Files
	// that fail to decode are skipped.
	List(ctx context.Context) (*ListOutput, error)
}

// GetInput defines the input for loading a character
type GetInput struct {
	ID string
}

// GetOutput defines the output for loading a character
type GetOutput struct {
	Character *entities.Character
	// Path is the file the character was read from
	Path string
}

// ListOutput holds every loadable character, sorted by name
type ListOutput struct {
	Characters []*entities.Character
}
