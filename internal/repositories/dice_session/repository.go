// Package dicesession stores short-lived groups of dice rolls made from a
// character sheet, such as the damage rolls of one combat round.
package dicesession

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=dicesessionmock github.com/KirkDiggler/rpg-sheet/internal/repositories/dice_session Repository

// DiceSession groups rolls by character and context
type DiceSession struct {
	// CharacterID is the rolling character's entity ID
	CharacterID string `json:"characterId"`
	// Context groups related rolls, e.g. "attack:longbow" or "round_3"
	Context   string     `json:"context"`
	Rolls     []DiceRoll `json:"rolls"`
	CreatedAt time.Time  `json:"createdAt"`
	ExpiresAt time.Time  `json:"expiresAt"`
}

// DiceRoll is one rolled notation
type DiceRoll struct {
	RollID   string `json:"rollId"`
	Notation string `json:"notation"`
	Dice     []int  `json:"dice"`
	Modifier int    `json:"modifier"`
	Total    int    `json:"total"`
	// Label names what was rolled, e.g. "Longbow damage"
	Label string `json:"label,omitempty"`
}

// AppendInput adds rolls to a session, creating it when absent
type AppendInput struct {
	CharacterID string
	Context     string
	Rolls       []DiceRoll
	// TTL applies only when a new session is created
	TTL time.Duration
}

// AppendOutput returns the session after the append
type AppendOutput struct {
	Session *DiceSession
}

// GetInput identifies a session
type GetInput struct {
	CharacterID string
	Context     string
}

// GetOutput holds the loaded session
type GetOutput struct {
	Session *DiceSession
}

// DeleteInput identifies a session
type DeleteInput struct {
	CharacterID string
	Context     string
}

// DeleteOutput reports how many rolls were discarded
type DeleteOutput struct {
	RollsDeleted int
}

// Repository stores dice sessions
type Repository interface {
	// Append adds rolls, creating the session with TTL when it does not
	// exist or has expired
	// Returns errors.InvalidArgument for a missing character or context
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// Get loads a session
	// Returns errors.NotFound if absent or expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a session
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
