package dice

import (
	"time"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	dicesession "github.com/KirkDiggler/rpg-sheet/internal/repositories/dice_session"
)

// RollDiceInput rolls one notation for a character
type RollDiceInput struct {
	CharacterID string
	Context     string
	Notation    string
	Label       string
	// TTL overrides the default session lifetime for a new session
	TTL time.Duration
}

// RollDiceOutput holds the roll and the session it was stored in
type RollDiceOutput struct {
	Roll    *dicesession.DiceRoll
	Session *dicesession.DiceSession
}

// RollAttackInput rolls an attack line from the combat block
type RollAttackInput struct {
	CharacterID string
	Context     string
	Attack      *engine.AttackLine
	TTL         time.Duration
}

// RollAttackOutput holds the to-hit and damage rolls. ToHit is nil for
// save-based attacks.
type RollAttackOutput struct {
	ToHit   *dicesession.DiceRoll
	Damage  *dicesession.DiceRoll
	Session *dicesession.DiceSession
}

// GetRollSessionInput identifies a session
type GetRollSessionInput struct {
	CharacterID string
	Context     string
}

// GetRollSessionOutput holds the loaded session
type GetRollSessionOutput struct {
	Session *dicesession.DiceSession
}

// ClearRollSessionInput identifies a session
type ClearRollSessionInput struct {
	CharacterID string
	Context     string
}

// ClearRollSessionOutput reports the discarded roll count
type ClearRollSessionOutput struct {
	RollsDeleted int
}
