// Package dice rolls notations from the sheet, such as attack damage, and
// keeps the results in short-lived dice sessions
package dice

//go:generate mockgen -destination=mock/mock_service.go -package=dicemock github.com/KirkDiggler/rpg-sheet/internal/orchestrators/dice Service

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	dicesession "github.com/KirkDiggler/rpg-sheet/internal/repositories/dice_session"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

const (
	// DefaultSessionTTL applies when neither the config nor the input sets one
	DefaultSessionTTL = 15 * time.Minute

	// ContextAttacks groups attack rolls when the caller gives no context
	ContextAttacks = "attacks"
)

// Service rolls dice
type Service interface {
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)
	RollAttack(ctx context.Context, input *RollAttackInput) (*RollAttackOutput, error)
	GetRollSession(ctx context.Context, input *GetRollSessionInput) (*GetRollSessionOutput, error)
	ClearRollSession(ctx context.Context, input *ClearRollSessionInput) (*ClearRollSessionOutput, error)
}

// Config holds the dependencies for the dice orchestrator
type Config struct {
	DiceSessionRepo dicesession.Repository
	IDGenerator     idgen.Generator
	// Roller defaults to the toolkit's crypto roller
	Roller     dice.Roller
	DefaultTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	vb := errors.NewValidationBuilder()
	if c.DiceSessionRepo == nil {
		vb.RequiredField("DiceSessionRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.DefaultTTL < 0 {
		vb.InvalidField("DefaultTTL", "must not be negative")
	}
	return vb.Build()
}

type orchestrator struct {
	diceSessionRepo dicesession.Repository
	idGen           idgen.Generator
	roller          dice.Roller
	ttl             time.Duration
}

// NewOrchestrator creates a dice orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	roller := cfg.Roller
	if roller == nil {
		roller = dice.DefaultRoller
	}
	ttl := cfg.DefaultTTL
	if ttl == 0 {
		ttl = DefaultSessionTTL
	}
	return &orchestrator{
		diceSessionRepo: cfg.DiceSessionRepo,
		idGen:           cfg.IDGenerator,
		roller:          roller,
		ttl:             ttl,
	}, nil
}

// roll evaluates a notation. Dice from subtracted terms are recorded as
// negative values so the faces still sum to the total.
func (o *orchestrator) roll(notation, label string) (*dicesession.DiceRoll, error) {
	parsed, err := ParseNotation(notation)
	if err != nil {
		return nil, err
	}

	var faces []int
	total := 0
	for _, t := range parsed.Terms {
		if t.Size == 0 {
			continue
		}
		got, err := o.roller.RollN(t.Count, t.Size)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll %dd%d", t.Count, t.Size)
		}
		for _, f := range got {
			faces = append(faces, t.Sign*f)
			total += t.Sign * f
		}
	}
	mod := parsed.Modifier()

	return &dicesession.DiceRoll{
		RollID:   o.idGen.Generate(),
		Notation: notation,
		Dice:     faces,
		Modifier: mod,
		Total:    total + mod,
		Label:    label,
	}, nil
}

func validateKey(characterID, rollContext string) error {
	if characterID == "" {
		return errors.InvalidArgument("character ID is required")
	}
	if rollContext == "" {
		return errors.InvalidArgument("context is required")
	}
	return nil
}

func (o *orchestrator) sessionTTL(ttl time.Duration) time.Duration {
	if ttl > 0 {
		return ttl
	}
	return o.ttl
}

// RollDice rolls a notation and appends it to the character's session
func (o *orchestrator) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateKey(input.CharacterID, input.Context); err != nil {
		return nil, err
	}

	roll, err := o.roll(input.Notation, input.Label)
	if err != nil {
		return nil, err
	}

	appended, err := o.diceSessionRepo.Append(ctx, dicesession.AppendInput{
		CharacterID: input.CharacterID,
		Context:     input.Context,
		Rolls:       []dicesession.DiceRoll{*roll},
		TTL:         o.sessionTTL(input.TTL),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store dice roll")
	}

	slog.Info("Dice rolled",
		"character_id", input.CharacterID,
		"context", input.Context,
		"notation", input.Notation,
		"total", roll.Total,
		"roll_id", roll.RollID,
	)

	return &RollDiceOutput{Roll: roll, Session: appended.Session}, nil
}

// RollAttack rolls d20 plus the to-hit bonus, when the line has one, and
// the damage notation, storing both in one append
func (o *orchestrator) RollAttack(ctx context.Context, input *RollAttackInput) (*RollAttackOutput, error) {
	if input == nil || input.Attack == nil {
		return nil, errors.InvalidArgument("attack is required")
	}
	rollContext := input.Context
	if rollContext == "" {
		rollContext = ContextAttacks
	}
	if err := validateKey(input.CharacterID, rollContext); err != nil {
		return nil, err
	}
	a := input.Attack

	out := &RollAttackOutput{}
	var rolls []dicesession.DiceRoll
	if a.ToHit != nil {
		hit, err := o.roll("1d20"+rules.FormatSigned(*a.ToHit), a.Name+" to hit")
		if err != nil {
			return nil, err
		}
		out.ToHit = hit
		rolls = append(rolls, *hit)
	}
	if a.Damage != "" {
		dmg, err := o.roll(a.Damage, a.Name+" damage")
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll damage for %s", a.Name)
		}
		out.Damage = dmg
		rolls = append(rolls, *dmg)
	}
	if len(rolls) == 0 {
		return nil, errors.InvalidArgumentf("%s has nothing to roll", a.Name)
	}

	appended, err := o.diceSessionRepo.Append(ctx, dicesession.AppendInput{
		CharacterID: input.CharacterID,
		Context:     rollContext,
		Rolls:       rolls,
		TTL:         o.sessionTTL(input.TTL),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store attack rolls")
	}
	out.Session = appended.Session

	slog.Info("Attack rolled", "character_id", input.CharacterID, "attack", a.Name, "rolls", len(rolls))
	return out, nil
}

func (o *orchestrator) GetRollSession(ctx context.Context, input *GetRollSessionInput) (*GetRollSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateKey(input.CharacterID, input.Context); err != nil {
		return nil, err
	}

	got, err := o.diceSessionRepo.Get(ctx, dicesession.GetInput{
		CharacterID: input.CharacterID,
		Context:     input.Context,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get dice session")
	}
	return &GetRollSessionOutput{Session: got.Session}, nil
}

func (o *orchestrator) ClearRollSession(
	ctx context.Context,
	input *ClearRollSessionInput,
) (*ClearRollSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateKey(input.CharacterID, input.Context); err != nil {
		return nil, err
	}

	deleted, err := o.diceSessionRepo.Delete(ctx, dicesession.DeleteInput{
		CharacterID: input.CharacterID,
		Context:     input.Context,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete dice session")
	}

	slog.Info("Dice session cleared",
		"character_id", input.CharacterID,
		"context", input.Context,
		"rolls_deleted", deleted.RollsDeleted,
	)
	return &ClearRollSessionOutput{RollsDeleted: deleted.RollsDeleted}, nil
}
