package dicesession

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-sheet/internal/redis"
)

const (
	// sheet:dice:{character}:{context}
	sessionKeyPrefix = "sheet:dice:"
	defaultTTL       = 15 * time.Minute

	errCharacterIDEmpty = "character ID cannot be empty"
	errContextEmpty     = "context cannot be empty"
)

// Config holds the dependencies for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
	// DefaultTTL applies when AppendInput.TTL is zero
	DefaultTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	return vb.Build()
}

type redisRepository struct {
	client     redisclient.Client
	clock      clock.Clock
	defaultTTL time.Duration
}

// NewRedisRepository creates a Redis repository for dice sessions
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	ttl := cfg.DefaultTTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &redisRepository{client: cfg.Client, clock: cfg.Clock, defaultTTL: ttl}, nil
}

var _ Repository = (*redisRepository)(nil)

func validateKey(characterID, context string) error {
	if characterID == "" {
		return errors.InvalidArgument(errCharacterIDEmpty)
	}
	if context == "" {
		return errors.InvalidArgument(errContextEmpty)
	}
	return nil
}

func buildKey(characterID, context string) string {
	return fmt.Sprintf("%s%s:%s", sessionKeyPrefix, characterID, context)
}

func (r *redisRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	if err := validateKey(input.CharacterID, input.Context); err != nil {
		return nil, err
	}

	now := r.clock.Now()
	session, err := r.load(ctx, input.CharacterID, input.Context)
	if errors.IsNotFound(err) {
		ttl := input.TTL
		if ttl <= 0 {
			ttl = r.defaultTTL
		}
		session = &DiceSession{
			CharacterID: input.CharacterID,
			Context:     input.Context,
			CreatedAt:   now,
			ExpiresAt:   now.Add(ttl),
		}
	} else if err != nil {
		return nil, err
	}
	session.Rolls = append(session.Rolls, input.Rolls...)

	data, err := json.Marshal(session)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal session")
	}
	key := buildKey(input.CharacterID, input.Context)
	if err := r.client.Set(ctx, key, data, session.ExpiresAt.Sub(now)).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to store session in Redis")
	}
	return &AppendOutput{Session: session}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateKey(input.CharacterID, input.Context); err != nil {
		return nil, err
	}
	session, err := r.load(ctx, input.CharacterID, input.Context)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Session: session}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateKey(input.CharacterID, input.Context); err != nil {
		return nil, err
	}

	var deleted int
	if session, err := r.load(ctx, input.CharacterID, input.Context); err == nil {
		deleted = len(session.Rolls)
	}
	if err := r.client.Del(ctx, buildKey(input.CharacterID, input.Context)).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to delete session from Redis")
	}
	return &DeleteOutput{RollsDeleted: deleted}, nil
}

// load reads a session, treating an expired one as missing. Redis TTLs
// normally evict first; the clock check covers a skewed or fixed clock.
func (r *redisRepository) load(ctx context.Context, characterID, rollContext string) (*DiceSession, error) {
	key := buildKey(characterID, rollContext)
	data, err := r.client.Get(ctx, key).Bytes()
	if err == redisclient.Nil {
		return nil, errors.NotFound("dice session not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get session from Redis")
	}

	var session DiceSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal session")
	}
	if !r.clock.Now().Before(session.ExpiresAt) {
		_ = r.client.Del(ctx, key).Err()
		return nil, errors.NotFound("dice session has expired")
	}
	return &session, nil
}
