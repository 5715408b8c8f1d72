package sessionstate

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-sheet/internal/redis"
)

const (
	// sheet:state:{type}:{id}
	stateKeyPrefix    = "sheet:state:"
	activeInfusionKey = "sheet:infusions:active"
)

// RedisConfig holds dependencies for the Redis store
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate checks required dependencies
func (c *RedisConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedis creates a Redis-backed session state store
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	return &redisRepository{client: cfg.Client, clock: c}, nil
}

func stateKey(e core.Entity) string {
	return fmt.Sprintf("%s%s:%s", stateKeyPrefix, e.GetType(), e.GetID())
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateEntity(input.Entity); err != nil {
		return nil, err
	}
	key := stateKey(input.Entity)

	data, err := r.client.Get(ctx, key).Bytes()
	if err == redisclient.Nil {
		return nil, errors.NotFoundf("session state for %s not found", input.Entity.GetID())
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get session state %s", key)
	}

	var state entities.SessionState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInternal, "failed to decode session state %s", key)
	}
	return &GetOutput{State: &state}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateEntity(input.Entity); err != nil {
		return nil, err
	}
	if input.State == nil {
		return nil, errors.InvalidArgument("state is required")
	}

	state := input.State.Clone()
	state.CharacterID = input.Entity.GetID()
	state.UpdatedAt = r.clock.Now()

	data, err := json.Marshal(state)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to encode session state")
	}

	key := stateKey(input.Entity)
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save session state %s", key)
	}

	slog.DebugContext(ctx, "Session state saved", "key", key)
	return &SaveOutput{State: state}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) error {
	if err := validateEntity(input.Entity); err != nil {
		return err
	}
	key := stateKey(input.Entity)
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return errors.Wrapf(err, "failed to delete session state %s", key)
	}
	return nil
}

func (r *redisRepository) ListActiveInfusions(ctx context.Context) (*ListActiveInfusionsOutput, error) {
	data, err := r.client.Get(ctx, activeInfusionKey).Bytes()
	if err == redisclient.Nil {
		return &ListActiveInfusionsOutput{Infusions: []entities.ActiveInfusion{}}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get active infusions")
	}

	var list []entities.ActiveInfusion
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to decode active infusions")
	}
	if list == nil {
		list = []entities.ActiveInfusion{}
	}
	return &ListActiveInfusionsOutput{Infusions: list}, nil
}

func (r *redisRepository) SaveActiveInfusions(ctx context.Context, input SaveActiveInfusionsInput) error {
	list := input.Infusions
	if list == nil {
		list = []entities.ActiveInfusion{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInternal, "failed to encode active infusions")
	}
	if err := r.client.Set(ctx, activeInfusionKey, data, 0).Err(); err != nil {
		return errors.Wrap(err, "failed to save active infusions")
	}
	return nil
}
