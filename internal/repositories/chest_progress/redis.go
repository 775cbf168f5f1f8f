package chestprogress

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/codequest-gg/codequest-api/internal/entities"
	"github.com/codequest-gg/codequest-api/internal/errors"
	redisclient "github.com/codequest-gg/codequest-api/internal/redis"
)

const (
	// Key pattern: chest_progress:{player_id}:{chest_id}
	recordKeyPrefix = "chest_progress:"

	errProgressNil   = "progress cannot be nil"
	errPlayerIDEmpty = "player ID cannot be empty"
	errChestIDEmpty  = "chest ID cannot be empty"
)

// RedisConfig contains configuration for the Redis chest progress repository
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedis creates a new Redis-backed chest progress repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

var _ Repository = (*redisRepository)(nil)

func recordKey(playerID, chestID string) string {
	return recordKeyPrefix + playerID + ":" + chestID
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}
	if input.ChestID == "" {
		return nil, errors.InvalidArgument(errChestIDEmpty)
	}

	result, err := r.client.Get(ctx, recordKey(input.PlayerID, input.ChestID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("player %s has not opened chest %s", input.PlayerID, input.ChestID)
		}
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to get chest progress")
	}

	var progress entities.ChestProgress
	if err := json.Unmarshal([]byte(result), &progress); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal chest progress")
	}

	return &GetOutput{Progress: &progress}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Progress == nil {
		return nil, errors.InvalidArgument(errProgressNil)
	}
	if input.Progress.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}
	if input.Progress.ChestID == "" {
		return nil, errors.InvalidArgument(errChestIDEmpty)
	}

	data, err := json.Marshal(input.Progress)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal chest progress")
	}

	key := recordKey(input.Progress.PlayerID, input.Progress.ChestID)
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to save chest progress")
	}

	return &SaveOutput{}, nil
}
