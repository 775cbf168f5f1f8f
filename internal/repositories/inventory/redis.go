package inventory

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/codequest-gg/codequest-api/internal/entities"
	"github.com/codequest-gg/codequest-api/internal/errors"
	redisclient "github.com/codequest-gg/codequest-api/internal/redis"
)

const (
	entryKeyPrefix    = "inventory:"
	playerIndexPrefix = "inventory:player:"

	errEntryNil      = "entry cannot be nil"
	errPlayerIDEmpty = "player ID cannot be empty"
	errItemIDEmpty   = "item ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis inventory repository
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

// NewRedis creates a new Redis-backed inventory repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

var _ Repository = (*redisRepository)(nil)

func entryKey(playerID, itemID string) string {
	return entryKeyPrefix + playerID + ":" + itemID
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	result, err := r.client.Get(ctx, entryKey(input.PlayerID, input.ItemID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("player %s has no %s", input.PlayerID, input.ItemID)
		}
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to get inventory entry")
	}

	var entry entities.InventoryEntry
	if err := json.Unmarshal([]byte(result), &entry); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal inventory entry")
	}

	return &GetOutput{Entry: &entry}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Entry == nil {
		return nil, errors.InvalidArgument(errEntryNil)
	}
	if input.Entry.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}
	if input.Entry.ItemID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	// An emptied stack is removed rather than stored at zero
	if input.Entry.Quantity <= 0 {
		if _, err := r.Remove(ctx, RemoveInput{PlayerID: input.Entry.PlayerID, ItemID: input.Entry.ItemID}); err != nil {
			return nil, err
		}
		return &SaveOutput{}, nil
	}

	data, err := json.Marshal(input.Entry)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal inventory entry")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, entryKey(input.Entry.PlayerID, input.Entry.ItemID), data, 0)
	pipe.SAdd(ctx, playerIndexPrefix+input.Entry.PlayerID, input.Entry.ItemID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to save inventory entry")
	}

	return &SaveOutput{}, nil
}

func (r *redisRepository) Remove(ctx context.Context, input RemoveInput) (*RemoveOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, entryKey(input.PlayerID, input.ItemID))
	pipe.SRem(ctx, playerIndexPrefix+input.PlayerID, input.ItemID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to remove inventory entry")
	}

	return &RemoveOutput{}, nil
}

func (r *redisRepository) ListByPlayer(ctx context.Context, input ListByPlayerInput) (*ListByPlayerOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	itemIDs, err := r.client.SMembers(ctx, playerIndexPrefix+input.PlayerID).Result()
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to list inventory index")
	}

	entries := make([]*entities.InventoryEntry, 0, len(itemIDs))
	for _, itemID := range itemIDs {
		out, err := r.Get(ctx, GetInput{PlayerID: input.PlayerID, ItemID: itemID})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "inventory entry missing for indexed item, cleaning up",
					"player_id", input.PlayerID,
					"item_id", itemID)
				r.client.SRem(ctx, playerIndexPrefix+input.PlayerID, itemID)
				continue
			}
			return nil, err
		}
		entries = append(entries, out.Entry)
	}

	return &ListByPlayerOutput{Entries: entries}, nil
}
