package questprogress

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
	progressKeyPrefix = "quest_progress:"
	playerIndexPrefix = "quest_progress:player:"

	errProgressNil   = "progress cannot be nil"
	errPlayerIDEmpty = "player ID cannot be empty"
	errQuestIDEmpty  = "quest ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis quest progress repository
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

// NewRedis creates a new Redis-backed quest progress repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

var _ Repository = (*redisRepository)(nil)

func recordKey(playerID, questID string) string {
	return progressKeyPrefix + playerID + ":" + questID
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}
	if input.QuestID == "" {
		return nil, errors.InvalidArgument(errQuestIDEmpty)
	}

	result, err := r.client.Get(ctx, recordKey(input.PlayerID, input.QuestID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no progress for player %s on quest %s", input.PlayerID, input.QuestID)
		}
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to get quest progress")
	}

	var progress entities.QuestProgress
	if err := json.Unmarshal([]byte(result), &progress); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal quest progress")
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
	if input.Progress.QuestID == "" {
		return nil, errors.InvalidArgument(errQuestIDEmpty)
	}

	data, err := json.Marshal(input.Progress)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal quest progress")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, recordKey(input.Progress.PlayerID, input.Progress.QuestID), data, 0)
	pipe.SAdd(ctx, playerIndexPrefix+input.Progress.PlayerID, input.Progress.QuestID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to save quest progress")
	}

	return &SaveOutput{}, nil
}

func (r *redisRepository) ListByPlayer(ctx context.Context, input ListByPlayerInput) (*ListByPlayerOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	questIDs, err := r.client.SMembers(ctx, playerIndexPrefix+input.PlayerID).Result()
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to list quest progress index")
	}

	records := make([]*entities.QuestProgress, 0, len(questIDs))
	for _, questID := range questIDs {
		out, err := r.Get(ctx, GetInput{PlayerID: input.PlayerID, QuestID: questID})
		if err != nil {
			if errors.IsNotFound(err) {
				// Stale index entry; drop it and continue
				slog.WarnContext(ctx, "quest progress missing for indexed quest, cleaning up",
					"player_id", input.PlayerID,
					"quest_id", questID)
				r.client.SRem(ctx, playerIndexPrefix+input.PlayerID, questID)
				continue
			}
			return nil, err
		}
		records = append(records, out.Progress)
	}

	return &ListByPlayerOutput{Records: records}, nil
}
