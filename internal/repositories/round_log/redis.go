package roundlog

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-melee/internal/errors"
	"github.com/KirkDiggler/rpg-melee/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-melee/internal/redis"
)

const (
	// Key pattern: round_log:{encounter_id}
	keyPrefix  = "round_log:"
	defaultTTL = time.Hour

	// Error messages
	errSummaryNil       = "summary cannot be nil"
	errEncounterIDEmpty = "encounter ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
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
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for round logs
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Append adds a summary to the end of the encounter's log
func (r *redisRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	if input.Summary == nil {
		return nil, errors.InvalidArgument(errSummaryNil)
	}
	if input.Summary.EncounterID == "" {
		return nil, errors.InvalidArgument(errEncounterIDEmpty)
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	summary := *input.Summary
	summary.RecordedAt = r.clock.Now()

	data, err := json.Marshal(&summary)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal round summary")
	}

	key := r.buildKey(summary.EncounterID)
	var push *redis.IntCmd
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		push = pipe.RPush(ctx, key, data)
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to append round %d to Redis", summary.Round)
	}

	return &AppendOutput{
		Summary: &summary,
		Rounds:  int(push.Val()),
	}, nil
}

// List returns every stored summary, oldest first. An unknown encounter has
// an empty log.
func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.EncounterID == "" {
		return nil, errors.InvalidArgument(errEncounterIDEmpty)
	}

	raw, err := r.client.LRange(ctx, r.buildKey(input.EncounterID), 0, -1).Result()
	if err != nil && err != redis.Nil {
		return nil, errors.Wrapf(err, "failed to list rounds from Redis")
	}

	summaries := make([]*RoundSummary, 0, len(raw))
	for _, item := range raw {
		var s RoundSummary
		if err := json.Unmarshal([]byte(item), &s); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal round summary")
		}
		summaries = append(summaries, &s)
	}

	return &ListOutput{Summaries: summaries}, nil
}

// Delete removes an encounter's log
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.EncounterID == "" {
		return nil, errors.InvalidArgument(errEncounterIDEmpty)
	}

	key := r.buildKey(input.EncounterID)
	n, err := r.client.LLen(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to count rounds in Redis")
	}
	if n == 0 {
		return nil, errors.NotFound("round log not found")
	}

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete round log from Redis")
	}

	return &DeleteOutput{RoundsDeleted: int(n)}, nil
}

func (r *redisRepository) buildKey(encounterID string) string {
	return keyPrefix + encounterID
}
