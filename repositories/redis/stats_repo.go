package redis

import (
	// Go Internal Packages
	"context"
	"fmt"
	"time"

	// Local Packages
	models "tx-publisher/models"

	// External Packages
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "tx-publisher:runs:"

// StatsRepository keeps the latest statistics of each run in a hash keyed
// "tx-publisher:runs:{run_id}".
type StatsRepository struct {
	client *redis.Client
	logger *zap.Logger
	ttl    time.Duration
}

func NewStatsRepository(client *redis.Client, logger *zap.Logger, ttl time.Duration) *StatsRepository {
	return &StatsRepository{client: client, logger: logger, ttl: ttl}
}

func StatsKey(runID string) string {
	return keyPrefix + runID
}

// SaveStats overwrites the run's hash and refreshes its expiry.
func (r *StatsRepository) SaveStats(ctx context.Context, stats models.RunStats) error {
	key := StatsKey(stats.RunID)

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, statsFields(stats))
		if r.ttl > 0 {
			pipe.Expire(ctx, key, r.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save run stats: %w", err)
	}

	r.logger.Debug("saved run stats", zap.String("key", key), zap.String("state", stats.State))
	return nil
}

func statsFields(stats models.RunStats) map[string]any {
	return map[string]any{
		"run_id":       stats.RunID,
		"state":        stats.State,
		"started_at":   stats.StartedAt.Format(time.RFC3339),
		"updated_at":   stats.UpdatedAt.Format(time.RFC3339),
		"generated":    stats.Generated,
		"sent":         stats.Sent,
		"acknowledged": stats.Acknowledged,
		"failed":       stats.Failed,
		"dropped":      stats.Dropped,
		"pauses":       stats.Pauses,
		"undelivered":  stats.Undelivered,
	}
}
