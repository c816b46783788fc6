package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/paisable/paisable/internal/logger"
	"github.com/paisable/paisable/internal/models"
	"github.com/redis/go-redis/v9"
)

// SummaryCacheRepository caches per-user ledger summaries in Redis. Entries
// expire after a short TTL and are invalidated on every ledger write.
type SummaryCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

func NewSummaryCacheRepository(client *redis.Client, expiration time.Duration) *SummaryCacheRepository {
	return &SummaryCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func summaryKey(userID uuid.UUID) string {
	return fmt.Sprintf("ledger_summary:%s", userID)
}

// Get returns the cached summary for the user, or nil on a cache miss.
func (r *SummaryCacheRepository) Get(ctx context.Context, userID uuid.UUID) (*models.Summary, error) {
	key := summaryKey(userID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var summary models.Summary
	if err := json.Unmarshal([]byte(val), &summary); err != nil {
		logger.Log.Infow(
			"key", key,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", summary,
		"error", nil,
	)

	return &summary, nil
}

// Set caches a summary for the user with the configured expiration.
func (r *SummaryCacheRepository) Set(ctx context.Context, userID uuid.UUID, summary models.Summary) error {
	key := summaryKey(userID)

	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"value", summary,
		"error", err,
	)

	return err
}

// Invalidate drops the cached summary after a ledger write.
func (r *SummaryCacheRepository) Invalidate(ctx context.Context, userID uuid.UUID) error {
	key := summaryKey(userID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"result", "deleted",
		"error", err,
	)

	return err
}
