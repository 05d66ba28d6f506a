package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"field-service-api/internal/models"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// AvailabilityCache is a Redis-backed cache for computed availability
// results, keyed by (worker, date). The engine itself never caches; this
// lives at the service layer where invalidation on job and schedule
// mutations is visible. Cache misses and Redis errors both fall through to
// a fresh computation.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *logrus.Logger
}

func NewAvailabilityCache(addr, password string, db int, ttl time.Duration) (*AvailabilityCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &AvailabilityCache{
		client: client,
		ttl:    ttl,
		logger: logrus.New(),
	}, nil
}

func cacheKey(workerID uint, date string) string {
	return fmt.Sprintf("availability:%d:%s", workerID, date)
}

func (c *AvailabilityCache) Get(ctx context.Context, workerID uint, date string) (*models.AvailabilityResult, bool) {
	data, err := c.client.Get(ctx, cacheKey(workerID, date)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.WithError(err).Warn("Availability cache read failed")
		}
		return nil, false
	}

	var result models.AvailabilityResult
	if err := json.Unmarshal(data, &result); err != nil {
		c.logger.WithError(err).Warn("Corrupt availability cache entry")
		return nil, false
	}

	return &result, true
}

func (c *AvailabilityCache) Set(ctx context.Context, workerID uint, date string, result *models.AvailabilityResult) {
	data, err := json.Marshal(result)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, cacheKey(workerID, date), data, c.ttl).Err(); err != nil {
		c.logger.WithError(err).Warn("Availability cache write failed")
	}
}

// Invalidate drops the cached result for one worker/date.
func (c *AvailabilityCache) Invalidate(ctx context.Context, workerID uint, date string) {
	if err := c.client.Del(ctx, cacheKey(workerID, date)).Err(); err != nil {
		c.logger.WithError(err).Warn("Availability cache invalidation failed")
	}
}

// InvalidateWorker drops every cached date for a worker; used when the
// schedule config itself changes.
func (c *AvailabilityCache) InvalidateWorker(ctx context.Context, workerID uint) {
	pattern := fmt.Sprintf("availability:%d:*", workerID)
	keys, err := c.client.Keys(ctx, pattern).Result()
	if err != nil {
		c.logger.WithError(err).Warn("Availability cache scan failed")
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.WithError(err).Warn("Availability cache invalidation failed")
	}
}
