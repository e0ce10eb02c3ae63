package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"asset-signature-service/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// StatsCache implements ports.StatisticsCache using Redis.
// Entries are JSON-encoded per-signer aggregates with a short TTL; the cache
// only ever serves slightly stale statistics, never authoritative state.
type StatsCache struct {
	client *goredis.Client
	prefix string
}

// NewStatsCache creates a new Redis-backed statistics cache.
func NewStatsCache(client *goredis.Client) *StatsCache {
	return &StatsCache{
		client: client,
		prefix: "sigstats:",
	}
}

func (c *StatsCache) key(signerID int64) string {
	return fmt.Sprintf("%s%d", c.prefix, signerID)
}

// Get retrieves cached statistics for a signer. Returns nil, nil on miss.
func (c *StatsCache) Get(ctx context.Context, signerID int64) (*domain.SignatureStatistics, error) {
	val, err := c.client.Get(ctx, c.key(signerID)).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis stats get: %w", err)
	}

	stats := &domain.SignatureStatistics{}
	if err := json.Unmarshal(val, stats); err != nil {
		return nil, fmt.Errorf("decode cached stats: %w", err)
	}
	return stats, nil
}

// Set stores statistics for a signer with TTL.
func (c *StatsCache) Set(ctx context.Context, signerID int64, stats *domain.SignatureStatistics, ttl time.Duration) error {
	val, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}
	if err := c.client.Set(ctx, c.key(signerID), val, ttl).Err(); err != nil {
		return fmt.Errorf("redis stats set: %w", err)
	}
	return nil
}
