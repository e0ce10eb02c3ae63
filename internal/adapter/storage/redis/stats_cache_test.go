package redis_test

import (
	"context"
	"testing"
	"time"

	"asset-signature-service/internal/adapter/storage/redis"
	"asset-signature-service/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	cache := redis.NewStatsCache(client)
	ctx := context.Background()

	t.Run("miss returns nil without error", func(t *testing.T) {
		stats, err := cache.Get(ctx, 5)
		require.NoError(t, err)
		assert.Nil(t, stats)
	})

	t.Run("set then get round-trips", func(t *testing.T) {
		last := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
		in := &domain.SignatureStatistics{
			TotalSignatures:   10,
			ValidSignatures:   8,
			InvalidSignatures: 2,
			LastSignatureAt:   &last,
			ValidityRate:      80,
		}
		require.NoError(t, cache.Set(ctx, 5, in, time.Minute))

		out, err := cache.Get(ctx, 5)
		require.NoError(t, err)
		require.NotNil(t, out)
		assert.Equal(t, int64(10), out.TotalSignatures)
		assert.Equal(t, int64(8), out.ValidSignatures)
		assert.Equal(t, float64(80), out.ValidityRate)
		require.NotNil(t, out.LastSignatureAt)
		assert.True(t, last.Equal(*out.LastSignatureAt))
	})

	t.Run("entries expire after TTL", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, 9, &domain.SignatureStatistics{TotalSignatures: 1}, time.Minute))

		mr.FastForward(61 * time.Second)

		stats, err := cache.Get(ctx, 9)
		require.NoError(t, err)
		assert.Nil(t, stats)
	})

	t.Run("signers are isolated", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, 1, &domain.SignatureStatistics{TotalSignatures: 1}, time.Minute))
		require.NoError(t, cache.Set(ctx, 2, &domain.SignatureStatistics{TotalSignatures: 2}, time.Minute))

		a, err := cache.Get(ctx, 1)
		require.NoError(t, err)
		b, err := cache.Get(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(1), a.TotalSignatures)
		assert.Equal(t, int64(2), b.TotalSignatures)
	})
}
