package quota

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyTTL outlives the day bucket so late requests near midnight still see their counter.
const keyTTL = 48 * time.Hour

// Store keeps per-client daily counters in Redis.
type Store struct {
	redis *redis.Client
}

// NewStore returns a Store backed by the given client.
func NewStore(client *redis.Client) *Store {
	return &Store{redis: client}
}

// Incr bumps the counter for client on day and returns the new value.
// INCR and EXPIRE run in one pipeline so a counter never lives without a TTL.
func (s *Store) Incr(ctx context.Context, client string, day time.Time) (int64, error) {
	key := counterKey(client, day)
	pipe := s.redis.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, keyTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("quota: incr %s: %w", key, err)
	}
	return incr.Val(), nil
}

func counterKey(client string, day time.Time) string {
	return "quota:" + client + ":" + day.UTC().Format("2006-01-02")
}
