// README: Quota service enforces an optional per-client daily request allowance.
package quota

import (
	"context"
	"log"
	"time"
)

// Counter is the storage contract used by Service; *Store satisfies it.
type Counter interface {
	Incr(ctx context.Context, client string, day time.Time) (int64, error)
}

// Service orchestrates quota checks.
type Service struct {
	counter Counter
	limit   int64
	now     func() time.Time
}

// NewService creates a Service allowing limit requests per client per UTC day.
// A limit <= 0 disables the check.
func NewService(counter Counter, limit int) *Service {
	return &Service{counter: counter, limit: int64(limit), now: time.Now}
}

// Allow consumes one request from client's allowance.
// Returns ErrQuotaExceeded once the allowance is spent. Storage failures are
// logged and the request is let through.
func (s *Service) Allow(ctx context.Context, client string) error {
	if s == nil || s.counter == nil || s.limit <= 0 {
		return nil
	}
	n, err := s.counter.Incr(ctx, client, s.now())
	if err != nil {
		log.Printf("quota: counter unavailable, allowing client=%s: %v", client, err)
		return nil
	}
	if n > s.limit {
		return ErrQuotaExceeded
	}
	return nil
}
