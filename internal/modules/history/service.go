// README: History service writes generation outcomes to Postgres on a best-effort basis.
package history

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"tripsight/internal/modules/itinerary"
)

const writeTimeout = 3 * time.Second

// Writer is the persistence contract used by Service; *Store satisfies it.
type Writer interface {
	Insert(ctx context.Context, r Record) error
	Recent(ctx context.Context, limit int) ([]Record, error)
}

type Service struct {
	store   Writer
	now     func() time.Time
	pending sync.WaitGroup
}

func NewService(store Writer) *Service {
	return &Service{store: store, now: time.Now}
}

// Record implements itinerary.Recorder. The insert runs in the background so a
// slow database never delays the response; it is detached from the caller's
// cancellation and failures are only logged.
func (s *Service) Record(ctx context.Context, o itinerary.Outcome) {
	r := Record{
		ID:          uuid.New(),
		Destination: o.Request.Destination,
		Interests:   o.Request.Interests,
		Days:        o.Request.Days,
		Status:      o.Status,
		LatencyMs:   o.LatencyMs,
		CreatedAt:   s.now().UTC(),
	}
	if o.Err != nil {
		r.Error = o.Err.Error()
	}

	writeCtx := context.WithoutCancel(ctx)
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		ctx, cancel := context.WithTimeout(writeCtx, writeTimeout)
		defer cancel()
		if err := s.store.Insert(ctx, r); err != nil {
			log.Printf("history: record id=%s status=%s: %v", r.ID, r.Status, err)
		}
	}()
}

// Wait blocks until every in-flight write has finished.
func (s *Service) Wait() {
	s.pending.Wait()
}

// Recent returns the newest records, clamping limit to [1, MaxRecentLimit].
func (s *Service) Recent(ctx context.Context, limit int) ([]Record, error) {
	switch {
	case limit <= 0:
		limit = DefaultRecentLimit
	case limit > MaxRecentLimit:
		limit = MaxRecentLimit
	}
	return s.store.Recent(ctx, limit)
}
