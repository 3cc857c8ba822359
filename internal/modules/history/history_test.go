// README: History module tests (outcome mapping, limit clamping, Postgres round trip).
package history

import (
	"bufio"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"tripsight/internal/modules/itinerary"
)

type fakeWriter struct {
	mu        sync.Mutex
	inserted  []Record
	insertErr error
	ctxErr    error
	gotLimit  int
	block     chan struct{}
}

func (f *fakeWriter) Insert(ctx context.Context, r Record) error {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ctxErr = ctx.Err()
	f.inserted = append(f.inserted, r)
	return f.insertErr
}

func (f *fakeWriter) Recent(_ context.Context, limit int) ([]Record, error) {
	f.gotLimit = limit
	return nil, nil
}

func TestRecordMapsOutcome(t *testing.T) {
	w := &fakeWriter{}
	svc := NewService(w)
	fixed := time.Date(2026, 5, 4, 10, 0, 0, 0, time.FixedZone("CEST", 2*3600))
	svc.now = func() time.Time { return fixed }

	svc.Record(context.Background(), itinerary.Outcome{
		Request:   itinerary.TripRequest{Destination: "Paris", Interests: []string{"art"}, Days: 2},
		Status:    itinerary.StatusUpstreamError,
		Err:       errors.New("openai: api error: quota"),
		LatencyMs: 1234,
	})
	svc.Wait()

	if len(w.inserted) != 1 {
		t.Fatalf("expected 1 insert, got %d", len(w.inserted))
	}
	r := w.inserted[0]
	if r.Destination != "Paris" || r.Days != 2 || r.Status != itinerary.StatusUpstreamError || r.Error != "openai: api error: quota" || r.LatencyMs != 1234 {
		t.Fatalf("unexpected record %+v", r)
	}
	if r.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Fatal("record id not generated")
	}
	if !r.CreatedAt.Equal(fixed) || r.CreatedAt.Location() != time.UTC {
		t.Fatalf("created_at = %v", r.CreatedAt)
	}
}

func TestRecordSurvivesCancelledRequest(t *testing.T) {
	w := &fakeWriter{insertErr: errors.New("db down")}
	svc := NewService(w)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc.Record(ctx, itinerary.Outcome{Request: itinerary.TripRequest{Destination: "Rome", Days: 1}, Status: itinerary.StatusOK})
	svc.Wait()

	if len(w.inserted) != 1 {
		t.Fatal("insert should still be attempted")
	}
	if w.ctxErr != nil {
		t.Fatalf("write context should be detached from request cancellation, got %v", w.ctxErr)
	}
}

func TestRecordDoesNotBlockCaller(t *testing.T) {
	w := &fakeWriter{block: make(chan struct{})}
	svc := NewService(w)

	done := make(chan struct{})
	go func() {
		svc.Record(context.Background(), itinerary.Outcome{Request: itinerary.TripRequest{Destination: "Lima", Days: 1}, Status: itinerary.StatusOK})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Record blocked on a slow store")
	}

	close(w.block)
	svc.Wait()
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.inserted) != 1 {
		t.Fatalf("expected the insert to complete after Wait, got %d", len(w.inserted))
	}
}

func TestRecentClampsLimit(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, DefaultRecentLimit},
		{-5, DefaultRecentLimit},
		{7, 7},
		{10_000, MaxRecentLimit},
	}
	for _, tt := range tests {
		w := &fakeWriter{}
		if _, err := NewService(w).Recent(context.Background(), tt.in); err != nil {
			t.Fatalf("Recent(%d): %v", tt.in, err)
		}
		if w.gotLimit != tt.want {
			t.Errorf("Recent(%d) used limit %d, want %d", tt.in, w.gotLimit, tt.want)
		}
	}
}

// TestStoreRoundTrip needs a real Postgres; it skips when TRIPSIGHT_TEST_DSN is not set.
func TestStoreRoundTrip(t *testing.T) {
	store, db := setupTestStore(t)
	ctx := context.Background()
	svc := NewService(store)

	svc.Record(ctx, itinerary.Outcome{
		Request: itinerary.TripRequest{Destination: "Tokyo", Interests: []string{"anime", "sushi"}, Days: 4},
		Status:  itinerary.StatusOK,
	})
	svc.Record(ctx, itinerary.Outcome{
		Request: itinerary.TripRequest{Destination: "Oslo", Days: 0},
		Status:  itinerary.StatusInvalid,
		Err:     errors.New("invalid trip request: days must be greater than 0"),
	})
	svc.Wait()

	var count int
	if err := db.QueryRow(ctx, "SELECT COUNT(*) FROM generation_log").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 rows, got %d", count)
	}

	recent, err := svc.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recent))
	}
	if recent[0].Destination != "Oslo" || recent[0].Status != itinerary.StatusInvalid {
		t.Errorf("newest record = %+v", recent[0])
	}
	if strings.Join(recent[1].Interests, ",") != "anime,sushi" {
		t.Errorf("interests = %v", recent[1].Interests)
	}
}

func setupTestStore(t *testing.T) (*Store, *pgxpool.Pool) {
	t.Helper()

	dsn := os.Getenv("TRIPSIGHT_TEST_DSN")
	if dsn == "" {
		t.Skip("TRIPSIGHT_TEST_DSN not set; skipping DB-backed tests")
	}

	ctx := context.Background()
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := applyMigrations(ctx, db); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if _, err := db.Exec(ctx, "TRUNCATE TABLE generation_log"); err != nil {
		t.Fatalf("truncate generation_log: %v", err)
	}
	return NewStore(db), db
}

func applyMigrations(ctx context.Context, db *pgxpool.Pool) error {
	root, err := repoRoot()
	if err != nil {
		return err
	}
	content, err := os.ReadFile(filepath.Join(root, "migrations", "0001_generation_log.sql"))
	if err != nil {
		return err
	}
	for _, stmt := range splitSQL(stripSQLComments(string(content))) {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func repoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for i := 0; i < 6; i++ {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

func stripSQLComments(input string) string {
	var b strings.Builder
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		b.WriteString(scanner.Text())
		b.WriteString("\n")
	}
	return b.String()
}

func splitSQL(input string) []string {
	parts := strings.Split(input, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if stmt := strings.TrimSpace(p); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}
