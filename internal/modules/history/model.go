// README: Generation log record persisted for each itinerary request.
package history

import (
	"time"

	"github.com/google/uuid"
)

// Record is one row of generation_log.
type Record struct {
	ID          uuid.UUID `json:"id"`
	Destination string    `json:"destination"`
	Interests   []string  `json:"interests"`
	Days        int       `json:"days"`
	Status      string    `json:"status"`
	Error       string    `json:"error,omitempty"`
	LatencyMs   int64     `json:"latency_ms"`
	CreatedAt   time.Time `json:"created_at"`
}

const (
	DefaultRecentLimit = 20
	MaxRecentLimit     = 200
)
