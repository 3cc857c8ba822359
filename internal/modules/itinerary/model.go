// README: Itinerary request/response types, validation, and error taxonomy.
package itinerary

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRequest is returned before any completion call when a TripRequest is rejected.
var ErrInvalidRequest = errors.New("invalid trip request")

// TripRequest is the caller's trip description. It is built per call and never stored.
type TripRequest struct {
	Destination string   `json:"destination" binding:"required"`
	Interests   []string `json:"interests" binding:"required"`
	Days        int      `json:"days" binding:"required,gt=0"`
}

// Validate checks the invariants the prompt relies on. maxDays <= 0 means no upper bound.
func (r TripRequest) Validate(maxDays int) error {
	if strings.TrimSpace(r.Destination) == "" {
		return fmt.Errorf("%w: destination must not be empty", ErrInvalidRequest)
	}
	if r.Days <= 0 {
		return fmt.Errorf("%w: days must be greater than 0", ErrInvalidRequest)
	}
	if maxDays > 0 && r.Days > maxDays {
		return fmt.Errorf("%w: days must be at most %d", ErrInvalidRequest, maxDays)
	}
	return nil
}

// Response carries the completion text exactly as the model returned it.
type Response struct {
	Itinerary string `json:"itinerary"`
}

// UpstreamError wraps any failure from the completion call. Its message is the
// wrapped error's message, unchanged, so callers can relay it verbatim.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string { return e.Err.Error() }

func (e *UpstreamError) Unwrap() error { return e.Err }

// Outcome statuses recorded for each Generate call.
const (
	StatusOK            = "ok"
	StatusInvalid       = "invalid"
	StatusUpstreamError = "upstream_error"
)

// Outcome summarises one Generate call for the optional history sink.
type Outcome struct {
	Request   TripRequest
	Status    string
	Err       error
	LatencyMs int64
}
