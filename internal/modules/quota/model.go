package quota

import "errors"

// ErrQuotaExceeded is returned when a client has used up today's itinerary allowance.
var ErrQuotaExceeded = errors.New("daily itinerary quota exceeded")
