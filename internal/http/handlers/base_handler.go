// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripsight/internal/modules/itinerary"
	"tripsight/internal/modules/quota"
)

// errorResponse mirrors the {"detail": "..."} body clients of this API expect.
type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Detail: msg})
}

func writeItineraryError(c *gin.Context, err error) {
	var upstream *itinerary.UpstreamError
	switch {
	case errors.Is(err, itinerary.ErrInvalidRequest):
		writeError(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, quota.ErrQuotaExceeded):
		writeError(c, http.StatusTooManyRequests, err.Error())
	case errors.As(err, &upstream):
		writeError(c, http.StatusInternalServerError, upstream.Error())
	default:
		writeError(c, http.StatusInternalServerError, err.Error())
	}
}
