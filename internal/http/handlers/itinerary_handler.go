// README: Itinerary handler for POST /generate-itinerary.
package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripsight/internal/modules/itinerary"
	"tripsight/internal/modules/quota"
)

type ItineraryHandler struct {
	itinerary *itinerary.Service
	quota     *quota.Service
}

// NewItineraryHandler wires the handler. quotaSvc may be nil.
func NewItineraryHandler(svc *itinerary.Service, quotaSvc *quota.Service) *ItineraryHandler {
	return &ItineraryHandler{itinerary: svc, quota: quotaSvc}
}

type itineraryDaysResp struct {
	Itinerary string          `json:"itinerary"`
	Days      []itinerary.Day `json:"days"`
}

// Generate handles POST /generate-itinerary.
// With ?format=days the parsed day view is returned alongside the raw text.
func (h *ItineraryHandler) Generate(c *gin.Context) {
	var req itinerary.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("itinerary: invalid request body: %v", err)
		writeError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	// Rejected requests fall through to Generate, which reports them, without
	// consuming the client's allowance.
	if h.itinerary.Validate(req) == nil {
		if err := h.quota.Allow(c.Request.Context(), c.ClientIP()); err != nil {
			writeItineraryError(c, err)
			return
		}
	}

	resp, err := h.itinerary.Generate(c.Request.Context(), req)
	if err != nil {
		writeItineraryError(c, err)
		return
	}

	if c.Query("format") == "days" {
		days := itinerary.ParseDays(resp.Itinerary)
		if days == nil {
			days = []itinerary.Day{}
		}
		writeJSON(c, http.StatusOK, itineraryDaysResp{Itinerary: resp.Itinerary, Days: days})
		return
	}
	writeJSON(c, http.StatusOK, resp)
}
