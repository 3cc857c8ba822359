// README: Read-only view of the generation log.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripsight/internal/modules/history"
)

type HistoryHandler struct {
	history *history.Service
}

func NewHistoryHandler(svc *history.Service) *HistoryHandler {
	return &HistoryHandler{history: svc}
}

// Recent handles GET /generations?limit=N.
func (h *HistoryHandler) Recent(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(c, http.StatusUnprocessableEntity, "limit must be an integer")
			return
		}
		limit = n
	}

	records, err := h.history.Recent(c.Request.Context(), limit)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	if records == nil {
		records = []history.Record{}
	}
	writeJSON(c, http.StatusOK, map[string]any{"generations": records})
}
