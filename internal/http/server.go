// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripsight/internal/http/handlers"
	"tripsight/internal/http/middleware"
	"tripsight/internal/modules/history"
	"tripsight/internal/modules/itinerary"
	"tripsight/internal/modules/quota"
)

// ServerDeps lists the services behind the HTTP surface. Quota and History are optional.
type ServerDeps struct {
	Itinerary *itinerary.Service
	Quota     *quota.Service
	History   *history.Service
}

type Server struct {
	itinerary *itinerary.Service
	quota     *quota.Service
	history   *history.Service
}

func NewServer(deps ServerDeps) *Server {
	return &Server{
		itinerary: deps.Itinerary,
		quota:     deps.Quota,
		history:   deps.History,
	}
}

func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logging(), middleware.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	itineraryHandler := handlers.NewItineraryHandler(s.itinerary, s.quota)
	r.POST("/generate-itinerary", itineraryHandler.Generate)

	if s.history != nil {
		historyHandler := handlers.NewHistoryHandler(s.history)
		r.GET("/generations", historyHandler.Recent)
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not Found"})
	})
	return r
}
