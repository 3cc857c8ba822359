// README: Entry point; loads config, wires the completion provider and optional stores, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"tripsight/internal/ai"
	"tripsight/internal/config"
	httptransport "tripsight/internal/http"
	"tripsight/internal/infra"
	"tripsight/internal/maps"
	"tripsight/internal/modules/history"
	"tripsight/internal/modules/itinerary"
	"tripsight/internal/modules/quota"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.HTTP.GinMode != "" {
		gin.SetMode(cfg.HTTP.GinMode)
	}
	for _, w := range cfg.Warnings() {
		log.Printf("warning: %s", w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := ai.NewProvider(cfg.LLM)
	if err != nil {
		log.Fatal(err)
	}

	opts := itinerary.Options{
		MaxDays: cfg.Itinerary.MaxDays,
		Timeout: cfg.LLM.Timeout,
	}
	deps := httptransport.ServerDeps{}

	if cfg.DB.DSN != "" {
		dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			log.Fatal(err)
		}
		defer dbPool.Close()
		deps.History = history.NewService(history.NewStore(dbPool))
		defer deps.History.Wait()
		opts.Recorder = deps.History
		log.Printf("generation history enabled")
	}

	if cfg.Redis.Addr != "" {
		redisClient, err := infra.NewRedis(ctx, cfg.Redis.Addr)
		if err != nil {
			log.Fatal(err)
		}
		defer redisClient.Close()
		deps.Quota = quota.NewService(quota.NewStore(redisClient), cfg.Quota.Daily)
		log.Printf("daily quota enabled limit=%d", cfg.Quota.Daily)
	}

	if cfg.Maps.APIKey != "" {
		places, err := maps.NewPlacesService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
		opts.Hints = places
		log.Printf("place hints enabled")
	}

	deps.Itinerary = itinerary.NewService(provider, opts)
	handler := httptransport.NewServer(deps)

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("tripsight listening on %s provider=%s", cfg.HTTP.Addr, cfg.LLM.Provider)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
