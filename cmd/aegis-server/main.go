package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/avinya-safety/aegis/internal/api"
	"github.com/avinya-safety/aegis/internal/config"
	"github.com/avinya-safety/aegis/internal/feed"
	"github.com/avinya-safety/aegis/internal/geocode"
	"github.com/avinya-safety/aegis/internal/logging"
	"github.com/avinya-safety/aegis/internal/observability"
	"github.com/avinya-safety/aegis/internal/route"
	"github.com/avinya-safety/aegis/internal/store"
	"github.com/avinya-safety/aegis/internal/ws"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("Fatal while loading config: %v", err)
	}
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("Server starting", "host", cfg.Server.Host, "port", cfg.Server.Port)

	metrics := observability.NewMetrics()
	snapshots := store.NewSnapshotStore()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Realtime hub: snapshot fanout plus SOS relay
	hub := ws.NewHub(snapshots, metrics, cfg.Feed.HeartbeatInterval)
	hub.Start(ctx)

	// Feed manager: initial refresh then every interval
	generator := feed.NewGenerator(feed.NewSimulatedSource(), nil, nil)
	mgr := feed.NewManager(generator, snapshots, hub, metrics, cfg.Feed.RefreshInterval, nil)
	mgr.Start(ctx)

	// Route evaluation: ORS, then OSRM, then the synthetic fallback
	evaluator := route.NewEvaluator(
		[]route.Provider{
			route.NewORSClient(cfg.Routing.ORSBaseURL, cfg.Routing.ORSAPIKey, cfg.Routing.Timeout),
			route.NewOSRMClient(cfg.Routing.OSRMBaseURL, cfg.Routing.Timeout),
		},
		route.NewSyntheticRouter(nil),
		metrics,
	)

	geocoder := geocode.NewClient(cfg.Geocode.NominatimBaseURL, cfg.Geocode.Timeout)

	// Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false, // Set to false when using wildcard origins
	}))
	router.Use(api.RateLimitMiddleware(cfg.API.RateLimitRPS))

	handler := api.NewHandler(snapshots, evaluator, geocoder, hub)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down...")

	cancel()
	mgr.Stop()
	hub.Close()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
}
