package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sayyara-vehicle-api/internal/catalog"
	"sayyara-vehicle-api/internal/client"
	"sayyara-vehicle-api/internal/config"
	"sayyara-vehicle-api/internal/handler"
	"sayyara-vehicle-api/internal/metrics"
	"sayyara-vehicle-api/internal/resolver"
	"sayyara-vehicle-api/internal/service"
)

func main() {
	// Structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	slog.Info("starting sayyara-vehicle-api")

	// Optional .env for local development
	if err := godotenv.Load(); err == nil {
		slog.Info("loaded environment from .env")
	}

	cfg := config.Load()

	// Immutable reference data, loaded once
	cat := catalog.New()
	brands, models := cat.Size()
	slog.Info("reference catalog loaded", "brands", brands, "models", models)

	engineMetrics := metrics.New()

	// Live sources; either can be disabled and its tier is skipped
	var trims resolver.TrimSource
	if cfg.Trims.Enabled {
		trims = client.NewTrimClient(cfg.Trims.BaseURL, cfg.Trims.Timeout, cfg.Trims.RequestsPerSecond, logger)
	}
	var registry resolver.RegistrySource
	if cfg.Registry.Enabled {
		registry = client.NewRegistryClient(cfg.Registry.BaseURL, cfg.Registry.Timeout, cfg.Registry.RequestsPerSecond, logger)
	}

	cache := resolver.NewCache()
	yearResolver := resolver.New(cache, trims, registry, cat, engineMetrics, logger)
	validationSvc := service.NewValidationService(cat, yearResolver, engineMetrics, logger)

	// Handlers
	healthHandler := handler.NewHealthHandler(cat, cache)
	vehicleHandler := handler.NewVehicleHandler(validationSvc)
	catalogHandler := handler.NewCatalogHandler(cat)

	// Router
	r := chi.NewRouter()

	// Middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// CORS middleware
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	})

	// Routes
	r.Get("/health", healthHandler.Check)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/brands", catalogHandler.ListBrands)
		r.Post("/vehicle/validate", vehicleHandler.Validate)
		r.Get("/vehicle/year-range", vehicleHandler.YearRange)
		r.Post("/cache/clear", vehicleHandler.ClearCache)
	})

	// Server
	srv := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		slog.Info("server started", "port", cfg.APIPort)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	slog.Info("server stopped")
}
