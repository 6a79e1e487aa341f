package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/AnshRaj112/guildhall-backend/internal/config"
	"github.com/AnshRaj112/guildhall-backend/internal/database"
	"github.com/AnshRaj112/guildhall-backend/internal/handlers"
	"github.com/AnshRaj112/guildhall-backend/internal/middleware"
	"github.com/AnshRaj112/guildhall-backend/internal/repository"
	"github.com/AnshRaj112/guildhall-backend/internal/routes"
	"github.com/AnshRaj112/guildhall-backend/internal/services"
	"github.com/AnshRaj112/guildhall-backend/pkg/logging"
)

func main() {
	envErr := godotenv.Load()
	cfg := config.Load()
	logger := logging.Setup(cfg.LogLevel, cfg.IsProduction())
	if envErr != nil {
		logger.Info("no .env file found")
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("connecting to store", "driver", cfg.DBDriver)
	db, err := database.Open(cfg)
	if err != nil {
		return err
	}
	defer database.Close(db)
	store := repository.New(db)

	var redisClient *redis.Client
	if cfg.RedisURI != "" {
		redisClient, err = database.ConnectRedis(cfg.RedisURI)
		if err != nil {
			return err
		}
		defer redisClient.Close()
	}

	opts := services.Options{
		Logger:     logger,
		Metrics:    services.NewMetricsCollector(),
		BcryptCost: cfg.BcryptCost,
		Folder:     cfg.CloudinaryFolder,
	}
	if cfg.CloudinaryEnabled() {
		uploader, err := services.NewCloudinaryService(cfg.CloudinaryName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			logger.Warn("cloudinary unavailable, profile image uploads disabled", "error", err)
		} else {
			opts.Uploader = uploader
			logger.Info("cloudinary service initialized")
		}
	} else {
		logger.Warn("cloudinary credentials not found, profile image uploads disabled")
	}
	svc := services.New(store, opts)

	httpMetrics := middleware.NewMetricsCollector()
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		opts.Metrics,
		httpMetrics,
	)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimw.Recoverer)
	r.Use(httpMetrics.Handler)
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	// API only. Production: SecurityHeaders → HostCheck → per-IP limits.
	// Redis, when configured, adds a limit shared across instances.
	var api []func(http.Handler) http.Handler
	if cfg.IsProduction() {
		api = append(api, middleware.ProductionSecurity(ctx, cfg.AllowedHost)...)
		logger.Info("production security enabled", "allowed_host", cfg.AllowedHost)
	}
	if redisClient != nil {
		api = append(api, middleware.NewRedisRateLimiter(redisClient).Handler)
	}

	routes.SetupRoutes(r, handlers.New(svc, store, logger), registry, api...)

	srv := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("guildhall backend running", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
