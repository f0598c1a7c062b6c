package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/config"
	"github.com/BruksfildServices01/salon-booking/internal/customers"
	dbpkg "github.com/BruksfildServices01/salon-booking/internal/db"
	"github.com/BruksfildServices01/salon-booking/internal/logger"
	"github.com/BruksfildServices01/salon-booking/internal/metrics"
	"github.com/BruksfildServices01/salon-booking/internal/middleware"
	"github.com/BruksfildServices01/salon-booking/internal/routes"
	"github.com/BruksfildServices01/salon-booking/internal/storage"
)

func main() {

	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db := dbpkg.NewDB(cfg, log)

	if cfg.MetricsEnabled {
		metrics.Register()
	}

	directory := customerDirectory(ctx, cfg, log)

	var store storage.ObjectStore
	if cfg.StorageEnabled() {
		store = storage.NewS3Store(cfg)
	} else {
		log.Warn().Msg("S3_BUCKET not set, image uploads disabled")
	}

	auditDispatcher := audit.NewDispatcher(audit.New(db), log)
	defer auditDispatcher.Close()

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	limiter.StartJanitor(ctx, 2*time.Minute)

	if cfg.LogFormat == "json" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		DB:        db,
		Config:    cfg,
		Log:       log,
		Audit:     auditDispatcher,
		Customers: directory,
		Store:     store,
		Limiter:   limiter,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// customerDirectory picks Redis when REDIS_URL is set, memory otherwise, and
// loads the legacy registry export into it. Salon registration with a
// customer code is rejected when no export is configured.
func customerDirectory(ctx context.Context, cfg *config.Config, log zerolog.Logger) customers.Directory {
	var dir customers.Directory = customers.NewMemoryDirectory()

	if cfg.RedisURL != "" {
		client, err := customers.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect redis")
		}
		dir = customers.NewRedisDirectory(client, customers.DefaultRedisKey)
	}

	if cfg.CustomerCodesCSV == "" {
		log.Warn().Msg("CUSTOMER_CODES_CSV not set, customer codes will not validate")
		return dir
	}

	n, err := customers.LoadFile(ctx, dir, cfg.CustomerCodesCSV)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.CustomerCodesCSV).Msg("failed to load customer codes")
	}
	log.Info().Int("codes", n).Msg("customer codes loaded")

	return dir
}
