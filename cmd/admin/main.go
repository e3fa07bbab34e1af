package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/busybee/admin-gateway/internal/api"
	"github.com/busybee/admin-gateway/internal/core/ports"
	"github.com/busybee/admin-gateway/internal/infrastructure/busybee"
	"github.com/busybee/admin-gateway/internal/infrastructure/config"
	"github.com/busybee/admin-gateway/internal/infrastructure/session"
	"github.com/busybee/admin-gateway/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

// @title        BusyBee Admin Gateway
// @version      1.0
// @description  Administration panel backend for the BusyBee services marketplace.
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	upstream := busybee.NewClient(busybee.Config{
		BaseURL: cfg.Upstream.BaseURL,
		Timeout: cfg.Upstream.Timeout,
	}, log)

	var (
		sessions ports.SessionStore
		rdb      *redis.Client
	)
	if cfg.Redis.Addr != "" {
		var err error
		rdb, err = session.Connect(ctx, session.RedisConfig{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer rdb.Close()
		sessions = session.NewRedisStore(rdb)
	} else {
		log.Warn().Msg("REDIS_ADDR not set, using in-memory session store")
		sessions = session.NewMemoryStore()
	}

	e := api.NewRouter(upstream, sessions, rdb, log, api.RouterConfig{
		CookieName: cfg.Session.CookieName,
		SessionTTL: cfg.Session.TTL,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("upstream", cfg.Upstream.BaseURL).Msg("admin gateway listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		return
	}
	log.Info().Msg("server stopped cleanly")
}
