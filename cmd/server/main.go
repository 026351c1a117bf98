package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pawhaven/adoption-gateway/internal/api"
	"github.com/pawhaven/adoption-gateway/internal/infrastructure/config"
	mongostore "github.com/pawhaven/adoption-gateway/internal/infrastructure/db/mongo"
	redisstore "github.com/pawhaven/adoption-gateway/internal/infrastructure/db/redis"
	"github.com/pawhaven/adoption-gateway/internal/infrastructure/upstream"
	"github.com/pawhaven/adoption-gateway/pkg/logger"
)

// @title        PawHaven Adoption Gateway API
// @version      1.0
// @description  Session, browsing and admin gateway in front of the pet-adoption REST API.
// @BasePath     /
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fallback := logger.Init(logger.Options{})
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.SessionSecret == "" {
		log.Fatal().Msg("SESSION_SECRET is required")
	}

	mongoClient, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:            cfg.Mongo.URI,
		Database:       cfg.Mongo.Database,
		ConnectTimeout: cfg.Mongo.ConnectTimeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	if err := mongostore.NewSessionStore(db, cfg.SessionTTL).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure session indexes")
	}

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr:           cfg.Redis.Addr,
		DB:             cfg.Redis.DB,
		ConnectTimeout: cfg.Redis.ConnectTimeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Warn().Err(err).Msg("redis close failed")
		}
	}()

	upstreamClient, err := upstream.New(upstream.Config{
		BaseURL: cfg.Upstream.BaseURL,
		Timeout: cfg.Upstream.Timeout,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid upstream configuration")
	}

	e := api.NewRouter(db, rdb, upstreamClient, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting gateway")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
