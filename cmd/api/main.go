// @title        User API
// @version      1.0
// @description  Request/response validation demo: users, login, contact form and image upload.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/sirpyerre/user-api/internal/api"
	"github.com/sirpyerre/user-api/internal/api/handler"
	"github.com/sirpyerre/user-api/internal/core/ports"
	"github.com/sirpyerre/user-api/internal/core/service"
	"github.com/sirpyerre/user-api/internal/infrastructure/db/memory"
	mongodb "github.com/sirpyerre/user-api/internal/infrastructure/db/mongo"
	redisdb "github.com/sirpyerre/user-api/internal/infrastructure/db/redis"
	"github.com/sirpyerre/user-api/internal/pkg/config"
	"github.com/sirpyerre/user-api/pkg/logger"
)

const (
	readTimeout  = 15 * time.Second
	writeTimeout = 30 * time.Second
	idleTimeout  = 60 * time.Second
)

func main() {
	ctx := context.Background()
	cfg := config.MustLoad(ctx)

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: "user-api",
		Env:     cfg.Env,
	})

	directory, probes, closeDirectory, err := openDirectory(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.UserDirectory).Msg("failed to open user directory")
	}
	defer closeDirectory()

	svc := service.NewUserService(directory, logger.Component(log, "user_service"))
	e := api.NewRouter(api.Options{
		Service:   svc,
		Probes:    probes,
		Logger:    logger.Component(log, "http"),
		BodyLimit: cfg.BodyLimit,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("directory", cfg.UserDirectory).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	waitForShutdown(srv, cfg.ShutdownTimeout, log)
}

// openDirectory builds the known-users backend selected by USER_DIRECTORY.
// External backends are seeded with the configured ids and returned as
// readiness probes.
func openDirectory(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.UserDirectory, map[string]handler.Pinger, func(), error) {
	switch cfg.UserDirectory {
	case config.DirectoryRedis:
		client, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, nil, err
		}
		known := redisdb.NewKnownUsers(client, cfg.Redis.Key)
		if err := known.Seed(ctx, cfg.KnownUserIDs); err != nil {
			_ = client.Close()
			return nil, nil, nil, fmt.Errorf("seed redis directory: %w", err)
		}
		log.Info().Str("addr", cfg.Redis.Addr).Ints("ids", cfg.KnownUserIDs).Msg("redis directory ready")

		closeFn := func() {
			if err := client.Close(); err != nil {
				log.Error().Err(err).Msg("redis close")
			}
		}
		return known, map[string]handler.Pinger{"redis": known}, closeFn, nil

	case config.DirectoryMongo:
		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
			AppName:  "user-api",
		})
		if err != nil {
			return nil, nil, nil, err
		}
		known := mongodb.NewKnownUsers(db, cfg.Mongo.Collection)
		if err := known.Seed(ctx, cfg.KnownUserIDs); err != nil {
			_ = client.Disconnect(ctx)
			return nil, nil, nil, fmt.Errorf("seed mongo directory: %w", err)
		}
		log.Info().Str("db", cfg.Mongo.Database).Ints("ids", cfg.KnownUserIDs).Msg("mongo directory ready")

		closeFn := func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Disconnect(disconnectCtx); err != nil {
				log.Error().Err(err).Msg("mongo disconnect")
			}
		}
		return known, map[string]handler.Pinger{"mongo": known}, closeFn, nil

	default:
		known := memory.NewKnownUsers(cfg.KnownUserIDs)
		log.Info().Int("ids", known.Len()).Msg("in-memory directory ready")
		return known, nil, func() {}, nil
	}
}

// waitForShutdown blocks until SIGINT/SIGTERM and drains in-flight requests.
func waitForShutdown(srv *http.Server, timeout time.Duration, log zerolog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}
}
