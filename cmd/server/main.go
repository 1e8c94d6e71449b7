package main

import (
	"context"
	"net/http"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	_ "github.com/jurisdesk/case-tracker/docs" // swagger docs

	"github.com/jurisdesk/case-tracker/internal/api"
	"github.com/jurisdesk/case-tracker/internal/core/ports"
	"github.com/jurisdesk/case-tracker/internal/core/service"
	"github.com/jurisdesk/case-tracker/internal/infrastructure/config"
	mongodb "github.com/jurisdesk/case-tracker/internal/infrastructure/db/mongo"
	redisdb "github.com/jurisdesk/case-tracker/internal/infrastructure/db/redis"
	"github.com/jurisdesk/case-tracker/pkg/logger"
)

// @title Case Tracker API
// @version 1.0
// @description Legal case and petition tracker with JWT authentication.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	bootLog := zerolog.New(os.Stderr).With().Timestamp().Logger()
	cfg := config.Load(bootLog)

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo init failed")
	}
	defer func() { _ = client.Disconnect(ctx) }()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}
	processRepo := mongodb.NewProcessRepository(db)
	petitionRepo := mongodb.NewPetitionRepository(db)

	// Redis is optional: without it login throttling is disabled.
	var throttle ports.LoginThrottle
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, login throttling disabled")
			rdb = nil
		} else {
			throttle = redisdb.NewLoginThrottle(rdb, cfg.LoginMaxAttempts)
			defer func() { _ = rdb.Close() }()
		}
	}

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokens, throttle, log)
	processService := service.NewProcessService(processRepo, log)
	petitionService := service.NewPetitionService(petitionRepo, log)

	e := api.NewRouter(db, rdb, api.Services{
		Auth:      authService,
		Processes: processService,
		Petitions: petitionService,
	})

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start failed")
	}
}
