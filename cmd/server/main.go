package main

import (
	"context"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/serverest/usuarios-api/docs" // swagger docs

	"github.com/serverest/usuarios-api/internal/api"
	"github.com/serverest/usuarios-api/internal/core/ports"
	"github.com/serverest/usuarios-api/internal/core/service"
	"github.com/serverest/usuarios-api/internal/infrastructure/db/memory"
	mongodb "github.com/serverest/usuarios-api/internal/infrastructure/db/mongo"
	redisdb "github.com/serverest/usuarios-api/internal/infrastructure/db/redis"
	"github.com/serverest/usuarios-api/internal/pkg/config"
	"github.com/serverest/usuarios-api/pkg/logger"
)

// @title        API de Usuários
// @version      1.0
// @description  Cadastro, listagem e autenticação de usuários.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
		File:   cfg.LogFile,
	})

	ctx := context.Background()

	var (
		directory ports.UserDirectory
		tokens    ports.TokenStore
		mongoDB   *mongo.Database
		redisCli  *redis.Client
	)

	switch cfg.Store {
	case "memory":
		directory = memory.NewUserDirectory()
		tokens = memory.NewTokenStore()
		log.Warn().Msg("using in-memory store, data will not survive restarts")
	default:
		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		defer func() { _ = client.Disconnect(ctx) }()

		userDir := mongodb.NewUserDirectory(db)
		if err := userDir.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("index creation failed")
		}

		rdb, err := redisdb.Connect(ctx, redisdb.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer func() { _ = rdb.Close() }()

		directory = userDir
		tokens = redisdb.NewTokenStore(rdb)
		mongoDB = db
		redisCli = rdb
	}

	userService := service.NewUserService(directory, log)
	authService := service.NewAuthService(directory, tokens, cfg.JWTSecret, cfg.TokenTTL, log)

	e := api.NewRouter(api.Dependencies{
		Users: userService,
		Auth:  authService,
		Mongo: mongoDB,
		Redis: redisCli,
		Log:   log,
	})

	log.Info().Str("port", cfg.Port).Str("store", cfg.Store).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
