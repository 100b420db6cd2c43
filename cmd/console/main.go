package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/quillhaven/moderation-backend/internal/action"
	"github.com/quillhaven/moderation-backend/internal/auth"
	"github.com/quillhaven/moderation-backend/internal/cache"
	"github.com/quillhaven/moderation-backend/internal/config"
	"github.com/quillhaven/moderation-backend/internal/handler"
	"github.com/quillhaven/moderation-backend/internal/loader"
	"github.com/quillhaven/moderation-backend/internal/middleware"
	"github.com/quillhaven/moderation-backend/internal/routes"
	"github.com/quillhaven/moderation-backend/internal/stats"
	"github.com/quillhaven/moderation-backend/internal/store/gormstore"
	"github.com/quillhaven/moderation-backend/pkg/logger"
	pkgredis "github.com/quillhaven/moderation-backend/pkg/redis"
)

// getConfigPath returns config file path based on APP_ENV environment variable
func getConfigPath() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func main() {
	dotenvFiles := config.LoadDotEnv()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	logger.Init(env)
	logger.Get().Info().Str("env", env).Strs("dotenv", dotenvFiles).Msg("starting moderation console")

	cfg, err := config.Load(getConfigPath())
	if err != nil {
		logger.Get().Fatal().Err(err).Msg("config load failed")
	}

	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		logger.Get().Fatal().Err(err).Msg("database connection failed")
	}

	redisClient, err := pkgredis.NewClient(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.Get().Fatal().Err(err).Msg("redis connection failed")
	}

	remote := gormstore.New(db)
	snap := cache.New()
	loaders := loader.New(remote, snap)
	loaders.Subscribe(func(kind loader.Kind) {
		logger.Get().Debug().Str("collection", string(kind)).Msg("view refreshed")
	})

	dispatcher := action.NewDispatcher(remote, snap, loaders, action.NewRecordID, func() {
		overview := stats.Compute(snap)
		logger.Get().Debug().
			Int("posts", overview.Counts.Posts).
			Int("pending_submissions", overview.Counts.PendingSubs).
			Msg("stats recomputed")
	})

	gate := auth.NewService(remote, auth.NewRedisSessions(redisClient), cfg.Auth.JWTSecret, cfg.Auth.SessionTTL())

	// Warm the caches before serving; per-collection failures leave empty
	// views and the console starts anyway.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if failures := loaders.LoadAll(ctx); len(failures) > 0 {
		for kind, loadErr := range failures {
			logger.Get().Warn().Err(loadErr).Str("collection", string(kind)).Msg("initial load failed")
		}
	}
	cancel()

	if cfg.App.Env != "local" && cfg.App.Env != "dev" && cfg.App.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics())

	authHandler := handler.NewAuthHandler(gate)
	console := handler.NewConsoleHandler(snap, loaders, dispatcher)
	routes.Setup(r, gate, authHandler, console)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Get().Info().Str("addr", addr).Msg("listening")
	if err := r.Run(addr); err != nil {
		logger.Get().Fatal().Err(err).Msg("server stopped")
	}
}
