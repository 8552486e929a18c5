package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"critiquelab/internal/config"
	"critiquelab/internal/db"
	apihttp "critiquelab/internal/http"
	"critiquelab/internal/kv"
	"critiquelab/internal/llm"
	"critiquelab/internal/metrics"
	"critiquelab/internal/repository"
	"critiquelab/internal/service"
	"critiquelab/internal/store"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Almacen clave-valor y rate limiter: Redis si esta configurado,
	// archivo local y ventana en memoria como alternativa.
	var (
		kvStore kv.Store
		limiter service.RateLimiter
	)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			kvStore = kv.NewRedisStore(redisClient)
			limiter = service.NewRedisRateLimiter(redisClient, time.Minute, cfg.RateLimitPerMinute)
		}
		cancel()
	}
	if kvStore == nil {
		kvStore = kv.NewFileStore(cfg.StorePath)
	}
	if limiter == nil {
		limiter = service.NewMemoryRateLimiter(time.Minute, cfg.RateLimitPerMinute)
	}

	scores := store.NewScoreStore(kvStore, logger)
	critiques := store.NewCritiqueStore(kvStore, logger)

	llmClient := llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, zap.NewStdLog(logger))
	critiqueSvc := service.NewCritiqueService(llmClient, critiques, logger)
	scoreSvc := service.NewScoreService(llmClient, scores, logger)
	coachSvc := service.NewCoachService(llmClient, logger)
	autopsySvc := service.NewAutopsyService(llmClient, logger)

	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured")
	}
	authSvc := service.NewDeviceAuthService(cfg.JWTSecret, time.Duration(cfg.DeviceTokenTTLDays)*24*time.Hour)

	m := metrics.New()

	var leaderboardHandler *apihttp.LeaderboardHandler
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()
		if err := db.EnsureSchema(ctx, pool); err != nil {
			logger.Fatal("db schema", zap.Error(err))
		}
		leaderboardRepo := repository.NewPgLeaderboardRepository(pool)
		leaderboardHandler = apihttp.NewLeaderboardHandler(logger, leaderboardRepo)
	} else {
		logger.Warn("database not configured, leaderboard disabled")
	}

	critiqueHandler := apihttp.NewCritiqueHandler(logger, m, critiqueSvc, coachSvc, autopsySvc, critiques)
	scoreHandler := apihttp.NewScoreHandler(logger, m, scoreSvc, scores)
	progressHandler := apihttp.NewProgressHandler(logger, scores)
	authHandler := apihttp.NewAuthHandler(logger, authSvc)

	router := apihttp.NewRouter(logger, m, limiter, authSvc, critiqueHandler, scoreHandler, progressHandler, leaderboardHandler, authHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
