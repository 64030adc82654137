package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"behavior-insights/internal/config"
	"behavior-insights/internal/db"
	apihttp "behavior-insights/internal/http"
	"behavior-insights/internal/repository"
	"behavior-insights/internal/service"

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

	var (
		assessmentRepo repository.AssessmentRepository      = repository.NewMemoryAssessmentRepository()
		snapshotRepo   repository.ProfileSnapshotRepository = repository.NewMemoryProfileSnapshotRepository()
	)
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()
		ctxPing, cancel := context.WithTimeout(ctx, 3*time.Second)
		err = db.Ping(ctxPing, pool)
		cancel()
		if err != nil {
			logger.Fatal("db ping", zap.Error(err))
		}
		if err := db.EnsureSchema(ctx, pool); err != nil {
			logger.Fatal("db schema", zap.Error(err))
		}
		assessmentRepo = repository.NewPgAssessmentRepository(pool)
		snapshotRepo = repository.NewPgProfileSnapshotRepository(pool)
	} else {
		logger.Warn("database url not configured, using in-memory repositories")
	}

	cacheTTL := time.Duration(cfg.CacheTTLMinutes) * time.Minute
	cache := service.NewMemoryAssessmentCache(cacheTTL)
	var limiter service.RateLimiter
	if cfg.WriteRateLimitPerMinute > 0 {
		limiter = service.NewMemoryRateLimiter(time.Minute, cfg.WriteRateLimitPerMinute)
	}
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
			cache = service.NewRedisAssessmentCache(redisClient, cacheTTL)
			if cfg.WriteRateLimitPerMinute > 0 {
				limiter = service.NewRedisRateLimiter(redisClient, time.Minute, cfg.WriteRateLimitPerMinute)
			}
		}
		cancel()
	}

	var jwtSvc *service.JWTService
	if cfg.JWTSecret != "" {
		jwtSvc = service.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, 0)
	} else {
		logger.Warn("jwt secret not configured, api is unauthenticated")
	}

	recorder := service.NewAssessmentRecorder(service.NewAssessmentService(), assessmentRepo, snapshotRepo, cache, logger)
	behaviorHandler := apihttp.NewBehaviorHandler(logger, recorder, limiter)
	router := apihttp.NewRouter(logger, behaviorHandler, jwtSvc)

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
