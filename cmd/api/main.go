package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"practice-recommender/internal/catalog"
	"practice-recommender/internal/config"
	"practice-recommender/internal/db"
	"practice-recommender/internal/domain"
	apihttp "practice-recommender/internal/http"
	"practice-recommender/internal/llm"
	"practice-recommender/internal/repository"
	"practice-recommender/internal/service"
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

	engine, err := service.NewRecommendationEngine(cfg.Scoring)
	if err != nil {
		logger.Fatal("scoring policy", zap.Error(err))
	}

	var practiceRepo repository.PracticeRepository
	pool, err := db.NewPool(ctx, cfg)
	switch {
	case err == nil:
		defer pool.Close()
		if err := db.Ping(ctx, pool); err != nil {
			logger.Fatal("db ping", zap.Error(err))
		}
		practiceRepo = repository.NewPgPracticeRepository(pool)
		logger.Info("catalog source", zap.String("source", "postgres"))
	case errors.Is(err, db.ErrNotConfigured):
		c, err := loadStaticCatalog(cfg)
		if err != nil {
			logger.Fatal("load catalog", zap.Error(err))
		}
		practiceRepo = repository.NewStaticPracticeRepository(c)
		logger.Info("catalog source", zap.String("source", "static"), zap.Int("practices", c.Len()))
	default:
		logger.Fatal("db connect", zap.Error(err))
	}

	historyTTL := time.Duration(cfg.HistoryTTLHours) * time.Hour
	insightWindow := time.Duration(cfg.InsightRateWindowMinutes) * time.Minute
	history := service.NewMemoryHistoryStore(historyTTL, cfg.HistoryLimit)
	insightLimiter := service.NewMemoryRateLimiter(insightWindow, cfg.InsightRateLimit)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, using in-memory history", zap.Error(err))
		} else {
			history = service.NewRedisHistoryStore(redisClient, historyTTL, cfg.HistoryLimit)
			insightLimiter = service.NewRedisRateLimiter(redisClient, insightWindow, cfg.InsightRateLimit)
		}
		cancel()
	}

	var insights *service.InsightService
	if cfg.LLMAPIKey != "" {
		insights = service.NewInsightService(llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, logger), insightLimiter, logger)
	}

	var jwtSvc *service.JWTService
	if cfg.JWTSecret != "" {
		jwtSvc = service.NewJWTService(cfg.JWTSecret, 0)
	} else {
		logger.Warn("jwt secret not configured, /me routes disabled")
	}

	recommendationSvc := service.NewRecommendationService(logger, practiceRepo, history, insights, engine)
	practiceHandler := apihttp.NewPracticeHandler(logger, recommendationSvc)
	recommendationHandler := apihttp.NewRecommendationHandler(logger, recommendationSvc)
	router := apihttp.NewRouter(logger, practiceHandler, recommendationHandler, jwtSvc)

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

func loadStaticCatalog(cfg *config.Config) (*domain.Catalog, error) {
	if cfg.CatalogFile != "" {
		return catalog.LoadFile(cfg.CatalogFile)
	}
	return catalog.Default()
}
