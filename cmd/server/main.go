package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"cognovoid/internal/cache"
	"cognovoid/internal/config"
	"cognovoid/internal/predictor"
	"cognovoid/internal/scoring"
	"cognovoid/internal/service"
	"cognovoid/internal/transport/rest"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// Load chat config and log provider settings
	groqConfig := config.DefaultGroqConfig()
	log.Printf("Chat Config:")
	log.Printf("  Model:     %s", groqConfig.Model)
	if groqConfig.IsEnabled() {
		log.Println("  API Key:   configured ✓")
	} else {
		log.Println("  API Key:   NOT SET (chat endpoint will report a configuration error)")
	}

	// Model artifact - load failure is fatal, the scoring path is useless without it
	artifact, err := predictor.LoadArtifact(cfg.ModelPath)
	if err != nil {
		log.Fatal("Failed to load model artifact: ", err)
	}
	adapter := predictor.NewAdapter(predictor.NewModel(artifact))
	log.Printf("Loaded %s model with %d feature columns from %s", artifact.Kind, len(artifact.FeatureColumns), cfg.ModelPath)

	// Redis connection (optional - without it scores are recomputed per request)
	var reportCache cache.ReportCache
	if cfg.RedisURI != "" {
		redisAddr := strings.TrimPrefix(cfg.RedisURI, "redis://")
		rdb := redis.NewClient(&redis.Options{
			Addr: redisAddr,
		})
		defer rdb.Close()

		if _, err := rdb.Ping(ctx).Result(); err != nil {
			log.Fatal("Failed to ping Redis: ", err)
		}
		log.Println("Connected to Redis")
		reportCache = cache.NewReportCache(rdb)
	} else {
		log.Println("REDIS_URI not set, running without report cache")
	}

	policy := scoring.ParsePolicy(cfg.RiskPolicy)
	log.Printf("Risk policy: %s", policy)

	// Initialize services
	scoreSvc := service.NewScoreService(adapter, reportCache, policy)
	chatSvc := service.NewChatService(groqConfig)

	// Create router with container
	container := &rest.Container{
		ScoreService: scoreSvc,
		ChatService:  chatSvc,
	}
	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/predict")
		log.Println("  POST /v1/chat")
		log.Println("  GET  /health")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
