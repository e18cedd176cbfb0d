package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goorum04/Nlvip-sub000/internal/adapters/ai"
	"github.com/goorum04/Nlvip-sub000/internal/adapters/config"
	"github.com/goorum04/Nlvip-sub000/internal/adapters/errors/noop"
	"github.com/goorum04/Nlvip-sub000/internal/adapters/errors/sentry"
	"github.com/goorum04/Nlvip-sub000/internal/adapters/kafka"
	"github.com/goorum04/Nlvip-sub000/internal/adapters/postgres"
	"github.com/goorum04/Nlvip-sub000/internal/adapters/redis"
	"github.com/goorum04/Nlvip-sub000/internal/api"
	"github.com/goorum04/Nlvip-sub000/internal/api/assistantapi"
	"github.com/goorum04/Nlvip-sub000/internal/api/health"
	"github.com/goorum04/Nlvip-sub000/internal/assistant"
	"github.com/goorum04/Nlvip-sub000/internal/events"
	"github.com/goorum04/Nlvip-sub000/internal/metrics"
	repository "github.com/goorum04/Nlvip-sub000/internal/repository/postgres"
	"github.com/goorum04/Nlvip-sub000/internal/tools"
	"github.com/goorum04/Nlvip-sub000/internal/tools/gym"
	"github.com/goorum04/Nlvip-sub000/pkg/errors"
	"github.com/goorum04/Nlvip-sub000/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize logger
	if err := logger.Init(cfg.App.LogLevel, cfg.App.Env); err != nil {
		panic("failed to init logger: " + err.Error())
	}
	defer logger.Sync()

	log := logger.Get()
	log.Infof("Starting %s in %s mode", cfg.App.Name, cfg.App.Env)

	// Initialize error tracker
	errorTracker := initErrorTracker(cfg, log)
	logger.SetErrorTracker(errorTracker)

	metrics.Init()

	// Databases
	pgClient, err := postgres.NewClient(cfg.Postgres)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer pgClient.Close()

	redisClient, err := redis.NewClient(cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Tool registry backed by the gym repositories
	registry := tools.NewRegistry()
	err = gym.RegisterAll(registry, gym.Deps{
		Members:   repository.NewMemberRepository(pgClient.DB()),
		Trainers:  repository.NewTrainerRepository(pgClient.DB()),
		Feed:      repository.NewFeedRepository(pgClient.DB()),
		Notices:   repository.NewNoticeRepository(pgClient.DB()),
		Dashboard: repository.NewDashboardRepository(pgClient.DB()),
		Diets:     repository.NewDietRepository(pgClient.DB()),
	})
	if err != nil {
		log.Fatalf("Failed to register tools: %v", err)
	}
	log.Infof("Registered %d assistant tools", registry.Len())

	// Model provider
	provider, err := ai.NewOpenAIProvider(ai.OpenAIConfig{
		APIKey:       cfg.AI.OpenAIKey,
		BaseURL:      cfg.AI.BaseURL,
		Timeout:      cfg.AI.Timeout,
		ReqPerMinute: cfg.AI.ReqPerMinute,
		Burst:        cfg.AI.Burst,
	})
	if err != nil {
		log.Fatalf("Failed to create model provider: %v", err)
	}

	// Plan tokens
	var tokenStore assistant.TokenStore = assistant.NewRedisTokenStore(redisClient, cfg.Assistant.PlanTokenTTL)
	if !cfg.Assistant.RequirePlanToken {
		log.Warn("Plan token verification disabled")
		tokenStore = assistant.NewNoopTokenStore()
	}

	// Audit trail
	var audit assistant.AuditRecorder
	var producer *kafka.Producer
	if cfg.Kafka.Enabled {
		producer = kafka.NewProducer(kafka.ProducerConfig{Brokers: cfg.Kafka.Brokers})
		defer producer.Close()
		audit = events.NewAuditPublisher(producer, log)
	}

	// Orchestrator
	invoker := assistant.NewInvoker(registry, log)
	controller := assistant.NewController(
		provider,
		registry,
		assistant.NewAutoExecutor(invoker),
		tokenStore,
		assistant.ControllerConfig{
			Model:       cfg.AI.Model,
			Temperature: cfg.AI.Temperature,
			MaxTokens:   cfg.AI.MaxTokens,
		},
		log,
	)
	confirmer := assistant.NewConfirmationExecutor(invoker, tokenStore, audit, log)

	// HTTP server
	healthHandler := health.New(log, pgClient.DB(), redisClient.Client(), cfg.App.Name, cfg.App.Version)
	assistantHandler := assistantapi.NewHandler(controller, confirmer, log)
	server := api.NewServer(api.ServerConfig{
		Port:        cfg.HTTP.Port,
		ServiceName: cfg.App.Name,
		Version:     cfg.App.Version,
	}, healthHandler, assistantHandler, log)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	log.Info("System initialized successfully")

	waitForShutdown(server, errorTracker, log)
}

// initErrorTracker initializes error tracking (Sentry or no-op)
func initErrorTracker(cfg *config.Config, log *logger.Logger) errors.Tracker {
	if !cfg.ErrorTracking.Enabled || cfg.ErrorTracking.SentryDSN == "" {
		log.Info("Error tracking disabled")
		return noop.New()
	}

	tracker, err := sentry.New(cfg.ErrorTracking.SentryDSN, cfg.ErrorTracking.Environment)
	if err != nil {
		log.Warnf("Failed to initialize Sentry: %v", err)
		return noop.New()
	}

	log.Info("Error tracking initialized (Sentry)")
	return tracker
}

// waitForShutdown waits for shutdown signal and performs graceful shutdown
func waitForShutdown(server *api.Server, errorTracker errors.Tracker, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Shutdown error: %v", err)
	}

	if err := errorTracker.Flush(shutdownCtx); err != nil {
		log.Warnf("Error tracker flush failed: %v", err)
	}
	log.Info("Shutdown complete")
}
