package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/coldsight-ai/coldsight-engine/pkg/config"
	"github.com/coldsight-ai/coldsight-engine/pkg/glossary"
	"github.com/coldsight-ai/coldsight-engine/pkg/handlers"
	"github.com/coldsight-ai/coldsight-engine/pkg/llm"
	"github.com/coldsight-ai/coldsight-engine/pkg/middleware"
	"github.com/coldsight-ai/coldsight-engine/pkg/services"
	"github.com/coldsight-ai/coldsight-engine/pkg/warehouse"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	// Load configuration
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := buildLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("configuration loaded",
		zap.String("env", cfg.Env),
		zap.String("version", cfg.Version),
		zap.String("llm_provider", cfg.LLM.Provider),
		zap.String("llm_model", cfg.LLM.Model),
		zap.String("warehouse_driver", cfg.Warehouse.Driver))

	store, err := glossary.Load()
	if err != nil {
		log.Fatalf("Failed to load glossary: %v", err)
	}

	// A missing LLM client is survivable: the router falls back to keyword
	// classification and the agents report errors per request.
	llmClient, err := llm.NewClient(&llm.ProviderConfig{
		Provider: cfg.LLM.Provider,
		Endpoint: cfg.LLM.Endpoint,
		Model:    cfg.LLM.Model,
		APIKey:   cfg.LLM.APIKey,
	}, logger)
	if err != nil {
		logger.Warn("LLM client unavailable, running degraded", zap.Error(err))
		llmClient = nil
	}

	// Same for the warehouse: SQL execution reports a fixed error, the
	// retrieval and general paths keep working.
	ctx := context.Background()
	executor, err := warehouse.NewExecutor(ctx, &cfg.Warehouse, logger)
	if err != nil {
		logger.Warn("warehouse unavailable, SQL execution disabled", zap.Error(err))
		executor = nil
	} else {
		defer func() { _ = executor.Close() }()
	}

	orchestrator := buildOrchestrator(cfg, llmClient, executor, store, logger)

	mux := http.NewServeMux()

	healthHandler := handlers.NewHealthHandler(cfg, logger)
	healthHandler.RegisterRoutes(mux)

	chatHandler := handlers.NewChatHandler(orchestrator, logger)
	chatHandler.RegisterRoutes(mux)

	handler := middleware.RequestLogger(logger)(mux)
	handler = cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(handler)

	addr := fmt.Sprintf("%s:%s", cfg.BindAddr, cfg.Port)
	logger.Info("starting coldsight-engine",
		zap.String("addr", addr),
		zap.String("version", cfg.Version))
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

// buildOrchestrator wires the router and the three agents from config.
func buildOrchestrator(
	cfg *config.Config,
	llmClient llm.Client,
	executor warehouse.Executor,
	store *glossary.Store,
	logger *zap.Logger,
) services.Orchestrator {
	qualifier := cfg.Warehouse.ProjectID + "." + cfg.Warehouse.Dataset

	router := services.NewRouter(llmClient, cfg.LLM.RouterTemperature, logger)
	synthesizer := services.NewResultSynthesizer(llmClient, cfg.LLM.SynthesisTemperature, logger)
	sqlAgent := services.NewSQLAgent(llmClient, executor, synthesizer, store, qualifier,
		cfg.LLM.SQLTemperature, cfg.History.SQLWindow, logger)
	retrievalAgent := services.NewRetrievalAgent(llmClient, store, cfg.LLM.SynthesisTemperature, logger)
	generalAgent := services.NewGeneralAgent(llmClient, cfg.LLM.GeneralTemperature, cfg.History.GeneralWindow, logger)

	return services.NewOrchestrator(router, sqlAgent, retrievalAgent, generalAgent, logger)
}

func buildLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
