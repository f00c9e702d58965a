package main

import (
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/askdb-io/askdb/pkg/config"
	"github.com/askdb-io/askdb/pkg/database"
	"github.com/askdb-io/askdb/pkg/handlers"
	"github.com/askdb-io/askdb/pkg/llm"
	"github.com/askdb-io/askdb/pkg/middleware"
	"github.com/askdb-io/askdb/pkg/observability"
	"github.com/askdb-io/askdb/pkg/services"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	cfg, err := config.Load("config.yaml", Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Configuration loaded",
		zap.String("env", cfg.Env),
		zap.String("db_path", cfg.Database.Path),
		zap.String("llm_provider", cfg.LLM.Provider),
		zap.String("llm_model", cfg.LLM.Model))

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(db, cfg.Database.MigrationsPath, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	chatClient, err := llm.NewChatClient(&llm.Config{
		Provider: cfg.LLM.Provider,
		Endpoint: cfg.LLM.BaseURL,
		Model:    cfg.LLM.Model,
		APIKey:   cfg.LLM.APIKey,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to create LLM client", zap.Error(err))
	}

	validator := services.NewQueryValidator(chatClient, logger)
	translator := services.NewSQLTranslator(chatClient, logger)
	executor := services.NewQueryExecutor(db, logger)

	mux := http.NewServeMux()
	handlers.NewHealthHandler(cfg, logger).RegisterRoutes(mux)
	handlers.NewQueryHandler(validator, translator, executor, logger).RegisterRoutes(mux)
	mux.Handle("GET /metrics", promhttp.Handler())
	handlers.RegisterNotFound(mux, logger)

	handler := middleware.RequestLogger(logger)(observability.MetricsMiddleware(mux))

	addr := cfg.BindAddr + ":" + cfg.Port
	logger.Info("Starting askdb",
		zap.String("addr", addr),
		zap.String("version", cfg.Version))
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "local" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
