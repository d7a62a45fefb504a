// plcforge server — plans control logic into stages, generates Mitsubishi
// FX5U Structured Text through staged model calls, and serves the version
// ledger and label exports over HTTP.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/nexus-controls/plcforge/pkg/api"
	"github.com/nexus-controls/plcforge/pkg/codegen"
	"github.com/nexus-controls/plcforge/pkg/config"
	"github.com/nexus-controls/plcforge/pkg/database"
	"github.com/nexus-controls/plcforge/pkg/embedding"
	"github.com/nexus-controls/plcforge/pkg/extract"
	"github.com/nexus-controls/plcforge/pkg/llm"
	"github.com/nexus-controls/plcforge/pkg/planner"
	"github.com/nexus-controls/plcforge/pkg/prompts"
	"github.com/nexus-controls/plcforge/pkg/repository"
	"github.com/nexus-controls/plcforge/pkg/retrieval"
	"github.com/nexus-controls/plcforge/pkg/safety"
	"github.com/nexus-controls/plcforge/pkg/services"
	"github.com/nexus-controls/plcforge/pkg/validation"
	"github.com/nexus-controls/plcforge/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./config"),
		"Path to configuration directory")
	ingestManuals := flag.Bool("ingest-manuals",
		false,
		"Build the manual retrieval corpora from the configured manuals directory and exit")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	slog.Info("Starting plcforge", "version", version.Full(), "config_dir", *configDir)

	ctx := context.Background()

	cfg, err := config.Initialize(*configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	if *ingestManuals {
		embedder, err := embedding.NewGenAIEngine(ctx, cfg.Embedding.APIKey, cfg.Embedding.Model)
		if err != nil {
			slog.Error("Failed to initialize embedding engine", "error", err)
			os.Exit(1)
		}
		ingestor := retrieval.NewDirIngestor(
			retrieval.NewStore(cfg.Paths.Embeddings, embedder), extract.NewDocuments())
		built, err := ingestor.IngestManuals(ctx, cfg.Paths.Manuals)
		if err != nil {
			slog.Error("Manual ingestion failed", "error", err)
			os.Exit(1)
		}
		for _, meta := range built {
			slog.Info("Corpus ready",
				"corpus", meta.Corpus, "chunks", meta.TotalChunks, "words", meta.WordCount,
				"sources", len(meta.Sources))
		}
		return
	}

	// Persistence: Postgres when configured, in-memory otherwise.
	var store *repository.Store
	var health api.HealthFunc
	if cfg.Database.Host != "" {
		dbClient, err := database.NewClient(ctx, cfg.Database)
		if err != nil {
			slog.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := dbClient.Close(); err != nil {
				slog.Error("Error closing database client", "error", err)
			}
		}()
		store = repository.NewEntStore(dbClient.Client)
		health = func(ctx context.Context) (any, error) {
			return database.Health(ctx, dbClient.DB())
		}
		slog.Info("Connected to PostgreSQL database")
	} else {
		store = repository.NewMemoryStore()
		slog.Warn("No database configured, running on in-memory repositories")
	}

	// Two model clients: conversational agents and codegen run on separate
	// API quotas.
	plannerLLM := llm.NewGeminiClient(cfg.LLM.BaseURL, cfg.LLM.APIKey, cfg.LLM.Model)
	codegenKey := cfg.LLM.CodegenAPIKey
	if codegenKey == "" {
		codegenKey = cfg.LLM.APIKey
	}
	codegenLLM := llm.NewGeminiClient(cfg.LLM.BaseURL, codegenKey, cfg.LLM.Model)

	embedder, err := embedding.NewGenAIEngine(ctx, cfg.Embedding.APIKey, cfg.Embedding.Model)
	if err != nil {
		slog.Error("Failed to initialize embedding engine", "error", err)
		os.Exit(1)
	}

	retrievalStore := retrieval.NewStore(cfg.Paths.Embeddings, embedder)
	if !retrievalStore.Ready(retrieval.CorpusPrimaryManuals) {
		slog.Warn("Primary manual corpus not built; run with -ingest-manuals to build it",
			"embeddings_dir", cfg.Paths.Embeddings, "manuals_dir", cfg.Paths.Manuals)
	}

	catalog := prompts.NewCatalog(cfg.Paths.Prompts)

	limits := planner.Limits{MinWords: cfg.Planner.MinWords, MaxWords: cfg.Planner.MaxWords}
	stagePlanner := planner.New(plannerLLM, retrievalStore, catalog, limits)
	validator := validation.NewValidator(codegenLLM, retrievalStore)
	generator := codegen.NewGenerator(codegenLLM, retrievalStore, catalog)
	interrogator := safety.NewInterrogator(codegenLLM, retrievalStore)
	manualProcessor := safety.NewManualProcessor(retrievalStore)

	svc := services.New(services.Deps{
		Store:        store,
		Planner:      stagePlanner,
		Checker:      validator,
		Generator:    generator,
		Interrogator: interrogator,
		Manuals:      manualProcessor,
		UploadsDir:   cfg.Paths.Uploads,
	})
	slog.Info("Services initialized")

	server := api.NewServer(cfg.Server, svc, catalog, health)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("Shutdown signal received", "signal", sig.String())
	case err := <-errCh:
		if err != nil {
			slog.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := server.Shutdown(context.Background()); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}
