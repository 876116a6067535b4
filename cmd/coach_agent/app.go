package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/jonathan/career-coach/internal/config"
	"github.com/jonathan/career-coach/internal/embedding"
	"github.com/jonathan/career-coach/internal/llm"
	"github.com/jonathan/career-coach/internal/logger"
	"github.com/jonathan/career-coach/internal/types"
)

// app bundles the configured clients shared by every command. Clients are
// constructed once here and injected; nothing reads ambient globals.
type app struct {
	cfg      *config.Config
	log      *zap.Logger
	llm      llm.Client
	embedder embedding.Client
}

// newApp loads configuration (file if given, environment otherwise) and
// constructs the generation and embedding clients.
func newApp(ctx context.Context, configPath string) (*app, error) {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
	} else {
		cfg = config.FromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	llmClient, err := llm.NewClient(ctx, cfg.LLMConfig(), cfg.APIKey)
	if err != nil {
		return nil, err
	}

	embedder, err := embedding.NewGeminiEmbedder(ctx, cfg.APIKey, cfg.EmbeddingModel)
	if err != nil {
		_ = llmClient.Close()
		return nil, err
	}

	return &app{cfg: cfg, log: log, llm: llmClient, embedder: embedder}, nil
}

func (a *app) close() {
	_ = a.llm.Close()
	_ = a.embedder.Close()
	_ = a.log.Sync()
}

// loadCareerProfile reads and validates a CareerProfile JSON file.
func loadCareerProfile(path string) (*types.CareerProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}

	var profile types.CareerProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	profile.Normalize()
	return &profile, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
