package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/coldsight-ai/coldsight-engine/pkg/config"
	"github.com/coldsight-ai/coldsight-engine/pkg/glossary"
	"github.com/coldsight-ai/coldsight-engine/pkg/llm"
	"github.com/coldsight-ai/coldsight-engine/pkg/services"
	"github.com/coldsight-ai/coldsight-engine/pkg/warehouse"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "coldsight-cli",
		Short:         "Ask cold-chain logistics questions from the terminal",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	ask := &cobra.Command{
		Use:   "ask <question>",
		Short: "Route a single question through the engine and print the answer",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(cmd.Context(), strings.Join(args, " "), verbose)
		},
	}
	root.AddCommand(ask)

	return root
}

func runAsk(ctx context.Context, question string, verbose bool) error {
	cfg, err := config.LoadFromEnv(Version)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := zap.NewNop()
	if verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()
	}

	store, err := glossary.Load()
	if err != nil {
		return fmt.Errorf("load glossary: %w", err)
	}

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

	executor, err := warehouse.NewExecutor(ctx, &cfg.Warehouse, logger)
	if err != nil {
		logger.Warn("warehouse unavailable, SQL execution disabled", zap.Error(err))
		executor = nil
	} else {
		defer func() { _ = executor.Close() }()
	}

	qualifier := cfg.Warehouse.ProjectID + "." + cfg.Warehouse.Dataset
	router := services.NewRouter(llmClient, cfg.LLM.RouterTemperature, logger)
	synthesizer := services.NewResultSynthesizer(llmClient, cfg.LLM.SynthesisTemperature, logger)
	sqlAgent := services.NewSQLAgent(llmClient, executor, synthesizer, store, qualifier,
		cfg.LLM.SQLTemperature, cfg.History.SQLWindow, logger)
	retrievalAgent := services.NewRetrievalAgent(llmClient, store, cfg.LLM.SynthesisTemperature, logger)
	generalAgent := services.NewGeneralAgent(llmClient, cfg.LLM.GeneralTemperature, cfg.History.GeneralWindow, logger)
	orchestrator := services.NewOrchestrator(router, sqlAgent, retrievalAgent, generalAgent, logger)

	response := orchestrator.Run(ctx, question, nil)

	fmt.Println(response.Text)
	if response.GeneratedQuery != "" {
		fmt.Printf("\n-- SQL --\n%s\n", response.GeneratedQuery)
	}
	if !response.TabularData.Empty() {
		fmt.Printf("\n-- Rows (%d) --\n%s\n", len(response.TabularData.Rows), warehouse.RenderText(response.TabularData))
	}
	if len(response.Sources) > 0 {
		fmt.Printf("\nSources: %s\n", strings.Join(response.Sources, ", "))
	}

	return nil
}
