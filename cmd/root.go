package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pathwise/pathwise/internal/adapt"
	"github.com/pathwise/pathwise/internal/builder"
	"github.com/pathwise/pathwise/internal/config"
	"github.com/pathwise/pathwise/internal/content"
	"github.com/pathwise/pathwise/internal/engine"
	"github.com/pathwise/pathwise/internal/llm"
	"github.com/pathwise/pathwise/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "pathwise",
	Short: "Adaptive curriculum planner",
	Long:  "Pathwise plans personalized learning curricula and adapts them as task outcomes come in.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PATHWISE_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (overrides PATHWISE_CONFIG env var)")
	rootCmd.PersistentFlags().String("learner", "local", "Learner identifier")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(reviewsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PATHWISE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the database behind the current flags.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// openService wires the full planning stack: config, store, provider,
// content source with timeout and breaker, builder, adaptation engine.
func openService(cmd *cobra.Command) (*engine.Service, *store.Store, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, err
	}

	s, err := openStore(cmd)
	if err != nil {
		return nil, nil, err
	}

	llmCfg := cfg.LLM
	if llmCfg.Provider != "mock" {
		if discovered, ok := llm.DiscoverConfig(); ok && apiKeyMissing(llmCfg) {
			llmCfg = discovered
		}
	}
	provider, err := llm.NewProvider(context.Background(), llmCfg, s.EventRepo())
	if err != nil {
		s.Close()
		return nil, nil, fmt.Errorf("initialize provider: %w", err)
	}

	src := content.NewResilientSource(
		content.NewLLMSource(provider, content.DefaultConfig()),
		cfg.ResilientConfig(),
	)
	b := builder.New(src, cfg.BuilderConfig())
	svc := engine.NewService(b, adapt.NewEngine(cfg.AdaptConfig()), cfg.AnalyzerConfig(), s)
	return svc, s, nil
}

func apiKeyMissing(cfg llm.Config) bool {
	switch cfg.Provider {
	case "anthropic":
		return cfg.Anthropic.APIKey == ""
	case "openai":
		return cfg.OpenAI.APIKey == ""
	case "gemini":
		return cfg.Gemini.APIKey == ""
	}
	return false
}

func learnerID(cmd *cobra.Command) string {
	id, _ := cmd.Flags().GetString("learner")
	return id
}
