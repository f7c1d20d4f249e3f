// Package config holds the tunable planning constants. Values resolve
// in three layers: compiled defaults, an optional YAML file, then
// PATHWISE_* environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pathwise/pathwise/internal/adapt"
	"github.com/pathwise/pathwise/internal/builder"
	"github.com/pathwise/pathwise/internal/content"
	"github.com/pathwise/pathwise/internal/curriculum"
	"github.com/pathwise/pathwise/internal/llm"
	"github.com/pathwise/pathwise/internal/performance"
)

// Config is the full tuning surface of the planning engine.
type Config struct {
	Analyzer   Analyzer   `yaml:"analyzer"`
	Adaptation Adaptation `yaml:"adaptation"`
	Builder    Builder    `yaml:"builder"`
	Content    Content    `yaml:"content"`
	LLM        llm.Config `yaml:"llm"`
}

// Analyzer tunes the rolling-stats thresholds.
type Analyzer struct {
	WindowSize    int     `yaml:"window_size"`
	FailureStreak int     `yaml:"failure_streak"`
	SuccessStreak int     `yaml:"success_streak"`
	LowRate       float64 `yaml:"low_rate"`
	HighRate      float64 `yaml:"high_rate"`
}

// Adaptation tunes the trigger responses.
type Adaptation struct {
	PacingStep     float64 `yaml:"pacing_step"`
	MiniProjectRun int     `yaml:"mini_project_run"`
	RecapMinutes   int     `yaml:"recap_minutes"`
	StretchMinutes int     `yaml:"stretch_minutes"`
}

// Builder tunes curriculum assembly.
type Builder struct {
	MaxDifficultyJump int     `yaml:"max_difficulty_jump"`
	MinPracticeRatio  float64 `yaml:"min_practice_ratio"`
	BudgetTolerance   float64 `yaml:"budget_tolerance"`
}

// Content tunes the content-source resilience wrapper.
type Content struct {
	Timeout          time.Duration `yaml:"timeout"`
	FailureThreshold int           `yaml:"failure_threshold"`
	Cooldown         time.Duration `yaml:"cooldown"`
}

// Default returns the compiled-in configuration.
func Default() Config {
	pc := performance.DefaultConfig()
	ac := adapt.DefaultConfig()
	bc := builder.DefaultConfig()
	rc := content.DefaultResilientConfig()
	return Config{
		Analyzer: Analyzer{
			WindowSize:    pc.WindowSize,
			FailureStreak: pc.FailureStreak,
			SuccessStreak: pc.SuccessStreak,
			LowRate:       pc.LowRate,
			HighRate:      pc.HighRate,
		},
		Adaptation: Adaptation{
			PacingStep:     ac.PacingStep,
			MiniProjectRun: ac.MiniProjectRun,
			RecapMinutes:   ac.RecapMinutes,
			StretchMinutes: ac.StretchMinutes,
		},
		Builder: Builder{
			MaxDifficultyJump: bc.Invariants.MaxDifficultyJump,
			MinPracticeRatio:  bc.Invariants.MinPracticeRatio,
			BudgetTolerance:   bc.BudgetTolerance,
		},
		Content: Content{
			Timeout:          rc.Timeout,
			FailureThreshold: rc.FailureThreshold,
			Cooldown:         rc.Cooldown,
		},
		LLM: llm.ConfigFromEnv(),
	}
}

// Load resolves configuration: defaults, then the YAML file at path (if
// it exists), then environment overrides. An empty path checks
// PATHWISE_CONFIG and falls back to defaults when unset.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("PATHWISE_CONFIG")
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

// applyEnv overlays PATHWISE_* variables on top of file/default values.
func applyEnv(cfg *Config) {
	setInt(&cfg.Analyzer.WindowSize, "PATHWISE_WINDOW_SIZE")
	setInt(&cfg.Analyzer.FailureStreak, "PATHWISE_FAILURE_STREAK")
	setInt(&cfg.Analyzer.SuccessStreak, "PATHWISE_SUCCESS_STREAK")
	setFloat(&cfg.Analyzer.LowRate, "PATHWISE_LOW_RATE")
	setFloat(&cfg.Analyzer.HighRate, "PATHWISE_HIGH_RATE")

	setFloat(&cfg.Adaptation.PacingStep, "PATHWISE_PACING_STEP")
	setInt(&cfg.Adaptation.MiniProjectRun, "PATHWISE_MINI_PROJECT_RUN")

	setInt(&cfg.Builder.MaxDifficultyJump, "PATHWISE_MAX_DIFFICULTY_JUMP")
	setFloat(&cfg.Builder.MinPracticeRatio, "PATHWISE_PRACTICE_RATIO")
	setFloat(&cfg.Builder.BudgetTolerance, "PATHWISE_BUDGET_TOLERANCE")

	setDuration(&cfg.Content.Timeout, "PATHWISE_CONTENT_TIMEOUT")
	setInt(&cfg.Content.FailureThreshold, "PATHWISE_BREAKER_THRESHOLD")
	setDuration(&cfg.Content.Cooldown, "PATHWISE_BREAKER_COOLDOWN")
}

// AnalyzerConfig converts to the analyzer's config type.
func (c Config) AnalyzerConfig() performance.Config {
	return performance.Config{
		WindowSize:    c.Analyzer.WindowSize,
		FailureStreak: c.Analyzer.FailureStreak,
		SuccessStreak: c.Analyzer.SuccessStreak,
		LowRate:       c.Analyzer.LowRate,
		HighRate:      c.Analyzer.HighRate,
	}
}

// AdaptConfig converts to the adaptation engine's config type.
func (c Config) AdaptConfig() adapt.Config {
	return adapt.Config{
		PacingStep:     c.Adaptation.PacingStep,
		MiniProjectRun: c.Adaptation.MiniProjectRun,
		RecapMinutes:   c.Adaptation.RecapMinutes,
		StretchMinutes: c.Adaptation.StretchMinutes,
	}
}

// BuilderConfig converts to the builder's config type.
func (c Config) BuilderConfig() builder.Config {
	bc := builder.DefaultConfig()
	bc.Invariants = curriculum.Invariants{
		MaxDifficultyJump: c.Builder.MaxDifficultyJump,
		MinPracticeRatio:  c.Builder.MinPracticeRatio,
	}
	bc.BudgetTolerance = c.Builder.BudgetTolerance
	return bc
}

// ResilientConfig converts to the content wrapper's config type.
func (c Config) ResilientConfig() content.ResilientConfig {
	rc := content.DefaultResilientConfig()
	rc.Timeout = c.Content.Timeout
	rc.FailureThreshold = c.Content.FailureThreshold
	rc.Cooldown = c.Content.Cooldown
	return rc
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setFloat(dst *float64, key string) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}
