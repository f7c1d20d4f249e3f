package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 10, cfg.Analyzer.WindowSize)
	assert.Equal(t, 0.20, cfg.Adaptation.PacingStep)
	assert.Equal(t, 0.70, cfg.Builder.MinPracticeRatio)
	assert.Equal(t, 10*time.Second, cfg.Content.Timeout)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pathwise.yaml")
	data := []byte("analyzer:\n  window_size: 20\nadaptation:\n  pacing_step: 0.5\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Analyzer.WindowSize)
	assert.Equal(t, 0.5, cfg.Adaptation.PacingStep)
	// Untouched keys keep their defaults.
	assert.Equal(t, 0.60, cfg.Analyzer.LowRate)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pathwise.yaml")
	require.NoError(t, os.WriteFile(path, []byte("analyzer:\n  window_size: 20\n"), 0o644))
	t.Setenv("PATHWISE_WINDOW_SIZE", "15")
	t.Setenv("PATHWISE_CONTENT_TIMEOUT", "5s")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 15, cfg.Analyzer.WindowSize)
	assert.Equal(t, 5*time.Second, cfg.Content.Timeout)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestConversions(t *testing.T) {
	cfg := Default()

	assert.Equal(t, cfg.Analyzer.WindowSize, cfg.AnalyzerConfig().WindowSize)
	assert.Equal(t, cfg.Builder.MaxDifficultyJump, cfg.BuilderConfig().Invariants.MaxDifficultyJump)
	assert.Equal(t, cfg.Content.FailureThreshold, cfg.ResilientConfig().FailureThreshold)
}
