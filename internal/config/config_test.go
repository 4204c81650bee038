package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "analyzer.yaml"), []byte(body), 0o644))
	return dir
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := Load(t.TempDir(), "does-not-exist")
	require.NoError(t, err)

	assert.Empty(t, cfg.SourceFile)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiClient.Model)
	assert.Zero(t, cfg.GeminiClient.Temperature)
	assert.False(t, cfg.GeminiClient.DeleteAfterAnalysis)
	assert.Equal(t, 2*time.Second, cfg.Polling.Interval)
	assert.Equal(t, uint(150), cfg.Polling.MaxAttempts)
	assert.Equal(t, "fixed", cfg.Polling.Backoff)
	assert.Equal(t, []string{"*.mp4"}, cfg.Batch.Patterns)
	assert.Equal(t, "analysis_results.csv", cfg.Batch.OutputFile)
	assert.Equal(t, 2*time.Second, cfg.Batch.ItemInterval)

	prompt, err := cfg.Prompts.VideoAnalysis.Current()
	require.NoError(t, err)
	assert.Equal(t, DefaultTaskPrompt, prompt)

	assert.NoError(t, cfg.Validate())
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := writeConfig(t, `
geminiClient:
  model: gemini-2.5-pro
  requestTimeout: 90s
polling:
  interval: 500ms
  maxAttempts: 10
  backoff: exponential
batch:
  inputDir: /videos
  format: xlsx
  patterns: ["*.mp4", "*.mov"]
prompts:
  videoAnalysis:
    currentVersion: Hooks-V2
    versions:
      hooks-v2: "Focus on the first three seconds."
`)
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("BATCH_OUTPUTDIR", "/tmp/out")

	cfg, err := Load(dir, "analyzer")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "analyzer.yaml"), cfg.SourceFile)
	assert.Equal(t, "secret", cfg.GeminiClient.APIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.GeminiClient.Model)
	assert.Equal(t, 90*time.Second, cfg.GeminiClient.RequestTimeout)
	assert.Equal(t, 500*time.Millisecond, cfg.Polling.Interval)
	assert.Equal(t, uint(10), cfg.Polling.MaxAttempts)
	assert.Equal(t, "/videos", cfg.Batch.InputDir)
	assert.Equal(t, "/tmp/out", cfg.Batch.OutputDir)
	assert.Equal(t, []string{"*.mp4", "*.mov"}, cfg.Batch.Patterns)

	prompt, err := cfg.Prompts.VideoAnalysis.Current()
	require.NoError(t, err)
	assert.Equal(t, "Focus on the first three seconds.", prompt)
	assert.NoError(t, cfg.Validate())
}

func TestLoadPrefersGoogleAPIKey(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "google")
	t.Setenv("GEMINI_API_KEY", "gemini")

	cfg, err := Load(t.TempDir(), "does-not-exist")
	require.NoError(t, err)
	assert.Equal(t, "google", cfg.GeminiClient.APIKey)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := writeConfig(t, "polling: [unterminated")
	_, err := Load(dir, "analyzer")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	tests := []struct {
		name   string
		mutate func(c *Config)
		key    string
	}{
		{"zero interval", func(c *Config) { c.Polling.Interval = 0 }, "polling.interval"},
		{"zero attempts", func(c *Config) { c.Polling.MaxAttempts = 0 }, "polling.maxAttempts"},
		{"unknown backoff", func(c *Config) { c.Polling.Backoff = "jitter" }, "polling.backoff"},
		{"unknown format", func(c *Config) { c.Batch.Format = "parquet" }, "batch.format"},
		{"no patterns", func(c *Config) { c.Batch.Patterns = nil }, "batch.patterns"},
		{"missing prompt version", func(c *Config) { c.Prompts.VideoAnalysis.CurrentVersion = "v9" }, "prompts.videoAnalysis.currentVersion"},
		{"blank model", func(c *Config) { c.GeminiClient.Model = " " }, "geminiClient.model"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(t.TempDir(), "does-not-exist")
			require.NoError(t, err)
			tt.mutate(cfg)

			err = cfg.Validate()
			var cfgErr *ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.key, cfgErr.Key)
		})
	}
}
