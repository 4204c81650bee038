package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultTaskPrompt is the task instruction used when no prompt version is configured.
const DefaultTaskPrompt = "Analyze this mobile game ad. Focus on the narrative flow, how the audio matches the visuals, and the 'hook' in the first 3 seconds."

// VideoAnalysisPrompts holds versioned task instructions sent ahead of the field guide.
type VideoAnalysisPrompts struct {
	CurrentVersion string            `mapstructure:"currentVersion"`
	Versions       map[string]string `mapstructure:"versions"`
}

// Current returns the text of CurrentVersion. Viper lower-cases map keys, so
// the lookup is case-insensitive.
func (p VideoAnalysisPrompts) Current() (string, error) {
	version := strings.ToLower(strings.TrimSpace(p.CurrentVersion))
	for k, text := range p.Versions {
		if strings.ToLower(k) == version {
			if strings.TrimSpace(text) == "" {
				return "", &ConfigurationError{Key: "prompts.videoAnalysis.versions." + version, Reason: "prompt text is empty"}
			}
			return text, nil
		}
	}
	return "", &ConfigurationError{Key: "prompts.videoAnalysis.currentVersion", Reason: fmt.Sprintf("version %q not found", p.CurrentVersion)}
}

type PromptConfig struct {
	VideoAnalysis VideoAnalysisPrompts `mapstructure:"videoAnalysis"`
}

type SchedulerConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	BatchCronSpec string `mapstructure:"batchCronSpec"`
}

// GeminiClientConfig configures the model provider connection.
type GeminiClientConfig struct {
	APIKey              string        `mapstructure:"apiKey"`
	Model               string        `mapstructure:"model"`
	Temperature         float32       `mapstructure:"temperature"`
	RequestTimeout      time.Duration `mapstructure:"requestTimeout"`
	DeleteAfterAnalysis bool          `mapstructure:"deleteAfterAnalysis"`
}

// PollingConfig bounds the wait for a remote asset to finish processing.
type PollingConfig struct {
	Interval    time.Duration `mapstructure:"interval"`
	MaxAttempts uint          `mapstructure:"maxAttempts"`
	MaxInterval time.Duration `mapstructure:"maxInterval"`
	// Backoff is "fixed" or "exponential".
	Backoff  string        `mapstructure:"backoff"`
	Deadline time.Duration `mapstructure:"deadline"`
}

type BatchConfig struct {
	InputDir     string        `mapstructure:"inputDir"`
	OutputDir    string        `mapstructure:"outputDir"`
	OutputFile   string        `mapstructure:"outputFile"`
	Format       string        `mapstructure:"format"`
	Patterns     []string      `mapstructure:"patterns"`
	ItemInterval time.Duration `mapstructure:"itemInterval"`
}

type ServerConfig struct {
	Addr        string `mapstructure:"addr"`
	TempDir     string `mapstructure:"tempDir"`
	MaxUploadMB int64  `mapstructure:"maxUploadMB"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

type Config struct {
	AppName      string             `mapstructure:"appName"`
	GeminiClient GeminiClientConfig `mapstructure:"geminiClient"`
	Polling      PollingConfig      `mapstructure:"polling"`
	Batch        BatchConfig        `mapstructure:"batch"`
	Server       ServerConfig       `mapstructure:"server"`
	Prompts      PromptConfig       `mapstructure:"prompts"`
	Scheduler    SchedulerConfig    `mapstructure:"scheduler"`
	Log          LogConfig          `mapstructure:"log"`

	// SourceFile is the config file that was read, empty when running on
	// defaults and environment only.
	SourceFile string `mapstructure:"-"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("appName", "adcreative-analyzer")

	v.SetDefault("geminiClient.model", "gemini-2.5-flash")
	v.SetDefault("geminiClient.temperature", 0)
	v.SetDefault("geminiClient.requestTimeout", 5*time.Minute)
	v.SetDefault("geminiClient.deleteAfterAnalysis", false)

	v.SetDefault("polling.interval", 2*time.Second)
	v.SetDefault("polling.maxAttempts", 150)
	v.SetDefault("polling.maxInterval", 10*time.Second)
	v.SetDefault("polling.backoff", "fixed")
	v.SetDefault("polling.deadline", 10*time.Minute)

	v.SetDefault("batch.inputDir", "/app/data/inputs")
	v.SetDefault("batch.outputDir", "/app/data/outputs")
	v.SetDefault("batch.outputFile", "analysis_results.csv")
	v.SetDefault("batch.format", "csv")
	v.SetDefault("batch.patterns", []string{"*.mp4"})
	v.SetDefault("batch.itemInterval", 2*time.Second)

	v.SetDefault("server.addr", ":8000")
	v.SetDefault("server.tempDir", "")
	v.SetDefault("server.maxUploadMB", 512)

	v.SetDefault("prompts.videoAnalysis.currentVersion", "default-v1")
	v.SetDefault("prompts.videoAnalysis.versions.default-v1", DefaultTaskPrompt)

	v.SetDefault("scheduler.enabled", false)
	v.SetDefault("scheduler.batchCronSpec", "0 0 * * * *")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
}

// Load reads configPath/configName.yaml, overlays environment variables and
// fills defaults. A missing file is not an error.
func Load(configPath string, configName string) (*Config, error) {
	v := viper.New()
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath(".")
	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("geminiClient.apiKey", "GOOGLE_API_KEY", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("bind api key env: %w", err)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.SourceFile = v.ConfigFileUsed()
	return &cfg, nil
}

// Validate checks the settings every command depends on. The API key is
// checked by the client constructor so that offline commands still work
// without one.
func (c *Config) Validate() error {
	if c.Polling.Interval <= 0 {
		return &ConfigurationError{Key: "polling.interval", Reason: "must be positive"}
	}
	if c.Polling.MaxAttempts == 0 {
		return &ConfigurationError{Key: "polling.maxAttempts", Reason: "must be at least 1"}
	}
	switch c.Polling.Backoff {
	case "fixed", "exponential":
	default:
		return &ConfigurationError{Key: "polling.backoff", Reason: fmt.Sprintf("unknown policy %q", c.Polling.Backoff)}
	}
	if c.Polling.Deadline < 0 {
		return &ConfigurationError{Key: "polling.deadline", Reason: "must not be negative"}
	}
	if c.GeminiClient.RequestTimeout < 0 {
		return &ConfigurationError{Key: "geminiClient.requestTimeout", Reason: "must not be negative"}
	}
	if strings.TrimSpace(c.GeminiClient.Model) == "" {
		return &ConfigurationError{Key: "geminiClient.model", Reason: "is empty"}
	}
	switch strings.ToLower(c.Batch.Format) {
	case "csv", "xlsx":
	default:
		return &ConfigurationError{Key: "batch.format", Reason: fmt.Sprintf("unsupported format %q", c.Batch.Format)}
	}
	if len(c.Batch.Patterns) == 0 {
		return &ConfigurationError{Key: "batch.patterns", Reason: "no patterns configured"}
	}
	if c.Batch.ItemInterval < 0 {
		return &ConfigurationError{Key: "batch.itemInterval", Reason: "must not be negative"}
	}
	if c.Server.MaxUploadMB <= 0 {
		return &ConfigurationError{Key: "server.maxUploadMB", Reason: "must be positive"}
	}
	if _, err := c.Prompts.VideoAnalysis.Current(); err != nil {
		return err
	}
	return nil
}
