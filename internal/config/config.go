package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v2"
)

const DefaultPath = "config/config.toml"

const DefaultPrompt = `You are a fact-checking classifier for news articles.
Decide whether the article below is real news or fake news.
Answer with ONLY a JSON object of the form {"label": "LABEL_0", "score": 0.97}
where label is "LABEL_0" for real news and "LABEL_1" for fake news, and score is
your probability (between 0 and 1) that the label is correct.

Article:
%s`

type ServerConfig struct {
	Port            int    `toml:"port" yaml:"port" validate:"min=1,max=65535"`
	Mode            string `toml:"mode" yaml:"mode" validate:"oneof=debug release test"`
	Docs            bool   `toml:"docs" yaml:"docs"`
	ShutdownTimeout int    `toml:"shutdown_timeout" yaml:"shutdown_timeout" validate:"gt=0"`
}

// ShutdownGrace is the time in-flight requests get once shutdown starts.
func (s ServerConfig) ShutdownGrace() time.Duration {
	return time.Duration(s.ShutdownTimeout) * time.Second
}

type ModelConfig struct {
	Dir             string `toml:"dir" yaml:"dir"`
	OnnxFilename    string `toml:"onnx_filename" yaml:"onnx_filename"`
	Device          string `toml:"device" yaml:"device" validate:"oneof=auto cpu cuda"`
	OnnxLibraryPath string `toml:"onnx_library_path" yaml:"onnx_library_path"`
}

type ClassifierConfig struct {
	Backend   string `toml:"backend" yaml:"backend" validate:"oneof=hugot llm"`
	Precision int    `toml:"precision" yaml:"precision" validate:"min=0,max=10"`
}

type LLMConfig struct {
	Provider string `toml:"provider" yaml:"provider"`
	Model    string `toml:"model" yaml:"model"`
	APIKey   string `toml:"api_key" yaml:"api_key"`
	BaseURL  string `toml:"base_url" yaml:"base_url"`
	Prompt   string `toml:"prompt" yaml:"prompt"`
}

type LogConfig struct {
	Level      string `toml:"level" yaml:"level" validate:"oneof=debug info warn error"`
	Format     string `toml:"format" yaml:"format" validate:"oneof=console json"`
	File       string `toml:"file" yaml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups" yaml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days" yaml:"max_age_days"`
}

type Config struct {
	Server     ServerConfig      `toml:"server" yaml:"server"`
	Model      ModelConfig       `toml:"model" yaml:"model"`
	Classifier ClassifierConfig  `toml:"classifier" yaml:"classifier"`
	Labels     map[string]string `toml:"labels" yaml:"labels"`
	LLM        LLMConfig         `toml:"llm" yaml:"llm"`
	Log        LogConfig         `toml:"log" yaml:"log"`
}

// Default returns the configuration the service runs with when no file is present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            5000,
			Mode:            "debug",
			Docs:            true,
			ShutdownTimeout: 5,
		},
		Model: ModelConfig{
			Dir:    filepath.Join("..", "models", "bert_fakenews_model"),
			Device: "auto",
		},
		Classifier: ClassifierConfig{
			Backend:   "hugot",
			Precision: 4,
		},
		Labels: map[string]string{
			"LABEL_0": "Real",
			"LABEL_1": "Fake",
		},
		LLM: LLMConfig{
			Provider: "ollama",
			Model:    "llama3.1:latest",
			BaseURL:  "http://localhost:11434",
			Prompt:   DefaultPrompt,
		},
		Log: LogConfig{
			Level:      "info",
			Format:     "console",
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load reads the file at path on top of the defaults, applies environment
// overrides and validates the result. A missing file at DefaultPath is not an
// error; a missing file anywhere else is.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && path == DefaultPath:
	case err != nil:
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	default:
		if err := decode(path, data, cfg); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if cfg.LLM.Prompt == "" {
		cfg.LLM.Prompt = DefaultPrompt
	}
	if len(cfg.Labels) == 0 {
		cfg.Labels = Default().Labels
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse TOML: %w", err)
		}
	}
	return nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// envOverrides holds the environment variables that may replace file values.
// Nil fields were not set.
type envOverrides struct {
	Port            *int    `env:"PORT"`
	Mode            *string `env:"GIN_MODE"`
	Docs            *bool   `env:"SERVER_DOCS"`
	ShutdownTimeout *int    `env:"SHUTDOWN_TIMEOUT"`
	ModelDir        *string `env:"MODEL_DIR"`
	OnnxFilename    *string `env:"MODEL_ONNX_FILENAME"`
	Device          *string `env:"MODEL_DEVICE"`
	OnnxLibraryPath *string `env:"ONNX_LIBRARY_PATH"`
	Backend         *string `env:"CLASSIFIER_BACKEND"`
	Precision       *int    `env:"CLASSIFIER_PRECISION"`
	LLMProvider     *string `env:"LLM_PROVIDER"`
	LLMModel        *string `env:"LLM_MODEL"`
	LLMAPIKey       *string `env:"LLM_API_KEY"`
	LLMBaseURL      *string `env:"LLM_BASE_URL"`
	LogLevel        *string `env:"LOG_LEVEL"`
	LogFormat       *string `env:"LOG_FORMAT"`
	LogFile         *string `env:"LOG_FILE"`
}

func applyEnv(cfg *Config) error {
	var o envOverrides
	if _, err := env.UnmarshalFromEnviron(&o); err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}

	set(&cfg.Server.Port, o.Port)
	set(&cfg.Server.Mode, o.Mode)
	set(&cfg.Server.Docs, o.Docs)
	set(&cfg.Server.ShutdownTimeout, o.ShutdownTimeout)
	set(&cfg.Model.Dir, o.ModelDir)
	set(&cfg.Model.OnnxFilename, o.OnnxFilename)
	set(&cfg.Model.Device, o.Device)
	set(&cfg.Model.OnnxLibraryPath, o.OnnxLibraryPath)
	set(&cfg.Classifier.Backend, o.Backend)
	set(&cfg.Classifier.Precision, o.Precision)
	set(&cfg.LLM.Provider, o.LLMProvider)
	set(&cfg.LLM.Model, o.LLMModel)
	set(&cfg.LLM.APIKey, o.LLMAPIKey)
	set(&cfg.LLM.BaseURL, o.LLMBaseURL)
	set(&cfg.Log.Level, o.LogLevel)
	set(&cfg.Log.Format, o.LogFormat)
	set(&cfg.Log.File, o.LogFile)
	return nil
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// ResolveModelDir returns the model directory, anchoring relative paths at the
// directory holding the running executable.
func (c *Config) ResolveModelDir() (string, error) {
	if filepath.IsAbs(c.Model.Dir) {
		return c.Model.Dir, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	return filepath.Join(filepath.Dir(exe), c.Model.Dir), nil
}
