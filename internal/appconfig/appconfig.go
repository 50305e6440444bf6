// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// APIKeyEnvVar names the environment variable holding the Groq credential.
	APIKeyEnvVar = "GROQ_API_KEY"
	// defaultRequestTimeout bounds each chat-completion request.
	defaultRequestTimeout = 120 * time.Second
	// defaultBaseURL is the OpenAI-compatible Groq endpoint root.
	defaultBaseURL = "https://api.groq.com/openai/v1"
	// defaultModel is the model identifier the screening prompt was tuned against.
	defaultModel = "llama3-70b-8192"
	// defaultTemperature keeps the model's sampling deterministic-leaning.
	defaultTemperature = 0.1
)

// Config represents the top-level application configuration.
type Config struct {
	Cases       string   `json:"cases"`
	MismatchLog string   `json:"mismatchLog"`
	Model       string   `json:"model,omitempty"`
	BaseURL     string   `json:"baseURL,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
	Timeout     int      `json:"timeout,omitempty"`
	Debug       bool     `json:"debug"`
	LogFile     string   `json:"logFile,omitempty"`
	ConfigPath  string   `json:"-"`
}

// RequestTimeout returns the timeout duration for HTTP requests, falling back to the default if not specified.
func (c Config) RequestTimeout() time.Duration {
	if c.Timeout <= 0 {
		return defaultRequestTimeout
	}
	return time.Duration(c.Timeout) * time.Second
}

// ModelID returns the configured model identifier, applying the default if not set.
func (c Config) ModelID() string {
	if m := strings.TrimSpace(c.Model); m != "" {
		return m
	}
	return defaultModel
}

// ServiceBaseURL returns the chat-completions endpoint root, applying the default if not set.
func (c Config) ServiceBaseURL() string {
	if u := strings.TrimSpace(c.BaseURL); u != "" {
		return strings.TrimRight(u, "/")
	}
	return defaultBaseURL
}

// SamplingTemperature returns the configured temperature, applying the default if not set.
func (c Config) SamplingTemperature() float64 {
	if c.Temperature == nil {
		return defaultTemperature
	}
	return *c.Temperature
}

// CasesFilePath returns the path to the case table, applying a default if not set.
func (c Config) CasesFilePath() string {
	if p := strings.TrimSpace(c.Cases); p != "" {
		return p
	}
	return "cases/screening_cases.csv"
}

// MismatchLogFilePath returns the path of the mismatch log, applying a default if not set.
func (c Config) MismatchLogFilePath() string {
	if p := strings.TrimSpace(c.MismatchLog); p != "" {
		return p
	}
	return "screendata/mismatches.jsonl"
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return "screeneval.log"
}

// APIKey resolves the Groq credential from the process environment. The
// credential never lives in the config file; absence is a fatal startup
// condition for any command that talks to the service.
func APIKey() (string, error) {
	key := strings.TrimSpace(os.Getenv(APIKeyEnvVar))
	if key == "" {
		return "", fmt.Errorf("%s is not set; export it before running an evaluation", APIKeyEnvVar)
	}
	return key, nil
}

// Load reads the application configuration from the specified path.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	config, err := loadFromPath(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("no configuration file found at %q", path)
		}
		return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
	}
	config.ConfigPath = path
	return config, nil
}

// loadFromPath is a helper function that loads the configuration from a specific file path.
func loadFromPath(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		return Config{}, err
	}
	if config.Timeout <= 0 {
		config.Timeout = int(defaultRequestTimeout.Seconds())
	}

	return config, nil
}
