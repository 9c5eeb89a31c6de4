// Package config loads resume-builder settings from disk and the environment.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	// DefaultTimeoutSeconds bounds a generation API call.
	DefaultTimeoutSeconds = 60
	// DefaultOutputDir is where artifacts land when no directory is given.
	DefaultOutputDir = "./resumes"
)

// Formats the build command knows how to write.
//
//nolint:gochecknoglobals // fixed lookup table
var knownFormats = []string{"pdf", "docx", "html", "json"}

// Config represents the application configuration.
type Config struct {
	OpenRouterAPIKey string        `json:"openrouter_api_key"`
	Model            string        `json:"model,omitempty"`
	BaseURL          string        `json:"base_url,omitempty"`
	Referer          string        `json:"referer,omitempty"`
	AppTitle         string        `json:"app_title,omitempty"`
	TimeoutSeconds   int           `json:"timeout_seconds,omitempty"`
	Chrome           ChromeConfig  `json:"chrome"`
	Defaults         DefaultConfig `json:"defaults"`
}

// ChromeConfig holds headless Chrome settings for PDF printing.
type ChromeConfig struct {
	ExecPath string `json:"exec_path,omitempty"`
}

// DefaultConfig holds default values for commands.
type DefaultConfig struct {
	OutputDir string   `json:"output_dir"`
	Formats   []string `json:"formats,omitempty"`
}

// Timeout returns the generation API timeout.
func (c *Config) Timeout() (timeout time.Duration) {
	seconds := c.TimeoutSeconds
	if seconds <= 0 {
		seconds = DefaultTimeoutSeconds
	}
	timeout = time.Duration(seconds) * time.Second
	return timeout
}

// HasAPIKey reports whether a generation API key is configured.
func (c *Config) HasAPIKey() (ok bool) {
	ok = strings.TrimSpace(c.OpenRouterAPIKey) != ""
	return ok
}

// DefaultPath returns ~/.resume-builder/config.json.
func DefaultPath() (path string, err error) {
	var homeDir string
	homeDir, err = os.UserHomeDir()
	if err != nil {
		err = errors.Wrap(err, "failed to get user home directory")
		return path, err
	}
	path = filepath.Join(homeDir, ".resume-builder", "config.json")
	return path, err
}

// Load reads configuration from file with environment variable overrides.
// A missing file at the default location yields defaults; a missing file
// that was asked for by name is an error.
func Load(configPath string) (cfg Config, err error) {
	// Determine config file location
	path := configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return cfg, err
		}
	}

	// Read config file
	var data []byte
	data, err = os.ReadFile(path)
	switch {
	case err == nil:
		err = json.Unmarshal(data, &cfg)
		if err != nil {
			err = errors.Wrapf(err, "failed to parse config file: %s", path)
			return cfg, err
		}
	case os.IsNotExist(err) && configPath == "":
		err = nil
	case os.IsNotExist(err):
		err = errors.Errorf("config file not found: %s (run 'resume-builder init' to create)", path)
		return cfg, err
	default:
		err = errors.Wrapf(err, "failed to read config file: %s", path)
		return cfg, err
	}

	cfg.applyEnv()

	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, err
}

// applyEnv overrides file values with environment variables when set.
func (c *Config) applyEnv() {
	if apiKey := os.Getenv("OPENROUTER_API_KEY"); apiKey != "" {
		c.OpenRouterAPIKey = apiKey
	}

	if model := os.Getenv("RESUME_BUILDER_MODEL"); model != "" {
		c.Model = model
	}

	if baseURL := os.Getenv("OPENROUTER_BASE_URL"); baseURL != "" {
		c.BaseURL = baseURL
	}

	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		c.Chrome.ExecPath = chromePath
	}
}

// Validate checks the configuration and fills in defaults. The API key is
// not required here because manual-only builds never call the API.
func (c *Config) Validate() (err error) {
	if c.TimeoutSeconds < 0 {
		err = errors.Errorf("timeout_seconds must not be negative, got %d", c.TimeoutSeconds)
		return err
	}

	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = DefaultTimeoutSeconds
	}

	// Set default output_dir if not specified
	if c.Defaults.OutputDir == "" {
		c.Defaults.OutputDir = DefaultOutputDir
	}

	if len(c.Defaults.Formats) == 0 {
		c.Defaults.Formats = []string{"pdf", "docx", "html"}
	}

	for i, format := range c.Defaults.Formats {
		format = strings.ToLower(strings.TrimSpace(format))
		if !slices.Contains(knownFormats, format) {
			err = errors.Errorf("unknown output format %q (want one of %s)", format, strings.Join(knownFormats, ", "))
			return err
		}
		c.Defaults.Formats[i] = format
	}

	return err
}

// RequireAPIKey fails when no generation API key is configured.
func (c *Config) RequireAPIKey() (err error) {
	if !c.HasAPIKey() {
		err = errors.New("openrouter_api_key is required (set in config or OPENROUTER_API_KEY env var)")
		return err
	}
	return err
}

// InitConfig creates a default configuration file.
func InitConfig(configPath string) (path string, err error) {
	// Determine config file location
	path = configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return path, err
		}
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create config directory: %s", dir)
		return path, err
	}

	// Check if file already exists
	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("config file already exists: %s", path)
		return path, err
	}

	defaultConfig := Config{
		OpenRouterAPIKey: "sk-or-v1-...",
		Model:            "nvidia/nemotron-3-nano-30b-a3b:free",
		TimeoutSeconds:   DefaultTimeoutSeconds,
		Defaults: DefaultConfig{
			OutputDir: DefaultOutputDir,
			Formats:   []string{"pdf", "docx", "html"},
		},
	}

	// Write to file
	var data []byte
	data, err = json.MarshalIndent(defaultConfig, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal default config")
		return path, err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write config file: %s", path)
		return path, err
	}

	return path, err
}
