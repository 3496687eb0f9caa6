// Package config loads and exposes the client configuration: server
// endpoint, list-view defaults, and logging options.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults applied when the config file or a field is absent.
const (
	DefaultServerURL      = "https://play.sanctum.example"
	DefaultTimeoutSeconds = 10
	DefaultPageSize       = 20
	DefaultWindowSize     = 5
	DefaultLogLevel       = "info"
)

// ServerConfig holds the game API endpoint settings.
type ServerConfig struct {
	URL            string `yaml:"url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the request timeout as a duration.
func (s ServerConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// UIConfig holds list-view defaults shared by every screen.
type UIConfig struct {
	// PageSize is the default items-per-page for paginated lists.
	PageSize int `yaml:"page_size"`

	// WindowSize is the number of page markers shown in page controls.
	WindowSize int `yaml:"window_size"`
}

// LoggingConfig mirrors logging.Config in the YAML file.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Config is the root configuration document.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
}

var (
	globalConfig   *Config      //nolint:gochecknoglobals // Set once at startup, read everywhere
	globalConfigMu sync.RWMutex //nolint:gochecknoglobals // Protects globalConfig
)

// Defaults returns a Config populated with every default value.
func Defaults() *Config {
	return &Config{
		Server:  ServerConfig{URL: DefaultServerURL, TimeoutSeconds: DefaultTimeoutSeconds},
		UI:      UIConfig{PageSize: DefaultPageSize, WindowSize: DefaultWindowSize},
		Logging: LoggingConfig{Level: DefaultLogLevel, Format: "console"},
	}
}

// Load reads the config file at path (or the default location when path is
// empty), layers it over Defaults, and applies SANCTUM_* environment
// overrides. A missing file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path == "" {
		path = defaultPath()
	}
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)
	normalize(cfg)
	return cfg, nil
}

// SetGlobal stores cfg for retrieval via Global.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// Global returns the stored configuration, or Defaults when none was set.
func Global() *Config {
	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	if globalConfig == nil {
		return Defaults()
	}
	return globalConfig
}

func defaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sanctum", "config.yaml")
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SANCTUM_SERVER_URL"); v != "" {
		cfg.Server.URL = v
	}
	if v := os.Getenv("SANCTUM_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("SANCTUM_LOG_FILE"); v != "" {
		cfg.Logging.File = v
	}
	if v := os.Getenv("SANCTUM_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			cfg.UI.PageSize = n
		}
	}
}

// normalize pulls out-of-domain values back to defaults so downstream code
// never sees a zero page size or timeout.
func normalize(cfg *Config) {
	if cfg.Server.URL == "" {
		cfg.Server.URL = DefaultServerURL
	}
	if cfg.Server.TimeoutSeconds <= 0 {
		cfg.Server.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if cfg.UI.PageSize < 1 {
		cfg.UI.PageSize = DefaultPageSize
	}
	if cfg.UI.WindowSize < 1 {
		cfg.UI.WindowSize = DefaultWindowSize
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
}
