// Package config loads the pawmatch API configuration from env-named YAML
// files with ${VAR} expansion.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the pawmatch API configuration.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Matching MatchingConfig `yaml:"matching"`
	Auth     AuthConfig     `yaml:"auth"`
	Storage  StorageConfig  `yaml:"storage"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	Addrs            []string `yaml:"addrs"`
	Username         string   `yaml:"username"`
	Password         string   `yaml:"password"`
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
}

// CatalogConfig holds feed loading settings.
type CatalogConfig struct {
	Source     string `yaml:"source"` // redis, file (default: redis)
	FeedKey    string `yaml:"feed_key"`
	FeedPath   string `yaml:"feed_path"`
	RefreshSec int    `yaml:"refresh_sec"`
}

// MatchingConfig holds ranking and sectioning settings.
type MatchingConfig struct {
	BestThreshold float64 `yaml:"best_threshold"`
	BestCap       int     `yaml:"best_cap"`
	ExploreCap    int     `yaml:"explore_cap"`
	SourceCap     int     `yaml:"source_cap"`
	TopReasons    int     `yaml:"top_reasons"`
	MinResults    int     `yaml:"min_results"`
	NeutralScore  float64 `yaml:"neutral_score"`
}

// StorageConfig holds storage settings.
type StorageConfig struct {
	KeyPrefix string `yaml:"key_prefix"`
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.Port <= 0 {
		c.HTTP.Port = 8080
	}
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 10
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Database.ReadinessTimeout <= 0 {
		c.Database.ReadinessTimeout = 10
	}
	if c.Storage.KeyPrefix == "" {
		c.Storage.KeyPrefix = "pawmatch:"
	}
	if c.Catalog.Source == "" {
		c.Catalog.Source = "redis"
	}
	if c.Catalog.FeedKey == "" {
		c.Catalog.FeedKey = c.Storage.KeyPrefix + "catalog:feed"
	}
	if c.Catalog.RefreshSec <= 0 {
		c.Catalog.RefreshSec = 300
	}
	if c.Matching.BestThreshold <= 0 {
		c.Matching.BestThreshold = 0.6
	}
	if c.Matching.BestCap <= 0 {
		c.Matching.BestCap = 10
	}
	if c.Matching.ExploreCap <= 0 {
		c.Matching.ExploreCap = 6
	}
	if c.Matching.TopReasons <= 0 {
		c.Matching.TopReasons = 7
	}
	if c.Matching.MinResults <= 0 {
		c.Matching.MinResults = 5
	}
	if c.Matching.NeutralScore <= 0 {
		c.Matching.NeutralScore = 0.5
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	switch c.Catalog.Source {
	case "redis":
		if len(c.Database.Addrs) == 0 {
			return fmt.Errorf("database.addrs is required for catalog.source=redis")
		}
	case "file":
		if c.Catalog.FeedPath == "" {
			return fmt.Errorf("catalog.feed_path is required for catalog.source=file")
		}
	default:
		return fmt.Errorf("catalog.source must be \"redis\" or \"file\", got %q", c.Catalog.Source)
	}
	if c.Matching.BestThreshold > 1 {
		return fmt.Errorf("matching.best_threshold must be at most 1, got %g", c.Matching.BestThreshold)
	}
	if c.Matching.NeutralScore > 1 {
		return fmt.Errorf("matching.neutral_score must be at most 1, got %g", c.Matching.NeutralScore)
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
