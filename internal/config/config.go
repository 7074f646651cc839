package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/estimatecheck/marketplace/internal/db"
	"github.com/estimatecheck/marketplace/internal/domain"
)

// EnvPrefix prefixes environment overrides, e.g. MARKETPLACE_HTTP_PORT or
// MARKETPLACE_STORE_KEY_PREFIX.
const EnvPrefix = "MARKETPLACE"

// Config holds the marketplace service configuration.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Store     StoreConfig     `yaml:"store"`
	Search    SearchConfig    `yaml:"search"`
	Auth      AuthConfig      `yaml:"auth"`
	Contact   ContactConfig   `yaml:"contact"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// AuthConfig maps bearer tokens to callers.
type AuthConfig struct {
	Tokens []TokenConfig `yaml:"tokens" ignored:"true"`
}

// TokenConfig binds one bearer token to a user and role.
type TokenConfig struct {
	Token  string `yaml:"token"`
	UserID string `yaml:"user_id"`
	Role   string `yaml:"role"` // buyer, seller, admin
}

// Actors maps each configured bearer token to its caller.
func (a AuthConfig) Actors() map[string]domain.Actor {
	actors := make(map[string]domain.Actor, len(a.Tokens))
	for _, t := range a.Tokens {
		actors[t.Token] = domain.Actor{UserID: t.UserID, Role: domain.Role(t.Role)}
	}
	return actors
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec" split_words:"true"`
	WriteTimeoutSec int `yaml:"write_timeout_sec" split_words:"true"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec" split_words:"true"`
}

// StoreConfig selects where the marketplace snapshot lives.
type StoreConfig struct {
	Driver           string   `yaml:"driver"` // memory, badger, redis, valkey (default: memory)
	Addrs            []string `yaml:"addrs"`
	Password         string   `yaml:"password"`
	DB               int      `yaml:"db"`
	Path             string   `yaml:"path"` // badger directory; empty = in-memory
	KeyPrefix        string   `yaml:"key_prefix" split_words:"true"`
	ReadinessTimeout int      `yaml:"readiness_timeout_sec" split_words:"true"`
	SkipSeed         bool     `yaml:"skip_seed" split_words:"true"`
}

// SearchConfig holds ranking presentation settings.
type SearchConfig struct {
	PageSize       int    `yaml:"page_size" split_words:"true"`
	PageWindow     int    `yaml:"page_window" split_words:"true"`
	DictionaryPath string `yaml:"dictionary_path" split_words:"true"`
}

// ContactConfig holds the inquiry relay endpoint.
type ContactConfig struct {
	RelayURL   string `yaml:"relay_url" split_words:"true"`
	TimeoutSec int    `yaml:"timeout_sec" split_words:"true"`
}

// TelemetryConfig holds error reporting settings.
type TelemetryConfig struct {
	SentryDSN   string  `yaml:"sentry_dsn" split_words:"true"`
	Environment string  `yaml:"environment"`
	SampleRate  float64 `yaml:"sample_rate" split_words:"true"`
}

// Load reads configuration for an environment name (local, dev, prod).
// A .env file in the working directory is loaded first if present.
func Load(env string) (Config, error) {
	_ = godotenv.Load()
	return LoadFile(findConfigPath(env))
}

// LoadFile reads configuration from a YAML file, then applies
// MARKETPLACE_* environment overrides, defaults and validation.
func LoadFile(configPath string) (Config, error) {
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

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to apply env overrides: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
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
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 10
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Store.Driver == "" {
		c.Store.Driver = db.DriverMemory
	}
	if c.Store.ReadinessTimeout <= 0 {
		c.Store.ReadinessTimeout = 10
	}
	if c.Store.KeyPrefix == "" {
		c.Store.KeyPrefix = "marketplace:"
	}
	if c.Search.PageSize <= 0 {
		c.Search.PageSize = 9
	}
	if c.Search.PageWindow <= 0 {
		c.Search.PageWindow = 5
	}
	if c.Contact.TimeoutSec <= 0 {
		c.Contact.TimeoutSec = 10
	}
	if c.Telemetry.SampleRate <= 0 {
		c.Telemetry.SampleRate = 1.0
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	switch c.Store.Driver {
	case db.DriverMemory, db.DriverBadger:
	case db.DriverRedis, db.DriverValkey:
		if len(c.Store.Addrs) == 0 {
			return fmt.Errorf("store.addrs is required for driver %q", c.Store.Driver)
		}
	default:
		return fmt.Errorf("store.driver must be one of memory, badger, redis, valkey, got %q", c.Store.Driver)
	}
	if c.Telemetry.SampleRate > 1 {
		return fmt.Errorf("telemetry.sample_rate must be at most 1, got %g", c.Telemetry.SampleRate)
	}
	seen := make(map[string]struct{}, len(c.Auth.Tokens))
	for i, t := range c.Auth.Tokens {
		if t.Token == "" || t.UserID == "" {
			return fmt.Errorf("auth.tokens[%d]: token and user_id are required", i)
		}
		if !domain.Role(t.Role).IsValid() {
			return fmt.Errorf("auth.tokens[%d]: role must be buyer, seller or admin, got %q", i, t.Role)
		}
		if _, dup := seen[t.Token]; dup {
			return fmt.Errorf("auth.tokens[%d]: duplicate token", i)
		}
		seen[t.Token] = struct{}{}
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
		expr := string(match[2 : len(match)-1])
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
