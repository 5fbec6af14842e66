// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "MATCH"

// Store drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverNone     = "none"
)

// Config represents the matcher configuration. Values come from defaults, an
// optional YAML or JSON file, then MATCH_* environment variables.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Server ServerConfig `mapstructure:"server"`
	Store  StoreConfig  `mapstructure:"store"`
	Cache  CacheConfig  `mapstructure:"cache"`
	Engine EngineConfig `mapstructure:"engine"`
}

type LogConfig struct {
	JSON  bool `mapstructure:"json"`
	Debug bool `mapstructure:"debug"`
}

type ServerConfig struct {
	Port      int     `mapstructure:"port" validate:"min=1,max=65535"`
	RateLimit float64 `mapstructure:"rate_limit" validate:"gte=0"` // requests per second per client, 0 disables
	Burst     int     `mapstructure:"burst" validate:"gte=0"`
}

type StoreConfig struct {
	Driver      string `mapstructure:"driver" validate:"oneof=postgres sqlite none"`
	DatabaseURL string `mapstructure:"database_url" validate:"required_if=Driver postgres"`
	SQLitePath  string `mapstructure:"sqlite_path" validate:"required_if=Driver sqlite"`
}

type CacheConfig struct {
	RedisAddr string        `mapstructure:"redis_addr"` // empty disables caching
	TTL       time.Duration `mapstructure:"ttl" validate:"gte=0"`
}

type EngineConfig struct {
	Concurrency int `mapstructure:"concurrency" validate:"gte=0"` // 0 means unbounded
}

// ValidationError reports a configuration value that failed validation.
type ValidationError struct {
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("config error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

var defaults = map[string]any{
	"log.json":           false,
	"log.debug":          false,
	"server.port":        8080,
	"server.rate_limit":  10.0,
	"server.burst":       20,
	"store.driver":       DriverNone,
	"store.database_url": "",
	"store.sqlite_path":  "match.db",
	"cache.redis_addr":   "",
	"cache.ttl":          15 * time.Minute,
	"engine.concurrency": 4,
}

// Load reads configuration. path may be empty, in which case only defaults and
// the environment apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Short aliases for the values most often set by hand.
	if err := v.BindEnv("store.database_url", "MATCH_STORE_DATABASE_URL", "MATCH_DATABASE_URL", "DATABASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind database url environment: %w", err)
	}
	if err := v.BindEnv("cache.redis_addr", "MATCH_CACHE_REDIS_ADDR", "MATCH_REDIS_ADDR"); err != nil {
		return nil, fmt.Errorf("failed to bind redis address environment: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		fe := validationErrors[0]
		return &ValidationError{
			Message: fmt.Sprintf("'%s' failed '%s' validation", fieldPath(fe.Namespace()), fe.Tag()),
			Cause:   err,
		}
	}
	return &ValidationError{Message: "invalid configuration", Cause: err}
}

// fieldPath drops the root struct name: "Config.store.driver" -> "store.driver".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}
