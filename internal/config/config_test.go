package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks the variables Load consults so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"MATCH_LOG_JSON", "MATCH_LOG_DEBUG",
		"MATCH_SERVER_PORT", "MATCH_SERVER_RATE_LIMIT", "MATCH_SERVER_BURST",
		"MATCH_STORE_DRIVER", "MATCH_STORE_DATABASE_URL", "MATCH_DATABASE_URL", "DATABASE_URL",
		"MATCH_STORE_SQLITE_PATH",
		"MATCH_CACHE_REDIS_ADDR", "MATCH_REDIS_ADDR", "MATCH_CACHE_TTL",
		"MATCH_ENGINE_CONCURRENCY",
	} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.False(t, cfg.Log.JSON)
	assert.False(t, cfg.Log.Debug)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10.0, cfg.Server.RateLimit)
	assert.Equal(t, 20, cfg.Server.Burst)
	assert.Equal(t, DriverNone, cfg.Store.Driver)
	assert.Equal(t, "match.db", cfg.Store.SQLitePath)
	assert.Empty(t, cfg.Cache.RedisAddr)
	assert.Equal(t, 15*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 4, cfg.Engine.Concurrency)
}

func TestLoad_YAMLFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "match.yaml", `
log:
  json: true
server:
  port: 9090
  rate_limit: 2.5
store:
  driver: sqlite
  sqlite_path: /tmp/scores.db
cache:
  redis_addr: localhost:6379
  ttl: 90s
engine:
  concurrency: 8
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Log.JSON)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 2.5, cfg.Server.RateLimit)
	assert.Equal(t, 20, cfg.Server.Burst, "unset keys keep defaults")
	assert.Equal(t, DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, "/tmp/scores.db", cfg.Store.SQLitePath)
	assert.Equal(t, "localhost:6379", cfg.Cache.RedisAddr)
	assert.Equal(t, 90*time.Second, cfg.Cache.TTL)
	assert.Equal(t, 8, cfg.Engine.Concurrency)
}

func TestLoad_JSONFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "match.json", `{"server": {"port": 7000}, "log": {"debug": true}}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.True(t, cfg.Log.Debug)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "match.yaml", "server:\n  port: 9090\n")

	t.Setenv("MATCH_SERVER_PORT", "9191")
	t.Setenv("MATCH_STORE_DRIVER", "postgres")
	t.Setenv("MATCH_DATABASE_URL", "postgres://localhost/match")
	t.Setenv("MATCH_CACHE_TTL", "2m")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, DriverPostgres, cfg.Store.Driver)
	assert.Equal(t, "postgres://localhost/match", cfg.Store.DatabaseURL)
	assert.Equal(t, 2*time.Minute, cfg.Cache.TTL)
}

func TestLoad_FileNotFound(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("/nonexistent/path/match.yaml")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_InvalidValues(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "match.yaml", "store:\n  driver: mongo\n")

	cfg, err := Load(path)
	assert.Nil(t, cfg)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Message, "store.driver")
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server: ServerConfig{Port: 8080, RateLimit: 1, Burst: 1},
			Store:  StoreConfig{Driver: DriverNone},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "port zero", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: "server.port"},
		{name: "port too large", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: "server.port"},
		{name: "negative rate", mutate: func(c *Config) { c.Server.RateLimit = -1 }, wantErr: "server.rate_limit"},
		{name: "unknown driver", mutate: func(c *Config) { c.Store.Driver = "mysql" }, wantErr: "store.driver"},
		{name: "postgres without url", mutate: func(c *Config) { c.Store.Driver = DriverPostgres }, wantErr: "store.database_url"},
		{name: "sqlite without path", mutate: func(c *Config) { c.Store.Driver = DriverSQLite }, wantErr: "store.sqlite_path"},
		{
			name: "sqlite with path",
			mutate: func(c *Config) {
				c.Store.Driver = DriverSQLite
				c.Store.SQLitePath = "x.db"
			},
		},
		{name: "negative ttl", mutate: func(c *Config) { c.Cache.TTL = -time.Second }, wantErr: "cache.ttl"},
		{name: "negative concurrency", mutate: func(c *Config) { c.Engine.Concurrency = -1 }, wantErr: "engine.concurrency"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Contains(t, validationErr.Error(), tt.wantErr)
			assert.NotNil(t, errors.Unwrap(validationErr))
		})
	}
}

func TestFieldPath(t *testing.T) {
	assert.Equal(t, "store.driver", fieldPath("Config.store.driver"))
	assert.Equal(t, "Config", fieldPath("Config"))
}
