package config

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sethvargo/go-envconfig"
)

const (
	defaultHistoryDays        = 90
	defaultSleepWindow        = 7
	defaultSnapshotCacheMB    = 64
	defaultSnapshotTTLSeconds = 6 * 60 * 60
	defaultRateLimitPerMin    = 60
)

type Config struct {
	Environment string `toml:"-"`

	Host                  string   `toml:"host"`
	Port                  int      `toml:"port"`
	PrometheusMetricsHost string   `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string   `toml:"prometheus_metrics_port"`
	AllowedOrigins        []string `toml:"allowed_origins"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// engine
	HistoryDays        int `toml:"history_days"`
	SleepWindow        int `toml:"sleep_window"`
	SnapshotCacheMB    int `toml:"snapshot_cache_mb"`
	SnapshotTTLSeconds int `toml:"snapshot_ttl_seconds"`
	RateLimitPerMin    int `toml:"rate_limit_per_min"`
}

type Toml struct {
	Development *Config `toml:"development"`
	Production  *Config `toml:"production"`
	DockerDev   *Config `toml:"dockerdev"`
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	var name string
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg, name = t.Development, "development"
	case "prod", "production":
		cfg, name = t.Production, "production"
	case "ddev", "dockerdev":
		cfg, name = t.DockerDev, "dockerdev"
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no [%s] section in config", name)
	}
	cfg.Environment = name
	return cfg, nil
}

// Load reads the TOML file at path and returns the section for env, with
// engine defaults filled in.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}
	return fromToml(&t, env)
}

// Parse is Load for an in-memory document.
func Parse(env, data string) (*Config, error) {
	var t Toml
	if _, err := toml.Decode(data, &t); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return fromToml(&t, env)
}

func fromToml(t *Toml, env string) (*Config, error) {
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.HistoryDays <= 0 {
		c.HistoryDays = defaultHistoryDays
	}
	if c.SleepWindow <= 0 {
		c.SleepWindow = defaultSleepWindow
	}
	if c.SnapshotCacheMB <= 0 {
		c.SnapshotCacheMB = defaultSnapshotCacheMB
	}
	if c.SnapshotTTLSeconds <= 0 {
		c.SnapshotTTLSeconds = defaultSnapshotTTLSeconds
	}
	if c.RateLimitPerMin <= 0 {
		c.RateLimitPerMin = defaultRateLimitPerMin
	}
}

func (c *Config) validate() error {
	if c.Port <= 0 {
		return errors.New("config: port must be set")
	}
	// the trend detectors compare 21 day blocks back to back
	if c.HistoryDays < 42 {
		return fmt.Errorf("config: history_days must be at least 42, got %d", c.HistoryDays)
	}
	return nil
}

// Secrets are never read from the config file.
type Secrets struct {
	SentryDSN        string `env:"SENTRY_DSN"`
	RedisPassword    string `env:"RECOVERY_REDIS_PASS"`
	PostgresPassword string `env:"RECOVERY_DB_PASS"`
	APIToken         string `env:"RECOVERY_API_TOKEN"`
	HoneycombEnabled bool   `env:"HONEYCOMB_ENABLED, default=false"`
	HoneycombAPIKey  string `env:"HONEYCOMB_API_KEY"`
}

func LoadSecrets(ctx context.Context) (*Secrets, error) {
	return loadSecrets(ctx, envconfig.OsLookuper())
}

func loadSecrets(ctx context.Context, lookuper envconfig.Lookuper) (*Secrets, error) {
	var s Secrets
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &s,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("process env secrets: %w", err)
	}
	return &s, nil
}
