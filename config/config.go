package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Economy EconomyConfig `mapstructure:"economy"`
	Storage StorageConfig `mapstructure:"storage"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Log     LogConfig     `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// EconomyConfig holds the tunable economic parameters.
type EconomyConfig struct {
	StartBalance int64 `mapstructure:"start_balance"` // balance materialized on first read
	MaxBalance   int64 `mapstructure:"max_balance"`   // global balance ceiling
	TaxBps       int64 `mapstructure:"tax_bps"`       // market tax in basis points (500 = 5%)
}

// StorageConfig selects and parameterizes the persistence backend.
type StorageConfig struct {
	Backend  string         `mapstructure:"backend"`  // file, postgres
	DataDir  string         `mapstructure:"data_dir"` // file backend root
	Database DatabaseConfig `mapstructure:"database"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"` // leaderboard is optional
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type AuthConfig struct {
	AdminKeyHash string        `mapstructure:"admin_key_hash"` // argon2id encoded hash of the admin access key
	JWTSecret    string        `mapstructure:"jwt_secret"`
	JWTExpiry    time.Duration `mapstructure:"jwt_expiry"`
	JWTIssuer    string        `mapstructure:"jwt_issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: ECON_.
// Nested keys use underscore: ECON_ECONOMY_MAX_BALANCE, ECON_STORAGE_BACKEND, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("economy.start_balance", 100)
	v.SetDefault("economy.max_balance", 1_000_000_000)
	v.SetDefault("economy.tax_bps", 500)
	v.SetDefault("storage.backend", "file")
	v.SetDefault("storage.data_dir", "./data")
	v.SetDefault("storage.database.host", "localhost")
	v.SetDefault("storage.database.port", 5432)
	v.SetDefault("storage.database.user", "postgres")
	v.SetDefault("storage.database.password", "postgres")
	v.SetDefault("storage.database.dbname", "craft_economy")
	v.SetDefault("storage.database.sslmode", "disable")
	v.SetDefault("storage.database.max_conns", 10)
	v.SetDefault("storage.database.min_conns", 2)
	v.SetDefault("storage.database.conn_max_lifetime", "30m")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("auth.admin_key_hash", "")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.jwt_expiry", "24h")
	v.SetDefault("auth.jwt_issuer", "craft-economy")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: ECON_STORAGE_BACKEND -> storage.backend
	v.SetEnvPrefix("ECON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Economy.MaxBalance <= 0 {
		return fmt.Errorf("economy.max_balance must be positive, got %d", c.Economy.MaxBalance)
	}
	if c.Economy.StartBalance < 0 || c.Economy.StartBalance > c.Economy.MaxBalance {
		return fmt.Errorf("economy.start_balance must lie in [0, max_balance], got %d", c.Economy.StartBalance)
	}
	if c.Economy.TaxBps < 0 || c.Economy.TaxBps > 10_000 {
		return fmt.Errorf("economy.tax_bps must lie in [0, 10000], got %d", c.Economy.TaxBps)
	}
	switch c.Storage.Backend {
	case "file", "postgres":
	default:
		return fmt.Errorf("storage.backend must be file or postgres, got %q", c.Storage.Backend)
	}
	return nil
}
