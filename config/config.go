package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"purchase-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	AES       AESConfig       `mapstructure:"aes"`
	Log       LogConfig       `mapstructure:"log"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Purchase  PurchaseConfig  `mapstructure:"purchase"`
	Dispute   DisputeConfig   `mapstructure:"dispute"`
	Kafka     KafkaConfig     `mapstructure:"kafka"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // debug, release, test
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"`
}

// Storage drivers.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type StorageConfig struct {
	Driver  string `mapstructure:"driver"`  // postgres, memory
	Migrate bool   `mapstructure:"migrate"` // apply embedded migrations on start
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
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type AESConfig struct {
	Key string `mapstructure:"key"` // 32-byte hex-encoded key for AES-256
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

type RateLimitConfig struct {
	Limit  int           `mapstructure:"limit"`
	Window time.Duration `mapstructure:"window"`
}

type PurchaseConfig struct {
	Currency           string        `mapstructure:"currency"`
	CurrencyScale      int32         `mapstructure:"currency_scale"`
	PlatformOwnerID    string        `mapstructure:"platform_owner_id"`
	SagaTimeout        time.Duration `mapstructure:"saga_timeout"`
	ReservationTimeout time.Duration `mapstructure:"reservation_timeout"`
	SweepInterval      time.Duration `mapstructure:"sweep_interval"`
	SweepBatch         int           `mapstructure:"sweep_batch"`
	IdempotencyTTL     time.Duration `mapstructure:"idempotency_ttl"`
}

// PlatformOwner parses the owner id of the platform commission wallet.
func (p PurchaseConfig) PlatformOwner() (uuid.UUID, error) {
	return uuid.Parse(p.PlatformOwnerID)
}

type DisputeConfig struct {
	PartialRefundPercent string                           `mapstructure:"partial_refund_percent"`
	Default              domain.CategoryPolicy            `mapstructure:"default"`
	Categories           map[string]domain.CategoryPolicy `mapstructure:"categories"`
}

// Policy converts the dispute section into the domain policy.
func (d DisputeConfig) Policy() (domain.DisputePolicy, error) {
	pct, err := decimal.NewFromString(d.PartialRefundPercent)
	if err != nil {
		return domain.DisputePolicy{}, fmt.Errorf("dispute.partial_refund_percent: %w", err)
	}
	if !pct.IsPositive() || pct.GreaterThan(decimal.NewFromInt(100)) {
		return domain.DisputePolicy{}, fmt.Errorf("dispute.partial_refund_percent must be in (0, 100], got %s", pct)
	}
	return domain.DisputePolicy{
		DefaultPartialPercent: pct,
		Categories:            d.Categories,
		Default:               d.Default,
	}, nil
}

type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

type TracingConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	JaegerEndpoint string `mapstructure:"jaeger_endpoint"`
	ServiceName    string `mapstructure:"service_name"`
}

// LoadDotEnv loads .env style files into the process environment without
// overriding variables that are already set. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: PIE_ (Purchase & Inventory Engine).
// Nested keys use underscore: PIE_DATABASE_HOST, PIE_PURCHASE_SAGA_TIMEOUT, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.shutdown_timeout", "15s")
	v.SetDefault("server.max_body_bytes", 1<<20)
	v.SetDefault("storage.driver", DriverPostgres)
	v.SetDefault("storage.migrate", true)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "purchase_engine")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.enabled", true)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "user-directory")
	v.SetDefault("aes.key", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("ratelimit.limit", 100)
	v.SetDefault("ratelimit.window", "1m")
	v.SetDefault("purchase.currency", "USD")
	v.SetDefault("purchase.currency_scale", domain.DefaultCurrencyScale)
	v.SetDefault("purchase.platform_owner_id", "00000000-0000-0000-0000-000000000001")
	v.SetDefault("purchase.saga_timeout", "10s")
	v.SetDefault("purchase.reservation_timeout", "2m")
	v.SetDefault("purchase.sweep_interval", "30s")
	v.SetDefault("purchase.sweep_batch", 100)
	v.SetDefault("purchase.idempotency_ttl", "24h")
	v.SetDefault("dispute.partial_refund_percent", "50")
	v.SetDefault("dispute.default.returnable", false)
	v.SetDefault("dispute.default.release_on_partial_refund", false)
	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.topic", "order-events")
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.jaeger_endpoint", "http://localhost:14268/api/traces")
	v.SetDefault("tracing.service_name", "purchase-engine")

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: PIE_DATABASE_HOST -> database.host
	v.SetEnvPrefix("PIE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the engine cannot run with.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverPostgres, DriverMemory:
	default:
		return fmt.Errorf("storage.driver must be %q or %q, got %q", DriverPostgres, DriverMemory, c.Storage.Driver)
	}
	if c.Purchase.CurrencyScale < 0 || c.Purchase.CurrencyScale > 8 {
		return fmt.Errorf("purchase.currency_scale out of range: %d", c.Purchase.CurrencyScale)
	}
	if _, err := c.Purchase.PlatformOwner(); err != nil {
		return fmt.Errorf("purchase.platform_owner_id: %w", err)
	}
	if c.Purchase.SagaTimeout <= 0 {
		return errors.New("purchase.saga_timeout must be positive")
	}
	if c.Purchase.ReservationTimeout <= c.Purchase.SagaTimeout {
		return fmt.Errorf("purchase.reservation_timeout (%s) must exceed purchase.saga_timeout (%s)",
			c.Purchase.ReservationTimeout, c.Purchase.SagaTimeout)
	}
	if c.Purchase.SweepBatch <= 0 {
		return errors.New("purchase.sweep_batch must be positive")
	}
	if _, err := c.Dispute.Policy(); err != nil {
		return err
	}
	return nil
}
