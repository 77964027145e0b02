// Package config resolves the service configuration once at start-up from an
// optional env file and the process environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Supported storage drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// ErrUnknownDriver is returned when STORAGE_DRIVER names an unsupported backend.
var ErrUnknownDriver = errors.New("unknown storage driver")

// Config holds application, storage, cache, messaging, logging and JWT settings.
type Config struct {
	// Application
	AppHost  string `envconfig:"APP_HOST" default:"localhost"`
	AppPort  string `envconfig:"APP_PORT" default:"3000"`
	LogLevel string `envconfig:"APP_LOG_LEVEL" default:"info"`
	LogFile  string `envconfig:"APP_LOG_FILE"`

	// Storage
	StorageDriver string `envconfig:"STORAGE_DRIVER" default:"sqlite"`
	SQLitePath    string `envconfig:"SQLITE_PATH" default:"storefront.db"`

	// PostgreSQL
	PostgresHost         string `envconfig:"POSTGRES_HOST" default:"localhost"`
	PostgresPort         int    `envconfig:"POSTGRES_PORT" default:"5432"`
	PostgresUser         string `envconfig:"POSTGRES_USER" default:"user"`
	PostgresPassword     string `envconfig:"POSTGRES_PASSWORD" default:"password"`
	PostgresDB           string `envconfig:"POSTGRES_DB" default:"storefront"`
	PostgresMaxOpenConns int    `envconfig:"POSTGRES_MAX_OPEN_CONNS" default:"16"`
	PostgresMaxIdleConns int    `envconfig:"POSTGRES_MAX_IDLE_CONNS" default:"8"`

	// Redis product cache
	RedisEnabled      bool   `envconfig:"REDIS_ENABLED" default:"false"`
	RedisHost         string `envconfig:"REDIS_HOST" default:"localhost"`
	RedisPort         int    `envconfig:"REDIS_PORT" default:"6379"`
	RedisDB           int    `envconfig:"REDIS_DB" default:"0"`
	RedisPassword     string `envconfig:"REDIS_PASSWORD"`
	RedisPoolSize     int    `envconfig:"REDIS_POOL_SIZE" default:"10"`
	RedisMinIdleConns int    `envconfig:"REDIS_MIN_IDLE_CONNS" default:"2"`
	RedisExpSecond    int    `envconfig:"REDIS_EXP_SECOND" default:"60"`

	// Kafka order events; publishing is disabled when no brokers are set
	KafkaBrokers []string `envconfig:"KAFKA_BROKERS"`
	KafkaTopic   string   `envconfig:"KAFKA_TOPIC" default:"orders"`

	// JWT
	JWTSecretKey string `envconfig:"JWT_SECRET_KEY" required:"true"`
	JWTExpSecond int    `envconfig:"JWT_EXP_SECOND" default:"3600"`
}

// Load reads variables from the env file at path (a missing file is ignored)
// and decodes the environment into a Config.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	switch cfg.StorageDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.StorageDriver)
	}

	return &cfg, nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

// PostgresDSN builds the pgx connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PostgresUser, c.PostgresPassword, c.PostgresHost, c.PostgresPort, c.PostgresDB)
}

// RedisAddr returns host:port of the Redis server.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// JWTExpiration returns the token lifetime.
func (c *Config) JWTExpiration() time.Duration {
	return time.Duration(c.JWTExpSecond) * time.Second
}

// RedisExpiration returns the product cache TTL.
func (c *Config) RedisExpiration() time.Duration {
	return time.Duration(c.RedisExpSecond) * time.Second
}
