package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Worker    WorkerConfig
	Escrow    EscrowConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
}
type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	PrettyLogs      bool          `env:"LOG_PRETTY" envDefault:"true"`
}
type DatabaseConfig struct {
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            string        `env:"DB_PORT" envDefault:"5432"`
	User            string        `env:"DB_USER" envDefault:"postgres"`
	Password        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	Name            string        `env:"DB_NAME" envDefault:"escrow"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"5m"`
	HealthCheck     time.Duration `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"30s"`
	AppName         string        `env:"DB_APPLICATION_NAME" envDefault:"escrow-service"`
}

// URL is the postgres connection string shared by the pool and the migration runner.
func (c DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.Name)
}

type RedisConfig struct {
	Enabled     bool          `env:"REDIS_ENABLED" envDefault:"false"`
	Addr        string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password    string        `env:"REDIS_PASSWORD"`
	DB          int           `env:"REDIS_DB" envDefault:"0"`
	SnapshotTTL time.Duration `env:"REDIS_SNAPSHOT_TTL" envDefault:"5m"`
}
type WorkerConfig struct {
	ExpiryInterval     time.Duration `env:"WORKER_EXPIRY_INTERVAL" envDefault:"10m"`
	AssignmentInterval time.Duration `env:"WORKER_ASSIGNMENT_INTERVAL" envDefault:"2m"`
	BatchSize          int           `env:"WORKER_BATCH_SIZE" envDefault:"50"`
}
type EscrowConfig struct {
	FeePercentage          float64  `env:"FEE_PERCENTAGE" envDefault:"2.5"`
	MinTransactionAmount   float64  `env:"MIN_TRANSACTION_AMOUNT" envDefault:"5"`
	MaxTransactionAmount   float64  `env:"MAX_TRANSACTION_AMOUNT" envDefault:"5000"`
	TransactionTimeoutDays int      `env:"TRANSACTION_TIMEOUT_DAYS" envDefault:"14"`
	SupportedFiatMethods   []string `env:"SUPPORTED_FIAT_METHODS" envSeparator:"," envDefault:"Bank Transfer,PayPal,Credit Card,Cash App"`
	SupportedCryptoMethods []string `env:"SUPPORTED_CRYPTO_METHODS" envSeparator:"," envDefault:"Bitcoin,Ethereum,Litecoin,USDT"`
}

// TransactionTimeout is how long a transaction may stay in created before it expires.
func (c EscrowConfig) TransactionTimeout() time.Duration {
	return time.Duration(c.TransactionTimeoutDays) * 24 * time.Hour
}

type AuthConfig struct {
	JWTSecret string        `env:"JWT_SECRET" envDefault:"change-me"`
	TokenTTL  time.Duration `env:"JWT_TOKEN_TTL" envDefault:"24h"`
}
type RateLimitConfig struct {
	Requests int64         `env:"RATE_LIMIT_REQUESTS" envDefault:"120"`
	Period   time.Duration `env:"RATE_LIMIT_PERIOD" envDefault:"1m"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Escrow.FeePercentage < 0 {
		return nil, fmt.Errorf("FEE_PERCENTAGE must not be negative, got %v", cfg.Escrow.FeePercentage)
	}
	if cfg.Escrow.MinTransactionAmount > cfg.Escrow.MaxTransactionAmount {
		return nil, fmt.Errorf("MIN_TRANSACTION_AMOUNT %v exceeds MAX_TRANSACTION_AMOUNT %v",
			cfg.Escrow.MinTransactionAmount, cfg.Escrow.MaxTransactionAmount)
	}
	return cfg, nil
}
