package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL"`

	Server    ServerConfig    `envconfig:"SERVER"`
	Database  DatabaseConfig  `envconfig:"DB"`
	Redis     RedisConfig     `envconfig:"REDIS"`
	RabbitMQ  RabbitMQConfig  `envconfig:"RABBITMQ"`
	Auth      AuthConfig      `envconfig:"AUTH"`
	Stripe    StripeConfig    `envconfig:"STRIPE"`
	Inventory InventoryConfig `envconfig:"INVENTORY"`
	Checkout  CheckoutConfig  `envconfig:"CHECKOUT"`
}

type ServerConfig struct {
	Port         string        `envconfig:"PORT" default:"8080"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"30s"`
	IdleTimeout  time.Duration `envconfig:"IDLE_TIMEOUT" default:"60s"`
}

type DatabaseConfig struct {
	Host            string        `envconfig:"HOST" default:"localhost"`
	Port            int           `envconfig:"PORT" default:"3306"`
	User            string        `envconfig:"USER" default:"root"`
	Password        string        `envconfig:"PASSWORD"`
	Name            string        `envconfig:"NAME" default:"digital_store"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"5m"`
	AutoMigrate     bool          `envconfig:"AUTO_MIGRATE" default:"true"`
}

type RedisConfig struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     int    `envconfig:"PORT" default:"6379"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0"`
}

// RabbitMQConfig configures the payment event queue. An empty Host disables the
// broker and the webhook fulfills synchronously.
type RabbitMQConfig struct {
	Host       string        `envconfig:"HOST"`
	Port       int           `envconfig:"PORT" default:"5672"`
	User       string        `envconfig:"USER" default:"guest"`
	Password   string        `envconfig:"PASSWORD" default:"guest"`
	RetryDelay time.Duration `envconfig:"RETRY_DELAY" default:"30s"`
	MaxRetries int           `envconfig:"MAX_RETRIES" default:"5"`
}

type AuthConfig struct {
	JWTSecret      string        `envconfig:"JWT_SECRET" default:"change-me"`
	JWTExpiration  time.Duration `envconfig:"JWT_EXPIRATION" default:"24h"`
	SessionExpTime time.Duration `envconfig:"SESSION_EXP_TIME" default:"24h"`
	InternalAPIKey string        `envconfig:"INTERNAL_API_KEY"`
}

type StripeConfig struct {
	SecretKey     string `envconfig:"SECRET_KEY"`
	WebhookSecret string `envconfig:"WEBHOOK_SECRET"`
	Currency      string `envconfig:"CURRENCY" default:"usd"`
}

type InventoryConfig struct {
	LowStockThreshold int64         `envconfig:"LOW_STOCK_THRESHOLD" default:"5"`
	SweepSchedule     string        `envconfig:"SWEEP_SCHEDULE" default:"0 */10 * * * *"`
	LockTTL           time.Duration `envconfig:"LOCK_TTL" default:"5m"`
}

type CheckoutConfig struct {
	ProcessingFee decimal.Decimal `envconfig:"PROCESSING_FEE" default:"2.99"`
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	return &cfg, nil
}

// GetDSN builds the MySQL DSN. multiStatements is needed by the migration runner.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&multiStatements=true&charset=utf8mb4",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

func (c *Config) RabbitMQURL() string {
	if c.RabbitMQ.Host == "" {
		return ""
	}
	return fmt.Sprintf("amqp://%s:%s@%s:%d/", c.RabbitMQ.User, c.RabbitMQ.Password, c.RabbitMQ.Host, c.RabbitMQ.Port)
}
