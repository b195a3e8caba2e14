package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Rate sources
const (
	RateSourceBackend  = "backend"
	RateSourcePostgres = "postgres"
)

// Config holds the process configuration, decoded from environment variables
type Config struct {
	GRPCAddr string `env:"GRPC_ADDR,default=:8080"`
	HTTPAddr string `env:"HTTP_ADDR,default=:8081"`
	APIToken string `env:"API_TOKEN,default=dev-token"`

	LogLevel  string `env:"LOG_LEVEL,default=info"`
	LogFormat string `env:"LOG_FORMAT,default=text"`

	FeeRate       string `env:"TRANSFER_FEE_RATE,default=0.02"`
	CorridorsFile string `env:"CORRIDORS_FILE"`

	RateSource     string        `env:"RATE_SOURCE,default=backend"`
	BackendURL     string        `env:"BACKEND_URL,default=http://localhost:5000/api"`
	BackendToken   string        `env:"BACKEND_TOKEN"`
	BackendTimeout time.Duration `env:"BACKEND_TIMEOUT,default=10s"`

	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS,default=20"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST,default=40"`

	DB Database
}

// Database holds the postgres connection settings
// ConnStr wins over the individual fields when set
type Database struct {
	ConnStr  string `env:"DB_CONN_STR"`
	Host     string `env:"DB_HOST,default=localhost"`
	Port     string `env:"DB_PORT,default=5432"`
	User     string `env:"DB_USER,default=postgres"`
	Password string `env:"DB_PASSWORD,default=postgres"`
	Name     string `env:"DB_NAME,default=remitflow"`
}

// Load reads an optional .env file and decodes the environment into a Config
func Load() (*Config, error) {
	// A missing .env is fine, the environment may be set by the container
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("failed to decode environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values the decoder cannot
func (c *Config) Validate() error {
	if _, err := c.ParsedFeeRate(); err != nil {
		return err
	}

	switch c.RateSource {
	case RateSourceBackend, RateSourcePostgres:
	default:
		return fmt.Errorf("RATE_SOURCE must be %q or %q, got %q", RateSourceBackend, RateSourcePostgres, c.RateSource)
	}

	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}

	return nil
}

// ParsedFeeRate returns the fee rate as a decimal
func (c *Config) ParsedFeeRate() (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(c.FeeRate)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid TRANSFER_FEE_RATE %q: %w", c.FeeRate, err)
	}
	if rate.IsNegative() {
		return decimal.Zero, fmt.Errorf("TRANSFER_FEE_RATE must not be negative, got %s", rate)
	}
	return rate, nil
}

// ConnString returns the postgres connection string
func (d Database) ConnString() string {
	if d.ConnStr != "" {
		return d.ConnStr
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Password, d.Name)
}
