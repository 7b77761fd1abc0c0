package config

import (
	"fmt"
	"time"

	"escape-booking/internal/domain/pricing"
	"escape-booking/internal/pkg/calendar"
	"escape-booking/internal/pkg/money"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, pricing policy, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Redis     RedisConfig
	Pricing   PricingConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/London"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/London"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// Addr empty disables the property cache.
type RedisConfig struct {
	Addr        string        `envconfig:"REDIS_ADDR"`
	Password    string        `envconfig:"REDIS_PASSWORD"`
	DB          int           `envconfig:"REDIS_DB" default:"0"`
	PropertyTTL time.Duration `envconfig:"REDIS_PROPERTY_TTL" default:"5m"`
}

type PricingConfig struct {
	Currency          string `envconfig:"PRICING_CURRENCY" default:"GBP"`
	DepositBasisPoint int64  `envconfig:"PRICING_DEPOSIT_BASIS_POINTS" default:"2500"`
	BalanceLeadDays   int    `envconfig:"PRICING_BALANCE_LEAD_DAYS" default:"42"`
	WeekendNights     string `envconfig:"PRICING_WEEKEND_NIGHTS" default:"FRI,SAT"`
	TimeZone          string `envconfig:"PRICING_TIMEZONE" default:"Europe/London"`
}

type RateLimitConfig struct {
	QuotesPerSecond float64 `envconfig:"RATE_LIMIT_QUOTES_PER_SECOND" default:"20"`
	QuotesBurst     int     `envconfig:"RATE_LIMIT_QUOTES_BURST" default:"40"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c PricingConfig) Policy() (pricing.Policy, error) {
	weekend, err := calendar.ParseWeekdaySet(c.WeekendNights)
	if err != nil {
		return pricing.Policy{}, fmt.Errorf("invalid PRICING_WEEKEND_NIGHTS %q: %w", c.WeekendNights, err)
	}
	if c.DepositBasisPoint < 0 || c.DepositBasisPoint > 10000 {
		return pricing.Policy{}, fmt.Errorf("PRICING_DEPOSIT_BASIS_POINTS out of range: %d", c.DepositBasisPoint)
	}
	if c.BalanceLeadDays < 0 {
		return pricing.Policy{}, fmt.Errorf("PRICING_BALANCE_LEAD_DAYS cannot be negative: %d", c.BalanceLeadDays)
	}
	return pricing.Policy{
		Currency:        c.Currency,
		DepositRate:     money.BasisPoints(c.DepositBasisPoint),
		BalanceLeadDays: c.BalanceLeadDays,
		WeekendNights:   weekend,
	}, nil
}

func (c PricingConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid PRICING_TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

// LoadDBConfig reads only the database settings, for tools that never serve HTTP.
func LoadDBConfig() (DBConfig, error) {
	var cfg DBConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return DBConfig{}, fmt.Errorf("failed to process db env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Pricing: PricingConfig{
			Currency:          "GBP",
			DepositBasisPoint: 2500,
			BalanceLeadDays:   42,
			WeekendNights:     "FRI,SAT",
			TimeZone:          "UTC",
		},
		RateLimit: RateLimitConfig{
			QuotesPerSecond: 1000,
			QuotesBurst:     1000,
		},
	}
}
