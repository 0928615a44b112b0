package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"dinesmart/internal/adapters/out/postgres"
	"dinesmart/internal/pkg/errs"
	"dinesmart/internal/pkg/retry"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	HTTPPort      string
	HTTPRateLimit float64

	Storage    string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	DBDriver   string

	AMQPURL      string
	AMQPExchange string

	SeedFile string

	Retry retry.Config

	PurgeSchedule  string
	PurgeRetention time.Duration
}

// LookupFunc reads one setting, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ParseConfig reads the settings through lookup and applies the defaults.
// Every malformed setting is reported in the returned error.
func ParseConfig(lookup LookupFunc) (Config, error) {
	p := parser{lookup: lookup}

	config := Config{
		HTTPPort:      p.string("HTTP_PORT", "8080"),
		HTTPRateLimit: p.float("HTTP_RATE_LIMIT", 50),

		Storage:    p.string("STORAGE", StorageMemory),
		DBHost:     p.string("DB_HOST", ""),
		DBPort:     p.string("DB_PORT", "5432"),
		DBUser:     p.string("DB_USER", ""),
		DBPassword: p.string("DB_PASSWORD", ""),
		DBName:     p.string("DB_NAME", ""),
		DBSslMode:  p.string("DB_SSLMODE", "disable"),
		DBDriver:   p.string("DB_DRIVER", postgres.DriverPgx),

		AMQPURL:      p.string("AMQP_URL", ""),
		AMQPExchange: p.string("AMQP_EXCHANGE", "dinesmart.orders"),

		SeedFile: p.string("SEED_FILE", ""),

		Retry: retry.Config{
			MaxAttempts:   p.int("RETRY_MAX_ATTEMPTS", retry.DefaultConfig.MaxAttempts),
			InitialDelay:  p.duration("RETRY_INITIAL_DELAY", retry.DefaultConfig.InitialDelay),
			MaxDelay:      p.duration("RETRY_MAX_DELAY", retry.DefaultConfig.MaxDelay),
			BackoffFactor: retry.DefaultConfig.BackoffFactor,
			JitterEnabled: retry.DefaultConfig.JitterEnabled,
		},

		PurgeSchedule:  p.string("PURGE_SCHEDULE", "0 0 4 * * *"),
		PurgeRetention: p.duration("PURGE_RETENTION", 30*24*time.Hour),
	}

	if err := errors.Join(append(p.errs, config.validate())...); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Connection returns the database settings.
func (c Config) Connection() postgres.ConnectionConfig {
	return postgres.ConnectionConfig{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		DBName:   c.DBName,
		SSLMode:  c.DBSslMode,
		Driver:   c.DBDriver,
	}
}

func (c Config) validate() error {
	var problems []error

	switch c.Storage {
	case StorageMemory:
	case StoragePostgres:
		for key, value := range map[string]string{"DB_HOST": c.DBHost, "DB_USER": c.DBUser, "DB_NAME": c.DBName} {
			if value == "" {
				problems = append(problems, errs.NewValueIsRequiredErrorWithCause(key, errors.New("STORAGE is postgres")))
			}
		}
		if c.DBDriver != postgres.DriverPgx && c.DBDriver != postgres.DriverPQ {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
				"DB_DRIVER", fmt.Errorf("%q is not one of pgx, postgres", c.DBDriver)))
		}
	default:
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"STORAGE", fmt.Errorf("%q is not one of memory, postgres", c.Storage)))
	}

	if c.Retry.MaxAttempts < 1 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("RETRY_MAX_ATTEMPTS", c.Retry.MaxAttempts, 1, "unbounded"))
	}
	if c.HTTPRateLimit < 0 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("HTTP_RATE_LIMIT", c.HTTPRateLimit, 0, "unbounded"))
	}
	if c.PurgeSchedule != "" && c.PurgeRetention <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"PURGE_RETENTION", fmt.Errorf("%s is not greater than 0", c.PurgeRetention)))
	}

	return errors.Join(problems...)
}

type parser struct {
	lookup LookupFunc
	errs   []error
}

func (p *parser) string(key, fallback string) string {
	if value, ok := p.lookup(key); ok && value != "" {
		return value
	}
	return fallback
}

func (p *parser) int(key string, fallback int) int {
	return parse(p, key, fallback, strconv.Atoi)
}

func (p *parser) float(key string, fallback float64) float64 {
	return parse(p, key, fallback, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
}

func (p *parser) duration(key string, fallback time.Duration) time.Duration {
	return parse(p, key, fallback, time.ParseDuration)
}

func parse[T any](p *parser, key string, fallback T, conv func(string) (T, error)) T {
	raw, ok := p.lookup(key)
	if !ok || raw == "" {
		return fallback
	}

	value, err := conv(raw)
	if err != nil {
		p.errs = append(p.errs, errs.NewValueIsInvalidErrorWithCause(key, err))
		return fallback
	}
	return value
}
