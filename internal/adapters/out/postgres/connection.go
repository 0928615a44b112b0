package postgres

import (
	"fmt"

	"dinesmart/internal/adapters/out/postgres/menurepo"
	"dinesmart/internal/adapters/out/postgres/orderrepo"

	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	// DriverPgx connects through pgx, the GORM postgres driver default.
	DriverPgx = "pgx"
	// DriverPQ connects through lib/pq.
	DriverPQ = "postgres"
)

// ConnectionConfig describes how to reach the database.
type ConnectionConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	Driver   string
}

// DSN renders the config as a libpq keyword/value connection string.
func (c ConnectionConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// Open connects to PostgreSQL with the configured driver.
func Open(cfg ConnectionConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "", DriverPgx:
		dialector = gormpostgres.Open(cfg.DSN())
	case DriverPQ:
		dialector = gormpostgres.New(gormpostgres.Config{
			DriverName: DriverPQ,
			DSN:        cfg.DSN(),
		})
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the schema of every repository.
func Migrate(db *gorm.DB) error {
	if err := menurepo.Migrate(db); err != nil {
		return fmt.Errorf("migrate menu: %w", err)
	}
	if err := orderrepo.Migrate(db); err != nil {
		return fmt.Errorf("migrate orders: %w", err)
	}
	return nil
}
