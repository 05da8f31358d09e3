package database

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/joefazee/streaks/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gLogger "gorm.io/gorm/logger"

	// drivers used by the migrator
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

type Config struct {
	Host         string `env:"DB_HOST"`
	Port         string `env:"DB_PORT" env-default:"5432"`
	User         string `env:"DB_USER"`
	Password     string `env:"DB_PASSWORD"`
	Database     string `env:"DB_NAME"`
	UseSSL       bool   `env:"DB_SSL_MODE"`
	LogQuery     bool   `env:"DB_LOG_QUERY"`
	MaxOpenConns int    `env:"DB_MAX_OPEN_CONNS" env-default:"10"`
	MaxIdleConns int    `env:"DB_MAX_IDLE_CONNS" env-default:"5"`

	AutoMigrate   bool   `env:"DB_AUTO_MIGRATE" env-default:"false"`
	MigrationsDir string `env:"DB_MIGRATIONS_DIR" env-default:"migrations"`
}

func (c *Config) Validate() error {
	if c.Host == "" ||
		c.Password == "" || c.Database == "" || c.User == "" {
		return models.ErrDatabaseCredentialNotConfigured
	}
	return nil
}

func (c *Config) sslMode() string {
	if c.UseSSL {
		return "require"
	}
	return "disable"
}

// DSN returns the key/value connection string used by gorm
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Database, c.Port, c.sslMode())
}

// URL returns the postgres:// form used by the migrator
func (c *Config) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, c.sslMode())
}

// GormConfig returns the gorm settings shared by the server and the test suites.
// Unique violations are translated to gorm.ErrDuplicatedKey.
func GormConfig(logQuery bool) *gorm.Config {
	cfg := &gorm.Config{TranslateError: true}
	if !logQuery {
		cfg.Logger = gLogger.Discard
	}
	return cfg
}

func New(c *Config) (*gorm.DB, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	db, err := gorm.Open(postgres.Open(c.DSN()), GormConfig(c.LogQuery))
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB from gorm: %w", err)
	}

	sqlDB.SetMaxIdleConns(c.MaxIdleConns)
	sqlDB.SetMaxOpenConns(c.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// Migrate applies every pending migration found in dir
func Migrate(dir, databaseURL string) error {
	m, err := migrate.New("file://"+dir, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}
