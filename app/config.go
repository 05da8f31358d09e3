package app

import (
	"errors"

	"github.com/joefazee/streaks/app/api"
	"github.com/joefazee/streaks/app/betting"
	"github.com/joefazee/streaks/app/database"
	"github.com/joefazee/streaks/app/ledger"
	"github.com/joefazee/streaks/app/markets"
	"github.com/joefazee/streaks/app/oracle"
	"github.com/joefazee/streaks/app/profiles"
	"github.com/joefazee/streaks/app/settlement"
	"github.com/joefazee/streaks/internal/cache"
	"github.com/joefazee/streaks/internal/nexus"
	"github.com/joefazee/streaks/models"
)

const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

type SecurityConfig struct {
	SymmetricKey string `env:"SECURITY_SYMMETRIC_KEY"`
}

type Config struct {
	DB        database.Config
	Cache     cache.Config
	Security  SecurityConfig
	RateLimit api.RateLimitConfig

	Ledger     ledger.Config
	Profiles   profiles.Config
	Markets    markets.Config
	Betting    betting.Config
	Settlement settlement.Config
	Oracle     oracle.Config

	AppHost  string `env:"APP_HOST" env-default:"localhost"`
	AppPort  string `env:"APP_PORT" env-default:"8080"`
	Env      string `env:"APP_ENV" env-default:"development" validate:"oneof=development staging production"`
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
	Version  string `env:"APP_VERSION" env-default:"dev"`
}

// Validate runs every module's own checks after loading
func (c *Config) Validate() error {
	if len(c.Security.SymmetricKey) != 32 {
		return models.ErrInvalidSymmetricKey
	}
	if c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0 {
		return models.ErrInvalidRateLimit
	}
	return errors.Join(
		c.Ledger.Validate(),
		c.Profiles.Validate(),
		c.Markets.Validate(),
		c.Betting.Validate(),
		c.Settlement.Validate(),
		c.Oracle.Validate(),
	)
}

// IsDevelopment reports whether development-only routes may be mounted
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// LoadConfig loads the application configuration from environment variables or a config file.
func LoadConfig() (*Config, error) {
	c := &Config{}
	err := nexus.NewLoader().Load(c)
	return c, err
}
