package settlement

import (
	"github.com/joefazee/streaks/models"
)

// Config represents the configuration for the settlement module
type Config struct {
	// SweepConcurrency bounds how many losing bets a sweep settles at once
	SweepConcurrency int   `env:"SETTLEMENT_SWEEP_CONCURRENCY" env-default:"4"`
	AmountScale      int32 `env:"SETTLEMENT_AMOUNT_SCALE" env-default:"9"`
	MaxPerPage       int   `env:"SETTLEMENT_MAX_PER_PAGE" env-default:"100"`
}

// Validate validates the settlement configuration
func (c *Config) Validate() error {
	type validation struct {
		ok  bool
		err error
	}

	checks := []validation{
		{c.SweepConcurrency >= 1 && c.SweepConcurrency <= 64, models.ErrInvalidSweepConcurrency},
		{c.AmountScale >= 0 && c.AmountScale <= 9, models.ErrInvalidAmount},
		{c.MaxPerPage > 0, models.ErrInvalidInput},
	}
	for _, check := range checks {
		if !check.ok {
			return check.err
		}
	}
	return nil
}

// GetDefaultConfig returns the default configuration
func GetDefaultConfig() *Config {
	return &Config{
		SweepConcurrency: 4,
		AmountScale:      9,
		MaxPerPage:       100,
	}
}
