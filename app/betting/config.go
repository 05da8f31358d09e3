package betting

import (
	"github.com/joefazee/streaks/models"
)

// Config represents the configuration for the betting module
type Config struct {
	// AmountScale is the number of decimal places a stake may carry
	AmountScale int32 `env:"BET_AMOUNT_SCALE" env-default:"9"`
	MaxPerPage  int   `env:"BET_MAX_PER_PAGE" env-default:"100"`
}

// Validate validates the betting configuration
func (c *Config) Validate() error {
	type validation struct {
		ok  bool
		err error
	}

	checks := []validation{
		{c.AmountScale >= 0 && c.AmountScale <= 9, models.ErrInvalidBetAmount},
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
		AmountScale: 9,
		MaxPerPage:  100,
	}
}
