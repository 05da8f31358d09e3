package markets

import (
	"github.com/joefazee/streaks/models"
)

// Config represents the configuration for the markets module
type Config struct {
	FeeBpsPlatform  int   `env:"MARKET_FEE_BPS_PLATFORM" env-default:"200"`
	FeeBpsCreator   int   `env:"MARKET_FEE_BPS_CREATOR" env-default:"200"`
	CreatorXPReward int64 `env:"MARKET_CREATOR_XP" env-default:"100"`
	MaxNonceLength  int   `env:"MARKET_MAX_NONCE_LENGTH" env-default:"64"`
	MaxPerPage      int   `env:"MARKET_MAX_PER_PAGE" env-default:"100"`
}

// Validate validates the market configuration
func (c *Config) Validate() error {
	type validation struct {
		ok  bool
		err error
	}

	checks := []validation{
		{c.FeeBpsPlatform >= 0 && c.FeeBpsCreator >= 0, models.ErrInvalidFeeBps},
		{c.FeeBpsPlatform+c.FeeBpsCreator < 10000, models.ErrInvalidFeeBps},
		{c.CreatorXPReward >= 0, models.ErrInvalidXPReward},
		{c.MaxNonceLength > 0 && c.MaxNonceLength <= 64, models.ErrInvalidInput},
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
		FeeBpsPlatform:  200,
		FeeBpsCreator:   200,
		CreatorXPReward: 100,
		MaxNonceLength:  64,
		MaxPerPage:      100,
	}
}
