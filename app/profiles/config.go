package profiles

import (
	"time"

	"github.com/joefazee/streaks/models"
	"github.com/shopspring/decimal"
)

// Config holds insurance pricing and profile caching settings
type Config struct {
	InsuranceCost     string        `env:"PROFILES_INSURANCE_COST" env-default:"0.1"`
	InsuranceDuration time.Duration `env:"PROFILES_INSURANCE_DURATION" env-default:"24h"`
	InsuranceUses     int           `env:"PROFILES_INSURANCE_USES" env-default:"1"`
	CacheTTL          time.Duration `env:"PROFILES_CACHE_TTL" env-default:"30s"`
}

func GetDefaultConfig() *Config {
	return &Config{
		InsuranceCost:     "0.1",
		InsuranceDuration: 24 * time.Hour,
		InsuranceUses:     1,
		CacheTTL:          30 * time.Second,
	}
}

// Cost returns the parsed insurance price
func (c *Config) Cost() decimal.Decimal {
	d, _ := decimal.NewFromString(c.InsuranceCost)
	return d
}

func (c *Config) Validate() error {
	type validation struct {
		ok  bool
		err error
	}

	cost, err := decimal.NewFromString(c.InsuranceCost)
	checks := []validation{
		{err == nil && cost.IsPositive(), models.ErrInvalidInsuranceCost},
		{c.InsuranceDuration > 0, models.ErrInvalidInsuranceDuration},
		{c.InsuranceUses > 0, models.ErrInvalidInsuranceUses},
		{c.CacheTTL >= 0, models.ErrInvalidInput},
	}
	for _, check := range checks {
		if !check.ok {
			return check.err
		}
	}
	return nil
}
