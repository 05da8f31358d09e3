package oracle

import (
	"time"

	"github.com/joefazee/streaks/models"
	"github.com/shopspring/decimal"
)

const (
	StaticProvider = "static"
	HermesProvider = "hermes"
)

// Config selects the price source used for oracle resolution
type Config struct {
	Provider  string            `env:"ORACLE_PROVIDER" env-default:"static"`
	HermesURL string            `env:"ORACLE_HERMES_URL" env-default:"https://hermes.pyth.network"`
	Feeds     map[string]string `env:"ORACLE_FEEDS" env-default:"SOL/USD:ef0d8b6fda2ceba41da15d4095d1da392a0d2f8ed0c6c7bc0f4cfac8c280b56d,BTC/USD:e62df6c8b4a85fe1a67db44dc12de5db330f7ac66b72dc658afedf0f4a415b43,ETH/USD:ff61491a931112ddf1bd8147cd1b641375f79f5825126d665480874634fd0ace"`
	// StaticPrices seeds the static provider
	StaticPrices map[string]string `env:"ORACLE_STATIC_PRICES" env-default:"SOL/USD:145.32,BTC/USD:98234.56,ETH/USD:4123.45"`

	MaxStaleness      time.Duration `env:"ORACLE_MAX_STALENESS" env-default:"60s"`
	MaxConfidence     string        `env:"ORACLE_MAX_CONFIDENCE_RATIO" env-default:"0.02"`
	RequestTimeout    time.Duration `env:"ORACLE_REQUEST_TIMEOUT" env-default:"5s"`
	RequestsPerSecond float64       `env:"ORACLE_RPS" env-default:"5"`
	Burst             int           `env:"ORACLE_BURST" env-default:"5"`
	QuoteTTL          time.Duration `env:"ORACLE_QUOTE_TTL" env-default:"5s"`
}

// GetDefaultConfig returns default oracle configuration
func GetDefaultConfig() *Config {
	return &Config{
		Provider:  StaticProvider,
		HermesURL: "https://hermes.pyth.network",
		Feeds: map[string]string{
			"SOL/USD": "ef0d8b6fda2ceba41da15d4095d1da392a0d2f8ed0c6c7bc0f4cfac8c280b56d",
			"BTC/USD": "e62df6c8b4a85fe1a67db44dc12de5db330f7ac66b72dc658afedf0f4a415b43",
			"ETH/USD": "ff61491a931112ddf1bd8147cd1b641375f79f5825126d665480874634fd0ace",
		},
		StaticPrices: map[string]string{
			"SOL/USD": "145.32",
			"BTC/USD": "98234.56",
			"ETH/USD": "4123.45",
		},
		MaxStaleness:      time.Minute,
		MaxConfidence:     "0.02",
		RequestTimeout:    5 * time.Second,
		RequestsPerSecond: 5,
		Burst:             5,
		QuoteTTL:          5 * time.Second,
	}
}

// MaxConfidenceRatio is the widest confidence interval, relative to the
// price, that still counts as a usable quote
func (c *Config) MaxConfidenceRatio() decimal.Decimal {
	d, err := decimal.NewFromString(c.MaxConfidence)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Provider != StaticProvider && c.Provider != HermesProvider {
		return models.ErrInvalidOracleConfig
	}
	if c.Provider == HermesProvider && (c.HermesURL == "" || len(c.Feeds) == 0) {
		return models.ErrInvalidOracleConfig
	}
	for _, p := range c.StaticPrices {
		d, err := decimal.NewFromString(p)
		if err != nil || !d.IsPositive() {
			return models.ErrInvalidOracleConfig
		}
	}

	type validation struct {
		ok  bool
		err error
	}

	checks := []validation{
		{c.MaxStaleness > 0, models.ErrInvalidOracleConfig},
		{c.MaxConfidenceRatio().IsPositive(), models.ErrInvalidOracleConfig},
		{c.RequestTimeout > 0, models.ErrInvalidOracleConfig},
		{c.RequestsPerSecond > 0 && c.Burst > 0, models.ErrInvalidRateLimit},
		{c.QuoteTTL >= 0, models.ErrInvalidOracleConfig},
	}
	for _, check := range checks {
		if !check.ok {
			return check.err
		}
	}
	return nil
}
