package ledger

import (
	"github.com/joefazee/streaks/models"
	"github.com/shopspring/decimal"
)

// Config holds ledger settings. Amounts are decimal strings.
type Config struct {
	AirdropEnabled    bool   `env:"LEDGER_AIRDROP_ENABLED" env-default:"false"`
	MaxAirdrop        string `env:"LEDGER_MAX_AIRDROP" env-default:"10"`
	InsuranceFundSeed string `env:"LEDGER_INSURANCE_FUND_SEED" env-default:"0"`
	MaxEntriesPerPage int    `env:"LEDGER_MAX_ENTRIES_PER_PAGE" env-default:"100"`
}

func GetDefaultConfig() *Config {
	return &Config{
		AirdropEnabled:    false,
		MaxAirdrop:        "10",
		InsuranceFundSeed: "0",
		MaxEntriesPerPage: 100,
	}
}

// MaxAirdropAmount returns the parsed airdrop cap
func (c *Config) MaxAirdropAmount() decimal.Decimal {
	d, _ := decimal.NewFromString(c.MaxAirdrop)
	return d
}

// FundSeed returns the parsed insurance fund seed
func (c *Config) FundSeed() decimal.Decimal {
	d, _ := decimal.NewFromString(c.InsuranceFundSeed)
	return d
}

func (c *Config) Validate() error {
	maxAirdrop, err := decimal.NewFromString(c.MaxAirdrop)
	if err != nil || !maxAirdrop.IsPositive() {
		return models.ErrInvalidAmount
	}
	seed, err := decimal.NewFromString(c.InsuranceFundSeed)
	if err != nil || seed.IsNegative() {
		return models.ErrInvalidAmount
	}
	if c.MaxEntriesPerPage <= 0 {
		return models.ErrInvalidInput
	}
	return nil
}
