package profiles

import (
	"testing"
	"time"

	"github.com/joefazee/streaks/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	c := GetDefaultConfig()
	require.NoError(t, c.Validate())
	assert.Equal(t, "0.1", c.Cost().String())

	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"unparsable cost", func(c *Config) { c.InsuranceCost = "dime" }, models.ErrInvalidInsuranceCost},
		{"zero cost", func(c *Config) { c.InsuranceCost = "0" }, models.ErrInvalidInsuranceCost},
		{"zero duration", func(c *Config) { c.InsuranceDuration = 0 }, models.ErrInvalidInsuranceDuration},
		{"no uses", func(c *Config) { c.InsuranceUses = 0 }, models.ErrInvalidInsuranceUses},
		{"negative ttl", func(c *Config) { c.CacheTTL = -time.Second }, models.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := GetDefaultConfig()
			tt.modify(c)
			assert.ErrorIs(t, c.Validate(), tt.want)
		})
	}
}
