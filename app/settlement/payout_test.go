package settlement

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joefazee/streaks/app/ledger"
	"github.com/joefazee/streaks/models"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputePayout(t *testing.T) {
	tests := []struct {
		name        string
		amount      string
		total       string
		pool        string
		multiplier  string
		wantGross   string
		wantFee     string
		wantNet     string
		wantBonus   string
	}{
		{
			name: "even two sided market at base tier", amount: "1", total: "2", pool: "1", multiplier: "1",
			wantGross: "2", wantFee: "0.02", wantNet: "1.96", wantBonus: "0",
		},
		{
			name: "streak multiplier scales the share", amount: "1", total: "2", pool: "1", multiplier: "1.5",
			wantGross: "3", wantFee: "0.04", wantNet: "2.92", wantBonus: "0.96",
		},
		{
			name: "sole winner pays no fees", amount: "5", total: "5", pool: "5", multiplier: "1",
			wantGross: "5", wantFee: "0", wantNet: "5", wantBonus: "0",
		},
		{
			name: "rounds down to nine places", amount: "1", total: "10", pool: "3", multiplier: "1",
			wantGross: "3.333333333", wantFee: "0.046666666", wantNet: "3.240000001", wantBonus: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ComputePayout(d(tt.amount), d(tt.total), d(tt.pool), d(tt.multiplier), 200, 200, 9)
			require.NoError(t, err)

			assert.True(t, d(tt.wantGross).Equal(p.Gross), "gross %s", p.Gross)
			assert.True(t, d(tt.wantFee).Equal(p.PlatformFee), "platform fee %s", p.PlatformFee)
			assert.True(t, d(tt.wantFee).Equal(p.CreatorFee), "creator fee %s", p.CreatorFee)
			assert.True(t, d(tt.wantNet).Equal(p.Net), "net %s", p.Net)
			assert.True(t, d(tt.wantBonus).Equal(p.StreakBonus), "bonus %s", p.StreakBonus)
			assert.True(t, p.Net.Add(p.PlatformFee).Add(p.CreatorFee).Equal(p.Gross))
		})
	}

	t.Run("fees only touch winnings", func(t *testing.T) {
		p, err := ComputePayout(d("2"), d("3"), d("2"), d("1"), 200, 200, 9)
		require.NoError(t, err)
		assert.True(t, d("1").Equal(p.Winnings))
		assert.True(t, d("0.02").Equal(p.PlatformFee))
		assert.True(t, d("2.96").Equal(p.Net))
		assert.Equal(t, "1.5", p.Ratio.String())
	})

	t.Run("rejects impossible pools", func(t *testing.T) {
		_, err := ComputePayout(d("1"), d("2"), d("0"), d("1"), 200, 200, 9)
		assert.ErrorIs(t, err, models.ErrInvalidInput)

		_, err = ComputePayout(d("1"), d("1"), d("2"), d("1"), 200, 200, 9)
		assert.ErrorIs(t, err, models.ErrInvalidInput)

		_, err = ComputePayout(d("0"), d("2"), d("1"), d("1"), 200, 200, 9)
		assert.ErrorIs(t, err, models.ErrInvalidInput)

		_, err = ComputePayout(d("1"), d("2"), d("1"), d("0.5"), 200, 200, 9)
		assert.ErrorIs(t, err, models.ErrInvalidInput)
	})
}

func TestPayout_Postings(t *testing.T) {
	user, market, creator := uuid.New(), uuid.New(), uuid.New()

	p, err := ComputePayout(d("1"), d("10"), d("3"), d("2"), 200, 200, 9)
	require.NoError(t, err)

	postings := p.Postings(user, market, creator)
	require.Len(t, postings, 5)
	assert.True(t, ledger.Balanced(postings))

	assert.Equal(t, ledger.EscrowAccount(market), postings[0].Account)
	assert.True(t, p.Base.Neg().Equal(postings[0].Amount))

	assert.Equal(t, ledger.InsuranceFundAccount(), postings[1].Account)
	assert.True(t, p.Gross.Sub(p.Base).Neg().Equal(postings[1].Amount))
	assert.Equal(t, models.ReasonStreakBonus, postings[1].Reason)

	assert.Equal(t, ledger.UserAccount(user), postings[2].Account)
	assert.True(t, p.Net.Equal(postings[2].Amount))
	assert.Equal(t, ledger.CreatorAccount(creator), postings[4].Account)
}
