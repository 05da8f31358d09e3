package settlement

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/joefazee/streaks/app/ledger"
	"github.com/joefazee/streaks/models"
)

var bpsDenominator = decimal.NewFromInt(10000)

// Payout is the breakdown of a winning claim. Every figure is rounded down
// to the configured scale, so the postings it produces balance exactly.
type Payout struct {
	Stake       decimal.Decimal
	Ratio       decimal.Decimal
	Base        decimal.Decimal
	Multiplier  decimal.Decimal
	Gross       decimal.Decimal
	Winnings    decimal.Decimal
	PlatformFee decimal.Decimal
	CreatorFee  decimal.Decimal
	Net         decimal.Decimal
	// StreakBonus is what the multiplier added to Net over a 1.0x payout
	StreakBonus decimal.Decimal
}

// ComputePayout prices a winning stake of amount against the market's pools.
// The stake's share of the whole pool is scaled by multiplier and fees are
// taken from the winnings only.
func ComputePayout(amount, totalPool, winningPool, multiplier decimal.Decimal, feeBpsPlatform, feeBpsCreator int, scale int32) (Payout, error) {
	if !amount.IsPositive() || !winningPool.IsPositive() || totalPool.LessThan(winningPool) {
		return Payout{}, fmt.Errorf("%w: stake %s against pool %s of %s", models.ErrInvalidInput, amount, winningPool, totalPool)
	}
	if multiplier.LessThan(decimal.NewFromInt(1)) {
		return Payout{}, fmt.Errorf("%w: multiplier %s", models.ErrInvalidInput, multiplier)
	}

	base := amount.Mul(totalPool).Div(winningPool).RoundDown(scale)
	p := price(amount, base, multiplier, feeBpsPlatform, feeBpsCreator, scale)
	p.Ratio = totalPool.Div(winningPool).RoundDown(4)

	flat := price(amount, base, decimal.NewFromInt(1), feeBpsPlatform, feeBpsCreator, scale)
	p.StreakBonus = p.Net.Sub(flat.Net)
	return p, nil
}

func price(amount, base, multiplier decimal.Decimal, feeBpsPlatform, feeBpsCreator int, scale int32) Payout {
	gross := base.Mul(multiplier).RoundDown(scale)
	winnings := gross.Sub(amount)
	platformFee := fee(winnings, feeBpsPlatform, scale)
	creatorFee := fee(winnings, feeBpsCreator, scale)

	return Payout{
		Stake:       amount,
		Base:        base,
		Multiplier:  multiplier,
		Gross:       gross,
		Winnings:    winnings,
		PlatformFee: platformFee,
		CreatorFee:  creatorFee,
		Net:         gross.Sub(platformFee).Sub(creatorFee),
	}
}

func fee(winnings decimal.Decimal, bps int, scale int32) decimal.Decimal {
	if !winnings.IsPositive() || bps <= 0 {
		return decimal.Zero
	}
	return winnings.Mul(decimal.NewFromInt(int64(bps))).Div(bpsDenominator).RoundDown(scale)
}

// Postings moves the payout out of the market escrow and the insurance fund,
// which carries the streak bonus above the pari-mutuel share.
func (p Payout) Postings(user, market, creator uuid.UUID) []ledger.Posting {
	return []ledger.Posting{
		ledger.Debit(ledger.EscrowAccount(market), p.Base, models.ReasonPayout),
		ledger.Debit(ledger.InsuranceFundAccount(), p.Gross.Sub(p.Base), models.ReasonStreakBonus),
		ledger.Credit(ledger.UserAccount(user), p.Net, models.ReasonPayout),
		ledger.Credit(ledger.PlatformAccount(), p.PlatformFee, models.ReasonPlatformFee),
		ledger.Credit(ledger.CreatorAccount(creator), p.CreatorFee, models.ReasonCreatorFee),
	}
}
