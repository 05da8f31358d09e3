package markets

import (
	"github.com/joefazee/streaks/models"
	"github.com/shopspring/decimal"
)

var (
	hundred        = decimal.NewFromInt(100)
	minProbability = decimal.NewFromInt(1)
	maxProbability = decimal.NewFromInt(99)
)

// ImpliedProbability is an outcome's share of the total pool as a
// percentage clamped to [1, 99]. Empty markets split evenly.
func ImpliedProbability(totalPool, outcomePool decimal.Decimal, outcomes int) decimal.Decimal {
	if !totalPool.IsPositive() {
		if outcomes < 1 {
			return decimal.Zero
		}
		return hundred.Div(decimal.NewFromInt(int64(outcomes))).Round(2)
	}
	if !outcomePool.IsPositive() {
		return minProbability
	}

	p := outcomePool.Div(totalPool).Mul(hundred).Round(2)
	if p.LessThan(minProbability) {
		return minProbability
	}
	if p.GreaterThan(maxProbability) {
		return maxProbability
	}
	return p
}

// PayoutRatio is the unamplified amount returned per unit staked on an
// outcome if it wins, before fees. Zero when nothing is staked on it.
func PayoutRatio(totalPool, outcomePool decimal.Decimal) decimal.Decimal {
	if !outcomePool.IsPositive() {
		return decimal.Zero
	}
	return totalPool.Div(outcomePool).RoundDown(4)
}

// quoteOutcomes prices every outcome of m
func quoteOutcomes(m *models.Market) []OutcomeResponse {
	total := m.TotalPool()
	out := make([]OutcomeResponse, len(m.Outcomes))
	for i, label := range m.Outcomes {
		pool := m.PoolFor(i)
		out[i] = OutcomeResponse{
			Index:       i,
			Label:       label,
			Pool:        pool,
			Probability: ImpliedProbability(total, pool, len(m.Outcomes)),
			PayoutRatio: PayoutRatio(total, pool),
			Winner:      m.IsWinningOutcome(i),
		}
	}
	return out
}
