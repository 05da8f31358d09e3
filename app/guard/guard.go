// Package guard holds the access and state checks that gate every market,
// bet and settlement mutation. Checks run on rows already loaded under lock
// and return before anything is written.
package guard

import (
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/joefazee/streaks/models"
	"github.com/shopspring/decimal"
)

// Guard checks who may act on a market or bet and whether its state allows it
type Guard struct {
	clock clockwork.Clock
}

// New creates a guard reading time from clock
func New(clock clockwork.Clock) *Guard {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Guard{clock: clock}
}

// CanResolve checks a manual or oracle resolution by caller
func (g *Guard) CanResolve(market *models.Market, caller uuid.UUID) error {
	if !market.IsCreator(caller) {
		return models.ErrUnauthorized
	}
	if market.Resolved {
		return models.ErrAlreadyResolved
	}
	if g.clock.Now().Before(market.ResolutionTime) {
		return models.ErrTooEarly
	}
	return nil
}

// CanResolveTo checks CanResolve and that winner is one of the market's outcomes
func (g *Guard) CanResolveTo(market *models.Market, caller uuid.UUID, winner int) error {
	if err := g.CanResolve(market, caller); err != nil {
		return err
	}
	if !market.HasOutcome(winner) {
		return models.ErrInvalidOutcome
	}
	return nil
}

// CanBet checks a new stake on outcome. A resolved market rejects every
// bet regardless of amount or outcome.
func (g *Guard) CanBet(market *models.Market, outcome int, amount decimal.Decimal) error {
	if market.Resolved {
		return models.ErrMarketResolved
	}
	if !amount.IsPositive() {
		return models.ErrInvalidInput
	}
	if !market.HasOutcome(outcome) {
		return models.ErrInvalidOutcome
	}
	if !g.clock.Now().Before(market.ResolutionTime) {
		return models.ErrBettingClosed
	}
	return nil
}

// CanSettle checks a winning claim. A losing bet yields ErrNotAWinner.
func (g *Guard) CanSettle(market *models.Market, bet *models.Bet, caller uuid.UUID) error {
	if !bet.IsOwnedBy(caller) {
		return models.ErrUnauthorized
	}
	if !market.Resolved {
		return models.ErrMarketNotResolved
	}
	if bet.Claimed {
		return models.ErrAlreadyClaimed
	}
	if !market.IsWinningOutcome(bet.OutcomeIndex) {
		return models.ErrNotAWinner
	}
	return nil
}

// CanSettleLoss checks that caller may apply the loss of their own bet
func (g *Guard) CanSettleLoss(market *models.Market, bet *models.Bet, caller uuid.UUID) error {
	if !bet.IsOwnedBy(caller) {
		return models.ErrUnauthorized
	}
	return g.canApplyLoss(market, bet)
}

// CanSweepBet checks a loss applied by the market creator on a bettor's behalf
func (g *Guard) CanSweepBet(market *models.Market, bet *models.Bet, caller uuid.UUID) error {
	if !market.IsCreator(caller) {
		return models.ErrUnauthorized
	}
	return g.canApplyLoss(market, bet)
}

func (g *Guard) canApplyLoss(market *models.Market, bet *models.Bet) error {
	if !market.Resolved {
		return models.ErrMarketNotResolved
	}
	if market.IsWinningOutcome(bet.OutcomeIndex) {
		return models.ErrNotALoser
	}
	if bet.LossSettled {
		return models.ErrAlreadySettled
	}
	return nil
}

// CanSweep checks that caller may settle every outstanding loss of market
func (g *Guard) CanSweep(market *models.Market, caller uuid.UUID) error {
	if !market.IsCreator(caller) {
		return models.ErrUnauthorized
	}
	if !market.Resolved {
		return models.ErrMarketNotResolved
	}
	return nil
}
