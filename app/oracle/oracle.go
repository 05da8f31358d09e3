// Package oracle supplies asset prices for markets that resolve against a
// price condition.
package oracle

import (
	"context"
	"fmt"
	"time"

	"github.com/joefazee/streaks/models"
	"github.com/shopspring/decimal"
)

// Quote is one price observation
type Quote struct {
	Symbol      string          `json:"symbol"`
	Price       decimal.Decimal `json:"price"`
	Confidence  decimal.Decimal `json:"confidence"`
	PublishedAt time.Time       `json:"published_at"`
}

// PriceOracle returns usable prices or models.ErrOracleUnavailable
type PriceOracle interface {
	GetPrice(ctx context.Context, symbol string) (*Quote, error)
	CheckCondition(ctx context.Context, cond models.OracleCondition) (bool, error)
}

// checkQuote rejects quotes that are too old or too uncertain to settle on
func checkQuote(q *Quote, now time.Time, maxAge time.Duration, maxConfidence decimal.Decimal) error {
	if !q.Price.IsPositive() {
		return fmt.Errorf("%w: non-positive price for %s", models.ErrOracleUnavailable, q.Symbol)
	}
	if age := now.Sub(q.PublishedAt); age > maxAge {
		return fmt.Errorf("%w: %s quote is %s old", models.ErrOracleUnavailable, q.Symbol, age)
	}
	if q.Confidence.Div(q.Price).GreaterThan(maxConfidence) {
		return fmt.Errorf("%w: %s confidence %s too wide", models.ErrOracleUnavailable, q.Symbol, q.Confidence)
	}
	return nil
}

func checkCondition(ctx context.Context, o PriceOracle, cond models.OracleCondition) (bool, error) {
	if err := cond.Validate(); err != nil {
		return false, err
	}
	q, err := o.GetPrice(ctx, cond.Symbol)
	if err != nil {
		return false, err
	}
	return cond.Evaluate(q.Price), nil
}
