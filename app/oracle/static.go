package oracle

import (
	"context"
	"fmt"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/joefazee/streaks/models"
	"github.com/shopspring/decimal"
)

// StaticOracle serves fixed prices, always fresh at the clock's current time
type StaticOracle struct {
	mu     sync.RWMutex
	prices map[string]decimal.Decimal
	clock  clockwork.Clock
}

// NewStaticOracle creates an oracle from symbol to decimal price strings
func NewStaticOracle(prices map[string]string, clock clockwork.Clock) (*StaticOracle, error) {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	o := &StaticOracle{prices: make(map[string]decimal.Decimal, len(prices)), clock: clock}
	for symbol, p := range prices {
		d, err := decimal.NewFromString(p)
		if err != nil {
			return nil, fmt.Errorf("invalid static price for %s: %w", symbol, err)
		}
		o.prices[symbol] = d
	}
	return o, nil
}

// Set replaces the price for symbol
func (o *StaticOracle) Set(symbol string, price decimal.Decimal) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.prices[symbol] = price
}

// Remove makes symbol unavailable
func (o *StaticOracle) Remove(symbol string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.prices, symbol)
}

func (o *StaticOracle) GetPrice(_ context.Context, symbol string) (*Quote, error) {
	o.mu.RLock()
	price, ok := o.prices[symbol]
	o.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: no price for %s", models.ErrOracleUnavailable, symbol)
	}
	return &Quote{Symbol: symbol, Price: price, PublishedAt: o.clock.Now()}, nil
}

func (o *StaticOracle) CheckCondition(ctx context.Context, cond models.OracleCondition) (bool, error) {
	return checkCondition(ctx, o, cond)
}
