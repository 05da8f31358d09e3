package profiles

import (
	"math"

	"github.com/shopspring/decimal"
)

// XP rewards
const (
	XPPerBet       = 10
	XPWinBase      = 50
	XPPerStreakWin = 5
	XPMarketCreate = 100
)

type tier struct {
	minStreak  int
	multiplier decimal.Decimal
}

// tiers is ordered from the highest threshold down
var tiers = []tier{
	{15, decimal.RequireFromString("3.5")},
	{10, decimal.NewFromInt(3)},
	{5, decimal.NewFromInt(2)},
	{3, decimal.RequireFromString("1.5")},
	{0, decimal.NewFromInt(1)},
}

// Multiplier returns the payout multiplier for a win streak
func Multiplier(streak int) decimal.Decimal {
	for _, t := range tiers {
		if streak >= t.minStreak {
			return t.multiplier
		}
	}
	return decimal.NewFromInt(1)
}

// NextTier returns the streak needed for the next multiplier step, or 0 at the top tier
func NextTier(streak int) int {
	next := 0
	for _, t := range tiers {
		if t.minStreak > streak {
			next = t.minStreak
		}
	}
	return next
}

// Level maps total XP to a level: floor(sqrt(xp/100)) + 1
func Level(xp int64) int {
	if xp <= 0 {
		return 1
	}
	return int(math.Floor(math.Sqrt(float64(xp)/100))) + 1
}

// WinXP is the experience awarded for a win that brings the streak to streak
func WinXP(streak int) int64 {
	return int64(XPWinBase + XPPerStreakWin*streak)
}
