package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Bet is a user's single position on a market outcome
type Bet struct {
	ID            uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	MarketID      uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_bets_market_user" json:"market_id"`
	UserID        uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_bets_market_user;index" json:"user_id"`
	OutcomeIndex  int              `gorm:"not null" json:"outcome_index"`
	Amount        decimal.Decimal  `gorm:"type:numeric(30,9);not null;check:amount > 0" json:"amount"`
	PlacedAt      time.Time        `gorm:"type:timestamptz;not null" json:"placed_at"`
	Claimed       bool             `gorm:"not null;default:false" json:"claimed"`
	ClaimedAt     *time.Time       `gorm:"type:timestamptz" json:"claimed_at"`
	Payout        *decimal.Decimal `gorm:"type:numeric(30,9)" json:"payout"`
	LossSettled   bool             `gorm:"not null;default:false" json:"loss_settled"`
	LossSettledAt *time.Time       `gorm:"type:timestamptz" json:"loss_settled_at"`
	CreatedAt     time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time        `gorm:"autoUpdateTime" json:"updated_at"`

	Market *Market `gorm:"foreignKey:MarketID" json:"market,omitempty"`
}

// TableName specifies the table name for Bet model
func (*Bet) TableName() string {
	return "bets"
}

// IsOwnedBy reports whether user placed the bet
func (b *Bet) IsOwnedBy(user uuid.UUID) bool {
	return b.UserID == user
}

// IsSettled reports whether the bet has been claimed or its loss applied
func (b *Bet) IsSettled() bool {
	return b.Claimed || b.LossSettled
}

// MarkClaimed records a winning payout. It can only succeed once.
func (b *Bet) MarkClaimed(payout decimal.Decimal, at time.Time) error {
	if b.Claimed {
		return ErrAlreadyClaimed
	}
	b.Claimed = true
	b.ClaimedAt = &at
	b.Payout = &payout
	return nil
}

// MarkLossSettled records that the loss was applied to the owner's streak
func (b *Bet) MarkLossSettled(at time.Time) error {
	if b.LossSettled {
		return ErrAlreadySettled
	}
	b.LossSettled = true
	b.LossSettledAt = &at
	return nil
}

// Validate performs validation on the bet model
func (b *Bet) Validate() error {
	if b.UserID == uuid.Nil {
		return ErrInvalidUserID
	}
	if b.MarketID == uuid.Nil {
		return ErrInvalidMarketID
	}
	if b.OutcomeIndex < 0 || b.OutcomeIndex >= MaxOutcomes {
		return ErrInvalidOutcome
	}
	if !b.Amount.IsPositive() {
		return ErrInvalidBetAmount
	}
	return nil
}
