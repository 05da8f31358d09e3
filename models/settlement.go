package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SettlementType represents the type of settlement
type SettlementType string

const (
	SettlementTypeWin  SettlementType = "win"
	SettlementTypeLoss SettlementType = "loss"
)

// Settlement is the immutable audit record of a settled bet
type Settlement struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	BetID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"bet_id"`
	MarketID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"market_id"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Type          SettlementType  `gorm:"column:settlement_type;type:varchar(20);not null" json:"settlement_type"`
	Amount        decimal.Decimal `gorm:"type:numeric(30,9);not null" json:"amount"`
	GrossPayout   decimal.Decimal `gorm:"type:numeric(30,9);not null;default:0" json:"gross_payout"`
	PlatformFee   decimal.Decimal `gorm:"type:numeric(30,9);not null;default:0" json:"platform_fee"`
	CreatorFee    decimal.Decimal `gorm:"type:numeric(30,9);not null;default:0" json:"creator_fee"`
	NetPayout     decimal.Decimal `gorm:"type:numeric(30,9);not null;default:0" json:"net_payout"`
	StreakBonus   decimal.Decimal `gorm:"type:numeric(30,9);not null;default:0" json:"streak_bonus"`
	Multiplier    decimal.Decimal `gorm:"type:numeric(6,2);not null;default:1" json:"multiplier"`
	StreakAfter   int             `gorm:"not null" json:"streak_after"`
	InsuranceUsed bool            `gorm:"not null;default:false" json:"insurance_used"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for Settlement model
func (*Settlement) TableName() string {
	return "settlements"
}

// BeforeCreate sets up the model before creation
func (s *Settlement) BeforeCreate(_ *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// IsWin checks if this is a winning settlement
func (s *Settlement) IsWin() bool {
	return s.Type == SettlementTypeWin
}

// TotalFees returns the platform and creator fee combined
func (s *Settlement) TotalFees() decimal.Decimal {
	return s.PlatformFee.Add(s.CreatorFee)
}

// NetProfit is the amount the bettor gained over their stake
func (s *Settlement) NetProfit() decimal.Decimal {
	if !s.IsWin() {
		return s.Amount.Neg()
	}
	return s.NetPayout.Sub(s.Amount)
}
