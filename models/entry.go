package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// EntryReason describes why funds moved
type EntryReason string

const (
	ReasonDeposit      EntryReason = "deposit"
	ReasonBetStake     EntryReason = "bet_stake"
	ReasonPayout       EntryReason = "payout"
	ReasonStreakBonus  EntryReason = "streak_bonus"
	ReasonPlatformFee  EntryReason = "platform_fee"
	ReasonCreatorFee   EntryReason = "creator_fee"
	ReasonInsuranceBuy EntryReason = "insurance_purchase"
)

// Entry is one immutable line of a balanced ledger posting
type Entry struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	TxRef         uuid.UUID       `gorm:"type:uuid;not null;index" json:"tx_ref"`
	AccountID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	Amount        decimal.Decimal `gorm:"type:numeric(30,9);not null" json:"amount"`
	BalanceBefore decimal.Decimal `gorm:"type:numeric(30,9);not null" json:"balance_before"`
	BalanceAfter  decimal.Decimal `gorm:"type:numeric(30,9);not null" json:"balance_after"`
	Reason        EntryReason     `gorm:"type:varchar(32);not null" json:"reason"`
	ReferenceID   *uuid.UUID      `gorm:"type:uuid;index" json:"reference_id"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for Entry model
func (*Entry) TableName() string {
	return "ledger_entries"
}

// BeforeCreate sets up the model before creation
func (e *Entry) BeforeCreate(_ *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// IsCredit checks if the entry adds funds
func (e *Entry) IsCredit() bool {
	return e.Amount.IsPositive()
}

// IsBalanceConsistent checks the before/after balances agree with the amount
func (e *Entry) IsBalanceConsistent() bool {
	return e.BalanceBefore.Add(e.Amount).Equal(e.BalanceAfter)
}
