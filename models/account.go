package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountKind identifies who an account holds funds for
type AccountKind string

const (
	AccountUser          AccountKind = "user"
	AccountEscrow        AccountKind = "escrow"
	AccountPlatform      AccountKind = "platform"
	AccountCreator       AccountKind = "creator"
	AccountInsuranceFund AccountKind = "insurance_fund"
)

// IsValid reports whether k is a known kind
func (k AccountKind) IsValid() bool {
	switch k {
	case AccountUser, AccountEscrow, AccountPlatform, AccountCreator, AccountInsuranceFund:
		return true
	}
	return false
}

// Account is a custody balance. IDs are derived from the owner so postings
// never need a lookup by owner.
type Account struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Kind      AccountKind     `gorm:"type:varchar(20);not null;index" json:"kind"`
	OwnerID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"owner_id"`
	Balance   decimal.Decimal `gorm:"type:numeric(30,9);not null;default:0;check:balance >= 0" json:"balance"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for Account model
func (*Account) TableName() string {
	return "accounts"
}

// CanDebit checks if the account can cover amount
func (a *Account) CanDebit(amount decimal.Decimal) bool {
	return a.Balance.GreaterThanOrEqual(amount)
}

// Apply adds a signed amount to the balance
func (a *Account) Apply(amount decimal.Decimal) error {
	if amount.IsNegative() && !a.CanDebit(amount.Neg()) {
		return ErrInsufficientFunds
	}
	a.Balance = a.Balance.Add(amount)
	return nil
}

// Validate performs validation on the account model
func (a *Account) Validate() error {
	if a.ID == uuid.Nil {
		return ErrInvalidInput
	}
	if !a.Kind.IsValid() {
		return ErrInvalidAccountKind
	}
	if a.Balance.IsNegative() {
		return ErrNegativeBalance
	}
	return nil
}
