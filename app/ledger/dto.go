package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/joefazee/streaks/models"
	"github.com/shopspring/decimal"
)

// AirdropRequest credits test funds to the caller
// @Description Development only deposit into the caller's custody account
type AirdropRequest struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"5"`
}

// BalanceResponse represents a custody account balance
type BalanceResponse struct {
	AccountID uuid.UUID       `json:"account_id"`
	Kind      string          `json:"kind"`
	OwnerID   uuid.UUID       `json:"owner_id"`
	Balance   decimal.Decimal `json:"balance" swaggertype:"string"`
}

// EntryResponse represents one ledger line
type EntryResponse struct {
	ID           uuid.UUID       `json:"id"`
	TxRef        uuid.UUID       `json:"tx_ref"`
	Amount       decimal.Decimal `json:"amount" swaggertype:"string"`
	BalanceAfter decimal.Decimal `json:"balance_after" swaggertype:"string"`
	Reason       string          `json:"reason"`
	CreatedAt    time.Time       `json:"created_at"`
}

// EntryListResponse is a page of ledger lines
type EntryListResponse struct {
	Entries []EntryResponse `json:"entries"`
	Page    int             `json:"page"`
	PerPage int             `json:"per_page"`
	Total   int64           `json:"total"`
}

func ToBalanceResponse(a *models.Account) *BalanceResponse {
	return &BalanceResponse{
		AccountID: a.ID,
		Kind:      string(a.Kind),
		OwnerID:   a.OwnerID,
		Balance:   a.Balance,
	}
}

func ToEntryResponse(e *models.Entry) EntryResponse {
	return EntryResponse{
		ID:           e.ID,
		TxRef:        e.TxRef,
		Amount:       e.Amount,
		BalanceAfter: e.BalanceAfter,
		Reason:       string(e.Reason),
		CreatedAt:    e.CreatedAt,
	}
}
