package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/joefazee/streaks/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Repository defines data access for accounts and entries
type Repository interface {
	EnsureAccounts(ctx context.Context, refs []AccountRef) error
	LockAccounts(ctx context.Context, ids []uuid.UUID) ([]models.Account, error)
	GetAccount(ctx context.Context, id uuid.UUID) (*models.Account, error)
	UpdateBalance(ctx context.Context, account *models.Account) error
	CreateEntries(ctx context.Context, entries []models.Entry) error
	ListEntries(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]models.Entry, int64, error)

	WithTx(tx *gorm.DB) Repository
}

// Service moves funds between custody accounts
type Service interface {
	// Post applies balanced postings inside tx, tagging every entry with
	// reference. Any failure leaves tx to be rolled back.
	Post(ctx context.Context, tx *gorm.DB, reference uuid.UUID, postings ...Posting) ([]models.Entry, error)
	// Deposit credits acct from outside the system in its own transaction.
	Deposit(ctx context.Context, acct AccountRef, amount decimal.Decimal, reason models.EntryReason) (*BalanceResponse, error)
	Airdrop(ctx context.Context, user uuid.UUID, req *AirdropRequest) (*BalanceResponse, error)
	Balance(ctx context.Context, acct AccountRef) (*BalanceResponse, error)
	Entries(ctx context.Context, acct AccountRef, page, perPage int) (*EntryListResponse, error)
	SeedInsuranceFund(ctx context.Context) error
}
