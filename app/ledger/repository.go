package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/joefazee/streaks/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

// EnsureAccounts inserts any missing account with a zero balance
func (r *repository) EnsureAccounts(ctx context.Context, refs []AccountRef) error {
	if len(refs) == 0 {
		return nil
	}
	accounts := make([]models.Account, 0, len(refs))
	for _, ref := range refs {
		accounts = append(accounts, models.Account{
			ID:      ref.ID,
			Kind:    ref.Kind,
			OwnerID: ref.Owner,
			Balance: decimal.Zero,
		})
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&accounts).Error
}

// LockAccounts selects the accounts FOR UPDATE in id order so concurrent
// postings always acquire row locks in the same sequence.
func (r *repository) LockAccounts(ctx context.Context, ids []uuid.UUID) ([]models.Account, error) {
	var accounts []models.Account
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", ids).
		Order("id").
		Find(&accounts).Error
	return accounts, err
}

func (r *repository) GetAccount(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	var account models.Account
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *repository) UpdateBalance(ctx context.Context, account *models.Account) error {
	if err := account.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Model(account).
		Update("balance", account.Balance).Error
}

func (r *repository) CreateEntries(ctx context.Context, entries []models.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&entries).Error
}

func (r *repository) ListEntries(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]models.Entry, int64, error) {
	var (
		entries []models.Entry
		total   int64
	)

	query := r.db.WithContext(ctx).Model(&models.Entry{}).Where("account_id = ?", accountID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error
	return entries, total, err
}
