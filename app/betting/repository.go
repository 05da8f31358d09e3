package betting

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/joefazee/streaks/models"
)

// repository implements the Repository interface using GORM
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new bet repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

// GetByID returns a bet by ID
func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*models.Bet, error) {
	var bet models.Bet
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&bet).Error
	if err != nil {
		return nil, err
	}
	return &bet, nil
}

// GetForUpdate returns a bet by ID with its row locked
func (r *repository) GetForUpdate(ctx context.Context, id uuid.UUID) (*models.Bet, error) {
	var bet models.Bet
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&bet).Error
	if err != nil {
		return nil, err
	}
	return &bet, nil
}

// ListByMarket returns one page of a market's bets, oldest first
func (r *repository) ListByMarket(ctx context.Context, marketID uuid.UUID, page, perPage int) ([]models.Bet, int64, error) {
	var bets []models.Bet
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Bet{}).Where("market_id = ?", marketID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("placed_at asc").Order("id").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&bets).Error
	return bets, total, err
}

// ListUnsettledLosers returns the losing bets still waiting on a streak reset
func (r *repository) ListUnsettledLosers(ctx context.Context, marketID uuid.UUID, winner int) ([]models.Bet, error) {
	var bets []models.Bet
	err := r.db.WithContext(ctx).
		Where("market_id = ? AND outcome_index <> ? AND loss_settled = ?", marketID, winner, false).
		Order("placed_at asc").
		Find(&bets).Error
	return bets, err
}

// Create inserts a bet. The (market_id, user_id) unique index rejects a second bet.
func (r *repository) Create(ctx context.Context, bet *models.Bet) error {
	return r.db.WithContext(ctx).Create(bet).Error
}

// Update saves a bet
func (r *repository) Update(ctx context.Context, bet *models.Bet) error {
	return r.db.WithContext(ctx).Save(bet).Error
}
