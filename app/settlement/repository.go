package settlement

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/joefazee/streaks/models"
)

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new settlement repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, record *models.Settlement) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// ListByUser returns a user's settlements, newest first
func (r *repository) ListByUser(ctx context.Context, user uuid.UUID, page, perPage int) ([]models.Settlement, int64, error) {
	var records []models.Settlement
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Settlement{}).Where("user_id = ?", user)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at desc").Order("id").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&records).Error
	return records, total, err
}
