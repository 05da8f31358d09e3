package profiles

import (
	"context"

	"github.com/google/uuid"
	"github.com/joefazee/streaks/models"
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

func (r *repository) GetByUserID(ctx context.Context, user uuid.UUID) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", user).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *repository) LockOrInit(ctx context.Context, user uuid.UUID) (*models.UserProfile, error) {
	fresh := NewProfile(user)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(fresh).Error
	if err != nil {
		return nil, err
	}

	var profile models.UserProfile
	err = r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", user).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *repository) Save(ctx context.Context, profile *models.UserProfile) error {
	if err := profile.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(profile).Error
}
