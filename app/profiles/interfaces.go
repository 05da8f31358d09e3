package profiles

import (
	"context"

	"github.com/google/uuid"
	"github.com/joefazee/streaks/models"
	"gorm.io/gorm"
)

// Repository defines data access for user profiles
type Repository interface {
	GetByUserID(ctx context.Context, user uuid.UUID) (*models.UserProfile, error)
	// LockOrInit inserts the zeroed profile if it is missing and returns the
	// row locked for update.
	LockOrInit(ctx context.Context, user uuid.UUID) (*models.UserProfile, error)
	Save(ctx context.Context, profile *models.UserProfile) error

	WithTx(tx *gorm.DB) Repository
}

// Service is the profile store used by handlers and by the betting,
// market and settlement modules
type Service interface {
	// GetOrCreate returns the stored profile or unsaved defaults
	GetOrCreate(ctx context.Context, user uuid.UUID) (*models.UserProfile, error)
	Get(ctx context.Context, user uuid.UUID) (*ProfileResponse, error)
	PurchaseInsurance(ctx context.Context, user uuid.UUID) (*ProfileResponse, error)

	// LoadForUpdate and Save run inside a caller's transaction
	LoadForUpdate(ctx context.Context, tx *gorm.DB, user uuid.UUID) (*models.UserProfile, error)
	Save(ctx context.Context, tx *gorm.DB, profile *models.UserProfile) error
	// Invalidate drops cached reads after the caller's transaction commits
	Invalidate(ctx context.Context, user uuid.UUID)
}
