package markets

import (
	"context"

	"github.com/google/uuid"
	"github.com/joefazee/streaks/models"
	"gorm.io/gorm"
)

// Repository defines the interface for market data access
type Repository interface {
	GetAll(ctx context.Context, filters *MarketFilters, maxPerPage int) ([]models.Market, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Market, error)
	// GetForUpdate reads the market row under SELECT ... FOR UPDATE
	GetForUpdate(ctx context.Context, id uuid.UUID) (*models.Market, error)
	Create(ctx context.Context, market *models.Market) error
	Update(ctx context.Context, market *models.Market) error

	WithTx(tx *gorm.DB) Repository
}

// Service defines the interface for market business logic
type Service interface {
	Create(ctx context.Context, creator uuid.UUID, req *CreateMarketRequest) (*MarketResponse, error)
	Resolve(ctx context.Context, id, caller uuid.UUID, winningOutcome int) (*MarketResponse, error)
	// ResolveWithOracle resolves a price-conditioned market from the oracle.
	// Nothing is written when the oracle is unavailable.
	ResolveWithOracle(ctx context.Context, id, caller uuid.UUID) (*MarketResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*MarketResponse, error)
	List(ctx context.Context, filters *MarketFilters) (*MarketListResponse, error)

	// Load, LoadForUpdate and Save run inside a caller's transaction
	Load(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*models.Market, error)
	LoadForUpdate(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*models.Market, error)
	Save(ctx context.Context, tx *gorm.DB, market *models.Market) error
}
