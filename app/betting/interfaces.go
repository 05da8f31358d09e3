package betting

import (
	"context"

	"github.com/google/uuid"
	"github.com/joefazee/streaks/models"
	"gorm.io/gorm"
)

// Repository defines the interface for bet data access
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Bet, error)
	// GetForUpdate reads the bet row under SELECT ... FOR UPDATE
	GetForUpdate(ctx context.Context, id uuid.UUID) (*models.Bet, error)
	ListByMarket(ctx context.Context, marketID uuid.UUID, page, perPage int) ([]models.Bet, int64, error)
	// ListUnsettledLosers returns bets on any outcome but winner whose loss
	// has not been applied yet
	ListUnsettledLosers(ctx context.Context, marketID uuid.UUID, winner int) ([]models.Bet, error)
	Create(ctx context.Context, bet *models.Bet) error
	Update(ctx context.Context, bet *models.Bet) error

	WithTx(tx *gorm.DB) Repository
}

// Service defines the interface for betting business logic
type Service interface {
	PlaceBet(ctx context.Context, user, marketID uuid.UUID, req *PlaceBetRequest) (*BetResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*BetResponse, error)
	// GetForUser returns the single bet user holds on a market
	GetForUser(ctx context.Context, marketID, user uuid.UUID) (*BetResponse, error)
	ListByMarket(ctx context.Context, marketID uuid.UUID, page, perPage int) (*BetListResponse, error)
	UnsettledLosers(ctx context.Context, marketID uuid.UUID, winner int) ([]models.Bet, error)

	// LoadForUpdate and Save run inside a caller's transaction
	LoadForUpdate(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*models.Bet, error)
	Save(ctx context.Context, tx *gorm.DB, bet *models.Bet) error
}
