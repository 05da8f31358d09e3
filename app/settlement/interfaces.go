package settlement

import (
	"context"

	"github.com/google/uuid"
	"github.com/joefazee/streaks/models"
	"gorm.io/gorm"
)

// Repository stores settlement records
type Repository interface {
	Create(ctx context.Context, record *models.Settlement) error
	ListByUser(ctx context.Context, user uuid.UUID, page, perPage int) ([]models.Settlement, int64, error)

	WithTx(tx *gorm.DB) Repository
}

// Service settles bets on resolved markets
type Service interface {
	// Settle claims the caller's winning bet on a market
	Settle(ctx context.Context, caller, marketID uuid.UUID) (*SettlementResponse, error)
	SettleBet(ctx context.Context, betID, caller uuid.UUID) (*SettlementResponse, error)
	// SettleLoss applies the caller's own loss to their streak
	SettleLoss(ctx context.Context, caller, marketID uuid.UUID) (*SettlementResponse, error)
	// SweepLosses lets the creator apply every outstanding loss on the market
	SweepLosses(ctx context.Context, caller, marketID uuid.UUID) (*SweepResponse, error)
	ListForUser(ctx context.Context, user uuid.UUID, page, perPage int) (*SettlementListResponse, error)
}
