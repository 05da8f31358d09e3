package betting

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/joefazee/streaks/models"
)

// PlaceBetRequest represents the request to place a bet
// @Description Request payload for staking on one outcome of a market
type PlaceBetRequest struct {
	OutcomeIndex *int            `json:"outcome_index" binding:"required" example:"0"`
	Amount       decimal.Decimal `json:"amount" swaggertype:"string" example:"1.5"`
}

// BetResponse represents a bet in API responses
type BetResponse struct {
	ID            uuid.UUID        `json:"id"`
	MarketID      uuid.UUID        `json:"market_id"`
	UserID        uuid.UUID        `json:"user_id"`
	OutcomeIndex  int              `json:"outcome_index"`
	Amount        decimal.Decimal  `json:"amount" swaggertype:"string"`
	PlacedAt      time.Time        `json:"placed_at"`
	Claimed       bool             `json:"claimed"`
	ClaimedAt     *time.Time       `json:"claimed_at,omitempty"`
	Payout        *decimal.Decimal `json:"payout,omitempty" swaggertype:"string"`
	LossSettled   bool             `json:"loss_settled"`
	LossSettledAt *time.Time       `json:"loss_settled_at,omitempty"`
}

// PageQuery holds the paging query parameters
type PageQuery struct {
	Page    int `form:"page" example:"1"`
	PerPage int `form:"per_page" example:"20"`
}

// BetListResponse is one page of a market's bets
type BetListResponse struct {
	Bets    []BetResponse `json:"bets"`
	Total   int64         `json:"total"`
	Page    int           `json:"page"`
	PerPage int           `json:"per_page"`
}

// ToBetResponse converts a bet model to its response form
func ToBetResponse(b *models.Bet) *BetResponse {
	return &BetResponse{
		ID:            b.ID,
		MarketID:      b.MarketID,
		UserID:        b.UserID,
		OutcomeIndex:  b.OutcomeIndex,
		Amount:        b.Amount,
		PlacedAt:      b.PlacedAt,
		Claimed:       b.Claimed,
		ClaimedAt:     b.ClaimedAt,
		Payout:        b.Payout,
		LossSettled:   b.LossSettled,
		LossSettledAt: b.LossSettledAt,
	}
}

// ToBetResponseList converts a slice of bets
func ToBetResponseList(bets []models.Bet) []BetResponse {
	out := make([]BetResponse, len(bets))
	for i := range bets {
		out[i] = *ToBetResponse(&bets[i])
	}
	return out
}
