package settlement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/joefazee/streaks/models"
)

// SettlementResponse is the outcome of settling one bet
type SettlementResponse struct {
	ID             uuid.UUID       `json:"id"`
	BetID          uuid.UUID       `json:"bet_id"`
	MarketID       uuid.UUID       `json:"market_id"`
	UserID         uuid.UUID       `json:"user_id"`
	Type           string          `json:"settlement_type" example:"win"`
	Amount         decimal.Decimal `json:"amount" swaggertype:"string"`
	Payout         decimal.Decimal `json:"payout" swaggertype:"string"`
	GrossPayout    decimal.Decimal `json:"gross_payout" swaggertype:"string"`
	PlatformFee    decimal.Decimal `json:"platform_fee" swaggertype:"string"`
	CreatorFee     decimal.Decimal `json:"creator_fee" swaggertype:"string"`
	NetStreakBonus decimal.Decimal `json:"net_streak_bonus" swaggertype:"string"`
	Multiplier     decimal.Decimal `json:"multiplier" swaggertype:"string"`
	Streak         int             `json:"streak"`
	XPAwarded      int64           `json:"xp_awarded,omitempty"`
	InsuranceUsed  bool            `json:"insurance_used"`
	SettledAt      time.Time       `json:"settled_at"`
}

// SweepResponse reports a creator's loss sweep
type SweepResponse struct {
	MarketID uuid.UUID `json:"market_id"`
	Settled  int       `json:"settled"`
	Skipped  int       `json:"skipped"`
}

// SettlementListResponse is one page of a user's settlements
type SettlementListResponse struct {
	Settlements []SettlementResponse `json:"settlements"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PerPage     int                  `json:"per_page"`
}

// PageQuery holds the paging query parameters
type PageQuery struct {
	Page    int `form:"page" example:"1"`
	PerPage int `form:"per_page" example:"20"`
}

// ToSettlementResponse converts a settlement record to its response form
func ToSettlementResponse(s *models.Settlement) *SettlementResponse {
	return &SettlementResponse{
		ID:             s.ID,
		BetID:          s.BetID,
		MarketID:       s.MarketID,
		UserID:         s.UserID,
		Type:           string(s.Type),
		Amount:         s.Amount,
		Payout:         s.NetPayout,
		GrossPayout:    s.GrossPayout,
		PlatformFee:    s.PlatformFee,
		CreatorFee:     s.CreatorFee,
		NetStreakBonus: s.StreakBonus,
		Multiplier:     s.Multiplier,
		Streak:         s.StreakAfter,
		InsuranceUsed:  s.InsuranceUsed,
		SettledAt:      s.CreatedAt,
	}
}
