package profiles

import (
	"time"

	"github.com/google/uuid"
	"github.com/joefazee/streaks/models"
	"github.com/shopspring/decimal"
)

// InsuranceResponse describes the caller's streak insurance
type InsuranceResponse struct {
	Active        bool       `json:"active"`
	UsesRemaining int        `json:"uses_remaining"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
}

// ProfileResponse represents a user's streak and experience state
// @Description Streak, multiplier and experience for a user
type ProfileResponse struct {
	UserID        uuid.UUID         `json:"user_id"`
	TotalBets     int64             `json:"total_bets"`
	TotalWins     int64             `json:"total_wins"`
	CurrentStreak int               `json:"current_streak"`
	LongestStreak int               `json:"longest_streak"`
	Multiplier    decimal.Decimal   `json:"multiplier" swaggertype:"string" example:"1.5"`
	NextTierAt    int               `json:"next_tier_at,omitempty"`
	TotalXP       int64             `json:"total_xp"`
	Level         int               `json:"level"`
	LastBetAt     *time.Time        `json:"last_bet_at,omitempty"`
	Insurance     InsuranceResponse `json:"insurance"`
}

// ToProfileResponse renders p as seen at now. Expired insurance is shown inactive.
func ToProfileResponse(p *models.UserProfile, now time.Time) *ProfileResponse {
	resp := &ProfileResponse{
		UserID:        p.UserID,
		TotalBets:     p.TotalBets,
		TotalWins:     p.TotalWins,
		CurrentStreak: p.CurrentStreak,
		LongestStreak: p.LongestStreak,
		Multiplier:    Multiplier(p.CurrentStreak),
		NextTierAt:    NextTier(p.CurrentStreak),
		TotalXP:       p.TotalXP,
		Level:         Level(p.TotalXP),
		LastBetAt:     p.LastBetAt,
	}
	if p.Insurance.IsLive(now) {
		resp.Insurance = InsuranceResponse{
			Active:        true,
			UsesRemaining: p.Insurance.UsesRemaining,
			ExpiresAt:     p.Insurance.ExpiresAt,
		}
	}
	return resp
}
