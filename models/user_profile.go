package models

import (
	"time"

	"github.com/google/uuid"
)

// InsurancePolicy is the single-use streak protection attached to a profile
type InsurancePolicy struct {
	Active        bool       `gorm:"not null;default:false" json:"active"`
	UsesRemaining int        `gorm:"not null;default:0" json:"uses_remaining"`
	ExpiresAt     *time.Time `gorm:"type:timestamptz" json:"expires_at"`
}

// IsLive reports whether the policy can still absorb a loss at now
func (p *InsurancePolicy) IsLive(now time.Time) bool {
	return p.Active && p.UsesRemaining > 0 && p.ExpiresAt != nil && now.Before(*p.ExpiresAt)
}

// UserProfile holds per-user streak and experience state
type UserProfile struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	TotalBets     int64           `gorm:"not null;default:0" json:"total_bets"`
	TotalWins     int64           `gorm:"not null;default:0" json:"total_wins"`
	CurrentStreak int             `gorm:"not null;default:0" json:"current_streak"`
	LongestStreak int             `gorm:"not null;default:0" json:"longest_streak"`
	TotalXP       int64           `gorm:"column:total_xp;not null;default:0" json:"total_xp"`
	LastBetAt     *time.Time      `gorm:"type:timestamptz" json:"last_bet_at"`
	Insurance     InsurancePolicy `gorm:"embedded;embeddedPrefix:insurance_" json:"insurance"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for UserProfile model
func (*UserProfile) TableName() string {
	return "user_profiles"
}

// IsNew reports whether the profile has never been persisted
func (p *UserProfile) IsNew() bool {
	return p.CreatedAt.IsZero()
}

// Validate performs validation on the profile model
func (p *UserProfile) Validate() error {
	if p.UserID == uuid.Nil {
		return ErrInvalidUserID
	}
	if p.CurrentStreak < 0 || p.LongestStreak < p.CurrentStreak {
		return ErrInvalidInput
	}
	if p.TotalWins > p.TotalBets || p.TotalXP < 0 {
		return ErrInvalidInput
	}
	return nil
}
