package profiles

import (
	"time"

	"github.com/google/uuid"
	"github.com/joefazee/streaks/internal/address"
	"github.com/joefazee/streaks/models"
)

// NewProfile returns the zeroed profile a user starts with
func NewProfile(user uuid.UUID) *models.UserProfile {
	return &models.UserProfile{
		ID:     address.ProfileKey(user),
		UserID: user,
	}
}

// OnBetPlaced records a new bet
func OnBetPlaced(p *models.UserProfile, now time.Time) {
	p.TotalBets++
	p.TotalXP += XPPerBet
	p.LastBetAt = &now
}

// OnWin extends the streak and returns the XP awarded. The award uses the
// streak after this win.
func OnWin(p *models.UserProfile) int64 {
	p.TotalWins++
	p.CurrentStreak++
	if p.CurrentStreak > p.LongestStreak {
		p.LongestStreak = p.CurrentStreak
	}
	xp := WinXP(p.CurrentStreak)
	p.TotalXP += xp
	return xp
}

// OnLoss resets the streak unless a live insurance policy absorbs the loss.
// Expired policies are switched off here. It reports whether insurance was used.
func OnLoss(p *models.UserProfile, now time.Time) bool {
	ins := &p.Insurance
	if ins.Active && !ins.IsLive(now) {
		ins.Active = false
		ins.UsesRemaining = 0
	}

	if ins.IsLive(now) {
		ins.UsesRemaining--
		if ins.UsesRemaining == 0 {
			ins.Active = false
		}
		return true
	}

	p.CurrentStreak = 0
	return false
}

// ActivateInsurance starts a fresh policy at now
func ActivateInsurance(p *models.UserProfile, now time.Time, duration time.Duration, uses int) {
	expires := now.Add(duration)
	p.Insurance = models.InsurancePolicy{
		Active:        true,
		UsesRemaining: uses,
		ExpiresAt:     &expires,
	}
}

// AddXP awards xp outside of betting, such as for creating a market
func AddXP(p *models.UserProfile, xp int64) {
	p.TotalXP += xp
}
