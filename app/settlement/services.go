package settlement

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/joefazee/streaks/app/betting"
	"github.com/joefazee/streaks/app/guard"
	"github.com/joefazee/streaks/app/ledger"
	"github.com/joefazee/streaks/app/markets"
	"github.com/joefazee/streaks/app/profiles"
	"github.com/joefazee/streaks/internal/address"
	"github.com/joefazee/streaks/internal/logger"
	"github.com/joefazee/streaks/models"
)

const defaultPerPage = 20

type service struct {
	repo     Repository
	db       *gorm.DB
	markets  markets.Service
	bets     betting.Service
	profiles profiles.Service
	ledger   ledger.Service
	guard    *guard.Guard
	config   *Config
	clock    clockwork.Clock
	log      logger.Logger
}

// NewService creates a new settlement service
func NewService(repo Repository,
	db *gorm.DB,
	marketService markets.Service,
	betService betting.Service,
	profileService profiles.Service,
	ledgerService ledger.Service,
	config *Config,
	clock clockwork.Clock,
	log logger.Logger,
) Service {
	return &service{
		repo:     repo,
		db:       db,
		markets:  marketService,
		bets:     betService,
		profiles: profileService,
		ledger:   ledgerService,
		guard:    guard.New(clock),
		config:   config,
		clock:    clock,
		log:      log,
	}
}

func (s *service) Settle(ctx context.Context, caller, marketID uuid.UUID) (*SettlementResponse, error) {
	return s.SettleBet(ctx, address.BetKey(marketID, caller), caller)
}

// SettleBet pays out a winning bet. The streak is extended first and the
// multiplier of the new streak prices the payout.
func (s *service) SettleBet(ctx context.Context, betID, caller uuid.UUID) (*SettlementResponse, error) {
	now := s.clock.Now()

	var record *models.Settlement
	var xp int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		bet, err := s.bets.LoadForUpdate(ctx, tx, betID)
		if err != nil {
			return err
		}
		market, err := s.markets.Load(ctx, tx, bet.MarketID)
		if err != nil {
			return err
		}
		if err := s.guard.CanSettle(market, bet, caller); err != nil {
			return err
		}

		profile, err := s.profiles.LoadForUpdate(ctx, tx, bet.UserID)
		if err != nil {
			return err
		}
		xp = profiles.OnWin(profile)

		payout, err := ComputePayout(bet.Amount,
			market.TotalPool(),
			market.PoolFor(bet.OutcomeIndex),
			profiles.Multiplier(profile.CurrentStreak),
			market.FeeBpsPlatform,
			market.FeeBpsCreator,
			s.config.AmountScale,
		)
		if err != nil {
			return err
		}

		if _, err := s.ledger.Post(ctx, tx, bet.ID, payout.Postings(bet.UserID, market.ID, market.CreatorID)...); err != nil {
			return err
		}
		if err := bet.MarkClaimed(payout.Net, now); err != nil {
			return err
		}
		if err := s.bets.Save(ctx, tx, bet); err != nil {
			return err
		}
		if err := s.profiles.Save(ctx, tx, profile); err != nil {
			return err
		}

		record = &models.Settlement{
			BetID:       bet.ID,
			MarketID:    market.ID,
			UserID:      bet.UserID,
			Type:        models.SettlementTypeWin,
			Amount:      bet.Amount,
			GrossPayout: payout.Gross,
			PlatformFee: payout.PlatformFee,
			CreatorFee:  payout.CreatorFee,
			NetPayout:   payout.Net,
			StreakBonus: payout.StreakBonus,
			Multiplier:  payout.Multiplier,
			StreakAfter: profile.CurrentStreak,
			CreatedAt:   now,
		}
		return s.createRecord(ctx, tx, record)
	})
	if err != nil {
		return nil, err
	}

	s.profiles.Invalidate(ctx, record.UserID)
	s.log.Info("bet settled", map[string]interface{}{
		"bet_id":       record.BetID,
		"market_id":    record.MarketID,
		"user_id":      record.UserID,
		"payout":       record.NetPayout.String(),
		"streak_bonus": record.StreakBonus.String(),
		"multiplier":   record.Multiplier.String(),
		"streak":       record.StreakAfter,
	})

	resp := ToSettlementResponse(record)
	resp.XPAwarded = xp
	return resp, nil
}

// SettleLoss applies the caller's losing bet to their streak
func (s *service) SettleLoss(ctx context.Context, caller, marketID uuid.UUID) (*SettlementResponse, error) {
	record, err := s.settleLoss(ctx, address.BetKey(marketID, caller), func(m *models.Market, b *models.Bet) error {
		return s.guard.CanSettleLoss(m, b, caller)
	})
	if err != nil {
		return nil, err
	}
	return ToSettlementResponse(record), nil
}

// SweepLosses settles every outstanding losing bet on a resolved market.
// Each bet commits on its own, so a failure leaves earlier ones applied.
func (s *service) SweepLosses(ctx context.Context, caller, marketID uuid.UUID) (*SweepResponse, error) {
	market, err := s.markets.Load(ctx, s.db.WithContext(ctx), marketID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.CanSweep(market, caller); err != nil {
		return nil, err
	}

	losers, err := s.bets.UnsettledLosers(ctx, marketID, *market.WinningOutcome)
	if err != nil {
		return nil, err
	}

	var settled, skipped atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.SweepConcurrency)
	for i := range losers {
		betID := losers[i].ID
		g.Go(func() error {
			_, err := s.settleLoss(gctx, betID, func(m *models.Market, b *models.Bet) error {
				return s.guard.CanSweepBet(m, b, caller)
			})
			switch {
			case err == nil:
				settled.Add(1)
			case errors.Is(err, models.ErrAlreadySettled):
				skipped.Add(1)
			default:
				return fmt.Errorf("bet %s: %w", betID, err)
			}
			return nil
		})
	}
	err = g.Wait()

	s.log.Info("losses swept", map[string]interface{}{
		"market_id": marketID,
		"caller":    caller,
		"pending":   len(losers),
		"settled":   settled.Load(),
		"skipped":   skipped.Load(),
	})
	if err != nil {
		s.log.Error(err, map[string]interface{}{"market_id": marketID, "operation": "sweep losses"})
		return nil, err
	}

	return &SweepResponse{
		MarketID: marketID,
		Settled:  int(settled.Load()),
		Skipped:  int(skipped.Load()),
	}, nil
}

type lossCheck func(market *models.Market, bet *models.Bet) error

// settleLoss locks the bet, lets check authorize the caller and resets or
// insures the owner's streak
func (s *service) settleLoss(ctx context.Context, betID uuid.UUID, check lossCheck) (*models.Settlement, error) {
	now := s.clock.Now()

	var record *models.Settlement
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		bet, err := s.bets.LoadForUpdate(ctx, tx, betID)
		if err != nil {
			return err
		}
		market, err := s.markets.Load(ctx, tx, bet.MarketID)
		if err != nil {
			return err
		}
		if err := check(market, bet); err != nil {
			return err
		}

		profile, err := s.profiles.LoadForUpdate(ctx, tx, bet.UserID)
		if err != nil {
			return err
		}
		insured := profiles.OnLoss(profile, now)

		if err := bet.MarkLossSettled(now); err != nil {
			return err
		}
		if err := s.bets.Save(ctx, tx, bet); err != nil {
			return err
		}
		if err := s.profiles.Save(ctx, tx, profile); err != nil {
			return err
		}

		record = &models.Settlement{
			BetID:         bet.ID,
			MarketID:      market.ID,
			UserID:        bet.UserID,
			Type:          models.SettlementTypeLoss,
			Amount:        bet.Amount,
			Multiplier:    profiles.Multiplier(profile.CurrentStreak),
			StreakAfter:   profile.CurrentStreak,
			InsuranceUsed: insured,
			CreatedAt:     now,
		}
		return s.createRecord(ctx, tx, record)
	})
	if err != nil {
		return nil, err
	}

	s.profiles.Invalidate(ctx, record.UserID)
	s.log.Info("loss settled", map[string]interface{}{
		"bet_id":         record.BetID,
		"market_id":      record.MarketID,
		"user_id":        record.UserID,
		"streak":         record.StreakAfter,
		"insurance_used": record.InsuranceUsed,
	})
	return record, nil
}

func (s *service) createRecord(ctx context.Context, tx *gorm.DB, record *models.Settlement) error {
	if err := s.repo.WithTx(tx).Create(ctx, record); err != nil {
		return fmt.Errorf("failed to record settlement: %w", err)
	}
	return nil
}

// ListForUser returns a page of the user's settlements
func (s *service) ListForUser(ctx context.Context, user uuid.UUID, page, perPage int) (*SettlementListResponse, error) {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 || perPage > s.config.MaxPerPage {
		perPage = defaultPerPage
	}

	records, total, err := s.repo.ListByUser(ctx, user, page, perPage)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch settlements: %w", err)
	}

	out := make([]SettlementResponse, len(records))
	for i := range records {
		out[i] = *ToSettlementResponse(&records[i])
	}
	return &SettlementListResponse{
		Settlements: out,
		Total:       total,
		Page:        page,
		PerPage:     perPage,
	}, nil
}
