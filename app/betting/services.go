package betting

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"

	"github.com/joefazee/streaks/app/guard"
	"github.com/joefazee/streaks/app/ledger"
	"github.com/joefazee/streaks/app/markets"
	"github.com/joefazee/streaks/app/profiles"
	"github.com/joefazee/streaks/internal/address"
	"github.com/joefazee/streaks/internal/logger"
	"github.com/joefazee/streaks/models"
)

const defaultPerPage = 20

// service implements the Service interface
type service struct {
	repo     Repository
	db       *gorm.DB
	markets  markets.Service
	profiles profiles.Service
	ledger   ledger.Service
	guard    *guard.Guard
	config   *Config
	clock    clockwork.Clock
	log      logger.Logger
}

// NewService creates a new betting service
func NewService(repo Repository,
	db *gorm.DB,
	marketService markets.Service,
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
		profiles: profileService,
		ledger:   ledgerService,
		guard:    guard.New(clock),
		config:   config,
		clock:    clock,
		log:      log,
	}
}

// PlaceBet escrows the stake and records the user's only bet on the market.
// The market row stays locked from the first check until commit.
func (s *service) PlaceBet(ctx context.Context, user, marketID uuid.UUID, req *PlaceBetRequest) (*BetResponse, error) {
	if user == uuid.Nil {
		return nil, models.ErrInvalidUserID
	}
	if req == nil || req.OutcomeIndex == nil {
		return nil, fmt.Errorf("%w: outcome_index is required", models.ErrInvalidInput)
	}
	outcome, amount := *req.OutcomeIndex, req.Amount

	now := s.clock.Now()
	bet := &models.Bet{
		ID:           address.BetKey(marketID, user),
		MarketID:     marketID,
		UserID:       user,
		OutcomeIndex: outcome,
		Amount:       amount,
		PlacedAt:     now,
	}

	var market *models.Market
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		market, err = s.markets.LoadForUpdate(ctx, tx, marketID)
		if err != nil {
			return err
		}
		if err := s.guard.CanBet(market, outcome, amount); err != nil {
			return err
		}
		if !amount.Equal(amount.Truncate(s.config.AmountScale)) {
			return fmt.Errorf("%w: amount has more than %d decimal places", models.ErrInvalidInput, s.config.AmountScale)
		}

		repo := s.repo.WithTx(tx)
		if _, err := repo.GetByID(ctx, bet.ID); err == nil {
			return models.ErrDuplicateBet
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check existing bet: %w", err)
		}

		// Lock order is market, profile, then ledger accounts.
		profile, err := s.profiles.LoadForUpdate(ctx, tx, user)
		if err != nil {
			return err
		}

		_, err = s.ledger.Post(ctx, tx, bet.ID,
			ledger.Transfer(ledger.UserAccount(user), ledger.EscrowAccount(market.ID), amount, models.ReasonBetStake)...)
		if err != nil {
			return err
		}

		if err := bet.Validate(); err != nil {
			return fmt.Errorf("%w: %w", models.ErrInvalidInput, err)
		}
		if err := repo.Create(ctx, bet); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return models.ErrDuplicateBet
			}
			return fmt.Errorf("failed to create bet: %w", err)
		}

		if err := market.AddToPool(outcome, amount); err != nil {
			return err
		}
		if err := s.markets.Save(ctx, tx, market); err != nil {
			return err
		}

		profiles.OnBetPlaced(profile, now)
		return s.profiles.Save(ctx, tx, profile)
	})
	if err != nil {
		return nil, err
	}

	s.profiles.Invalidate(ctx, user)
	s.log.Info("bet placed", map[string]interface{}{
		"bet_id":     bet.ID,
		"market_id":  market.ID,
		"user_id":    user,
		"outcome":    outcome,
		"amount":     amount.String(),
		"total_pool": market.TotalPool().String(),
	})
	return ToBetResponse(bet), nil
}

// Get returns a single bet
func (s *service) Get(ctx context.Context, id uuid.UUID) (*BetResponse, error) {
	bet, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, "failed to fetch bet")
	}
	return ToBetResponse(bet), nil
}

func (s *service) GetForUser(ctx context.Context, marketID, user uuid.UUID) (*BetResponse, error) {
	return s.Get(ctx, address.BetKey(marketID, user))
}

// ListByMarket returns a page of bets placed on a market
func (s *service) ListByMarket(ctx context.Context, marketID uuid.UUID, page, perPage int) (*BetListResponse, error) {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 || perPage > s.config.MaxPerPage {
		perPage = defaultPerPage
	}

	bets, total, err := s.repo.ListByMarket(ctx, marketID, page, perPage)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bets: %w", err)
	}
	return &BetListResponse{
		Bets:    ToBetResponseList(bets),
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}, nil
}

func (s *service) UnsettledLosers(ctx context.Context, marketID uuid.UUID, winner int) ([]models.Bet, error) {
	bets, err := s.repo.ListUnsettledLosers(ctx, marketID, winner)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch losing bets: %w", err)
	}
	return bets, nil
}

func (s *service) LoadForUpdate(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*models.Bet, error) {
	bet, err := s.repo.WithTx(tx).GetForUpdate(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, "failed to lock bet")
	}
	return bet, nil
}

func (s *service) Save(ctx context.Context, tx *gorm.DB, bet *models.Bet) error {
	if err := s.repo.WithTx(tx).Update(ctx, bet); err != nil {
		return fmt.Errorf("failed to save bet: %w", err)
	}
	return nil
}

func mapNotFound(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrRecordNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}
