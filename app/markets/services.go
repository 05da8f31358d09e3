package markets

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"

	"github.com/joefazee/streaks/app/guard"
	"github.com/joefazee/streaks/app/oracle"
	"github.com/joefazee/streaks/app/profiles"
	"github.com/joefazee/streaks/internal/address"
	"github.com/joefazee/streaks/internal/logger"
	"github.com/joefazee/streaks/internal/sanitizer"
	"github.com/joefazee/streaks/internal/validator"
	"github.com/joefazee/streaks/models"
)

// service implements the Service interface
type service struct {
	repo      Repository
	db        *gorm.DB
	profiles  profiles.Service
	oracle    oracle.PriceOracle
	sanitizer sanitizer.HTMLStripperer
	guard     *guard.Guard
	config    *Config
	clock     clockwork.Clock
	log       logger.Logger
}

// NewService creates a new market service
func NewService(repo Repository,
	db *gorm.DB,
	profileService profiles.Service,
	priceOracle oracle.PriceOracle,
	stripper sanitizer.HTMLStripperer,
	config *Config,
	clock clockwork.Clock,
	log logger.Logger,
) Service {
	return &service{
		repo:      repo,
		db:        db,
		profiles:  profileService,
		oracle:    priceOracle,
		sanitizer: stripper,
		guard:     guard.New(clock),
		config:    config,
		clock:     clock,
		log:       log,
	}
}

// Create registers a market keyed by (creator, nonce) and rewards the creator
func (s *service) Create(ctx context.Context, creator uuid.UUID, req *CreateMarketRequest) (*MarketResponse, error) {
	if creator == uuid.Nil {
		return nil, models.ErrInvalidUserID
	}

	now := s.clock.Now()
	req.Sanitize(s.sanitizer)
	v := validator.New()
	if !req.Validate(v, now, s.config.MaxNonceLength) {
		return nil, fmt.Errorf("%w: %w", models.ErrInvalidInput, validator.NewValidationError("Validation failed", v.Errors))
	}

	nonce := req.Nonce
	if nonce == "" {
		nonce = uuid.NewString()
	}

	market := &models.Market{
		ID:             address.MarketKey(creator, nonce),
		CreatorID:      creator,
		Nonce:          nonce,
		Question:       req.Question,
		Outcomes:       models.StringList(req.Outcomes),
		Pools:          make(models.AmountList, len(req.Outcomes)),
		ResolutionTime: req.ResolutionTime,
		FeeBpsPlatform: s.config.FeeBpsPlatform,
		FeeBpsCreator:  s.config.FeeBpsCreator,
		Oracle:         req.oracleCondition(),
	}
	if err := market.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrInvalidInput, err)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, market); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return models.ErrMarketExists
			}
			return err
		}

		if s.config.CreatorXPReward == 0 {
			return nil
		}
		profile, err := s.profiles.LoadForUpdate(ctx, tx, creator)
		if err != nil {
			return err
		}
		profiles.AddXP(profile, s.config.CreatorXPReward)
		return s.profiles.Save(ctx, tx, profile)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create market: %w", err)
	}

	s.profiles.Invalidate(ctx, creator)
	s.log.Info("market created", map[string]interface{}{
		"market_id":       market.ID,
		"creator_id":      creator,
		"outcomes":        len(market.Outcomes),
		"resolution_time": market.ResolutionTime,
	})
	return ToMarketResponse(market), nil
}

// Resolve fixes the winning outcome chosen by the creator
func (s *service) Resolve(ctx context.Context, id, caller uuid.UUID, winningOutcome int) (*MarketResponse, error) {
	market, err := s.resolve(ctx, id, caller, func(m *models.Market) (int, models.ResolutionSource, error) {
		if err := s.guard.CanResolveTo(m, caller, winningOutcome); err != nil {
			return 0, "", err
		}
		return winningOutcome, models.ResolutionManual, nil
	})
	if err != nil {
		return nil, err
	}
	return ToMarketResponse(market), nil
}

// ResolveWithOracle evaluates the market's price condition outside the
// transaction, then resolves YES when it holds and NO otherwise
func (s *service) ResolveWithOracle(ctx context.Context, id, caller uuid.UUID) (*MarketResponse, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, "failed to fetch market")
	}
	if err := s.guard.CanResolve(current, caller); err != nil {
		return nil, err
	}
	if current.Oracle == nil {
		return nil, fmt.Errorf("%w: market has no oracle condition", models.ErrInvalidInput)
	}

	holds, err := s.oracle.CheckCondition(ctx, *current.Oracle)
	if err != nil {
		s.log.Info("oracle resolution unavailable", map[string]interface{}{
			"market_id": id,
			"symbol":    current.Oracle.Symbol,
			"error":     err.Error(),
		})
		return nil, err
	}

	winner := models.NoOutcome
	if holds {
		winner = models.YesOutcome
	}

	market, err := s.resolve(ctx, id, caller, func(m *models.Market) (int, models.ResolutionSource, error) {
		if err := s.guard.CanResolve(m, caller); err != nil {
			return 0, "", err
		}
		return winner, models.ResolutionOracle, nil
	})
	if err != nil {
		return nil, err
	}
	return ToMarketResponse(market), nil
}

type resolveFunc func(m *models.Market) (int, models.ResolutionSource, error)

// resolve locks the market row, lets decide pick the winner and saves
func (s *service) resolve(ctx context.Context, id, caller uuid.UUID, decide resolveFunc) (*models.Market, error) {
	now := s.clock.Now()

	var market *models.Market
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		market, err = s.LoadForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		winner, source, err := decide(market)
		if err != nil {
			return err
		}
		if err := market.Resolve(winner, source, now); err != nil {
			return err
		}
		return s.Save(ctx, tx, market)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("market resolved", map[string]interface{}{
		"market_id":       market.ID,
		"resolved_by":     caller,
		"winning_outcome": *market.WinningOutcome,
		"source":          market.ResolutionSource,
		"total_pool":      market.TotalPool().String(),
	})
	return market, nil
}

// Get returns a single market
func (s *service) Get(ctx context.Context, id uuid.UUID) (*MarketResponse, error) {
	market, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, "failed to fetch market")
	}
	return ToMarketResponse(market), nil
}

// List returns a page of markets
func (s *service) List(ctx context.Context, filters *MarketFilters) (*MarketListResponse, error) {
	if filters == nil {
		filters = &MarketFilters{}
	}
	v := validator.New()
	if filters.Validate(v); !v.Valid() {
		return nil, fmt.Errorf("%w: %w", models.ErrInvalidInput, validator.NewValidationError("Invalid filters", v.Errors))
	}

	markets, total, err := s.repo.GetAll(ctx, filters, s.config.MaxPerPage)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch markets: %w", err)
	}

	page, perPage := pageBounds(filters, s.config.MaxPerPage)
	return &MarketListResponse{
		Markets: ToMarketResponseList(markets),
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}, nil
}

func (s *service) Load(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*models.Market, error) {
	market, err := s.repo.WithTx(tx).GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, "failed to fetch market")
	}
	return market, nil
}

func (s *service) LoadForUpdate(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*models.Market, error) {
	market, err := s.repo.WithTx(tx).GetForUpdate(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, "failed to lock market")
	}
	return market, nil
}

func (s *service) Save(ctx context.Context, tx *gorm.DB, market *models.Market) error {
	if err := market.Validate(); err != nil {
		return err
	}
	if err := s.repo.WithTx(tx).Update(ctx, market); err != nil {
		return fmt.Errorf("failed to save market: %w", err)
	}
	return nil
}

func mapNotFound(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrRecordNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}
