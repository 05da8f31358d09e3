package profiles

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/joefazee/streaks/app/ledger"
	"github.com/joefazee/streaks/internal/cache"
	"github.com/joefazee/streaks/internal/logger"
	"github.com/joefazee/streaks/models"
	"gorm.io/gorm"
)

type service struct {
	repo   Repository
	db     *gorm.DB
	ledger ledger.Service
	cache  cache.Cache[models.UserProfile]
	config *Config
	clock  clockwork.Clock
	log    logger.Logger
}

func NewService(repo Repository,
	db *gorm.DB,
	ledgerService ledger.Service,
	profileCache cache.Cache[models.UserProfile],
	config *Config,
	clock clockwork.Clock,
	log logger.Logger,
) Service {
	return &service{
		repo:   repo,
		db:     db,
		ledger: ledgerService,
		cache:  profileCache,
		config: config,
		clock:  clock,
		log:    log,
	}
}

func cacheKey(user uuid.UUID) string {
	return user.String()
}

func (s *service) GetOrCreate(ctx context.Context, user uuid.UUID) (*models.UserProfile, error) {
	if user == uuid.Nil {
		return nil, models.ErrInvalidUserID
	}

	profile, err := cache.Fetch(ctx, s.cache, cacheKey(user), s.config.CacheTTL, func(ctx context.Context) (models.UserProfile, error) {
		p, err := s.repo.GetByUserID(ctx, user)
		if err != nil {
			return models.UserProfile{}, err
		}
		return *p, nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewProfile(user), nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}

func (s *service) Get(ctx context.Context, user uuid.UUID) (*ProfileResponse, error) {
	profile, err := s.GetOrCreate(ctx, user)
	if err != nil {
		return nil, err
	}
	return ToProfileResponse(profile, s.clock.Now()), nil
}

func (s *service) PurchaseInsurance(ctx context.Context, user uuid.UUID) (*ProfileResponse, error) {
	if user == uuid.Nil {
		return nil, models.ErrInvalidUserID
	}

	now := s.clock.Now()
	cost := s.config.Cost()

	var profile *models.UserProfile
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		profile, err = s.LoadForUpdate(ctx, tx, user)
		if err != nil {
			return err
		}

		if profile.Insurance.IsLive(now) {
			return models.ErrInsuranceActive
		}

		postings := ledger.Transfer(ledger.UserAccount(user), ledger.InsuranceFundAccount(), cost, models.ReasonInsuranceBuy)
		if _, err := s.ledger.Post(ctx, tx, profile.ID, postings...); err != nil {
			return err
		}

		ActivateInsurance(profile, now, s.config.InsuranceDuration, s.config.InsuranceUses)
		return s.Save(ctx, tx, profile)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to purchase insurance: %w", err)
	}

	s.Invalidate(ctx, user)
	s.log.Info("insurance purchased", map[string]interface{}{
		"user_id":    user,
		"cost":       cost.String(),
		"expires_at": profile.Insurance.ExpiresAt,
	})
	return ToProfileResponse(profile, now), nil
}

func (s *service) LoadForUpdate(ctx context.Context, tx *gorm.DB, user uuid.UUID) (*models.UserProfile, error) {
	profile, err := s.repo.WithTx(tx).LockOrInit(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return profile, nil
}

func (s *service) Save(ctx context.Context, tx *gorm.DB, profile *models.UserProfile) error {
	if err := s.repo.WithTx(tx).Save(ctx, profile); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

func (s *service) Invalidate(ctx context.Context, user uuid.UUID) {
	if err := s.cache.Delete(ctx, cacheKey(user)); err != nil {
		s.log.Error(err, map[string]interface{}{"user_id": user, "op": "invalidate profile cache"})
	}
}
