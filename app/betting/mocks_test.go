package betting

import (
	"context"

	"github.com/google/uuid"
	"github.com/joefazee/streaks/app/ledger"
	"github.com/joefazee/streaks/app/markets"
	"github.com/joefazee/streaks/app/profiles"
	"github.com/joefazee/streaks/models"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Bet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bet), args.Error(1)
}

func (m *MockRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*models.Bet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bet), args.Error(1)
}

func (m *MockRepository) ListByMarket(ctx context.Context, marketID uuid.UUID, page, perPage int) ([]models.Bet, int64, error) {
	args := m.Called(ctx, marketID, page, perPage)
	return args.Get(0).([]models.Bet), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) ListUnsettledLosers(ctx context.Context, marketID uuid.UUID, winner int) ([]models.Bet, error) {
	args := m.Called(ctx, marketID, winner)
	return args.Get(0).([]models.Bet), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, bet *models.Bet) error {
	return m.Called(ctx, bet).Error(0)
}

func (m *MockRepository) Update(ctx context.Context, bet *models.Bet) error {
	return m.Called(ctx, bet).Error(0)
}

func (m *MockRepository) WithTx(_ *gorm.DB) Repository {
	return m
}

type MockService struct {
	mock.Mock
}

func (m *MockService) PlaceBet(ctx context.Context, user, marketID uuid.UUID, req *PlaceBetRequest) (*BetResponse, error) {
	args := m.Called(ctx, user, marketID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*BetResponse), args.Error(1)
}

func (m *MockService) Get(ctx context.Context, id uuid.UUID) (*BetResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*BetResponse), args.Error(1)
}

func (m *MockService) GetForUser(ctx context.Context, marketID, user uuid.UUID) (*BetResponse, error) {
	args := m.Called(ctx, marketID, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*BetResponse), args.Error(1)
}

func (m *MockService) ListByMarket(ctx context.Context, marketID uuid.UUID, page, perPage int) (*BetListResponse, error) {
	args := m.Called(ctx, marketID, page, perPage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*BetListResponse), args.Error(1)
}

func (m *MockService) UnsettledLosers(ctx context.Context, marketID uuid.UUID, winner int) ([]models.Bet, error) {
	args := m.Called(ctx, marketID, winner)
	return args.Get(0).([]models.Bet), args.Error(1)
}

func (m *MockService) LoadForUpdate(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*models.Bet, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bet), args.Error(1)
}

func (m *MockService) Save(ctx context.Context, tx *gorm.DB, bet *models.Bet) error {
	return m.Called(ctx, tx, bet).Error(0)
}

// mockMarkets stands in for the market store inside a bet transaction
type mockMarkets struct {
	markets.Service
	mock.Mock
}

func (m *mockMarkets) LoadForUpdate(ctx context.Context, _ *gorm.DB, id uuid.UUID) (*models.Market, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Market), args.Error(1)
}

func (m *mockMarkets) Save(ctx context.Context, _ *gorm.DB, market *models.Market) error {
	return m.Called(ctx, market).Error(0)
}

type mockProfiles struct {
	profiles.Service
	mock.Mock
}

func (m *mockProfiles) LoadForUpdate(ctx context.Context, _ *gorm.DB, user uuid.UUID) (*models.UserProfile, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *mockProfiles) Save(ctx context.Context, _ *gorm.DB, p *models.UserProfile) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProfiles) Invalidate(ctx context.Context, user uuid.UUID) {
	m.Called(ctx, user)
}

type mockLedger struct {
	ledger.Service
	mock.Mock
}

func (m *mockLedger) Post(ctx context.Context, _ *gorm.DB, reference uuid.UUID, postings ...ledger.Posting) ([]models.Entry, error) {
	args := m.Called(ctx, reference, postings)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Entry), args.Error(1)
}
