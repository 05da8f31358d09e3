package settlement

import (
	"context"

	"github.com/google/uuid"
	"github.com/joefazee/streaks/app/betting"
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

func (m *MockRepository) Create(ctx context.Context, record *models.Settlement) error {
	return m.Called(ctx, record).Error(0)
}

func (m *MockRepository) ListByUser(ctx context.Context, user uuid.UUID, page, perPage int) ([]models.Settlement, int64, error) {
	args := m.Called(ctx, user, page, perPage)
	return args.Get(0).([]models.Settlement), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) WithTx(_ *gorm.DB) Repository {
	return m
}

type MockService struct {
	mock.Mock
}

func (m *MockService) result(args mock.Arguments) (*SettlementResponse, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*SettlementResponse), args.Error(1)
}

func (m *MockService) Settle(ctx context.Context, caller, marketID uuid.UUID) (*SettlementResponse, error) {
	return m.result(m.Called(ctx, caller, marketID))
}

func (m *MockService) SettleBet(ctx context.Context, betID, caller uuid.UUID) (*SettlementResponse, error) {
	return m.result(m.Called(ctx, betID, caller))
}

func (m *MockService) SettleLoss(ctx context.Context, caller, marketID uuid.UUID) (*SettlementResponse, error) {
	return m.result(m.Called(ctx, caller, marketID))
}

func (m *MockService) SweepLosses(ctx context.Context, caller, marketID uuid.UUID) (*SweepResponse, error) {
	args := m.Called(ctx, caller, marketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*SweepResponse), args.Error(1)
}

func (m *MockService) ListForUser(ctx context.Context, user uuid.UUID, page, perPage int) (*SettlementListResponse, error) {
	args := m.Called(ctx, user, page, perPage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*SettlementListResponse), args.Error(1)
}

type mockMarkets struct {
	markets.Service
	mock.Mock
}

func (m *mockMarkets) Load(ctx context.Context, _ *gorm.DB, id uuid.UUID) (*models.Market, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Market), args.Error(1)
}

type mockBets struct {
	betting.Service
	mock.Mock
}

func (m *mockBets) LoadForUpdate(ctx context.Context, _ *gorm.DB, id uuid.UUID) (*models.Bet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bet), args.Error(1)
}

func (m *mockBets) Save(ctx context.Context, _ *gorm.DB, bet *models.Bet) error {
	return m.Called(ctx, bet).Error(0)
}

func (m *mockBets) UnsettledLosers(ctx context.Context, marketID uuid.UUID, winner int) ([]models.Bet, error) {
	args := m.Called(ctx, marketID, winner)
	return args.Get(0).([]models.Bet), args.Error(1)
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
