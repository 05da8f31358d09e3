package markets

import (
	"context"

	"github.com/google/uuid"
	"github.com/joefazee/streaks/models"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetAll(ctx context.Context, filters *MarketFilters, maxPerPage int) ([]models.Market, int64, error) {
	args := m.Called(ctx, filters, maxPerPage)
	return args.Get(0).([]models.Market), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Market, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Market), args.Error(1)
}

func (m *MockRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*models.Market, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Market), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, market *models.Market) error {
	return m.Called(ctx, market).Error(0)
}

func (m *MockRepository) Update(ctx context.Context, market *models.Market) error {
	return m.Called(ctx, market).Error(0)
}

func (m *MockRepository) WithTx(_ *gorm.DB) Repository {
	return m
}

type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, creator uuid.UUID, req *CreateMarketRequest) (*MarketResponse, error) {
	args := m.Called(ctx, creator, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*MarketResponse), args.Error(1)
}

func (m *MockService) Resolve(ctx context.Context, id, caller uuid.UUID, winningOutcome int) (*MarketResponse, error) {
	args := m.Called(ctx, id, caller, winningOutcome)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*MarketResponse), args.Error(1)
}

func (m *MockService) ResolveWithOracle(ctx context.Context, id, caller uuid.UUID) (*MarketResponse, error) {
	args := m.Called(ctx, id, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*MarketResponse), args.Error(1)
}

func (m *MockService) Get(ctx context.Context, id uuid.UUID) (*MarketResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*MarketResponse), args.Error(1)
}

func (m *MockService) List(ctx context.Context, filters *MarketFilters) (*MarketListResponse, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*MarketListResponse), args.Error(1)
}

func (m *MockService) Load(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*models.Market, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Market), args.Error(1)
}

func (m *MockService) LoadForUpdate(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*models.Market, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Market), args.Error(1)
}

func (m *MockService) Save(ctx context.Context, tx *gorm.DB, market *models.Market) error {
	return m.Called(ctx, tx, market).Error(0)
}
