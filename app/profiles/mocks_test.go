package profiles

import (
	"context"

	"github.com/google/uuid"
	"github.com/joefazee/streaks/app/ledger"
	"github.com/joefazee/streaks/models"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetByUserID(ctx context.Context, user uuid.UUID) (*models.UserProfile, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockRepository) LockOrInit(ctx context.Context, user uuid.UUID) (*models.UserProfile, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockRepository) Save(ctx context.Context, profile *models.UserProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockRepository) WithTx(_ *gorm.DB) Repository {
	return m
}

type MockService struct {
	mock.Mock
}

func (m *MockService) GetOrCreate(ctx context.Context, user uuid.UUID) (*models.UserProfile, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockService) Get(ctx context.Context, user uuid.UUID) (*ProfileResponse, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ProfileResponse), args.Error(1)
}

func (m *MockService) PurchaseInsurance(ctx context.Context, user uuid.UUID) (*ProfileResponse, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ProfileResponse), args.Error(1)
}

func (m *MockService) LoadForUpdate(ctx context.Context, tx *gorm.DB, user uuid.UUID) (*models.UserProfile, error) {
	args := m.Called(ctx, tx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockService) Save(ctx context.Context, tx *gorm.DB, profile *models.UserProfile) error {
	return m.Called(ctx, tx, profile).Error(0)
}

func (m *MockService) Invalidate(ctx context.Context, user uuid.UUID) {
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
