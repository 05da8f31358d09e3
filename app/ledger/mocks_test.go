package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/joefazee/streaks/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Post(ctx context.Context, tx *gorm.DB, reference uuid.UUID, postings ...Posting) ([]models.Entry, error) {
	args := m.Called(ctx, tx, reference, postings)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Entry), args.Error(1)
}

func (m *MockService) Deposit(ctx context.Context, acct AccountRef, amount decimal.Decimal, reason models.EntryReason) (*BalanceResponse, error) {
	args := m.Called(ctx, acct, amount, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*BalanceResponse), args.Error(1)
}

func (m *MockService) Airdrop(ctx context.Context, user uuid.UUID, req *AirdropRequest) (*BalanceResponse, error) {
	args := m.Called(ctx, user, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*BalanceResponse), args.Error(1)
}

func (m *MockService) Balance(ctx context.Context, acct AccountRef) (*BalanceResponse, error) {
	args := m.Called(ctx, acct)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*BalanceResponse), args.Error(1)
}

func (m *MockService) Entries(ctx context.Context, acct AccountRef, page, perPage int) (*EntryListResponse, error) {
	args := m.Called(ctx, acct, page, perPage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*EntryListResponse), args.Error(1)
}

func (m *MockService) SeedInsuranceFund(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
