package markets

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/joefazee/streaks/app/oracle"
	"github.com/joefazee/streaks/internal/logger"
	"github.com/joefazee/streaks/internal/sanitizer"
	"github.com/joefazee/streaks/internal/validator"
	"github.com/joefazee/streaks/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type serviceFixture struct {
	repo   *MockRepository
	oracle *oracle.StaticOracle
	clock  *clockwork.FakeClock
	svc    Service
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()
	clock := clockwork.NewFakeClock()
	o, err := oracle.NewStaticOracle(map[string]string{"SOL/USD": "210"}, clock)
	require.NoError(t, err)

	repo := new(MockRepository)
	return &serviceFixture{
		repo:   repo,
		oracle: o,
		clock:  clock,
		svc:    NewService(repo, nil, nil, o, sanitizer.NewHTMLStripper(), GetDefaultConfig(), clock, logger.NewNullLogger()),
	}
}

func (f *serviceFixture) oracleMarket() *models.Market {
	return &models.Market{
		ID:             uuid.New(),
		CreatorID:      uuid.New(),
		Question:       "SOL above 200?",
		Outcomes:       models.StringList{"YES", "NO"},
		Pools:          models.AmountList{decimal.Zero, decimal.Zero},
		ResolutionTime: f.clock.Now().Add(-time.Minute),
		Oracle:         &models.OracleCondition{Symbol: "SOL/USD", Comparison: models.ComparisonAbove, Target: decimal.NewFromInt(200)},
	}
}

func TestService_Create_Rejects(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	t.Run("anonymous creator", func(t *testing.T) {
		_, err := f.svc.Create(ctx, uuid.Nil, validRequest(f.clock.Now()))
		assert.ErrorIs(t, err, models.ErrInvalidUserID)
	})

	t.Run("invalid input carries field errors", func(t *testing.T) {
		req := validRequest(f.clock.Now())
		req.Outcomes = []string{"only"}
		req.ResolutionTime = f.clock.Now().Add(-time.Hour)

		_, err := f.svc.Create(ctx, uuid.New(), req)
		require.ErrorIs(t, err, models.ErrInvalidInput)

		var verr *validator.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "outcomes")
		assert.Contains(t, verr.Fields, "resolution_time")
	})

	t.Run("markup only question", func(t *testing.T) {
		req := validRequest(f.clock.Now())
		req.Question = "<img src=x onerror=alert(1)>"

		_, err := f.svc.Create(ctx, uuid.New(), req)
		assert.ErrorIs(t, err, models.ErrInvalidInput)
	})

	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Get(t *testing.T) {
	f := newServiceFixture(t)
	m := f.oracleMarket()
	f.repo.On("GetByID", mock.Anything, m.ID).Return(m, nil)
	missing := uuid.New()
	f.repo.On("GetByID", mock.Anything, missing).Return(nil, gorm.ErrRecordNotFound)

	resp, err := f.svc.Get(context.Background(), m.ID)
	require.NoError(t, err)
	assert.Equal(t, m.ID, resp.ID)

	_, err = f.svc.Get(context.Background(), missing)
	assert.ErrorIs(t, err, models.ErrRecordNotFound)
}

func TestService_List(t *testing.T) {
	f := newServiceFixture(t)
	markets := []models.Market{*f.oracleMarket(), *f.oracleMarket()}
	filters := &MarketFilters{Page: 2, PerPage: 500}
	f.repo.On("GetAll", mock.Anything, filters, 100).Return(markets, int64(22), nil)

	resp, err := f.svc.List(context.Background(), filters)
	require.NoError(t, err)
	assert.Len(t, resp.Markets, 2)
	assert.Equal(t, int64(22), resp.Total)
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, defaultPerPage, resp.PerPage)

	_, err = f.svc.List(context.Background(), &MarketFilters{SortBy: "nonsense"})
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestService_ResolveWithOracle_WritesNothingOnRejection(t *testing.T) {
	ctx := context.Background()

	t.Run("stranger", func(t *testing.T) {
		f := newServiceFixture(t)
		m := f.oracleMarket()
		f.repo.On("GetByID", mock.Anything, m.ID).Return(m, nil)

		_, err := f.svc.ResolveWithOracle(ctx, m.ID, uuid.New())
		assert.ErrorIs(t, err, models.ErrUnauthorized)
	})

	t.Run("before resolution time", func(t *testing.T) {
		f := newServiceFixture(t)
		m := f.oracleMarket()
		m.ResolutionTime = f.clock.Now().Add(time.Hour)
		f.repo.On("GetByID", mock.Anything, m.ID).Return(m, nil)

		_, err := f.svc.ResolveWithOracle(ctx, m.ID, m.CreatorID)
		assert.ErrorIs(t, err, models.ErrTooEarly)
	})

	t.Run("no oracle condition", func(t *testing.T) {
		f := newServiceFixture(t)
		m := f.oracleMarket()
		m.Oracle = nil
		f.repo.On("GetByID", mock.Anything, m.ID).Return(m, nil)

		_, err := f.svc.ResolveWithOracle(ctx, m.ID, m.CreatorID)
		assert.ErrorIs(t, err, models.ErrInvalidInput)
	})

	t.Run("oracle unavailable", func(t *testing.T) {
		f := newServiceFixture(t)
		f.oracle.Remove("SOL/USD")
		m := f.oracleMarket()
		f.repo.On("GetByID", mock.Anything, m.ID).Return(m, nil)

		_, err := f.svc.ResolveWithOracle(ctx, m.ID, m.CreatorID)
		assert.ErrorIs(t, err, models.ErrOracleUnavailable)
		assert.False(t, m.Resolved)
	})

	t.Run("already resolved", func(t *testing.T) {
		f := newServiceFixture(t)
		m := f.oracleMarket()
		require.NoError(t, m.Resolve(0, models.ResolutionManual, f.clock.Now()))
		f.repo.On("GetByID", mock.Anything, m.ID).Return(m, nil)

		_, err := f.svc.ResolveWithOracle(ctx, m.ID, m.CreatorID)
		assert.ErrorIs(t, err, models.ErrAlreadyResolved)
	})
}
