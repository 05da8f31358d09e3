package betting

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var placedAt = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func betRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "market_id", "user_id", "outcome_index", "amount", "placed_at", "claimed", "loss_settled"})
}

func TestRepository_GetForUpdate(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewRepository(gormDB)

	id, market, user := uuid.New(), uuid.New(), uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "bets" WHERE id = \$1 ORDER BY "bets"."id" LIMIT \$2 FOR UPDATE`).
		WillReturnRows(betRows().AddRow(id.String(), market.String(), user.String(), 1, "2.5", placedAt, false, false))

	bet, err := repo.GetForUpdate(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, bet.ID)
	assert.Equal(t, user, bet.UserID)
	assert.Equal(t, 1, bet.OutcomeIndex)
	assert.Equal(t, "2.5", bet.Amount.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewRepository(gormDB)

	mock.ExpectQuery(`SELECT \* FROM "bets" WHERE id = \$1`).WillReturnRows(betRows())

	bet, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, bet)
}

func TestRepository_ListByMarket(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewRepository(gormDB)

	market := uuid.New()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "bets" WHERE market_id = \$1`).
		WithArgs(market).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`SELECT \* FROM "bets" WHERE market_id = \$1 ORDER BY placed_at asc,id LIMIT \$2 OFFSET \$3`).
		WillReturnRows(betRows().AddRow(uuid.NewString(), market.String(), uuid.NewString(), 0, "1", placedAt, false, false))

	bets, total, err := repo.ListByMarket(context.Background(), market, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, bets, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListUnsettledLosers(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewRepository(gormDB)

	market := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "bets" WHERE market_id = \$1 AND outcome_index <> \$2 AND loss_settled = \$3 ORDER BY placed_at asc`).
		WithArgs(market, 0, false).
		WillReturnRows(betRows().
			AddRow(uuid.NewString(), market.String(), uuid.NewString(), 1, "1", placedAt, false, false).
			AddRow(uuid.NewString(), market.String(), uuid.NewString(), 2, "4", placedAt, false, false))

	bets, err := repo.ListUnsettledLosers(context.Background(), market, 0)
	require.NoError(t, err)
	require.Len(t, bets, 2)
	assert.Equal(t, 2, bets[1].OutcomeIndex)
	assert.NoError(t, mock.ExpectationsWereMet())
}
