package security

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "01234567890123456789012345678901"

func TestNewPasetoMaker_KeySize(t *testing.T) {
	_, err := NewPasetoMaker("short", nil)
	assert.Error(t, err)

	m, err := NewPasetoMaker(testKey, nil)
	require.NoError(t, err)
	assert.NotNil(t, m)
}

func TestPasetoMaker_RoundTrip(t *testing.T) {
	clock := clockwork.NewFakeClock()
	m, err := NewPasetoMaker(testKey, clock)
	require.NoError(t, err)

	userID := uuid.New()
	token, issued, err := m.CreateToken(userID, time.Hour, TokenScopeAccess)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(token, "v2.local."))

	payload, err := m.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, payload.UserID)
	assert.Equal(t, issued.ID, payload.ID)
	assert.Equal(t, TokenScopeAccess, payload.Scope)
	assert.WithinDuration(t, clock.Now().Add(time.Hour), payload.ExpiredAt, time.Second)
}

func TestPasetoMaker_Expired(t *testing.T) {
	clock := clockwork.NewFakeClock()
	m, err := NewPasetoMaker(testKey, clock)
	require.NoError(t, err)

	token, _, err := m.CreateToken(uuid.New(), time.Minute, TokenScopeAccess)
	require.NoError(t, err)

	clock.Advance(2 * time.Minute)
	_, err = m.VerifyToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestPasetoMaker_WrongKeyOrGarbage(t *testing.T) {
	m, err := NewPasetoMaker(testKey, nil)
	require.NoError(t, err)
	other, err := NewPasetoMaker(strings.Repeat("k", 32), nil)
	require.NoError(t, err)

	token, _, err := other.CreateToken(uuid.New(), time.Minute, TokenScopeAccess)
	require.NoError(t, err)

	_, err = m.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.VerifyToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPayload_Valid(t *testing.T) {
	now := time.Now()
	p, err := NewPayload(uuid.New(), now, time.Minute, TokenScopeAccess)
	require.NoError(t, err)

	assert.NoError(t, p.Valid(now))
	assert.ErrorIs(t, p.Valid(now.Add(2*time.Minute)), ErrExpiredToken)

	p.UserID = uuid.Nil
	assert.ErrorIs(t, p.Valid(now), ErrInvalidToken)
}
