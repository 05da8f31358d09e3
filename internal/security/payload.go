package security

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Different types of error that returned from the VerifyToken
var (
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidToken = errors.New("invalid token")
)

// Payload contains the payload data of the token
type Payload struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiredAt time.Time `json:"expired_at"`
	Scope     string    `json:"scope"`
}

// NewPayload creates a new payload for userID issued at now
func NewPayload(userID uuid.UUID, now time.Time, duration time.Duration, scope string) (*Payload, error) {
	tokenID, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}

	return &Payload{
		ID:        tokenID,
		UserID:    userID,
		IssuedAt:  now,
		ExpiredAt: now.Add(duration),
		Scope:     scope,
	}, nil
}

// Valid checks the payload against now
func (p *Payload) Valid(now time.Time) error {
	if p.UserID == uuid.Nil {
		return ErrInvalidToken
	}
	if now.After(p.ExpiredAt) {
		return ErrExpiredToken
	}
	return nil
}
