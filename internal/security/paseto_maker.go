package security

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/o1egl/paseto"
	"golang.org/x/crypto/chacha20poly1305"
)

// PasetoMaker issues v2.local PASETO tokens with a symmetric key
type PasetoMaker struct {
	paseto       *paseto.V2
	symmetricKey []byte
	clock        clockwork.Clock
}

var _ Maker = (*PasetoMaker)(nil)

// NewPasetoMaker creates a PasetoMaker. The key must be exactly 32 bytes.
func NewPasetoMaker(symmetricKey string, clock clockwork.Clock) (*PasetoMaker, error) {
	if len(symmetricKey) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("invalid key size: must be exactly %d characters", chacha20poly1305.KeySize)
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &PasetoMaker{
		paseto:       paseto.NewV2(),
		symmetricKey: []byte(symmetricKey),
		clock:        clock,
	}, nil
}

func (m *PasetoMaker) CreateToken(userID uuid.UUID, duration time.Duration, scope string) (string, *Payload, error) {
	payload, err := NewPayload(userID, m.clock.Now(), duration, scope)
	if err != nil {
		return "", nil, err
	}

	token, err := m.paseto.Encrypt(m.symmetricKey, payload, nil)
	if err != nil {
		return "", nil, err
	}
	return token, payload, nil
}

func (m *PasetoMaker) VerifyToken(token string) (*Payload, error) {
	payload := &Payload{}

	if err := m.paseto.Decrypt(token, m.symmetricKey, payload, nil); err != nil {
		return nil, ErrInvalidToken
	}

	if err := payload.Valid(m.clock.Now()); err != nil {
		return nil, err
	}
	return payload, nil
}
