package security

import (
	"time"

	"github.com/google/uuid"
)

const TokenScopeAccess = "access"

// Maker makes a new token
type Maker interface {
	// CreateToken creates a new token for a specific user and duration
	CreateToken(userID uuid.UUID, duration time.Duration, scope string) (string, *Payload, error)

	// VerifyToken checks if the token is valid or not
	VerifyToken(token string) (*Payload, error)
}
