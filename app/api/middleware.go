package api

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joefazee/streaks/internal/security"
)

const (
	AuthorizationHeaderKey  = "Authorization"
	AuthorizationTypeBearer = "Bearer"

	callerKey = "callerID"
)

// RequireIdentity verifies the bearer token and stores the caller's identity
// on the context. Requests without a valid token are rejected with 401.
func RequireIdentity(tokenMaker security.Maker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeaderKey)
		if authHeader == "" {
			UnauthorizedResponse(c)
			c.Abort()
			return
		}

		fields := strings.Fields(authHeader)
		if len(fields) < 2 || fields[0] != AuthorizationTypeBearer {
			UnauthorizedResponse(c)
			c.Abort()
			return
		}

		payload, err := tokenMaker.VerifyToken(fields[1])
		if err != nil || payload.Scope != security.TokenScopeAccess {
			UnauthorizedResponse(c)
			c.Abort()
			return
		}

		c.Set(callerKey, payload.UserID)
		c.Next()
	}
}

// CallerID returns the identity stored by RequireIdentity, or uuid.Nil
func CallerID(c *gin.Context) uuid.UUID {
	v, exists := c.Get(callerKey)
	if !exists {
		return uuid.Nil
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}

// SetCallerID stores id as the request's caller
func SetCallerID(c *gin.Context, id uuid.UUID) {
	c.Set(callerKey, id)
}
