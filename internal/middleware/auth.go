package middleware

import (
	"net/http"
	"strings"

	"gridops/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const identityKey = "Identity"

// Identity is the caller resolved from a verified bearer token. Only the
// signature is checked per request; the user row is not re-read.
type Identity struct {
	UserID   uuid.UUID
	Username string
}

// RequireAuth verifies the Authorization header and attaches the caller's
// identity. Missing header, malformed header and failed verification all
// look the same from the outside.
func RequireAuth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			unauthorized(c)
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			unauthorized(c)
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			unauthorized(c)
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			unauthorized(c)
			return
		}

		c.Set(identityKey, Identity{UserID: userID, Username: claims.Username})
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
}

// CurrentIdentity returns the identity set by RequireAuth.
func CurrentIdentity(c *gin.Context) (Identity, bool) {
	val, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	id, ok := val.(Identity)
	return id, ok
}
