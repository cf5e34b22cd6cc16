package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MedCareServices01/clinic-scheduler/internal/auth"
	"github.com/MedCareServices01/clinic-scheduler/internal/httperr"
)

const ContextIdentity = "identity"

// RequireRole gates every mutating route: it extracts the bearer token,
// authorizes it for the required role and stashes the resolved identity for
// the handler's ownership checks.
func RequireRole(gate *auth.Gate, role auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Authorization header required.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Use: Bearer <token>.")
			c.Abort()
			return
		}

		identity, err := gate.Authorize(c.Request.Context(), parts[1], role)
		if err != nil {
			httperr.From(c, err)
			c.Abort()
			return
		}

		c.Set(ContextIdentity, identity)
		c.Next()
	}
}

// Identity returns the identity resolved by RequireRole.
func Identity(c *gin.Context) auth.Identity {
	return c.MustGet(ContextIdentity).(auth.Identity)
}
