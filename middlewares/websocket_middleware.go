package middlewares

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/food-ordering-app/models"
)

const ctxSessionExpiresAt = "session_expires_at"

// ActiveSessionResolver returns the open session behind an access token, with
// its Customer loaded.
type ActiveSessionResolver interface {
	ActiveSession(ctx context.Context, accessToken string) (*models.CustomerAuth, error)
}

// WebSocketAuthMiddleware authenticates websocket upgrades, which cannot carry
// an Authorization header from browsers, through the ?token= query parameter.
func WebSocketAuthMiddleware(resolver ActiveSessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		session, err := resolver.ActiveSession(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set(ctxCustomer, &session.Customer)
		c.Set(ctxAccessToken, token)
		c.Set(ctxSessionExpiresAt, session.ExpiresAt)
		c.Next()
	}
}

// SessionExpiresAt returns when the session stored by WebSocketAuthMiddleware ends.
func SessionExpiresAt(c *gin.Context) time.Time {
	return c.GetTime(ctxSessionExpiresAt)
}
