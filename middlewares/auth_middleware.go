package middlewares

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/food-ordering-app/models"
	"github.com/yeremiapane/food-ordering-app/services"
)

const (
	ctxCustomer    = "customer"
	ctxAccessToken = "access_token"
)

// SessionResolver turns an access token into the customer who owns it.
type SessionResolver interface {
	ResolveSession(ctx context.Context, accessToken string) (*models.Customer, error)
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	return token, token != ""
}

// CustomerAuth rejects requests without an active session and stores the
// session's customer on the context.
func CustomerAuth(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := BearerToken(c.GetHeader("Authorization"))
		if !ok {
			AbortWithError(c, services.ErrNotLoggedIn)
			return
		}

		customer, err := resolver.ResolveSession(c.Request.Context(), token)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		c.Set(ctxCustomer, customer)
		c.Set(ctxAccessToken, token)
		c.Next()
	}
}

// CurrentCustomer returns the customer stored by CustomerAuth.
func CurrentCustomer(c *gin.Context) *models.Customer {
	v, ok := c.Get(ctxCustomer)
	if !ok {
		return nil
	}
	customer, _ := v.(*models.Customer)
	return customer
}

func CurrentAccessToken(c *gin.Context) string {
	return c.GetString(ctxAccessToken)
}
