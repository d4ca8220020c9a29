package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"fitbook/internal/api"
	"fitbook/internal/logger"

	"github.com/gin-gonic/gin"
)

const (
	principalKey = "principal"

	credentialsDetail = "Could not validate credentials"
)

// ErrUnknownSubject is returned by a Resolver when the token subject has no
// matching account.
var ErrUnknownSubject = errors.New("token subject does not resolve to a user")

// Principal is the authenticated caller.
type Principal struct {
	UserID int
	Email  string
}

type Resolver interface {
	ResolvePrincipal(ctx context.Context, email string) (*Principal, error)
}

// AuthMiddleware accepts only a valid bearer token whose subject still
// exists. Every rejection uses the same detail so callers cannot probe
// which accounts exist.
func AuthMiddleware(secret string, resolver Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			unauthorized(c)
			return
		}

		claims, err := ValidateToken(tokenString, secret)
		if err != nil {
			logger.Debug("Rejected bearer token", "error", err)
			unauthorized(c)
			return
		}

		principal, err := resolver.ResolvePrincipal(c.Request.Context(), claims.Subject)
		if err != nil {
			if errors.Is(err, ErrUnknownSubject) {
				unauthorized(c)
				return
			}
			logger.Error("Failed to resolve token subject", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "Internal server error"})
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(strings.TrimSpace(parts[0]), "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Detail: credentialsDetail})
}

func CurrentPrincipal(c *gin.Context) (*Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return nil, false
	}
	p, ok := v.(*Principal)
	return p, ok && p != nil
}

func GetUserID(c *gin.Context) (int, bool) {
	p, ok := CurrentPrincipal(c)
	if !ok {
		return 0, false
	}
	return p.UserID, true
}
