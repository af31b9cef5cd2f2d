package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"club-site.backend/internal/domain/entities"
	domainerrors "club-site.backend/internal/domain/errors"
	"club-site.backend/internal/interfaces/http/response"
	"club-site.backend/pkg/logger"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// AdminKey is the gin context key for the verified admin identity
	AdminKey = "admin"

	msgNotAuthorized = "Not authorized to access this route"
)

// TokenVerifier decodes a bearer token into the admin identity it was issued to.
type TokenVerifier interface {
	Verify(token string) (*entities.AdminIdentity, error)
}

// AuthMiddleware admits only requests carrying a valid admin bearer token.
func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if !strings.HasPrefix(authHeader, BearerPrefix) {
			logger.Debug(c.Request.Context(), "Missing bearer token")
			response.Error(c, domainerrors.Unauthorized(msgNotAuthorized))
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, BearerPrefix))
		if token == "" {
			response.Error(c, domainerrors.Unauthorized(msgNotAuthorized))
			return
		}

		identity, err := verifier.Verify(token)
		if err != nil {
			response.Error(c, err)
			return
		}

		c.Set(AdminKey, identity)
		ctx := context.WithValue(c.Request.Context(), logger.AdminIDKey, identity.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetAdmin returns the identity attached by AuthMiddleware.
func GetAdmin(c *gin.Context) (*entities.AdminIdentity, bool) {
	v, exists := c.Get(AdminKey)
	if !exists {
		return nil, false
	}
	identity, ok := v.(*entities.AdminIdentity)
	return identity, ok
}
