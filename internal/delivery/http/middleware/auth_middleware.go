package middleware

import (
	"net/http"
	"strings"

	"dailywage-backend/internal/delivery/http/response"
	"dailywage-backend/internal/domain"
	"dailywage-backend/pkg/auth"
	"dailywage-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware requires "Authorization: Bearer <token>" and exposes the
// verified identity under the domain.Key* context keys.
func AuthMiddleware(tokens *auth.TokenManager, secLogger *security.SecurityLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString := ""
		if scheme, rest, ok := strings.Cut(header, " "); ok && strings.EqualFold(scheme, "Bearer") {
			tokenString = strings.TrimSpace(rest)
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "No token provided", nil)
			c.Abort()
			return
		}

		identity, err := tokens.Verify(tokenString)
		if err != nil {
			secLogger.LogUnauthorized(c.Request.Context(), c.ClientIP(), requestIDOf(c), err.Error())
			response.Error(c, http.StatusUnauthorized, "Invalid or expired token", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), identity.ID)
		c.Set(string(domain.KeyUserName), identity.Name)
		c.Set(string(domain.KeyUserPhone), identity.Phone)
		c.Set(string(domain.KeyUserRole), identity.Role)

		c.Next()
	}
}

// CurrentUserID returns the id set by AuthMiddleware.
func CurrentUserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(string(domain.KeyUserID))
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok && id > 0
}
