package middleware

import (
	"net/http"
	"strings"

	"stars_admin/internal/pkg/session"
	"stars_admin/pkg/response"
	"stars_admin/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and attaches the admin session
// to the request. The raw token is kept on the session so upstream calls
// can forward it.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, response.ErrTokenInvalid, "Authorization header is required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Error(c, http.StatusUnauthorized, response.ErrTokenInvalid, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(parts[1])
		if err != nil {
			response.Error(c, http.StatusUnauthorized, response.ErrTokenInvalid, "Invalid or expired token")
			c.Abort()
			return
		}

		session.Inject(c, &session.Session{
			UserID: claims.UserID,
			Role:   claims.Role,
			Token:  parts[1],
		})
		c.Next()
	}
}

// AdminOnly rejects sessions that do not carry the admin role. It must run
// after AuthMiddleware.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := session.FromContext(c)
		if !sess.IsAdmin() {
			response.Error(c, http.StatusForbidden, response.ErrNoPermission, "Admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
