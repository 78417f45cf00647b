package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionChecker reports whether the current session belongs to an admin.
type SessionChecker interface {
	IsAdmin() bool
}

// SessionGuard rejects requests on admin routes unless an authenticated
// admin session is active.
func SessionGuard(session SessionChecker, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.IsAdmin() {
			log.Warn("admin route denied",
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": "admin access required",
			})
			return
		}
		c.Next()
	}
}
