package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"qaboard-backend-go/internal/config"
)

// RequireAdmin allows the request through only when the authenticated email is
// an exact member of the static admin allow-list. It must run after
// VerifyToken. This gates the seeding action; real enforcement, if any, lives
// in the remote store's access rules.
func RequireAdmin(appConfig *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(CtxUserEmail)
		if !appConfig.IsAdmin(email) {
			c.AbortWithStatusJSON(http.StatusForbidden, errorResponse{Error: "Admin privileges required"})
			return
		}
		c.Next()
	}
}
