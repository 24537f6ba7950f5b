package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"qaboard-backend-go/internal/datasource"
	"qaboard-backend-go/internal/view"
)

// DemoGate blocks every write route while the session is in demo mode.
// It runs before authentication: in demo mode there may be no auth client at
// all, and the client must see the demo notice, not an auth error.
func DemoGate(session *datasource.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		if session.DemoMode() {
			c.AbortWithStatusJSON(http.StatusForbidden, errorResponse{Error: view.DemoActionNotice})
			return
		}
		c.Next()
	}
}
