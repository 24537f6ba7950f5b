package middleware

import (
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Context keys populated by the auth middleware for downstream handlers.
const (
	CtxUserID          = "userID"
	CtxUserEmail       = "userEmail"
	CtxUserDisplayName = "userDisplayName"
	CtxUserPhotoURL    = "userPhotoURL"
)

// errorResponse mirrors api.ErrorResponse locally to avoid an import cycle.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// AuthMiddleware provides Gin middleware for Firebase ID token authentication.
type AuthMiddleware struct {
	authClient *auth.Client
	logger     *zap.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware instance. The auth client
// must be non-nil; in demo mode the write routes are blocked by the demo gate
// before authentication, so this middleware is only constructed when the
// remote store is live.
func NewAuthMiddleware(authClient *auth.Client, logger *zap.Logger) *AuthMiddleware {
	if authClient == nil {
		panic("Firebase Auth client is not initialized for AuthMiddleware")
	}
	return &AuthMiddleware{authClient: authClient, logger: logger}
}

// VerifyToken verifies the Firebase ID token from the Authorization header and
// stashes the identity claims in the Gin context. Without a valid token the
// request aborts with 401 before any write is attempted.
func (m *AuthMiddleware) VerifyToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: "Sign-in required · 请先登录"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: "Authorization header format must be 'Bearer {token}'"})
			return
		}

		token, err := m.authClient.VerifyIDToken(c.Request.Context(), parts[1])
		if err != nil {
			m.logger.Warn("Failed to verify Firebase ID token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: "Invalid or expired authentication token"})
			return
		}

		c.Set(CtxUserID, token.UID)
		if email, ok := token.Claims["email"].(string); ok {
			c.Set(CtxUserEmail, email)
		}
		if name, ok := token.Claims["name"].(string); ok {
			c.Set(CtxUserDisplayName, name)
		}
		if picture, ok := token.Claims["picture"].(string); ok {
			c.Set(CtxUserPhotoURL, picture)
		}

		c.Next()
	}
}
