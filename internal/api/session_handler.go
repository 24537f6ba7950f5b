package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"qaboard-backend-go/internal/config"
	"qaboard-backend-go/internal/core"
	"qaboard-backend-go/internal/datasource"
)

// SessionHandler serves the session-mode probe and the user profile
// endpoints a client calls around sign-in.
type SessionHandler struct {
	session   *datasource.Session
	users     core.UserService
	appConfig *config.Config
	logger    *zap.Logger
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(session *datasource.Session, users core.UserService, appConfig *config.Config, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{session: session, users: users, appConfig: appConfig, logger: logger}
}

// Info handles GET /api/v1/session. Public: clients use it to decide whether
// to offer sign-in and write controls at all.
func (h *SessionHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, SessionResponse{
		Mode:          h.session.Mode(),
		WritesEnabled: !h.session.DemoMode(),
	})
}

// InitializeUser handles POST /api/v1/users/initialize: ensures the profile
// document for the authenticated identity exists, creating it on first
// sign-in. 201 when created, 200 when it already existed.
func (h *SessionHandler) InitializeUser(c *gin.Context) {
	identity := identityFromContext(c)
	user, created, err := h.users.GetOrCreate(c.Request.Context(), identity)
	if err != nil {
		h.logger.Error("Failed to initialize user profile", zap.String("uid", identity.UID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to initialize user profile", Details: err.Error()})
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, MeResponse{User: user, IsAdmin: h.appConfig.IsAdmin(identity.Email)})
}

// Me handles GET /api/v1/users/me: the authenticated profile plus the admin
// flag gating visibility of the seeding action.
func (h *SessionHandler) Me(c *gin.Context) {
	identity := identityFromContext(c)
	user, _, err := h.users.GetOrCreate(c.Request.Context(), identity)
	if err != nil {
		h.logger.Error("Failed to load user profile", zap.String("uid", identity.UID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load user profile", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, MeResponse{User: user, IsAdmin: h.appConfig.IsAdmin(identity.Email)})
}
