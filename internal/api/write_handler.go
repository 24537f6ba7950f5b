package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"qaboard-backend-go/internal/core"
	"qaboard-backend-go/internal/db"
	"qaboard-backend-go/internal/middleware"
	"qaboard-backend-go/internal/models"
	"qaboard-backend-go/internal/view"
)

// WriteHandler exposes the create and upvote mutations as a JSON API. Routes
// are registered behind the demo gate and the auth middleware, so by the time
// a handler runs the session is live and an identity is resolved.
type WriteHandler struct {
	writes core.WriteService
	logger *zap.Logger
}

// NewWriteHandler creates a new WriteHandler.
func NewWriteHandler(writes core.WriteService, logger *zap.Logger) *WriteHandler {
	return &WriteHandler{writes: writes, logger: logger}
}

// identityFromContext assembles the Identity the auth middleware stashed.
func identityFromContext(c *gin.Context) core.Identity {
	return core.Identity{
		UID:         c.GetString(middleware.CtxUserID),
		Email:       c.GetString(middleware.CtxUserEmail),
		DisplayName: c.GetString(middleware.CtxUserDisplayName),
		PhotoURL:    c.GetString(middleware.CtxUserPhotoURL),
	}
}

// CreateQuestion handles POST /api/v1/questions.
func (h *WriteHandler) CreateQuestion(c *gin.Context) {
	var req models.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}
	question, err := h.writes.CreateQuestion(c.Request.Context(), identityFromContext(c), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, question)
}

// CreateSolution handles POST /api/v1/questions/:id/solutions.
func (h *WriteHandler) CreateSolution(c *gin.Context) {
	var req models.CreateSolutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}
	solution, err := h.writes.CreateSolution(c.Request.Context(), identityFromContext(c), c.Param("id"), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, solution)
}

// UpvoteQuestion handles POST /api/v1/questions/:id/upvote.
func (h *WriteHandler) UpvoteQuestion(c *gin.Context) {
	count, err := h.writes.UpvoteQuestion(c.Request.Context(), identityFromContext(c), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, UpvoteResponse{UpvotesCount: count})
}

// UpvoteSolution handles POST /api/v1/questions/:id/solutions/:solutionId/upvote.
func (h *WriteHandler) UpvoteSolution(c *gin.Context) {
	count, err := h.writes.UpvoteSolution(c.Request.Context(), identityFromContext(c), c.Param("id"), c.Param("solutionId"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, UpvoteResponse{UpvotesCount: count})
}

// writeError maps service errors onto the API's error taxonomy.
func (h *WriteHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrDemoMode):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: view.DemoActionNotice})
	case errors.Is(err, core.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Sign-in required · 请先登录"})
	case errors.Is(err, core.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, db.ErrAlreadyVoted):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Already upvoted · 已点过赞"})
	case errors.Is(err, db.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found · 未找到"})
	default:
		h.logger.Error("Write operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Write failed", Details: err.Error()})
	}
}
