package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"qaboard-backend-go/internal/core"
	"qaboard-backend-go/internal/datasource"
	"qaboard-backend-go/internal/db"
	"qaboard-backend-go/internal/models"
	"qaboard-backend-go/internal/view"
)

// PageHandler renders the four board pages. Every request is a fresh,
// idempotent full render; read-path failures never surface as errors — the
// session falls back to the snapshot and the page renders in demo mode.
type PageHandler struct {
	board   core.BoardService
	session *datasource.Session
	logger  *zap.Logger
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(board core.BoardService, session *datasource.Session, logger *zap.Logger) *PageHandler {
	return &PageHandler{board: board, session: session, logger: logger}
}

// Home renders the category grid and the top-question carousel.
func (h *PageHandler) Home(c *gin.Context) {
	categories, carousel, err := h.board.Home(c.Request.Context())
	if err != nil {
		// The session already exhausted the fallback; render the empty states.
		h.logger.Warn("Home render degraded to empty data", zap.Error(err))
	}
	c.HTML(http.StatusOK, "home.tmpl", view.Home(h.session.DemoMode(), categories, carousel))
}

// Category renders the full question list of one category.
func (h *PageHandler) Category(c *gin.Context) {
	slug := c.Param("slug")
	category, questions, err := h.board.CategoryPage(c.Request.Context(), slug)
	if err != nil {
		h.logger.Warn("Category render degraded to empty data", zap.String("slug", slug), zap.Error(err))
		c.HTML(http.StatusOK, "category.tmpl",
			view.Category(h.session.DemoMode(), &models.Category{Slug: slug, TitleEn: slug}, nil))
		return
	}
	c.HTML(http.StatusOK, "category.tmpl", view.Category(h.session.DemoMode(), category, questions))
}

// Question renders a question with its solutions, or the explicit not-found
// state when the ID is absent from both the remote store and the snapshot.
func (h *PageHandler) Question(c *gin.Context) {
	id := c.Param("id")
	question, solutions, err := h.board.QuestionPage(c.Request.Context(), id)
	if err != nil {
		if !errors.Is(err, db.ErrNotFound) {
			h.logger.Warn("Question render failed", zap.String("id", id), zap.Error(err))
		}
		c.HTML(http.StatusNotFound, "question.tmpl", view.QuestionNotFound(h.session.DemoMode(), id))
		return
	}
	c.HTML(http.StatusOK, "question.tmpl", view.Question(h.session.DemoMode(), question, solutions))
}

// Search renders substring matches over question titles. The query is the
// remainder of the path, so it may itself contain slashes.
func (h *PageHandler) Search(c *gin.Context) {
	query := strings.TrimPrefix(c.Param("query"), "/")
	hits, err := h.board.Search(c.Request.Context(), query)
	if err != nil {
		h.logger.Warn("Search render degraded to empty data", zap.String("query", query), zap.Error(err))
	}
	c.HTML(http.StatusOK, "search.tmpl", view.Search(h.session.DemoMode(), query, hits))
}
