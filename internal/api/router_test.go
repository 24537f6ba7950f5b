package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"qaboard-backend-go/internal/config"
	"qaboard-backend-go/internal/core"
	"qaboard-backend-go/internal/datasource"
	"qaboard-backend-go/internal/view"
	"qaboard-backend-go/web"
)

// newDemoRouter wires the full route table over a demo-mode session backed by
// the testdata snapshot, the way cmd/server wires it when Firebase is absent.
func newDemoRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	appConfig := &config.Config{SeedPath: "testdata/seed.json"}
	session := datasource.NewSession(nil, appConfig.SeedPath, false, logger)

	router := gin.New()
	router.SetHTMLTemplate(web.Templates())
	SetupRoutes(router, appConfig, logger, session,
		core.NewBoardService(session, logger),
		core.NewWriteService(session, nil, nil, logger),
		core.NewUserService(nil, logger),
		core.NewSeedService(nil, nil, nil, logger),
		nil)
	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestHomePage(t *testing.T) {
	router := newDemoRouter(t)

	w := get(router, "/")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "Mathematics")
	assert.Contains(t, body, "数学")
	// Carousel leads with the highest-voted question.
	assert.Contains(t, body, "Mars Landing")
	// Demo mode shows the banner exactly once per page.
	assert.Equal(t, 1, strings.Count(body, "Demo Data"))
}

func TestUnknownPathRendersHome(t *testing.T) {
	router := newDemoRouter(t)

	w := get(router, "/no/such/page")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Mathematics")
}

func TestCategoryPage(t *testing.T) {
	router := newDemoRouter(t)

	w := get(router, "/category/math")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "Limits")
	assert.Contains(t, body, "极限")
	assert.Contains(t, body, "👍 5")
	assert.Equal(t, 1, strings.Count(body, "Demo Data"))
	assert.NotContains(t, body, "Mars Landing")
}

func TestCategoryPageUnknownSlug(t *testing.T) {
	router := newDemoRouter(t)

	w := get(router, "/category/mystery")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "mystery")
	assert.Contains(t, body, view.NoDataNotice)
}

func TestQuestionPage(t *testing.T) {
	router := newDemoRouter(t)

	w := get(router, "/question/math-1")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "Limits · 极限")
	assert.Contains(t, body, "使用洛必达法则")
	assert.Contains(t, body, "👍 2")
	// Demo mode disables every write control.
	assert.Contains(t, body, "disabled")
	assert.Equal(t, 1, strings.Count(body, "Demo Data"))
}

func TestQuestionPageWithoutSolutions(t *testing.T) {
	router := newDemoRouter(t)

	w := get(router, "/question/math-2")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), view.NoSolutionNotice)
}

func TestQuestionPageNotFound(t *testing.T) {
	router := newDemoRouter(t)

	w := get(router, "/question/nope")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), view.NotFoundNotice)
}

func TestSearchPage(t *testing.T) {
	router := newDemoRouter(t)

	w := get(router, "/search/mars")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "Mars Landing")
	assert.NotContains(t, body, "Limits")
}

func TestSearchPageChineseQuery(t *testing.T) {
	router := newDemoRouter(t)

	w := get(router, "/search/极限")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Limits")
}

func TestSearchPageEmbeddedSlash(t *testing.T) {
	router := newDemoRouter(t)

	// The wildcard route keeps slashes inside the query text.
	w := get(router, "/search/a/b")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), view.NoResultsNotice)
}

func TestSessionEndpointReportsDemoMode(t *testing.T) {
	router := newDemoRouter(t)

	w := get(router, "/api/v1/session")
	require.Equal(t, http.StatusOK, w.Code)

	var resp SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "demo", resp.Mode)
	assert.False(t, resp.WritesEnabled)
}

func TestWritesBlockedInDemoMode(t *testing.T) {
	router := newDemoRouter(t)

	paths := []struct {
		path string
		body string
	}{
		{"/api/v1/questions", `{"category":"math","titleEn":"New question"}`},
		{"/api/v1/questions/math-1/upvote", ""},
		{"/api/v1/questions/math-1/solutions", `{"contentEn":"An answer"}`},
		{"/api/v1/questions/math-1/solutions/math-1-sample/upvote", ""},
		{"/api/v1/users/initialize", ""},
		{"/api/v1/admin/seed", ""},
	}
	for _, p := range paths {
		w := postJSON(router, p.path, p.body)
		require.Equal(t, http.StatusForbidden, w.Code, "path %s", p.path)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, view.DemoActionNotice, resp.Error)
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := newDemoRouter(t)

	w := get(router, "/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"mode":"demo"`)
	assert.Contains(t, w.Body.String(), `"status":"UP"`)
}
