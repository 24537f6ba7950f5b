package api

import (
	"net/http"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"qaboard-backend-go/internal/config"
	"qaboard-backend-go/internal/core"
	"qaboard-backend-go/internal/datasource"
	"qaboard-backend-go/internal/middleware"
)

// SetupRoutes configures the page routes and the write API. Global middleware
// (logging, recovery, CORS) is applied to router before this is called, in
// cmd/server. authClient is nil when the remote store is unavailable; every
// write route is then short-circuited by the demo gate with the demo notice.
func SetupRoutes(
	router *gin.Engine,
	appConfig *config.Config,
	logger *zap.Logger,
	session *datasource.Session,
	boardService core.BoardService,
	writeService core.WriteService,
	userService core.UserService,
	seedService core.SeedService,
	authClient *auth.Client,
) {
	pageHandler := NewPageHandler(boardService, session, logger)
	writeHandler := NewWriteHandler(writeService, logger)
	sessionHandler := NewSessionHandler(session, userService, appConfig, logger)
	adminHandler := NewAdminHandler(seedService, appConfig, logger)

	// --- Board pages ---
	// The legacy fragment grammar maps one-to-one onto these paths:
	// #/ → /, #/category/{slug} → /category/{slug}, #/question/{id} →
	// /question/{id}, #/search/{text} → /search/{text} (the wildcard keeps
	// slashes embedded in the query). Anything unrecognized renders home.
	router.GET("/", pageHandler.Home)
	router.GET("/category/:slug", pageHandler.Category)
	router.GET("/question/:id", pageHandler.Question)
	router.GET("/search/*query", pageHandler.Search)
	router.NoRoute(pageHandler.Home)

	// --- Write API ---
	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/session", sessionHandler.Info)

		// Every mutating route sits behind the demo gate first (the demo
		// notice wins over an auth error) and token verification second.
		writes := apiV1.Group("", middleware.DemoGate(session))
		if authClient != nil {
			authMW := middleware.NewAuthMiddleware(authClient, logger)
			writes.Use(authMW.VerifyToken())
		}
		{
			writes.POST("/users/initialize", sessionHandler.InitializeUser)
			writes.GET("/users/me", sessionHandler.Me)

			writes.POST("/questions", writeHandler.CreateQuestion)
			writes.POST("/questions/:id/upvote", writeHandler.UpvoteQuestion)
			writes.POST("/questions/:id/solutions", writeHandler.CreateSolution)
			writes.POST("/questions/:id/solutions/:solutionId/upvote", writeHandler.UpvoteSolution)

			admin := writes.Group("/admin", middleware.RequireAdmin(appConfig))
			admin.POST("/seed", adminHandler.Seed)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "mode": session.Mode()})
	})

	logger.Info("Routes configured", zap.String("mode", session.Mode()))
}
