package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"qaboard-backend-go/internal/api"
	"qaboard-backend-go/internal/config"
	"qaboard-backend-go/internal/core"
	"qaboard-backend-go/internal/datasource"
	"qaboard-backend-go/internal/db"
	"qaboard-backend-go/internal/middleware"
	"qaboard-backend-go/web"
)

func main() {
	// .env is optional; real deployments configure the environment directly.
	_ = godotenv.Load()

	appConfig, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load application configuration: %v", err)
	}

	var zapLogger *zap.Logger
	if strings.ToLower(appConfig.GinMode) == "release" {
		zapLogger, err = zap.NewProduction()
	} else {
		zapLogger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to initialize Zap logger: %v", err)
	}
	defer zapLogger.Sync()

	// --- Remote store probe ---
	// Firebase init failure is not fatal: the board degrades to demo mode and
	// serves the local snapshot with writes disabled.
	var clients *db.Clients
	if appConfig.ForceDemoMode {
		zapLogger.Info("FORCE_DEMO_MODE set; skipping Firebase initialization")
	} else if !appConfig.RemoteConfigured() {
		zapLogger.Warn("Firebase is not configured; starting in demo mode")
	} else {
		initCtx, cancelInit := context.WithTimeout(context.Background(), 15*time.Second)
		clients, err = db.InitFirebase(initCtx, appConfig, zapLogger)
		cancelInit()
		if err != nil {
			zapLogger.Warn("Firebase initialization failed; starting in demo mode", zap.Error(err))
			clients = nil
		}
	}
	defer clients.Close()

	// --- Data source session and services ---
	var remote datasource.Source
	var session *datasource.Session
	var writeService core.WriteService
	var userService core.UserService
	var seedService core.SeedService

	if clients != nil {
		categoryRepo := db.NewFirestoreCategoryRepository(clients.Firestore)
		questionRepo := db.NewFirestoreQuestionRepository(clients.Firestore)
		solutionRepo := db.NewFirestoreSolutionRepository(clients.Firestore)
		userRepo := db.NewFirestoreUserRepository(clients.Firestore)

		remote = datasource.NewRemoteSource(categoryRepo, questionRepo, solutionRepo)
		session = datasource.NewSession(remote, appConfig.SeedPath, appConfig.ForceDemoMode, zapLogger)

		writeService = core.NewWriteService(session, questionRepo, solutionRepo, zapLogger)
		userService = core.NewUserService(userRepo, zapLogger)
		seedService = core.NewSeedService(categoryRepo, questionRepo, solutionRepo, zapLogger)
	} else {
		session = datasource.NewSession(nil, appConfig.SeedPath, false, zapLogger)
		writeService = core.NewWriteService(session, nil, nil, zapLogger)
		userService = core.NewUserService(nil, zapLogger)
		seedService = core.NewSeedService(nil, nil, nil, zapLogger)
	}
	boardService := core.NewBoardService(session, zapLogger)
	zapLogger.Info("Services initialized", zap.String("mode", session.Mode()))

	// --- Gin engine ---
	if strings.ToLower(appConfig.GinMode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()
	router.SetHTMLTemplate(web.Templates())

	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	if appConfig.ClientURL != "" {
		router.Use(middleware.CORSMiddleware(appConfig))
		zapLogger.Info("CORS middleware enabled", zap.String("clientURL", appConfig.ClientURL))
	}

	var authClient *auth.Client
	if clients != nil {
		authClient = clients.Auth
	}
	api.SetupRoutes(router, appConfig, zapLogger, session, boardService, writeService, userService, seedService, authClient)

	// --- HTTP server with graceful shutdown ---
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Port),
		Handler: router,
	}

	zapLogger.Info("Starting HTTP server",
		zap.String("address", httpServer.Addr),
		zap.String("ginMode", gin.Mode()),
		zap.String("dataMode", session.Mode()))

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	zapLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	zapLogger.Info("Server exiting gracefully")
}
