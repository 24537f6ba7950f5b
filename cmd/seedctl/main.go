package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"qaboard-backend-go/internal/config"
	"qaboard-backend-go/internal/core"
	"qaboard-backend-go/internal/datasource"
	"qaboard-backend-go/internal/db"
)

var (
	seedPath string
	timeout  time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "seedctl",
	Short: "Import the local seed snapshot into Firestore",
	Long: `seedctl reads the board's seed JSON file and upserts its categories,
questions, and sample solutions into Firestore. Existing documents are
merged, so live upvote counts and user-created content survive re-runs.`,
	RunE:          runImport,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVar(&seedPath, "seed", "", "path to the seed JSON file (defaults to SEED_PATH)")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 60*time.Second, "overall timeout for the import")
}

func runImport(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	appConfig, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if !appConfig.RemoteConfigured() {
		return fmt.Errorf("firebase is not configured; set FIREBASE_PROJECT_ID and credentials")
	}

	path := seedPath
	if path == "" {
		path = appConfig.SeedPath
	}
	seed, err := datasource.LoadSeedFile(path)
	if err != nil {
		return fmt.Errorf("loading seed file %s: %w", path, err)
	}

	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize Zap logger: %v", err)
	}
	defer zapLogger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	clients, err := db.InitFirebase(ctx, appConfig, zapLogger)
	if err != nil {
		return fmt.Errorf("initializing Firebase: %w", err)
	}
	defer clients.Close()

	seedService := core.NewSeedService(
		db.NewFirestoreCategoryRepository(clients.Firestore),
		db.NewFirestoreQuestionRepository(clients.Firestore),
		db.NewFirestoreSolutionRepository(clients.Firestore),
		zapLogger,
	)

	stats, err := seedService.Import(ctx, seed)
	if err != nil {
		return fmt.Errorf("importing seed data: %w", err)
	}

	fmt.Printf("Seed import complete: %d categories, %d questions, %d sample solutions\n",
		stats.Categories, stats.Questions, stats.Solutions)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
