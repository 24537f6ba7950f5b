package core

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"qaboard-backend-go/internal/datasource"
	"qaboard-backend-go/internal/db"
	"qaboard-backend-go/internal/models"
)

// seedService implements the SeedService interface: a one-shot batch loader
// that upserts the static snapshot into the remote store. Merge semantics make
// it idempotent — remote fields absent from the snapshot are preserved, and a
// rerun converges on the same end state. The in-app admin action and the
// offline seedctl command both go through this code.
type seedService struct {
	categories db.CategoryRepository
	questions  db.QuestionRepository
	solutions  db.SolutionRepository
	logger     *zap.Logger
}

// NewSeedService creates a new SeedService instance.
func NewSeedService(categories db.CategoryRepository, questions db.QuestionRepository, solutions db.SolutionRepository, logger *zap.Logger) SeedService {
	return &seedService{
		categories: categories,
		questions:  questions,
		solutions:  solutions,
		logger:     logger,
	}
}

func (s *seedService) Import(ctx context.Context, seed *models.Seed) (*SeedStats, error) {
	if seed == nil {
		return nil, errors.New("seed cannot be nil for Import operation")
	}

	stats := &SeedStats{}
	for i := range seed.Categories {
		category := seed.Categories[i]
		if err := s.categories.Upsert(ctx, &category); err != nil {
			return stats, fmt.Errorf("seeding category '%s': %w", category.Slug, err)
		}
		s.logger.Info("Seeded category", zap.String("slug", category.Slug))
		stats.Categories++
	}

	for i := range seed.Questions {
		sq := &seed.Questions[i]
		question := &models.Question{
			ID:           sq.ID,
			Category:     sq.Category,
			TitleEn:      sq.TitleEn,
			TitleZh:      sq.TitleZh,
			DetailEn:     sq.DetailEn,
			DetailZh:     sq.DetailZh,
			UpvotesCount: sq.UpvotesCount,
			CreatedBy:    "seed",
		}
		if err := s.questions.Upsert(ctx, question); err != nil {
			return stats, fmt.Errorf("seeding question '%s': %w", sq.ID, err)
		}
		stats.Questions++

		if sq.SampleSolution != nil {
			solution := &models.Solution{
				ID:           datasource.SampleSolutionID(sq.ID),
				ContentEn:    sq.SampleSolution.ContentEn,
				ContentZh:    sq.SampleSolution.ContentZh,
				UpvotesCount: sq.SampleSolution.UpvotesCount,
				CreatedBy:    "seed",
			}
			if err := s.solutions.Upsert(ctx, sq.ID, solution); err != nil {
				return stats, fmt.Errorf("seeding sample solution for question '%s': %w", sq.ID, err)
			}
			stats.Solutions++
		}
		s.logger.Info("Seeded question", zap.String("id", sq.ID))
	}

	s.logger.Info("Seeding complete",
		zap.Int("categories", stats.Categories),
		zap.Int("questions", stats.Questions),
		zap.Int("solutions", stats.Solutions))
	return stats, nil
}
