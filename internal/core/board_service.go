package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"qaboard-backend-go/internal/datasource"
	"qaboard-backend-go/internal/db"
	"qaboard-backend-go/internal/models"
)

const (
	// homeCarouselSize is how many top questions the home page shows.
	homeCarouselSize = 12
	// searchResultCap bounds the naive in-memory search.
	searchResultCap = 80
)

// boardService implements BoardService over the data source adapter. It is
// read-only and works identically in live and demo mode: the session hides
// which source actually answered.
type boardService struct {
	source datasource.Source
	logger *zap.Logger
}

// NewBoardService creates a new BoardService instance.
func NewBoardService(source datasource.Source, logger *zap.Logger) BoardService {
	return &boardService{source: source, logger: logger}
}

func (s *boardService) Home(ctx context.Context) ([]*models.Category, []TopQuestion, error) {
	categories, err := s.source.ListCategories(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list categories: %w", err)
	}

	questions, err := s.source.ListQuestions(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list questions: %w", err)
	}
	if len(questions) > homeCarouselSize {
		questions = questions[:homeCarouselSize]
	}

	carousel := make([]TopQuestion, 0, len(questions))
	for _, q := range questions {
		entry := TopQuestion{Question: q}
		solutions, err := s.source.ListSolutions(ctx, q.ID)
		if err != nil {
			// The carousel row still renders without its top solution.
			s.logger.Warn("Failed to load top solution for carousel",
				zap.String("questionId", q.ID), zap.Error(err))
		} else if len(solutions) > 0 {
			entry.TopSolution = solutions[0]
		}
		carousel = append(carousel, entry)
	}
	return categories, carousel, nil
}

func (s *boardService) CategoryPage(ctx context.Context, slug string) (*models.Category, []*models.Question, error) {
	category, err := s.source.GetCategory(ctx, slug)
	if err != nil {
		if !errors.Is(err, db.ErrNotFound) {
			return nil, nil, fmt.Errorf("failed to get category '%s': %w", slug, err)
		}
		// Unknown slug still renders a page: title falls back to the slug and
		// the question list shows its explicit empty state.
		category = &models.Category{Slug: slug, TitleEn: slug}
	}

	questions, err := s.source.ListQuestionsByCategory(ctx, slug)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list questions for category '%s': %w", slug, err)
	}
	return category, questions, nil
}

func (s *boardService) QuestionPage(ctx context.Context, id string) (*models.Question, []*models.Solution, error) {
	question, err := s.source.GetQuestion(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	solutions, err := s.source.ListSolutions(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list solutions for question '%s': %w", id, err)
	}
	return question, solutions, nil
}

// Search filters all question titles in memory. English titles match
// case-insensitively, Chinese titles by exact-case containment.
func (s *boardService) Search(ctx context.Context, query string) ([]*models.Question, error) {
	questions, err := s.source.ListQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions for search: %w", err)
	}

	lowered := strings.ToLower(query)
	var hits []*models.Question
	for _, q := range questions {
		if strings.Contains(strings.ToLower(q.TitleEn), lowered) ||
			(q.TitleZh != "" && strings.Contains(q.TitleZh, query)) {
			hits = append(hits, q)
			if len(hits) == searchResultCap {
				break
			}
		}
	}
	return hits, nil
}
