package datasource

import (
	"context"

	"qaboard-backend-go/internal/db"
	"qaboard-backend-go/internal/models"
)

// remoteSource implements Source over the Firestore repositories.
type remoteSource struct {
	categories db.CategoryRepository
	questions  db.QuestionRepository
	solutions  db.SolutionRepository
}

// NewRemoteSource creates a Source backed by the Firestore repositories.
func NewRemoteSource(categories db.CategoryRepository, questions db.QuestionRepository, solutions db.SolutionRepository) Source {
	return &remoteSource{
		categories: categories,
		questions:  questions,
		solutions:  solutions,
	}
}

func (r *remoteSource) ListCategories(ctx context.Context) ([]*models.Category, error) {
	categories, err := r.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	categories = validCategories(categories)
	sortCategories(categories)
	return categories, nil
}

func (r *remoteSource) GetCategory(ctx context.Context, slug string) (*models.Category, error) {
	return r.categories.GetBySlug(ctx, slug)
}

func (r *remoteSource) ListQuestions(ctx context.Context) ([]*models.Question, error) {
	questions, err := r.questions.List(ctx)
	if err != nil {
		return nil, err
	}
	questions = validQuestions(questions)
	sortQuestions(questions)
	return questions, nil
}

func (r *remoteSource) ListQuestionsByCategory(ctx context.Context, slug string) ([]*models.Question, error) {
	questions, err := r.questions.ListByCategory(ctx, slug)
	if err != nil {
		return nil, err
	}
	questions = validQuestions(questions)
	sortQuestions(questions)
	return questions, nil
}

func (r *remoteSource) GetQuestion(ctx context.Context, id string) (*models.Question, error) {
	return r.questions.GetByID(ctx, id)
}

func (r *remoteSource) ListSolutions(ctx context.Context, questionID string) ([]*models.Solution, error) {
	solutions, err := r.solutions.ListByQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}
	solutions = validSolutions(solutions)
	sortSolutions(solutions)
	return solutions, nil
}
