package db

import (
	"context"

	"qaboard-backend-go/internal/models"
)

// CategoryRepository defines the interface for category storage operations.
// Categories are written only by the seeding utility.
type CategoryRepository interface {
	List(ctx context.Context) ([]*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	// Upsert writes a category with merge semantics: fields already present on
	// the document but absent from the snapshot are preserved.
	Upsert(ctx context.Context, category *models.Category) error
}

// QuestionRepository defines the interface for question storage operations.
type QuestionRepository interface {
	List(ctx context.Context) ([]*models.Question, error)
	ListByCategory(ctx context.Context, slug string) ([]*models.Question, error)
	GetByID(ctx context.Context, id string) (*models.Question, error)
	Create(ctx context.Context, question *models.Question) error
	// Upsert writes a question with merge semantics (seeding only).
	Upsert(ctx context.Context, question *models.Question) error
	// Upvote atomically records a vote for uid and increments upvotesCount,
	// returning the new count. Returns ErrAlreadyVoted if a vote document for
	// uid already exists, ErrNotFound if the question does not exist.
	Upvote(ctx context.Context, questionID, uid string) (int, error)
}

// SolutionRepository defines the interface for solution storage operations.
// Solutions live in the questions/{id}/solutions subcollection.
type SolutionRepository interface {
	ListByQuestion(ctx context.Context, questionID string) ([]*models.Solution, error)
	Create(ctx context.Context, questionID string, solution *models.Solution) error
	// Upsert writes a solution with merge semantics (seeding only).
	Upsert(ctx context.Context, questionID string, solution *models.Solution) error
	// Upvote follows the same contract as QuestionRepository.Upvote.
	Upvote(ctx context.Context, questionID, solutionID, uid string) (int, error)
}

// UserRepository defines the interface for user profile storage operations.
// Profiles are created lazily on first sign-in and never updated afterwards.
type UserRepository interface {
	GetByID(ctx context.Context, uid string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}
