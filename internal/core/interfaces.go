package core

import (
	"context"

	"qaboard-backend-go/internal/models"
)

// Identity is the resolved signed-in user of a request, extracted from the
// verified Firebase ID token by the auth middleware.
type Identity struct {
	UID         string
	Email       string
	DisplayName string
	PhotoURL    string
}

// TopQuestion pairs a carousel question with its highest-voted solution, if any.
type TopQuestion struct {
	Question    *models.Question
	TopSolution *models.Solution
}

// BoardService assembles the read-side data of the four board pages from the
// data source adapter.
type BoardService interface {
	// Home returns the ordered category grid and the top-N question carousel,
	// each carousel entry carrying its single top solution.
	Home(ctx context.Context) ([]*models.Category, []TopQuestion, error)
	// CategoryPage returns the category (synthesized from the slug when the
	// data source has no record for it) and its full question list.
	CategoryPage(ctx context.Context, slug string) (*models.Category, []*models.Question, error)
	// QuestionPage returns the question and its solutions sorted by votes.
	QuestionPage(ctx context.Context, id string) (*models.Question, []*models.Solution, error)
	// Search matches the query against question titles in memory: English
	// substring case-insensitive, Chinese substring case-sensitive, capped.
	Search(ctx context.Context, query string) ([]*models.Question, error)
}

// WriteService performs the create and upvote mutations against the remote
// store. Every operation is rejected up front while the session is in demo
// mode, before any remote I/O.
type WriteService interface {
	CreateQuestion(ctx context.Context, identity Identity, req *models.CreateQuestionRequest) (*models.Question, error)
	CreateSolution(ctx context.Context, identity Identity, questionID string, req *models.CreateSolutionRequest) (*models.Solution, error)
	// UpvoteQuestion and UpvoteSolution return the new counter value. One vote
	// per (identity, target); duplicates report db.ErrAlreadyVoted unchanged.
	UpvoteQuestion(ctx context.Context, identity Identity, questionID string) (int, error)
	UpvoteSolution(ctx context.Context, identity Identity, questionID, solutionID string) (int, error)
}

// UserService maintains the lazily-created user profile documents.
type UserService interface {
	// GetOrCreate returns the profile for identity, creating it on first
	// sign-in. The boolean reports whether a profile was created.
	GetOrCreate(ctx context.Context, identity Identity) (*models.User, bool, error)
}

// SeedService is the privileged bulk loader copying the static snapshot into
// the remote store with merge semantics.
type SeedService interface {
	Import(ctx context.Context, seed *models.Seed) (*SeedStats, error)
}

// SeedStats summarizes an import run.
type SeedStats struct {
	Categories int `json:"categories"`
	Questions  int `json:"questions"`
	Solutions  int `json:"solutions"`
}
