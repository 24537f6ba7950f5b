// Package datasource provides the uniform read path of the board: a Source
// abstraction with a remote (Firestore) and a snapshot (local seed file)
// implementation, and a Session that selects between them, falling back to
// the snapshot — stickily, for the life of the process — when the remote
// store is unreachable or unconfigured ("demo mode").
package datasource

import (
	"context"
	"sort"

	"qaboard-backend-go/internal/models"
)

// Source is the data source adapter contract. Implementations return
// normalized, validated and sorted records: categories ascending by order,
// questions and solutions descending by upvotesCount with stable ties.
// An empty list is a valid result, not a failure.
type Source interface {
	ListCategories(ctx context.Context) ([]*models.Category, error)
	GetCategory(ctx context.Context, slug string) (*models.Category, error)
	ListQuestions(ctx context.Context) ([]*models.Question, error)
	ListQuestionsByCategory(ctx context.Context, slug string) ([]*models.Question, error)
	GetQuestion(ctx context.Context, id string) (*models.Question, error)
	ListSolutions(ctx context.Context, questionID string) ([]*models.Solution, error)
}

func sortCategories(categories []*models.Category) {
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Order < categories[j].Order
	})
}

func sortQuestions(questions []*models.Question) {
	sort.SliceStable(questions, func(i, j int) bool {
		return questions[i].UpvotesCount > questions[j].UpvotesCount
	})
}

func sortSolutions(solutions []*models.Solution) {
	sort.SliceStable(solutions, func(i, j int) bool {
		return solutions[i].UpvotesCount > solutions[j].UpvotesCount
	})
}

// validCategories drops records missing required keys so malformed remote
// documents fail closed instead of rendering empty fields.
func validCategories(categories []*models.Category) []*models.Category {
	out := categories[:0]
	for _, c := range categories {
		if c.Slug == "" || c.TitleEn == "" {
			continue
		}
		out = append(out, c)
	}
	return out
}

func validQuestions(questions []*models.Question) []*models.Question {
	out := questions[:0]
	for _, q := range questions {
		if q.ID == "" || q.TitleEn == "" {
			continue
		}
		out = append(out, q)
	}
	return out
}

func validSolutions(solutions []*models.Solution) []*models.Solution {
	out := solutions[:0]
	for _, s := range solutions {
		if s.ID == "" || (s.ContentEn == "" && s.ContentZh == "") {
			continue
		}
		out = append(out, s)
	}
	return out
}
