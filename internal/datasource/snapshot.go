package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"qaboard-backend-go/internal/db"
	"qaboard-backend-go/internal/models"
)

// SampleSolutionID returns the deterministic ID under which a snapshot
// question's embedded sample solution is exposed (and seeded). Deterministic
// IDs keep reseeding idempotent: both seeding paths converge on one record.
func SampleSolutionID(questionID string) string {
	return questionID + "-sample"
}

// LoadSeedFile reads and parses the static snapshot file.
func LoadSeedFile(path string) (*models.Seed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file '%s': %w", path, err)
	}
	var seed models.Seed
	if err := json.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file '%s': %w", path, err)
	}
	return &seed, nil
}

// snapshotSource implements Source over a loaded seed snapshot. It is
// read-only; the write coordinator refuses every mutation while the session
// serves from it.
type snapshotSource struct {
	seed *models.Seed
}

// NewSnapshotSource creates a Source over an in-memory seed snapshot.
func NewSnapshotSource(seed *models.Seed) Source {
	if seed == nil {
		seed = &models.Seed{}
	}
	return &snapshotSource{seed: seed}
}

// LoadSnapshotSource reads the seed file at path and wraps it as a Source.
func LoadSnapshotSource(path string) (Source, error) {
	seed, err := LoadSeedFile(path)
	if err != nil {
		return nil, err
	}
	return NewSnapshotSource(seed), nil
}

func (s *snapshotSource) question(sq *models.SeedQuestion) *models.Question {
	return &models.Question{
		ID:           sq.ID,
		Category:     sq.Category,
		TitleEn:      sq.TitleEn,
		TitleZh:      sq.TitleZh,
		DetailEn:     sq.DetailEn,
		DetailZh:     sq.DetailZh,
		UpvotesCount: sq.UpvotesCount,
		CreatedBy:    "seed",
	}
}

func (s *snapshotSource) ListCategories(ctx context.Context) ([]*models.Category, error) {
	categories := make([]*models.Category, 0, len(s.seed.Categories))
	for i := range s.seed.Categories {
		c := s.seed.Categories[i]
		categories = append(categories, &c)
	}
	categories = validCategories(categories)
	sortCategories(categories)
	return categories, nil
}

func (s *snapshotSource) GetCategory(ctx context.Context, slug string) (*models.Category, error) {
	for i := range s.seed.Categories {
		if s.seed.Categories[i].Slug == slug {
			c := s.seed.Categories[i]
			return &c, nil
		}
	}
	return nil, fmt.Errorf("category '%s' not in snapshot: %w", slug, db.ErrNotFound)
}

func (s *snapshotSource) ListQuestions(ctx context.Context) ([]*models.Question, error) {
	questions := make([]*models.Question, 0, len(s.seed.Questions))
	for i := range s.seed.Questions {
		questions = append(questions, s.question(&s.seed.Questions[i]))
	}
	questions = validQuestions(questions)
	sortQuestions(questions)
	return questions, nil
}

func (s *snapshotSource) ListQuestionsByCategory(ctx context.Context, slug string) ([]*models.Question, error) {
	var questions []*models.Question
	for i := range s.seed.Questions {
		if s.seed.Questions[i].Category == slug {
			questions = append(questions, s.question(&s.seed.Questions[i]))
		}
	}
	questions = validQuestions(questions)
	sortQuestions(questions)
	return questions, nil
}

func (s *snapshotSource) GetQuestion(ctx context.Context, id string) (*models.Question, error) {
	for i := range s.seed.Questions {
		if s.seed.Questions[i].ID == id {
			return s.question(&s.seed.Questions[i]), nil
		}
	}
	return nil, fmt.Errorf("question '%s' not in snapshot: %w", id, db.ErrNotFound)
}

// ListSolutions exposes at most the single embedded sample solution a snapshot
// question may carry.
func (s *snapshotSource) ListSolutions(ctx context.Context, questionID string) ([]*models.Solution, error) {
	for i := range s.seed.Questions {
		sq := &s.seed.Questions[i]
		if sq.ID != questionID {
			continue
		}
		if sq.SampleSolution == nil {
			return nil, nil
		}
		return []*models.Solution{{
			ID:           SampleSolutionID(sq.ID),
			ContentEn:    sq.SampleSolution.ContentEn,
			ContentZh:    sq.SampleSolution.ContentZh,
			UpvotesCount: sq.SampleSolution.UpvotesCount,
			CreatedBy:    "seed",
		}}, nil
	}
	return nil, nil
}
