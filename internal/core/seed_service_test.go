package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"qaboard-backend-go/internal/datasource"
	"qaboard-backend-go/internal/models"
)

type fakeCategoryRepo struct {
	upserted map[string]*models.Category
	err      error
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{upserted: map[string]*models.Category{}}
}

func (r *fakeCategoryRepo) List(ctx context.Context) ([]*models.Category, error) {
	return nil, nil
}

func (r *fakeCategoryRepo) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return nil, nil
}

func (r *fakeCategoryRepo) Upsert(ctx context.Context, category *models.Category) error {
	if r.err != nil {
		return r.err
	}
	r.upserted[category.Slug] = category
	return nil
}

func sampleSeed() *models.Seed {
	return &models.Seed{
		Categories: []models.Category{
			{Slug: "math", TitleEn: "Mathematics", Order: 1},
			{Slug: "space", TitleEn: "Space Exploration", Order: 2},
		},
		Questions: []models.SeedQuestion{
			{
				ID:           "math-1",
				Category:     "math",
				TitleEn:      "Limits",
				UpvotesCount: 5,
				SampleSolution: &models.SeedSolution{
					ContentEn:    "Use L'Hopital",
					UpvotesCount: 2,
				},
			},
			{
				ID:           "space-1",
				Category:     "space",
				TitleEn:      "Mars Landing",
				UpvotesCount: 10,
			},
		},
	}
}

func TestSeedImport(t *testing.T) {
	categories := newFakeCategoryRepo()
	questions := newFakeQuestionRepo()
	solutions := newFakeSolutionRepo()
	svc := NewSeedService(categories, questions, solutions, zap.NewNop())

	stats, err := svc.Import(context.Background(), sampleSeed())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Categories)
	assert.Equal(t, 2, stats.Questions)
	assert.Equal(t, 1, stats.Solutions)

	assert.Contains(t, categories.upserted, "math")
	require.Contains(t, questions.byID, "math-1")
	assert.Equal(t, "seed", questions.byID["math-1"].CreatedBy)

	// The embedded sample lands under its deterministic ID, so a rerun
	// converges on the same document instead of accumulating duplicates.
	require.Len(t, solutions.byQuestion["math-1"], 1)
	assert.Equal(t, datasource.SampleSolutionID("math-1"), solutions.byQuestion["math-1"][0].ID)
}

func TestSeedImportNilSeed(t *testing.T) {
	svc := NewSeedService(newFakeCategoryRepo(), newFakeQuestionRepo(), newFakeSolutionRepo(), zap.NewNop())

	_, err := svc.Import(context.Background(), nil)
	assert.Error(t, err)
}

func TestSeedImportStopsOnRepositoryError(t *testing.T) {
	categories := newFakeCategoryRepo()
	categories.err = assert.AnError
	questions := newFakeQuestionRepo()
	svc := NewSeedService(categories, questions, newFakeSolutionRepo(), zap.NewNop())

	_, err := svc.Import(context.Background(), sampleSeed())
	assert.ErrorIs(t, err, assert.AnError)
	assert.Empty(t, questions.byID)
}
