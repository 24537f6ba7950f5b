package core

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"qaboard-backend-go/internal/datasource"
	"qaboard-backend-go/internal/db"
	"qaboard-backend-go/internal/models"
)

type fakeQuestionRepo struct {
	byID    map[string]*models.Question
	created []*models.Question
	voted   map[string]bool // questionID + "/" + uid
	calls   int
}

func newFakeQuestionRepo(questions ...*models.Question) *fakeQuestionRepo {
	r := &fakeQuestionRepo{byID: map[string]*models.Question{}, voted: map[string]bool{}}
	for _, q := range questions {
		r.byID[q.ID] = q
	}
	return r
}

func (r *fakeQuestionRepo) List(ctx context.Context) ([]*models.Question, error) {
	r.calls++
	return nil, nil
}

func (r *fakeQuestionRepo) ListByCategory(ctx context.Context, slug string) ([]*models.Question, error) {
	r.calls++
	return nil, nil
}

func (r *fakeQuestionRepo) GetByID(ctx context.Context, id string) (*models.Question, error) {
	r.calls++
	if q, ok := r.byID[id]; ok {
		return q, nil
	}
	return nil, fmt.Errorf("question '%s': %w", id, db.ErrNotFound)
}

func (r *fakeQuestionRepo) Create(ctx context.Context, question *models.Question) error {
	r.calls++
	r.created = append(r.created, question)
	r.byID[question.ID] = question
	return nil
}

func (r *fakeQuestionRepo) Upsert(ctx context.Context, question *models.Question) error {
	r.calls++
	r.byID[question.ID] = question
	return nil
}

func (r *fakeQuestionRepo) Upvote(ctx context.Context, questionID, uid string) (int, error) {
	r.calls++
	q, ok := r.byID[questionID]
	if !ok {
		return 0, db.ErrNotFound
	}
	key := questionID + "/" + uid
	if r.voted[key] {
		return 0, db.ErrAlreadyVoted
	}
	r.voted[key] = true
	q.UpvotesCount++
	return q.UpvotesCount, nil
}

type fakeSolutionRepo struct {
	byQuestion map[string][]*models.Solution
	voted      map[string]bool
	calls      int
}

func newFakeSolutionRepo() *fakeSolutionRepo {
	return &fakeSolutionRepo{byQuestion: map[string][]*models.Solution{}, voted: map[string]bool{}}
}

func (r *fakeSolutionRepo) ListByQuestion(ctx context.Context, questionID string) ([]*models.Solution, error) {
	r.calls++
	return r.byQuestion[questionID], nil
}

func (r *fakeSolutionRepo) Create(ctx context.Context, questionID string, solution *models.Solution) error {
	r.calls++
	r.byQuestion[questionID] = append(r.byQuestion[questionID], solution)
	return nil
}

func (r *fakeSolutionRepo) Upsert(ctx context.Context, questionID string, solution *models.Solution) error {
	r.calls++
	r.byQuestion[questionID] = append(r.byQuestion[questionID], solution)
	return nil
}

func (r *fakeSolutionRepo) Upvote(ctx context.Context, questionID, solutionID, uid string) (int, error) {
	r.calls++
	for _, s := range r.byQuestion[questionID] {
		if s.ID == solutionID {
			key := questionID + "/" + solutionID + "/" + uid
			if r.voted[key] {
				return 0, db.ErrAlreadyVoted
			}
			r.voted[key] = true
			s.UpvotesCount++
			return s.UpvotesCount, nil
		}
	}
	return 0, db.ErrNotFound
}

func liveSession(t *testing.T) *datasource.Session {
	t.Helper()
	return datasource.NewSession(&fakeSource{}, "testdata/unused.json", false, zap.NewNop())
}

func demoSession(t *testing.T) *datasource.Session {
	t.Helper()
	return datasource.NewSession(nil, "testdata/unused.json", false, zap.NewNop())
}

func newTestWriteService(session *datasource.Session, questions *fakeQuestionRepo, solutions *fakeSolutionRepo) *writeService {
	return &writeService{
		session:   session,
		questions: questions,
		solutions: solutions,
		logger:    zap.NewNop(),
		now:       func() time.Time { return time.UnixMilli(1700000000000) },
		newID:     func() string { return "generated-id" },
	}
}

var signedIn = Identity{UID: "user-1", Email: "user@example.com"}

func TestWritesRejectedInDemoMode(t *testing.T) {
	questions := newFakeQuestionRepo()
	solutions := newFakeSolutionRepo()
	svc := newTestWriteService(demoSession(t), questions, solutions)
	ctx := context.Background()

	_, err := svc.CreateQuestion(ctx, signedIn, &models.CreateQuestionRequest{Category: "math", TitleEn: "Limits"})
	assert.ErrorIs(t, err, ErrDemoMode)

	_, err = svc.CreateSolution(ctx, signedIn, "q-1", &models.CreateSolutionRequest{ContentEn: "An answer"})
	assert.ErrorIs(t, err, ErrDemoMode)

	_, err = svc.UpvoteQuestion(ctx, signedIn, "q-1")
	assert.ErrorIs(t, err, ErrDemoMode)

	_, err = svc.UpvoteSolution(ctx, signedIn, "q-1", "s-1")
	assert.ErrorIs(t, err, ErrDemoMode)

	// The demo gate fires before any repository access.
	assert.Zero(t, questions.calls)
	assert.Zero(t, solutions.calls)
}

func TestWritesRequireIdentity(t *testing.T) {
	svc := newTestWriteService(liveSession(t), newFakeQuestionRepo(), newFakeSolutionRepo())
	ctx := context.Background()

	_, err := svc.CreateQuestion(ctx, Identity{}, &models.CreateQuestionRequest{Category: "math", TitleEn: "Limits"})
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = svc.UpvoteQuestion(ctx, Identity{}, "q-1")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestCreateQuestion(t *testing.T) {
	questions := newFakeQuestionRepo()
	svc := newTestWriteService(liveSession(t), questions, newFakeSolutionRepo())

	question, err := svc.CreateQuestion(context.Background(), signedIn, &models.CreateQuestionRequest{
		Category: " math ",
		TitleEn:  "  Limits  ",
		TitleZh:  "极限",
	})
	require.NoError(t, err)

	assert.Equal(t, "math-1700000000000", question.ID)
	assert.Equal(t, "math", question.Category)
	assert.Equal(t, "Limits", question.TitleEn)
	assert.Equal(t, "极限", question.TitleZh)
	assert.Equal(t, 0, question.UpvotesCount)
	assert.Equal(t, "user-1", question.CreatedBy)
	require.Len(t, questions.created, 1)
}

func TestCreateQuestionValidation(t *testing.T) {
	questions := newFakeQuestionRepo()
	svc := newTestWriteService(liveSession(t), questions, newFakeSolutionRepo())
	ctx := context.Background()

	_, err := svc.CreateQuestion(ctx, signedIn, &models.CreateQuestionRequest{Category: "math", TitleEn: "   "})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateQuestion(ctx, signedIn, &models.CreateQuestionRequest{Category: "", TitleEn: "Limits"})
	assert.ErrorIs(t, err, ErrValidation)

	assert.Empty(t, questions.created)
}

func TestCreateSolution(t *testing.T) {
	questions := newFakeQuestionRepo(&models.Question{ID: "q-1", TitleEn: "Limits"})
	solutions := newFakeSolutionRepo()
	svc := newTestWriteService(liveSession(t), questions, solutions)

	solution, err := svc.CreateSolution(context.Background(), signedIn, "q-1", &models.CreateSolutionRequest{
		ContentEn: " Use L'Hopital ",
		ContentZh: "使用洛必达法则",
	})
	require.NoError(t, err)

	assert.Equal(t, "generated-id", solution.ID)
	assert.Equal(t, "Use L'Hopital", solution.ContentEn)
	assert.Equal(t, "user-1", solution.CreatedBy)
	require.Len(t, solutions.byQuestion["q-1"], 1)
}

func TestCreateSolutionValidation(t *testing.T) {
	questions := newFakeQuestionRepo(&models.Question{ID: "q-1", TitleEn: "Limits"})
	solutions := newFakeSolutionRepo()
	svc := newTestWriteService(liveSession(t), questions, solutions)
	ctx := context.Background()

	_, err := svc.CreateSolution(ctx, signedIn, "q-1", &models.CreateSolutionRequest{ContentEn: "  "})
	assert.ErrorIs(t, err, ErrValidation)

	// A solution cannot dangle under a question that does not exist.
	_, err = svc.CreateSolution(ctx, signedIn, "missing", &models.CreateSolutionRequest{ContentEn: "An answer"})
	assert.ErrorIs(t, err, db.ErrNotFound)

	assert.Empty(t, solutions.byQuestion)
}

func TestUpvoteQuestionOncePerIdentity(t *testing.T) {
	questions := newFakeQuestionRepo(&models.Question{ID: "q-1", TitleEn: "Limits", UpvotesCount: 5})
	svc := newTestWriteService(liveSession(t), questions, newFakeSolutionRepo())
	ctx := context.Background()

	count, err := svc.UpvoteQuestion(ctx, signedIn, "q-1")
	require.NoError(t, err)
	assert.Equal(t, 6, count)

	_, err = svc.UpvoteQuestion(ctx, signedIn, "q-1")
	assert.ErrorIs(t, err, db.ErrAlreadyVoted)
	assert.Equal(t, 6, questions.byID["q-1"].UpvotesCount)

	// A different identity still counts.
	count, err = svc.UpvoteQuestion(ctx, Identity{UID: "user-2"}, "q-1")
	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestUpvoteQuestionNotFound(t *testing.T) {
	svc := newTestWriteService(liveSession(t), newFakeQuestionRepo(), newFakeSolutionRepo())

	_, err := svc.UpvoteQuestion(context.Background(), signedIn, "missing")
	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestUpvoteSolution(t *testing.T) {
	solutions := newFakeSolutionRepo()
	solutions.byQuestion["q-1"] = []*models.Solution{{ID: "s-1", ContentEn: "Answer", UpvotesCount: 2}}
	svc := newTestWriteService(liveSession(t), newFakeQuestionRepo(), solutions)
	ctx := context.Background()

	count, err := svc.UpvoteSolution(ctx, signedIn, "q-1", "s-1")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	_, err = svc.UpvoteSolution(ctx, signedIn, "q-1", "s-1")
	assert.ErrorIs(t, err, db.ErrAlreadyVoted)
}
