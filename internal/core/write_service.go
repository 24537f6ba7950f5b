package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"qaboard-backend-go/internal/datasource"
	"qaboard-backend-go/internal/db"
	"qaboard-backend-go/internal/models"
)

// writeService implements WriteService against the Firestore repositories.
// The repositories may be nil when the remote store is unconfigured; the demo
// gate runs first, so they are never touched in that state.
type writeService struct {
	session   *datasource.Session
	questions db.QuestionRepository
	solutions db.SolutionRepository
	logger    *zap.Logger

	now   func() time.Time // injectable for deterministic IDs in tests
	newID func() string
}

// NewWriteService creates a new WriteService instance.
func NewWriteService(session *datasource.Session, questions db.QuestionRepository, solutions db.SolutionRepository, logger *zap.Logger) WriteService {
	return &writeService{
		session:   session,
		questions: questions,
		solutions: solutions,
		logger:    logger,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// guard enforces the two preconditions every mutation shares: the session must
// not be in demo mode, and an identity must be resolved.
func (s *writeService) guard(identity Identity) error {
	if s.session.DemoMode() {
		return ErrDemoMode
	}
	if identity.UID == "" {
		return ErrUnauthenticated
	}
	return nil
}

func (s *writeService) CreateQuestion(ctx context.Context, identity Identity, req *models.CreateQuestionRequest) (*models.Question, error) {
	if err := s.guard(identity); err != nil {
		return nil, err
	}
	category := strings.TrimSpace(req.Category)
	if category == "" {
		return nil, fmt.Errorf("%w: category is required", ErrValidation)
	}
	titleEn := strings.TrimSpace(req.TitleEn)
	if titleEn == "" {
		return nil, fmt.Errorf("%w: titleEn is required", ErrValidation)
	}

	question := &models.Question{
		ID:           fmt.Sprintf("%s-%d", category, s.now().UnixMilli()),
		Category:     category,
		TitleEn:      titleEn,
		TitleZh:      strings.TrimSpace(req.TitleZh),
		DetailEn:     strings.TrimSpace(req.DetailEn),
		DetailZh:     strings.TrimSpace(req.DetailZh),
		UpvotesCount: 0,
		CreatedBy:    identity.UID,
	}
	if err := s.questions.Create(ctx, question); err != nil {
		return nil, err
	}
	s.logger.Info("Question created",
		zap.String("id", question.ID),
		zap.String("category", category),
		zap.String("createdBy", identity.UID))
	return question, nil
}

func (s *writeService) CreateSolution(ctx context.Context, identity Identity, questionID string, req *models.CreateSolutionRequest) (*models.Solution, error) {
	if err := s.guard(identity); err != nil {
		return nil, err
	}
	if questionID == "" {
		return nil, fmt.Errorf("%w: question id is required", ErrValidation)
	}
	contentEn := strings.TrimSpace(req.ContentEn)
	if contentEn == "" {
		return nil, fmt.Errorf("%w: contentEn is required", ErrValidation)
	}

	// The parent must exist; a dangling solution would never render.
	if _, err := s.questions.GetByID(ctx, questionID); err != nil {
		return nil, err
	}

	solution := &models.Solution{
		ID:           s.newID(),
		ContentEn:    contentEn,
		ContentZh:    strings.TrimSpace(req.ContentZh),
		UpvotesCount: 0,
		CreatedBy:    identity.UID,
	}
	if err := s.solutions.Create(ctx, questionID, solution); err != nil {
		return nil, err
	}
	s.logger.Info("Solution created",
		zap.String("questionId", questionID),
		zap.String("id", solution.ID),
		zap.String("createdBy", identity.UID))
	return solution, nil
}

func (s *writeService) UpvoteQuestion(ctx context.Context, identity Identity, questionID string) (int, error) {
	if err := s.guard(identity); err != nil {
		return 0, err
	}
	count, err := s.questions.Upvote(ctx, questionID, identity.UID)
	if err != nil {
		return 0, err
	}
	s.logger.Info("Question upvoted",
		zap.String("questionId", questionID),
		zap.String("uid", identity.UID),
		zap.Int("upvotesCount", count))
	return count, nil
}

func (s *writeService) UpvoteSolution(ctx context.Context, identity Identity, questionID, solutionID string) (int, error) {
	if err := s.guard(identity); err != nil {
		return 0, err
	}
	count, err := s.solutions.Upvote(ctx, questionID, solutionID, identity.UID)
	if err != nil {
		return 0, err
	}
	s.logger.Info("Solution upvoted",
		zap.String("questionId", questionID),
		zap.String("solutionId", solutionID),
		zap.String("uid", identity.UID),
		zap.Int("upvotesCount", count))
	return count, nil
}
