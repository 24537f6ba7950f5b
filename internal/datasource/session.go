package datasource

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"qaboard-backend-go/internal/db"
	"qaboard-backend-go/internal/models"
)

// Session is the application-session context of the read path. It replaces the
// module-scoped globals of a typical single-page app (demo flag, cached
// snapshot) with one explicit object constructed at startup and injected into
// the services and handlers. Its state lives for the process lifetime, the
// server-side analogue of a page session.
//
// The session itself implements Source: reads go to the remote source until a
// transport failure occurs, after which the session is stickily in demo mode
// and every read — including the failed one — is served from the snapshot.
// A NotFound for a single document and a legitimately empty list are valid
// remote results and never trigger fallback.
type Session struct {
	mu       sync.Mutex
	remote   Source // nil when the remote store is unconfigured
	snapshot Source // loaded lazily, cached for the process lifetime
	seedPath string
	demo     bool
	logger   *zap.Logger
}

// NewSession constructs the session. A nil remote source or forceDemo starts
// the session in demo mode immediately.
func NewSession(remote Source, seedPath string, forceDemo bool, logger *zap.Logger) *Session {
	s := &Session{
		remote:   remote,
		seedPath: seedPath,
		logger:   logger,
	}
	if remote == nil {
		s.degradeLocked("remote store not configured")
	} else if forceDemo {
		s.degradeLocked("demo mode forced by configuration")
	}
	return s
}

// DemoMode reports whether the session serves from the snapshot. Once set it
// stays set until the process restarts.
func (s *Session) DemoMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.demo
}

// Mode returns "demo" or "live" for the session endpoint and logs.
func (s *Session) Mode() string {
	if s.DemoMode() {
		return "demo"
	}
	return "live"
}

// degrade flips the session into demo mode because of err.
func (s *Session) degrade(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.demo {
		s.logger.Warn("Remote store unavailable; falling back to snapshot (demo mode)", zap.Error(err))
	}
	s.demo = true
}

func (s *Session) degradeLocked(reason string) {
	s.demo = true
	s.logger.Info("Session starting in demo mode", zap.String("reason", reason))
}

// snapshotSource returns the cached snapshot source, loading the seed file on
// first use. A missing or unparsable seed file degrades to an empty snapshot
// so every page still renders its explicit no-data state.
func (s *Session) snapshotSource() Source {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot != nil {
		return s.snapshot
	}
	src, err := LoadSnapshotSource(s.seedPath)
	if err != nil {
		s.logger.Warn("Failed to load snapshot; serving empty data set",
			zap.String("path", s.seedPath), zap.Error(err))
		src = NewSnapshotSource(nil)
	}
	s.snapshot = src
	return src
}

// fallbackWorthy reports whether err is a transport/availability failure.
// NotFound of a single document is a legitimate answer from the remote store.
func fallbackWorthy(err error) bool {
	return err != nil && !errors.Is(err, db.ErrNotFound)
}

func (s *Session) ListCategories(ctx context.Context) ([]*models.Category, error) {
	if s.DemoMode() {
		return s.snapshotSource().ListCategories(ctx)
	}
	out, err := s.remote.ListCategories(ctx)
	if fallbackWorthy(err) {
		s.degrade(err)
		return s.snapshotSource().ListCategories(ctx)
	}
	return out, err
}

func (s *Session) GetCategory(ctx context.Context, slug string) (*models.Category, error) {
	if s.DemoMode() {
		return s.snapshotSource().GetCategory(ctx, slug)
	}
	out, err := s.remote.GetCategory(ctx, slug)
	if fallbackWorthy(err) {
		s.degrade(err)
		return s.snapshotSource().GetCategory(ctx, slug)
	}
	return out, err
}

func (s *Session) ListQuestions(ctx context.Context) ([]*models.Question, error) {
	if s.DemoMode() {
		return s.snapshotSource().ListQuestions(ctx)
	}
	out, err := s.remote.ListQuestions(ctx)
	if fallbackWorthy(err) {
		s.degrade(err)
		return s.snapshotSource().ListQuestions(ctx)
	}
	return out, err
}

func (s *Session) ListQuestionsByCategory(ctx context.Context, slug string) ([]*models.Question, error) {
	if s.DemoMode() {
		return s.snapshotSource().ListQuestionsByCategory(ctx, slug)
	}
	out, err := s.remote.ListQuestionsByCategory(ctx, slug)
	if fallbackWorthy(err) {
		s.degrade(err)
		return s.snapshotSource().ListQuestionsByCategory(ctx, slug)
	}
	return out, err
}

func (s *Session) GetQuestion(ctx context.Context, id string) (*models.Question, error) {
	if s.DemoMode() {
		return s.snapshotSource().GetQuestion(ctx, id)
	}
	out, err := s.remote.GetQuestion(ctx, id)
	if fallbackWorthy(err) {
		s.degrade(err)
		return s.snapshotSource().GetQuestion(ctx, id)
	}
	return out, err
}

func (s *Session) ListSolutions(ctx context.Context, questionID string) ([]*models.Solution, error) {
	if s.DemoMode() {
		return s.snapshotSource().ListSolutions(ctx, questionID)
	}
	out, err := s.remote.ListSolutions(ctx, questionID)
	if fallbackWorthy(err) {
		s.degrade(err)
		return s.snapshotSource().ListSolutions(ctx, questionID)
	}
	return out, err
}

// Session satisfies the Source contract.
var _ Source = (*Session)(nil)
