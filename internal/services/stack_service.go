package services

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/stackroast/stackroast/internal/domain/stack"
	"github.com/stackroast/stackroast/internal/domain/tool"
	"github.com/stackroast/stackroast/internal/pkg/errors"
	"github.com/stackroast/stackroast/internal/pkg/logger"
	"github.com/stackroast/stackroast/internal/pkg/metrics"
	"github.com/stackroast/stackroast/internal/scoring"
)

// StackService implements stack.Service
type StackService struct {
	repo   stack.Repository
	tools  tool.Service
	logger *logger.Logger

	// The estimator is swapped by the percentile worker while requests
	// score stacks concurrently.
	mu        sync.RWMutex
	estimator scoring.PercentileEstimator
}

// NewStackService creates a new stack service
func NewStackService(repo stack.Repository, tools tool.Service, log *logger.Logger) *StackService {
	return &StackService{
		repo:      repo,
		tools:     tools,
		logger:    log,
		estimator: scoring.EstimatedPercentile{},
	}
}

// Create creates a new stack for a user
func (s *StackService) Create(ctx context.Context, st *stack.Stack) error {
	if st.Name == "" {
		return errors.BadRequest("Stack name is required")
	}
	if st.ID == "" {
		st.ID = uuid.NewString()
	}
	st.Context = scoring.NormalizeContext(st.Context)

	if err := s.repo.Create(ctx, st); err != nil {
		s.logger.ErrorWithErr(err, "Failed to create stack")
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"stack_id": st.ID,
		"user_id":  st.UserID,
		"tools":    len(st.ToolIDs),
	}).Info("Stack created")

	return nil
}

// GetByID retrieves a stack by ID
func (s *StackService) GetByID(ctx context.Context, id string) (*stack.Stack, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves a user's stacks
func (s *StackService) List(ctx context.Context, filter stack.Filter) ([]*stack.Stack, error) {
	return s.repo.List(ctx, filter)
}

// Update updates a stack
func (s *StackService) Update(ctx context.Context, st *stack.Stack) error {
	st.Context = scoring.NormalizeContext(st.Context)
	err := s.repo.Update(ctx, st)
	if err != nil {
		s.logger.ErrorWithErr(err, "Failed to update stack")
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"stack_id": st.ID,
	}).Info("Stack updated")

	return nil
}

// Delete deletes a stack
func (s *StackService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.ErrorWithErr(err, "Failed to delete stack")
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"stack_id": id,
	}).Info("Stack deleted")

	return nil
}

// Score scores a saved stack against its stored context and records the
// result in the score history.
func (s *StackService) Score(ctx context.Context, id string) (scoring.StackScore, error) {
	st, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return scoring.StackScore{}, err
	}
	if st == nil {
		return scoring.StackScore{}, errors.NotFound("Stack")
	}

	score, err := s.ScoreTools(ctx, st.ToolIDs, st.Context)
	if err != nil {
		return scoring.StackScore{}, err
	}

	rec := &stack.ScoreRecord{
		StackID: st.ID,
		Overall: score.Overall,
		Badge:   score.Badge,
	}
	if err := s.repo.RecordScore(ctx, rec); err != nil {
		// The score itself is still good; history is best-effort.
		s.logger.ErrorWithErr(err, "Failed to record stack score")
	}

	s.logger.WithFields(map[string]interface{}{
		"stack_id": st.ID,
		"overall":  score.Overall,
		"badge":    score.Badge,
	}).Info("Stack scored")

	return score, nil
}

// ScoreTools scores an ad-hoc list of tool IDs against a context without
// persisting anything.
func (s *StackService) ScoreTools(ctx context.Context, toolIDs []string, sctx scoring.StackContext) (scoring.StackScore, error) {
	tools, err := s.tools.Resolve(ctx, toolIDs)
	if err != nil {
		return scoring.StackScore{}, err
	}

	s.mu.RLock()
	scorer := scoring.NewScorer(s.estimator)
	s.mu.RUnlock()

	score := scorer.CalculateStackScore(tools, sctx)
	metrics.RecordStackScore(score.Badge, score.Overall)
	return score, nil
}

// ScoreHistory retrieves a stack's recorded scores, newest first
func (s *StackService) ScoreHistory(ctx context.Context, id string, limit int) ([]*stack.ScoreRecord, error) {
	return s.repo.ListScores(ctx, id, limit)
}

// RebuildPercentiles replaces the percentile estimator with one built
// from the recorded score distribution. With no history yet it keeps the
// estimated curve. Called by the worker on a schedule.
func (s *StackService) RebuildPercentiles(ctx context.Context) error {
	samples, err := s.repo.AllOverallScores(ctx)
	if err != nil {
		return err
	}

	dist := scoring.NewDistributionPercentile(samples)
	if dist == nil {
		s.logger.Debug("No recorded scores yet, keeping estimated percentile curve")
		return nil
	}

	s.mu.Lock()
	s.estimator = dist
	s.mu.Unlock()

	metrics.SetPercentileSampleSize(dist.Size())
	s.logger.WithFields(map[string]interface{}{
		"samples": dist.Size(),
	}).Info("Percentile distribution rebuilt")

	return nil
}

// PercentileOf reports where a score lands in the current distribution.
func (s *StackService) PercentileOf(score int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.estimator.Percentile(score)
}
