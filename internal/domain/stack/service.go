package stack

import (
	"context"

	"github.com/stackroast/stackroast/internal/scoring"
)

// Service defines the interface for stack business logic
type Service interface {
	// Create creates a new stack for a user
	Create(ctx context.Context, s *Stack) error

	// GetByID retrieves a stack by ID
	GetByID(ctx context.Context, id string) (*Stack, error)

	// List retrieves a user's stacks
	List(ctx context.Context, filter Filter) ([]*Stack, error)

	// Update updates a stack
	Update(ctx context.Context, s *Stack) error

	// Delete deletes a stack
	Delete(ctx context.Context, id string) error

	// Score scores a saved stack against its stored context and records
	// the result in the score history
	Score(ctx context.Context, id string) (scoring.StackScore, error)

	// ScoreTools scores an ad-hoc list of tool IDs against a context
	// without persisting anything
	ScoreTools(ctx context.Context, toolIDs []string, sctx scoring.StackContext) (scoring.StackScore, error)

	// ScoreHistory retrieves a stack's recorded scores, newest first
	ScoreHistory(ctx context.Context, id string, limit int) ([]*ScoreRecord, error)
}
