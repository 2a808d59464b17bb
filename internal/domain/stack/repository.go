package stack

import "context"

// Repository defines the interface for stack data access
type Repository interface {
	// Create creates a new stack
	Create(ctx context.Context, s *Stack) error

	// GetByID retrieves a stack by ID
	GetByID(ctx context.Context, id string) (*Stack, error)

	// List retrieves stacks matching the filter
	List(ctx context.Context, filter Filter) ([]*Stack, error)

	// Update updates a stack
	Update(ctx context.Context, s *Stack) error

	// Delete deletes a stack
	Delete(ctx context.Context, id string) error

	// RecordScore appends a score to a stack's history
	RecordScore(ctx context.Context, rec *ScoreRecord) error

	// ListScores retrieves a stack's score history, newest first
	ListScores(ctx context.Context, stackID string, limit int) ([]*ScoreRecord, error)

	// AllOverallScores retrieves every recorded overall score, for
	// building the percentile distribution
	AllOverallScores(ctx context.Context) ([]int, error)
}
