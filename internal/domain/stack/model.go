package stack

import (
	"time"

	"github.com/stackroast/stackroast/internal/scoring"
)

// Stack is a named collection of tools owned by a user, together with
// the usage context it should be judged against.
type Stack struct {
	ID        string               `json:"id"`
	UserID    int64                `json:"user_id"`
	Name      string               `json:"name"`
	ToolIDs   []string             `json:"tool_ids"`
	Context   scoring.StackContext `json:"context"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// ScoreRecord is one historical scoring of a stack. The history feeds
// the percentile distribution.
type ScoreRecord struct {
	ID        int64     `json:"id"`
	StackID   string    `json:"stack_id"`
	Overall   int       `json:"overall"`
	Badge     string    `json:"badge"`
	CreatedAt time.Time `json:"created_at"`
}

// Filter contains stack listing options
type Filter struct {
	UserID int64
}
