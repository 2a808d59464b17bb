package dto

import "github.com/stackroast/stackroast/internal/scoring"

// ScoreRequest represents an ad-hoc scoring request: a list of catalog
// tool IDs plus the context to judge them against. Nothing is persisted.
type ScoreRequest struct {
	ToolIDs []string             `json:"tool_ids"`
	Context scoring.StackContext `json:"context"`
}

// PercentileRequest represents a percentile lookup query
type PercentileRequest struct {
	Score int `json:"score" validate:"gte=0,lte=100"`
}
