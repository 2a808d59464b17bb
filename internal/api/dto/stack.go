package dto

import "github.com/stackroast/stackroast/internal/scoring"

// CreateStackRequest represents a stack creation request. The context
// is accepted as-is; missing or invalid fields get defaults when the
// stack is normalized, so there are no enum validators here.
type CreateStackRequest struct {
	Name    string               `json:"name" validate:"required,max=100"`
	ToolIDs []string             `json:"tool_ids"`
	Context scoring.StackContext `json:"context"`
}

// UpdateStackRequest represents a stack update request
type UpdateStackRequest struct {
	Name    *string               `json:"name,omitempty" validate:"omitempty,max=100"`
	ToolIDs *[]string             `json:"tool_ids,omitempty"`
	Context *scoring.StackContext `json:"context,omitempty"`
}
