package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// StackService handles stack management API calls
type StackService struct {
	client *Client
}

// CreateStackRequest represents a stack creation request
type CreateStackRequest struct {
	Name    string       `json:"name"`
	ToolIDs []string     `json:"tool_ids"`
	Context StackContext `json:"context"`
}

// UpdateStackRequest represents a stack update request
type UpdateStackRequest struct {
	Name    *string       `json:"name,omitempty"`
	ToolIDs *[]string     `json:"tool_ids,omitempty"`
	Context *StackContext `json:"context,omitempty"`
}

// List retrieves the authenticated user's stacks
func (s *StackService) List(ctx context.Context) ([]Stack, error) {
	var stacks []Stack
	if err := s.client.doRequest(ctx, "GET", "/api/v1/stacks", nil, &stacks); err != nil {
		return nil, err
	}
	return stacks, nil
}

// Get retrieves one stack by ID
func (s *StackService) Get(ctx context.Context, id string) (*Stack, error) {
	var stack Stack
	path := fmt.Sprintf("/api/v1/stacks/%s", url.PathEscape(id))
	if err := s.client.doRequest(ctx, "GET", path, nil, &stack); err != nil {
		return nil, err
	}
	return &stack, nil
}

// Create saves a new stack
func (s *StackService) Create(ctx context.Context, req CreateStackRequest) (*Stack, error) {
	var stack Stack
	if err := s.client.doRequest(ctx, "POST", "/api/v1/stacks", req, &stack); err != nil {
		return nil, err
	}
	return &stack, nil
}

// Update updates a stack
func (s *StackService) Update(ctx context.Context, id string, req UpdateStackRequest) (*Stack, error) {
	var stack Stack
	path := fmt.Sprintf("/api/v1/stacks/%s", url.PathEscape(id))
	if err := s.client.doRequest(ctx, "PUT", path, req, &stack); err != nil {
		return nil, err
	}
	return &stack, nil
}

// Delete deletes a stack
func (s *StackService) Delete(ctx context.Context, id string) error {
	path := fmt.Sprintf("/api/v1/stacks/%s", url.PathEscape(id))
	return s.client.doRequest(ctx, "DELETE", path, nil, nil)
}

// Score scores a saved stack and records the result
func (s *StackService) Score(ctx context.Context, id string) (*StackScore, error) {
	var score StackScore
	path := fmt.Sprintf("/api/v1/stacks/%s/score", url.PathEscape(id))
	if err := s.client.doRequest(ctx, "POST", path, nil, &score); err != nil {
		return nil, err
	}
	return &score, nil
}

// History retrieves a stack's recorded scores, newest first
func (s *StackService) History(ctx context.Context, id string, limit int) ([]ScoreRecord, error) {
	path := fmt.Sprintf("/api/v1/stacks/%s/scores", url.PathEscape(id))
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var records []ScoreRecord
	if err := s.client.doRequest(ctx, "GET", path, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Roast generates a humorous critique of a saved stack
func (s *StackService) Roast(ctx context.Context, id string) (*Roast, error) {
	var roast Roast
	path := fmt.Sprintf("/api/v1/stacks/%s/roast", url.PathEscape(id))
	if err := s.client.doRequest(ctx, "POST", path, nil, &roast); err != nil {
		return nil, err
	}
	return &roast, nil
}
