package client

import (
	"context"
	"strconv"
)

// ScoringService handles ad-hoc scoring API calls
type ScoringService struct {
	client *Client
}

// ScoreRequest represents an ad-hoc scoring request
type ScoreRequest struct {
	ToolIDs []string     `json:"tool_ids"`
	Context StackContext `json:"context"`
}

// Score scores a list of catalog tool IDs without saving anything
func (s *ScoringService) Score(ctx context.Context, req ScoreRequest) (*StackScore, error) {
	var score StackScore
	if err := s.client.doRequest(ctx, "POST", "/api/v1/score", req, &score); err != nil {
		return nil, err
	}
	return &score, nil
}

// Percentile reports where a score lands in the current distribution
func (s *ScoringService) Percentile(ctx context.Context, score int) (int, error) {
	var result map[string]int
	path := "/api/v1/scores/percentile?score=" + strconv.Itoa(score)
	if err := s.client.doRequest(ctx, "GET", path, nil, &result); err != nil {
		return 0, err
	}
	return result["percentile"], nil
}
