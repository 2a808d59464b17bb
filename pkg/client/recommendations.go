package client

import (
	"context"
	"net/url"
	"strconv"
)

// RecommendationService handles recommendation and savings API calls
type RecommendationService struct {
	client *Client
}

// ToolSwitch names one tool substitution by catalog tool ID
type ToolSwitch struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// SavingsRequest represents a savings calculation request
type SavingsRequest struct {
	Changes   []ToolSwitch      `json:"changes"`
	Migration MigrationEstimate `json:"migration,omitempty"`
}

func contextQuery(sc StackContext) url.Values {
	query := url.Values{}
	if sc.ExpectedUsers > 0 {
		query.Set("expected_users", strconv.Itoa(sc.ExpectedUsers))
	}
	if sc.Budget != "" {
		query.Set("budget", sc.Budget)
	}
	if sc.Complexity != "" {
		query.Set("complexity", sc.Complexity)
	}
	if sc.UseCase != "" {
		query.Set("use_case", sc.UseCase)
	}
	if sc.ScalingNeeds {
		query.Set("scaling_needs", "true")
	}
	return query
}

// Hosting recommends a hosting provider for the given context
func (s *RecommendationService) Hosting(ctx context.Context, sc StackContext) (*Recommendation, error) {
	path := "/api/v1/recommendations/hosting"
	if query := contextQuery(sc); len(query) > 0 {
		path += "?" + query.Encode()
	}

	var rec Recommendation
	if err := s.client.doRequest(ctx, "GET", path, nil, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Database recommends a database platform for the given context
func (s *RecommendationService) Database(ctx context.Context, sc StackContext) (*Recommendation, error) {
	path := "/api/v1/recommendations/database"
	if query := contextQuery(sc); len(query) > 0 {
		path += "?" + query.Encode()
	}

	var rec Recommendation
	if err := s.client.doRequest(ctx, "GET", path, nil, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Explain narrates why a current-to-recommended tool switch makes sense
func (s *RecommendationService) Explain(ctx context.Context, current, recommended string, sc StackContext) (string, error) {
	query := contextQuery(sc)
	query.Set("current", current)
	query.Set("recommended", recommended)

	var result map[string]string
	path := "/api/v1/recommendations/explain?" + query.Encode()
	if err := s.client.doRequest(ctx, "GET", path, nil, &result); err != nil {
		return "", err
	}
	return result["explanation"], nil
}

// Savings calculates the money and time saved by a set of substitutions
func (s *RecommendationService) Savings(ctx context.Context, req SavingsRequest) (*SavingsBreakdown, error) {
	var breakdown SavingsBreakdown
	if err := s.client.doRequest(ctx, "POST", "/api/v1/savings", req, &breakdown); err != nil {
		return nil, err
	}
	return &breakdown, nil
}
