package client

import (
	"context"
	"fmt"
	"net/url"
)

// ToolService handles tool catalog API calls
type ToolService struct {
	client *Client
}

// ToolListOptions contains options for listing catalog tools
type ToolListOptions struct {
	Category string
	Search   string
}

// List retrieves catalog tools
func (s *ToolService) List(ctx context.Context, opts *ToolListOptions) ([]Tool, error) {
	query := url.Values{}
	if opts != nil {
		if opts.Category != "" {
			query.Set("category", opts.Category)
		}
		if opts.Search != "" {
			query.Set("search", opts.Search)
		}
	}

	path := "/api/v1/tools"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var tools []Tool
	if err := s.client.doRequest(ctx, "GET", path, nil, &tools); err != nil {
		return nil, err
	}
	return tools, nil
}

// Get retrieves one catalog tool by ID
func (s *ToolService) Get(ctx context.Context, id string) (*Tool, error) {
	var tool Tool
	path := fmt.Sprintf("/api/v1/tools/%s", url.PathEscape(id))
	if err := s.client.doRequest(ctx, "GET", path, nil, &tool); err != nil {
		return nil, err
	}
	return &tool, nil
}

// Create adds a tool to the catalog (admin only)
func (s *ToolService) Create(ctx context.Context, tool Tool) (*Tool, error) {
	var created Tool
	if err := s.client.doRequest(ctx, "POST", "/api/v1/tools", tool, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Delete removes a tool from the catalog (admin only)
func (s *ToolService) Delete(ctx context.Context, id string) error {
	path := fmt.Sprintf("/api/v1/tools/%s", url.PathEscape(id))
	return s.client.doRequest(ctx, "DELETE", path, nil, nil)
}
