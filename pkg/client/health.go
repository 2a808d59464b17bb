package client

import "context"

// Health checks whether the API is alive
func (c *Client) Health(ctx context.Context) error {
	return c.doRequest(ctx, "GET", "/health", nil, nil)
}

// Ready checks whether the API is ready to serve requests
func (c *Client) Ready(ctx context.Context) error {
	return c.doRequest(ctx, "GET", "/readyz", nil, nil)
}
