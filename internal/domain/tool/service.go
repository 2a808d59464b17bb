package tool

import "context"

// Service defines the interface for tool catalog business logic
type Service interface {
	// Create adds a tool to the catalog
	Create(ctx context.Context, t *Tool) error

	// GetByID retrieves a tool by ID
	GetByID(ctx context.Context, id string) (*Tool, error)

	// List retrieves tools with filters
	List(ctx context.Context, filter Filter) ([]*Tool, error)

	// Resolve materializes a list of tool IDs into catalog tools
	Resolve(ctx context.Context, ids []string) ([]*Tool, error)

	// Update updates a tool
	Update(ctx context.Context, t *Tool) error

	// Delete removes a tool from the catalog
	Delete(ctx context.Context, id string) error
}
