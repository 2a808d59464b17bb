package tool

import "context"

// Repository defines the interface for tool catalog data access
type Repository interface {
	// Create adds a tool to the catalog
	Create(ctx context.Context, t *Tool) error

	// GetByID retrieves a tool by ID
	GetByID(ctx context.Context, id string) (*Tool, error)

	// GetByName retrieves a tool by its display name
	GetByName(ctx context.Context, name string) (*Tool, error)

	// List retrieves tools with filters
	List(ctx context.Context, filter Filter) ([]*Tool, error)

	// ListByIDs retrieves the tools for a set of IDs, preserving input order.
	// Unknown IDs are skipped, not errors.
	ListByIDs(ctx context.Context, ids []string) ([]*Tool, error)

	// Update updates a tool
	Update(ctx context.Context, t *Tool) error

	// Delete removes a tool from the catalog
	Delete(ctx context.Context, id string) error
}
