package services

import (
	"context"

	"github.com/stackroast/stackroast/internal/domain/tool"
	"github.com/stackroast/stackroast/internal/pkg/errors"
	"github.com/stackroast/stackroast/internal/pkg/logger"
)

// ToolService implements tool.Service
type ToolService struct {
	repo   tool.Repository
	logger *logger.Logger
}

// NewToolService creates a new tool catalog service
func NewToolService(repo tool.Repository, log *logger.Logger) tool.Service {
	return &ToolService{
		repo:   repo,
		logger: log,
	}
}

// Create adds a tool to the catalog
func (s *ToolService) Create(ctx context.Context, t *tool.Tool) error {
	if t.Name == "" {
		return errors.BadRequest("Tool name is required")
	}

	if existing, err := s.repo.GetByName(ctx, t.Name); err == nil && existing != nil {
		return errors.Conflict("A tool with this name already exists")
	}

	if err := s.repo.Create(ctx, t); err != nil {
		s.logger.ErrorWithErr(err, "Failed to create tool")
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"tool_id": t.ID,
		"name":    t.Name,
	}).Info("Tool created")

	return nil
}

// GetByID retrieves a tool by ID
func (s *ToolService) GetByID(ctx context.Context, id string) (*tool.Tool, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves tools with filters
func (s *ToolService) List(ctx context.Context, filter tool.Filter) ([]*tool.Tool, error) {
	return s.repo.List(ctx, filter)
}

// Resolve materializes a list of tool IDs into catalog tools. Unknown
// IDs are skipped rather than failing the whole lookup; the order of
// the surviving tools matches the input order.
func (s *ToolService) Resolve(ctx context.Context, ids []string) ([]*tool.Tool, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return s.repo.ListByIDs(ctx, ids)
}

// Update updates a tool
func (s *ToolService) Update(ctx context.Context, t *tool.Tool) error {
	err := s.repo.Update(ctx, t)
	if err != nil {
		s.logger.ErrorWithErr(err, "Failed to update tool")
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"tool_id": t.ID,
	}).Info("Tool updated")

	return nil
}

// Delete removes a tool from the catalog
func (s *ToolService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.ErrorWithErr(err, "Failed to delete tool")
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"tool_id": id,
	}).Info("Tool deleted")

	return nil
}
