package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/stackroast/stackroast/internal/domain/tool"
	"github.com/stackroast/stackroast/internal/pkg/errors"
)

type ToolRepository struct {
	db *DB
}

func NewToolRepository(db *DB) tool.Repository {
	return &ToolRepository{db: db}
}

const toolColumns = "id, name, category, base_price, setup_hours, maintenance_hours, complexity_score, logo_url, affiliate_url, created_at, updated_at"

func (r *ToolRepository) Create(ctx context.Context, t *tool.Tool) error {
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now

	query := r.db.Rebind(`
		INSERT INTO tools (` + toolColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)

	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.Name, t.Category, t.BasePrice, t.SetupHours, t.MaintenanceHours, t.ComplexityScore, t.LogoURL, t.AffiliateURL, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return errors.DatabaseError("Failed to create tool", err)
	}
	return nil
}

func (r *ToolRepository) GetByID(ctx context.Context, id string) (*tool.Tool, error) {
	query := r.db.Rebind("SELECT " + toolColumns + " FROM tools WHERE id = ?")
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *ToolRepository) GetByName(ctx context.Context, name string) (*tool.Tool, error) {
	query := r.db.Rebind("SELECT " + toolColumns + " FROM tools WHERE name = ?")
	return r.scanOne(r.db.QueryRowContext(ctx, query, name))
}

func (r *ToolRepository) List(ctx context.Context, filter tool.Filter) ([]*tool.Tool, error) {
	where := []string{"1=1"}
	args := []interface{}{}

	if filter.Category != "" {
		where = append(where, "category = ?")
		args = append(args, filter.Category)
	}
	if filter.Search != "" {
		where = append(where, "LOWER(name) LIKE ?")
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
	}

	query := r.db.Rebind(fmt.Sprintf(
		"SELECT %s FROM tools WHERE %s ORDER BY name", toolColumns, strings.Join(where, " AND "),
	))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list tools", err)
	}
	defer rows.Close()

	return r.scanRows(rows)
}

// ListByIDs returns the tools for the given IDs in input order, skipping
// IDs with no catalog entry.
func (r *ToolRepository) ListByIDs(ctx context.Context, ids []string) ([]*tool.Tool, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := strings.Repeat("?, ", len(ids)-1) + "?"
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	query := r.db.Rebind(fmt.Sprintf(
		"SELECT %s FROM tools WHERE id IN (%s)", toolColumns, placeholders,
	))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list tools by id", err)
	}
	defer rows.Close()

	found, err := r.scanRows(rows)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*tool.Tool, len(found))
	for _, t := range found {
		byID[t.ID] = t
	}

	out := make([]*tool.Tool, 0, len(ids))
	for _, id := range ids {
		if t, ok := byID[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *ToolRepository) Update(ctx context.Context, t *tool.Tool) error {
	t.UpdatedAt = time.Now()

	query := r.db.Rebind(`
		UPDATE tools SET name = ?, category = ?, base_price = ?, setup_hours = ?, maintenance_hours = ?, complexity_score = ?, logo_url = ?, affiliate_url = ?, updated_at = ?
		WHERE id = ?
	`)

	result, err := r.db.ExecContext(ctx, query,
		t.Name, t.Category, t.BasePrice, t.SetupHours, t.MaintenanceHours, t.ComplexityScore, t.LogoURL, t.AffiliateURL, t.UpdatedAt, t.ID,
	)
	if err != nil {
		return errors.DatabaseError("Failed to update tool", err)
	}

	rows, err := result.RowsAffected()
	if err != nil || rows == 0 {
		return errors.NotFound("Tool")
	}
	return nil
}

func (r *ToolRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, r.db.Rebind("DELETE FROM tools WHERE id = ?"), id)
	if err != nil {
		return errors.DatabaseError("Failed to delete tool", err)
	}

	rows, err := result.RowsAffected()
	if err != nil || rows == 0 {
		return errors.NotFound("Tool")
	}
	return nil
}

func (r *ToolRepository) scanOne(row *sql.Row) (*tool.Tool, error) {
	var t tool.Tool
	err := row.Scan(
		&t.ID, &t.Name, &t.Category, &t.BasePrice, &t.SetupHours, &t.MaintenanceHours, &t.ComplexityScore, &t.LogoURL, &t.AffiliateURL, &t.CreatedAt, &t.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Tool")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get tool", err)
	}
	return &t, nil
}

func (r *ToolRepository) scanRows(rows *sql.Rows) ([]*tool.Tool, error) {
	var out []*tool.Tool
	for rows.Next() {
		var t tool.Tool
		if err := rows.Scan(
			&t.ID, &t.Name, &t.Category, &t.BasePrice, &t.SetupHours, &t.MaintenanceHours, &t.ComplexityScore, &t.LogoURL, &t.AffiliateURL, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, errors.DatabaseError("Failed to scan tool", err)
		}
		out = append(out, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.DatabaseError("Failed to read tools", err)
	}
	return out, nil
}
