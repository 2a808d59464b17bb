package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/stackroast/stackroast/internal/domain/stack"
	"github.com/stackroast/stackroast/internal/pkg/errors"
)

type StackRepository struct {
	db *DB
}

func NewStackRepository(db *DB) stack.Repository {
	return &StackRepository{db: db}
}

func (r *StackRepository) Create(ctx context.Context, s *stack.Stack) error {
	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now

	toolsJSON, _ := json.Marshal(s.ToolIDs)
	contextJSON, _ := json.Marshal(s.Context)

	query := r.db.Rebind(`
		INSERT INTO stacks (id, user_id, name, tool_ids, context, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)

	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.UserID, s.Name, string(toolsJSON), string(contextJSON), s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return errors.DatabaseError("Failed to create stack", err)
	}
	return nil
}

func (r *StackRepository) GetByID(ctx context.Context, id string) (*stack.Stack, error) {
	query := r.db.Rebind(`
		SELECT id, user_id, name, tool_ids, context, created_at, updated_at
		FROM stacks WHERE id = ?
	`)

	var s stack.Stack
	var toolsJSON, contextJSON string
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.UserID, &s.Name, &toolsJSON, &contextJSON, &s.CreatedAt, &s.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Stack")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get stack", err)
	}

	json.Unmarshal([]byte(toolsJSON), &s.ToolIDs)
	json.Unmarshal([]byte(contextJSON), &s.Context)
	return &s, nil
}

func (r *StackRepository) List(ctx context.Context, filter stack.Filter) ([]*stack.Stack, error) {
	query := "SELECT id, user_id, name, tool_ids, context, created_at, updated_at FROM stacks"
	args := []interface{}{}

	if filter.UserID != 0 {
		query += " WHERE user_id = ?"
		args = append(args, filter.UserID)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list stacks", err)
	}
	defer rows.Close()

	var out []*stack.Stack
	for rows.Next() {
		var s stack.Stack
		var toolsJSON, contextJSON string
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &toolsJSON, &contextJSON, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, errors.DatabaseError("Failed to scan stack", err)
		}
		json.Unmarshal([]byte(toolsJSON), &s.ToolIDs)
		json.Unmarshal([]byte(contextJSON), &s.Context)
		out = append(out, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.DatabaseError("Failed to read stacks", err)
	}
	return out, nil
}

func (r *StackRepository) Update(ctx context.Context, s *stack.Stack) error {
	s.UpdatedAt = time.Now()

	toolsJSON, _ := json.Marshal(s.ToolIDs)
	contextJSON, _ := json.Marshal(s.Context)

	query := r.db.Rebind(`
		UPDATE stacks SET name = ?, tool_ids = ?, context = ?, updated_at = ?
		WHERE id = ?
	`)

	result, err := r.db.ExecContext(ctx, query,
		s.Name, string(toolsJSON), string(contextJSON), s.UpdatedAt, s.ID,
	)
	if err != nil {
		return errors.DatabaseError("Failed to update stack", err)
	}

	rows, err := result.RowsAffected()
	if err != nil || rows == 0 {
		return errors.NotFound("Stack")
	}
	return nil
}

func (r *StackRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, r.db.Rebind("DELETE FROM stacks WHERE id = ?"), id)
	if err != nil {
		return errors.DatabaseError("Failed to delete stack", err)
	}

	rows, err := result.RowsAffected()
	if err != nil || rows == 0 {
		return errors.NotFound("Stack")
	}
	return nil
}

func (r *StackRepository) RecordScore(ctx context.Context, rec *stack.ScoreRecord) error {
	rec.CreatedAt = time.Now()

	query := r.db.Rebind(`
		INSERT INTO stack_scores (stack_id, overall, badge, created_at)
		VALUES (?, ?, ?, ?)
	`)

	result, err := r.db.ExecContext(ctx, query, rec.StackID, rec.Overall, rec.Badge, rec.CreatedAt)
	if err != nil {
		return errors.DatabaseError("Failed to record score", err)
	}

	// lib/pq does not support LastInsertId; the ID only matters for
	// sqlite callers, so a failure here is ignored.
	if id, err := result.LastInsertId(); err == nil {
		rec.ID = id
	}
	return nil
}

func (r *StackRepository) ListScores(ctx context.Context, stackID string, limit int) ([]*stack.ScoreRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	query := r.db.Rebind(`
		SELECT id, stack_id, overall, badge, created_at
		FROM stack_scores WHERE stack_id = ?
		ORDER BY created_at DESC, id DESC LIMIT ?
	`)

	rows, err := r.db.QueryContext(ctx, query, stackID, limit)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list scores", err)
	}
	defer rows.Close()

	var out []*stack.ScoreRecord
	for rows.Next() {
		var rec stack.ScoreRecord
		if err := rows.Scan(&rec.ID, &rec.StackID, &rec.Overall, &rec.Badge, &rec.CreatedAt); err != nil {
			return nil, errors.DatabaseError("Failed to scan score", err)
		}
		out = append(out, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.DatabaseError("Failed to read scores", err)
	}
	return out, nil
}

func (r *StackRepository) AllOverallScores(ctx context.Context) ([]int, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT overall FROM stack_scores")
	if err != nil {
		return nil, errors.DatabaseError("Failed to read score distribution", err)
	}
	defer rows.Close()

	var out []int
	for rows.Next() {
		var overall int
		if err := rows.Scan(&overall); err != nil {
			return nil, errors.DatabaseError("Failed to scan score", err)
		}
		out = append(out, overall)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.DatabaseError("Failed to read score distribution", err)
	}
	return out, nil
}
