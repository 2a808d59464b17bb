package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/stackroast/stackroast/internal/domain/user"
	"github.com/stackroast/stackroast/internal/pkg/errors"
)

type UserRepository struct {
	db *DB
}

func NewUserRepository(db *DB) user.Repository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	if r.db.driver == "postgres" {
		// RETURNING instead of LastInsertId, which lib/pq lacks.
		query := r.db.Rebind(`
			INSERT INTO users (email, username, password_hash, role, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?) RETURNING id
		`)
		err := r.db.QueryRowContext(ctx, query,
			u.Email, u.Username, u.PasswordHash, u.Role, u.CreatedAt, u.UpdatedAt,
		).Scan(&u.ID)
		if err != nil {
			return errors.DatabaseError("Failed to create user", err)
		}
		return nil
	}

	query := r.db.Rebind(`
		INSERT INTO users (email, username, password_hash, role, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	result, err := r.db.ExecContext(ctx, query,
		u.Email, u.Username, u.PasswordHash, u.Role, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		return errors.DatabaseError("Failed to create user", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return errors.DatabaseError("Failed to read user id", err)
	}
	u.ID = id
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	query := r.db.Rebind(`
		SELECT id, email, username, password_hash, role, created_at, updated_at
		FROM users WHERE id = ?
	`)
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	query := r.db.Rebind(`
		SELECT id, email, username, password_hash, role, created_at, updated_at
		FROM users WHERE email = ?
	`)
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	u.UpdatedAt = time.Now()

	query := r.db.Rebind(`
		UPDATE users SET email = ?, username = ?, password_hash = ?, role = ?, updated_at = ?
		WHERE id = ?
	`)

	result, err := r.db.ExecContext(ctx, query,
		u.Email, u.Username, u.PasswordHash, u.Role, u.UpdatedAt, u.ID,
	)
	if err != nil {
		return errors.DatabaseError("Failed to update user", err)
	}

	rows, err := result.RowsAffected()
	if err != nil || rows == 0 {
		return errors.NotFound("User")
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, r.db.Rebind("DELETE FROM users WHERE id = ?"), id)
	if err != nil {
		return errors.DatabaseError("Failed to delete user", err)
	}

	rows, err := result.RowsAffected()
	if err != nil || rows == 0 {
		return errors.NotFound("User")
	}
	return nil
}

func (r *UserRepository) scanOne(row *sql.Row) (*user.User, error) {
	var u user.User
	err := row.Scan(&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("User")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get user", err)
	}
	return &u, nil
}
