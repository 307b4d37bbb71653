package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/lumen-academy/academy-api/internal/models"
)

// AdminRepository provides database access for admin accounts.
type AdminRepository struct {
	db *sqlx.DB
}

// NewAdminRepository creates a new instance of AdminRepository.
func NewAdminRepository(db *sqlx.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// FindByUsername returns an admin account by username.
func (r *AdminRepository) FindByUsername(ctx context.Context, username string) (*models.AdminAccount, error) {
	const query = `SELECT username, password_hash, created_at FROM admin_accounts WHERE username = $1 LIMIT 1`
	var account models.AdminAccount
	if err := r.db.GetContext(ctx, &account, query, username); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find admin by username: %w", err)
	}
	return &account, nil
}

// Create inserts a new admin account. Returns ErrDuplicate when the
// username is already taken.
func (r *AdminRepository) Create(ctx context.Context, username, passwordHash string) error {
	const query = `INSERT INTO admin_accounts (username, password_hash, created_at) VALUES ($1, $2, $3)`
	if _, err := r.db.ExecContext(ctx, query, username, passwordHash, time.Now().UTC()); err != nil {
		if mapped := mapDuplicate(err); mapped == ErrDuplicate {
			return mapped
		}
		return fmt.Errorf("create admin account: %w", err)
	}
	return nil
}
