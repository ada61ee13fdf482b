package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "github.com/velora-studio/booking-api/pkg/errors"

	"github.com/velora-studio/booking-api/internal/model"
)

func (r *staffUserRepository) Create(ctx context.Context, user *model.StaffUser) error {
	query := `
		INSERT INTO staff_users (id, name, email, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.Name,
		strings.ToLower(user.Email),
		user.PasswordHash,
		user.Role,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create staff user: %w", err)
	}
	return nil
}

func (r *staffUserRepository) GetByEmail(ctx context.Context, email string) (*model.StaffUser, error) {
	query := `
		SELECT id, name, email, password_hash, role, created_at, updated_at
		FROM staff_users WHERE email = $1
	`
	var user model.StaffUser
	if err := r.db.GetContext(ctx, &user, query, strings.ToLower(email)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("staff user", err)
		}
		return nil, fmt.Errorf("failed to get staff user: %w", err)
	}
	return &user, nil
}
