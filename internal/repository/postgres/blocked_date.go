package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/velora-studio/booking-api/internal/model"
)

func (r *blockedDateRepository) Add(ctx context.Context, date model.Date) error {
	query := `
		INSERT INTO blocked_dates (id, blocked_on, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (blocked_on) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, uuid.New(), date, time.Now()); err != nil {
		return fmt.Errorf("failed to block date: %w", err)
	}
	return nil
}

func (r *blockedDateRepository) Remove(ctx context.Context, date model.Date) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM blocked_dates WHERE blocked_on = $1`, date); err != nil {
		return fmt.Errorf("failed to unblock date: %w", err)
	}
	return nil
}

func (r *blockedDateRepository) IsBlocked(ctx context.Context, date model.Date) (bool, error) {
	var blocked bool
	query := `SELECT EXISTS (SELECT 1 FROM blocked_dates WHERE blocked_on = $1)`
	if err := r.db.GetContext(ctx, &blocked, query, date); err != nil {
		return false, fmt.Errorf("failed to check blocked date: %w", err)
	}
	return blocked, nil
}

func (r *blockedDateRepository) List(ctx context.Context) ([]*model.BlockedDate, error) {
	query := `SELECT id, blocked_on, created_at FROM blocked_dates ORDER BY blocked_on ASC`

	var dates []*model.BlockedDate
	if err := r.db.SelectContext(ctx, &dates, query); err != nil {
		return nil, fmt.Errorf("failed to list blocked dates: %w", err)
	}
	return dates, nil
}
