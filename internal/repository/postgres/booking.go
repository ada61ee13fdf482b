package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	apperrors "github.com/velora-studio/booking-api/pkg/errors"

	"github.com/velora-studio/booking-api/internal/model"
)

const bookingColumns = `
	id, customer_id, services, appointment_date, start_time, end_time,
	total_cents, discount_cents, final_cents, status, notes,
	calendar_event_id, payment_intent_id, created_at, updated_at
`

func (r *bookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	query := `
		INSERT INTO bookings (
			id, customer_id, services, appointment_date, start_time, end_time,
			total_cents, discount_cents, final_cents, status, notes,
			calendar_event_id, payment_intent_id, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		booking.ID,
		booking.CustomerID,
		booking.Services,
		booking.Date,
		booking.StartTime,
		booking.EndTime,
		booking.TotalCents,
		booking.DiscountCents,
		booking.FinalCents,
		booking.Status,
		booking.Notes,
		booking.CalendarEventID,
		booking.PaymentIntentID,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		// The bookings table carries an exclusion constraint over
		// (appointment_date, time range) for non-cancelled rows; a violation
		// means another booking won the slot.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && (pqErr.Code == "23P01" || pqErr.Code == "23505") {
			return apperrors.Conflict("time slot is no longer available")
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *bookingRepository) Get(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var booking model.Booking
	err := r.db.GetContext(ctx, &booking, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("booking", err)
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &booking, nil
}

func (r *bookingRepository) Update(ctx context.Context, booking *model.Booking) error {
	query := `
		UPDATE bookings
		SET status = $1, discount_cents = $2, final_cents = $3, notes = $4,
		    payment_intent_id = $5, updated_at = $6
		WHERE id = $7
	`
	booking.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		booking.Status,
		booking.DiscountCents,
		booking.FinalCents,
		booking.Notes,
		booking.PaymentIntentID,
		booking.UpdatedAt,
		booking.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("booking", nil)
	}
	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("booking", nil)
	}
	return nil
}

func (r *bookingRepository) ListByDate(ctx context.Context, date model.Date) ([]*model.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE appointment_date = $1
		ORDER BY start_time ASC
	`
	var bookings []*model.Booking
	if err := r.db.SelectContext(ctx, &bookings, query, date); err != nil {
		return nil, fmt.Errorf("failed to list bookings by date: %w", err)
	}
	return bookings, nil
}

func (r *bookingRepository) List(ctx context.Context, filters *model.BookingFilters) ([]*model.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE 1=1`
	args := []interface{}{}
	argCount := 1

	if filters != nil {
		if filters.CustomerID != uuid.Nil {
			query += fmt.Sprintf(" AND customer_id = $%d", argCount)
			args = append(args, filters.CustomerID)
			argCount++
		}
		if filters.Status != "" {
			query += fmt.Sprintf(" AND status = $%d", argCount)
			args = append(args, filters.Status)
			argCount++
		}
		if !filters.From.IsZero() {
			query += fmt.Sprintf(" AND appointment_date >= $%d", argCount)
			args = append(args, filters.From)
			argCount++
		}
		if !filters.To.IsZero() {
			query += fmt.Sprintf(" AND appointment_date <= $%d", argCount)
			args = append(args, filters.To)
			argCount++
		}
	}

	query += " ORDER BY appointment_date ASC, start_time ASC"

	var bookings []*model.Booking
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

func (r *bookingRepository) SetCalendarEventID(ctx context.Context, id uuid.UUID, eventID string) error {
	query := `UPDATE bookings SET calendar_event_id = $1, updated_at = $2 WHERE id = $3`
	if _, err := r.db.ExecContext(ctx, query, eventID, time.Now(), id); err != nil {
		return fmt.Errorf("failed to set calendar event id: %w", err)
	}
	return nil
}
