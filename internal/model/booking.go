package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Valid reports whether s is a known booking status.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// Terminal statuses reject further transitions.
func (s BookingStatus) Terminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// BookedAddon is the price/duration snapshot of an add-on at booking time.
type BookedAddon struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PriceCents  int64  `json:"price_cents"`
	DurationMin int    `json:"duration_min"`
}

// BookedService is the resolved snapshot of a selected service. Prices and
// durations are frozen at creation time even if the catalog later changes.
type BookedService struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	PriceCents  int64         `json:"price_cents"`
	DurationMin int           `json:"duration_min"`
	Addons      []BookedAddon `json:"addons,omitempty"`
}

// BookedServices is stored as a JSONB column.
type BookedServices []BookedService

func (b BookedServices) Value() (driver.Value, error) {
	return json.Marshal(b)
}

func (b *BookedServices) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, b)
	case string:
		return json.Unmarshal([]byte(v), b)
	default:
		return fmt.Errorf("cannot scan %T into BookedServices", src)
	}
}

// Booking is a confirmed-or-pending appointment. Invariant at creation
// time: StartTime < EndTime and both fall within that weekday's business
// hours; EndTime = StartTime + total duration of the frozen selection.
type Booking struct {
	ID              uuid.UUID      `db:"id" json:"id"`
	CustomerID      uuid.UUID      `db:"customer_id" json:"customer_id"`
	Services        BookedServices `db:"services" json:"services"`
	Date            Date           `db:"appointment_date" json:"date"`
	StartTime       TimeOfDay      `db:"start_time" json:"start_time"`
	EndTime         TimeOfDay      `db:"end_time" json:"end_time"`
	TotalCents      int64          `db:"total_cents" json:"total_cents"`
	DiscountCents   int64          `db:"discount_cents" json:"discount_cents"`
	FinalCents      int64          `db:"final_cents" json:"final_cents"`
	Status          BookingStatus  `db:"status" json:"status"`
	Notes           string         `db:"notes" json:"notes,omitempty"`
	CalendarEventID *string        `db:"calendar_event_id" json:"calendar_event_id,omitempty"`
	PaymentIntentID *string        `db:"payment_intent_id" json:"payment_intent_id,omitempty"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at" json:"updated_at"`
}

// DurationMin returns the booked appointment length in minutes.
func (b *Booking) DurationMin() int {
	return int(b.EndTime - b.StartTime)
}

// Overlaps reports whether [b.StartTime, b.EndTime) intersects
// [start, end) on the same date.
func (b *Booking) Overlaps(start, end TimeOfDay) bool {
	return start < b.EndTime && end > b.StartTime
}

// CreateBookingRequest is the public booking submission payload.
type CreateBookingRequest struct {
	FirstName  string   `json:"first_name"`
	LastName   string   `json:"last_name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	ServiceIDs []string `json:"service_ids"`
	AddonIDs   []string `json:"addon_ids"`
	Date       string   `json:"date"`
	Time       string   `json:"time"`
	Notes      string   `json:"notes"`
}

type UpdateStatusRequest struct {
	Status BookingStatus `json:"status" binding:"required,oneof=pending confirmed completed cancelled"`
}

type DiscountRequest struct {
	AmountCents int64 `json:"amount_cents" binding:"gte=0"`
}

// BookingFilters narrows booking list queries.
type BookingFilters struct {
	CustomerID uuid.UUID
	Status     BookingStatus
	From       Date
	To         Date
}
