package calendarsync

import (
	"context"

	"github.com/velora-studio/booking-api/internal/model"
)

// Mirror copies bookings into an external calendar. It is best effort: the
// calendar is a convenience mirror, never the source of truth, so callers
// log failures and continue.
type Mirror interface {
	CreateEvent(ctx context.Context, booking *model.Booking) (string, error)
	UpdateEvent(ctx context.Context, eventID string, booking *model.Booking) error
	DeleteEvent(ctx context.Context, eventID string) error
}

// NopMirror is used when no external calendar is configured.
type NopMirror struct{}

func (NopMirror) CreateEvent(context.Context, *model.Booking) (string, error) { return "", nil }

func (NopMirror) UpdateEvent(context.Context, string, *model.Booking) error { return nil }

func (NopMirror) DeleteEvent(context.Context, string) error { return nil }
