package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/velora-studio/booking-api/internal/model"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	Get(ctx context.Context, id uuid.UUID) (*model.Booking, error)
	Update(ctx context.Context, booking *model.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByDate(ctx context.Context, date model.Date) ([]*model.Booking, error)
	List(ctx context.Context, filters *model.BookingFilters) ([]*model.Booking, error)
	SetCalendarEventID(ctx context.Context, id uuid.UUID, eventID string) error
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *model.Customer) error
	Get(ctx context.Context, id uuid.UUID) (*model.Customer, error)
	GetByEmail(ctx context.Context, email string) (*model.Customer, error)
	List(ctx context.Context) ([]*model.Customer, error)
}

type BlockedDateRepository interface {
	Add(ctx context.Context, date model.Date) error
	Remove(ctx context.Context, date model.Date) error
	IsBlocked(ctx context.Context, date model.Date) (bool, error)
	List(ctx context.Context) ([]*model.BlockedDate, error)
}

type CatalogRepository interface {
	ListServices(ctx context.Context) ([]*model.Service, error)
}

type StaffUserRepository interface {
	Create(ctx context.Context, user *model.StaffUser) error
	GetByEmail(ctx context.Context, email string) (*model.StaffUser, error)
}
