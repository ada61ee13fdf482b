package postgres

import (
	"github.com/jmoiron/sqlx"

	"github.com/velora-studio/booking-api/internal/repository"
)

type bookingRepository struct {
	db *sqlx.DB
}

type customerRepository struct {
	db *sqlx.DB
}

type blockedDateRepository struct {
	db *sqlx.DB
}

type catalogRepository struct {
	db *sqlx.DB
}

type staffUserRepository struct {
	db *sqlx.DB
}

func NewBookingRepository(db *sqlx.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

func NewCustomerRepository(db *sqlx.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func NewBlockedDateRepository(db *sqlx.DB) repository.BlockedDateRepository {
	return &blockedDateRepository{db: db}
}

func NewCatalogRepository(db *sqlx.DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

func NewStaffUserRepository(db *sqlx.DB) repository.StaffUserRepository {
	return &staffUserRepository{db: db}
}
