package notification

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/velora-studio/booking-api/internal/email"
	"github.com/velora-studio/booking-api/internal/model"
)

// Service sends customer-facing booking notifications. Sends are
// informational and never block or fail the lifecycle transition that
// triggered them.
type Service interface {
	BookingCreated(ctx context.Context, booking *model.Booking, customer *model.Customer)
	BookingStatusChanged(ctx context.Context, booking *model.Booking, customer *model.Customer)
}

type service struct {
	emailSvc  email.Service
	salonName string
}

func NewService(emailSvc email.Service, salonName string) Service {
	return &service{emailSvc: emailSvc, salonName: salonName}
}

func (s *service) BookingCreated(ctx context.Context, booking *model.Booking, customer *model.Customer) {
	subject := fmt.Sprintf("%s: appointment request received", s.salonName)
	body := fmt.Sprintf(
		"Hi %s,\n\nWe received your appointment request for %s at %s. "+
			"It will be confirmed once your deposit is processed.\n\n%s",
		customer.FirstName, booking.Date, booking.StartTime, s.salonName,
	)
	s.send(ctx, booking, customer.Email, subject, body)
}

func (s *service) BookingStatusChanged(ctx context.Context, booking *model.Booking, customer *model.Customer) {
	var subject, body string
	switch booking.Status {
	case model.BookingStatusConfirmed:
		subject = fmt.Sprintf("%s: appointment confirmed", s.salonName)
		body = fmt.Sprintf("Hi %s,\n\nYour appointment on %s at %s is confirmed. See you then!",
			customer.FirstName, booking.Date, booking.StartTime)
	case model.BookingStatusCancelled:
		subject = fmt.Sprintf("%s: appointment cancelled", s.salonName)
		body = fmt.Sprintf("Hi %s,\n\nYour appointment on %s at %s has been cancelled.",
			customer.FirstName, booking.Date, booking.StartTime)
	case model.BookingStatusCompleted:
		subject = fmt.Sprintf("%s: thanks for visiting", s.salonName)
		body = fmt.Sprintf("Hi %s,\n\nThanks for visiting us. We hope to see you again soon!",
			customer.FirstName)
	default:
		return
	}
	s.send(ctx, booking, customer.Email, subject, body)
}

func (s *service) send(ctx context.Context, booking *model.Booking, to, subject, body string) {
	if err := s.emailSvc.Send(ctx, to, subject, body); err != nil {
		log.Warn().
			Err(err).
			Str("booking_id", booking.ID.String()).
			Str("status", string(booking.Status)).
			Msg("failed to send booking notification")
	}
}
