package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	apperrors "github.com/velora-studio/booking-api/pkg/errors"
	"github.com/velora-studio/booking-api/pkg/metrics"
	"github.com/velora-studio/booking-api/pkg/validator"

	"github.com/velora-studio/booking-api/internal/calendarsync"
	"github.com/velora-studio/booking-api/internal/lock"
	"github.com/velora-studio/booking-api/internal/model"
	"github.com/velora-studio/booking-api/internal/payment"
	"github.com/velora-studio/booking-api/internal/repository"
	"github.com/velora-studio/booking-api/internal/service/catalog"
	"github.com/velora-studio/booking-api/internal/service/notification"
	"github.com/velora-studio/booking-api/internal/service/pricing"
	"github.com/velora-studio/booking-api/internal/service/schedule"
)

const paymentStatusSucceeded = "succeeded"

// Service owns the booking lifecycle. All mutations of the booking set go
// through it; slot generation stays read-only.
type Service struct {
	repo      repository.BookingRepository
	customers repository.CustomerRepository
	blocked   repository.BlockedDateRepository
	catalog   *catalog.Catalog
	pricing   *pricing.Calculator
	schedule  *schedule.Service
	payments  payment.Processor
	calendar  calendarsync.Mirror
	notifier  notification.Service
	locks     lock.DateLocker
	metrics   *metrics.Metrics

	depositCents int64
	currency     string
}

type Config struct {
	DepositCents int64
	Currency     string
}

func NewService(
	repo repository.BookingRepository,
	customers repository.CustomerRepository,
	blocked repository.BlockedDateRepository,
	cat *catalog.Catalog,
	calc *pricing.Calculator,
	sched *schedule.Service,
	payments payment.Processor,
	mirror calendarsync.Mirror,
	notifier notification.Service,
	locks lock.DateLocker,
	m *metrics.Metrics,
	cfg Config,
) *Service {
	return &Service{
		repo:         repo,
		customers:    customers,
		blocked:      blocked,
		catalog:      cat,
		pricing:      calc,
		schedule:     sched,
		payments:     payments,
		calendar:     mirror,
		notifier:     notifier,
		locks:        locks,
		metrics:      m,
		depositCents: cfg.DepositCents,
		currency:     cfg.Currency,
	}
}

// AvailableSlots computes the slot grid offered for a date given an
// in-progress selection. A blocked or closed date yields an empty grid.
func (s *Service) AvailableSlots(ctx context.Context, dateStr string, serviceIDs, addonIDs []string) ([]model.TimeSlot, error) {
	date, err := model.ParseDate(dateStr)
	if err != nil {
		return nil, apperrors.Validation("invalid date", map[string]string{"date": "must be YYYY-MM-DD"})
	}

	blocked, err := s.blocked.IsBlocked(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to check blocked date: %w", err)
	}
	if blocked {
		return []model.TimeSlot{}, nil
	}

	sel := s.catalog.ResolveSelection(serviceIDs, addonIDs)
	duration := s.pricing.TotalDurationMin(sel)

	bookings, err := s.repo.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	start := time.Now()
	slots := s.schedule.GenerateSlots(date, bookings, duration)
	if s.metrics != nil {
		s.metrics.SlotQueries.Inc()
		s.metrics.SlotGenLatency.Observe(time.Since(start).Seconds())
	}
	if slots == nil {
		slots = []model.TimeSlot{}
	}
	return slots, nil
}

// Create validates the submission, re-checks availability for the chosen
// start time under a per-date lock, persists the booking as pending, mirrors
// it to the external calendar (best effort) and initiates the deposit
// payment. A payment failure is returned to the caller; the booking stays
// pending and the deposit can be retried.
func (s *Service) Create(ctx context.Context, req *model.CreateBookingRequest) (*model.Booking, *payment.Intent, error) {
	if err := validateCreate(req); err != nil {
		return nil, nil, err
	}

	date, err := model.ParseDate(req.Date)
	if err != nil {
		return nil, nil, apperrors.Validation("invalid date", map[string]string{"date": "must be YYYY-MM-DD"})
	}
	startTime, err := model.ParseTimeOfDay(req.Time)
	if err != nil {
		return nil, nil, apperrors.Validation("invalid time", map[string]string{"time": "must be HH:mm"})
	}

	sel := s.catalog.ResolveSelection(req.ServiceIDs, req.AddonIDs)
	if sel.Empty() {
		return nil, nil, apperrors.Validation("invalid selection", map[string]string{"services": "no known services selected"})
	}
	duration := s.pricing.TotalDurationMin(sel)
	total := s.pricing.TotalCents(sel)

	blocked, err := s.blocked.IsBlocked(ctx, date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check blocked date: %w", err)
	}
	if blocked {
		return nil, nil, apperrors.Conflict("selected date is not open for booking")
	}

	// Serialize the recheck-then-persist sequence per date so two
	// concurrent submissions cannot both pass the availability check.
	unlocker, err := s.locks.Lock(ctx, date.String())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to lock date: %w", err)
	}
	defer unlocker.Unlock(ctx)

	bookings, err := s.repo.ListByDate(ctx, date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	slot, found := s.schedule.SlotFor(date, bookings, duration, startTime)
	if !found || !slot.Available {
		if s.metrics != nil {
			s.metrics.BookingConflicts.Inc()
		}
		return nil, nil, apperrors.Conflict("time slot is no longer available")
	}

	customer, err := s.findOrCreateCustomer(ctx, req)
	if err != nil {
		return nil, nil, err
	}

	booking := &model.Booking{
		ID:         uuid.New(),
		CustomerID: customer.ID,
		Services:   s.catalog.Snapshot(sel),
		Date:       date,
		StartTime:  startTime,
		EndTime:    startTime.Add(duration),
		TotalCents: total,
		FinalCents: total,
		Status:     model.BookingStatusPending,
		Notes:      strings.TrimSpace(req.Notes),
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, nil, err
	}
	if s.metrics != nil {
		s.metrics.BookingsCreated.Inc()
	}

	s.mirrorCreate(ctx, booking)
	s.notifier.BookingCreated(ctx, booking, customer)

	intent, err := s.payments.CreateIntent(ctx, s.depositCents, s.currency)
	if err != nil {
		if s.metrics != nil {
			s.metrics.DepositFailures.Inc()
		}
		// The booking is persisted and stays pending; the deposit can be
		// retried without recreating it.
		return booking, nil, err
	}

	booking.PaymentIntentID = &intent.ID
	if err := s.repo.Update(ctx, booking); err != nil {
		log.Warn().Err(err).Str("booking_id", booking.ID.String()).Msg("failed to store payment intent id")
	}

	return booking, intent, nil
}

// RetryDeposit re-initiates the deposit payment for a pending booking.
func (s *Service) RetryDeposit(ctx context.Context, id uuid.UUID) (*payment.Intent, error) {
	booking, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status != model.BookingStatusPending {
		return nil, apperrors.Conflict("deposit can only be initiated for pending bookings")
	}

	intent, err := s.payments.CreateIntent(ctx, s.depositCents, s.currency)
	if err != nil {
		if s.metrics != nil {
			s.metrics.DepositFailures.Inc()
		}
		return nil, err
	}

	booking.PaymentIntentID = &intent.ID
	if err := s.repo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to store payment intent id: %w", err)
	}
	return intent, nil
}

// ConfirmDeposit confirms the deposit with the payment processor and, on
// success, moves the booking from pending to confirmed.
func (s *Service) ConfirmDeposit(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	booking, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status != model.BookingStatusPending {
		return nil, apperrors.Conflict("booking is not awaiting a deposit")
	}
	if booking.PaymentIntentID == nil {
		return nil, apperrors.Conflict("no deposit has been initiated for this booking")
	}

	status, err := s.payments.Confirm(ctx, *booking.PaymentIntentID)
	if err != nil {
		return nil, err
	}
	if status != paymentStatusSucceeded {
		return nil, apperrors.Conflict(fmt.Sprintf("deposit not completed: %s", status))
	}

	return s.UpdateStatus(ctx, id, model.BookingStatusConfirmed)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, filters *model.BookingFilters) ([]*model.Booking, error) {
	return s.repo.List(ctx, filters)
}

// UpdateStatus transitions a booking. Terminal statuses (completed,
// cancelled) reject further transitions. A status-appropriate notification
// is sent best-effort and never blocks the transition.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status model.BookingStatus) (*model.Booking, error) {
	if !status.Valid() {
		return nil, apperrors.Validation("invalid status", map[string]string{"status": "unknown status"})
	}

	booking, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status == status {
		return booking, nil
	}
	if booking.Status.Terminal() {
		return nil, apperrors.Conflict(fmt.Sprintf("booking is %s and cannot change status", booking.Status))
	}

	prev := booking.Status
	booking.Status = status
	if err := s.repo.Update(ctx, booking); err != nil {
		return nil, err
	}
	if status == model.BookingStatusCancelled {
		if s.metrics != nil {
			s.metrics.BookingsCancelled.Inc()
		}
		// A confirmed booking has a captured deposit; return it best-effort.
		if prev == model.BookingStatusConfirmed && booking.PaymentIntentID != nil {
			if _, err := s.payments.Refund(ctx, *booking.PaymentIntentID, s.depositCents); err != nil {
				log.Warn().Err(err).Str("booking_id", booking.ID.String()).Msg("deposit refund failed")
			}
		}
	}

	if customer, err := s.customers.Get(ctx, booking.CustomerID); err == nil {
		s.notifier.BookingStatusChanged(ctx, booking, customer)
	} else {
		log.Warn().Err(err).Str("booking_id", booking.ID.String()).Msg("failed to load customer for notification")
	}

	return booking, nil
}

// ApplyDiscount sets the discount on a booking. The amount must be within
// [0, total]; the final price never goes negative.
func (s *Service) ApplyDiscount(ctx context.Context, id uuid.UUID, amountCents int64) (*model.Booking, error) {
	booking, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if amountCents < 0 || amountCents > booking.TotalCents {
		return nil, apperrors.Validation("invalid discount", map[string]string{
			"amount_cents": fmt.Sprintf("must be between 0 and %d", booking.TotalCents),
		})
	}

	booking.DiscountCents = amountCents
	booking.FinalCents = booking.TotalCents - amountCents
	if err := s.repo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// Delete removes a booking and best-effort deletes its mirrored calendar
// event.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	booking, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if booking.CalendarEventID != nil {
		if err := s.calendar.DeleteEvent(ctx, *booking.CalendarEventID); err != nil {
			log.Warn().Err(err).Str("booking_id", id.String()).Msg("failed to delete mirrored calendar event")
			if s.metrics != nil {
				s.metrics.CalendarMirrors.WithLabelValues("delete", "error").Inc()
			}
		} else if s.metrics != nil {
			s.metrics.CalendarMirrors.WithLabelValues("delete", "ok").Inc()
		}
	}
	return nil
}

// ToggleBlockedDate blocks the date if it is open, or unblocks it if it is
// currently blocked. Existing bookings on the date are unaffected; blocking
// is prospective only. Returns the new blocked state.
func (s *Service) ToggleBlockedDate(ctx context.Context, dateStr string) (bool, error) {
	date, err := model.ParseDate(dateStr)
	if err != nil {
		return false, apperrors.Validation("invalid date", map[string]string{"date": "must be YYYY-MM-DD"})
	}

	blocked, err := s.blocked.IsBlocked(ctx, date)
	if err != nil {
		return false, fmt.Errorf("failed to check blocked date: %w", err)
	}

	if blocked {
		if err := s.blocked.Remove(ctx, date); err != nil {
			return false, err
		}
		return false, nil
	}
	if err := s.blocked.Add(ctx, date); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) BlockedDates(ctx context.Context) ([]*model.BlockedDate, error) {
	return s.blocked.List(ctx)
}

func (s *Service) mirrorCreate(ctx context.Context, booking *model.Booking) {
	eventID, err := s.calendar.CreateEvent(ctx, booking)
	if err != nil {
		// The mirror is not the source of truth: log and move on.
		log.Warn().Err(err).Str("booking_id", booking.ID.String()).Msg("calendar mirror failed")
		if s.metrics != nil {
			s.metrics.CalendarMirrors.WithLabelValues("create", "error").Inc()
		}
		return
	}
	if eventID == "" {
		return
	}
	if s.metrics != nil {
		s.metrics.CalendarMirrors.WithLabelValues("create", "ok").Inc()
	}

	booking.CalendarEventID = &eventID
	if err := s.repo.SetCalendarEventID(ctx, booking.ID, eventID); err != nil {
		log.Warn().Err(err).Str("booking_id", booking.ID.String()).Msg("failed to store calendar event id")
	}
}

func (s *Service) findOrCreateCustomer(ctx context.Context, req *model.CreateBookingRequest) (*model.Customer, error) {
	customer, err := s.customers.GetByEmail(ctx, req.Email)
	if err == nil {
		return customer, nil
	}
	if !apperrors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	customer = &model.Customer{
		ID:        uuid.New(),
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// validateCreate checks the submission in two groups, each failing fast on
// its first violation: contact details, and the service/date/time
// selection. Failures from both groups are reported together so the client
// can highlight every offending field.
func validateCreate(req *model.CreateBookingRequest) error {
	contact := validator.NewForm()
	if contact.Require("first_name", req.FirstName) &&
		contact.Require("last_name", req.LastName) &&
		contact.Require("email", req.Email) &&
		contact.Email("email", req.Email) &&
		contact.Require("phone", req.Phone) {
		contact.Phone("phone", req.Phone)
	}

	selection := validator.NewForm()
	if len(req.ServiceIDs) == 0 {
		selection.Fail("services", "select at least one service")
	} else if selection.Require("date", req.Date) {
		selection.Require("time", req.Time)
	}

	if contact.Valid() && selection.Valid() {
		return nil
	}

	fields := selection.Errors()
	if fields == nil {
		fields = make(map[string]string)
	}
	for field, msg := range contact.Errors() {
		fields[field] = msg
	}
	first := contact.First()
	if first == "" {
		first = selection.First()
	}
	return apperrors.Validation(fmt.Sprintf("invalid booking request: check %s", first), fields)
}
