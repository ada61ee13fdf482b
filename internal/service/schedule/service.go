package schedule

import (
	"github.com/google/uuid"

	"github.com/velora-studio/booking-api/internal/model"
)

// DefaultSlotIntervalMin is the fixed cadence between offered start times.
// It is deliberately independent of the requested duration: start-time
// granularity stays constant even though occupied duration varies.
const DefaultSlotIntervalMin = 30

// Service generates candidate appointment slots against the salon's weekly
// hours. It is read-only and never touches the booking set.
type Service struct {
	hours    model.BusinessHours
	interval int
}

func NewService(hours model.BusinessHours, intervalMin int) *Service {
	if intervalMin <= 0 {
		intervalMin = DefaultSlotIntervalMin
	}
	return &Service{hours: hours, interval: intervalMin}
}

// GenerateSlots produces the ordered slot grid for a date. A closed weekday
// yields no slots; "no slots" is an expected outcome, not an error. Callers
// must consult the blocked-date set separately before offering the result.
//
// With a positive requested duration a slot is unavailable when the service
// would run past closing, or when its interval overlaps an existing
// non-cancelled booking on that date. With zero duration (no services chosen
// yet) only the start instant itself is checked against existing bookings.
func (s *Service) GenerateSlots(date model.Date, bookings []*model.Booking, requestedDurationMin int) []model.TimeSlot {
	day, open := s.hours.Day(date.Weekday())
	if !open {
		return nil
	}

	var sameDay []*model.Booking
	for _, b := range bookings {
		if b.Status != model.BookingStatusCancelled && b.Date.Equal(date) {
			sameDay = append(sameDay, b)
		}
	}

	var slots []model.TimeSlot
	for t := day.Open; t < day.Close; t = t.Add(s.interval) {
		slot := model.TimeSlot{Time: t, Available: true}

		if requestedDurationMin > 0 {
			end := t.Add(requestedDurationMin)
			if end > day.Close {
				slot.Available = false
			} else {
				for _, b := range sameDay {
					if b.Overlaps(t, end) {
						slot.Available = false
						slot.BookingID = bookingIDRef(b)
						break
					}
				}
			}
		} else {
			for _, b := range sameDay {
				if t >= b.StartTime && t < b.EndTime {
					slot.Available = false
					slot.BookingID = bookingIDRef(b)
					break
				}
			}
		}

		slots = append(slots, slot)
	}
	return slots
}

// SlotFor returns the generated slot whose start time equals start, used to
// re-validate a chosen time immediately before persisting.
func (s *Service) SlotFor(date model.Date, bookings []*model.Booking, requestedDurationMin int, start model.TimeOfDay) (model.TimeSlot, bool) {
	for _, slot := range s.GenerateSlots(date, bookings, requestedDurationMin) {
		if slot.Time == start {
			return slot, true
		}
	}
	return model.TimeSlot{}, false
}

// Hours exposes the weekly schedule for display.
func (s *Service) Hours() model.BusinessHours {
	return s.hours
}

func bookingIDRef(b *model.Booking) *uuid.UUID {
	id := b.ID
	return &id
}
