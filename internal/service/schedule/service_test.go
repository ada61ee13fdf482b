package schedule

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velora-studio/booking-api/internal/model"
)

func weekdayHours(t *testing.T) model.BusinessHours {
	t.Helper()
	hours, err := model.ParseBusinessHours(map[string]string{
		"monday":    "09:00-18:00",
		"tuesday":   "09:00-18:00",
		"wednesday": "09:00-18:00",
		"thursday":  "09:00-18:00",
		"friday":    "09:00-18:00",
		"saturday":  "09:00-18:00",
	})
	require.NoError(t, err)
	return hours
}

func mustDate(t *testing.T, s string) model.Date {
	t.Helper()
	d, err := model.ParseDate(s)
	require.NoError(t, err)
	return d
}

func mustTime(t *testing.T, s string) model.TimeOfDay {
	t.Helper()
	tod, err := model.ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func testBooking(t *testing.T, date model.Date, start, end string) *model.Booking {
	t.Helper()
	return &model.Booking{
		ID:        uuid.New(),
		Date:      date,
		StartTime: mustTime(t, start),
		EndTime:   mustTime(t, end),
		Status:    model.BookingStatusConfirmed,
	}
}

func slotByTime(t *testing.T, slots []model.TimeSlot, at string) model.TimeSlot {
	t.Helper()
	want := mustTime(t, at)
	for _, s := range slots {
		if s.Time == want {
			return s
		}
	}
	t.Fatalf("no slot at %s", at)
	return model.TimeSlot{}
}

func TestGenerateSlotsClosedDay(t *testing.T) {
	svc := NewService(weekdayHours(t), 30)
	sunday := mustDate(t, "2026-03-08")
	require.Equal(t, time.Sunday, sunday.Weekday())

	slots := svc.GenerateSlots(sunday, []*model.Booking{
		testBooking(t, sunday, "10:00", "11:00"),
	}, 60)
	assert.Empty(t, slots)
}

func TestGenerateSlotsCadence(t *testing.T) {
	svc := NewService(weekdayHours(t), 30)
	monday := mustDate(t, "2026-03-09")

	slots := svc.GenerateSlots(monday, nil, 0)

	// 09:00 through 17:30 inclusive at 30-minute cadence
	require.Len(t, slots, 18)
	assert.Equal(t, "09:00", slots[0].Time.String())
	assert.Equal(t, "09:30", slots[1].Time.String())
	assert.Equal(t, "17:30", slots[len(slots)-1].Time.String())
	for i := 1; i < len(slots); i++ {
		assert.Equal(t, 30, int(slots[i].Time-slots[i-1].Time))
	}
}

func TestGenerateSlotsZeroDurationPointCheck(t *testing.T) {
	svc := NewService(weekdayHours(t), 30)
	monday := mustDate(t, "2026-03-09")
	booked := testBooking(t, monday, "10:00", "11:00")

	slots := svc.GenerateSlots(monday, []*model.Booking{booked}, 0)

	// only start instants inside the booking are blocked
	assert.False(t, slotByTime(t, slots, "10:00").Available)
	assert.False(t, slotByTime(t, slots, "10:30").Available)
	assert.True(t, slotByTime(t, slots, "09:30").Available)
	assert.True(t, slotByTime(t, slots, "11:00").Available)

	// even the last slot of the day is offered with no duration chosen
	assert.True(t, slotByTime(t, slots, "17:30").Available)
}

func TestGenerateSlotsDurationAware(t *testing.T) {
	svc := NewService(weekdayHours(t), 30)
	monday := mustDate(t, "2026-03-09")
	booked := testBooking(t, monday, "10:00", "11:00")

	slots := svc.GenerateSlots(monday, []*model.Booking{booked}, 90)

	// 09:30 + 90min ends 11:00 and overlaps the 10:00-11:00 booking
	s := slotByTime(t, slots, "09:30")
	assert.False(t, s.Available)
	require.NotNil(t, s.BookingID)
	assert.Equal(t, booked.ID, *s.BookingID)

	// 09:00 + 90min ends 10:30, also overlapping
	assert.False(t, slotByTime(t, slots, "09:00").Available)

	// 11:00 + 90min ends 12:30, clear of the booking
	assert.True(t, slotByTime(t, slots, "11:00").Available)
}

func TestGenerateSlotsEndAtCloseIsAvailable(t *testing.T) {
	svc := NewService(weekdayHours(t), 30)
	monday := mustDate(t, "2026-03-09")

	slots := svc.GenerateSlots(monday, nil, 60)

	// 17:00 + 60min ends exactly at close
	assert.True(t, slotByTime(t, slots, "17:00").Available)
	// 17:30 + 60min would run past close
	assert.False(t, slotByTime(t, slots, "17:30").Available)
}

func TestGenerateSlotsIgnoresCancelledBookings(t *testing.T) {
	svc := NewService(weekdayHours(t), 30)
	monday := mustDate(t, "2026-03-09")

	cancelled := testBooking(t, monday, "10:00", "11:00")
	cancelled.Status = model.BookingStatusCancelled

	slots := svc.GenerateSlots(monday, []*model.Booking{cancelled}, 60)
	assert.True(t, slotByTime(t, slots, "10:00").Available)
}

func TestGenerateSlotsIgnoresOtherDates(t *testing.T) {
	svc := NewService(weekdayHours(t), 30)
	monday := mustDate(t, "2026-03-09")
	tuesday := mustDate(t, "2026-03-10")

	slots := svc.GenerateSlots(monday, []*model.Booking{
		testBooking(t, tuesday, "10:00", "11:00"),
	}, 60)
	assert.True(t, slotByTime(t, slots, "10:00").Available)
}

func TestGenerateSlotsEndToEnd(t *testing.T) {
	svc := NewService(weekdayHours(t), 30)
	monday := mustDate(t, "2026-03-09")
	booked := testBooking(t, monday, "13:00", "14:30")

	slots := svc.GenerateSlots(monday, []*model.Booking{booked}, 60)

	blocked := slotByTime(t, slots, "13:30")
	assert.False(t, blocked.Available)
	require.NotNil(t, blocked.BookingID)
	assert.Equal(t, booked.ID, *blocked.BookingID)

	assert.True(t, slotByTime(t, slots, "14:30").Available)

	// running past close has no booking attribution
	late := slotByTime(t, slots, "17:30")
	assert.False(t, late.Available)
	assert.Nil(t, late.BookingID)
}

func TestSlotFor(t *testing.T) {
	svc := NewService(weekdayHours(t), 30)
	monday := mustDate(t, "2026-03-09")

	slot, ok := svc.SlotFor(monday, nil, 60, mustTime(t, "10:00"))
	require.True(t, ok)
	assert.True(t, slot.Available)

	// off-grid start times are not offered
	_, ok = svc.SlotFor(monday, nil, 60, mustTime(t, "10:15"))
	assert.False(t, ok)

	// closed day offers nothing
	sunday := mustDate(t, "2026-03-08")
	_, ok = svc.SlotFor(sunday, nil, 60, mustTime(t, "10:00"))
	assert.False(t, ok)
}

func TestNewServiceDefaultsInterval(t *testing.T) {
	svc := NewService(weekdayHours(t), 0)
	monday := mustDate(t, "2026-03-09")
	slots := svc.GenerateSlots(monday, nil, 0)
	require.Len(t, slots, 18)
}
