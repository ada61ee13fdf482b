package stats

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velora-studio/booking-api/internal/model"
)

func statsBooking(t *testing.T, date string, finalCents int64, status model.BookingStatus, serviceIDs ...string) *model.Booking {
	t.Helper()
	d, err := model.ParseDate(date)
	require.NoError(t, err)

	var services model.BookedServices
	for _, id := range serviceIDs {
		services = append(services, model.BookedService{ID: id, Name: id})
	}
	return &model.Booking{
		ID:         uuid.New(),
		Date:       d,
		FinalCents: finalCents,
		Status:     status,
		Services:   services,
	}
}

func TestDashboardTodayCount(t *testing.T) {
	svc := NewService()
	// Wednesday 2026-03-11
	now := time.Date(2026, 3, 11, 15, 0, 0, 0, time.Local)

	stats := svc.Dashboard([]*model.Booking{
		statsBooking(t, "2026-03-11", 5000, model.BookingStatusConfirmed, "haircut"),
		statsBooking(t, "2026-03-11", 5000, model.BookingStatusCancelled, "haircut"),
		statsBooking(t, "2026-03-12", 5000, model.BookingStatusConfirmed, "haircut"),
	}, now)

	// the cancelled booking still happened today
	assert.Equal(t, 2, stats.TodayCount)
}

func TestDashboardWeekRevenueMondayStart(t *testing.T) {
	svc := NewService()
	// Wednesday 2026-03-11: the week runs Mon 03-09 through Sun 03-15
	now := time.Date(2026, 3, 11, 15, 0, 0, 0, time.Local)

	stats := svc.Dashboard([]*model.Booking{
		statsBooking(t, "2026-03-09", 1000, model.BookingStatusConfirmed, "haircut"), // Monday, in
		statsBooking(t, "2026-03-15", 2000, model.BookingStatusCompleted, "haircut"), // Sunday, in
		statsBooking(t, "2026-03-08", 4000, model.BookingStatusConfirmed, "haircut"), // prior Sunday, out
		statsBooking(t, "2026-03-16", 8000, model.BookingStatusConfirmed, "haircut"), // next Monday, out
		statsBooking(t, "2026-03-10", 500, model.BookingStatusCancelled, "haircut"),  // cancelled, excluded
	}, now)

	assert.Equal(t, int64(3000), stats.WeekRevenueCents)
}

func TestDashboardMonthRevenue(t *testing.T) {
	svc := NewService()
	now := time.Date(2026, 3, 11, 15, 0, 0, 0, time.Local)

	stats := svc.Dashboard([]*model.Booking{
		statsBooking(t, "2026-03-01", 1000, model.BookingStatusConfirmed, "haircut"),
		statsBooking(t, "2026-03-31", 2000, model.BookingStatusPending, "haircut"),
		statsBooking(t, "2026-02-28", 4000, model.BookingStatusConfirmed, "haircut"),
		statsBooking(t, "2026-04-01", 8000, model.BookingStatusConfirmed, "haircut"),
	}, now)

	assert.Equal(t, int64(3000), stats.MonthRevenueCents)
}

func TestDashboardCountsDriverScannedDatesInWestwardZones(t *testing.T) {
	svc := NewService()

	// a DATE column arrives from the driver as midnight UTC
	var scanned model.Date
	require.NoError(t, scanned.Scan(time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)))

	booking := statsBooking(t, "2026-03-09", 5000, model.BookingStatusConfirmed, "haircut")
	booking.Date = scanned

	// same Monday afternoon, five hours behind UTC
	now := time.Date(2026, 3, 9, 14, 0, 0, 0, time.FixedZone("UTC-5", -5*60*60))
	stats := svc.Dashboard([]*model.Booking{booking}, now)

	assert.Equal(t, 1, stats.TodayCount)
	assert.Equal(t, int64(5000), stats.WeekRevenueCents)
	assert.Equal(t, int64(5000), stats.MonthRevenueCents)
}

func TestDashboardTopServices(t *testing.T) {
	svc := NewService()
	now := time.Date(2026, 3, 11, 15, 0, 0, 0, time.Local)

	bookings := []*model.Booking{
		statsBooking(t, "2026-03-09", 0, model.BookingStatusConfirmed, "color", "haircut"),
		statsBooking(t, "2026-03-09", 0, model.BookingStatusConfirmed, "haircut"),
		statsBooking(t, "2026-03-10", 0, model.BookingStatusConfirmed, "haircut", "manicure"),
		statsBooking(t, "2026-03-10", 0, model.BookingStatusConfirmed, "color"),
		statsBooking(t, "2026-03-11", 0, model.BookingStatusConfirmed, "pedicure"),
		statsBooking(t, "2026-03-11", 0, model.BookingStatusConfirmed, "facial"),
		statsBooking(t, "2026-03-12", 0, model.BookingStatusConfirmed, "highlights"),
	}

	stats := svc.Dashboard(bookings, now)

	require.Len(t, stats.TopServices, 5)
	assert.Equal(t, "haircut", stats.TopServices[0].ServiceID)
	assert.Equal(t, 3, stats.TopServices[0].Count)
	assert.Equal(t, "color", stats.TopServices[1].ServiceID)
	assert.Equal(t, 2, stats.TopServices[1].Count)

	// ties keep first-encountered order
	assert.Equal(t, "manicure", stats.TopServices[2].ServiceID)
	assert.Equal(t, "pedicure", stats.TopServices[3].ServiceID)
	assert.Equal(t, "facial", stats.TopServices[4].ServiceID)
}

func TestDashboardEmpty(t *testing.T) {
	svc := NewService()
	stats := svc.Dashboard(nil, time.Now())

	assert.Zero(t, stats.TodayCount)
	assert.Zero(t, stats.WeekRevenueCents)
	assert.Zero(t, stats.MonthRevenueCents)
	assert.Empty(t, stats.TopServices)
}
