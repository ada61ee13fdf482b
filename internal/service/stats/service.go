package stats

import (
	"sort"
	"time"

	"github.com/velora-studio/booking-api/internal/model"
)

const topServicesLimit = 5

// Service derives dashboard statistics from the booking set. Pure and
// read-only: figures are recomputed on every request.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Dashboard computes today's booking count, revenue over the current
// Monday-start calendar week and current calendar month (non-cancelled
// bookings only), and the five most frequently booked services. Popularity
// ties keep first-encountered order.
func (s *Service) Dashboard(bookings []*model.Booking, now time.Time) *model.DashboardStats {
	today := model.NewDate(now)
	weekStart := startOfWeek(now)
	weekEnd := weekStart.AddDate(0, 0, 7)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	out := &model.DashboardStats{}

	type popularity struct {
		serviceID string
		name      string
		count     int
		firstSeen int
	}
	counts := make(map[string]*popularity)
	var ranked []*popularity

	for _, b := range bookings {
		if b.Date.Equal(today) {
			out.TodayCount++
		}

		if b.Status != model.BookingStatusCancelled {
			// Window membership is by calendar day, not instant.
			day := b.Date.MidnightIn(now.Location())
			if !day.Before(weekStart) && day.Before(weekEnd) {
				out.WeekRevenueCents += b.FinalCents
			}
			if !day.Before(monthStart) && day.Before(monthEnd) {
				out.MonthRevenueCents += b.FinalCents
			}
		}

		for _, svc := range b.Services {
			entry, ok := counts[svc.ID]
			if !ok {
				entry = &popularity{serviceID: svc.ID, name: svc.Name, firstSeen: len(ranked)}
				counts[svc.ID] = entry
				ranked = append(ranked, entry)
			}
			entry.count++
		}
	}

	// ranked is already in first-encountered order; a stable sort by count
	// keeps that order for ties.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].count > ranked[j].count
	})

	limit := topServicesLimit
	if len(ranked) < limit {
		limit = len(ranked)
	}
	for _, entry := range ranked[:limit] {
		out.TopServices = append(out.TopServices, model.ServiceCount{
			ServiceID: entry.serviceID,
			Name:      entry.name,
			Count:     entry.count,
		})
	}
	return out
}

// startOfWeek returns local midnight of the Monday of now's week.
func startOfWeek(now time.Time) time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}
