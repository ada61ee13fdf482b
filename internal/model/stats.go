package model

// ServiceCount is one entry in the dashboard service popularity ranking.
type ServiceCount struct {
	ServiceID string `json:"service_id"`
	Name      string `json:"name"`
	Count     int    `json:"count"`
}

// DashboardStats are the derived admin dashboard figures. Recomputed from
// the booking set on each request, never stored.
type DashboardStats struct {
	TodayCount        int            `json:"today_count"`
	WeekRevenueCents  int64          `json:"week_revenue_cents"`
	MonthRevenueCents int64          `json:"month_revenue_cents"`
	TopServices       []ServiceCount `json:"top_services"`
}
