package model

// ServiceAddon is an optional extra on top of a parent service. Its price
// and duration are added to the parent's when selected.
type ServiceAddon struct {
	ID          string `db:"id" json:"id"`
	ServiceID   string `db:"service_id" json:"-"`
	Name        string `db:"name" json:"name"`
	PriceCents  int64  `db:"price_cents" json:"price_cents"`
	DurationMin int    `db:"duration_min" json:"duration_min"`
}

// Service is immutable catalog reference data: loaded once, never
// mutated at runtime.
type Service struct {
	ID          string         `db:"id" json:"id"`
	Name        string         `db:"name" json:"name"`
	PriceCents  int64          `db:"price_cents" json:"price_cents"`
	DurationMin int            `db:"duration_min" json:"duration_min"`
	Category    string         `db:"category" json:"category"`
	Addons      []ServiceAddon `db:"-" json:"addons,omitempty"`
}
