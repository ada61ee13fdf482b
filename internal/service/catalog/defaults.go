package catalog

import "github.com/velora-studio/booking-api/internal/model"

// DefaultServices is the seed catalog used when the services table is
// empty, mirroring the salon's standard menu.
func DefaultServices() []*model.Service {
	return []*model.Service{
		{
			ID: "haircut", Name: "Haircut & Style", PriceCents: 6500, DurationMin: 60, Category: "hair",
			Addons: []model.ServiceAddon{
				{ID: "deep-condition", ServiceID: "haircut", Name: "Deep Conditioning", PriceCents: 2000, DurationMin: 15},
				{ID: "blowout", ServiceID: "haircut", Name: "Blowout Finish", PriceCents: 2500, DurationMin: 30},
			},
		},
		{
			ID: "color", Name: "Full Color", PriceCents: 12000, DurationMin: 120, Category: "hair",
			Addons: []model.ServiceAddon{
				{ID: "gloss", ServiceID: "color", Name: "Gloss Treatment", PriceCents: 3500, DurationMin: 30},
			},
		},
		{
			ID: "highlights", Name: "Partial Highlights", PriceCents: 9500, DurationMin: 90, Category: "hair",
		},
		{
			ID: "manicure", Name: "Classic Manicure", PriceCents: 3500, DurationMin: 30, Category: "nails",
			Addons: []model.ServiceAddon{
				{ID: "gel-polish", ServiceID: "manicure", Name: "Gel Polish", PriceCents: 1500, DurationMin: 15},
			},
		},
		{
			ID: "pedicure", Name: "Spa Pedicure", PriceCents: 5000, DurationMin: 45, Category: "nails",
		},
		{
			ID: "facial", Name: "Signature Facial", PriceCents: 8500, DurationMin: 60, Category: "skin",
			Addons: []model.ServiceAddon{
				{ID: "led-therapy", ServiceID: "facial", Name: "LED Light Therapy", PriceCents: 3000, DurationMin: 15},
			},
		},
	}
}
