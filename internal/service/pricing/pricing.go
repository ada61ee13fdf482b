package pricing

import (
	"github.com/velora-studio/booking-api/internal/model"
	"github.com/velora-studio/booking-api/internal/service/catalog"
)

// Calculator sums price and duration across a selection. Both methods are
// pure: unknown identifiers contribute zero, and an empty selection yields
// zero for both.
type Calculator struct {
	catalog *catalog.Catalog
}

func NewCalculator(c *catalog.Catalog) *Calculator {
	return &Calculator{catalog: c}
}

// TotalCents returns the selection's total price: each selected service's
// price plus each of its selected add-ons' prices.
func (c *Calculator) TotalCents(sel *model.Selection) int64 {
	var total int64
	for _, serviceID := range sel.Services() {
		svc, ok := c.catalog.Service(serviceID)
		if !ok {
			continue
		}
		total += svc.PriceCents
		for _, addonID := range sel.Addons(serviceID) {
			if addon, ok := c.catalog.Addon(serviceID, addonID); ok {
				total += addon.PriceCents
			}
		}
	}
	return total
}

// TotalDurationMin returns the selection's total duration in minutes,
// summed the same way as TotalCents.
func (c *Calculator) TotalDurationMin(sel *model.Selection) int {
	var total int
	for _, serviceID := range sel.Services() {
		svc, ok := c.catalog.Service(serviceID)
		if !ok {
			continue
		}
		total += svc.DurationMin
		for _, addonID := range sel.Addons(serviceID) {
			if addon, ok := c.catalog.Addon(serviceID, addonID); ok {
				total += addon.DurationMin
			}
		}
	}
	return total
}
