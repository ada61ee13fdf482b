package catalog

import (
	"github.com/velora-studio/booking-api/internal/model"
)

// Catalog is the static service reference data, loaded once at startup and
// never mutated at runtime.
type Catalog struct {
	services map[string]*model.Service
	order    []string
}

func New(services []*model.Service) *Catalog {
	c := &Catalog{services: make(map[string]*model.Service, len(services))}
	for _, svc := range services {
		if _, dup := c.services[svc.ID]; dup {
			continue
		}
		c.services[svc.ID] = svc
		c.order = append(c.order, svc.ID)
	}
	return c
}

// Service looks up a service by ID.
func (c *Catalog) Service(id string) (*model.Service, bool) {
	svc, ok := c.services[id]
	return svc, ok
}

// Addon looks up an add-on under its parent service.
func (c *Catalog) Addon(serviceID, addonID string) (*model.ServiceAddon, bool) {
	svc, ok := c.services[serviceID]
	if !ok {
		return nil, false
	}
	for i := range svc.Addons {
		if svc.Addons[i].ID == addonID {
			return &svc.Addons[i], true
		}
	}
	return nil, false
}

// List returns all services in catalog order.
func (c *Catalog) List() []*model.Service {
	out := make([]*model.Service, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.services[id])
	}
	return out
}

// ResolveSelection builds a Selection from raw service and add-on IDs,
// assigning each add-on to its parent service. Unknown IDs, and add-ons
// whose parent is not selected, are dropped: a catalog mismatch means stale
// client state, not a usable error.
func (c *Catalog) ResolveSelection(serviceIDs, addonIDs []string) *model.Selection {
	sel := model.NewSelection()
	for _, id := range serviceIDs {
		if _, ok := c.services[id]; ok {
			sel.AddService(id)
		}
	}
	for _, addonID := range addonIDs {
		for _, serviceID := range sel.Services() {
			if _, ok := c.Addon(serviceID, addonID); ok {
				sel.AddAddon(serviceID, addonID)
				break
			}
		}
	}
	return sel
}

// Snapshot freezes the selection's services, add-ons, prices and durations
// into the form stored on a booking.
func (c *Catalog) Snapshot(sel *model.Selection) model.BookedServices {
	var booked model.BookedServices
	for _, serviceID := range sel.Services() {
		svc, ok := c.services[serviceID]
		if !ok {
			continue
		}
		entry := model.BookedService{
			ID:          svc.ID,
			Name:        svc.Name,
			PriceCents:  svc.PriceCents,
			DurationMin: svc.DurationMin,
		}
		for _, addonID := range sel.Addons(serviceID) {
			if addon, ok := c.Addon(serviceID, addonID); ok {
				entry.Addons = append(entry.Addons, model.BookedAddon{
					ID:          addon.ID,
					Name:        addon.Name,
					PriceCents:  addon.PriceCents,
					DurationMin: addon.DurationMin,
				})
			}
		}
		booked = append(booked, entry)
	}
	return booked
}
