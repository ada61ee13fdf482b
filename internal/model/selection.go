package model

// Selection is a customer's in-progress choice of services and add-ons.
// Invariant: an add-on is only present while its parent service is; removing
// a service cascade-removes its add-ons, and reselecting a service starts
// with an empty add-on set.
type Selection struct {
	services []string
	addons   map[string][]string
}

func NewSelection() *Selection {
	return &Selection{addons: make(map[string][]string)}
}

// AddService selects a service. Adding an already-selected service is a
// no-op and keeps its add-ons.
func (s *Selection) AddService(serviceID string) {
	if s.HasService(serviceID) {
		return
	}
	s.services = append(s.services, serviceID)
}

// RemoveService deselects a service and cascade-removes its add-ons.
func (s *Selection) RemoveService(serviceID string) {
	for i, id := range s.services {
		if id == serviceID {
			s.services = append(s.services[:i], s.services[i+1:]...)
			delete(s.addons, serviceID)
			return
		}
	}
}

// AddAddon selects an add-on under its parent service. It reports false
// when the parent service is not selected.
func (s *Selection) AddAddon(serviceID, addonID string) bool {
	if !s.HasService(serviceID) {
		return false
	}
	for _, id := range s.addons[serviceID] {
		if id == addonID {
			return true
		}
	}
	s.addons[serviceID] = append(s.addons[serviceID], addonID)
	return true
}

// RemoveAddon deselects a single add-on.
func (s *Selection) RemoveAddon(serviceID, addonID string) {
	ids := s.addons[serviceID]
	for i, id := range ids {
		if id == addonID {
			s.addons[serviceID] = append(ids[:i], ids[i+1:]...)
			return
		}
	}
}

func (s *Selection) HasService(serviceID string) bool {
	for _, id := range s.services {
		if id == serviceID {
			return true
		}
	}
	return false
}

// Services returns selected service IDs in selection order.
func (s *Selection) Services() []string {
	out := make([]string, len(s.services))
	copy(out, s.services)
	return out
}

// Addons returns the add-on IDs selected under a service, in selection order.
func (s *Selection) Addons(serviceID string) []string {
	ids := s.addons[serviceID]
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

func (s *Selection) Empty() bool {
	return len(s.services) == 0
}
