package postgres

import (
	"context"
	"fmt"

	"github.com/velora-studio/booking-api/internal/model"
)

func (r *catalogRepository) ListServices(ctx context.Context) ([]*model.Service, error) {
	var services []*model.Service
	query := `
		SELECT id, name, price_cents, duration_min, category
		FROM services ORDER BY category, name
	`
	if err := r.db.SelectContext(ctx, &services, query); err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	var addons []*model.ServiceAddon
	addonQuery := `
		SELECT id, service_id, name, price_cents, duration_min
		FROM service_addons ORDER BY name
	`
	if err := r.db.SelectContext(ctx, &addons, addonQuery); err != nil {
		return nil, fmt.Errorf("failed to list service addons: %w", err)
	}

	byService := make(map[string][]model.ServiceAddon)
	for _, addon := range addons {
		byService[addon.ServiceID] = append(byService[addon.ServiceID], *addon)
	}
	for _, svc := range services {
		svc.Addons = byService[svc.ID]
	}
	return services, nil
}
