package repository

import (
	"context"
	"fmt"

	"visit-map-api/internal/models"
)

const orgSettingsColumns = `id, search_limit, nearby_distance_km, entry_exit_interval, enable_area, enable_group`

// GetOrCreateOrgDefaults returns the singleton organization settings row,
// inserting it with models.DefaultOrgSettings first when it does not exist.
func (r *Repository) GetOrCreateOrgDefaults(ctx context.Context) (models.OrgDefaultSetting, bool, error) {
	d := models.DefaultOrgSettings()
	tag, err := r.db.Exec(ctx, `
		INSERT INTO org_default_settings (`+orgSettingsColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING`,
		d.ID, d.SearchLimit, d.NearbyDistanceKm, string(d.EntryExitInterval), d.EnableArea, d.EnableGroup)
	if err != nil {
		return models.OrgDefaultSetting{}, false, fmt.Errorf("repository: failed to create org defaults: %w", err)
	}
	created := tag.RowsAffected() > 0

	var (
		s        models.OrgDefaultSetting
		interval string
	)
	err = r.db.QueryRow(ctx, `SELECT `+orgSettingsColumns+` FROM org_default_settings WHERE id = $1`, d.ID).Scan(
		&s.ID,
		&s.SearchLimit,
		&s.NearbyDistanceKm,
		&interval,
		&s.EnableArea,
		&s.EnableGroup,
	)
	if err != nil {
		return models.OrgDefaultSetting{}, false, fmt.Errorf("repository: failed to read org defaults: %w", err)
	}
	s.EntryExitInterval = models.EntryExitInterval(interval)

	return s, created, nil
}

// SaveOrgDefaults writes the singleton row.
func (r *Repository) SaveOrgDefaults(ctx context.Context, s models.OrgDefaultSetting) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO org_default_settings (`+orgSettingsColumns+`)
		VALUES (1, $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			search_limit = EXCLUDED.search_limit,
			nearby_distance_km = EXCLUDED.nearby_distance_km,
			entry_exit_interval = EXCLUDED.entry_exit_interval,
			enable_area = EXCLUDED.enable_area,
			enable_group = EXCLUDED.enable_group`,
		s.SearchLimit, s.NearbyDistanceKm, string(s.EntryExitInterval), s.EnableArea, s.EnableGroup)
	if err != nil {
		return fmt.Errorf("repository: failed to save org defaults: %w", err)
	}
	return nil
}
