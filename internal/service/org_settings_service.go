package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"visit-map-api/internal/models"

	"github.com/rs/zerolog"
)

// OrgSettingsService owns the organization-wide defaults row.
type OrgSettingsService struct {
	repo OrgSettingsRepository
}

// OrgSettingsRepository is the storage the org settings service needs.
type OrgSettingsRepository interface {
	GetOrCreateOrgDefaults(ctx context.Context) (models.OrgDefaultSetting, bool, error)
	SaveOrgDefaults(ctx context.Context, s models.OrgDefaultSetting) error
}

func NewOrgSettingsService(repo OrgSettingsRepository) *OrgSettingsService {
	return &OrgSettingsService{repo: repo}
}

// GetOrCreateDefaults returns the defaults row, creating it on first use.
func (s *OrgSettingsService) GetOrCreateDefaults(ctx context.Context) (models.OrgDefaultSetting, error) {
	d, created, err := s.repo.GetOrCreateOrgDefaults(ctx)
	if err != nil {
		return models.OrgDefaultSetting{}, fmt.Errorf("service: failed to load org defaults: %w", err)
	}
	if created {
		zerolog.Ctx(ctx).Info().Msg("org defaults created")
	}
	return d, nil
}

// Update validates the form and saves it. A numeric field that does not parse
// returns a *ValidationError and nothing is written. Blank numeric fields keep
// their current value; an unknown interval becomes 15分間隔.
func (s *OrgSettingsService) Update(ctx context.Context, form models.OrgSettingsForm) (models.OrgDefaultSetting, error) {
	d, err := s.GetOrCreateDefaults(ctx)
	if err != nil {
		return models.OrgDefaultSetting{}, err
	}

	if v := strings.TrimSpace(form.SearchLimit); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return models.OrgDefaultSetting{}, validationf("Invalid search_limit: %s", form.SearchLimit)
		}
		d.SearchLimit = n
	}

	if v := strings.TrimSpace(form.NearbyDistanceKm); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return models.OrgDefaultSetting{}, validationf("Invalid nearby_distance_km: %s", form.NearbyDistanceKm)
		}
		d.NearbyDistanceKm = f
	}

	d.EntryExitInterval = models.ParseEntryExitInterval(strings.TrimSpace(form.EntryExitInterval))
	d.EnableArea = form.EnableArea
	d.EnableGroup = form.EnableGroup

	if err := s.repo.SaveOrgDefaults(ctx, d); err != nil {
		return models.OrgDefaultSetting{}, fmt.Errorf("service: failed to save org defaults: %w", err)
	}

	zerolog.Ctx(ctx).Info().
		Int("search_limit", d.SearchLimit).
		Float64("nearby_distance_km", d.NearbyDistanceKm).
		Str("entry_exit_interval", string(d.EntryExitInterval)).
		Msg("org defaults saved")
	return d, nil
}
