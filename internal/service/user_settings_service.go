package service

import (
	"context"
	"fmt"

	"visit-map-api/internal/models"

	"github.com/rs/zerolog"
)

// UserSettingsService reads and updates a field user's map preferences.
type UserSettingsService struct {
	repo UserSettingsRepository
}

// UserSettingsRepository is the storage the user settings service needs.
type UserSettingsRepository interface {
	GetUserByUsername(ctx context.Context, username string) (*models.MaptechUser, error)
	UpdateUserPreferences(ctx context.Context, id int, p models.UserPreferences) error
}

func NewUserSettingsService(repo UserSettingsRepository) *UserSettingsService {
	return &UserSettingsService{repo: repo}
}

func (s *UserSettingsService) Get(ctx context.Context, username string) (models.UserPreferences, error) {
	u, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return models.UserPreferences{}, fmt.Errorf("service: failed to get user: %w", err)
	}
	return u.UserPreferences, nil
}

// Update applies the keys present in upd and returns the merged preferences.
func (s *UserSettingsService) Update(ctx context.Context, username string, upd models.UserSettingsUpdate) (models.UserPreferences, error) {
	u, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return models.UserPreferences{}, fmt.Errorf("service: failed to get user: %w", err)
	}

	prefs := u.UserPreferences
	upd.Apply(&prefs)

	if err := s.repo.UpdateUserPreferences(ctx, u.ID, prefs); err != nil {
		return models.UserPreferences{}, fmt.Errorf("service: failed to update user settings: %w", err)
	}

	zerolog.Ctx(ctx).Info().Str("username", username).Msg("user settings updated")
	return prefs, nil
}
