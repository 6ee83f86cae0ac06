package service

import (
	"context"
	"fmt"
	"strings"

	"visit-map-api/internal/markerstyle"
	"visit-map-api/internal/models"

	"github.com/rs/zerolog"
)

// AdminService backs the bulk editors of the settings console.
type AdminService struct {
	repo AdminRepository
}

// AdminRepository is the storage the admin service needs.
type AdminRepository interface {
	ListMarkerColors(ctx context.Context) ([]models.MarkerColorSetting, error)
	ReplaceMarkerColors(ctx context.Context, rules []models.MarkerColorSetting) error
	ListUsers(ctx context.Context) ([]models.MaptechUser, error)
	ReplaceUsers(ctx context.Context, users []models.MaptechUser) error
}

func NewAdminService(repo AdminRepository) *AdminService {
	return &AdminService{repo: repo}
}

// MarkerColors returns the rules in evaluation order.
func (s *AdminService) MarkerColors(ctx context.Context) ([]models.MarkerColorSetting, error) {
	rules, err := s.repo.ListMarkerColors(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list marker colors: %w", err)
	}
	return markerstyle.Order(rules), nil
}

// ReplaceMarkerColors swaps the whole rule set for rows. Rows without a
// priority get their 1-based position. A row with a non-numeric priority
// rejects the whole payload.
func (s *AdminService) ReplaceMarkerColors(ctx context.Context, rows []models.MarkerColorRow) error {
	rules := make([]models.MarkerColorSetting, 0, len(rows))
	for i, row := range rows {
		rule, err := row.Setting()
		if err != nil {
			return validationf("row %d: %v", i+1, err)
		}
		rules = append(rules, rule)
	}

	if err := s.repo.ReplaceMarkerColors(ctx, markerstyle.AssignPriorities(rules)); err != nil {
		return fmt.Errorf("service: failed to replace marker colors: %w", err)
	}

	zerolog.Ctx(ctx).Info().Int("count", len(rules)).Msg("marker colors replaced")
	return nil
}

// Users lists the field users.
func (s *AdminService) Users(ctx context.Context) ([]models.MaptechUser, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list users: %w", err)
	}
	return users, nil
}

// ReplaceUsers swaps the whole user list for rows, skipping rows without a
// username or password.
func (s *AdminService) ReplaceUsers(ctx context.Context, rows []models.UserRow) error {
	users := make([]models.MaptechUser, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		if strings.TrimSpace(row.Username) == "" || row.Password == "" {
			skipped++
			continue
		}
		users = append(users, row.User())
	}

	if err := s.repo.ReplaceUsers(ctx, users); err != nil {
		return fmt.Errorf("service: failed to replace users: %w", err)
	}

	zerolog.Ctx(ctx).Info().
		Int("count", len(users)).
		Int("skipped", skipped).
		Msg("users replaced")
	return nil
}
