package service

import (
	"context"
	"time"

	"visit-map-api/internal/geo"
	"visit-map-api/internal/models"
	"visit-map-api/internal/search"

	"github.com/stretchr/testify/mock"
)

// MockRepository implements every repository interface of this package.
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Customer), args.Error(1)
}

func (m *MockRepository) GetCustomer(ctx context.Context, id int) (*models.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*models.Customer)
	return c, args.Error(1)
}

func (m *MockRepository) CreateCustomer(ctx context.Context, c models.Customer) (models.Customer, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(models.Customer), args.Error(1)
}

func (m *MockRepository) UpdateCustomer(ctx context.Context, c models.Customer) (models.Customer, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(models.Customer), args.Error(1)
}

func (m *MockRepository) DeleteCustomer(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRepository) SearchCustomers(ctx context.Context, filter search.Filter[models.Customer], limit int) ([]models.Customer, error) {
	args := m.Called(ctx, filter, limit)
	return args.Get(0).([]models.Customer), args.Error(1)
}

func (m *MockRepository) CustomersInBox(ctx context.Context, box geo.BoundingBox) ([]models.Customer, error) {
	args := m.Called(ctx, box)
	return args.Get(0).([]models.Customer), args.Error(1)
}

func (m *MockRepository) CustomersVisitedBetween(ctx context.Context, from, to time.Time) ([]models.Customer, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]models.Customer), args.Error(1)
}

func (m *MockRepository) ListVisits(ctx context.Context) ([]models.VisitSchedule, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.VisitSchedule), args.Error(1)
}

func (m *MockRepository) VisitsByCustomer(ctx context.Context, customerID int) ([]models.VisitSchedule, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]models.VisitSchedule), args.Error(1)
}

func (m *MockRepository) VisitsForCustomers(ctx context.Context, customerIDs []int) ([]models.VisitSchedule, error) {
	args := m.Called(ctx, customerIDs)
	return args.Get(0).([]models.VisitSchedule), args.Error(1)
}

func (m *MockRepository) VisitsBetween(ctx context.Context, from, to time.Time) ([]models.VisitSchedule, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]models.VisitSchedule), args.Error(1)
}

func (m *MockRepository) GetVisit(ctx context.Context, id int) (*models.VisitSchedule, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*models.VisitSchedule)
	return v, args.Error(1)
}

func (m *MockRepository) CreateVisit(ctx context.Context, v models.VisitSchedule) (models.VisitSchedule, error) {
	args := m.Called(ctx, v)
	return args.Get(0).(models.VisitSchedule), args.Error(1)
}

func (m *MockRepository) UpdateVisit(ctx context.Context, v models.VisitSchedule) (models.VisitSchedule, error) {
	args := m.Called(ctx, v)
	return args.Get(0).(models.VisitSchedule), args.Error(1)
}

func (m *MockRepository) DeleteVisit(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRepository) ListMarkerColors(ctx context.Context) ([]models.MarkerColorSetting, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.MarkerColorSetting), args.Error(1)
}

func (m *MockRepository) ReplaceMarkerColors(ctx context.Context, rules []models.MarkerColorSetting) error {
	return m.Called(ctx, rules).Error(0)
}

func (m *MockRepository) ListUsers(ctx context.Context) ([]models.MaptechUser, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.MaptechUser), args.Error(1)
}

func (m *MockRepository) ReplaceUsers(ctx context.Context, users []models.MaptechUser) error {
	return m.Called(ctx, users).Error(0)
}

func (m *MockRepository) GetUserByUsername(ctx context.Context, username string) (*models.MaptechUser, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(*models.MaptechUser)
	return u, args.Error(1)
}

func (m *MockRepository) FindUserByCredentials(ctx context.Context, username, password string) (*models.MaptechUser, error) {
	args := m.Called(ctx, username, password)
	u, _ := args.Get(0).(*models.MaptechUser)
	return u, args.Error(1)
}

func (m *MockRepository) UpdateUserPreferences(ctx context.Context, id int, p models.UserPreferences) error {
	return m.Called(ctx, id, p).Error(0)
}

func (m *MockRepository) FindAdminByCredentials(ctx context.Context, username, password string) (*models.AdminUser, error) {
	args := m.Called(ctx, username, password)
	a, _ := args.Get(0).(*models.AdminUser)
	return a, args.Error(1)
}

func (m *MockRepository) GetAdminByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	args := m.Called(ctx, username)
	a, _ := args.Get(0).(*models.AdminUser)
	return a, args.Error(1)
}

func (m *MockRepository) GetOrCreateOrgDefaults(ctx context.Context) (models.OrgDefaultSetting, bool, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.OrgDefaultSetting), args.Bool(1), args.Error(2)
}

func (m *MockRepository) SaveOrgDefaults(ctx context.Context, s models.OrgDefaultSetting) error {
	return m.Called(ctx, s).Error(0)
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func floatPtr(f float64) *float64 { return &f }
