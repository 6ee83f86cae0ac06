package handler

import (
	"context"
	"testing"

	"visit-map-api/internal/models"
	"visit-map-api/internal/search"
	"visit-map-api/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCustomerService struct{ mock.Mock }

func (m *MockCustomerService) List(ctx context.Context) ([]models.Customer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Customer), args.Error(1)
}

func (m *MockCustomerService) Get(ctx context.Context, id int) (*models.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*models.Customer)
	return c, args.Error(1)
}

func (m *MockCustomerService) Create(ctx context.Context, in models.CustomerInput) (models.Customer, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(models.Customer), args.Error(1)
}

func (m *MockCustomerService) Update(ctx context.Context, id int, in models.CustomerInput) (models.Customer, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(models.Customer), args.Error(1)
}

func (m *MockCustomerService) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCustomerService) Detail(ctx context.Context, id int) (models.CustomerDetail, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.CustomerDetail), args.Error(1)
}

type MockVisitService struct{ mock.Mock }

func (m *MockVisitService) List(ctx context.Context) ([]models.VisitSchedule, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.VisitSchedule), args.Error(1)
}

func (m *MockVisitService) Get(ctx context.Context, id int) (*models.VisitSchedule, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*models.VisitSchedule)
	return v, args.Error(1)
}

func (m *MockVisitService) Create(ctx context.Context, in models.VisitInput) (models.VisitSchedule, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(models.VisitSchedule), args.Error(1)
}

func (m *MockVisitService) Update(ctx context.Context, id int, in models.VisitInput) (models.VisitSchedule, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(models.VisitSchedule), args.Error(1)
}

func (m *MockVisitService) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

type MockMarkerService struct{ mock.Mock }

func (m *MockMarkerService) Today(ctx context.Context) ([]models.Marker, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Marker), args.Error(1)
}

func (m *MockMarkerService) Nearby(ctx context.Context, username string, lat, lng float64) ([]models.Marker, error) {
	args := m.Called(ctx, username, lat, lng)
	return args.Get(0).([]models.Marker), args.Error(1)
}

type MockSearchService struct{ mock.Mock }

func (m *MockSearchService) Fields() map[string][]string {
	return m.Called().Get(0).(map[string][]string)
}

func (m *MockSearchService) Customers(ctx context.Context, pairs []search.Pair) ([]models.Marker, error) {
	args := m.Called(ctx, pairs)
	return args.Get(0).([]models.Marker), args.Error(1)
}

type MockAuthService struct{ mock.Mock }

func (m *MockAuthService) LoginUser(ctx context.Context, username, password string) (*models.MaptechUser, error) {
	args := m.Called(ctx, username, password)
	u, _ := args.Get(0).(*models.MaptechUser)
	return u, args.Error(1)
}

func (m *MockAuthService) LoginAdmin(ctx context.Context, username, password string) (*models.AdminUser, error) {
	args := m.Called(ctx, username, password)
	a, _ := args.Get(0).(*models.AdminUser)
	return a, args.Error(1)
}

func (m *MockAuthService) UserExists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockAuthService) AdminExists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

type MockOrgSettingsService struct{ mock.Mock }

func (m *MockOrgSettingsService) GetOrCreateDefaults(ctx context.Context) (models.OrgDefaultSetting, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.OrgDefaultSetting), args.Error(1)
}

func (m *MockOrgSettingsService) Update(ctx context.Context, form models.OrgSettingsForm) (models.OrgDefaultSetting, error) {
	args := m.Called(ctx, form)
	return args.Get(0).(models.OrgDefaultSetting), args.Error(1)
}

type MockAdminService struct{ mock.Mock }

func (m *MockAdminService) MarkerColors(ctx context.Context) ([]models.MarkerColorSetting, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.MarkerColorSetting), args.Error(1)
}

func (m *MockAdminService) ReplaceMarkerColors(ctx context.Context, rows []models.MarkerColorRow) error {
	return m.Called(ctx, rows).Error(0)
}

func (m *MockAdminService) Users(ctx context.Context) ([]models.MaptechUser, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.MaptechUser), args.Error(1)
}

func (m *MockAdminService) ReplaceUsers(ctx context.Context, rows []models.UserRow) error {
	return m.Called(ctx, rows).Error(0)
}

type MockUserSettingsService struct{ mock.Mock }

func (m *MockUserSettingsService) Get(ctx context.Context, username string) (models.UserPreferences, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(models.UserPreferences), args.Error(1)
}

func (m *MockUserSettingsService) Update(ctx context.Context, username string, upd models.UserSettingsUpdate) (models.UserPreferences, error) {
	args := m.Called(ctx, username, upd)
	return args.Get(0).(models.UserPreferences), args.Error(1)
}

// testServices holds one mock per service interface.
type testServices struct {
	customers    *MockCustomerService
	visits       *MockVisitService
	markers      *MockMarkerService
	search       *MockSearchService
	auth         *MockAuthService
	org          *MockOrgSettingsService
	admin        *MockAdminService
	userSettings *MockUserSettingsService
}

func newTestRouter(t *testing.T) (*gin.Engine, *testServices) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &testServices{
		customers:    new(MockCustomerService),
		visits:       new(MockVisitService),
		markers:      new(MockMarkerService),
		search:       new(MockSearchService),
		auth:         new(MockAuthService),
		org:          new(MockOrgSettingsService),
		admin:        new(MockAdminService),
		userSettings: new(MockUserSettingsService),
	}

	tmpl, err := web.Templates()
	require.NoError(t, err)

	r := NewRouter(Handlers{
		Pages:        NewPageHandler(s.auth, s.org, s.admin, MapSettings{APIKey: "default-key", MapID: "map-id"}),
		Admin:        NewAdminHandler(s.admin),
		Customers:    NewCustomerHandler(s.customers),
		Visits:       NewVisitHandler(s.visits),
		Markers:      NewMarkerHandler(s.markers, s.search),
		UserSettings: NewUserSettingsHandler(s.userSettings),
	}, RouterOptions{Templates: tmpl})

	return r, s
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func floatPtr(f float64) *float64 { return &f }
