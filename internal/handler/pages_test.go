package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"visit-map-api/internal/models"
	"visit-map-api/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestPageHandler_LoginPage(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, path := range []string{"/", "/LoginPage"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), loginErrorMessage)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/LoginPage?error=1", nil))
	assert.Contains(t, w.Body.String(), loginErrorMessage)
}

func TestPageHandler_Login(t *testing.T) {
	tests := []struct {
		name             string
		password         string
		mockError        error
		expectedLocation string
		expectCookie     bool
	}{
		{name: "valid", password: "demo", expectedLocation: "/MobileMapPage", expectCookie: true},
		{name: "invalid", password: "bad", mockError: service.ErrInvalidCredentials, expectedLocation: "/LoginPage?error=1"},
		{name: "storage failure", password: "demo", mockError: assert.AnError, expectedLocation: "/LoginPage?error=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, s := newTestRouter(t)
			var user *models.MaptechUser
			if tt.mockError == nil {
				user = &models.MaptechUser{ID: 1, Username: "demo"}
			}
			s.auth.On("LoginUser", mock.Anything, "demo", tt.password).Return(user, tt.mockError)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, postForm("/login", url.Values{"username": {"demo"}, "password": {tt.password}}))

			assert.Equal(t, http.StatusSeeOther, w.Code)
			assert.Equal(t, tt.expectedLocation, w.Header().Get("Location"))

			cookie := findCookie(w, UserCookie)
			if tt.expectCookie {
				require.NotNil(t, cookie)
				assert.Equal(t, "demo", cookie.Value)
				assert.True(t, cookie.HttpOnly)
				assert.Equal(t, 8*60*60, cookie.MaxAge)
			} else {
				assert.Nil(t, cookie)
			}
		})
	}
}

func TestPageHandler_AdminLogin(t *testing.T) {
	r, s := newTestRouter(t)
	s.auth.On("LoginAdmin", mock.Anything, "admin", "admin").Return(&models.AdminUser{ID: 1, Username: "admin"}, nil)
	s.auth.On("LoginAdmin", mock.Anything, "admin", "x").Return(nil, service.ErrInvalidCredentials)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, postForm("/admin/login", url.Values{"username": {"admin"}, "password": {"admin"}}))
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/AdminSettings", w.Header().Get("Location"))
	require.NotNil(t, findCookie(w, AdminCookie))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, postForm("/admin/login", url.Values{"username": {"admin"}, "password": {"x"}}))
	assert.Equal(t, "/AdminLogin?error=1", w.Header().Get("Location"))
	assert.Nil(t, findCookie(w, AdminCookie))
}

func TestPageHandler_Logout(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: UserCookie, Value: "demo"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/LoginPage", w.Header().Get("Location"))
	cookie := findCookie(w, UserCookie)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}

func TestPageHandler_MobileMapPage(t *testing.T) {
	tests := []struct {
		name             string
		query            string
		cookie           string
		exists           bool
		expectedStatus   int
		expectedLocation string
		expectedKey      string
	}{
		{name: "no cookie", expectedStatus: http.StatusSeeOther, expectedLocation: "/LoginPage"},
		{name: "deleted user", cookie: "ghost", expectedStatus: http.StatusSeeOther, expectedLocation: "/LoginPage"},
		{name: "configured key", cookie: "demo", exists: true, expectedStatus: http.StatusOK, expectedKey: "default-key"},
		{name: "override cleaned", query: "?api_key=%EF%BB%BF%20override-key%20", cookie: "demo", exists: true, expectedStatus: http.StatusOK, expectedKey: "override-key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, s := newTestRouter(t)
			if tt.cookie != "" {
				s.auth.On("UserExists", mock.Anything, tt.cookie).Return(tt.exists, nil)
			}

			req := httptest.NewRequest(http.MethodGet, "/MobileMapPage"+tt.query, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: UserCookie, Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedLocation != "" {
				assert.Equal(t, tt.expectedLocation, w.Header().Get("Location"))
			}
			if tt.expectedKey != "" {
				assert.Contains(t, w.Body.String(), "key="+tt.expectedKey+"&")
				assert.Contains(t, w.Body.String(), "map-id")
			}
		})
	}
}

func TestPageHandler_AdminSettings(t *testing.T) {
	r, s := newTestRouter(t)
	s.auth.On("AdminExists", mock.Anything, "admin").Return(true, nil)
	s.org.On("GetOrCreateDefaults", mock.Anything).Return(models.DefaultOrgSettings(), nil)
	s.admin.On("Users", mock.Anything).Return([]models.MaptechUser{{ID: 1, Username: "demo", Password: "demo"}}, nil)
	s.admin.On("MarkerColors", mock.Anything).Return([]models.MarkerColorSetting{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/AdminSettings?success=1", nil)
	req.AddCookie(&http.Cookie{Name: AdminCookie, Value: "admin"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `value="10000"`)
	assert.Contains(t, w.Body.String(), `value="demo"`)
	assert.Contains(t, w.Body.String(), `class="success"`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/AdminSettings", nil))
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/AdminLogin", w.Header().Get("Location"))
}

func TestPageHandler_UpdateAdminSettings(t *testing.T) {
	tests := []struct {
		name             string
		form             url.Values
		expectedForm     models.OrgSettingsForm
		mockError        error
		expectedLocation string
	}{
		{
			name: "saved",
			form: url.Values{"search_limit": {"500"}, "nearby_distance_km": {"2"}, "entry_exit_interval": {"10分間隔"}, "enable_area": {"on"}},
			expectedForm: models.OrgSettingsForm{
				SearchLimit: "500", NearbyDistanceKm: "2", EntryExitInterval: "10分間隔", EnableArea: true,
			},
			expectedLocation: "/AdminSettings?success=1",
		},
		{
			name:             "validation error",
			form:             url.Values{"search_limit": {"many"}},
			expectedForm:     models.OrgSettingsForm{SearchLimit: "many"},
			mockError:        &service.ValidationError{Message: "Invalid search_limit: many"},
			expectedLocation: "/AdminSettings?error=" + url.QueryEscape("Invalid search_limit: many"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, s := newTestRouter(t)
			s.auth.On("AdminExists", mock.Anything, "admin").Return(true, nil)
			s.org.On("Update", mock.Anything, tt.expectedForm).Return(models.OrgDefaultSetting{}, tt.mockError)

			req := postForm("/AdminSettings", tt.form)
			req.AddCookie(&http.Cookie{Name: AdminCookie, Value: "admin"})
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusSeeOther, w.Code)
			assert.Equal(t, tt.expectedLocation, w.Header().Get("Location"))
			s.org.AssertExpectations(t)
		})
	}
}
