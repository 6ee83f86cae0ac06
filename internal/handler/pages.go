package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"visit-map-api/internal/config"
	"visit-map-api/internal/models"
	"visit-map-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const loginErrorMessage = "ユーザー名またはパスワードが違います"

// AuthService checks credentials and account existence.
type AuthService interface {
	LoginUser(ctx context.Context, username, password string) (*models.MaptechUser, error)
	LoginAdmin(ctx context.Context, username, password string) (*models.AdminUser, error)
	UserExists(ctx context.Context, username string) (bool, error)
	AdminExists(ctx context.Context, username string) (bool, error)
}

// OrgSettingsService reads and writes the organization defaults.
type OrgSettingsService interface {
	GetOrCreateDefaults(ctx context.Context) (models.OrgDefaultSetting, error)
	Update(ctx context.Context, form models.OrgSettingsForm) (models.OrgDefaultSetting, error)
}

// MapSettings are the values the map page embeds.
type MapSettings struct {
	APIKey string
	MapID  string
}

// PageHandler serves the HTML pages and the form based login flows.
type PageHandler struct {
	auth  AuthService
	org   OrgSettingsService
	admin AdminService
	maps  MapSettings
}

func NewPageHandler(auth AuthService, org OrgSettingsService, admin AdminService, maps MapSettings) *PageHandler {
	return &PageHandler{auth: auth, org: org, admin: admin, maps: maps}
}

func loginPageData(c *gin.Context) gin.H {
	msg := ""
	if c.Query("error") != "" {
		msg = loginErrorMessage
	}
	return gin.H{"ErrorMessage": msg}
}

// LoginPage handles GET / and GET /LoginPage
func (h *PageHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "LoginPage.html", loginPageData(c))
}

// Login handles POST /login
func (h *PageHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	_, err := h.auth.LoginUser(c.Request.Context(), username, c.PostForm("password"))
	if err != nil {
		if !errors.Is(err, service.ErrInvalidCredentials) {
			zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("user login failed")
		}
		c.Redirect(http.StatusSeeOther, "/LoginPage?error=1")
		return
	}

	setSession(c, UserCookie, username)
	c.Redirect(http.StatusSeeOther, "/MobileMapPage")
}

// Logout handles GET /logout
func (h *PageHandler) Logout(c *gin.Context) {
	clearSession(c, UserCookie)
	c.Redirect(http.StatusSeeOther, "/LoginPage")
}

// AdminLoginPage handles GET /AdminLogin
func (h *PageHandler) AdminLoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "AdminLogin.html", loginPageData(c))
}

// AdminLogin handles POST /admin/login
func (h *PageHandler) AdminLogin(c *gin.Context) {
	username := c.PostForm("username")
	_, err := h.auth.LoginAdmin(c.Request.Context(), username, c.PostForm("password"))
	if err != nil {
		if !errors.Is(err, service.ErrInvalidCredentials) {
			zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("admin login failed")
		}
		c.Redirect(http.StatusSeeOther, "/AdminLogin?error=1")
		return
	}

	setSession(c, AdminCookie, username)
	c.Redirect(http.StatusSeeOther, "/AdminSettings")
}

// AdminLogout handles GET /admin/logout
func (h *PageHandler) AdminLogout(c *gin.Context) {
	clearSession(c, AdminCookie)
	c.Redirect(http.StatusSeeOther, "/AdminLogin")
}

// signedIn reports whether the cookie names an existing account. Lookup
// failures count as signed out.
func signedIn(c *gin.Context, cookie string, exists func(context.Context, string) (bool, error)) bool {
	username := sessionUser(c, cookie)
	if username == "" {
		return false
	}
	ok, err := exists(c.Request.Context(), username)
	if err != nil {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("session lookup failed")
		return false
	}
	return ok
}

// RequireAdmin aborts with 401 unless the admin cookie names an existing
// admin account. The username is stored under the "username" context key.
func (h *PageHandler) RequireAdmin(c *gin.Context) {
	if !signedIn(c, AdminCookie, h.auth.AdminExists) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	c.Set(usernameKey, sessionUser(c, AdminCookie))
	c.Next()
}

// MobileMapPage handles GET /MobileMapPage. An api_key query parameter
// overrides the configured key.
func (h *PageHandler) MobileMapPage(c *gin.Context) {
	if !signedIn(c, UserCookie, h.auth.UserExists) {
		c.Redirect(http.StatusSeeOther, "/LoginPage")
		return
	}

	key := h.maps.APIKey
	if override, ok := c.GetQuery("api_key"); ok && override != "" {
		key = config.CleanAPIKey(override)
	}
	if key == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Google Maps API key is missing."})
		return
	}

	c.HTML(http.StatusOK, "MobileMapPage.html", gin.H{
		"GoogleMapsAPIKey": key,
		"MapID":            h.maps.MapID,
	})
}

// AdminSettings handles GET /AdminSettings
func (h *PageHandler) AdminSettings(c *gin.Context) {
	if !signedIn(c, AdminCookie, h.auth.AdminExists) {
		c.Redirect(http.StatusSeeOther, "/AdminLogin")
		return
	}

	ctx := c.Request.Context()
	defaults, err := h.org.GetOrCreateDefaults(ctx)
	if err != nil {
		respondError(c, err, "")
		return
	}
	users, err := h.admin.Users(ctx)
	if err != nil {
		respondError(c, err, "")
		return
	}
	rules, err := h.admin.MarkerColors(ctx)
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.HTML(http.StatusOK, "AdminSettings.html", gin.H{
		"Defaults":  defaults,
		"Intervals": models.EntryExitIntervals,
		"Users":     users,
		"Rules":     rules,
		"Error":     c.Query("error"),
		"Success":   c.Query("success") != "",
		"AdminUser": sessionUser(c, AdminCookie),
	})
}

// UpdateAdminSettings handles POST /AdminSettings
func (h *PageHandler) UpdateAdminSettings(c *gin.Context) {
	if !signedIn(c, AdminCookie, h.auth.AdminExists) {
		c.Redirect(http.StatusSeeOther, "/AdminLogin")
		return
	}

	form := models.OrgSettingsForm{
		SearchLimit:       c.PostForm("search_limit"),
		NearbyDistanceKm:  c.PostForm("nearby_distance_km"),
		EntryExitInterval: c.PostForm("entry_exit_interval"),
		EnableArea:        checkbox(c.PostForm("enable_area")),
		EnableGroup:       checkbox(c.PostForm("enable_group")),
	}

	if _, err := h.org.Update(c.Request.Context(), form); err != nil {
		var verr *service.ValidationError
		msg := "internal server error"
		if errors.As(err, &verr) {
			msg = verr.Message
		} else {
			zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("org settings update failed")
		}
		c.Redirect(http.StatusSeeOther, "/AdminSettings?error="+url.QueryEscape(msg))
		return
	}

	c.Redirect(http.StatusSeeOther, "/AdminSettings?success=1")
}

func checkbox(v string) bool {
	switch v {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}
