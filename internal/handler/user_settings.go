package handler

import (
	"context"
	"net/http"

	"visit-map-api/internal/models"

	"github.com/gin-gonic/gin"
)

// UserSettingsService reads and updates the signed-in user's preferences.
type UserSettingsService interface {
	Get(ctx context.Context, username string) (models.UserPreferences, error)
	Update(ctx context.Context, username string, upd models.UserSettingsUpdate) (models.UserPreferences, error)
}

type UserSettingsHandler struct {
	service UserSettingsService
}

func NewUserSettingsHandler(svc UserSettingsService) *UserSettingsHandler {
	return &UserSettingsHandler{service: svc}
}

// Get handles GET /api/user/settings
func (h *UserSettingsHandler) Get(c *gin.Context) {
	prefs, err := h.service.Get(c.Request.Context(), c.GetString(usernameKey))
	if err != nil {
		respondError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// Update handles PUT /api/user/settings. Only keys present in the body change.
func (h *UserSettingsHandler) Update(c *gin.Context) {
	var upd models.UserSettingsUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
		return
	}

	prefs, err := h.service.Update(c.Request.Context(), c.GetString(usernameKey), upd)
	if err != nil {
		respondError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, prefs)
}
