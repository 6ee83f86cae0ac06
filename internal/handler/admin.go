package handler

import (
	"context"
	"net/http"

	"visit-map-api/internal/models"

	"github.com/gin-gonic/gin"
)

// AdminService backs the settings console editors.
type AdminService interface {
	MarkerColors(ctx context.Context) ([]models.MarkerColorSetting, error)
	ReplaceMarkerColors(ctx context.Context, rows []models.MarkerColorRow) error
	Users(ctx context.Context) ([]models.MaptechUser, error)
	ReplaceUsers(ctx context.Context, rows []models.UserRow) error
}

// AdminHandler serves the JSON endpoints of the settings console. Routes are
// expected behind PageHandler.RequireAdmin.
type AdminHandler struct {
	service AdminService
}

func NewAdminHandler(svc AdminService) *AdminHandler {
	return &AdminHandler{service: svc}
}

type markerColorsRequest struct {
	Rows []models.MarkerColorRow `json:"rows" binding:"required"`
}

type usersRequest struct {
	Rows []models.UserRow `json:"rows" binding:"required"`
}

// MarkerColors handles GET /admin/marker-colors
func (h *AdminHandler) MarkerColors(c *gin.Context) {
	rules, err := h.service.MarkerColors(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": rules})
}

// ReplaceMarkerColors handles POST /admin/marker-colors
func (h *AdminHandler) ReplaceMarkerColors(c *gin.Context) {
	var req markerColorsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
		return
	}

	if err := h.service.ReplaceMarkerColors(c.Request.Context(), req.Rows); err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Users handles GET /admin/users
func (h *AdminHandler) Users(c *gin.Context) {
	users, err := h.service.Users(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": users})
}

// ReplaceUsers handles POST /admin/users
func (h *AdminHandler) ReplaceUsers(c *gin.Context) {
	var req usersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
		return
	}

	if err := h.service.ReplaceUsers(c.Request.Context(), req.Rows); err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
