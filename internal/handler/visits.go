package handler

import (
	"context"
	"net/http"

	"visit-map-api/internal/models"

	"github.com/gin-gonic/gin"
)

const visitNotFound = "Visit not found"

// VisitService manages visit schedules.
type VisitService interface {
	List(ctx context.Context) ([]models.VisitSchedule, error)
	Get(ctx context.Context, id int) (*models.VisitSchedule, error)
	Create(ctx context.Context, in models.VisitInput) (models.VisitSchedule, error)
	Update(ctx context.Context, id int, in models.VisitInput) (models.VisitSchedule, error)
	Delete(ctx context.Context, id int) error
}

type VisitHandler struct {
	service VisitService
}

func NewVisitHandler(svc VisitService) *VisitHandler {
	return &VisitHandler{service: svc}
}

// List handles GET /api/visits
func (h *VisitHandler) List(c *gin.Context) {
	visits, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, visitNotFound)
		return
	}
	c.JSON(http.StatusOK, visits)
}

// Get handles GET /api/visits/:id
func (h *VisitHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	visit, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, visitNotFound)
		return
	}
	c.JSON(http.StatusOK, visit)
}

// Create handles POST /api/visits
//
//	@Summary	Create a visit schedule
//	@Tags		visits
//	@Accept		json
//	@Produce	json
//	@Param		visit	body		models.VisitInput	true	"Visit"
//	@Success	201		{object}	models.VisitSchedule
//	@Failure	400		{object}	map[string]string
//	@Router		/api/visits [post]
func (h *VisitHandler) Create(c *gin.Context) {
	var in models.VisitInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
		return
	}

	visit, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, visitNotFound)
		return
	}
	c.JSON(http.StatusCreated, visit)
}

// Update handles PUT /api/visits/:id
func (h *VisitHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var in models.VisitInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
		return
	}

	visit, err := h.service.Update(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err, visitNotFound)
		return
	}
	c.JSON(http.StatusOK, visit)
}

// Delete handles DELETE /api/visits/:id
func (h *VisitHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, visitNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
