package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"visit-map-api/internal/metrics"
	"visit-map-api/internal/models"
	"visit-map-api/internal/search"

	"github.com/gin-gonic/gin"
)

// MarkerService builds map markers.
type MarkerService interface {
	Today(ctx context.Context) ([]models.Marker, error)
	Nearby(ctx context.Context, username string, lat, lng float64) ([]models.Marker, error)
}

// SearchService runs dynamic customer searches.
type SearchService interface {
	Fields() map[string][]string
	Customers(ctx context.Context, pairs []search.Pair) ([]models.Marker, error)
}

type MarkerHandler struct {
	markers MarkerService
	search  SearchService
}

func NewMarkerHandler(markers MarkerService, search SearchService) *MarkerHandler {
	return &MarkerHandler{markers: markers, search: search}
}

// Today handles GET /api/markers
//
//	@Summary	Markers of customers with a visit today
//	@Tags		markers
//	@Produce	json
//	@Success	200	{array}	models.Marker
//	@Router		/api/markers [get]
func (h *MarkerHandler) Today(c *gin.Context) {
	markers, err := h.markers.Today(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}
	metrics.RecordMarkers("today", len(markers))
	c.JSON(http.StatusOK, markers)
}

func queryFloat(c *gin.Context, name string) (float64, bool) {
	v, err := strconv.ParseFloat(c.Query(name), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing query parameter '" + name + "'"})
		return 0, false
	}
	return v, true
}

// Nearby handles GET /api/markers/nearby
//
//	@Summary	Markers around a point
//	@Tags		markers
//	@Produce	json
//	@Param		lat	query	number	true	"Latitude"
//	@Param		lng	query	number	true	"Longitude"
//	@Success	200	{array}	models.Marker
//	@Failure	400	{object}	map[string]string
//	@Failure	401	{object}	map[string]string
//	@Router		/api/markers/nearby [get]
func (h *MarkerHandler) Nearby(c *gin.Context) {
	lat, ok := queryFloat(c, "lat")
	if !ok {
		return
	}
	lng, ok := queryFloat(c, "lng")
	if !ok {
		return
	}

	markers, err := h.markers.Nearby(c.Request.Context(), c.GetString(usernameKey), lat, lng)
	if err != nil {
		respondError(c, err, "")
		return
	}
	metrics.RecordMarkers("nearby", len(markers))
	c.JSON(http.StatusOK, markers)
}

type searchRequest struct {
	Filters []search.Pair `json:"filters"`
}

// SearchFields handles GET /api/search/fields
func (h *MarkerHandler) SearchFields(c *gin.Context) {
	c.JSON(http.StatusOK, h.search.Fields())
}

// SearchCustomers handles POST /api/search/customers
//
//	@Summary	Search customers by field filters
//	@Tags		search
//	@Accept		json
//	@Produce	json
//	@Success	200	{array}	models.Marker
//	@Router		/api/search/customers [post]
func (h *MarkerHandler) SearchCustomers(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
		return
	}

	markers, err := h.search.Customers(c.Request.Context(), req.Filters)
	if err != nil {
		respondError(c, err, "")
		return
	}
	metrics.RecordMarkers("search", len(markers))
	c.JSON(http.StatusOK, markers)
}
