package handler

import (
	"context"
	"net/http"
	"strconv"

	"visit-map-api/internal/models"

	"github.com/gin-gonic/gin"
)

const customerNotFound = "Customer not found"

// CustomerService manages customers.
type CustomerService interface {
	List(ctx context.Context) ([]models.Customer, error)
	Get(ctx context.Context, id int) (*models.Customer, error)
	Create(ctx context.Context, in models.CustomerInput) (models.Customer, error)
	Update(ctx context.Context, id int, in models.CustomerInput) (models.Customer, error)
	Delete(ctx context.Context, id int) error
	Detail(ctx context.Context, id int) (models.CustomerDetail, error)
}

// CustomerHandler handles the customer CRUD endpoints.
type CustomerHandler struct {
	service CustomerService
}

func NewCustomerHandler(svc CustomerService) *CustomerHandler {
	return &CustomerHandler{service: svc}
}

// pathID parses the :id path parameter, writing a 400 when it is not an integer.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id: " + c.Param("id")})
		return 0, false
	}
	return id, true
}

// List handles GET /api/customers
//
//	@Summary	List customers
//	@Tags		customers
//	@Produce	json
//	@Success	200	{array}	models.Customer
//	@Router		/api/customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, customerNotFound)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// Get handles GET /api/customers/:id
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	customer, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, customerNotFound)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// Create handles POST /api/customers
//
//	@Summary	Create a customer
//	@Tags		customers
//	@Accept		json
//	@Produce	json
//	@Param		customer	body		models.CustomerInput	true	"Customer"
//	@Success	201			{object}	models.Customer
//	@Failure	400			{object}	map[string]string
//	@Router		/api/customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var in models.CustomerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
		return
	}

	customer, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, customerNotFound)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

// Update handles PUT /api/customers/:id
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var in models.CustomerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
		return
	}

	customer, err := h.service.Update(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err, customerNotFound)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// Delete handles DELETE /api/customers/:id
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, customerNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

// Detail handles GET /api/customers/:id/detail
//
//	@Summary	Customer with its visits
//	@Tags		customers
//	@Produce	json
//	@Param		id	path		int	true	"Customer ID"
//	@Success	200	{object}	models.CustomerDetail
//	@Failure	404	{object}	map[string]string
//	@Router		/api/customers/{id}/detail [get]
func (h *CustomerHandler) Detail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	detail, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, customerNotFound)
		return
	}
	c.JSON(http.StatusOK, detail)
}
