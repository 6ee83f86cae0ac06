package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"visit-map-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

var fieldMessages = map[string]string{
	"required": "%s is required",
	"gte":      "%s must be greater than or equal to %s",
	"lte":      "%s must be less than or equal to %s",
}

// bindingMessage flattens a request binding error into one readable line.
func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid request body: " + err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		tmpl, ok := fieldMessages[fe.Tag()]
		switch {
		case ok && fe.Param() != "":
			msgs = append(msgs, fmt.Sprintf(tmpl, field, fe.Param()))
		case ok:
			msgs = append(msgs, fmt.Sprintf(tmpl, field))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s validation", field, fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}

// respondError maps a service error onto an HTTP status and JSON body.
func respondError(c *gin.Context, err error, notFound string) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
	case errors.Is(err, service.ErrInvalidCustomerRef):
		c.JSON(http.StatusBadRequest, gin.H{"error": "customer_id does not reference an existing customer"})
	default:
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
