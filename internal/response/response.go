package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arvandy/contacts-backend/internal/apperr"
)

// Envelope is the success body: everything the API returns rides under "data".
type Envelope struct {
	Data interface{} `json:"data"`
}

// ErrorEnvelope is the failure body. Errors is either a plain message or a
// list of field errors for validation failures.
type ErrorEnvelope struct {
	Errors interface{} `json:"errors"`
}

func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Data: data})
}

// Error is the single place domain errors become HTTP responses. Anything
// that is not an *apperr.Error surfaces as a generic 500 with no internal
// detail leaked.
func Error(c *gin.Context, err error) {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		c.JSON(http.StatusInternalServerError, ErrorEnvelope{Errors: "internal server error"})
		return
	}
	status := statusFor(ae.Kind)
	if len(ae.Fields) > 0 {
		c.JSON(status, ErrorEnvelope{Errors: ae.Fields})
		return
	}
	c.JSON(status, ErrorEnvelope{Errors: ae.Message})
}

// AbortUnauthorized writes the 401 envelope and stops the handler chain.
func AbortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorEnvelope{Errors: message})
}

func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindUnauthorized:
		return http.StatusUnauthorized
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		// Duplicate username is reported as a plain bad request, matching the
		// public API contract.
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
