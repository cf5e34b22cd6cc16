package httperr

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MedCareServices01/clinic-scheduler/internal/domain/scheduling"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// From maps a domain error onto the HTTP response category. Internal
// failures are logged with context and surfaced generically; no store
// detail leaks to the caller.
func From(c *gin.Context, err error) {
	var se *scheduling.Error
	if !errors.As(err, &se) {
		log.Printf("unexpected error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		Write(c, http.StatusInternalServerError, "internal_error", "Internal server error.")
		return
	}

	switch se.Kind {
	case scheduling.KindUnauthenticated:
		Write(c, http.StatusUnauthorized, se.Code, "Invalid or expired token.")
	case scheduling.KindUnauthorized:
		Write(c, http.StatusForbidden, se.Code, "Not permitted for this role.")
	case scheduling.KindForbidden:
		Write(c, http.StatusForbidden, se.Code, "You do not own this record.")
	case scheduling.KindNotFound:
		Write(c, http.StatusNotFound, se.Code, "Record not found.")
	case scheduling.KindInvalidState:
		Write(c, http.StatusConflict, se.Code, "Operation not allowed in the current state.")
	case scheduling.KindSlotUnavailable:
		Write(c, http.StatusConflict, se.Code, "The requested time slot is not available.")
	default:
		log.Printf("internal failure on %s %s: %s", c.Request.Method, c.Request.URL.Path, se.Code)
		Write(c, http.StatusInternalServerError, "internal_error", "Internal server error.")
	}
}
