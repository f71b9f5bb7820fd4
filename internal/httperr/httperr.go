package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Message  string       `json:"error"`
	Details  []FieldError `json:"details,omitempty"`
	Conflict bool         `json:"conflict,omitempty"`
}

func Write(c *gin.Context, status int, message string) {
	c.JSON(status, HTTPError{
		Message: message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, message)
}

// Validation writes a 400 with field-level detail so the client can
// highlight the offending inputs.
func Validation(c *gin.Context, fields []FieldError) {
	c.JSON(http.StatusBadRequest, HTTPError{
		Message: "Validation failed",
		Details: fields,
	})
}

// Conflict writes a 409 with the conflict flag set. Clients use the flag
// to refresh availability and prompt re-selection instead of showing a
// hard failure.
func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, HTTPError{
		Message:  message,
		Conflict: true,
	})
}

// Internal writes a 500. detail is only included when non-empty; callers
// pass it in development builds and leave it empty in production.
func Internal(c *gin.Context, message, detail string) {
	body := gin.H{"error": message}
	if detail != "" {
		body["details"] = detail
	}
	c.JSON(http.StatusInternalServerError, body)
}
