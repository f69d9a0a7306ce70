package respond

import (
	"github.com/gin-gonic/gin"

	"assessment-backend/internal/shared/telemetry"
)

// ErrorResponse is the standardized error body: a flat message plus optional
// detail, matching what the form client consumes.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// Error sends a standardized error response and logs it.
func Error(c *gin.Context, status int, message string, details interface{}) {
	fields := map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	telemetry.Error("http.error", fields)

	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:   message,
		Details: details,
	})
}
