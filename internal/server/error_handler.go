// file: internal/server/error_handler.go
// version: 1.1.0
// guid: cdab44ba-6073-4d1c-8d30-7d5455821aa3

package server

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse provides a consistent error response format
type ErrorResponse struct {
	Error  string `json:"error"`
	Code   string `json:"code,omitempty"`
	Status int    `json:"status"`
}

// RespondWithError sends a standardized error response and logs the error
func RespondWithError(c *gin.Context, statusCode int, message string, code string) {
	if statusCode >= http.StatusInternalServerError {
		log.Printf("[ERROR] %s %s: %s", c.Request.Method, c.Request.URL.Path, message)
	} else {
		log.Printf("[WARN] %s %s: %s", c.Request.Method, c.Request.URL.Path, message)
	}
	c.JSON(statusCode, ErrorResponse{
		Error:  message,
		Code:   code,
		Status: statusCode,
	})
}

// RespondWithBadRequest sends a 400 Bad Request error response
func RespondWithBadRequest(c *gin.Context, message string) {
	RespondWithError(c, http.StatusBadRequest, message, "BAD_REQUEST")
}

// RespondWithValidationError sends a 400 error for validation failures
func RespondWithValidationError(c *gin.Context, field string, reason string) {
	message := "validation error: " + field
	if reason != "" {
		message = message + " (" + reason + ")"
	}
	RespondWithError(c, http.StatusBadRequest, message, "VALIDATION_ERROR")
}

// RespondWithNotFound sends a 404 Not Found error response
func RespondWithNotFound(c *gin.Context, resourceType string, id string) {
	RespondWithError(c, http.StatusNotFound, resourceType+" not found: "+id, "NOT_FOUND")
}

// RespondWithInternalError sends a 500 error response
func RespondWithInternalError(c *gin.Context, err error) {
	RespondWithError(c, http.StatusInternalServerError, err.Error(), "INTERNAL_ERROR")
}
