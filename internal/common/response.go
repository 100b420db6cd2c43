package common

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse standard API response structure
type APIResponse struct {
	Data     interface{} `json:"data"`
	Warnings []string    `json:"warnings,omitempty"`
	Error    *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo error details
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SuccessResponse returns a successful JSON response
func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Data: data})
}

// SuccessWithWarnings returns a successful response carrying non-fatal
// action warnings the operator should see.
func SuccessWithWarnings(c *gin.Context, data interface{}, warnings []string) {
	c.JSON(http.StatusOK, APIResponse{Data: data, Warnings: warnings})
}

// ErrorResponse returns an error JSON response
func ErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, APIResponse{
		Error: &ErrorInfo{
			Code:    getErrorCode(status),
			Message: message,
		},
	})
}

// getErrorCode generates error code from HTTP status
func getErrorCode(status int) string {
	switch status {
	case 400:
		return "BAD_REQUEST"
	case 401:
		return "UNAUTHORIZED"
	case 403:
		return "FORBIDDEN"
	case 404:
		return "NOT_FOUND"
	case 409:
		return "CONFLICT"
	case 412:
		return "CONFIRMATION_REQUIRED"
	case 500:
		return "INTERNAL_SERVER_ERROR"
	default:
		return "ERROR"
	}
}
