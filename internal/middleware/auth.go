package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/quillhaven/moderation-backend/internal/auth"
	"github.com/quillhaven/moderation-backend/internal/common"
)

const operatorKey = "operator_id"

// RequireOperator admits only requests carrying a live session token.
func RequireOperator(gate *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" || !gate.IsAdmitted(c.Request.Context(), token) {
			common.ErrorResponse(c, http.StatusUnauthorized, "operator session required")
			c.Abort()
			return
		}
		if id, err := gate.OperatorID(token); err == nil {
			c.Set(operatorKey, id)
		}
		c.Next()
	}
}

// GetOperatorID returns the admitted operator's id, if any.
func GetOperatorID(c *gin.Context) string {
	if id, ok := c.Get(operatorKey); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
