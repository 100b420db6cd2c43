package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quillhaven/moderation-backend/internal/auth"
	"github.com/quillhaven/moderation-backend/internal/common"
)

// AuthHandler exposes the session gate.
type AuthHandler struct {
	gate *auth.Service
}

func NewAuthHandler(gate *auth.Service) *AuthHandler {
	return &AuthHandler{gate: gate}
}

type signInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignIn handles POST /auth/signin
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "email and password are required")
		return
	}

	token, err := h.gate.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			common.ErrorResponse(c, http.StatusUnauthorized, "invalid credentials")
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "sign-in failed")
		return
	}
	common.SuccessResponse(c, gin.H{"token": token})
}

// SignOut handles POST /auth/signout
func (h *AuthHandler) SignOut(c *gin.Context) {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) {
		common.ErrorResponse(c, http.StatusBadRequest, "missing token")
		return
	}
	if err := h.gate.SignOut(c.Request.Context(), header[len(prefix):]); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid token")
		return
	}
	common.SuccessResponse(c, gin.H{"signed_out": true})
}
