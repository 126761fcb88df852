package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goodgifts/goodgifts-backend/internal/common"
	"github.com/goodgifts/goodgifts-backend/internal/service"
	"github.com/goodgifts/goodgifts-backend/pkg/authclient"
)

// AuthHandler handles account endpoints backed by the external auth service
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// failAuth maps an auth service error onto the response. Verdicts from
// the auth service keep their status and message; transport failures
// collapse to a 500.
func failAuth(c *gin.Context, err error) {
	var apiErr *authclient.APIError
	if errors.As(err, &apiErr) {
		common.Fail(c, apiErr.Status, apiErr.Message)
		return
	}
	common.FromError(c, err)
}

// Signup handles POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Username string `json:"username" binding:"required"`
		Lastname string `json:"lastname" binding:"required"`
		Birthday string `json:"birthday" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, "Invalid input")
		return
	}

	err := h.authService.Signup(c.Request.Context(), authclient.SignupRequest{
		Email:    req.Email,
		Password: req.Password,
		Username: req.Username,
		Lastname: req.Lastname,
		Birthday: req.Birthday,
	})
	if err != nil {
		failAuth(c, err)
		return
	}
	common.Message(c, "Signup successful")
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, "Invalid input")
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		failAuth(c, err)
		return
	}
	common.OK(c, gin.H{"token": token})
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context(), c.GetHeader("Authorization")); err != nil {
		failAuth(c, err)
		return
	}
	common.Message(c, "Logout successful")
}
