package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goodgifts/goodgifts-backend/internal/common"
	"github.com/goodgifts/goodgifts-backend/internal/domain"
	"github.com/goodgifts/goodgifts-backend/internal/middleware"
	"github.com/goodgifts/goodgifts-backend/internal/service"
)

// UserHandler handles profile endpoints
type UserHandler struct {
	userService *service.UserService
	authService *service.AuthService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *service.UserService, authService *service.AuthService) *UserHandler {
	return &UserHandler{userService: userService, authService: authService}
}

// GetID handles GET /users/getId
func (h *UserHandler) GetID(c *gin.Context) {
	email := c.Query("fromEmail")
	if email == "" {
		common.Fail(c, http.StatusBadRequest, "Invalid email")
		return
	}
	userID, err := h.userService.LookupID(email)
	if err != nil {
		common.FromError(c, err)
		return
	}
	common.OK(c, gin.H{"userId": userID})
}

// GetProfile handles GET /users/profile. The caller sees their own full
// profile; anyone else's comes back as the public subset.
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID := c.Query("userId")
	if !requireUUIDs(c, userID) {
		return
	}

	if userID == middleware.GetUserID(c) {
		user, err := h.userService.GetOwnProfile(userID)
		if err != nil {
			common.FromError(c, err)
			return
		}
		common.OK(c, gin.H{"userProfile": user})
		return
	}

	profile, err := h.userService.GetPublicProfile(userID)
	if err != nil {
		common.FromError(c, err)
		return
	}
	common.OK(c, gin.H{"userProfile": profile})
}

// UpdateProfile handles PATCH /users/profile/update
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req struct {
		UserID string `json:"userId" binding:"required"`
		domain.ProfileUpdateRequest
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, "Invalid input")
		return
	}
	if !requireUUIDs(c, req.UserID) {
		return
	}
	if !guardIdentity(c, req.UserID) {
		return
	}

	if err := h.userService.UpdateProfile(req.UserID, &req.ProfileUpdateRequest); err != nil {
		common.FromError(c, err)
		return
	}
	common.Message(c, "Profile updated successfully")
}

// ChangePassword handles PATCH /users/profile/changePassword
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req struct {
		UserID      string `json:"userId" binding:"required"`
		OldPassword string `json:"oldPassword" binding:"required"`
		NewPassword string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, "Invalid input")
		return
	}
	if !requireUUIDs(c, req.UserID) {
		return
	}
	if !guardIdentity(c, req.UserID) {
		return
	}

	err := h.authService.ChangePassword(c.Request.Context(),
		c.GetHeader("Authorization"), req.OldPassword, req.NewPassword)
	if err != nil {
		failAuth(c, err)
		return
	}
	common.Message(c, "Password changed successfully")
}

// DeleteProfile handles DELETE /users/profile/delete
func (h *UserHandler) DeleteProfile(c *gin.Context) {
	var req struct {
		UserID string `json:"userId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, "Invalid input")
		return
	}
	if !requireUUIDs(c, req.UserID) {
		return
	}
	if !guardIdentity(c, req.UserID) {
		return
	}

	if err := h.userService.DeleteAccount(req.UserID, c.GetHeader("Authorization")); err != nil {
		common.FromError(c, err)
		return
	}
	common.Message(c, "User deleted successfully")
}
