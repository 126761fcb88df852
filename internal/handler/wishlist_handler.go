package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goodgifts/goodgifts-backend/internal/common"
	"github.com/goodgifts/goodgifts-backend/internal/service"
)

// WishlistHandler handles wishlist endpoints
type WishlistHandler struct {
	wishlistService *service.WishlistService
}

// NewWishlistHandler creates a new WishlistHandler
func NewWishlistHandler(wishlistService *service.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService}
}

// GetAll handles GET /wishlists/getAll
func (h *WishlistHandler) GetAll(c *gin.Context) {
	userID := c.Query("userId")
	if !requireUUIDs(c, userID) {
		return
	}
	limit, offset, ok := parseListParams(c)
	if !ok {
		return
	}

	wishlists, err := h.wishlistService.ListByUser(userID, limit, offset)
	if err != nil {
		common.FromError(c, err)
		return
	}
	common.OK(c, gin.H{"wishlists": wishlists})
}

// Get handles GET /wishlists/get
func (h *WishlistHandler) Get(c *gin.Context) {
	userID := c.Query("userId")
	name := c.Query("wishlistName")
	if !requireUUIDs(c, userID) {
		return
	}
	if name == "" {
		common.Fail(c, http.StatusBadRequest, "Invalid wishlistName")
		return
	}

	wishlist, items, err := h.wishlistService.Get(userID, name)
	if err != nil {
		common.FromError(c, err)
		return
	}
	common.OK(c, gin.H{
		"wishlistName": wishlist.WishlistName,
		"createdAt":    wishlist.CreatedAt,
		"items":        items,
	})
}

// wishlistRequest is the body shared by the mutating wishlist endpoints
type wishlistRequest struct {
	UserID       string `json:"userId" binding:"required"`
	WishlistName string `json:"wishlistName" binding:"required"`
	NewName      string `json:"newName"`
}

func (h *WishlistHandler) bind(c *gin.Context) (*wishlistRequest, bool) {
	var req wishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, "Invalid input")
		return nil, false
	}
	if !requireUUIDs(c, req.UserID) {
		return nil, false
	}
	if !guardIdentity(c, req.UserID) {
		return nil, false
	}
	return &req, true
}

// Create handles POST /wishlists/create
func (h *WishlistHandler) Create(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}
	if err := h.wishlistService.Create(req.UserID, req.WishlistName); err != nil {
		common.FromError(c, err)
		return
	}
	common.Message(c, "Wishlist created successfully")
}

// Delete handles DELETE /wishlists/delete
func (h *WishlistHandler) Delete(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}
	if err := h.wishlistService.Delete(req.UserID, req.WishlistName); err != nil {
		common.FromError(c, err)
		return
	}
	common.Message(c, "Wishlist deleted successfully")
}

// Edit handles PATCH /wishlists/edit
func (h *WishlistHandler) Edit(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}
	if req.NewName == "" {
		common.Fail(c, http.StatusBadRequest, "Invalid newName")
		return
	}
	if err := h.wishlistService.Rename(req.UserID, req.WishlistName, req.NewName); err != nil {
		common.FromError(c, err)
		return
	}
	common.Message(c, "Wishlist edited successfully")
}
