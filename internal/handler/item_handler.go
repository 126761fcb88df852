package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goodgifts/goodgifts-backend/internal/common"
	"github.com/goodgifts/goodgifts-backend/internal/domain"
	"github.com/goodgifts/goodgifts-backend/internal/service"
)

// ItemHandler handles item endpoints
type ItemHandler struct {
	itemService *service.ItemService
}

// NewItemHandler creates a new ItemHandler
func NewItemHandler(itemService *service.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// GetAll handles GET /items/getAll
func (h *ItemHandler) GetAll(c *gin.Context) {
	userID := c.Query("userId")
	if !requireUUIDs(c, userID) {
		return
	}
	limit, offset, ok := parseListParams(c)
	if !ok {
		return
	}

	items, err := h.itemService.ListByUser(userID, limit, offset)
	if err != nil {
		common.FromError(c, err)
		return
	}
	common.OK(c, gin.H{"items": items})
}

// Get handles GET /items/get
func (h *ItemHandler) Get(c *gin.Context) {
	itemID := c.Query("itemId")
	if !requireUUIDs(c, itemID) {
		return
	}

	item, err := h.itemService.Get(itemID)
	if err != nil {
		common.FromError(c, err)
		return
	}
	common.OK(c, gin.H{"item": item})
}

// Create handles POST /items/create
func (h *ItemHandler) Create(c *gin.Context) {
	var req struct {
		UserID          string  `json:"userId" binding:"required"`
		ItemName        string  `json:"itemName" binding:"required"`
		ItemDescription string  `json:"itemDescription"`
		ItemPrice       float64 `json:"itemPrice"`
		ItemLink        string  `json:"itemLink"`
		ImageName       string  `json:"image_name"`
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

	err := h.itemService.Create(req.UserID, &domain.Item{
		ItemName:        req.ItemName,
		ItemDescription: req.ItemDescription,
		ItemPrice:       req.ItemPrice,
		ItemLink:        req.ItemLink,
		ImageName:       req.ImageName,
	})
	if err != nil {
		common.FromError(c, err)
		return
	}
	common.Message(c, "Item created")
}

// Edit handles PATCH /items/edit
func (h *ItemHandler) Edit(c *gin.Context) {
	var req struct {
		UserID string `json:"userId" binding:"required"`
		ItemID string `json:"itemId" binding:"required"`
		domain.ItemUpdateRequest
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, "Invalid input")
		return
	}
	if !requireUUIDs(c, req.UserID, req.ItemID) {
		return
	}
	if !guardIdentity(c, req.UserID) {
		return
	}

	if err := h.itemService.Update(req.UserID, req.ItemID, &req.ItemUpdateRequest); err != nil {
		common.FromError(c, err)
		return
	}
	common.Message(c, "Item edited successfully")
}

// Delete handles DELETE /items/delete
func (h *ItemHandler) Delete(c *gin.Context) {
	var req struct {
		UserID string `json:"userId" binding:"required"`
		ItemID string `json:"itemId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, "Invalid input")
		return
	}
	if !requireUUIDs(c, req.UserID, req.ItemID) {
		return
	}
	if !guardIdentity(c, req.UserID) {
		return
	}

	if err := h.itemService.Delete(req.UserID, req.ItemID); err != nil {
		common.FromError(c, err)
		return
	}
	common.Message(c, "Item deleted successfully")
}

// itemWishlistRequest is the body for the wishlist link endpoints
type itemWishlistRequest struct {
	UserID       string `json:"userId" binding:"required"`
	ItemID       string `json:"itemId" binding:"required"`
	WishlistName string `json:"wishlistName" binding:"required"`
}

func (h *ItemHandler) bindLink(c *gin.Context) (*itemWishlistRequest, bool) {
	var req itemWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, "Invalid input")
		return nil, false
	}
	if !requireUUIDs(c, req.UserID, req.ItemID) {
		return nil, false
	}
	if !guardIdentity(c, req.UserID) {
		return nil, false
	}
	return &req, true
}

// AddToWishlist handles POST /items/addToWishlist
func (h *ItemHandler) AddToWishlist(c *gin.Context) {
	req, ok := h.bindLink(c)
	if !ok {
		return
	}
	if err := h.itemService.AddToWishlist(req.UserID, req.WishlistName, req.ItemID); err != nil {
		common.FromError(c, err)
		return
	}
	common.Message(c, "Item added to wishlist successfully")
}

// DeleteFromWishlist handles DELETE /items/deleteFromWishlist
func (h *ItemHandler) DeleteFromWishlist(c *gin.Context) {
	req, ok := h.bindLink(c)
	if !ok {
		return
	}
	if err := h.itemService.RemoveFromWishlist(req.UserID, req.WishlistName, req.ItemID); err != nil {
		common.FromError(c, err)
		return
	}
	common.Message(c, "Item deleted from wishlist successfully")
}
