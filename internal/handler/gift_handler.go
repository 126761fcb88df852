package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goodgifts/goodgifts-backend/internal/common"
	"github.com/goodgifts/goodgifts-backend/internal/middleware"
	"github.com/goodgifts/goodgifts-backend/internal/service"
)

// GiftHandler handles gift and implication endpoints
type GiftHandler struct {
	giftService *service.GiftService
}

// NewGiftHandler creates a new GiftHandler
func NewGiftHandler(giftService *service.GiftService) *GiftHandler {
	return &GiftHandler{giftService: giftService}
}

// parseExpiration accepts a full timestamp or a bare date
func parseExpiration(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

// GetAll handles GET /gifts/getAll. Lists the gifts aimed at a user;
// the caller never sees gifts aimed at themselves.
func (h *GiftHandler) GetAll(c *gin.Context) {
	userID := c.Query("userId")
	if !requireUUIDs(c, userID) {
		return
	}
	limit, offset, ok := parseListParams(c)
	if !ok {
		return
	}

	gifts, err := h.giftService.ListGifts(middleware.GetUserID(c), userID, limit, offset)
	if err != nil {
		common.FromError(c, err)
		return
	}
	common.OK(c, gin.H{"gifts": gifts})
}

// Get handles GET /gifts/get
func (h *GiftHandler) Get(c *gin.Context) {
	giftID := c.Query("giftId")
	if !requireUUIDs(c, giftID) {
		return
	}

	gift, err := h.giftService.GetGift(middleware.GetUserID(c), giftID)
	if err != nil {
		common.FromError(c, err)
		return
	}
	common.OK(c, gin.H{"gift": gift})
}

// Received handles GET /gifts/recieved. Delivered gifts only; delivery
// ends the secrecy, so anyone may list them.
func (h *GiftHandler) Received(c *gin.Context) {
	userID := c.Query("userId")
	if !requireUUIDs(c, userID) {
		return
	}
	limit, offset, ok := parseListParams(c)
	if !ok {
		return
	}

	gifts, err := h.giftService.ListReceivedGifts(userID, limit, offset)
	if err != nil {
		common.FromError(c, err)
		return
	}
	common.OK(c, gin.H{"gifts": gifts})
}

// Create handles POST /gifts/create
func (h *GiftHandler) Create(c *gin.Context) {
	var req struct {
		UserID         string `json:"userId" binding:"required"`
		ItemID         string `json:"itemId" binding:"required"`
		GiftedUserID   string `json:"gifted_user_id" binding:"required"`
		GiftName       string `json:"gift_name" binding:"required"`
		ExpirationDate string `json:"expiration_date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, "Invalid input")
		return
	}
	if !requireUUIDs(c, req.UserID, req.ItemID, req.GiftedUserID) {
		return
	}
	if !guardIdentity(c, req.UserID) {
		return
	}
	expiration, err := parseExpiration(req.ExpirationDate)
	if err != nil {
		common.Fail(c, http.StatusBadRequest, "Invalid expiration_date")
		return
	}

	if err := h.giftService.CreateGift(req.UserID, req.ItemID, req.GiftedUserID, expiration, req.GiftName); err != nil {
		common.FromError(c, err)
		return
	}
	common.Message(c, "Gift created successfully")
}

// giftRequest is the body shared by the owner-side gift mutations
type giftRequest struct {
	UserID string `json:"userId" binding:"required"`
	GiftID string `json:"giftId" binding:"required"`
}

func (h *GiftHandler) bindGift(c *gin.Context) (*giftRequest, bool) {
	var req giftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, "Invalid input")
		return nil, false
	}
	if !requireUUIDs(c, req.UserID, req.GiftID) {
		return nil, false
	}
	if !guardIdentity(c, req.UserID) {
		return nil, false
	}
	return &req, true
}

// Complete handles POST /gifts/complete
func (h *GiftHandler) Complete(c *gin.Context) {
	req, ok := h.bindGift(c)
	if !ok {
		return
	}
	if err := h.giftService.CompleteGift(req.UserID, req.GiftID); err != nil {
		common.FromError(c, err)
		return
	}
	common.Message(c, "Gift completed successfully")
}

// Edit handles PATCH /gifts/edit
func (h *GiftHandler) Edit(c *gin.Context) {
	var req struct {
		UserID   string `json:"userId" binding:"required"`
		GiftID   string `json:"giftId" binding:"required"`
		GiftName string `json:"gift_name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, "Invalid input")
		return
	}
	if !requireUUIDs(c, req.UserID, req.GiftID) {
		return
	}
	if !guardIdentity(c, req.UserID) {
		return
	}

	if err := h.giftService.EditGift(req.UserID, req.GiftID, req.GiftName); err != nil {
		common.FromError(c, err)
		return
	}
	common.Message(c, "Gift edited successfully")
}

// Delete handles DELETE /gifts/delete
func (h *GiftHandler) Delete(c *gin.Context) {
	req, ok := h.bindGift(c)
	if !ok {
		return
	}
	if err := h.giftService.DeleteGift(req.UserID, req.GiftID); err != nil {
		common.FromError(c, err)
		return
	}
	common.Message(c, "Gift deleted successfully")
}

// Implications handles GET /gifts/implications. Accepted co-gifters of
// a gift, hidden from the beneficiary like the gift itself.
func (h *GiftHandler) Implications(c *gin.Context) {
	giftID := c.Query("giftId")
	if !requireUUIDs(c, giftID) {
		return
	}
	limit, offset, ok := parseListParams(c)
	if !ok {
		return
	}

	implications, err := h.giftService.ListImplications(middleware.GetUserID(c), giftID, limit, offset)
	if err != nil {
		common.FromError(c, err)
		return
	}
	common.OK(c, gin.H{"implications": implications})
}

// ImplicationRequests handles GET /gifts/implications/requests
func (h *GiftHandler) ImplicationRequests(c *gin.Context) {
	giftID := c.Query("giftId")
	if !requireUUIDs(c, giftID) {
		return
	}
	limit, offset, ok := parseListParams(c)
	if !ok {
		return
	}

	requests, err := h.giftService.ListImplicationRequests(middleware.GetUserID(c), giftID, limit, offset)
	if err != nil {
		common.FromError(c, err)
		return
	}
	common.OK(c, gin.H{"requests": requests})
}

// SentImplications handles GET /gifts/implications/sended
func (h *GiftHandler) SentImplications(c *gin.Context) {
	userID := c.Query("userId")
	if !requireUUIDs(c, userID) {
		return
	}
	if !guardIdentity(c, userID) {
		return
	}
	limit, offset, ok := parseListParams(c)
	if !ok {
		return
	}

	implications, err := h.giftService.ListSentImplications(userID, limit, offset)
	if err != nil {
		common.FromError(c, err)
		return
	}
	common.OK(c, gin.H{"implications": implications})
}

// SendImplication handles POST /gifts/implications/send
func (h *GiftHandler) SendImplication(c *gin.Context) {
	req, ok := h.bindGift(c)
	if !ok {
		return
	}
	if err := h.giftService.SendImplication(req.UserID, req.GiftID); err != nil {
		common.FromError(c, err)
		return
	}
	common.Message(c, "Implication sent successfully")
}

// implicationRequest is the body for the owner-side implication verdicts
type implicationRequest struct {
	UserID            string `json:"userId" binding:"required"`
	GiftID            string `json:"giftId" binding:"required"`
	ImplicationUserID string `json:"implicationUserId" binding:"required"`
}

func (h *GiftHandler) bindImplication(c *gin.Context) (*implicationRequest, bool) {
	var req implicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, "Invalid input")
		return nil, false
	}
	if !requireUUIDs(c, req.UserID, req.GiftID, req.ImplicationUserID) {
		return nil, false
	}
	if !guardIdentity(c, req.UserID) {
		return nil, false
	}
	return &req, true
}

// AcceptImplication handles POST /gifts/implications/accept
func (h *GiftHandler) AcceptImplication(c *gin.Context) {
	req, ok := h.bindImplication(c)
	if !ok {
		return
	}
	if err := h.giftService.AcceptImplication(req.UserID, req.GiftID, req.ImplicationUserID); err != nil {
		common.FromError(c, err)
		return
	}
	common.Message(c, "Implication accepted successfully")
}

// RejectImplication handles DELETE /gifts/implications/reject
func (h *GiftHandler) RejectImplication(c *gin.Context) {
	req, ok := h.bindImplication(c)
	if !ok {
		return
	}
	if err := h.giftService.RejectImplication(req.UserID, req.GiftID, req.ImplicationUserID); err != nil {
		common.FromError(c, err)
		return
	}
	common.Message(c, "Implication rejected successfully")
}

// WithdrawImplication handles DELETE /gifts/implications/delete
func (h *GiftHandler) WithdrawImplication(c *gin.Context) {
	req, ok := h.bindGift(c)
	if !ok {
		return
	}
	if err := h.giftService.WithdrawImplication(req.UserID, req.GiftID); err != nil {
		common.FromError(c, err)
		return
	}
	common.Message(c, "Implication deleted successfully")
}
