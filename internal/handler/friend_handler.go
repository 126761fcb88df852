package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goodgifts/goodgifts-backend/internal/common"
	"github.com/goodgifts/goodgifts-backend/internal/middleware"
	"github.com/goodgifts/goodgifts-backend/internal/service"
)

// FriendHandler handles friendship endpoints
type FriendHandler struct {
	friendService *service.FriendService
}

// NewFriendHandler creates a new FriendHandler
func NewFriendHandler(friendService *service.FriendService) *FriendHandler {
	return &FriendHandler{friendService: friendService}
}

// friendPairRequest is the body shared by the mutating friend endpoints
type friendPairRequest struct {
	UserID   string `json:"userId" binding:"required"`
	FriendID string `json:"friendId" binding:"required"`
}

func (h *FriendHandler) bindPair(c *gin.Context) (*friendPairRequest, bool) {
	var req friendPairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, "Invalid input")
		return nil, false
	}
	if !requireUUIDs(c, req.UserID, req.FriendID) {
		return nil, false
	}
	if !guardIdentity(c, req.UserID) {
		return nil, false
	}
	return &req, true
}

// GetAll handles GET /friends/getAll
func (h *FriendHandler) GetAll(c *gin.Context) {
	userID := c.Query("userId")
	if !requireUUIDs(c, userID) {
		return
	}
	limit, offset, ok := parseListParams(c)
	if !ok {
		return
	}

	friends, err := h.friendService.ListFriends(userID, limit, offset)
	if err != nil {
		common.FromError(c, err)
		return
	}
	common.OK(c, gin.H{"friends": friends})
}

// Check handles GET /friends/check
func (h *FriendHandler) Check(c *gin.Context) {
	friendID := c.Query("friendId")
	if !requireUUIDs(c, friendID) {
		return
	}

	relation, err := h.friendService.CheckRelation(middleware.GetUserID(c), friendID)
	if err != nil {
		common.FromError(c, err)
		return
	}
	common.OK(c, gin.H{"relation": relation})
}

// Add handles POST /friends/add
func (h *FriendHandler) Add(c *gin.Context) {
	req, ok := h.bindPair(c)
	if !ok {
		return
	}
	if err := h.friendService.SendRequest(req.UserID, req.FriendID); err != nil {
		common.FromError(c, err)
		return
	}
	common.Message(c, "Friendship added")
}

// Delete handles DELETE /friends/delete
func (h *FriendHandler) Delete(c *gin.Context) {
	req, ok := h.bindPair(c)
	if !ok {
		return
	}
	if err := h.friendService.RemoveFriend(req.UserID, req.FriendID); err != nil {
		common.FromError(c, err)
		return
	}
	common.Message(c, "Friendship deleted")
}

// Requests handles GET /friends/requests
func (h *FriendHandler) Requests(c *gin.Context) {
	limit, offset, ok := parseListParams(c)
	if !ok {
		return
	}

	requests, err := h.friendService.ListRequests(middleware.GetUserID(c), limit, offset)
	if err != nil {
		common.FromError(c, err)
		return
	}
	common.OK(c, gin.H{"requests": requests})
}

// AcceptRequest handles POST /friends/requests/accept
func (h *FriendHandler) AcceptRequest(c *gin.Context) {
	req, ok := h.bindPair(c)
	if !ok {
		return
	}
	if err := h.friendService.AcceptRequest(req.UserID, req.FriendID); err != nil {
		common.FromError(c, err)
		return
	}
	common.Message(c, "Friendship added")
}

// RejectRequest handles DELETE /friends/requests/reject
func (h *FriendHandler) RejectRequest(c *gin.Context) {
	req, ok := h.bindPair(c)
	if !ok {
		return
	}
	if err := h.friendService.RejectRequest(req.UserID, req.FriendID); err != nil {
		common.FromError(c, err)
		return
	}
	common.Message(c, "Friendship request deleted")
}
