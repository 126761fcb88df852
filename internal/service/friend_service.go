package service

import (
	"github.com/goodgifts/goodgifts-backend/internal/common"
	"github.com/goodgifts/goodgifts-backend/internal/domain"
	"github.com/goodgifts/goodgifts-backend/internal/repository"
)

// FriendService implements the friend request workflow. Every pair of
// users has at most one edge (canonical pair key), so each relation
// question is a single lookup and the workflow is a two-state machine:
// pending(requester) → accepted, or pending/accepted → gone.
type FriendService struct {
	friendRepo repository.FriendRepository
	userRepo   repository.UserRepository
}

// NewFriendService creates a new FriendService
func NewFriendService(friendRepo repository.FriendRepository, userRepo repository.UserRepository) *FriendService {
	return &FriendService{friendRepo: friendRepo, userRepo: userRepo}
}

func (s *FriendService) bothExist(userID, friendID string) error {
	for _, id := range []string{userID, friendID} {
		exists, err := s.userRepo.Exists(id)
		if err != nil {
			return err
		}
		if !exists {
			return common.ErrUserNotFound
		}
	}
	return nil
}

// CheckRelation reports how friendID relates to userID from userID's
// point of view: self, friends, request_sent, request_received or none.
func (s *FriendService) CheckRelation(userID, friendID string) (domain.Relation, error) {
	if userID == friendID {
		return domain.RelationSelf, nil
	}
	if err := s.bothExist(userID, friendID); err != nil {
		return "", err
	}
	edge, err := s.friendRepo.FindEdge(userID, friendID)
	if err != nil {
		return "", err
	}
	switch {
	case edge == nil:
		return domain.RelationNone, nil
	case edge.Accepted:
		return domain.RelationFriends, nil
	case edge.RequesterID == userID:
		return domain.RelationRequestSent, nil
	default:
		return domain.RelationRequestReceived, nil
	}
}

// SendRequest creates a pending edge from userID to friendID
func (s *FriendService) SendRequest(userID, friendID string) error {
	if userID == friendID {
		return common.ErrSelfFriend
	}
	if err := s.bothExist(userID, friendID); err != nil {
		return err
	}
	edge, err := s.friendRepo.FindEdge(userID, friendID)
	if err != nil {
		return err
	}
	if edge != nil {
		if edge.Accepted {
			return common.ErrFriendshipExists
		}
		return common.ErrFriendRequestExists
	}
	return s.friendRepo.Create(&domain.FriendEdge{
		UserAID:     userID,
		UserBID:     friendID,
		RequesterID: userID,
		Accepted:    false,
	})
}

// AcceptRequest accepts the pending request friendID sent to userID
func (s *FriendService) AcceptRequest(userID, friendID string) error {
	if userID == friendID {
		return common.ErrSelfFriend
	}
	if err := s.bothExist(userID, friendID); err != nil {
		return err
	}
	edge, err := s.friendRepo.FindEdge(userID, friendID)
	if err != nil {
		return err
	}
	// Only the target of a still-pending request may accept
	if edge == nil || edge.Accepted || edge.RequesterID != friendID {
		return common.ErrFriendRequestNotFound
	}
	return s.friendRepo.Accept(userID, friendID)
}

// RejectRequest removes the pending request friendID sent to userID
func (s *FriendService) RejectRequest(userID, friendID string) error {
	if userID == friendID {
		return common.ErrSelfFriendReject
	}
	if err := s.bothExist(userID, friendID); err != nil {
		return err
	}
	edge, err := s.friendRepo.FindEdge(userID, friendID)
	if err != nil {
		return err
	}
	if edge == nil || edge.Accepted || edge.RequesterID != friendID {
		return common.ErrFriendRequestNotFound
	}
	return s.friendRepo.Delete(userID, friendID)
}

// RemoveFriend deletes an accepted friendship between the two users
func (s *FriendService) RemoveFriend(userID, friendID string) error {
	if userID == friendID {
		return common.ErrSelfFriendDelete
	}
	if err := s.bothExist(userID, friendID); err != nil {
		return err
	}
	edge, err := s.friendRepo.FindEdge(userID, friendID)
	if err != nil {
		return err
	}
	if edge == nil || !edge.Accepted {
		return common.ErrFriendshipNotFound
	}
	return s.friendRepo.Delete(userID, friendID)
}

// ListFriends returns the accepted friends of userID
func (s *FriendService) ListFriends(userID string, limit, offset int) ([]domain.FriendEntry, error) {
	exists, err := s.userRepo.Exists(userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.ErrUserNotFound
	}
	edges, err := s.friendRepo.ListFriends(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	entries := make([]domain.FriendEntry, 0, len(edges))
	for _, e := range edges {
		entries = append(entries, domain.FriendEntry{
			UserID:    userID,
			FriendID:  e.Other(userID),
			CreatedAt: e.CreatedAt,
		})
	}
	return entries, nil
}

// ListRequests returns the pending incoming requests of userID
func (s *FriendService) ListRequests(userID string, limit, offset int) ([]domain.FriendEntry, error) {
	exists, err := s.userRepo.Exists(userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.ErrUserNotFound
	}
	edges, err := s.friendRepo.ListPendingFor(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	entries := make([]domain.FriendEntry, 0, len(edges))
	for _, e := range edges {
		entries = append(entries, domain.FriendEntry{
			UserID:    e.RequesterID,
			FriendID:  userID,
			CreatedAt: e.CreatedAt,
		})
	}
	return entries, nil
}
