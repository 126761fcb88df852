package service

import (
	"time"

	"github.com/goodgifts/goodgifts-backend/internal/common"
	"github.com/goodgifts/goodgifts-backend/internal/domain"
	"github.com/goodgifts/goodgifts-backend/internal/repository"
)

// GiftService implements the gift and implication workflow. The one
// rule everything here bends around: a gift must stay invisible to its
// beneficiary until delivered. Owners and accepted co-gifters see it,
// the beneficiary never does.
type GiftService struct {
	giftRepo repository.GiftRepository
	userRepo repository.UserRepository
	itemRepo repository.ItemRepository
}

// NewGiftService creates a new GiftService
func NewGiftService(giftRepo repository.GiftRepository, userRepo repository.UserRepository, itemRepo repository.ItemRepository) *GiftService {
	return &GiftService{giftRepo: giftRepo, userRepo: userRepo, itemRepo: itemRepo}
}

// CreateGift inserts a gift plus the owner's implicit accepted
// implication row, atomically.
func (s *GiftService) CreateGift(ownerID, itemID, beneficiaryID string, expiration time.Time, name string) error {
	if ownerID == beneficiaryID {
		return common.ErrSelfGift
	}
	exists, err := s.userRepo.Exists(beneficiaryID)
	if err != nil {
		return err
	}
	if !exists {
		return common.ErrUserNotFound
	}
	existing, err := s.giftRepo.FindByOwnerAndName(ownerID, name)
	if err != nil {
		return err
	}
	if existing != nil {
		return common.ErrGiftExists
	}
	item, err := s.itemRepo.FindByID(itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return common.ErrItemNotFound
	}
	return s.giftRepo.CreateWithOwnerImplication(&domain.Gift{
		ItemID:         itemID,
		UserID:         ownerID,
		GiftedUserID:   beneficiaryID,
		GiftName:       name,
		ExpirationDate: expiration,
	})
}

// GetGift returns a gift by id. The beneficiary is never allowed to
// retrieve it; everyone else presenting a valid id may.
func (s *GiftService) GetGift(requesterID, giftID string) (*domain.Gift, error) {
	gift, err := s.giftRepo.FindByID(giftID)
	if err != nil {
		return nil, err
	}
	if gift == nil {
		return nil, common.ErrGiftNotFound
	}
	if gift.GiftedUserID == requesterID {
		return nil, common.ErrUnauthorized
	}
	return gift, nil
}

// ListGifts returns gifts aimed at beneficiaryID, minus any gift whose
// beneficiary is the requester (you never see your own surprises).
func (s *GiftService) ListGifts(requesterID, beneficiaryID string, limit, offset int) ([]domain.Gift, error) {
	exists, err := s.userRepo.Exists(beneficiaryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.ErrUserNotFound
	}
	return s.giftRepo.ListForBeneficiary(beneficiaryID, requesterID, limit, offset)
}

// ListReceivedGifts returns delivered gifts for a beneficiary.
// Delivered gifts are no longer secret.
func (s *GiftService) ListReceivedGifts(beneficiaryID string, limit, offset int) ([]domain.Gift, error) {
	exists, err := s.userRepo.Exists(beneficiaryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.ErrUserNotFound
	}
	return s.giftRepo.ListDelivered(beneficiaryID, limit, offset)
}

// CompleteGift marks a gift delivered; only its owner may, only once
func (s *GiftService) CompleteGift(requesterID, giftID string) error {
	gift, err := s.giftRepo.FindByID(giftID)
	if err != nil {
		return err
	}
	if gift == nil {
		return common.ErrGiftNotFound
	}
	if gift.UserID != requesterID {
		return common.ErrUnauthorized
	}
	if gift.IsDelivered {
		return common.ErrGiftDelivered
	}
	return s.giftRepo.SetDelivered(giftID)
}

// EditGift renames a gift; the new name must be free among the owner's gifts
func (s *GiftService) EditGift(requesterID, giftID, newName string) error {
	gift, err := s.giftRepo.FindByID(giftID)
	if err != nil {
		return err
	}
	if gift == nil {
		return common.ErrGiftNotFound
	}
	if gift.UserID != requesterID {
		return common.ErrUnauthorized
	}
	taken, err := s.giftRepo.OwnerHasName(requesterID, newName, giftID)
	if err != nil {
		return err
	}
	if taken {
		return common.ErrGiftNameTaken
	}
	return s.giftRepo.UpdateName(giftID, newName)
}

// DeleteGift removes a gift and its implication rows; owner only
func (s *GiftService) DeleteGift(requesterID, giftID string) error {
	gift, err := s.giftRepo.FindByID(giftID)
	if err != nil {
		return err
	}
	if gift == nil {
		return common.ErrGiftNotFound
	}
	if gift.UserID != requesterID {
		return common.ErrUnauthorized
	}
	return s.giftRepo.DeleteCascade(giftID)
}

// SendImplication proposes the caller's participation in a gift
func (s *GiftService) SendImplication(callerID, giftID string) error {
	gift, err := s.giftRepo.FindByID(giftID)
	if err != nil {
		return err
	}
	if gift == nil {
		return common.ErrGiftNotFound
	}
	if gift.GiftedUserID == callerID {
		return common.ErrUnauthorized
	}
	if gift.IsDelivered {
		return common.ErrGiftDelivered
	}
	existing, err := s.giftRepo.FindImplication(callerID, giftID)
	if err != nil {
		return err
	}
	if existing != nil {
		return common.ErrImplicationExists
	}
	return s.giftRepo.CreateImplication(&domain.GiftImplication{
		UserID:       callerID,
		GiftID:       giftID,
		IsImplicated: false,
	})
}

// AcceptImplication lets the gift owner accept a pending participation
func (s *GiftService) AcceptImplication(requesterID, giftID, targetUserID string) error {
	gift, err := s.giftRepo.FindByID(giftID)
	if err != nil {
		return err
	}
	if gift == nil {
		return common.ErrGiftNotFound
	}
	if gift.UserID != requesterID {
		return common.ErrUnauthorized
	}
	imp, err := s.giftRepo.FindImplication(targetUserID, giftID)
	if err != nil {
		return err
	}
	if imp == nil {
		return common.ErrImplicationNotFound
	}
	if imp.IsImplicated {
		return common.ErrImplicationAccepted
	}
	return s.giftRepo.AcceptImplication(targetUserID, giftID)
}

// RejectImplication lets the gift owner remove a participation row
func (s *GiftService) RejectImplication(requesterID, giftID, targetUserID string) error {
	gift, err := s.giftRepo.FindByID(giftID)
	if err != nil {
		return err
	}
	if gift == nil {
		return common.ErrGiftNotFound
	}
	if gift.UserID != requesterID {
		return common.ErrUnauthorized
	}
	imp, err := s.giftRepo.FindImplication(targetUserID, giftID)
	if err != nil {
		return err
	}
	if imp == nil {
		return common.ErrImplicationNotFound
	}
	return s.giftRepo.DeleteImplication(targetUserID, giftID)
}

// WithdrawImplication lets a co-gifter remove their own participation
func (s *GiftService) WithdrawImplication(callerID, giftID string) error {
	gift, err := s.giftRepo.FindByID(giftID)
	if err != nil {
		return err
	}
	if gift == nil {
		return common.ErrGiftNotFound
	}
	if gift.GiftedUserID == callerID {
		return common.ErrUnauthorized
	}
	imp, err := s.giftRepo.FindImplication(callerID, giftID)
	if err != nil {
		return err
	}
	if imp == nil {
		return common.ErrImplicationNotFound
	}
	return s.giftRepo.DeleteImplication(callerID, giftID)
}

// ListImplications returns the accepted co-gifters of a gift, hidden
// from the beneficiary like the gift itself.
func (s *GiftService) ListImplications(requesterID, giftID string, limit, offset int) ([]domain.GiftImplication, error) {
	gift, err := s.giftRepo.FindByID(giftID)
	if err != nil {
		return nil, err
	}
	if gift == nil {
		return nil, common.ErrGiftNotFound
	}
	if gift.GiftedUserID == requesterID {
		return nil, common.ErrUnauthorized
	}
	return s.giftRepo.ListImplications(giftID, true, limit, offset)
}

// ListImplicationRequests returns the pending participation offers on a
// gift; owner only.
func (s *GiftService) ListImplicationRequests(requesterID, giftID string, limit, offset int) ([]domain.GiftImplication, error) {
	gift, err := s.giftRepo.FindByID(giftID)
	if err != nil {
		return nil, err
	}
	if gift == nil {
		return nil, common.ErrGiftNotFound
	}
	if gift.UserID != requesterID {
		return nil, common.ErrUnauthorized
	}
	return s.giftRepo.ListImplications(giftID, false, limit, offset)
}

// ListSentImplications returns the caller's own pending participations
func (s *GiftService) ListSentImplications(callerID string, limit, offset int) ([]domain.GiftImplication, error) {
	exists, err := s.userRepo.Exists(callerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.ErrUserNotFound
	}
	return s.giftRepo.ListUserImplications(callerID, false, limit, offset)
}
