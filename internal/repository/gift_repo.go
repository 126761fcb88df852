package repository

import (
	"errors"

	"github.com/goodgifts/goodgifts-backend/internal/domain"
	"gorm.io/gorm"
)

// GiftRepository handles gift and implication data access
type GiftRepository interface {
	FindByID(id string) (*domain.Gift, error)
	FindByOwnerAndName(ownerID, name string) (*domain.Gift, error)
	OwnerHasName(ownerID, name, excludeGiftID string) (bool, error)
	ListForBeneficiary(beneficiaryID, requesterID string, limit, offset int) ([]domain.Gift, error)
	ListDelivered(beneficiaryID string, limit, offset int) ([]domain.Gift, error)
	CreateWithOwnerImplication(gift *domain.Gift) error
	SetDelivered(id string) error
	UpdateName(id, name string) error
	DeleteCascade(id string) error

	FindImplication(userID, giftID string) (*domain.GiftImplication, error)
	CreateImplication(imp *domain.GiftImplication) error
	AcceptImplication(userID, giftID string) error
	DeleteImplication(userID, giftID string) error
	ListImplications(giftID string, implicated bool, limit, offset int) ([]domain.GiftImplication, error)
	ListUserImplications(userID string, implicated bool, limit, offset int) ([]domain.GiftImplication, error)
}

type giftRepository struct {
	db *gorm.DB
}

// NewGiftRepository creates a new GiftRepository
func NewGiftRepository(db *gorm.DB) GiftRepository {
	return &giftRepository{db: db}
}

func (r *giftRepository) FindByID(id string) (*domain.Gift, error) {
	var gift domain.Gift
	err := r.db.Where("id = ?", id).First(&gift).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &gift, nil
}

func (r *giftRepository) FindByOwnerAndName(ownerID, name string) (*domain.Gift, error) {
	var gift domain.Gift
	err := r.db.Where("user_id = ? AND gift_name = ?", ownerID, name).First(&gift).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &gift, nil
}

func (r *giftRepository) OwnerHasName(ownerID, name, excludeGiftID string) (bool, error) {
	var count int64
	query := r.db.Model(&domain.Gift{}).Where("user_id = ? AND gift_name = ?", ownerID, name)
	if excludeGiftID != "" {
		query = query.Where("id <> ?", excludeGiftID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListForBeneficiary returns gifts aimed at beneficiaryID, excluding
// every gift the requester is the beneficiary of. The exclusion is in
// the query itself so no surprise can leak through pagination.
func (r *giftRepository) ListForBeneficiary(beneficiaryID, requesterID string, limit, offset int) ([]domain.Gift, error) {
	var gifts []domain.Gift
	err := r.db.Where("gifted_user_id = ? AND gifted_user_id <> ?", beneficiaryID, requesterID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&gifts).Error
	return gifts, err
}

// ListDelivered returns delivered gifts for a beneficiary. Delivery ends
// the secrecy, so these are visible to the beneficiary too.
func (r *giftRepository) ListDelivered(beneficiaryID string, limit, offset int) ([]domain.Gift, error) {
	var gifts []domain.Gift
	err := r.db.Where("gifted_user_id = ? AND is_delivered = ?", beneficiaryID, true).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&gifts).Error
	return gifts, err
}

// CreateWithOwnerImplication inserts the gift and the owner's own
// accepted implication row in one transaction; the owner is implicitly
// a participant of their own gift.
func (r *giftRepository) CreateWithOwnerImplication(gift *domain.Gift) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(gift).Error; err != nil {
			return err
		}
		owner := &domain.GiftImplication{
			UserID:       gift.UserID,
			GiftID:       gift.ID,
			IsImplicated: true,
		}
		return tx.Create(owner).Error
	})
}

func (r *giftRepository) SetDelivered(id string) error {
	return r.db.Model(&domain.Gift{}).Where("id = ?", id).Update("is_delivered", true).Error
}

func (r *giftRepository) UpdateName(id, name string) error {
	return r.db.Model(&domain.Gift{}).Where("id = ?", id).Update("gift_name", name).Error
}

func (r *giftRepository) DeleteCascade(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("gift_id = ?", id).Delete(&domain.GiftImplication{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&domain.Gift{}).Error
	})
}

func (r *giftRepository) FindImplication(userID, giftID string) (*domain.GiftImplication, error) {
	var imp domain.GiftImplication
	err := r.db.Where("user_id = ? AND gift_id = ?", userID, giftID).First(&imp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &imp, nil
}

func (r *giftRepository) CreateImplication(imp *domain.GiftImplication) error {
	return r.db.Create(imp).Error
}

func (r *giftRepository) AcceptImplication(userID, giftID string) error {
	return r.db.Model(&domain.GiftImplication{}).
		Where("user_id = ? AND gift_id = ?", userID, giftID).
		Update("is_implicated", true).Error
}

func (r *giftRepository) DeleteImplication(userID, giftID string) error {
	return r.db.Where("user_id = ? AND gift_id = ?", userID, giftID).
		Delete(&domain.GiftImplication{}).Error
}

func (r *giftRepository) ListImplications(giftID string, implicated bool, limit, offset int) ([]domain.GiftImplication, error) {
	var imps []domain.GiftImplication
	err := r.db.Where("gift_id = ? AND is_implicated = ?", giftID, implicated).
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&imps).Error
	return imps, err
}

func (r *giftRepository) ListUserImplications(userID string, implicated bool, limit, offset int) ([]domain.GiftImplication, error) {
	var imps []domain.GiftImplication
	err := r.db.Where("user_id = ? AND is_implicated = ?", userID, implicated).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&imps).Error
	return imps, err
}
