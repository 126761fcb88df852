package repository

import (
	"errors"

	"github.com/goodgifts/goodgifts-backend/internal/domain"
	"gorm.io/gorm"
)

// ItemRepository handles item and item-wishlist link data access
type ItemRepository interface {
	FindByID(id string) (*domain.Item, error)
	FindByName(userID, name string) (*domain.Item, error)
	ListByUser(userID string, limit, offset int) ([]domain.Item, error)
	Create(item *domain.Item) error
	UpdateFields(id string, fields map[string]interface{}) error
	DeleteCascade(id string) error
	AddToWishlist(itemID, wishlistID string) error
	RemoveFromWishlist(itemID, wishlistID string) error
	LinkExists(itemID, wishlistID string) (bool, error)
}

type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) FindByID(id string) (*domain.Item, error) {
	var item domain.Item
	err := r.db.Where("id = ?", id).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) FindByName(userID, name string) (*domain.Item, error) {
	var item domain.Item
	err := r.db.Where("user_id = ? AND item_name = ?", userID, name).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) ListByUser(userID string, limit, offset int) ([]domain.Item, error) {
	var items []domain.Item
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&items).Error
	return items, err
}

func (r *itemRepository) Create(item *domain.Item) error {
	return r.db.Create(item).Error
}

func (r *itemRepository) UpdateFields(id string, fields map[string]interface{}) error {
	return r.db.Model(&domain.Item{}).Where("id = ?", id).Updates(fields).Error
}

// DeleteCascade removes the item, its gifts (with their implication
// rows) and its wishlist links inside one transaction.
func (r *itemRepository) DeleteCascade(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var giftIDs []string
		if err := tx.Model(&domain.Gift{}).Where("item_id = ?", id).Pluck("id", &giftIDs).Error; err != nil {
			return err
		}
		if len(giftIDs) > 0 {
			if err := tx.Where("gift_id IN ?", giftIDs).Delete(&domain.GiftImplication{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", giftIDs).Delete(&domain.Gift{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("item_id = ?", id).Delete(&domain.ItemWishlist{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&domain.Item{}).Error
	})
}

func (r *itemRepository) AddToWishlist(itemID, wishlistID string) error {
	return r.db.Create(&domain.ItemWishlist{ItemID: itemID, WishlistID: wishlistID}).Error
}

func (r *itemRepository) RemoveFromWishlist(itemID, wishlistID string) error {
	return r.db.Where("item_id = ? AND wishlist_id = ?", itemID, wishlistID).
		Delete(&domain.ItemWishlist{}).Error
}

func (r *itemRepository) LinkExists(itemID, wishlistID string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.ItemWishlist{}).
		Where("item_id = ? AND wishlist_id = ?", itemID, wishlistID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
