package repository

import (
	"errors"

	"github.com/goodgifts/goodgifts-backend/internal/domain"
	"gorm.io/gorm"
)

// WishlistRepository handles wishlist data access
type WishlistRepository interface {
	FindByName(userID, name string) (*domain.Wishlist, error)
	ListByUser(userID string, limit, offset int) ([]domain.Wishlist, error)
	ListItems(wishlistID string) ([]domain.Item, error)
	Create(wishlist *domain.Wishlist) error
	Rename(userID, name, newName string) error
	DeleteCascade(wishlistID string) error
}

type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository creates a new WishlistRepository
func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &wishlistRepository{db: db}
}

func (r *wishlistRepository) FindByName(userID, name string) (*domain.Wishlist, error) {
	var wishlist domain.Wishlist
	err := r.db.Where("user_id = ? AND wishlist_name = ?", userID, name).First(&wishlist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &wishlist, nil
}

func (r *wishlistRepository) ListByUser(userID string, limit, offset int) ([]domain.Wishlist, error) {
	var wishlists []domain.Wishlist
	err := r.db.Where("user_id = ?", userID).
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&wishlists).Error
	return wishlists, err
}

func (r *wishlistRepository) ListItems(wishlistID string) ([]domain.Item, error) {
	var items []domain.Item
	err := r.db.
		Joins("JOIN item_wishlists ON item_wishlists.item_id = items.id").
		Where("item_wishlists.wishlist_id = ?", wishlistID).
		Find(&items).Error
	return items, err
}

func (r *wishlistRepository) Create(wishlist *domain.Wishlist) error {
	return r.db.Create(wishlist).Error
}

func (r *wishlistRepository) Rename(userID, name, newName string) error {
	return r.db.Model(&domain.Wishlist{}).
		Where("user_id = ? AND wishlist_name = ?", userID, name).
		Update("wishlist_name", newName).Error
}

// DeleteCascade removes the wishlist, every item linked into it, those
// items' gifts and the gifts' implication rows, inside one transaction.
func (r *wishlistRepository) DeleteCascade(wishlistID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var itemIDs []string
		if err := tx.Model(&domain.ItemWishlist{}).
			Where("wishlist_id = ?", wishlistID).
			Pluck("item_id", &itemIDs).Error; err != nil {
			return err
		}

		if len(itemIDs) > 0 {
			var giftIDs []string
			if err := tx.Model(&domain.Gift{}).
				Where("item_id IN ?", itemIDs).
				Pluck("id", &giftIDs).Error; err != nil {
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
			// Drop links in every wishlist, not just the deleted one
			if err := tx.Where("item_id IN ?", itemIDs).Delete(&domain.ItemWishlist{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", itemIDs).Delete(&domain.Item{}).Error; err != nil {
				return err
			}
		}

		return tx.Where("id = ?", wishlistID).Delete(&domain.Wishlist{}).Error
	})
}
