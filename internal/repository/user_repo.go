package repository

import (
	"errors"

	"github.com/goodgifts/goodgifts-backend/internal/domain"
	"gorm.io/gorm"
)

// UserRepository handles user profile data access
type UserRepository interface {
	FindByID(id string) (*domain.User, error)
	FindByEmail(email string) (*domain.User, error)
	Exists(id string) (bool, error)
	UpdateFields(id string, fields map[string]interface{}) error
	DeleteCascade(id, token string) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(id string) (*domain.User, error) {
	var user domain.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*domain.User, error) {
	var user domain.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Exists(id string) (bool, error) {
	var count int64
	if err := r.db.Model(&domain.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) UpdateFields(id string, fields map[string]interface{}) error {
	return r.db.Model(&domain.User{}).Where("id = ?", id).Updates(fields).Error
}

// DeleteCascade removes the user and everything they own inside one
// transaction: sessions, friend edges, implication rows, gifts (their own
// and the ones hanging off their items), wishlist links, items and
// wishlists. The presented token goes on the blacklist so the session
// dies with the account. Any failure rolls the whole walk back.
func (r *userRepository) DeleteCascade(id, token string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&domain.UserSession{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_a_id = ? OR user_b_id = ?", id, id).Delete(&domain.FriendEdge{}).Error; err != nil {
			return err
		}
		// Participation rows on other people's gifts
		if err := tx.Where("user_id = ?", id).Delete(&domain.GiftImplication{}).Error; err != nil {
			return err
		}

		// Gifts the user owns, plus gifts other users attached to the
		// user's items — both lose their implication rows first.
		var giftIDs []string
		if err := tx.Model(&domain.Gift{}).
			Where("user_id = ? OR item_id IN (?)", id,
				tx.Session(&gorm.Session{NewDB: true}).Model(&domain.Item{}).Select("id").Where("user_id = ?", id)).
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

		var itemIDs []string
		if err := tx.Model(&domain.Item{}).Where("user_id = ?", id).Pluck("id", &itemIDs).Error; err != nil {
			return err
		}
		if len(itemIDs) > 0 {
			if err := tx.Where("item_id IN ?", itemIDs).Delete(&domain.ItemWishlist{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", itemIDs).Delete(&domain.Item{}).Error; err != nil {
				return err
			}
		}

		var wishlistIDs []string
		if err := tx.Model(&domain.Wishlist{}).Where("user_id = ?", id).Pluck("id", &wishlistIDs).Error; err != nil {
			return err
		}
		if len(wishlistIDs) > 0 {
			if err := tx.Where("wishlist_id IN ?", wishlistIDs).Delete(&domain.ItemWishlist{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", wishlistIDs).Delete(&domain.Wishlist{}).Error; err != nil {
				return err
			}
		}

		if token != "" {
			if err := tx.Create(&domain.RevokedToken{Token: token}).Error; err != nil {
				return err
			}
		}

		return tx.Where("id = ?", id).Delete(&domain.User{}).Error
	})
}
