package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Wishlist is owned by exactly one user; its name is unique per owner
type Wishlist struct {
	ID           string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID       string    `gorm:"column:user_id;type:uuid;uniqueIndex:idx_wishlist_owner_name" json:"user_id"`
	WishlistName string    `gorm:"column:wishlist_name;size:255;uniqueIndex:idx_wishlist_owner_name" json:"wishlist_name"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName returns the table name
func (Wishlist) TableName() string {
	return "wishlists"
}

// BeforeCreate assigns a UUID primary key
func (w *Wishlist) BeforeCreate(_ *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}
