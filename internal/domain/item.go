package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Item is owned by a user and optionally linked to wishlists
type Item struct {
	ID              string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID          string    `gorm:"column:user_id;type:uuid;index" json:"user_id"`
	ItemName        string    `gorm:"column:item_name;size:255" json:"item_name"`
	ItemDescription string    `gorm:"column:item_description;type:text" json:"item_description"`
	ItemPrice       float64   `gorm:"column:item_price" json:"item_price"`
	ItemLink        string    `gorm:"column:item_link;size:1024" json:"item_link"`
	ImageName       string    `gorm:"column:image_name;size:255" json:"image_name"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName returns the table name
func (Item) TableName() string {
	return "items"
}

// BeforeCreate assigns a UUID primary key
func (i *Item) BeforeCreate(_ *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// ItemWishlist links an item into a wishlist
type ItemWishlist struct {
	ItemID     string    `gorm:"column:item_id;type:uuid;primaryKey" json:"item_id"`
	WishlistID string    `gorm:"column:wishlist_id;type:uuid;primaryKey" json:"wishlist_id"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName returns the table name
func (ItemWishlist) TableName() string {
	return "item_wishlists"
}

// ItemUpdateRequest carries the optional item fields of a partial update
type ItemUpdateRequest struct {
	ItemName        *string  `json:"itemName"`
	ItemDescription *string  `json:"itemDescription"`
	ItemPrice       *float64 `json:"itemPrice"`
	ItemLink        *string  `json:"itemLink"`
	ImageName       *string  `json:"image_name"`
}

// Fields returns the column→value map of the supplied fields
func (r *ItemUpdateRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.ItemName != nil {
		fields["item_name"] = *r.ItemName
	}
	if r.ItemDescription != nil {
		fields["item_description"] = *r.ItemDescription
	}
	if r.ItemPrice != nil {
		fields["item_price"] = *r.ItemPrice
	}
	if r.ItemLink != nil {
		fields["item_link"] = *r.ItemLink
	}
	if r.ImageName != nil {
		fields["image_name"] = *r.ImageName
	}
	return fields
}
