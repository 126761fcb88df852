package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Gift references an item the owner intends to give to the beneficiary
// (GiftedUserID). A gift's existence must stay hidden from its
// beneficiary: only the owner and implicated co-gifters may see it.
type Gift struct {
	ID             string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	ItemID         string    `gorm:"column:item_id;type:uuid;index" json:"item_id"`
	UserID         string    `gorm:"column:user_id;type:uuid;uniqueIndex:idx_gift_owner_name" json:"user_id"`
	GiftedUserID   string    `gorm:"column:gifted_user_id;type:uuid;index" json:"gifted_user_id"`
	GiftName       string    `gorm:"column:gift_name;size:255;uniqueIndex:idx_gift_owner_name" json:"gift_name"`
	IsDelivered    bool      `gorm:"column:is_delivered" json:"is_delivered"`
	ExpirationDate time.Time `gorm:"column:expiration_date" json:"expiration_date"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName returns the table name
func (Gift) TableName() string {
	return "gifts"
}

// BeforeCreate assigns a UUID primary key
func (g *Gift) BeforeCreate(_ *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}

// GiftImplication is a (user, gift) participation row.
// IsImplicated=false means the participation offer is pending;
// true means the user is an accepted co-gifter.
type GiftImplication struct {
	UserID       string    `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	GiftID       string    `gorm:"column:gift_id;type:uuid;primaryKey" json:"gift_id"`
	IsImplicated bool      `gorm:"column:is_implicated" json:"is_implicated"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName returns the table name
func (GiftImplication) TableName() string {
	return "gift_implications"
}
