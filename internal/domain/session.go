package domain

import "time"

// UserSession tracks an active session issued by the auth service.
// Deleting a user removes all of their sessions.
type UserSession struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"column:user_id;type:uuid;index" json:"user_id"`
	Token     string    `gorm:"column:token;size:512" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName returns the table name
func (UserSession) TableName() string {
	return "user_sessions"
}

// RevokedToken blacklists a credential when its account is deleted
type RevokedToken struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Token     string    `gorm:"column:token;size:512;index" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName returns the table name
func (RevokedToken) TableName() string {
	return "token_blacklist"
}
