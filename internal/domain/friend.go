package domain

import "time"

// Relation describes how two users relate from the caller's point of view
type Relation string

// Relation values returned by GET /friends/check
const (
	RelationSelf            Relation = "self"
	RelationFriends         Relation = "friends"
	RelationRequestSent     Relation = "request_sent"
	RelationRequestReceived Relation = "request_received"
	RelationNone            Relation = "none"
)

// FriendEdge stores one row per unordered user pair. The pair key is
// canonical (UserAID < UserBID) and unique, so "are these two friends"
// is a single lookup and two simultaneous opposite-direction requests
// cannot both insert. Direction lives in RequesterID; Accepted=false
// means a pending request from RequesterID to the other side.
type FriendEdge struct {
	ID          uint64     `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	UserAID     string     `gorm:"column:user_a_id;type:uuid;uniqueIndex:idx_friend_pair" json:"user_a_id"`
	UserBID     string     `gorm:"column:user_b_id;type:uuid;uniqueIndex:idx_friend_pair" json:"user_b_id"`
	RequesterID string     `gorm:"column:requester_id;type:uuid;index" json:"requester_id"`
	Accepted    bool       `gorm:"column:accepted" json:"accepted"`
	CreatedAt   time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   *time.Time `gorm:"column:updated_at" json:"updated_at,omitempty"`
}

// TableName returns the table name
func (FriendEdge) TableName() string {
	return "friends"
}

// CanonicalPair orders two user IDs into the canonical (a < b) pair key
func CanonicalPair(a, b string) (string, string) {
	if a < b {
		return a, b
	}
	return b, a
}

// Other returns the counterpart of userID on this edge
func (e *FriendEdge) Other(userID string) string {
	if e.UserAID == userID {
		return e.UserBID
	}
	return e.UserAID
}

// TargetID returns the user the request was sent to
func (e *FriendEdge) TargetID() string {
	return e.Other(e.RequesterID)
}

// FriendEntry is the list representation of a friend or pending request
type FriendEntry struct {
	UserID    string    `json:"userId"`
	FriendID  string    `json:"friendId"`
	CreatedAt time.Time `json:"created_at"`
}
