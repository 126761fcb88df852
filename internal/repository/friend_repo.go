package repository

import (
	"errors"
	"time"

	"github.com/goodgifts/goodgifts-backend/internal/domain"
	"gorm.io/gorm"
)

// FriendRepository handles friend edge data access. All lookups go
// through the canonical pair key, so a relation check is one query.
type FriendRepository interface {
	FindEdge(userID, friendID string) (*domain.FriendEdge, error)
	Create(edge *domain.FriendEdge) error
	Accept(userID, friendID string) error
	Delete(userID, friendID string) error
	ListFriends(userID string, limit, offset int) ([]domain.FriendEdge, error)
	ListPendingFor(userID string, limit, offset int) ([]domain.FriendEdge, error)
}

type friendRepository struct {
	db *gorm.DB
}

// NewFriendRepository creates a new FriendRepository
func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

func (r *friendRepository) FindEdge(userID, friendID string) (*domain.FriendEdge, error) {
	a, b := domain.CanonicalPair(userID, friendID)
	var edge domain.FriendEdge
	err := r.db.Where("user_a_id = ? AND user_b_id = ?", a, b).First(&edge).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &edge, nil
}

func (r *friendRepository) Create(edge *domain.FriendEdge) error {
	edge.UserAID, edge.UserBID = domain.CanonicalPair(edge.UserAID, edge.UserBID)
	return r.db.Create(edge).Error
}

func (r *friendRepository) Accept(userID, friendID string) error {
	a, b := domain.CanonicalPair(userID, friendID)
	now := time.Now()
	return r.db.Model(&domain.FriendEdge{}).
		Where("user_a_id = ? AND user_b_id = ?", a, b).
		Updates(map[string]interface{}{"accepted": true, "updated_at": &now}).Error
}

func (r *friendRepository) Delete(userID, friendID string) error {
	a, b := domain.CanonicalPair(userID, friendID)
	return r.db.Where("user_a_id = ? AND user_b_id = ?", a, b).
		Delete(&domain.FriendEdge{}).Error
}

func (r *friendRepository) ListFriends(userID string, limit, offset int) ([]domain.FriendEdge, error) {
	var edges []domain.FriendEdge
	err := r.db.Where("accepted = ? AND (user_a_id = ? OR user_b_id = ?)", true, userID, userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&edges).Error
	return edges, err
}

func (r *friendRepository) ListPendingFor(userID string, limit, offset int) ([]domain.FriendEdge, error) {
	var edges []domain.FriendEdge
	err := r.db.Where("accepted = ? AND (user_a_id = ? OR user_b_id = ?) AND requester_id <> ?",
		false, userID, userID, userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&edges).Error
	return edges, err
}
