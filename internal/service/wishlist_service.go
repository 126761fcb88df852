package service

import (
	"github.com/goodgifts/goodgifts-backend/internal/common"
	"github.com/goodgifts/goodgifts-backend/internal/domain"
	"github.com/goodgifts/goodgifts-backend/internal/repository"
)

// DefaultWishlistName is created for every new account at signup
const DefaultWishlistName = "My Wishlist"

// WishlistService handles wishlist business logic
type WishlistService struct {
	wishlistRepo repository.WishlistRepository
	userRepo     repository.UserRepository
}

// NewWishlistService creates a new WishlistService
func NewWishlistService(wishlistRepo repository.WishlistRepository, userRepo repository.UserRepository) *WishlistService {
	return &WishlistService{wishlistRepo: wishlistRepo, userRepo: userRepo}
}

// ListByUser returns a user's wishlists
func (s *WishlistService) ListByUser(userID string, limit, offset int) ([]domain.Wishlist, error) {
	exists, err := s.userRepo.Exists(userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.ErrUserNotFound
	}
	return s.wishlistRepo.ListByUser(userID, limit, offset)
}

// Get returns a wishlist and its items
func (s *WishlistService) Get(userID, name string) (*domain.Wishlist, []domain.Item, error) {
	exists, err := s.userRepo.Exists(userID)
	if err != nil {
		return nil, nil, err
	}
	if !exists {
		return nil, nil, common.ErrUserNotFound
	}
	wishlist, err := s.wishlistRepo.FindByName(userID, name)
	if err != nil {
		return nil, nil, err
	}
	if wishlist == nil {
		return nil, nil, common.ErrWishlistNotFound
	}
	items, err := s.wishlistRepo.ListItems(wishlist.ID)
	if err != nil {
		return nil, nil, err
	}
	return wishlist, items, nil
}

// Create adds a wishlist; the name must be free for this owner
func (s *WishlistService) Create(userID, name string) error {
	existing, err := s.wishlistRepo.FindByName(userID, name)
	if err != nil {
		return err
	}
	if existing != nil {
		return common.ErrWishlistExists
	}
	return s.wishlistRepo.Create(&domain.Wishlist{UserID: userID, WishlistName: name})
}

// Delete removes a wishlist with its items, their gifts and links
func (s *WishlistService) Delete(userID, name string) error {
	wishlist, err := s.wishlistRepo.FindByName(userID, name)
	if err != nil {
		return err
	}
	if wishlist == nil {
		return common.ErrWishlistNotFound
	}
	return s.wishlistRepo.DeleteCascade(wishlist.ID)
}

// Rename changes a wishlist's name; the new name must be free
func (s *WishlistService) Rename(userID, name, newName string) error {
	wishlist, err := s.wishlistRepo.FindByName(userID, name)
	if err != nil {
		return err
	}
	if wishlist == nil {
		return common.ErrWishlistNotFound
	}
	collision, err := s.wishlistRepo.FindByName(userID, newName)
	if err != nil {
		return err
	}
	if collision != nil {
		return common.ErrWishlistNameTaken
	}
	return s.wishlistRepo.Rename(userID, name, newName)
}
