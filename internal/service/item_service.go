package service

import (
	"github.com/goodgifts/goodgifts-backend/internal/common"
	"github.com/goodgifts/goodgifts-backend/internal/domain"
	"github.com/goodgifts/goodgifts-backend/internal/repository"
)

// ItemService handles item business logic
type ItemService struct {
	itemRepo     repository.ItemRepository
	wishlistRepo repository.WishlistRepository
	userRepo     repository.UserRepository
}

// NewItemService creates a new ItemService
func NewItemService(itemRepo repository.ItemRepository, wishlistRepo repository.WishlistRepository, userRepo repository.UserRepository) *ItemService {
	return &ItemService{itemRepo: itemRepo, wishlistRepo: wishlistRepo, userRepo: userRepo}
}

// Get returns an item by id
func (s *ItemService) Get(itemID string) (*domain.Item, error) {
	item, err := s.itemRepo.FindByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, common.ErrItemNotFound
	}
	return item, nil
}

// ListByUser returns a user's items
func (s *ItemService) ListByUser(userID string, limit, offset int) ([]domain.Item, error) {
	exists, err := s.userRepo.Exists(userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.ErrUserNotFound
	}
	return s.itemRepo.ListByUser(userID, limit, offset)
}

// Create adds an item; the name must be free for this owner
func (s *ItemService) Create(userID string, item *domain.Item) error {
	existing, err := s.itemRepo.FindByName(userID, item.ItemName)
	if err != nil {
		return err
	}
	if existing != nil {
		return common.ErrItemExists
	}
	item.UserID = userID
	return s.itemRepo.Create(item)
}

// Update applies a partial update; at least one field must be present
func (s *ItemService) Update(userID, itemID string, req *domain.ItemUpdateRequest) error {
	fields := req.Fields()
	if len(fields) == 0 {
		return common.ErrNoUpdateFields
	}
	item, err := s.itemRepo.FindByID(itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return common.ErrItemNotFound
	}
	if item.UserID != userID {
		return common.ErrUnauthorized
	}
	return s.itemRepo.UpdateFields(itemID, fields)
}

// Delete removes an item with its gifts and wishlist links
func (s *ItemService) Delete(userID, itemID string) error {
	item, err := s.itemRepo.FindByID(itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return common.ErrItemNotFound
	}
	if item.UserID != userID {
		return common.ErrUnauthorized
	}
	return s.itemRepo.DeleteCascade(itemID)
}

// AddToWishlist links an item into one of the owner's wishlists
func (s *ItemService) AddToWishlist(userID, wishlistName, itemID string) error {
	item, err := s.itemRepo.FindByID(itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return common.ErrItemNotFound
	}
	if item.UserID != userID {
		return common.ErrUnauthorized
	}
	wishlist, err := s.wishlistRepo.FindByName(userID, wishlistName)
	if err != nil {
		return err
	}
	if wishlist == nil {
		return common.ErrWishlistNotFound
	}
	linked, err := s.itemRepo.LinkExists(itemID, wishlist.ID)
	if err != nil {
		return err
	}
	if linked {
		return common.ErrItemInWishlist
	}
	return s.itemRepo.AddToWishlist(itemID, wishlist.ID)
}

// RemoveFromWishlist unlinks an item from one of the owner's wishlists
func (s *ItemService) RemoveFromWishlist(userID, wishlistName, itemID string) error {
	item, err := s.itemRepo.FindByID(itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return common.ErrItemNotFound
	}
	if item.UserID != userID {
		return common.ErrUnauthorized
	}
	wishlist, err := s.wishlistRepo.FindByName(userID, wishlistName)
	if err != nil {
		return err
	}
	if wishlist == nil {
		return common.ErrWishlistNotFound
	}
	linked, err := s.itemRepo.LinkExists(itemID, wishlist.ID)
	if err != nil {
		return err
	}
	if !linked {
		return common.ErrItemNotInWishlist
	}
	return s.itemRepo.RemoveFromWishlist(itemID, wishlist.ID)
}
