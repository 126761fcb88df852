package service

import (
	"github.com/stretchr/testify/mock"

	"github.com/goodgifts/goodgifts-backend/internal/domain"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) FindByID(id string) (*domain.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) FindByEmail(email string) (*domain.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) Exists(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) UpdateFields(id string, fields map[string]interface{}) error {
	return m.Called(id, fields).Error(0)
}

func (m *mockUserRepo) DeleteCascade(id, token string) error {
	return m.Called(id, token).Error(0)
}

type mockFriendRepo struct {
	mock.Mock
}

func (m *mockFriendRepo) FindEdge(userID, friendID string) (*domain.FriendEdge, error) {
	args := m.Called(userID, friendID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FriendEdge), args.Error(1)
}

func (m *mockFriendRepo) Create(edge *domain.FriendEdge) error {
	return m.Called(edge).Error(0)
}

func (m *mockFriendRepo) Accept(userID, friendID string) error {
	return m.Called(userID, friendID).Error(0)
}

func (m *mockFriendRepo) Delete(userID, friendID string) error {
	return m.Called(userID, friendID).Error(0)
}

func (m *mockFriendRepo) ListFriends(userID string, limit, offset int) ([]domain.FriendEdge, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FriendEdge), args.Error(1)
}

func (m *mockFriendRepo) ListPendingFor(userID string, limit, offset int) ([]domain.FriendEdge, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FriendEdge), args.Error(1)
}

type mockWishlistRepo struct {
	mock.Mock
}

func (m *mockWishlistRepo) FindByName(userID, name string) (*domain.Wishlist, error) {
	args := m.Called(userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wishlist), args.Error(1)
}

func (m *mockWishlistRepo) ListByUser(userID string, limit, offset int) ([]domain.Wishlist, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Wishlist), args.Error(1)
}

func (m *mockWishlistRepo) ListItems(wishlistID string) ([]domain.Item, error) {
	args := m.Called(wishlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *mockWishlistRepo) Create(wishlist *domain.Wishlist) error {
	return m.Called(wishlist).Error(0)
}

func (m *mockWishlistRepo) Rename(userID, name, newName string) error {
	return m.Called(userID, name, newName).Error(0)
}

func (m *mockWishlistRepo) DeleteCascade(wishlistID string) error {
	return m.Called(wishlistID).Error(0)
}

type mockItemRepo struct {
	mock.Mock
}

func (m *mockItemRepo) FindByID(id string) (*domain.Item, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *mockItemRepo) FindByName(userID, name string) (*domain.Item, error) {
	args := m.Called(userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *mockItemRepo) ListByUser(userID string, limit, offset int) ([]domain.Item, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *mockItemRepo) Create(item *domain.Item) error {
	return m.Called(item).Error(0)
}

func (m *mockItemRepo) UpdateFields(id string, fields map[string]interface{}) error {
	return m.Called(id, fields).Error(0)
}

func (m *mockItemRepo) DeleteCascade(id string) error {
	return m.Called(id).Error(0)
}

func (m *mockItemRepo) AddToWishlist(itemID, wishlistID string) error {
	return m.Called(itemID, wishlistID).Error(0)
}

func (m *mockItemRepo) RemoveFromWishlist(itemID, wishlistID string) error {
	return m.Called(itemID, wishlistID).Error(0)
}

func (m *mockItemRepo) LinkExists(itemID, wishlistID string) (bool, error) {
	args := m.Called(itemID, wishlistID)
	return args.Bool(0), args.Error(1)
}

type mockGiftRepo struct {
	mock.Mock
}

func (m *mockGiftRepo) FindByID(id string) (*domain.Gift, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Gift), args.Error(1)
}

func (m *mockGiftRepo) FindByOwnerAndName(ownerID, name string) (*domain.Gift, error) {
	args := m.Called(ownerID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Gift), args.Error(1)
}

func (m *mockGiftRepo) OwnerHasName(ownerID, name, excludeGiftID string) (bool, error) {
	args := m.Called(ownerID, name, excludeGiftID)
	return args.Bool(0), args.Error(1)
}

func (m *mockGiftRepo) ListForBeneficiary(beneficiaryID, requesterID string, limit, offset int) ([]domain.Gift, error) {
	args := m.Called(beneficiaryID, requesterID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Gift), args.Error(1)
}

func (m *mockGiftRepo) ListDelivered(beneficiaryID string, limit, offset int) ([]domain.Gift, error) {
	args := m.Called(beneficiaryID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Gift), args.Error(1)
}

func (m *mockGiftRepo) CreateWithOwnerImplication(gift *domain.Gift) error {
	return m.Called(gift).Error(0)
}

func (m *mockGiftRepo) SetDelivered(id string) error {
	return m.Called(id).Error(0)
}

func (m *mockGiftRepo) UpdateName(id, name string) error {
	return m.Called(id, name).Error(0)
}

func (m *mockGiftRepo) DeleteCascade(id string) error {
	return m.Called(id).Error(0)
}

func (m *mockGiftRepo) FindImplication(userID, giftID string) (*domain.GiftImplication, error) {
	args := m.Called(userID, giftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GiftImplication), args.Error(1)
}

func (m *mockGiftRepo) CreateImplication(imp *domain.GiftImplication) error {
	return m.Called(imp).Error(0)
}

func (m *mockGiftRepo) AcceptImplication(userID, giftID string) error {
	return m.Called(userID, giftID).Error(0)
}

func (m *mockGiftRepo) DeleteImplication(userID, giftID string) error {
	return m.Called(userID, giftID).Error(0)
}

func (m *mockGiftRepo) ListImplications(giftID string, implicated bool, limit, offset int) ([]domain.GiftImplication, error) {
	args := m.Called(giftID, implicated, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GiftImplication), args.Error(1)
}

func (m *mockGiftRepo) ListUserImplications(userID string, implicated bool, limit, offset int) ([]domain.GiftImplication, error) {
	args := m.Called(userID, implicated, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GiftImplication), args.Error(1)
}
