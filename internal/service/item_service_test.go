package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/goodgifts/goodgifts-backend/internal/common"
	"github.com/goodgifts/goodgifts-backend/internal/domain"
)

func newItemFixture(t *testing.T) (*ItemService, *mockItemRepo, *mockWishlistRepo, *mockUserRepo) {
	t.Helper()
	itemRepo := new(mockItemRepo)
	wishlistRepo := new(mockWishlistRepo)
	userRepo := new(mockUserRepo)
	return NewItemService(itemRepo, wishlistRepo, userRepo), itemRepo, wishlistRepo, userRepo
}

func alicesItem() *domain.Item {
	return &domain.Item{ID: itemID, UserID: alice, ItemName: "socks"}
}

func TestItemCreateDuplicateName(t *testing.T) {
	svc, itemRepo, _, _ := newItemFixture(t)
	itemRepo.On("FindByName", alice, "socks").Return(alicesItem(), nil)

	err := svc.Create(alice, &domain.Item{ItemName: "socks"})

	assert.ErrorIs(t, err, common.ErrItemExists)
	itemRepo.AssertNotCalled(t, "Create")
}

func TestItemCreateStampsOwner(t *testing.T) {
	svc, itemRepo, _, _ := newItemFixture(t)
	itemRepo.On("FindByName", alice, "socks").Return(nil, nil)
	itemRepo.On("Create", mock.MatchedBy(func(i *domain.Item) bool {
		return i.UserID == alice && i.ItemName == "socks"
	})).Return(nil)

	err := svc.Create(alice, &domain.Item{ItemName: "socks"})

	assert.NoError(t, err)
	itemRepo.AssertExpectations(t)
}

func TestItemUpdateRequiresFields(t *testing.T) {
	svc, itemRepo, _, _ := newItemFixture(t)

	err := svc.Update(alice, itemID, &domain.ItemUpdateRequest{})

	assert.ErrorIs(t, err, common.ErrNoUpdateFields)
	itemRepo.AssertNotCalled(t, "UpdateFields")
}

func TestItemUpdateOwnerOnly(t *testing.T) {
	svc, itemRepo, _, _ := newItemFixture(t)
	itemRepo.On("FindByID", itemID).Return(alicesItem(), nil)

	name := "slippers"
	err := svc.Update(bob, itemID, &domain.ItemUpdateRequest{ItemName: &name})

	assert.ErrorIs(t, err, common.ErrUnauthorized)
	itemRepo.AssertNotCalled(t, "UpdateFields")
}

func TestItemDeleteOwnerOnly(t *testing.T) {
	svc, itemRepo, _, _ := newItemFixture(t)
	itemRepo.On("FindByID", itemID).Return(alicesItem(), nil)

	err := svc.Delete(bob, itemID)

	assert.ErrorIs(t, err, common.ErrUnauthorized)
	itemRepo.AssertNotCalled(t, "DeleteCascade")
}

func TestItemAddToWishlistDuplicateLink(t *testing.T) {
	svc, itemRepo, wishlistRepo, _ := newItemFixture(t)
	itemRepo.On("FindByID", itemID).Return(alicesItem(), nil)
	wishlistRepo.On("FindByName", alice, "Birthday").
		Return(&domain.Wishlist{ID: wishlistID, UserID: alice}, nil)
	itemRepo.On("LinkExists", itemID, wishlistID).Return(true, nil)

	err := svc.AddToWishlist(alice, "Birthday", itemID)

	assert.ErrorIs(t, err, common.ErrItemInWishlist)
	itemRepo.AssertNotCalled(t, "AddToWishlist")
}

func TestItemRemoveFromWishlistMissingLink(t *testing.T) {
	svc, itemRepo, wishlistRepo, _ := newItemFixture(t)
	itemRepo.On("FindByID", itemID).Return(alicesItem(), nil)
	wishlistRepo.On("FindByName", alice, "Birthday").
		Return(&domain.Wishlist{ID: wishlistID, UserID: alice}, nil)
	itemRepo.On("LinkExists", itemID, wishlistID).Return(false, nil)

	err := svc.RemoveFromWishlist(alice, "Birthday", itemID)

	assert.ErrorIs(t, err, common.ErrItemNotInWishlist)
	itemRepo.AssertNotCalled(t, "RemoveFromWishlist")
}

func TestItemAddToWishlistLinks(t *testing.T) {
	svc, itemRepo, wishlistRepo, _ := newItemFixture(t)
	itemRepo.On("FindByID", itemID).Return(alicesItem(), nil)
	wishlistRepo.On("FindByName", alice, "Birthday").
		Return(&domain.Wishlist{ID: wishlistID, UserID: alice}, nil)
	itemRepo.On("LinkExists", itemID, wishlistID).Return(false, nil)
	itemRepo.On("AddToWishlist", itemID, wishlistID).Return(nil)

	err := svc.AddToWishlist(alice, "Birthday", itemID)

	assert.NoError(t, err)
	itemRepo.AssertExpectations(t)
}
