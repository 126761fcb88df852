package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/goodgifts/goodgifts-backend/internal/domain"
)

const (
	alice = "11111111-1111-1111-1111-111111111111"
	bob   = "22222222-2222-2222-2222-222222222222"
)

// newTestDB opens an in-memory SQLite database with the full schema,
// so the transactional cascades run against real rows instead of mocks.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.FriendEdge{},
		&domain.Wishlist{},
		&domain.Item{},
		&domain.ItemWishlist{},
		&domain.Gift{},
		&domain.GiftImplication{},
		&domain.UserSession{},
		&domain.RevokedToken{},
	))
	return db
}

func count(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func seedUser(t *testing.T, db *gorm.DB, id, email string) {
	t.Helper()
	require.NoError(t, db.Create(&domain.User{ID: id, Email: email, Username: email}).Error)
}

func TestUserDeleteCascadeLeavesNoOrphans(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, alice, "alice@example.com")
	seedUser(t, db, bob, "bob@example.com")

	require.NoError(t, NewFriendRepository(db).Create(&domain.FriendEdge{
		UserAID: alice, UserBID: bob, RequesterID: alice, Accepted: true,
	}))

	wishlist := &domain.Wishlist{UserID: alice, WishlistName: "My Wishlist"}
	require.NoError(t, NewWishlistRepository(db).Create(wishlist))

	item := &domain.Item{UserID: alice, ItemName: "socks"}
	itemRepo := NewItemRepository(db)
	require.NoError(t, itemRepo.Create(item))
	require.NoError(t, itemRepo.AddToWishlist(item.ID, wishlist.ID))

	giftRepo := NewGiftRepository(db)
	// alice's own gift, and a gift bob hung off alice's item
	require.NoError(t, giftRepo.CreateWithOwnerImplication(&domain.Gift{
		ItemID: item.ID, UserID: alice, GiftedUserID: bob, GiftName: "from alice",
	}))
	bobsGift := &domain.Gift{ItemID: item.ID, UserID: bob, GiftedUserID: alice, GiftName: "from bob"}
	require.NoError(t, giftRepo.CreateWithOwnerImplication(bobsGift))

	require.NoError(t, db.Create(&domain.UserSession{UserID: alice, Token: "tok"}).Error)

	err := NewUserRepository(db).DeleteCascade(alice, "Bearer tok")
	require.NoError(t, err)

	assert.EqualValues(t, 1, count(t, db, &domain.User{}))
	assert.EqualValues(t, 0, count(t, db, &domain.FriendEdge{}))
	assert.EqualValues(t, 0, count(t, db, &domain.Wishlist{}))
	assert.EqualValues(t, 0, count(t, db, &domain.Item{}))
	assert.EqualValues(t, 0, count(t, db, &domain.ItemWishlist{}))
	// bob's gift dies with alice's item, so no gift row survives
	assert.EqualValues(t, 0, count(t, db, &domain.Gift{}))
	assert.EqualValues(t, 0, count(t, db, &domain.GiftImplication{}))
	assert.EqualValues(t, 0, count(t, db, &domain.UserSession{}))
	assert.EqualValues(t, 1, count(t, db, &domain.RevokedToken{}))
}

func TestWishlistDeleteCascadeLeavesNoOrphans(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, alice, "alice@example.com")
	seedUser(t, db, bob, "bob@example.com")

	wishlistRepo := NewWishlistRepository(db)
	birthday := &domain.Wishlist{UserID: alice, WishlistName: "Birthday"}
	christmas := &domain.Wishlist{UserID: alice, WishlistName: "Christmas"}
	require.NoError(t, wishlistRepo.Create(birthday))
	require.NoError(t, wishlistRepo.Create(christmas))

	itemRepo := NewItemRepository(db)
	socks := &domain.Item{UserID: alice, ItemName: "socks"}
	mug := &domain.Item{UserID: alice, ItemName: "mug"}
	require.NoError(t, itemRepo.Create(socks))
	require.NoError(t, itemRepo.Create(mug))
	require.NoError(t, itemRepo.AddToWishlist(socks.ID, birthday.ID))
	require.NoError(t, itemRepo.AddToWishlist(mug.ID, birthday.ID))
	// socks is also in the surviving wishlist
	require.NoError(t, itemRepo.AddToWishlist(socks.ID, christmas.ID))

	require.NoError(t, NewGiftRepository(db).CreateWithOwnerImplication(&domain.Gift{
		ItemID: socks.ID, UserID: alice, GiftedUserID: bob, GiftName: "surprise",
	}))

	require.NoError(t, wishlistRepo.DeleteCascade(birthday.ID))

	// N items in the wishlist: N items gone, their gifts and
	// implications gone, every link of those items gone
	assert.EqualValues(t, 1, count(t, db, &domain.Wishlist{}))
	assert.EqualValues(t, 0, count(t, db, &domain.Item{}))
	assert.EqualValues(t, 0, count(t, db, &domain.ItemWishlist{}))
	assert.EqualValues(t, 0, count(t, db, &domain.Gift{}))
	assert.EqualValues(t, 0, count(t, db, &domain.GiftImplication{}))

	remaining, err := wishlistRepo.FindByName(alice, "Christmas")
	require.NoError(t, err)
	assert.NotNil(t, remaining)
}

func TestItemDeleteCascadeLeavesNoOrphans(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, alice, "alice@example.com")
	seedUser(t, db, bob, "bob@example.com")

	wishlist := &domain.Wishlist{UserID: alice, WishlistName: "Birthday"}
	require.NoError(t, NewWishlistRepository(db).Create(wishlist))

	itemRepo := NewItemRepository(db)
	item := &domain.Item{UserID: alice, ItemName: "socks"}
	require.NoError(t, itemRepo.Create(item))
	require.NoError(t, itemRepo.AddToWishlist(item.ID, wishlist.ID))

	giftRepo := NewGiftRepository(db)
	gift := &domain.Gift{ItemID: item.ID, UserID: alice, GiftedUserID: bob, GiftName: "surprise"}
	require.NoError(t, giftRepo.CreateWithOwnerImplication(gift))
	require.NoError(t, giftRepo.CreateImplication(&domain.GiftImplication{
		UserID: bob, GiftID: gift.ID,
	}))

	require.NoError(t, itemRepo.DeleteCascade(item.ID))

	assert.EqualValues(t, 0, count(t, db, &domain.Item{}))
	assert.EqualValues(t, 0, count(t, db, &domain.ItemWishlist{}))
	assert.EqualValues(t, 0, count(t, db, &domain.Gift{}))
	assert.EqualValues(t, 0, count(t, db, &domain.GiftImplication{}))
	assert.EqualValues(t, 1, count(t, db, &domain.Wishlist{}))
}

func TestCreateWithOwnerImplicationIsAtomic(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, alice, "alice@example.com")
	seedUser(t, db, bob, "bob@example.com")

	giftRepo := NewGiftRepository(db)
	item := &domain.Item{UserID: alice, ItemName: "socks"}
	require.NoError(t, NewItemRepository(db).Create(item))

	gift := &domain.Gift{ItemID: item.ID, UserID: alice, GiftedUserID: bob, GiftName: "surprise"}
	require.NoError(t, giftRepo.CreateWithOwnerImplication(gift))

	imp, err := giftRepo.FindImplication(alice, gift.ID)
	require.NoError(t, err)
	require.NotNil(t, imp)
	assert.True(t, imp.IsImplicated)

	require.NoError(t, giftRepo.DeleteCascade(gift.ID))
	assert.EqualValues(t, 0, count(t, db, &domain.Gift{}))
	assert.EqualValues(t, 0, count(t, db, &domain.GiftImplication{}))
}
