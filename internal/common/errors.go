package common

import (
	"errors"
	"net/http"
)

// Business logic errors
var (
	// Auth errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrUserNotFound = errors.New("user not found")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidIDFormat = errors.New("invalid id format")
	ErrNoUpdateFields  = errors.New("no update fields")

	// Friend errors
	ErrSelfFriend            = errors.New("cannot friend self")
	ErrSelfFriendDelete      = errors.New("cannot unfriend self")
	ErrSelfFriendReject      = errors.New("cannot reject self")
	ErrFriendRequestExists   = errors.New("friend request already exists")
	ErrFriendshipExists      = errors.New("friendship already exists")
	ErrFriendRequestNotFound = errors.New("friend request does not exist")
	ErrFriendshipNotFound    = errors.New("friendship does not exist")

	// Wishlist errors
	ErrWishlistNotFound  = errors.New("wishlist not found")
	ErrWishlistExists    = errors.New("wishlist already exists")
	ErrWishlistNameTaken = errors.New("wishlist name already taken")

	// Item errors
	ErrItemNotFound      = errors.New("item not found")
	ErrItemExists        = errors.New("item already exists")
	ErrItemInWishlist    = errors.New("item already in wishlist")
	ErrItemNotInWishlist = errors.New("item not in wishlist")

	// Gift errors
	ErrSelfGift            = errors.New("cannot gift yourself")
	ErrGiftNotFound        = errors.New("gift not found")
	ErrGiftExists          = errors.New("gift already exists")
	ErrGiftNameTaken       = errors.New("gift name already taken")
	ErrGiftDelivered       = errors.New("gift already completed")
	ErrImplicationNotFound = errors.New("implication not found")
	ErrImplicationExists   = errors.New("implication already exists")
	ErrImplicationAccepted = errors.New("implication already accepted")
)

// errorStatus maps business errors to HTTP statuses and client messages.
// Anything not listed collapses to a 500 with a generic message.
var errorStatus = map[error]struct {
	status  int
	message string
}{
	ErrUnauthorized:    {http.StatusUnauthorized, "Unauthorized"},
	ErrUserNotFound:    {http.StatusNotFound, "User not found"},
	ErrInvalidInput:    {http.StatusBadRequest, "Invalid input"},
	ErrInvalidIDFormat: {http.StatusBadRequest, "Invalid userId format"},
	ErrNoUpdateFields:  {http.StatusBadRequest, "At least one field is required"},

	ErrSelfFriend:            {http.StatusBadRequest, "You cannot add yourself as a friend"},
	ErrSelfFriendDelete:      {http.StatusBadRequest, "You cannot delete yourself as a friend"},
	ErrSelfFriendReject:      {http.StatusBadRequest, "You cannot reject yourself as a friend"},
	ErrFriendRequestExists:   {http.StatusBadRequest, "Friendship request already exists"},
	ErrFriendshipExists:      {http.StatusBadRequest, "Friendship already exists"},
	ErrFriendRequestNotFound: {http.StatusBadRequest, "Friendship request does not exist"},
	ErrFriendshipNotFound:    {http.StatusBadRequest, "Friendship does not exist"},

	ErrWishlistNotFound:  {http.StatusNotFound, "Wishlist not found"},
	ErrWishlistExists:    {http.StatusConflict, "Wishlist already exists"},
	ErrWishlistNameTaken: {http.StatusConflict, "Wishlist with that name already exists"},

	ErrItemNotFound:      {http.StatusNotFound, "Item not found"},
	ErrItemExists:        {http.StatusConflict, "Item already exists"},
	ErrItemInWishlist:    {http.StatusConflict, "Item already exists in wishlist"},
	ErrItemNotInWishlist: {http.StatusNotFound, "Item not found in wishlist"},

	ErrSelfGift:            {http.StatusBadRequest, "You cannot create a gift for yourself"},
	ErrGiftNotFound:        {http.StatusNotFound, "Gift not found"},
	ErrGiftExists:          {http.StatusConflict, "Gift already exists"},
	ErrGiftNameTaken:       {http.StatusConflict, "Gift with that name already exists"},
	ErrGiftDelivered:       {http.StatusBadRequest, "Gift already completed"},
	ErrImplicationNotFound: {http.StatusNotFound, "Implication not found"},
	ErrImplicationExists:   {http.StatusConflict, "Implication already exists"},
	ErrImplicationAccepted: {http.StatusBadRequest, "Implication already accepted"},
}

// StatusOf resolves a business error to its HTTP status and client message.
// Unknown errors map to 500 / "Internal server error".
func StatusOf(err error) (int, string) {
	for sentinel, m := range errorStatus {
		if errors.Is(err, sentinel) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}
