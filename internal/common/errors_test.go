package common

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusOfKnownErrors(t *testing.T) {
	cases := []struct {
		err     error
		status  int
		message string
	}{
		{ErrUnauthorized, http.StatusUnauthorized, "Unauthorized"},
		{ErrUserNotFound, http.StatusNotFound, "User not found"},
		{ErrSelfFriend, http.StatusBadRequest, "You cannot add yourself as a friend"},
		{ErrSelfFriendDelete, http.StatusBadRequest, "You cannot delete yourself as a friend"},
		{ErrSelfFriendReject, http.StatusBadRequest, "You cannot reject yourself as a friend"},
		{ErrFriendRequestExists, http.StatusBadRequest, "Friendship request already exists"},
		{ErrWishlistExists, http.StatusConflict, "Wishlist already exists"},
		{ErrGiftDelivered, http.StatusBadRequest, "Gift already completed"},
		{ErrInvalidIDFormat, http.StatusBadRequest, "Invalid userId format"},
	}

	for _, tc := range cases {
		status, message := StatusOf(tc.err)
		assert.Equal(t, tc.status, status, tc.err)
		assert.Equal(t, tc.message, message, tc.err)
	}
}

func TestStatusOfWrappedError(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", ErrGiftNotFound)

	status, message := StatusOf(wrapped)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Gift not found", message)
}

func TestStatusOfUnknownErrorCollapsesTo500(t *testing.T) {
	status, message := StatusOf(errors.New("pq: connection reset"))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Internal server error", message)
}
