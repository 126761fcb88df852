package authclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateResolvesUserID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/validate", r.URL.Path)
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
		w.Write([]byte(`{"success": true, "userId": "user-1"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	userID, err := client.Validate(context.Background(), "Bearer token-1")

	assert.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestValidateRejectedToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success": false, "message": "Invalid token"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	_, err := client.Validate(context.Background(), "Bearer bad")

	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Invalid token", apiErr.Message)
}

func TestLoginReturnsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/login", r.URL.Path)
		w.Write([]byte(`{"success": true, "token": "issued-token"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	token, err := client.Login(context.Background(), "alice@example.com", "secret")

	assert.NoError(t, err)
	assert.Equal(t, "issued-token", token)
}

func TestSignupConflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"success": false, "message": "Email already in use"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	err := client.Signup(context.Background(), SignupRequest{Email: "alice@example.com"})

	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
}

func TestUnreachableServiceIsNotAPIError(t *testing.T) {
	client := New("http://127.0.0.1:1", 100*time.Millisecond)

	_, err := client.Validate(context.Background(), "Bearer any")

	assert.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}
