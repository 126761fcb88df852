package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/goodgifts/goodgifts-backend/pkg/authclient"
)

type fakeValidator struct {
	userID string
	err    error
}

func (f *fakeValidator) Validate(_ context.Context, _ string) (string, error) {
	return f.userID, f.err
}

func runAuthGate(t *testing.T, validator authclient.TokenValidator, authorization string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthRequired(validator), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": GetUserID(c)})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequiredMissingToken(t *testing.T) {
	w := runAuthGate(t, &fakeValidator{}, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Token not provided")
}

func TestAuthRequiredValidToken(t *testing.T) {
	w := runAuthGate(t, &fakeValidator{userID: "user-1"}, "Bearer good")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestAuthRequiredPropagatesAuthServiceVerdict(t *testing.T) {
	validator := &fakeValidator{err: &authclient.APIError{
		Status:  http.StatusUnauthorized,
		Message: "Invalid token",
	}}

	w := runAuthGate(t, validator, "Bearer bad")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}

func TestAuthRequiredTransportFailure(t *testing.T) {
	w := runAuthGate(t, &fakeValidator{err: errors.New("connection refused")}, "Bearer any")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
}
