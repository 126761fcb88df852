package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goodgifts/goodgifts-backend/internal/common"
	"github.com/goodgifts/goodgifts-backend/internal/domain"
)

func TestGetPublicProfileDropsPrivateFields(t *testing.T) {
	userRepo := new(mockUserRepo)
	svc := NewUserService(userRepo)
	userRepo.On("FindByID", alice).Return(&domain.User{
		ID:       alice,
		Email:    "alice@example.com",
		Username: "alice",
		BioDesc:  "hi",
	}, nil)

	profile, err := svc.GetPublicProfile(alice)

	assert.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
}

func TestUpdateProfileRequiresFields(t *testing.T) {
	userRepo := new(mockUserRepo)
	svc := NewUserService(userRepo)

	err := svc.UpdateProfile(alice, &domain.ProfileUpdateRequest{})

	assert.ErrorIs(t, err, common.ErrNoUpdateFields)
	userRepo.AssertNotCalled(t, "UpdateFields")
}

func TestUpdateProfileBuildsPartialMap(t *testing.T) {
	userRepo := new(mockUserRepo)
	svc := NewUserService(userRepo)
	userRepo.On("Exists", alice).Return(true, nil)
	bio := "updated"
	userRepo.On("UpdateFields", alice, map[string]interface{}{"bio_desc": "updated"}).Return(nil)

	err := svc.UpdateProfile(alice, &domain.ProfileUpdateRequest{BioDesc: &bio})

	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestDeleteAccountPassesToken(t *testing.T) {
	userRepo := new(mockUserRepo)
	svc := NewUserService(userRepo)
	userRepo.On("Exists", alice).Return(true, nil)
	userRepo.On("DeleteCascade", alice, "Bearer abc").Return(nil)

	err := svc.DeleteAccount(alice, "Bearer abc")

	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestLookupIDUnknownEmail(t *testing.T) {
	userRepo := new(mockUserRepo)
	svc := NewUserService(userRepo)
	userRepo.On("FindByEmail", "nobody@example.com").Return(nil, nil)

	_, err := svc.LookupID("nobody@example.com")

	assert.ErrorIs(t, err, common.ErrUserNotFound)
}
