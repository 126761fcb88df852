package service

import (
	"github.com/goodgifts/goodgifts-backend/internal/common"
	"github.com/goodgifts/goodgifts-backend/internal/domain"
	"github.com/goodgifts/goodgifts-backend/internal/repository"
)

// UserService handles profile business logic
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetOwnProfile returns the caller's full profile
func (s *UserService) GetOwnProfile(userID string) (*domain.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, common.ErrUserNotFound
	}
	return user, nil
}

// LookupID resolves an email address to a user id
func (s *UserService) LookupID(email string) (string, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", common.ErrUserNotFound
	}
	return user.ID, nil
}

// GetPublicProfile returns the public subset of another user's profile
func (s *UserService) GetPublicProfile(userID string) (*domain.PublicProfile, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, common.ErrUserNotFound
	}
	public := user.Public()
	return &public, nil
}

// UpdateProfile applies a partial profile update; at least one field
// must be present in the request.
func (s *UserService) UpdateProfile(userID string, req *domain.ProfileUpdateRequest) error {
	fields := req.Fields()
	if len(fields) == 0 {
		return common.ErrNoUpdateFields
	}
	exists, err := s.userRepo.Exists(userID)
	if err != nil {
		return err
	}
	if !exists {
		return common.ErrUserNotFound
	}
	return s.userRepo.UpdateFields(userID, fields)
}

// DeleteAccount removes the user and everything they own, and
// blacklists the presented credential.
func (s *UserService) DeleteAccount(userID, token string) error {
	exists, err := s.userRepo.Exists(userID)
	if err != nil {
		return err
	}
	if !exists {
		return common.ErrUserNotFound
	}
	return s.userRepo.DeleteCascade(userID, token)
}
