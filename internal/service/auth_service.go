package service

import (
	"context"

	"github.com/goodgifts/goodgifts-backend/internal/repository"
	"github.com/goodgifts/goodgifts-backend/pkg/authclient"
	"github.com/goodgifts/goodgifts-backend/pkg/logger"
)

// AuthGateway is the slice of the external auth service this backend
// uses. Token issuing, validation and password storage all live on the
// other side of it.
type AuthGateway interface {
	Signup(ctx context.Context, req authclient.SignupRequest) error
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, authorization string) error
	ChangePassword(ctx context.Context, authorization, oldPassword, newPassword string) error
}

// AuthService proxies account operations to the external auth service
// and provisions the local side effects of a new account.
type AuthService struct {
	gateway      AuthGateway
	userRepo     repository.UserRepository
	wishlistRepo repository.WishlistRepository
}

// NewAuthService creates a new AuthService
func NewAuthService(gateway AuthGateway, userRepo repository.UserRepository, wishlistRepo repository.WishlistRepository) *AuthService {
	return &AuthService{gateway: gateway, userRepo: userRepo, wishlistRepo: wishlistRepo}
}

// Signup registers the account with the auth service and provisions the
// default wishlist. A wishlist failure is logged but does not undo the
// signup: the account already exists remotely and the wishlist can be
// created later, the account cannot.
func (s *AuthService) Signup(ctx context.Context, req authclient.SignupRequest) error {
	if err := s.gateway.Signup(ctx, req); err != nil {
		return err
	}
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil || user == nil {
		logger.Get().Error().Err(err).Str("email", req.Email).
			Msg("signup succeeded but user row not found; default wishlist skipped")
		return nil
	}
	if err := NewWishlistService(s.wishlistRepo, s.userRepo).Create(user.ID, DefaultWishlistName); err != nil {
		userLogger := logger.WithUserID(user.ID)
		userLogger.Error().Err(err).Msg("failed to create default wishlist")
	}
	return nil
}

// Login exchanges credentials for a token
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	return s.gateway.Login(ctx, email, password)
}

// Logout invalidates the presented credential
func (s *AuthService) Logout(ctx context.Context, authorization string) error {
	return s.gateway.Logout(ctx, authorization)
}

// ChangePassword rotates the caller's password at the auth service
func (s *AuthService) ChangePassword(ctx context.Context, authorization, oldPassword, newPassword string) error {
	return s.gateway.ChangePassword(ctx, authorization, oldPassword, newPassword)
}
