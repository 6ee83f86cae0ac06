package service

import (
	"context"
	"errors"
	"fmt"

	"visit-map-api/internal/models"
)

// AuthService checks field user and admin credentials. Passwords are compared
// as stored.
type AuthService struct {
	repo AuthRepository
}

// AuthRepository is the storage the auth service needs.
type AuthRepository interface {
	FindUserByCredentials(ctx context.Context, username, password string) (*models.MaptechUser, error)
	GetUserByUsername(ctx context.Context, username string) (*models.MaptechUser, error)
	FindAdminByCredentials(ctx context.Context, username, password string) (*models.AdminUser, error)
	GetAdminByUsername(ctx context.Context, username string) (*models.AdminUser, error)
}

func NewAuthService(repo AuthRepository) *AuthService {
	return &AuthService{repo: repo}
}

// credentialError hides whether the account or the password was wrong.
func credentialError(err error) error {
	if errors.Is(err, ErrNotFound) {
		return ErrInvalidCredentials
	}
	return fmt.Errorf("service: failed to check credentials: %w", err)
}

// LoginUser returns the field user for the credentials or ErrInvalidCredentials.
func (s *AuthService) LoginUser(ctx context.Context, username, password string) (*models.MaptechUser, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	u, err := s.repo.FindUserByCredentials(ctx, username, password)
	if err != nil {
		return nil, credentialError(err)
	}
	return u, nil
}

// LoginAdmin returns the admin for the credentials or ErrInvalidCredentials.
func (s *AuthService) LoginAdmin(ctx context.Context, username, password string) (*models.AdminUser, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	a, err := s.repo.FindAdminByCredentials(ctx, username, password)
	if err != nil {
		return nil, credentialError(err)
	}
	return a, nil
}

// UserExists reports whether a field user with the name exists.
func (s *AuthService) UserExists(ctx context.Context, username string) (bool, error) {
	return exists(func() error {
		_, err := s.repo.GetUserByUsername(ctx, username)
		return err
	})
}

// AdminExists reports whether an admin with the name exists.
func (s *AuthService) AdminExists(ctx context.Context, username string) (bool, error) {
	return exists(func() error {
		_, err := s.repo.GetAdminByUsername(ctx, username)
		return err
	})
}

func exists(lookup func() error) (bool, error) {
	err := lookup()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("service: failed to look up account: %w", err)
	}
}
