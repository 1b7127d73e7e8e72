package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"account-service/internal/auth"
	"account-service/internal/domain"
	"account-service/internal/repository"
)

var (
	// ErrInvalidCredentials indicates a bad login, a bad or expired token,
	// or a wrong current password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrForbidden indicates an authenticated actor lacking admin rights.
	ErrForbidden = errors.New("only admin can manage users")
	// ErrUserNotFound indicates an unknown target user id.
	ErrUserNotFound = errors.New("user not found")
)

// ValidationError carries a user-facing bad-request message.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// LoginResult bundles the issued token with the authenticated user.
type LoginResult struct {
	AccessToken string
	User        *domain.User
}

// AuthService orchestrates credential verification, token issuance and
// validation, and admin-gated user management.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	ResolveToken(ctx context.Context, token string) (*domain.User, error)
	ChangePassword(ctx context.Context, actor *domain.User, currentPassword, newPassword string) error
	ListUsers(ctx context.Context, actor *domain.User) ([]domain.User, error)
	CreateUser(ctx context.Context, actor *domain.User, email, name, password string) (*domain.User, error)
	DeleteUser(ctx context.Context, actor *domain.User, id string) error
	SetAvatar(ctx context.Context, actor *domain.User, location string) error
	BootstrapAdmin(ctx context.Context, name, password string) error
	AdminEmail() string
}

type authService struct {
	users      repository.UserRepository
	tokens     *auth.TokenManager
	adminEmail string
	tokenTTL   time.Duration
}

// NewAuthService wires the user store and token manager together. adminEmail
// is the distinguished account allowed to manage users; tokenTTL is the
// lifetime of tokens issued at login.
func NewAuthService(users repository.UserRepository, tokens *auth.TokenManager, adminEmail string, tokenTTL time.Duration) AuthService {
	return &authService{
		users:      users,
		tokens:     tokens,
		adminEmail: strings.TrimSpace(adminEmail),
		tokenTTL:   tokenTTL,
	}
}

func (s *authService) AdminEmail() string { return s.adminEmail }

func (s *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Email, user.ID, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &LoginResult{AccessToken: token, User: user}, nil
}

// ResolveToken validates a bearer token and re-resolves the user behind it.
// A valid token for a user that no longer exists is treated the same as a
// bad token.
func (s *authService) ResolveToken(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) ChangePassword(ctx context.Context, actor *domain.User, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return ValidationError("current_password and new_password are required")
	}
	if !auth.VerifyPassword(currentPassword, actor.PasswordHash) {
		return ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.users.UpdatePasswordHash(ctx, actor.ID, hash)
}

func (s *authService) ListUsers(ctx context.Context, actor *domain.User) ([]domain.User, error) {
	if err := s.requireAdmin(actor); err != nil {
		return nil, err
	}
	return s.users.List(ctx)
}

func (s *authService) CreateUser(ctx context.Context, actor *domain.User, email, name, password string) (*domain.User, error) {
	if err := s.requireAdmin(actor); err != nil {
		return nil, err
	}
	if email == "" || password == "" {
		return nil, ValidationError("email and password are required")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}

	// uniqueness rides on the store's constraint; no existence pre-check
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, ValidationError("Email already exists")
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) DeleteUser(ctx context.Context, actor *domain.User, id string) error {
	if err := s.requireAdmin(actor); err != nil {
		return err
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if user.Email == s.adminEmail {
		return ValidationError("Cannot delete admin user")
	}
	return s.users.Delete(ctx, user.ID)
}

func (s *authService) SetAvatar(ctx context.Context, actor *domain.User, location string) error {
	if location == "" {
		return ValidationError("avatar location is required")
	}
	return s.users.UpdateImage(ctx, actor.ID, location)
}

// BootstrapAdmin provisions the distinguished admin account if absent.
// The admin's email is marked verified at creation.
func (s *authService) BootstrapAdmin(ctx context.Context, name, password string) error {
	_, err := s.users.GetByEmail(ctx, s.adminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	now := time.Now().UTC()
	admin := &domain.User{
		ID:            uuid.NewString(),
		Name:          name,
		Email:         s.adminEmail,
		EmailVerified: &now,
		PasswordHash:  hash,
	}
	if err := s.users.Create(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			// lost a race against another bootstrap; account exists
			return nil
		}
		return err
	}
	return nil
}

func (s *authService) requireAdmin(actor *domain.User) error {
	if actor == nil || actor.Email != s.adminEmail {
		return ErrForbidden
	}
	return nil
}
