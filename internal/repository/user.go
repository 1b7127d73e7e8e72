package repository

import (
	"context"
	"errors"

	"account-service/internal/domain"
)

var (
	// ErrNotFound is returned when no user matches the given key.
	ErrNotFound = errors.New("user not found")
	// ErrEmailExists is returned when a create collides with the unique email constraint.
	ErrEmailExists = errors.New("email already exists")
)

// UserRepository defines persistence operations for User entities.
type UserRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	UpdatePasswordHash(ctx context.Context, id, hash string) error
	UpdateImage(ctx context.Context, id, image string) error
	Delete(ctx context.Context, id string) error
}
