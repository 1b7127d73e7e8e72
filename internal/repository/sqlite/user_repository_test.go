package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"account-service/internal/domain"
	"account-service/internal/repository"
)

func newTestRepo(t *testing.T) repository.UserRepository {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewUserRepository(db)
	require.NoError(t, repo.Init(context.Background()))
	return repo
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	verified := time.Now().UTC().Truncate(time.Second)
	user := &domain.User{
		ID:            "id-1",
		Name:          "Alice",
		Email:         "alice@example.com",
		EmailVerified: &verified,
		PasswordHash:  "hash-1",
	}
	require.NoError(t, repo.Create(ctx, user))
	assert.False(t, user.CreatedAt.IsZero())

	byEmail, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "id-1", byEmail.ID)
	assert.Equal(t, "Alice", byEmail.Name)
	assert.Equal(t, "hash-1", byEmail.PasswordHash)
	require.NotNil(t, byEmail.EmailVerified)

	byID, err := repo.GetByID(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", byID.Email)
}

func TestUserRepository_UniqueEmail(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.User{ID: "id-1", Email: "dup@example.com"}))

	err := repo.Create(ctx, &domain.User{ID: "id-2", Email: "dup@example.com"})
	assert.ErrorIs(t, err, repository.ErrEmailExists)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserRepository_NotFound(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.GetByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.GetByID(ctx, "missing-id")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.ErrorIs(t, repo.UpdatePasswordHash(ctx, "missing-id", "h"), repository.ErrNotFound)
	assert.ErrorIs(t, repo.UpdateImage(ctx, "missing-id", "img"), repository.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "missing-id"), repository.ErrNotFound)
}

func TestUserRepository_UpdateAndDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.User{ID: "id-1", Email: "a@example.com", PasswordHash: "old"}))

	require.NoError(t, repo.UpdatePasswordHash(ctx, "id-1", "new"))
	user, err := repo.GetByID(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, "new", user.PasswordHash)

	require.NoError(t, repo.UpdateImage(ctx, "id-1", "s3://bucket/avatars/id-1/pic.png"))
	user, err = repo.GetByID(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, "s3://bucket/avatars/id-1/pic.png", user.Image)

	require.NoError(t, repo.Delete(ctx, "id-1"))
	_, err = repo.GetByID(ctx, "id-1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepository_List(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.User{ID: "id-1", Email: "a@example.com"}))
	require.NoError(t, repo.Create(ctx, &domain.User{ID: "id-2", Email: "b@example.com"}))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
}
