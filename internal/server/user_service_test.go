package server

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// memUserStore is an in-memory UserStore for service tests.
type memUserStore struct {
	byEmail map[string]*db.User
	byID    map[uuid.UUID]*db.User
	err     error
}

func newMemUserStore() *memUserStore {
	return &memUserStore{
		byEmail: make(map[string]*db.User),
		byID:    make(map[uuid.UUID]*db.User),
	}
}

func (s *memUserStore) CreateUser(_ context.Context, name, email, passwordHash string) (*db.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	user := &db.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	s.byEmail[email] = user
	s.byID[user.ID] = user
	return user, nil
}

func (s *memUserStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.byEmail[email], nil
}

func (s *memUserStore) GetUserByID(_ context.Context, userID uuid.UUID) (*db.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.byID[userID], nil
}

func (s *memUserStore) UpdatePassword(_ context.Context, userID uuid.UUID, passwordHash string) error {
	if s.err != nil {
		return s.err
	}
	user, ok := s.byID[userID]
	if !ok {
		return fmt.Errorf("no such user")
	}
	user.PasswordHash = passwordHash
	return nil
}

func testUserService() (*UserService, *memUserStore) {
	store := newMemUserStore()
	// Minimum cost keeps hashing fast in tests.
	svc := NewUserService(store, &config.PasswordConfig{BcryptCost: bcrypt.MinCost})
	return svc, store
}

func TestUserServiceRegister(t *testing.T) {
	svc, store := testUserService()
	ctx := context.Background()

	user, err := svc.Register(ctx, &types.CreateUserRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.Name)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.NotEqual(t, uuid.Nil, user.ID)

	// Stored hash is not the plaintext password.
	stored := store.byEmail["ada@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "correct horse", stored.PasswordHash)
}

func TestUserServiceRegister_DuplicateEmail(t *testing.T) {
	svc, _ := testUserService()
	ctx := context.Background()

	req := &types.CreateUserRequest{Name: "Ada", Email: "ada@example.com", Password: "correct horse"}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	require.Error(t, err)
	var dupErr *ErrEmailAlreadyExists
	assert.ErrorAs(t, err, &dupErr)
}

func TestUserServiceLogin(t *testing.T) {
	svc, _ := testUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &types.CreateUserRequest{
		Name: "Ada", Email: "ada@example.com", Password: "correct horse",
	})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Login(ctx, &types.LoginRequest{Email: "ada@example.com", Password: "correct horse"})
		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", user.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, &types.LoginRequest{Email: "ada@example.com", Password: "wrong"})
		var credErr *ErrInvalidCredentials
		assert.ErrorAs(t, err, &credErr)
	})

	t.Run("unknown email gets same error", func(t *testing.T) {
		_, err := svc.Login(ctx, &types.LoginRequest{Email: "nobody@example.com", Password: "correct horse"})
		var credErr *ErrInvalidCredentials
		assert.ErrorAs(t, err, &credErr)
	})
}

func TestUserServiceUpdatePassword(t *testing.T) {
	svc, store := testUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &types.CreateUserRequest{
		Name: "Ada", Email: "ada@example.com", Password: "old password",
	})
	require.NoError(t, err)
	userID := store.byEmail["ada@example.com"].ID

	t.Run("wrong current password", func(t *testing.T) {
		err := svc.UpdatePassword(ctx, userID, "not the old one", "new password")
		var mismatchErr *ErrPasswordMismatch
		assert.ErrorAs(t, err, &mismatchErr)
	})

	t.Run("unknown user", func(t *testing.T) {
		err := svc.UpdatePassword(ctx, uuid.New(), "old password", "new password")
		var notFoundErr *ErrUserNotFound
		assert.ErrorAs(t, err, &notFoundErr)
	})

	t.Run("successful change", func(t *testing.T) {
		require.NoError(t, svc.UpdatePassword(ctx, userID, "old password", "new password"))

		_, err := svc.Login(ctx, &types.LoginRequest{Email: "ada@example.com", Password: "new password"})
		assert.NoError(t, err)

		_, err = svc.Login(ctx, &types.LoginRequest{Email: "ada@example.com", Password: "old password"})
		assert.Error(t, err)
	})
}

func TestUserService_StoreFailurePropagates(t *testing.T) {
	svc, store := testUserService()
	store.err = fmt.Errorf("db down")

	_, err := svc.Register(context.Background(), &types.CreateUserRequest{
		Name: "Ada", Email: "ada@example.com", Password: "pw",
	})
	require.Error(t, err)
	assert.NotErrorAs(t, err, new(*ErrEmailAlreadyExists))
}
