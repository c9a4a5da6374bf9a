package usecase

import (
	"context"
	"testing"

	"car-rental/internal/data/entity"
	"car-rental/internal/dto/request"
	"car-rental/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *utils.Config {
	return &utils.Config{
		JWT: utils.JWTConfig{
			Secret:      "test-secret",
			ExpiryHours: 1,
			CookieName:  "token",
		},
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user with the user role and signs a token", func(t *testing.T) {
		repo, users, _, _ := newTestRepository()
		svc := NewAuthService(repo, testConfig(), testLogger())

		got, err := svc.Register(ctx, &request.RegisterRequest{
			Name:     "Somsak",
			Email:    "somsak@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, got.Token)
		assert.Equal(t, entity.RoleUser, got.Role)
		assert.Equal(t, "somsak@example.com", got.Email)

		require.Len(t, users.users, 1)
		stored := users.users[0]
		assert.Equal(t, int64(0), stored.Coin)
		// The raw password never reaches storage
		assert.NotEqual(t, "secret123", stored.PasswordHash)
		assert.True(t, utils.CheckPasswordHash("secret123", stored.PasswordHash))
	})

	t.Run("rejects a taken email", func(t *testing.T) {
		repo, _, _, _ := newTestRepository()
		svc := NewAuthService(repo, testConfig(), testLogger())

		req := &request.RegisterRequest{
			Name:     "Somsak",
			Email:    "somsak@example.com",
			Password: "secret123",
		}
		_, err := svc.Register(ctx, req)
		require.NoError(t, err)

		_, err = svc.Register(ctx, req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already registered")
	})

	t.Run("rejects a short password", func(t *testing.T) {
		repo, _, _, _ := newTestRepository()
		svc := NewAuthService(repo, testConfig(), testLogger())

		_, err := svc.Register(ctx, &request.RegisterRequest{
			Name:     "Somsak",
			Email:    "somsak@example.com",
			Password: "short",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	repo, _, _, _ := newTestRepository()
	svc := NewAuthService(repo, testConfig(), testLogger())

	_, err := svc.Register(ctx, &request.RegisterRequest{
		Name:     "Somsak",
		Email:    "somsak@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		got, err := svc.Login(ctx, &request.LoginRequest{
			Email:    "somsak@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, got.Token)
		assert.Equal(t, "Somsak", got.Name)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, &request.LoginRequest{
			Email:    "somsak@example.com",
			Password: "wrong-pass",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid credentials")
	})

	t.Run("unknown email gets the same error as a wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, &request.LoginRequest{
			Email:    "nobody@example.com",
			Password: "secret123",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid credentials")
	})
}

func TestGetMe(t *testing.T) {
	ctx := context.Background()
	repo, users, _, _ := newTestRepository()
	svc := NewAuthService(repo, testConfig(), testLogger())

	reg, err := svc.Register(ctx, &request.RegisterRequest{
		Name:     "Somsak",
		Email:    "somsak@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	got, err := svc.GetMe(ctx, users.users[0].ID)
	require.NoError(t, err)
	assert.Equal(t, reg.UserID, got.ID)
	assert.Equal(t, int64(0), got.Coin)

	_, err = svc.GetMe(ctx, uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	repo, users, _, _ := newTestRepository()
	svc := NewAuthService(repo, testConfig(), testLogger())

	_, err := svc.Register(ctx, &request.RegisterRequest{
		Name:     "Somsak",
		Email:    "somsak@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	userID := users.users[0].ID.String()

	require.NoError(t, svc.DeleteUser(ctx, userID))
	assert.Empty(t, users.users)

	err = svc.DeleteUser(ctx, userID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	err = svc.DeleteUser(ctx, "not-a-uuid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid user ID format")
}
