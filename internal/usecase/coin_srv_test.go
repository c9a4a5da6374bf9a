package usecase

import (
	"context"
	"testing"
	"time"

	"car-rental/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCoins(t *testing.T) {
	ctx := context.Background()
	repo, users, _, _ := newTestRepository()
	svc := NewCoinService(repo, testLogger())

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:  "Somsak",
		Email: "somsak@example.com",
		Role:  entity.RoleUser,
		Coin:  150,
	}
	users.users = append(users.users, user)

	got, err := svc.GetCoins(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(150), got)

	_, err = svc.GetCoins(ctx, uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCoinMutationsAreStubbed(t *testing.T) {
	ctx := context.Background()
	repo, users, _, _ := newTestRepository()
	svc := NewCoinService(repo, testLogger())

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:  "Somsak",
		Email: "somsak@example.com",
		Role:  entity.RoleUser,
		Coin:  150,
	}
	users.users = append(users.users, user)

	err := svc.AddCoins(ctx, user.ID, 50)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not implemented")

	err = svc.DeductCoins(ctx, user.ID, 50)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not implemented")

	// The balance never moves
	balance, err := svc.GetCoins(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(150), balance)
}
