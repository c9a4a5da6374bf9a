package usecase

import (
	"context"
	"testing"

	"car-rental/internal/data/entity"
	"car-rental/internal/data/repository"
	"car-rental/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCarProvider(t *testing.T) {
	ctx := context.Background()

	t.Run("renter owns what they create", func(t *testing.T) {
		repo, _, providers, _ := newTestRepository()
		svc := NewCarProviderService(repo, testLogger())
		renterID := uuid.New()

		got, err := svc.CreateCarProvider(ctx, renterID, entity.RoleRenter, &request.CreateCarProviderRequest{
			Name:    "Avis Silom",
			Address: "99 Silom Rd",
			Tel:     "0823456789",
		})
		require.NoError(t, err)
		assert.Equal(t, renterID.String(), got.RenterID)
		assert.Equal(t, entity.CarProviderAvailable, got.Status)
		assert.Len(t, providers.providers, 1)
	})

	t.Run("renter cannot assign ownership elsewhere", func(t *testing.T) {
		repo, _, _, _ := newTestRepository()
		svc := NewCarProviderService(repo, testLogger())
		renterID := uuid.New()
		someoneElse := uuid.NewString()

		got, err := svc.CreateCarProvider(ctx, renterID, entity.RoleRenter, &request.CreateCarProviderRequest{
			Name:     "Avis Silom",
			Address:  "99 Silom Rd",
			Tel:      "0823456789",
			RenterID: &someoneElse,
		})
		require.NoError(t, err)
		assert.Equal(t, renterID.String(), got.RenterID)
	})

	t.Run("admin may create on behalf of a renter", func(t *testing.T) {
		repo, _, _, _ := newTestRepository()
		svc := NewCarProviderService(repo, testLogger())
		renterID := uuid.NewString()

		got, err := svc.CreateCarProvider(ctx, uuid.New(), entity.RoleAdmin, &request.CreateCarProviderRequest{
			Name:     "Avis Silom",
			Address:  "99 Silom Rd",
			Tel:      "0823456789",
			RenterID: &renterID,
		})
		require.NoError(t, err)
		assert.Equal(t, renterID, got.RenterID)
	})

	t.Run("validation rejects a short name", func(t *testing.T) {
		repo, _, _, _ := newTestRepository()
		svc := NewCarProviderService(repo, testLogger())

		_, err := svc.CreateCarProvider(ctx, uuid.New(), entity.RoleRenter, &request.CreateCarProviderRequest{
			Name:    "A",
			Address: "99 Silom Rd",
			Tel:     "0823456789",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})
}

func TestListCarProviders(t *testing.T) {
	ctx := context.Background()
	repo, _, providers, _ := newTestRepository()
	svc := NewCarProviderService(repo, testLogger())

	renterID := uuid.New()
	for i := 0; i < 12; i++ {
		seedProvider(providers, renterID, entity.CarProviderAvailable)
	}

	t.Run("first page", func(t *testing.T) {
		got, err := svc.ListCarProviders(ctx, &request.PaginatedRequest{Page: 1, PerPage: 10})
		require.NoError(t, err)
		assert.Len(t, got.Data, 10)
		assert.Equal(t, int64(12), got.Pagination.Total)
		assert.Equal(t, 2, got.Pagination.TotalPages)
	})

	t.Run("last page holds the remainder", func(t *testing.T) {
		got, err := svc.ListCarProviders(ctx, &request.PaginatedRequest{Page: 2, PerPage: 10})
		require.NoError(t, err)
		assert.Len(t, got.Data, 2)
	})
}

func TestUpdateCarProvider(t *testing.T) {
	ctx := context.Background()
	repo, _, providers, _ := newTestRepository()
	svc := NewCarProviderService(repo, testLogger())
	provider := seedProvider(providers, uuid.New(), entity.CarProviderAvailable)

	t.Run("patches only the supplied fields", func(t *testing.T) {
		name := "Budget Asok"
		status := "rented"
		got, err := svc.UpdateCarProvider(ctx, provider.ID.String(), &request.UpdateCarProviderRequest{
			Name:   &name,
			Status: &status,
		})
		require.NoError(t, err)
		assert.Equal(t, "Budget Asok", got.Name)
		assert.Equal(t, entity.CarProviderRented, got.Status)
		assert.Equal(t, "123 Sukhumvit Rd", got.Address)
	})

	t.Run("unknown provider", func(t *testing.T) {
		name := "Budget Asok"
		_, err := svc.UpdateCarProvider(ctx, uuid.NewString(), &request.UpdateCarProviderRequest{Name: &name})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestDeleteCarProvider(t *testing.T) {
	ctx := context.Background()
	repo, _, providers, _ := newTestRepository()
	svc := NewCarProviderService(repo, testLogger())
	provider := seedProvider(providers, uuid.New(), entity.CarProviderAvailable)

	require.NoError(t, svc.DeleteCarProvider(ctx, provider.ID.String()))
	assert.Empty(t, providers.providers)

	err := svc.DeleteCarProvider(ctx, provider.ID.String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLikeCarProvider(t *testing.T) {
	ctx := context.Background()
	repo, _, providers, _ := newTestRepository()
	svc := NewCarProviderService(repo, testLogger())
	provider := seedProvider(providers, uuid.New(), entity.CarProviderAvailable)
	userID := uuid.New()

	liked, err := svc.LikeCarProvider(ctx, provider.ID.String(), userID)
	require.NoError(t, err)
	assert.True(t, liked)

	// Second call toggles the like away again
	liked, err = svc.LikeCarProvider(ctx, provider.ID.String(), userID)
	require.NoError(t, err)
	assert.False(t, liked)

	_, err = svc.LikeCarProvider(ctx, uuid.NewString(), userID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGetTopSales(t *testing.T) {
	ctx := context.Background()
	repo, _, providers, _ := newTestRepository()
	svc := NewCarProviderService(repo, testLogger())

	renterID := uuid.New()
	for i := 0; i < 7; i++ {
		p := seedProvider(providers, renterID, entity.CarProviderRented)
		providers.topSales = append(providers.topSales, &repository.TopSale{
			Provider: *p,
			Bookings: int64(10 - i),
		})
	}

	got, err := svc.GetTopSales(ctx)
	require.NoError(t, err)
	require.Len(t, got, 5)
	assert.Equal(t, int64(10), got[0].Bookings)
	assert.Equal(t, int64(6), got[4].Bookings)
}

func TestGetRenterCars(t *testing.T) {
	ctx := context.Background()
	repo, _, providers, _ := newTestRepository()
	svc := NewCarProviderService(repo, testLogger())

	renterID := uuid.New()
	seedProvider(providers, renterID, entity.CarProviderAvailable)
	seedProvider(providers, renterID, entity.CarProviderRented)
	seedProvider(providers, uuid.New(), entity.CarProviderAvailable)

	got, err := svc.GetRenterCars(ctx, renterID.String())
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = svc.GetRenterCars(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.Empty(t, got)
}
