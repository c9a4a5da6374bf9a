package usecase

import (
	"context"
	"fmt"
	"time"

	"car-rental/internal/data/entity"
	"car-rental/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory repositories backing the service tests. Slices keep insertion
// order so list assertions stay deterministic.

type fakeUserRepo struct {
	users []*entity.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, u := range f.users {
		if u.ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("user %s not found", id.String())
}

type likeKey struct {
	userID     uuid.UUID
	providerID uuid.UUID
}

type fakeCarProviderRepo struct {
	providers []*entity.CarProvider
	likes     map[likeKey]bool
	topSales  []*repository.TopSale
}

func newFakeCarProviderRepo() *fakeCarProviderRepo {
	return &fakeCarProviderRepo{likes: make(map[likeKey]bool)}
}

func (f *fakeCarProviderRepo) Create(_ context.Context, provider *entity.CarProvider) error {
	f.providers = append(f.providers, provider)
	return nil
}

func (f *fakeCarProviderRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.CarProvider, error) {
	for _, p := range f.providers {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeCarProviderRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.CarProvider, error) {
	if offset >= len(f.providers) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.providers) {
		end = len(f.providers)
	}
	return f.providers[offset:end], nil
}

func (f *fakeCarProviderRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.providers)), nil
}

func (f *fakeCarProviderRepo) FindByRenterID(_ context.Context, renterID uuid.UUID) ([]*entity.CarProvider, error) {
	var out []*entity.CarProvider
	for _, p := range f.providers {
		if p.RenterID == renterID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeCarProviderRepo) Update(_ context.Context, provider *entity.CarProvider) error {
	for i, p := range f.providers {
		if p.ID == provider.ID {
			f.providers[i] = provider
			return nil
		}
	}
	return fmt.Errorf("car provider %s not found", provider.ID.String())
}

func (f *fakeCarProviderRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.CarProviderStatus) error {
	for _, p := range f.providers {
		if p.ID == id {
			p.Status = status
			return nil
		}
	}
	return fmt.Errorf("car provider %s not found", id.String())
}

func (f *fakeCarProviderRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, p := range f.providers {
		if p.ID == id {
			f.providers = append(f.providers[:i], f.providers[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("car provider %s not found", id.String())
}

func (f *fakeCarProviderRepo) HasLike(_ context.Context, userID, providerID uuid.UUID) (bool, error) {
	return f.likes[likeKey{userID, providerID}], nil
}

func (f *fakeCarProviderRepo) AddLike(_ context.Context, userID, providerID uuid.UUID) error {
	f.likes[likeKey{userID, providerID}] = true
	return nil
}

func (f *fakeCarProviderRepo) RemoveLike(_ context.Context, userID, providerID uuid.UUID) error {
	delete(f.likes, likeKey{userID, providerID})
	return nil
}

func (f *fakeCarProviderRepo) CountLikes(_ context.Context, providerID uuid.UUID) (int64, error) {
	var n int64
	for k := range f.likes {
		if k.providerID == providerID {
			n++
		}
	}
	return n, nil
}

func (f *fakeCarProviderRepo) FindTopByBookings(_ context.Context, limit int) ([]*repository.TopSale, error) {
	if len(f.topSales) > limit {
		return f.topSales[:limit], nil
	}
	return f.topSales, nil
}

type fakeBookingRepo struct {
	bookings  []*entity.Booking
	providers *fakeCarProviderRepo
	createErr error
}

func (f *fakeBookingRepo) CreateAndRentProvider(ctx context.Context, booking *entity.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	provider, _ := f.providers.FindByID(ctx, booking.CarProviderID)
	if provider == nil {
		return fmt.Errorf("mark car provider %s rented: no rows affected", booking.CarProviderID.String())
	}
	f.bookings = append(f.bookings, booking)
	provider.Status = entity.CarProviderRented
	return nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) FindAll(_ context.Context) ([]*entity.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBookingRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) FindByCarProviderID(_ context.Context, carProviderID uuid.UUID) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.CarProviderID == carProviderID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) FindByUserAndProvider(_ context.Context, userID, carProviderID uuid.UUID) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.UserID == userID && b.CarProviderID == carProviderID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) CountByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for _, b := range f.bookings {
		if b.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (f *fakeBookingRepo) Update(_ context.Context, booking *entity.Booking) error {
	for i, b := range f.bookings {
		if b.ID == booking.ID {
			f.bookings[i] = booking
			return nil
		}
	}
	return fmt.Errorf("booking %s not found", booking.ID.String())
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	for _, b := range f.bookings {
		if b.ID == bookingID {
			b.Status = status
			return nil
		}
	}
	return fmt.Errorf("booking %s not found", bookingID.String())
}

func (f *fakeBookingRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, b := range f.bookings {
		if b.ID == id {
			f.bookings = append(f.bookings[:i], f.bookings[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("booking %s not found", id.String())
}

// newTestRepository wires the fakes into the aggregate the services expect.
func newTestRepository() (*repository.Repository, *fakeUserRepo, *fakeCarProviderRepo, *fakeBookingRepo) {
	users := &fakeUserRepo{}
	providers := newFakeCarProviderRepo()
	bookings := &fakeBookingRepo{providers: providers}

	repo := &repository.Repository{
		User:        users,
		CarProvider: providers,
		Booking:     bookings,
	}
	return repo, users, providers, bookings
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func seedProvider(providers *fakeCarProviderRepo, renterID uuid.UUID, status entity.CarProviderStatus) *entity.CarProvider {
	now := time.Now()
	provider := &entity.CarProvider{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		RenterID: renterID,
		Name:     "Hertz Sukhumvit",
		Address:  "123 Sukhumvit Rd",
		Tel:      "0812345678",
		Status:   status,
	}
	providers.providers = append(providers.providers, provider)
	return provider
}

func seedBooking(bookings *fakeBookingRepo, userID, carProviderID uuid.UUID, status entity.BookingStatus) *entity.Booking {
	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:        userID,
		CarProviderID: carProviderID,
		PickupDate:    now.Add(24 * time.Hour),
		ReturnDate:    now.Add(72 * time.Hour),
		Status:        status,
	}
	bookings.bookings = append(bookings.bookings, booking)
	return booking
}
