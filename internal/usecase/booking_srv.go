package usecase

import (
	"context"
	"fmt"
	"time"

	"car-rental/internal/data/entity"
	"car-rental/internal/data/repository"
	"car-rental/internal/dto/request"
	"car-rental/internal/dto/response"
	"car-rental/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxUserBookings is the quota for non-admin callers. Admins are exempt.
const maxUserBookings = 3

type BookingService interface {
	// ListBookings returns every booking for admins and only the caller's own
	// bookings otherwise. carProviderID optionally scopes the result for any
	// caller.
	ListBookings(ctx context.Context, userID uuid.UUID, role entity.UserRole, carProviderID *string) ([]response.BookingResponse, error)
	GetBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	GetBookingStatus(ctx context.Context, bookingID string) (entity.BookingStatus, error)
	AddBooking(ctx context.Context, carProviderID string, userID uuid.UUID, role entity.UserRole, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	UpdateBooking(ctx context.Context, bookingID string, userID uuid.UUID, role entity.UserRole, req *request.UpdateBookingRequest) (*response.BookingResponse, error)
	// UpdateBookingStatus relabels the booking with any declared status.
	// There is deliberately no transition table: returned -> rented is legal.
	UpdateBookingStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) (entity.BookingStatus, error)
	DeleteBooking(ctx context.Context, bookingID string, userID uuid.UUID, role entity.UserRole) error
	// GetRenterBookings returns the bookings whose car provider belongs to the
	// given renter. Filtering happens after fetching every booking, so cost is
	// proportional to the total booking count.
	GetRenterBookings(ctx context.Context, renterID string) ([]response.BookingResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) ListBookings(ctx context.Context, userID uuid.UUID, role entity.UserRole, carProviderID *string) ([]response.BookingResponse, error) {
	var providerUUID *uuid.UUID
	if carProviderID != nil {
		id, err := uuid.Parse(*carProviderID)
		if err != nil {
			return nil, fmt.Errorf("invalid car provider ID format %s: %w", *carProviderID, err)
		}
		providerUUID = &id
	}

	var bookings []*entity.Booking
	var err error

	if role == entity.RoleAdmin {
		if providerUUID != nil {
			bookings, err = s.repo.Booking.FindByCarProviderID(ctx, *providerUUID)
		} else {
			bookings, err = s.repo.Booking.FindAll(ctx)
		}
	} else {
		if providerUUID != nil {
			bookings, err = s.repo.Booking.FindByUserAndProvider(ctx, userID, *providerUUID)
		} else {
			bookings, err = s.repo.Booking.FindByUserID(ctx, userID)
		}
	}

	if err != nil {
		s.log.Error("Failed to list bookings",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("role", string(role)),
		)
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	responses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		// Bookings whose provider no longer resolves keep an empty projection
		provider, _ := s.repo.CarProvider.FindByID(ctx, booking.CarProviderID)
		responses[i] = response.BookingToResponse(booking, provider)
	}

	s.log.Info("Bookings listed",
		zap.String("user_id", userID.String()),
		zap.String("role", string(role)),
		zap.Int("count", len(responses)),
	)

	return responses, nil
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	provider, _ := s.repo.CarProvider.FindByID(ctx, booking.CarProviderID)

	resp := response.BookingToResponse(booking, provider)
	return &resp, nil
}

func (s *bookingService) GetBookingStatus(ctx context.Context, bookingID string) (entity.BookingStatus, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return "", fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("get booking status: %w", err)
	}
	if booking == nil {
		return "", fmt.Errorf("booking %s not found", bookingID)
	}

	return booking.Status, nil
}

func (s *bookingService) AddBooking(ctx context.Context, carProviderID string, userID uuid.UUID, role entity.UserRole, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	providerID, err := uuid.Parse(carProviderID)
	if err != nil {
		return nil, fmt.Errorf("invalid car provider ID format %s: %w", carProviderID, err)
	}

	if !req.ReturnDate.After(req.PickupDate) {
		return nil, fmt.Errorf("invalid date range: return date must be after pickup date")
	}

	// 1. Provider must exist
	provider, err := s.repo.CarProvider.FindByID(ctx, providerID)
	if err != nil {
		s.log.Error("Failed to check car provider", zap.Error(err), zap.String("car_provider_id", carProviderID))
		return nil, fmt.Errorf("check car provider: %w", err)
	}
	if provider == nil {
		return nil, fmt.Errorf("car provider %s not found", carProviderID)
	}

	// 2. Provider must be available
	if provider.Status != entity.CarProviderAvailable {
		return nil, fmt.Errorf("car provider %s is not available for booking", carProviderID)
	}

	// 3. Quota: non-admins may hold at most 3 bookings
	count, err := s.repo.Booking.CountByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to count user bookings", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("count user bookings: %w", err)
	}
	if count >= maxUserBookings && role != entity.RoleAdmin {
		return nil, fmt.Errorf("user %s has already booked %d cars", userID.String(), maxUserBookings)
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:        userID,
		CarProviderID: providerID,
		PickupDate:    req.PickupDate,
		ReturnDate:    req.ReturnDate,
		Status:        entity.BookingStatusRented,
	}

	// Booking insert and provider status flip commit together
	if err := s.repo.Booking.CreateAndRentProvider(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("car_provider_id", carProviderID),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("car_provider_id", carProviderID),
	)

	provider.Status = entity.CarProviderRented
	resp := response.BookingToResponse(booking, provider)
	return &resp, nil
}

func (s *bookingService) UpdateBooking(ctx context.Context, bookingID string, userID uuid.UUID, role entity.UserRole, req *request.UpdateBookingRequest) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	if booking.UserID != userID && role != entity.RoleAdmin {
		return nil, fmt.Errorf("user %s is not authorized to update this booking", userID.String())
	}

	if req.PickupDate != nil {
		booking.PickupDate = *req.PickupDate
	}
	if req.ReturnDate != nil {
		booking.ReturnDate = *req.ReturnDate
	}
	if !booking.ReturnDate.After(booking.PickupDate) {
		return nil, fmt.Errorf("invalid date range: return date must be after pickup date")
	}
	booking.UpdatedAt = time.Now()

	if err := s.repo.Booking.Update(ctx, booking); err != nil {
		s.log.Error("Failed to update booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("update booking: %w", err)
	}

	s.log.Info("Booking updated",
		zap.String("booking_id", bookingID),
		zap.String("user_id", userID.String()),
	)

	provider, _ := s.repo.CarProvider.FindByID(ctx, booking.CarProviderID)

	resp := response.BookingToResponse(booking, provider)
	return &resp, nil
}

func (s *bookingService) UpdateBookingStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) (entity.BookingStatus, error) {
	// Status value is checked before any lookup
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update booking status validation failed", zap.Any("errors", errs))
		return "", fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return "", fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return "", fmt.Errorf("booking %s not found", bookingID)
	}

	status := entity.BookingStatus(req.Status)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid booking status %s", req.Status)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, status); err != nil {
		s.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID),
			zap.String("status", req.Status),
		)
		return "", fmt.Errorf("update booking status: %w", err)
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID),
		zap.String("status", req.Status),
	)

	return status, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, bookingID string, userID uuid.UUID, role entity.UserRole) error {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return fmt.Errorf("booking %s not found", bookingID)
	}

	if booking.UserID != userID && role != entity.RoleAdmin {
		return fmt.Errorf("user %s is not authorized to delete this booking", userID.String())
	}

	// The provider keeps its rented status; delete has no side effect on it
	if err := s.repo.Booking.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete booking", zap.Error(err), zap.String("booking_id", bookingID))
		return fmt.Errorf("delete booking: %w", err)
	}

	s.log.Info("Booking deleted",
		zap.String("booking_id", bookingID),
		zap.String("user_id", userID.String()),
	)

	return nil
}

func (s *bookingService) GetRenterBookings(ctx context.Context, renterID string) ([]response.BookingResponse, error) {
	renterUUID, err := uuid.Parse(renterID)
	if err != nil {
		return nil, fmt.Errorf("invalid renter ID format %s: %w", renterID, err)
	}

	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to fetch bookings for renter view", zap.Error(err), zap.String("renter_id", renterID))
		return nil, fmt.Errorf("fetch bookings: %w", err)
	}

	// Resolve each provider and keep only the renter's bookings
	var responses []response.BookingResponse
	for _, booking := range bookings {
		provider, _ := s.repo.CarProvider.FindByID(ctx, booking.CarProviderID)
		if provider == nil || provider.RenterID != renterUUID {
			continue
		}

		resp := response.BookingToResponse(booking, nil)
		resp.CarProvider = &response.CarProviderSummary{Name: provider.Name}
		responses = append(responses, resp)
	}

	s.log.Info("Renter bookings retrieved",
		zap.String("renter_id", renterID),
		zap.Int("count", len(responses)),
	)

	return responses, nil
}
