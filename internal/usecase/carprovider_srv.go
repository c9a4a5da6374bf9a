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

const topSalesLimit = 5

type CarProviderService interface {
	ListCarProviders(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CarProviderResponse], error)
	GetCarProvider(ctx context.Context, providerID string) (*response.CarProviderResponse, error)
	CreateCarProvider(ctx context.Context, callerID uuid.UUID, role entity.UserRole, req *request.CreateCarProviderRequest) (*response.CarProviderResponse, error)
	UpdateCarProvider(ctx context.Context, providerID string, req *request.UpdateCarProviderRequest) (*response.CarProviderResponse, error)
	DeleteCarProvider(ctx context.Context, providerID string) error
	// LikeCarProvider toggles the caller's like and reports the new state.
	LikeCarProvider(ctx context.Context, providerID string, userID uuid.UUID) (bool, error)
	GetTopSales(ctx context.Context) ([]response.TopSaleResponse, error)
	GetRenterCars(ctx context.Context, renterID string) ([]response.CarProviderResponse, error)
}

type carProviderService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCarProviderService(repo *repository.Repository, log *zap.Logger) CarProviderService {
	return &carProviderService{
		repo: repo,
		log:  log.With(zap.String("service", "car_provider")),
	}
}

func (s *carProviderService) ListCarProviders(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CarProviderResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	providers, err := s.repo.CarProvider.FindAll(ctx, limit, offset)
	if err != nil {
		s.log.Error("Failed to list car providers", zap.Error(err))
		return nil, fmt.Errorf("list car providers: %w", err)
	}

	total, err := s.repo.CarProvider.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count car providers", zap.Error(err))
		return nil, fmt.Errorf("count car providers: %w", err)
	}

	responses := make([]response.CarProviderResponse, len(providers))
	for i, provider := range providers {
		likes, _ := s.repo.CarProvider.CountLikes(ctx, provider.ID)
		responses[i] = response.CarProviderToResponse(provider, likes)
	}

	return response.NewPaginatedResponse(responses, req.Page, req.PerPage, total), nil
}

func (s *carProviderService) GetCarProvider(ctx context.Context, providerID string) (*response.CarProviderResponse, error) {
	id, err := uuid.Parse(providerID)
	if err != nil {
		return nil, fmt.Errorf("invalid car provider ID format %s: %w", providerID, err)
	}

	provider, err := s.repo.CarProvider.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get car provider: %w", err)
	}
	if provider == nil {
		return nil, fmt.Errorf("car provider %s not found", providerID)
	}

	likes, _ := s.repo.CarProvider.CountLikes(ctx, provider.ID)

	resp := response.CarProviderToResponse(provider, likes)
	return &resp, nil
}

func (s *carProviderService) CreateCarProvider(ctx context.Context, callerID uuid.UUID, role entity.UserRole, req *request.CreateCarProviderRequest) (*response.CarProviderResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create car provider validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Renters always own what they create; admins may create on behalf of a renter
	renterID := callerID
	if role == entity.RoleAdmin && req.RenterID != nil {
		id, err := uuid.Parse(*req.RenterID)
		if err != nil {
			return nil, fmt.Errorf("invalid renter ID format %s: %w", *req.RenterID, err)
		}
		renterID = id
	}

	now := time.Now()
	provider := &entity.CarProvider{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		RenterID: renterID,
		Name:     req.Name,
		Address:  req.Address,
		Tel:      req.Tel,
		Picture:  req.Picture,
		Status:   entity.CarProviderAvailable,
	}

	if err := s.repo.CarProvider.Create(ctx, provider); err != nil {
		s.log.Error("Failed to create car provider", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create car provider: %w", err)
	}

	s.log.Info("Car provider created",
		zap.String("car_provider_id", provider.ID.String()),
		zap.String("renter_id", renterID.String()),
		zap.String("name", provider.Name),
	)

	resp := response.CarProviderToResponse(provider, 0)
	return &resp, nil
}

func (s *carProviderService) UpdateCarProvider(ctx context.Context, providerID string, req *request.UpdateCarProviderRequest) (*response.CarProviderResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update car provider validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(providerID)
	if err != nil {
		return nil, fmt.Errorf("invalid car provider ID format %s: %w", providerID, err)
	}

	provider, err := s.repo.CarProvider.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get car provider: %w", err)
	}
	if provider == nil {
		return nil, fmt.Errorf("car provider %s not found", providerID)
	}

	if req.Name != nil {
		provider.Name = *req.Name
	}
	if req.Address != nil {
		provider.Address = *req.Address
	}
	if req.Tel != nil {
		provider.Tel = *req.Tel
	}
	if req.Picture != nil {
		provider.Picture = *req.Picture
	}
	if req.Status != nil {
		provider.Status = entity.CarProviderStatus(*req.Status)
	}
	provider.UpdatedAt = time.Now()

	if err := s.repo.CarProvider.Update(ctx, provider); err != nil {
		s.log.Error("Failed to update car provider", zap.Error(err), zap.String("car_provider_id", providerID))
		return nil, fmt.Errorf("update car provider: %w", err)
	}

	s.log.Info("Car provider updated", zap.String("car_provider_id", providerID))

	likes, _ := s.repo.CarProvider.CountLikes(ctx, provider.ID)

	resp := response.CarProviderToResponse(provider, likes)
	return &resp, nil
}

func (s *carProviderService) DeleteCarProvider(ctx context.Context, providerID string) error {
	id, err := uuid.Parse(providerID)
	if err != nil {
		return fmt.Errorf("invalid car provider ID format %s: %w", providerID, err)
	}

	provider, err := s.repo.CarProvider.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get car provider: %w", err)
	}
	if provider == nil {
		return fmt.Errorf("car provider %s not found", providerID)
	}

	if err := s.repo.CarProvider.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete car provider", zap.Error(err), zap.String("car_provider_id", providerID))
		return fmt.Errorf("delete car provider: %w", err)
	}

	return nil
}

func (s *carProviderService) LikeCarProvider(ctx context.Context, providerID string, userID uuid.UUID) (bool, error) {
	id, err := uuid.Parse(providerID)
	if err != nil {
		return false, fmt.Errorf("invalid car provider ID format %s: %w", providerID, err)
	}

	provider, err := s.repo.CarProvider.FindByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("get car provider: %w", err)
	}
	if provider == nil {
		return false, fmt.Errorf("car provider %s not found", providerID)
	}

	liked, err := s.repo.CarProvider.HasLike(ctx, userID, id)
	if err != nil {
		return false, fmt.Errorf("check like: %w", err)
	}

	if liked {
		if err := s.repo.CarProvider.RemoveLike(ctx, userID, id); err != nil {
			return false, fmt.Errorf("remove like: %w", err)
		}
	} else {
		if err := s.repo.CarProvider.AddLike(ctx, userID, id); err != nil {
			return false, fmt.Errorf("add like: %w", err)
		}
	}

	s.log.Info("Car provider like toggled",
		zap.String("car_provider_id", providerID),
		zap.String("user_id", userID.String()),
		zap.Bool("liked", !liked),
	)

	return !liked, nil
}

func (s *carProviderService) GetTopSales(ctx context.Context) ([]response.TopSaleResponse, error) {
	sales, err := s.repo.CarProvider.FindTopByBookings(ctx, topSalesLimit)
	if err != nil {
		s.log.Error("Failed to get top sales", zap.Error(err))
		return nil, fmt.Errorf("get top sales: %w", err)
	}

	responses := make([]response.TopSaleResponse, len(sales))
	for i, sale := range sales {
		likes, _ := s.repo.CarProvider.CountLikes(ctx, sale.Provider.ID)
		responses[i] = response.TopSaleResponse{
			CarProviderResponse: response.CarProviderToResponse(&sale.Provider, likes),
			Bookings:            sale.Bookings,
		}
	}

	return responses, nil
}

func (s *carProviderService) GetRenterCars(ctx context.Context, renterID string) ([]response.CarProviderResponse, error) {
	id, err := uuid.Parse(renterID)
	if err != nil {
		return nil, fmt.Errorf("invalid renter ID format %s: %w", renterID, err)
	}

	providers, err := s.repo.CarProvider.FindByRenterID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get renter cars", zap.Error(err), zap.String("renter_id", renterID))
		return nil, fmt.Errorf("get renter cars: %w", err)
	}

	responses := make([]response.CarProviderResponse, len(providers))
	for i, provider := range providers {
		likes, _ := s.repo.CarProvider.CountLikes(ctx, provider.ID)
		responses[i] = response.CarProviderToResponse(provider, likes)
	}

	return responses, nil
}
