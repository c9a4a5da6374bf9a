package repository

import (
	"context"
	"fmt"

	"car-rental/internal/data/entity"
	"car-rental/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// TopSale pairs a car provider with how many bookings it has accumulated.
type TopSale struct {
	Provider entity.CarProvider
	Bookings int64
}

type CarProviderRepository interface {
	Create(ctx context.Context, provider *entity.CarProvider) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CarProvider, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.CarProvider, error)
	CountAll(ctx context.Context) (int64, error)
	FindByRenterID(ctx context.Context, renterID uuid.UUID) ([]*entity.CarProvider, error)
	Update(ctx context.Context, provider *entity.CarProvider) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.CarProviderStatus) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Likes (toggled per user)
	HasLike(ctx context.Context, userID, providerID uuid.UUID) (bool, error)
	AddLike(ctx context.Context, userID, providerID uuid.UUID) error
	RemoveLike(ctx context.Context, userID, providerID uuid.UUID) error
	CountLikes(ctx context.Context, providerID uuid.UUID) (int64, error)

	// Business queries
	FindTopByBookings(ctx context.Context, limit int) ([]*TopSale, error)
}

type carProviderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCarProviderRepository(db database.PgxIface, log *zap.Logger) CarProviderRepository {
	return &carProviderRepository{
		db:  db,
		log: log.With(zap.String("repository", "car_provider")),
	}
}

const carProviderColumns = `id, renter_id, name, address, tel, picture, status, created_at, updated_at`

func scanCarProvider(row pgx.Row) (*entity.CarProvider, error) {
	var provider entity.CarProvider
	err := row.Scan(
		&provider.ID,
		&provider.RenterID,
		&provider.Name,
		&provider.Address,
		&provider.Tel,
		&provider.Picture,
		&provider.Status,
		&provider.CreatedAt,
		&provider.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &provider, nil
}

func (r *carProviderRepository) Create(ctx context.Context, provider *entity.CarProvider) error {
	query := `
		INSERT INTO car_providers (id, renter_id, name, address, tel, picture, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		provider.ID,
		provider.RenterID,
		provider.Name,
		provider.Address,
		provider.Tel,
		provider.Picture,
		provider.Status,
		provider.CreatedAt,
		provider.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create car provider",
			zap.Error(err),
			zap.String("name", provider.Name),
		)
		return fmt.Errorf("create car provider %s: %w", provider.Name, err)
	}

	return nil
}

func (r *carProviderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CarProvider, error) {
	query := `SELECT ` + carProviderColumns + ` FROM car_providers WHERE id = $1`

	provider, err := scanCarProvider(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find car provider by ID",
			zap.Error(err),
			zap.String("car_provider_id", id.String()),
		)
		return nil, fmt.Errorf("find car provider by ID %s: %w", id.String(), err)
	}

	return provider, nil
}

func (r *carProviderRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.CarProvider, error) {
	query := `
		SELECT ` + carProviderColumns + `
		FROM car_providers
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list car providers", zap.Error(err))
		return nil, fmt.Errorf("list car providers: %w", err)
	}
	defer rows.Close()

	var providers []*entity.CarProvider
	for rows.Next() {
		provider, err := scanCarProvider(rows)
		if err != nil {
			r.log.Error("Failed to scan car provider row", zap.Error(err))
			return nil, fmt.Errorf("scan car provider row: %w", err)
		}
		providers = append(providers, provider)
	}

	return providers, nil
}

func (r *carProviderRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM car_providers`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count car providers", zap.Error(err))
		return 0, fmt.Errorf("count car providers: %w", err)
	}

	return count, nil
}

func (r *carProviderRepository) FindByRenterID(ctx context.Context, renterID uuid.UUID) ([]*entity.CarProvider, error) {
	query := `
		SELECT ` + carProviderColumns + `
		FROM car_providers
		WHERE renter_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, renterID)
	if err != nil {
		r.log.Error("Failed to find car providers by renter ID",
			zap.Error(err),
			zap.String("renter_id", renterID.String()),
		)
		return nil, fmt.Errorf("find car providers by renter ID %s: %w", renterID.String(), err)
	}
	defer rows.Close()

	var providers []*entity.CarProvider
	for rows.Next() {
		provider, err := scanCarProvider(rows)
		if err != nil {
			r.log.Error("Failed to scan car provider row", zap.Error(err))
			return nil, fmt.Errorf("scan car provider row: %w", err)
		}
		providers = append(providers, provider)
	}

	return providers, nil
}

func (r *carProviderRepository) Update(ctx context.Context, provider *entity.CarProvider) error {
	query := `
		UPDATE car_providers
		SET renter_id = $2, name = $3, address = $4, tel = $5,
		    picture = $6, status = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		provider.ID,
		provider.RenterID,
		provider.Name,
		provider.Address,
		provider.Tel,
		provider.Picture,
		provider.Status,
		provider.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update car provider",
			zap.Error(err),
			zap.String("car_provider_id", provider.ID.String()),
		)
		return fmt.Errorf("update car provider %s: %w", provider.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("car provider %s not found", provider.ID.String())
	}

	return nil
}

func (r *carProviderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.CarProviderStatus) error {
	query := `UPDATE car_providers SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update car provider status",
			zap.Error(err),
			zap.String("car_provider_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update car provider %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("car provider %s not found", id.String())
	}

	return nil
}

func (r *carProviderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM car_providers WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete car provider",
			zap.Error(err),
			zap.String("car_provider_id", id.String()),
		)
		return fmt.Errorf("delete car provider %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("car provider %s not found", id.String())
	}

	r.log.Info("Car provider deleted", zap.String("car_provider_id", id.String()))
	return nil
}

func (r *carProviderRepository) HasLike(ctx context.Context, userID, providerID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM car_provider_likes WHERE user_id = $1 AND car_provider_id = $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, providerID).Scan(&exists); err != nil {
		r.log.Error("Failed to check like",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("car_provider_id", providerID.String()),
		)
		return false, fmt.Errorf("check like for car provider %s: %w", providerID.String(), err)
	}

	return exists, nil
}

func (r *carProviderRepository) AddLike(ctx context.Context, userID, providerID uuid.UUID) error {
	query := `
		INSERT INTO car_provider_likes (user_id, car_provider_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, car_provider_id) DO NOTHING
	`

	if _, err := r.db.Exec(ctx, query, userID, providerID); err != nil {
		r.log.Error("Failed to add like",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("car_provider_id", providerID.String()),
		)
		return fmt.Errorf("like car provider %s: %w", providerID.String(), err)
	}

	return nil
}

func (r *carProviderRepository) RemoveLike(ctx context.Context, userID, providerID uuid.UUID) error {
	query := `DELETE FROM car_provider_likes WHERE user_id = $1 AND car_provider_id = $2`

	if _, err := r.db.Exec(ctx, query, userID, providerID); err != nil {
		r.log.Error("Failed to remove like",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("car_provider_id", providerID.String()),
		)
		return fmt.Errorf("unlike car provider %s: %w", providerID.String(), err)
	}

	return nil
}

func (r *carProviderRepository) CountLikes(ctx context.Context, providerID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM car_provider_likes WHERE car_provider_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, providerID).Scan(&count); err != nil {
		r.log.Error("Failed to count likes",
			zap.Error(err),
			zap.String("car_provider_id", providerID.String()),
		)
		return 0, fmt.Errorf("count likes for car provider %s: %w", providerID.String(), err)
	}

	return count, nil
}

func (r *carProviderRepository) FindTopByBookings(ctx context.Context, limit int) ([]*TopSale, error) {
	query := `
		SELECT cp.id, cp.renter_id, cp.name, cp.address, cp.tel, cp.picture, cp.status,
		       cp.created_at, cp.updated_at, COUNT(b.id) AS bookings
		FROM car_providers cp
		LEFT JOIN bookings b ON b.car_provider_id = cp.id
		GROUP BY cp.id
		ORDER BY bookings DESC, cp.created_at
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to query top sales", zap.Error(err))
		return nil, fmt.Errorf("query top sales: %w", err)
	}
	defer rows.Close()

	var sales []*TopSale
	for rows.Next() {
		var sale TopSale
		err := rows.Scan(
			&sale.Provider.ID,
			&sale.Provider.RenterID,
			&sale.Provider.Name,
			&sale.Provider.Address,
			&sale.Provider.Tel,
			&sale.Provider.Picture,
			&sale.Provider.Status,
			&sale.Provider.CreatedAt,
			&sale.Provider.UpdatedAt,
			&sale.Bookings,
		)
		if err != nil {
			r.log.Error("Failed to scan top sale row", zap.Error(err))
			return nil, fmt.Errorf("scan top sale row: %w", err)
		}
		sales = append(sales, &sale)
	}

	return sales, nil
}
