package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/LovationAdmin/holiday-api/models"
	"github.com/LovationAdmin/holiday-api/repository"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const tripColumns = `id, destination, start_date::text AS start_date, end_date::text AS end_date,
	travelers, COALESCE(created_by::text, '') AS created_by, created_at`

type tripRepository struct {
	db *sqlx.DB
}

func NewTripRepository(db *sqlx.DB) repository.TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) Create(ctx context.Context, trip *models.Trip) (*models.Trip, error) {
	if trip.ID == "" {
		trip.ID = uuid.New().String()
	}
	trip.CreatedAt = time.Now()

	query := `INSERT INTO trips (id, destination, start_date, end_date, travelers, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, '')::uuid, $7)`
	if _, err := r.db.ExecContext(ctx, query,
		trip.ID, trip.Destination, trip.StartDate, trip.EndDate, trip.Travelers, trip.CreatedBy, trip.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}
	return trip, nil
}

func (r *tripRepository) GetByID(ctx context.Context, id string) (*models.Trip, error) {
	var trip models.Trip
	if err := r.db.GetContext(ctx, &trip, `SELECT `+tripColumns+` FROM trips WHERE id = $1`, id); err != nil {
		return nil, notFound(err)
	}
	return &trip, nil
}

func (r *tripRepository) List(ctx context.Context) ([]*models.Trip, error) {
	trips := []*models.Trip{}
	if err := r.db.SelectContext(ctx, &trips, `SELECT `+tripColumns+` FROM trips ORDER BY start_date ASC`); err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	return trips, nil
}

func (r *tripRepository) Update(ctx context.Context, trip *models.Trip) (*models.Trip, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE trips SET destination = $1, start_date = $2, end_date = $3, travelers = $4
		WHERE id = $5`,
		trip.Destination, trip.StartDate, trip.EndDate, trip.Travelers, trip.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update trip: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return nil, repository.ErrNotFound
	}
	return r.GetByID(ctx, trip.ID)
}

// Delete removes the trip and, through ON DELETE CASCADE, everything scoped to it.
func (r *tripRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM trips WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	return nil
}

func (r *tripRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM trips`); err != nil {
		return 0, fmt.Errorf("failed to count trips: %w", err)
	}
	return n, nil
}
