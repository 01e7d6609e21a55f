package postgres

import (
	"context"
	"fmt"

	"github.com/LovationAdmin/holiday-api/models"
	"github.com/LovationAdmin/holiday-api/repository"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type itineraryRepository struct {
	db *sqlx.DB
}

func NewItineraryRepository(db *sqlx.DB) repository.ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) Create(ctx context.Context, item *models.ItineraryItem) (*models.ItineraryItem, error) {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	query := `INSERT INTO itinerary_items (id, trip_id, day, time, activity, location, cost_eur, notes)
		VALUES (:id, :trip_id, :day, :time, :activity, :location, :cost_eur, :notes)`
	if _, err := r.db.NamedExecContext(ctx, query, item); err != nil {
		return nil, fmt.Errorf("failed to create itinerary item: %w", err)
	}
	return item, nil
}

const itineraryColumns = `id, trip_id, day, time, activity, location, cost_eur, notes`

func (r *itineraryRepository) GetByID(ctx context.Context, id string) (*models.ItineraryItem, error) {
	var item models.ItineraryItem
	query := `SELECT ` + itineraryColumns + ` FROM itinerary_items WHERE id = $1`
	if err := r.db.GetContext(ctx, &item, query, id); err != nil {
		return nil, notFound(err)
	}
	return &item, nil
}

func (r *itineraryRepository) ListByTrip(ctx context.Context, tripID string) ([]*models.ItineraryItem, error) {
	items := []*models.ItineraryItem{}
	query := `SELECT ` + itineraryColumns + ` FROM itinerary_items WHERE trip_id = $1
		ORDER BY day ASC, time ASC`
	if err := r.db.SelectContext(ctx, &items, query, tripID); err != nil {
		return nil, fmt.Errorf("failed to list itinerary: %w", err)
	}
	return items, nil
}

func (r *itineraryRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM itinerary_items WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete itinerary item: %w", err)
	}
	return nil
}
