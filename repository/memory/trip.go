package memory

import (
	"context"
	"sort"

	"github.com/LovationAdmin/holiday-api/models"
	"github.com/LovationAdmin/holiday-api/repository"

	"github.com/google/uuid"
)

type tripRepository struct {
	*db
}

func (r *tripRepository) Create(_ context.Context, trip *models.Trip) (*models.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *trip
	if stored.ID == "" {
		stored.ID = uuid.New().String()
	}
	stored.CreatedAt = r.now()
	r.trips[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *tripRepository) GetByID(_ context.Context, id string) (*models.Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.trips[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *t
	return &out, nil
}

func (r *tripRepository) List(_ context.Context) ([]*models.Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	trips := make([]*models.Trip, 0, len(r.trips))
	for _, t := range r.trips {
		out := *t
		trips = append(trips, &out)
	}
	sort.Slice(trips, func(i, j int) bool {
		if trips[i].StartDate != trips[j].StartDate {
			return trips[i].StartDate < trips[j].StartDate
		}
		return trips[i].CreatedAt.Before(trips[j].CreatedAt)
	})
	return trips, nil
}

func (r *tripRepository) Update(_ context.Context, trip *models.Trip) (*models.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.trips[trip.ID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	t.Destination = trip.Destination
	t.StartDate = trip.StartDate
	t.EndDate = trip.EndDate
	t.Travelers = trip.Travelers

	out := *t
	return &out, nil
}

// Delete cascades to everything scoped to the trip.
func (r *tripRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.trips, id)
	for itemID, item := range r.items {
		if item.TripID == id {
			delete(r.items, itemID)
		}
	}
	for activityID, row := range r.activities {
		if row.activity.TripID == id {
			r.deleteActivity(activityID)
		}
	}
	for hotelID, h := range r.hotels {
		if h.TripID == id {
			delete(r.hotels, hotelID)
		}
	}
	for flightID, f := range r.flights {
		if f.TripID == id {
			delete(r.flights, flightID)
		}
	}
	return nil
}

func (r *tripRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.trips), nil
}
