package memory

import (
	"context"
	"sort"

	"github.com/LovationAdmin/holiday-api/models"
	"github.com/LovationAdmin/holiday-api/repository"

	"github.com/google/uuid"
)

type itineraryRepository struct {
	*db
}

func (r *itineraryRepository) Create(_ context.Context, item *models.ItineraryItem) (*models.ItineraryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *item
	if stored.ID == "" {
		stored.ID = uuid.New().String()
	}
	r.items[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *itineraryRepository) GetByID(_ context.Context, id string) (*models.ItineraryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *item
	return &out, nil
}

func (r *itineraryRepository) ListByTrip(_ context.Context, tripID string) ([]*models.ItineraryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := []*models.ItineraryItem{}
	for _, item := range r.items {
		if item.TripID == tripID {
			out := *item
			items = append(items, &out)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Day != items[j].Day {
			return items[i].Day < items[j].Day
		}
		if items[i].Time != items[j].Time {
			return items[i].Time < items[j].Time
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func (r *itineraryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}
