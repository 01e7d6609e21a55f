package memory

import (
	"context"
	"sort"

	"github.com/LovationAdmin/holiday-api/models"
	"github.com/LovationAdmin/holiday-api/repository"

	"github.com/google/uuid"
)

type travelRepository struct {
	*db
}

func (r *travelRepository) CreateHotel(_ context.Context, hotel *models.HotelInfo) (*models.HotelInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *hotel
	if stored.ID == "" {
		stored.ID = uuid.New().String()
	}
	r.hotels[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *travelRepository) GetHotel(_ context.Context, id string) (*models.HotelInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.hotels[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *h
	return &out, nil
}

func (r *travelRepository) ListHotels(_ context.Context, tripID string) ([]*models.HotelInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	hotels := []*models.HotelInfo{}
	for _, h := range r.hotels {
		if h.TripID == tripID {
			out := *h
			hotels = append(hotels, &out)
		}
	}
	sort.Slice(hotels, func(i, j int) bool {
		if hotels[i].CheckIn != hotels[j].CheckIn {
			return hotels[i].CheckIn < hotels[j].CheckIn
		}
		return hotels[i].Name < hotels[j].Name
	})
	return hotels, nil
}

// UpdateHotel replaces the editable fields and keeps the trip link.
func (r *travelRepository) UpdateHotel(_ context.Context, hotel *models.HotelInfo) (*models.HotelInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.hotels[hotel.ID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	tripID := h.TripID
	*h = *hotel
	h.TripID = tripID

	out := *h
	return &out, nil
}

func (r *travelRepository) DeleteHotel(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.hotels, id)
	return nil
}

func (r *travelRepository) CreateFlight(_ context.Context, flight *models.FlightInfo) (*models.FlightInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *flight
	if stored.ID == "" {
		stored.ID = uuid.New().String()
	}
	r.flights[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *travelRepository) GetFlight(_ context.Context, id string) (*models.FlightInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.flights[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *f
	return &out, nil
}

func (r *travelRepository) ListFlights(_ context.Context, tripID string) ([]*models.FlightInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	flights := []*models.FlightInfo{}
	for _, f := range r.flights {
		if f.TripID == tripID {
			out := *f
			flights = append(flights, &out)
		}
	}
	sort.Slice(flights, func(i, j int) bool { return flights[i].DepartureTime < flights[j].DepartureTime })
	return flights, nil
}

func (r *travelRepository) UpdateFlight(_ context.Context, flight *models.FlightInfo) (*models.FlightInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.flights[flight.ID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	tripID := f.TripID
	*f = *flight
	f.TripID = tripID

	out := *f
	return &out, nil
}

func (r *travelRepository) DeleteFlight(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.flights, id)
	return nil
}
