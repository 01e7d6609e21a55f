package services

import (
	"context"
	"strings"
	"time"

	"github.com/LovationAdmin/holiday-api/models"
	"github.com/LovationAdmin/holiday-api/repository"
)

type TripService struct {
	trips repository.TripRepository
	now   func() time.Time
}

func NewTripService(trips repository.TripRepository) *TripService {
	return &TripService{trips: trips, now: time.Now}
}

func (s *TripService) List(ctx context.Context) ([]*models.Trip, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fromStore("list trips", "trip", err)
	}
	return trips, nil
}

func (s *TripService) Get(ctx context.Context, id string) (*models.Trip, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return nil, fromStore("load trip", "trip", err)
	}
	return trip, nil
}

// Current returns the trip the dashboard shows, with a countdown to its start.
func (s *TripService) Current(ctx context.Context) (*models.CurrentTripResponse, error) {
	trips, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	trip := PickCurrentTrip(trips, now)
	if trip == nil {
		return nil, notFound("trip")
	}

	resp := &models.CurrentTripResponse{Trip: *trip}
	if start, err := time.ParseInLocation(models.DateLayout, trip.StartDate, now.Location()); err == nil {
		resp.Countdown = CountdownTo(start, now)
	}
	return resp, nil
}

// PickCurrentTrip chooses the upcoming or ongoing trip with the earliest start
// date; when every trip has ended it falls back to the most recent one.
func PickCurrentTrip(trips []*models.Trip, now time.Time) *models.Trip {
	today := now.Format(models.DateLayout)

	var upcoming, latest *models.Trip
	for _, t := range trips {
		// ISO dates compare correctly as strings.
		if t.EndDate >= today && (upcoming == nil || t.StartDate < upcoming.StartDate) {
			upcoming = t
		}
		if latest == nil || t.StartDate > latest.StartDate {
			latest = t
		}
	}
	if upcoming != nil {
		return upcoming
	}
	return latest
}

// CountdownTo splits the time left until start into days, hours and minutes.
// It is zero once the start has passed.
func CountdownTo(start, now time.Time) models.Countdown {
	d := start.Sub(now)
	if d <= 0 {
		return models.Countdown{}
	}
	return models.Countdown{
		Days:    int(d / (24 * time.Hour)),
		Hours:   int(d/time.Hour) % 24,
		Minutes: int(d/time.Minute) % 60,
	}
}

func (s *TripService) Create(ctx context.Context, creator *models.User, req models.TripRequest) (*models.Trip, error) {
	trip, err := validateTrip(req)
	if err != nil {
		return nil, err
	}
	if creator != nil {
		trip.CreatedBy = creator.ID
	}

	created, err := s.trips.Create(ctx, trip)
	if err != nil {
		return nil, fromStore("create trip", "trip", err)
	}
	return created, nil
}

func (s *TripService) Update(ctx context.Context, id string, req models.TripRequest) (*models.Trip, error) {
	trip, err := validateTrip(req)
	if err != nil {
		return nil, err
	}
	trip.ID = id

	updated, err := s.trips.Update(ctx, trip)
	if err != nil {
		return nil, fromStore("update trip", "trip", err)
	}
	return updated, nil
}

// Delete removes a trip and everything scoped to it. Unknown ids succeed.
func (s *TripService) Delete(ctx context.Context, id string) error {
	return fromStore("delete trip", "trip", s.trips.Delete(ctx, id))
}

// Seed inserts the configured trip when no trip exists yet.
func (s *TripService) Seed(ctx context.Context, req models.TripRequest) (*models.Trip, error) {
	n, err := s.trips.Count(ctx)
	if err != nil {
		return nil, fromStore("count trips", "trip", err)
	}
	if n > 0 {
		return nil, nil
	}
	return s.Create(ctx, nil, req)
}

func validateTrip(req models.TripRequest) (*models.Trip, error) {
	destination := strings.TrimSpace(req.Destination)
	if destination == "" {
		return nil, invalid("destination", "Destination is required")
	}

	start, err := time.Parse(models.DateLayout, req.StartDate)
	if err != nil {
		return nil, invalid("start_date", "Start date must be YYYY-MM-DD")
	}
	end, err := time.Parse(models.DateLayout, req.EndDate)
	if err != nil {
		return nil, invalid("end_date", "End date must be YYYY-MM-DD")
	}
	if end.Before(start) {
		return nil, invalid("end_date", "End date must not be before start date")
	}

	if req.Travelers < 1 {
		return nil, invalid("travelers", "Travelers must be at least 1")
	}

	return &models.Trip{
		Destination: destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Travelers:   req.Travelers,
	}, nil
}
