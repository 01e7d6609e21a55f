package repository

import (
	"context"
	"errors"

	"github.com/LovationAdmin/holiday-api/models"
)

// ErrNotFound is returned by every repository when the addressed row does not exist.
var ErrNotFound = errors.New("record not found")

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByName matches the display name case-insensitively.
	GetByName(ctx context.Context, name string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	SetPassword(ctx context.Context, id, passwordHash string) error
	SetRole(ctx context.Context, id, role string) error
	SetTOTP(ctx context.Context, id, secret string, enabled bool) error
}

// TripRepository defines the interface for trip data operations
type TripRepository interface {
	Create(ctx context.Context, trip *models.Trip) (*models.Trip, error)
	GetByID(ctx context.Context, id string) (*models.Trip, error)
	List(ctx context.Context) ([]*models.Trip, error)
	Update(ctx context.Context, trip *models.Trip) (*models.Trip, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// ItineraryRepository defines the interface for itinerary item operations
type ItineraryRepository interface {
	Create(ctx context.Context, item *models.ItineraryItem) (*models.ItineraryItem, error)
	GetByID(ctx context.Context, id string) (*models.ItineraryItem, error)
	// ListByTrip returns items ordered by day then time.
	ListByTrip(ctx context.Context, tripID string) ([]*models.ItineraryItem, error)
	Delete(ctx context.Context, id string) error
}

// ActivityRepository defines the interface for suggestions, their votes and comments
type ActivityRepository interface {
	// Create inserts the activity and returns it with the proposer's name resolved.
	Create(ctx context.Context, activity *models.Activity, proposerID string) (*models.Activity, error)
	GetByID(ctx context.Context, id string) (*models.Activity, error)
	ListByTrip(ctx context.Context, tripID string) ([]*models.Activity, error)
	Delete(ctx context.Context, id string) error

	// UpsertVote stores one vote per (activity, user), replacing any previous one.
	UpsertVote(ctx context.Context, activityID, userID, vote string) error
	ListVotesByTrip(ctx context.Context, tripID string) ([]*models.Vote, error)

	AddComment(ctx context.Context, comment *models.Comment) (*models.Comment, error)
	// ListCommentsByTrip returns comments in insertion order.
	ListCommentsByTrip(ctx context.Context, tripID string) ([]*models.Comment, error)
}

// TravelRepository defines the interface for hotel and flight reference records
type TravelRepository interface {
	CreateHotel(ctx context.Context, hotel *models.HotelInfo) (*models.HotelInfo, error)
	GetHotel(ctx context.Context, id string) (*models.HotelInfo, error)
	ListHotels(ctx context.Context, tripID string) ([]*models.HotelInfo, error)
	UpdateHotel(ctx context.Context, hotel *models.HotelInfo) (*models.HotelInfo, error)
	DeleteHotel(ctx context.Context, id string) error

	CreateFlight(ctx context.Context, flight *models.FlightInfo) (*models.FlightInfo, error)
	GetFlight(ctx context.Context, id string) (*models.FlightInfo, error)
	ListFlights(ctx context.Context, tripID string) ([]*models.FlightInfo, error)
	UpdateFlight(ctx context.Context, flight *models.FlightInfo) (*models.FlightInfo, error)
	DeleteFlight(ctx context.Context, id string) error
}

// Store bundles the repositories a running server needs.
type Store struct {
	Users      UserRepository
	Trips      TripRepository
	Itinerary  ItineraryRepository
	Activities ActivityRepository
	Travel     TravelRepository
}
