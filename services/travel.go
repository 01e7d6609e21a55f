package services

import (
	"context"
	"errors"
	"strings"

	"github.com/LovationAdmin/holiday-api/models"
	"github.com/LovationAdmin/holiday-api/repository"
	"github.com/LovationAdmin/holiday-api/utils"
)

// TravelService manages hotel and flight reference records. Confirmation
// numbers and booking references are sealed before they are stored.
type TravelService struct {
	trips  repository.TripRepository
	travel repository.TravelRepository
	sealer *utils.Sealer
}

func NewTravelService(trips repository.TripRepository, travel repository.TravelRepository, sealer *utils.Sealer) *TravelService {
	return &TravelService{trips: trips, travel: travel, sealer: sealer}
}

// ============================================================================
// HOTELS
// ============================================================================

func (s *TravelService) ListHotels(ctx context.Context, tripID string) ([]*models.HotelInfo, error) {
	hotels, err := s.travel.ListHotels(ctx, tripID)
	if err != nil {
		return nil, fromStore("list hotels", "trip", err)
	}
	for _, h := range hotels {
		if err := s.openHotel(h); err != nil {
			return nil, err
		}
	}
	return hotels, nil
}

func (s *TravelService) CreateHotel(ctx context.Context, tripID string, req models.HotelRequest) (*models.HotelInfo, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, invalid("name", "Hotel name is required")
	}
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fromStore("load trip", "trip", err)
	}

	hotel := hotelFromRequest(req)
	hotel.TripID = tripID
	if err := s.sealHotel(hotel); err != nil {
		return nil, err
	}

	created, err := s.travel.CreateHotel(ctx, hotel)
	if err != nil {
		return nil, fromStore("create hotel", "hotel", err)
	}
	return created, s.openHotel(created)
}

func (s *TravelService) UpdateHotel(ctx context.Context, id string, req models.HotelRequest) (*models.HotelInfo, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, invalid("name", "Hotel name is required")
	}

	hotel := hotelFromRequest(req)
	hotel.ID = id
	if err := s.sealHotel(hotel); err != nil {
		return nil, err
	}

	updated, err := s.travel.UpdateHotel(ctx, hotel)
	if err != nil {
		return nil, fromStore("update hotel", "hotel", err)
	}
	return updated, s.openHotel(updated)
}

// DeleteHotel returns the trip id of the removed hotel, or "" if none existed.
func (s *TravelService) DeleteHotel(ctx context.Context, id string) (string, error) {
	hotel, err := s.travel.GetHotel(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fromStore("load hotel", "hotel", err)
	}
	return hotel.TripID, fromStore("delete hotel", "hotel", s.travel.DeleteHotel(ctx, id))
}

func hotelFromRequest(req models.HotelRequest) *models.HotelInfo {
	return &models.HotelInfo{
		Name:               strings.TrimSpace(req.Name),
		Address:            req.Address,
		CheckIn:            req.CheckIn,
		CheckOut:           req.CheckOut,
		ConfirmationNumber: req.ConfirmationNumber,
		Notes:              req.Notes,
	}
}

func (s *TravelService) sealHotel(h *models.HotelInfo) error {
	sealed, err := s.sealer.Seal(h.ConfirmationNumber)
	if err != nil {
		return &StorageError{Op: "seal confirmation number", Err: err}
	}
	h.ConfirmationNumber = sealed
	return nil
}

func (s *TravelService) openHotel(h *models.HotelInfo) error {
	opened, err := s.sealer.Open(h.ConfirmationNumber)
	if err != nil {
		return &StorageError{Op: "open confirmation number", Err: err}
	}
	h.ConfirmationNumber = opened
	return nil
}

// ============================================================================
// FLIGHTS
// ============================================================================

func (s *TravelService) ListFlights(ctx context.Context, tripID string) ([]*models.FlightInfo, error) {
	flights, err := s.travel.ListFlights(ctx, tripID)
	if err != nil {
		return nil, fromStore("list flights", "trip", err)
	}
	for _, f := range flights {
		if err := s.openFlight(f); err != nil {
			return nil, err
		}
	}
	return flights, nil
}

func (s *TravelService) CreateFlight(ctx context.Context, tripID string, req models.FlightRequest) (*models.FlightInfo, error) {
	if strings.TrimSpace(req.Airline) == "" {
		return nil, invalid("airline", "Airline is required")
	}
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fromStore("load trip", "trip", err)
	}

	flight := flightFromRequest(req)
	flight.TripID = tripID
	if err := s.sealFlight(flight); err != nil {
		return nil, err
	}

	created, err := s.travel.CreateFlight(ctx, flight)
	if err != nil {
		return nil, fromStore("create flight", "flight", err)
	}
	return created, s.openFlight(created)
}

func (s *TravelService) UpdateFlight(ctx context.Context, id string, req models.FlightRequest) (*models.FlightInfo, error) {
	if strings.TrimSpace(req.Airline) == "" {
		return nil, invalid("airline", "Airline is required")
	}

	flight := flightFromRequest(req)
	flight.ID = id
	if err := s.sealFlight(flight); err != nil {
		return nil, err
	}

	updated, err := s.travel.UpdateFlight(ctx, flight)
	if err != nil {
		return nil, fromStore("update flight", "flight", err)
	}
	return updated, s.openFlight(updated)
}

func (s *TravelService) DeleteFlight(ctx context.Context, id string) (string, error) {
	flight, err := s.travel.GetFlight(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fromStore("load flight", "flight", err)
	}
	return flight.TripID, fromStore("delete flight", "flight", s.travel.DeleteFlight(ctx, id))
}

func flightFromRequest(req models.FlightRequest) *models.FlightInfo {
	return &models.FlightInfo{
		Airline:          strings.TrimSpace(req.Airline),
		FlightNumber:     req.FlightNumber,
		DepartureAirport: req.DepartureAirport,
		ArrivalAirport:   req.ArrivalAirport,
		DepartureTime:    req.DepartureTime,
		ArrivalTime:      req.ArrivalTime,
		BookingReference: req.BookingReference,
		Notes:            req.Notes,
	}
}

func (s *TravelService) sealFlight(f *models.FlightInfo) error {
	sealed, err := s.sealer.Seal(f.BookingReference)
	if err != nil {
		return &StorageError{Op: "seal booking reference", Err: err}
	}
	f.BookingReference = sealed
	return nil
}

func (s *TravelService) openFlight(f *models.FlightInfo) error {
	opened, err := s.sealer.Open(f.BookingReference)
	if err != nil {
		return &StorageError{Op: "open booking reference", Err: err}
	}
	f.BookingReference = opened
	return nil
}
