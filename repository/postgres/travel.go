package postgres

import (
	"context"
	"fmt"

	"github.com/LovationAdmin/holiday-api/models"
	"github.com/LovationAdmin/holiday-api/repository"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const (
	hotelColumns = `id, trip_id, name, address, check_in, check_out, confirmation_number, notes`

	flightColumns = `id, trip_id, airline, flight_number, departure_airport, arrival_airport,
		departure_time, arrival_time, booking_reference, notes`
)

type travelRepository struct {
	db *sqlx.DB
}

func NewTravelRepository(db *sqlx.DB) repository.TravelRepository {
	return &travelRepository{db: db}
}

// ---------------------------------------------------------------------------
// Hotels
// ---------------------------------------------------------------------------

func (r *travelRepository) CreateHotel(ctx context.Context, hotel *models.HotelInfo) (*models.HotelInfo, error) {
	if hotel.ID == "" {
		hotel.ID = uuid.New().String()
	}
	query := `INSERT INTO hotel_info (` + hotelColumns + `)
		VALUES (:id, :trip_id, :name, :address, :check_in, :check_out, :confirmation_number, :notes)`
	if _, err := r.db.NamedExecContext(ctx, query, hotel); err != nil {
		return nil, fmt.Errorf("failed to create hotel: %w", err)
	}
	return hotel, nil
}

func (r *travelRepository) GetHotel(ctx context.Context, id string) (*models.HotelInfo, error) {
	var hotel models.HotelInfo
	if err := r.db.GetContext(ctx, &hotel, `SELECT `+hotelColumns+` FROM hotel_info WHERE id = $1`, id); err != nil {
		return nil, notFound(err)
	}
	return &hotel, nil
}

func (r *travelRepository) ListHotels(ctx context.Context, tripID string) ([]*models.HotelInfo, error) {
	hotels := []*models.HotelInfo{}
	query := `SELECT ` + hotelColumns + ` FROM hotel_info WHERE trip_id = $1 ORDER BY check_in ASC, name ASC`
	if err := r.db.SelectContext(ctx, &hotels, query, tripID); err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}
	return hotels, nil
}

func (r *travelRepository) UpdateHotel(ctx context.Context, hotel *models.HotelInfo) (*models.HotelInfo, error) {
	query := `UPDATE hotel_info SET name = :name, address = :address, check_in = :check_in,
		check_out = :check_out, confirmation_number = :confirmation_number, notes = :notes
		WHERE id = :id`
	result, err := r.db.NamedExecContext(ctx, query, hotel)
	if err != nil {
		return nil, fmt.Errorf("failed to update hotel: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return nil, repository.ErrNotFound
	}
	return r.GetHotel(ctx, hotel.ID)
}

func (r *travelRepository) DeleteHotel(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM hotel_info WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete hotel: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Flights
// ---------------------------------------------------------------------------

func (r *travelRepository) CreateFlight(ctx context.Context, flight *models.FlightInfo) (*models.FlightInfo, error) {
	if flight.ID == "" {
		flight.ID = uuid.New().String()
	}
	query := `INSERT INTO flight_info (` + flightColumns + `)
		VALUES (:id, :trip_id, :airline, :flight_number, :departure_airport, :arrival_airport,
			:departure_time, :arrival_time, :booking_reference, :notes)`
	if _, err := r.db.NamedExecContext(ctx, query, flight); err != nil {
		return nil, fmt.Errorf("failed to create flight: %w", err)
	}
	return flight, nil
}

func (r *travelRepository) GetFlight(ctx context.Context, id string) (*models.FlightInfo, error) {
	var flight models.FlightInfo
	if err := r.db.GetContext(ctx, &flight, `SELECT `+flightColumns+` FROM flight_info WHERE id = $1`, id); err != nil {
		return nil, notFound(err)
	}
	return &flight, nil
}

func (r *travelRepository) ListFlights(ctx context.Context, tripID string) ([]*models.FlightInfo, error) {
	flights := []*models.FlightInfo{}
	query := `SELECT ` + flightColumns + ` FROM flight_info WHERE trip_id = $1 ORDER BY departure_time ASC`
	if err := r.db.SelectContext(ctx, &flights, query, tripID); err != nil {
		return nil, fmt.Errorf("failed to list flights: %w", err)
	}
	return flights, nil
}

func (r *travelRepository) UpdateFlight(ctx context.Context, flight *models.FlightInfo) (*models.FlightInfo, error) {
	query := `UPDATE flight_info SET airline = :airline, flight_number = :flight_number,
		departure_airport = :departure_airport, arrival_airport = :arrival_airport,
		departure_time = :departure_time, arrival_time = :arrival_time,
		booking_reference = :booking_reference, notes = :notes
		WHERE id = :id`
	result, err := r.db.NamedExecContext(ctx, query, flight)
	if err != nil {
		return nil, fmt.Errorf("failed to update flight: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return nil, repository.ErrNotFound
	}
	return r.GetFlight(ctx, flight.ID)
}

func (r *travelRepository) DeleteFlight(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM flight_info WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete flight: %w", err)
	}
	return nil
}
