package models

type HotelInfo struct {
	ID                 string `json:"id" db:"id"`
	TripID             string `json:"trip_id" db:"trip_id"`
	Name               string `json:"name" db:"name"`
	Address            string `json:"address" db:"address"`
	CheckIn            string `json:"check_in" db:"check_in"`
	CheckOut           string `json:"check_out" db:"check_out"`
	ConfirmationNumber string `json:"confirmation_number" db:"confirmation_number"`
	Notes              string `json:"notes" db:"notes"`
}

type HotelRequest struct {
	Name               string `json:"name" binding:"required"`
	Address            string `json:"address"`
	CheckIn            string `json:"check_in"`
	CheckOut           string `json:"check_out"`
	ConfirmationNumber string `json:"confirmation_number"`
	Notes              string `json:"notes"`
}

type FlightInfo struct {
	ID               string `json:"id" db:"id"`
	TripID           string `json:"trip_id" db:"trip_id"`
	Airline          string `json:"airline" db:"airline"`
	FlightNumber     string `json:"flight_number" db:"flight_number"`
	DepartureAirport string `json:"departure_airport" db:"departure_airport"`
	ArrivalAirport   string `json:"arrival_airport" db:"arrival_airport"`
	DepartureTime    string `json:"departure_time" db:"departure_time"`
	ArrivalTime      string `json:"arrival_time" db:"arrival_time"`
	BookingReference string `json:"booking_reference" db:"booking_reference"`
	Notes            string `json:"notes" db:"notes"`
}

type FlightRequest struct {
	Airline          string `json:"airline" binding:"required"`
	FlightNumber     string `json:"flight_number"`
	DepartureAirport string `json:"departure_airport"`
	ArrivalAirport   string `json:"arrival_airport"`
	DepartureTime    string `json:"departure_time"`
	ArrivalTime      string `json:"arrival_time"`
	BookingReference string `json:"booking_reference"`
	Notes            string `json:"notes"`
}
