package models

import "time"

// DateLayout is the wire and storage format of trip and hotel dates.
const DateLayout = "2006-01-02"

type Trip struct {
	ID          string    `json:"id" db:"id"`
	Destination string    `json:"destination" db:"destination"`
	StartDate   string    `json:"start_date" db:"start_date"`
	EndDate     string    `json:"end_date" db:"end_date"`
	Travelers   int       `json:"travelers" db:"travelers"`
	CreatedBy   string    `json:"created_by,omitempty" db:"created_by"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type TripRequest struct {
	Destination string `json:"destination" binding:"required"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	Travelers   int    `json:"travelers" binding:"required"`
}

type Countdown struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

type CurrentTripResponse struct {
	Trip      Trip      `json:"trip"`
	Countdown Countdown `json:"countdown"`
}
