package models

type ItineraryItem struct {
	ID       string  `json:"id" db:"id"`
	TripID   string  `json:"trip_id" db:"trip_id"`
	Day      int     `json:"day" db:"day"`
	Time     string  `json:"time" db:"time"`
	Activity string  `json:"activity" db:"activity"`
	Location string  `json:"location" db:"location"`
	CostEUR  float64 `json:"cost_eur" db:"cost_eur"`
	Notes    *string `json:"notes,omitempty" db:"notes"`
}

// CostEUR is a pointer so an omitted cost can default to zero while an
// explicit negative value is still rejected.
type ItineraryItemRequest struct {
	Day      int      `json:"day"`
	Time     string   `json:"time"`
	Activity string   `json:"activity"`
	Location string   `json:"location"`
	CostEUR  *float64 `json:"cost_eur"`
	Notes    *string  `json:"notes"`
}
