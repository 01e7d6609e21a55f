package models

// BudgetLine is one yes-voted activity in a traveler's breakdown.
type BudgetLine struct {
	ActivityID string  `json:"activity_id"`
	Title      string  `json:"title"`
	CostEUR    float64 `json:"cost_eur"`
}

// ChartSlice feeds the cost pie chart on the dashboard.
type ChartSlice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type UserCost struct {
	Name           string  `json:"name"`
	ItineraryCost  float64 `json:"itinerary_cost"`
	ActivitiesCost float64 `json:"activities_cost"`
	Total          float64 `json:"total"`
}

type BudgetBreakdown struct {
	UserName              string       `json:"user_name"`
	Travelers             int          `json:"travelers"`
	SecondaryCurrency     string       `json:"secondary_currency"`
	ExchangeRate          float64      `json:"exchange_rate"`
	ItineraryTotalEUR     float64      `json:"itinerary_total_eur"`
	ItineraryPerPersonEUR float64      `json:"itinerary_per_person_eur"`
	ActivitiesEUR         float64      `json:"activities_eur"`
	TotalEUR              float64      `json:"total_eur"`
	TotalSecondary        float64      `json:"total_secondary"`
	Activities            []BudgetLine `json:"activities"`
	ChartData             []ChartSlice `json:"chart_data"`
	PerUser               []UserCost   `json:"per_user,omitempty"`
}
