package services

import (
	"context"
	"math"
	"sort"

	"github.com/LovationAdmin/holiday-api/models"
	"github.com/LovationAdmin/holiday-api/repository"
)

// SharedItineraryLabel names the itinerary slice of the chart data.
const SharedItineraryLabel = "Itinerary (shared)"

// BudgetInput is everything the aggregator needs. It is assembled from the
// ledgers on every request; nothing is cached.
type BudgetInput struct {
	Itinerary         []*models.ItineraryItem
	Activities        []*models.Activity
	Travelers         int
	UserName          string
	ExchangeRate      float64
	SecondaryCurrency string
	Expanded          bool
}

// ComputeBudget rolls shared itinerary costs and the user's yes-votes into
// totals and chart data. It is a pure function of its input.
func ComputeBudget(in BudgetInput) models.BudgetBreakdown {
	itineraryTotal := 0.0
	for _, item := range in.Itinerary {
		itineraryTotal += item.CostEUR
	}
	perPerson := PerPersonShare(itineraryTotal, in.Travelers)

	lines, activitiesCost := yesVotes(in.Activities, in.UserName)
	total := perPerson + activitiesCost

	out := models.BudgetBreakdown{
		UserName:              in.UserName,
		Travelers:             in.Travelers,
		SecondaryCurrency:     in.SecondaryCurrency,
		ExchangeRate:          in.ExchangeRate,
		ItineraryTotalEUR:     itineraryTotal,
		ItineraryPerPersonEUR: perPerson,
		ActivitiesEUR:         activitiesCost,
		TotalEUR:              total,
		TotalSecondary:        roundCents(total * in.ExchangeRate),
		Activities:            lines,
		ChartData:             chartData(perPerson, lines),
	}

	if in.Expanded {
		out.PerUser = []models.UserCost{}
		for _, name := range voters(in.Activities) {
			_, cost := yesVotes(in.Activities, name)
			out.PerUser = append(out.PerUser, models.UserCost{
				Name:           name,
				ItineraryCost:  perPerson,
				ActivitiesCost: cost,
				Total:          perPerson + cost,
			})
		}
	}

	return out
}

// PerPersonShare divides a shared cost evenly. A non-positive traveler count
// falls back to the undivided total.
func PerPersonShare(total float64, travelers int) float64 {
	if travelers <= 0 {
		return total
	}
	return total / float64(travelers)
}

func yesVotes(activities []*models.Activity, name string) ([]models.BudgetLine, float64) {
	lines := []models.BudgetLine{}
	sum := 0.0
	for _, a := range activities {
		if a.Votes[name] != models.VoteYes {
			continue
		}
		lines = append(lines, models.BudgetLine{ActivityID: a.ID, Title: a.Title, CostEUR: a.CostEUR})
		sum += a.CostEUR
	}
	return lines, sum
}

func chartData(perPerson float64, lines []models.BudgetLine) []models.ChartSlice {
	slices := []models.ChartSlice{}
	if v := math.Round(perPerson); v > 0 {
		slices = append(slices, models.ChartSlice{Name: SharedItineraryLabel, Value: v})
	}
	for _, l := range lines {
		if l.CostEUR > 0 {
			slices = append(slices, models.ChartSlice{Name: l.Title, Value: l.CostEUR})
		}
	}
	return slices
}

// voters lists every name that voted on any activity, in order of first
// appearance. Names within one activity are taken alphabetically so the order
// does not depend on map iteration.
func voters(activities []*models.Activity) []string {
	seen := make(map[string]bool)
	var names []string
	for _, a := range activities {
		batch := make([]string, 0, len(a.Votes))
		for name := range a.Votes {
			if !seen[name] {
				batch = append(batch, name)
			}
		}
		sort.Strings(batch)
		for _, name := range batch {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// BudgetService loads the ledgers for a trip and runs the aggregator.
type BudgetService struct {
	trips             repository.TripRepository
	activities        *ActivityService
	itinerary         repository.ItineraryRepository
	exchangeRate      float64
	secondaryCurrency string
}

func NewBudgetService(trips repository.TripRepository, itinerary repository.ItineraryRepository,
	activities *ActivityService, exchangeRate float64, secondaryCurrency string) *BudgetService {
	return &BudgetService{
		trips:             trips,
		itinerary:         itinerary,
		activities:        activities,
		exchangeRate:      exchangeRate,
		secondaryCurrency: secondaryCurrency,
	}
}

// ForUser computes the breakdown for one traveler, optionally with the
// per-voter table.
func (s *BudgetService) ForUser(ctx context.Context, tripID string, user *models.User, expanded bool) (*models.BudgetBreakdown, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, fromStore("load trip", "trip", err)
	}

	items, err := s.itinerary.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fromStore("load itinerary", "trip", err)
	}

	activities, err := s.activities.List(ctx, tripID)
	if err != nil {
		return nil, err
	}

	breakdown := ComputeBudget(BudgetInput{
		Itinerary:         items,
		Activities:        activities,
		Travelers:         trip.Travelers,
		UserName:          user.Name,
		ExchangeRate:      s.exchangeRate,
		SecondaryCurrency: s.secondaryCurrency,
		Expanded:          expanded,
	})
	return &breakdown, nil
}
