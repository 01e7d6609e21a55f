package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/LovationAdmin/holiday-api/models"
	"github.com/LovationAdmin/holiday-api/notify"
	"github.com/LovationAdmin/holiday-api/repository"
	"github.com/LovationAdmin/holiday-api/utils"
)

// ItineraryService maintains the day-by-day plan and its shared costs.
type ItineraryService struct {
	trips    repository.TripRepository
	items    repository.ItineraryRepository
	notifier notify.Notifier
}

func NewItineraryService(trips repository.TripRepository, items repository.ItineraryRepository, notifier notify.Notifier) *ItineraryService {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &ItineraryService{trips: trips, items: items, notifier: notifier}
}

// List returns the trip's items ordered by day, then time.
func (s *ItineraryService) List(ctx context.Context, tripID string) ([]*models.ItineraryItem, error) {
	items, err := s.items.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fromStore("list itinerary", "trip", err)
	}
	return items, nil
}

// Add stores a new item. Day and time are not range-checked; an omitted cost is zero.
func (s *ItineraryService) Add(ctx context.Context, tripID string, req models.ItineraryItemRequest) (*models.ItineraryItem, error) {
	cost := 0.0
	if req.CostEUR != nil {
		cost = *req.CostEUR
	}
	if cost < 0 {
		return nil, invalid("cost_eur", "Cost cannot be negative")
	}

	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fromStore("load trip", "trip", err)
	}

	item, err := s.items.Create(ctx, &models.ItineraryItem{
		TripID:   tripID,
		Day:      req.Day,
		Time:     req.Time,
		Activity: req.Activity,
		Location: req.Location,
		CostEUR:  cost,
		Notes:    emptyToNil(req.Notes),
	})
	if err != nil {
		return nil, fromStore("create itinerary item", "itinerary item", err)
	}

	if err := s.notifier.Notify(ctx, fmt.Sprintf("🗓 Day %d, %s: %s @ %s added to the itinerary", item.Day, item.Time, item.Activity, item.Location)); err != nil {
		utils.SafeWarn("failed to announce itinerary item %s: %v", utils.MaskID(item.ID), err)
	}
	return item, nil
}

// Delete removes an item and returns the trip it belonged to. Deleting an
// unknown id is not an error and yields an empty trip id.
func (s *ItineraryService) Delete(ctx context.Context, id string) (string, error) {
	item, err := s.items.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fromStore("load itinerary item", "itinerary item", err)
	}
	return item.TripID, fromStore("delete itinerary item", "itinerary item", s.items.Delete(ctx, id))
}
