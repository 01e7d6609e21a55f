package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/LovationAdmin/holiday-api/models"
	"github.com/LovationAdmin/holiday-api/notify"
	"github.com/LovationAdmin/holiday-api/repository"
	"github.com/LovationAdmin/holiday-api/utils"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var votesCast = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "holiday_votes_cast_total",
	Help: "Votes recorded on suggestions, by value.",
}, []string{"vote"})

// ActivityService owns the suggestion board: activities plus their vote and
// comment ledgers.
type ActivityService struct {
	trips      repository.TripRepository
	activities repository.ActivityRepository
	notifier   notify.Notifier
}

func NewActivityService(trips repository.TripRepository, activities repository.ActivityRepository, notifier notify.Notifier) *ActivityService {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &ActivityService{trips: trips, activities: activities, notifier: notifier}
}

// List returns the trip's activities with their vote maps (name -> vote) and
// comments in insertion order.
func (s *ActivityService) List(ctx context.Context, tripID string) ([]*models.Activity, error) {
	activities, err := s.activities.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fromStore("list activities", "trip", err)
	}

	votes, err := s.activities.ListVotesByTrip(ctx, tripID)
	if err != nil {
		return nil, fromStore("list votes", "trip", err)
	}

	comments, err := s.activities.ListCommentsByTrip(ctx, tripID)
	if err != nil {
		return nil, fromStore("list comments", "trip", err)
	}

	byID := make(map[string]*models.Activity, len(activities))
	for _, a := range activities {
		a.Votes = map[string]string{}
		a.Comments = []models.Comment{}
		byID[a.ID] = a
	}
	for _, v := range votes {
		if a, ok := byID[v.ActivityID]; ok {
			a.Votes[v.UserName] = v.Vote
		}
	}
	for _, c := range comments {
		if a, ok := byID[c.ActivityID]; ok {
			a.Comments = append(a.Comments, *c)
		}
	}

	return activities, nil
}

// Create adds a suggestion to the board. Cost defaults to zero.
func (s *ActivityService) Create(ctx context.Context, tripID string, proposer *models.User, req models.ActivityRequest) (*models.Activity, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, invalid("title", "Title is required")
	}

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

	activity, err := s.activities.Create(ctx, &models.Activity{
		TripID:      tripID,
		Title:       title,
		Description: req.Description,
		CostEUR:     cost,
		Link:        emptyToNil(req.Link),
	}, proposer.ID)
	if err != nil {
		return nil, fromStore("create activity", "activity", err)
	}

	if err := s.notifier.Notify(ctx, fmt.Sprintf("💡 %s suggested %q (€%.0f pp). Vote on the board!", activity.ProposedBy, activity.Title, activity.CostEUR)); err != nil {
		utils.SafeWarn("failed to announce activity %s: %v", utils.MaskID(activity.ID), err)
	}
	return activity, nil
}

// Delete removes an activity with its votes and comments and returns its trip
// id. Unknown ids succeed with an empty trip id.
func (s *ActivityService) Delete(ctx context.Context, id string) (string, error) {
	activity, err := s.activities.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fromStore("load activity", "activity", err)
	}
	return activity.TripID, fromStore("delete activity", "activity", s.activities.Delete(ctx, id))
}

// CastVote records the user's vote, replacing any earlier vote by the same user
// on the same activity, and returns the activity's trip id. Only the literals
// "yes" and "no" are accepted.
func (s *ActivityService) CastVote(ctx context.Context, activityID, userID, vote string) (string, error) {
	if vote != models.VoteYes && vote != models.VoteNo {
		return "", invalid("vote", "Vote must be yes or no")
	}

	activity, err := s.activities.GetByID(ctx, activityID)
	if err != nil {
		return "", fromStore("load activity", "activity", err)
	}

	if err := s.activities.UpsertVote(ctx, activityID, userID, vote); err != nil {
		return "", fromStore("cast vote", "activity", err)
	}
	votesCast.WithLabelValues(vote).Inc()
	return activity.TripID, nil
}

// AddComment appends a comment. Comments are never edited or removed.
func (s *ActivityService) AddComment(ctx context.Context, activityID string, author *models.User, text string) (*models.Activity, *models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil, invalid("text", "Text is required")
	}

	activity, err := s.activities.GetByID(ctx, activityID)
	if err != nil {
		return nil, nil, fromStore("load activity", "activity", err)
	}

	comment, err := s.activities.AddComment(ctx, &models.Comment{
		ActivityID: activityID,
		UserID:     author.ID,
		Text:       text,
	})
	if err != nil {
		return nil, nil, fromStore("add comment", "activity", err)
	}
	comment.User = author.Name
	return activity, comment, nil
}

func emptyToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
