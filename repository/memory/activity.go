package memory

import (
	"context"
	"sort"

	"github.com/LovationAdmin/holiday-api/models"
	"github.com/LovationAdmin/holiday-api/repository"

	"github.com/google/uuid"
)

type activityRepository struct {
	*db
}

func (r *activityRepository) Create(_ context.Context, activity *models.Activity, proposerID string) (*models.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row := &activityRow{activity: *activity, proposerID: proposerID, seq: r.next()}
	if row.activity.ID == "" {
		row.activity.ID = uuid.New().String()
	}
	row.activity.Votes = nil
	row.activity.Comments = nil
	r.activities[row.activity.ID] = row

	out := r.view(row)
	out.Votes = map[string]string{}
	out.Comments = []models.Comment{}
	return out, nil
}

func (r *activityRepository) GetByID(_ context.Context, id string) (*models.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.activities[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return r.view(row), nil
}

func (r *activityRepository) ListByTrip(_ context.Context, tripID string) ([]*models.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := []*activityRow{}
	for _, row := range r.activities {
		if row.activity.TripID == tripID {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq < rows[j].seq })

	activities := make([]*models.Activity, 0, len(rows))
	for _, row := range rows {
		activities = append(activities, r.view(row))
	}
	return activities, nil
}

func (r *activityRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.deleteActivity(id)
	return nil
}

func (r *activityRepository) UpsertVote(_ context.Context, activityID, userID, vote string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.activities[activityID]; !ok {
		return repository.ErrNotFound
	}

	key := voteKey{activityID: activityID, userID: userID}
	if v, ok := r.votes[key]; ok {
		v.Vote = vote
		v.UpdatedAt = r.now()
		return nil
	}
	r.votes[key] = &models.Vote{ActivityID: activityID, UserID: userID, Vote: vote, UpdatedAt: r.now()}
	r.voteOrder = append(r.voteOrder, key)
	return nil
}

func (r *activityRepository) ListVotesByTrip(_ context.Context, tripID string) ([]*models.Vote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	votes := []*models.Vote{}
	for _, key := range r.voteOrder {
		row, ok := r.activities[key.activityID]
		if !ok || row.activity.TripID != tripID {
			continue
		}
		// Votes by deleted users are dropped, as the join does in SQL.
		if _, ok := r.users[key.userID]; !ok {
			continue
		}
		out := *r.votes[key]
		out.UserName = r.userName(key.userID)
		votes = append(votes, &out)
	}
	return votes, nil
}

func (r *activityRepository) AddComment(_ context.Context, comment *models.Comment) (*models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.activities[comment.ActivityID]; !ok {
		return nil, repository.ErrNotFound
	}

	stored := *comment
	if stored.ID == "" {
		stored.ID = uuid.New().String()
	}
	stored.CreatedAt = r.now()
	r.comments = append(r.comments, &stored)

	out := stored
	return &out, nil
}

func (r *activityRepository) ListCommentsByTrip(_ context.Context, tripID string) ([]*models.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	comments := []*models.Comment{}
	for _, c := range r.comments {
		row, ok := r.activities[c.ActivityID]
		if !ok || row.activity.TripID != tripID {
			continue
		}
		out := *c
		out.User = r.userName(c.UserID)
		comments = append(comments, &out)
	}
	return comments, nil
}

func (r *activityRepository) view(row *activityRow) *models.Activity {
	out := row.activity
	out.ProposedBy = r.userName(row.proposerID)
	return &out
}
