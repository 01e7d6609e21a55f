package postgres

import (
	"context"
	"fmt"

	"github.com/LovationAdmin/holiday-api/models"
	"github.com/LovationAdmin/holiday-api/repository"
	"github.com/LovationAdmin/holiday-api/utils"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const activitySelect = `SELECT a.id, a.trip_id, a.title, a.description,
	COALESCE(u.name, 'Unknown') AS proposed_by_name, a.cost_eur, a.link
	FROM activities a
	LEFT JOIN users u ON a.proposed_by = u.id`

type activityRepository struct {
	db *sqlx.DB
}

func NewActivityRepository(db *sqlx.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

// Create inserts the activity and reads back the proposer's name in the same
// transaction so the response never races a concurrent rename or delete.
func (r *activityRepository) Create(ctx context.Context, activity *models.Activity, proposerID string) (*models.Activity, error) {
	if activity.ID == "" {
		activity.ID = uuid.New().String()
	}

	var created models.Activity
	err := utils.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		insert := `INSERT INTO activities (id, trip_id, title, description, proposed_by, cost_eur, link)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`
		if _, err := tx.ExecContext(ctx, insert,
			activity.ID, activity.TripID, activity.Title, activity.Description, proposerID, activity.CostEUR, activity.Link,
		); err != nil {
			return err
		}
		return tx.GetContext(ctx, &created, activitySelect+` WHERE a.id = $1`, activity.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}

	created.Votes = map[string]string{}
	created.Comments = []models.Comment{}
	return &created, nil
}

func (r *activityRepository) GetByID(ctx context.Context, id string) (*models.Activity, error) {
	var activity models.Activity
	if err := r.db.GetContext(ctx, &activity, activitySelect+` WHERE a.id = $1`, id); err != nil {
		return nil, notFound(err)
	}
	return &activity, nil
}

func (r *activityRepository) ListByTrip(ctx context.Context, tripID string) ([]*models.Activity, error) {
	activities := []*models.Activity{}
	query := activitySelect + ` WHERE a.trip_id = $1 ORDER BY a.created_at ASC`
	if err := r.db.SelectContext(ctx, &activities, query, tripID); err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return activities, nil
}

func (r *activityRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM activities WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	return nil
}

func (r *activityRepository) UpsertVote(ctx context.Context, activityID, userID, vote string) error {
	query := `INSERT INTO votes (activity_id, user_id, vote, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (activity_id, user_id) DO UPDATE SET vote = EXCLUDED.vote, updated_at = NOW()`
	if _, err := r.db.ExecContext(ctx, query, activityID, userID, vote); err != nil {
		return fmt.Errorf("failed to upsert vote: %w", err)
	}
	return nil
}

func (r *activityRepository) ListVotesByTrip(ctx context.Context, tripID string) ([]*models.Vote, error) {
	votes := []*models.Vote{}
	query := `SELECT v.activity_id, v.user_id, u.name AS user_name, v.vote, v.updated_at
		FROM votes v
		JOIN activities a ON v.activity_id = a.id
		JOIN users u ON v.user_id = u.id
		WHERE a.trip_id = $1
		ORDER BY v.updated_at ASC`
	if err := r.db.SelectContext(ctx, &votes, query, tripID); err != nil {
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}
	return votes, nil
}

func (r *activityRepository) AddComment(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	query := `INSERT INTO comments (id, activity_id, user_id, text)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`
	if err := r.db.QueryRowxContext(ctx, query,
		comment.ID, comment.ActivityID, comment.UserID, comment.Text,
	).Scan(&comment.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}

func (r *activityRepository) ListCommentsByTrip(ctx context.Context, tripID string) ([]*models.Comment, error) {
	comments := []*models.Comment{}
	query := `SELECT c.id, c.activity_id, c.user_id, COALESCE(u.name, 'Unknown') AS user_name, c.text, c.created_at
		FROM comments c
		JOIN activities a ON c.activity_id = a.id
		LEFT JOIN users u ON c.user_id = u.id
		WHERE a.trip_id = $1
		ORDER BY c.position ASC`
	if err := r.db.SelectContext(ctx, &comments, query, tripID); err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}
