package models

import "time"

const (
	VoteYes = "yes"
	VoteNo  = "no"
)

// Activity is a suggestion on the pin board. Votes is keyed by display name
// and only built when reading; storage keeps one row per (activity, user).
type Activity struct {
	ID          string            `json:"id" db:"id"`
	TripID      string            `json:"trip_id" db:"trip_id"`
	Title       string            `json:"title" db:"title"`
	Description string            `json:"description" db:"description"`
	ProposedBy  string            `json:"proposed_by" db:"proposed_by_name"`
	CostEUR     float64           `json:"cost_eur" db:"cost_eur"`
	Link        *string           `json:"link,omitempty" db:"link"`
	Votes       map[string]string `json:"votes" db:"-"`
	Comments    []Comment         `json:"comments" db:"-"`
}

type Vote struct {
	ActivityID string    `json:"activity_id" db:"activity_id"`
	UserID     string    `json:"user_id" db:"user_id"`
	UserName   string    `json:"user_name" db:"user_name"`
	Vote       string    `json:"vote" db:"vote"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

type Comment struct {
	ID         string    `json:"id" db:"id"`
	ActivityID string    `json:"-" db:"activity_id"`
	UserID     string    `json:"-" db:"user_id"`
	User       string    `json:"user" db:"user_name"`
	Text       string    `json:"text" db:"text"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

type ActivityRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	CostEUR     *float64 `json:"cost_eur"`
	Link        *string  `json:"link"`
}

type VoteRequest struct {
	Vote string `json:"vote"`
}

type CommentRequest struct {
	Text string `json:"text"`
}
