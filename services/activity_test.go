package services

import (
	"context"
	"errors"
	"testing"

	"github.com/LovationAdmin/holiday-api/models"
)

func TestActivityService_CastVote(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	trip := env.trip(t, 2)
	alice := env.user(t, "Alice")
	bob := env.user(t, "Bob")
	a := env.activity(t, trip.ID, alice, 25)

	if _, err := env.activities.CastVote(ctx, a.ID, alice.ID, models.VoteYes); err != nil {
		t.Fatalf("CastVote alice: %v", err)
	}
	tripID, err := env.activities.CastVote(ctx, a.ID, bob.ID, models.VoteYes)
	if err != nil {
		t.Fatalf("CastVote bob: %v", err)
	}
	if tripID != trip.ID {
		t.Errorf("CastVote trip id = %q, want %q", tripID, trip.ID)
	}
	// Re-vote replaces only Alice's entry.
	if _, err := env.activities.CastVote(ctx, a.ID, alice.ID, models.VoteNo); err != nil {
		t.Fatalf("CastVote alice again: %v", err)
	}

	list, err := env.activities.List(ctx, trip.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("List returned %d activities, want 1", len(list))
	}

	votes := list[0].Votes
	if len(votes) != 2 || votes["Alice"] != models.VoteNo || votes["Bob"] != models.VoteYes {
		t.Errorf("Votes = %v, want Alice:no Bob:yes", votes)
	}
}

func TestActivityService_CastVoteRejectsInvalidValues(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	trip := env.trip(t, 2)
	alice := env.user(t, "Alice")
	a := env.activity(t, trip.ID, alice, 25)

	if _, err := env.activities.CastVote(ctx, a.ID, alice.ID, models.VoteYes); err != nil {
		t.Fatalf("CastVote: %v", err)
	}

	for _, vote := range []string{"maybe", "", "YES", " yes", "No"} {
		if _, err := env.activities.CastVote(ctx, a.ID, alice.ID, vote); !isValidation(err) {
			t.Errorf("CastVote(%q) = %v, want validation error", vote, err)
		}
	}

	list, _ := env.activities.List(ctx, trip.ID)
	if got := list[0].Votes["Alice"]; got != models.VoteYes {
		t.Errorf("ledger changed after invalid votes: Alice = %q", got)
	}
}

func TestActivityService_CastVoteUnknownActivity(t *testing.T) {
	env := newTestEnv(t)
	alice := env.user(t, "Alice")

	_, err := env.activities.CastVote(context.Background(), "3f1c1d3e-0000-4000-8000-000000000000", alice.ID, models.VoteYes)
	if !isNotFound(err) {
		t.Errorf("CastVote on missing activity = %v, want not found", err)
	}
}

func TestActivityService_AddComment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	trip := env.trip(t, 2)
	alice := env.user(t, "Alice")
	bob := env.user(t, "Bob")
	a := env.activity(t, trip.ID, alice, 0)

	for _, text := range []string{"", "   ", "\n\t"} {
		if _, _, err := env.activities.AddComment(ctx, a.ID, alice, text); !isValidation(err) {
			t.Errorf("AddComment(%q) = %v, want validation error", text, err)
		}
	}

	if _, c, err := env.activities.AddComment(ctx, a.ID, alice, "first"); err != nil {
		t.Fatalf("AddComment: %v", err)
	} else if c.User != "Alice" {
		t.Errorf("comment author = %q, want Alice", c.User)
	}
	if _, _, err := env.activities.AddComment(ctx, a.ID, bob, "second"); err != nil {
		t.Fatalf("AddComment: %v", err)
	}

	list, _ := env.activities.List(ctx, trip.ID)
	comments := list[0].Comments
	if len(comments) != 2 || comments[0].Text != "first" || comments[1].Text != "second" || comments[1].User != "Bob" {
		t.Errorf("Comments = %+v, want first by Alice then second by Bob", comments)
	}

	if _, _, err := env.activities.AddComment(ctx, "3f1c1d3e-0000-4000-8000-000000000000", alice, "hi"); !isNotFound(err) {
		t.Errorf("AddComment on missing activity = %v, want not found", err)
	}
}

func TestActivityService_Create(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	trip := env.trip(t, 2)
	alice := env.user(t, "Alice")

	a, err := env.activities.Create(ctx, trip.ID, alice, models.ActivityRequest{Title: "  Tram 28  "})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.Title != "Tram 28" || a.CostEUR != 0 || a.ProposedBy != "Alice" {
		t.Errorf("Create = %+v, want trimmed title, zero cost, proposer Alice", a)
	}
	if a.Votes == nil || a.Comments == nil {
		t.Errorf("new activity should carry empty votes and comments")
	}
	if env.notifier.count() != 1 {
		t.Errorf("notifier got %d messages, want 1", env.notifier.count())
	}

	negative := -5.0
	tests := []struct {
		name   string
		tripID string
		req    models.ActivityRequest
		check  func(error) bool
	}{
		{"missing title", trip.ID, models.ActivityRequest{Title: " "}, isValidation},
		{"negative cost", trip.ID, models.ActivityRequest{Title: "x", CostEUR: &negative}, isValidation},
		{"unknown trip", "3f1c1d3e-0000-4000-8000-000000000000", models.ActivityRequest{Title: "x"}, isNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := env.activities.Create(ctx, tt.tripID, alice, tt.req); !tt.check(err) {
				t.Errorf("Create() error = %v", err)
			}
		})
	}
}

func TestActivityService_DeleteIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	trip := env.trip(t, 2)
	alice := env.user(t, "Alice")
	a := env.activity(t, trip.ID, alice, 10)
	if _, err := env.activities.CastVote(ctx, a.ID, alice.ID, models.VoteYes); err != nil {
		t.Fatalf("CastVote: %v", err)
	}

	tripID, err := env.activities.Delete(ctx, a.ID)
	if err != nil || tripID != trip.ID {
		t.Fatalf("Delete = (%q, %v), want (%q, nil)", tripID, err, trip.ID)
	}

	tripID, err = env.activities.Delete(ctx, a.ID)
	if err != nil || tripID != "" {
		t.Errorf("second Delete = (%q, %v), want (\"\", nil)", tripID, err)
	}

	list, _ := env.activities.List(ctx, trip.ID)
	if len(list) != 0 {
		t.Errorf("List after delete = %d activities, want 0", len(list))
	}
}

func TestActivityService_CreateSurvivesNotifierFailure(t *testing.T) {
	env := newTestEnv(t)
	env.notifier.err = errors.New("chat unreachable")

	trip := env.trip(t, 2)
	alice := env.user(t, "Alice")
	a := env.activity(t, trip.ID, alice, 40)

	if a.ID == "" || env.notifier.count() != 1 {
		t.Errorf("activity = %+v, notifications = %d", a, env.notifier.count())
	}
}
