package postgres

import (
	"database/sql"
	"errors"

	"github.com/LovationAdmin/holiday-api/repository"

	"github.com/jmoiron/sqlx"
)

// NewStore wires every PostgreSQL repository onto one connection pool.
func NewStore(db *sqlx.DB) *repository.Store {
	return &repository.Store{
		Users:      NewUserRepository(db),
		Trips:      NewTripRepository(db),
		Itinerary:  NewItineraryRepository(db),
		Activities: NewActivityRepository(db),
		Travel:     NewTravelRepository(db),
	}
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	return err
}
