// Package memory keeps every ledger in process memory. It backs local
// development without a database and the service and handler tests.
package memory

import (
	"strings"
	"sync"
	"time"

	"github.com/LovationAdmin/holiday-api/models"
	"github.com/LovationAdmin/holiday-api/repository"
)

type voteKey struct {
	activityID string
	userID     string
}

type db struct {
	mu sync.RWMutex

	users      map[string]*models.User
	trips      map[string]*models.Trip
	items      map[string]*models.ItineraryItem
	activities map[string]*activityRow
	votes      map[voteKey]*models.Vote
	voteOrder  []voteKey
	comments   []*models.Comment
	hotels     map[string]*models.HotelInfo
	flights    map[string]*models.FlightInfo

	// seq orders rows inserted within the same clock tick.
	seq int64
}

type activityRow struct {
	activity   models.Activity
	proposerID string
	seq        int64
}

// NewStore returns an empty store with every repository sharing one lock.
func NewStore() *repository.Store {
	d := &db{
		users:      make(map[string]*models.User),
		trips:      make(map[string]*models.Trip),
		items:      make(map[string]*models.ItineraryItem),
		activities: make(map[string]*activityRow),
		votes:      make(map[voteKey]*models.Vote),
		hotels:     make(map[string]*models.HotelInfo),
		flights:    make(map[string]*models.FlightInfo),
	}
	return &repository.Store{
		Users:      &userRepository{d},
		Trips:      &tripRepository{d},
		Itinerary:  &itineraryRepository{d},
		Activities: &activityRepository{d},
		Travel:     &travelRepository{d},
	}
}

func (d *db) next() int64 {
	d.seq++
	return d.seq
}

func (d *db) now() time.Time {
	return time.Now().UTC()
}

func (d *db) userName(id string) string {
	if u, ok := d.users[id]; ok {
		return u.Name
	}
	return "Unknown"
}

// deleteActivity removes an activity with its votes and comments. Callers hold the lock.
func (d *db) deleteActivity(id string) {
	delete(d.activities, id)

	order := d.voteOrder[:0]
	for _, k := range d.voteOrder {
		if k.activityID == id {
			delete(d.votes, k)
			continue
		}
		order = append(order, k)
	}
	d.voteOrder = order

	comments := d.comments[:0]
	for _, c := range d.comments {
		if c.ActivityID != id {
			comments = append(comments, c)
		}
	}
	d.comments = comments
}

func sameName(a, b string) bool {
	return strings.EqualFold(a, b)
}
