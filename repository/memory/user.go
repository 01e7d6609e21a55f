package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/LovationAdmin/holiday-api/models"
	"github.com/LovationAdmin/holiday-api/repository"

	"github.com/google/uuid"
)

type userRepository struct {
	*db
}

func (r *userRepository) Create(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if sameName(u.Name, user.Name) {
			return nil, fmt.Errorf("failed to create user: name %q already exists", user.Name)
		}
	}

	stored := *user
	if stored.ID == "" {
		stored.ID = uuid.New().String()
	}
	if stored.Role == "" {
		stored.Role = models.RoleMember
	}
	// Distinct timestamps keep the roster order stable.
	stored.CreatedAt = r.now().Add(time.Duration(r.next()))
	stored.UpdatedAt = stored.CreatedAt
	r.users[stored.ID] = &stored

	return r.copy(&stored), nil
}

func (r *userRepository) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return r.copy(u), nil
}

func (r *userRepository) GetByName(_ context.Context, name string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if sameName(u.Name, name) {
			return r.copy(u), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *userRepository) List(_ context.Context) ([]*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*models.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, r.copy(u))
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.Before(users[j].CreatedAt) })
	return users, nil
}

func (r *userRepository) SetPassword(_ context.Context, id, passwordHash string) error {
	return r.update(id, func(u *models.User) { u.PasswordHash = passwordHash })
}

func (r *userRepository) SetRole(_ context.Context, id, role string) error {
	return r.update(id, func(u *models.User) { u.Role = role })
}

func (r *userRepository) SetTOTP(_ context.Context, id, secret string, enabled bool) error {
	return r.update(id, func(u *models.User) {
		u.TOTPSecret = secret
		u.TOTPEnabled = enabled
	})
}

func (r *userRepository) update(id string, fn func(u *models.User)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	fn(u)
	u.UpdatedAt = r.now()
	return nil
}

func (r *userRepository) copy(u *models.User) *models.User {
	out := *u
	out.IsAdmin = out.Admin()
	return &out
}
