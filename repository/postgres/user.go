package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/LovationAdmin/holiday-api/models"
	"github.com/LovationAdmin/holiday-api/repository"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const userColumns = `id, name, role, COALESCE(password_hash, '') AS password_hash,
	COALESCE(totp_secret, '') AS totp_secret, totp_enabled, created_at, updated_at`

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	now := time.Now()
	user.CreatedAt, user.UpdatedAt = now, now

	query := `INSERT INTO users (id, name, role, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6)`
	if _, err := r.db.ExecContext(ctx, query,
		user.ID, user.Name, user.Role, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	user.IsAdmin = user.Admin()
	return user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *userRepository) GetByName(ctx context.Context, name string) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE LOWER(name) = LOWER($1)`, name)
}

func (r *userRepository) getOne(ctx context.Context, query string, arg string) (*models.User, error) {
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, arg); err != nil {
		return nil, notFound(err)
	}
	user.IsAdmin = user.Admin()
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]*models.User, error) {
	users := []*models.User{}
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at ASC`
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	for _, u := range users {
		u.IsAdmin = u.Admin()
	}
	return users, nil
}

func (r *userRepository) SetPassword(ctx context.Context, id, passwordHash string) error {
	return r.update(ctx, `UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2`, passwordHash, id)
}

func (r *userRepository) SetRole(ctx context.Context, id, role string) error {
	return r.update(ctx, `UPDATE users SET role = $1, updated_at = NOW() WHERE id = $2`, role, id)
}

func (r *userRepository) SetTOTP(ctx context.Context, id, secret string, enabled bool) error {
	return r.update(ctx, `UPDATE users SET totp_secret = NULLIF($1, ''), totp_enabled = $2, updated_at = NOW() WHERE id = $3`,
		secret, enabled, id)
}

func (r *userRepository) update(ctx context.Context, query string, args ...interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
