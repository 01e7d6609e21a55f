package models

import "time"

// ============================================================================
// USER MODEL
// ============================================================================

const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

type User struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Role         string    `json:"role" db:"role"`
	IsAdmin      bool      `json:"is_admin" db:"-"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never expose in JSON
	TOTPSecret   string    `json:"-" db:"totp_secret"`   // Never expose in JSON
	TOTPEnabled  bool      `json:"totp_enabled" db:"totp_enabled"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Admin reports whether the stored role grants admin access.
func (u *User) Admin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Member is the roster view of a user.
type Member struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	IsAdmin  bool      `json:"is_admin"`
	JoinedAt time.Time `json:"joined_at"`
}

// ============================================================================
// AUTHENTICATION REQUESTS
// ============================================================================

type SignupRequest struct {
	Name       string `json:"name" binding:"required"`
	Password   string `json:"password" binding:"required"`
	InviteCode string `json:"invite_code" binding:"required"`
}

type SigninRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
	TOTPCode string `json:"totp_code,omitempty"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type SetRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// ============================================================================
// 2FA
// ============================================================================

type TOTPSetupResponse struct {
	Secret string `json:"secret"`
	URL    string `json:"url"`
}

type VerifyTOTPRequest struct {
	Code string `json:"code" binding:"required,len=6"`
}

type DisableTOTPRequest struct {
	Password string `json:"password" binding:"required"`
	Code     string `json:"code" binding:"required"`
}
