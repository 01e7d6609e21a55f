package services

import (
	"context"
	"errors"
	"strings"

	"github.com/LovationAdmin/holiday-api/models"
	"github.com/LovationAdmin/holiday-api/repository"
	"github.com/LovationAdmin/holiday-api/utils"
)

const (
	minNameLength     = 2
	minPasswordLength = 6
)

// ErrTOTPRequired is returned by Signin when the account has 2FA enabled and
// no code was supplied. It matches ErrUnauthorized.
var ErrTOTPRequired = &kindError{kind: ErrUnauthorized, message: "2FA code required"}

// AuthService is the access control gate: invite-code signup, password signin,
// token issue and the member/admin checks.
type AuthService struct {
	users      repository.UserRepository
	tokens     *utils.TokenManager
	inviteCode string
	adminName  string
}

func NewAuthService(users repository.UserRepository, tokens *utils.TokenManager, inviteCode, adminName string) *AuthService {
	return &AuthService{
		users:      users,
		tokens:     tokens,
		inviteCode: strings.TrimSpace(inviteCode),
		adminName:  strings.TrimSpace(adminName),
	}
}

// Signup registers a member. A legacy row with the same name and no password
// is claimed instead of rejected.
func (s *AuthService) Signup(ctx context.Context, req models.SignupRequest) (*models.AuthResponse, error) {
	name := strings.TrimSpace(req.Name)
	if len([]rune(name)) < minNameLength {
		return nil, invalid("name", "Name must be at least %d characters", minNameLength)
	}
	if len(req.Password) < minPasswordLength {
		return nil, invalid("password", "Password must be at least %d characters", minPasswordLength)
	}
	if s.inviteCode == "" || strings.TrimSpace(req.InviteCode) != s.inviteCode {
		utils.LogAuthAction("signup", name, false)
		return nil, unauthorized("Invalid invite code")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, &StorageError{Op: "hash password", Err: err}
	}

	user, err := s.users.GetByName(ctx, name)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		role := models.RoleMember
		if s.isAdminName(name) {
			role = models.RoleAdmin
		}
		user, err = s.users.Create(ctx, &models.User{Name: name, Role: role, PasswordHash: hash})
		if err != nil {
			return nil, fromStore("create user", "user", err)
		}
	case err != nil:
		return nil, fromStore("load user", "user", err)
	case user.PasswordHash != "":
		return nil, invalid("name", "Name already taken")
	default:
		if err := s.users.SetPassword(ctx, user.ID, hash); err != nil {
			return nil, fromStore("set password", "user", err)
		}
		user.PasswordHash = hash
	}

	if err := s.syncRole(ctx, user); err != nil {
		return nil, err
	}

	utils.LogAuthAction("signup", name, true)
	return s.issue(user)
}

// Signin checks the password (and TOTP code when enabled) and issues a token.
func (s *AuthService) Signin(ctx context.Context, req models.SigninRequest) (*models.AuthResponse, error) {
	name := strings.TrimSpace(req.Name)

	user, err := s.users.GetByName(ctx, name)
	if errors.Is(err, repository.ErrNotFound) {
		utils.LogAuthAction("signin", name, false)
		return nil, unauthorized("Invalid credentials")
	}
	if err != nil {
		return nil, fromStore("load user", "user", err)
	}

	if user.PasswordHash == "" {
		return nil, unauthorized("No password set for this account, please sign up again with the invite code")
	}
	if !utils.CheckPassword(req.Password, user.PasswordHash) {
		utils.LogAuthAction("signin", name, false)
		return nil, unauthorized("Invalid credentials")
	}

	if user.TOTPEnabled {
		if req.TOTPCode == "" {
			return nil, ErrTOTPRequired
		}
		if !utils.VerifyTOTP(user.TOTPSecret, req.TOTPCode) {
			utils.LogAuthAction("signin", name, false)
			return nil, unauthorized("Invalid 2FA code")
		}
	}

	if err := s.syncRole(ctx, user); err != nil {
		return nil, err
	}

	utils.LogAuthAction("signin", name, true)
	return s.issue(user)
}

// CurrentIdentity resolves a token subject to the stored user. A subject whose
// user no longer exists is unauthenticated.
func (s *AuthService) CurrentIdentity(ctx context.Context, userID string) (*models.User, error) {
	if userID == "" {
		return nil, unauthorized("Authentication required")
	}
	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, unauthorized("User no longer exists")
	}
	if err != nil {
		return nil, fromStore("load user", "user", err)
	}
	return user, nil
}

// Authorize applies the gate to a resolved identity.
func Authorize(user *models.User, requireAdmin bool) error {
	if user == nil {
		return unauthorized("Authentication required")
	}
	if requireAdmin && !user.Admin() {
		return forbidden("Admin access required")
	}
	return nil
}

// ParseToken returns the user id carried by a bearer token.
func (s *AuthService) ParseToken(token string) (string, error) {
	userID, err := s.tokens.ParseAccessToken(token)
	if err != nil {
		return "", unauthorized("Invalid or expired token")
	}
	return userID, nil
}

// SyncAdmin promotes the configured admin name if it exists with another role.
// It runs once at startup.
func (s *AuthService) SyncAdmin(ctx context.Context) error {
	if s.adminName == "" {
		return nil
	}
	user, err := s.users.GetByName(ctx, s.adminName)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fromStore("load admin", "user", err)
	}
	return s.syncRole(ctx, user)
}

// ============================================================================
// 2FA
// ============================================================================

// SetupTOTP stores a fresh secret for the user without enabling it.
func (s *AuthService) SetupTOTP(ctx context.Context, user *models.User) (*models.TOTPSetupResponse, error) {
	if user.TOTPEnabled {
		return nil, invalid("totp", "2FA is already enabled")
	}

	secret, url, err := utils.GenerateTOTPSecret(user.Name)
	if err != nil {
		return nil, &StorageError{Op: "generate totp secret", Err: err}
	}
	if err := s.users.SetTOTP(ctx, user.ID, secret, false); err != nil {
		return nil, fromStore("store totp secret", "user", err)
	}
	return &models.TOTPSetupResponse{Secret: secret, URL: url}, nil
}

// VerifyTOTP enables 2FA once the user proves they hold the secret.
func (s *AuthService) VerifyTOTP(ctx context.Context, user *models.User, code string) error {
	if user.TOTPSecret == "" {
		return invalid("totp", "Run 2FA setup first")
	}
	if !utils.VerifyTOTP(user.TOTPSecret, code) {
		return invalid("code", "Invalid 2FA code")
	}
	return fromStore("enable totp", "user", s.users.SetTOTP(ctx, user.ID, user.TOTPSecret, true))
}

// DisableTOTP turns 2FA off after checking both the password and a current code.
func (s *AuthService) DisableTOTP(ctx context.Context, user *models.User, password, code string) error {
	if !user.TOTPEnabled {
		return invalid("totp", "2FA is not enabled")
	}
	if !utils.CheckPassword(password, user.PasswordHash) {
		return unauthorized("Invalid password")
	}
	if !utils.VerifyTOTP(user.TOTPSecret, code) {
		return invalid("code", "Invalid 2FA code")
	}
	return fromStore("disable totp", "user", s.users.SetTOTP(ctx, user.ID, "", false))
}

func (s *AuthService) issue(user *models.User) (*models.AuthResponse, error) {
	token, err := s.tokens.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, &StorageError{Op: "sign token", Err: err}
	}
	user.IsAdmin = user.Admin()
	return &models.AuthResponse{Token: token, User: *user}, nil
}

// syncRole forces admin for the configured admin name. Other names keep their
// stored role.
func (s *AuthService) syncRole(ctx context.Context, user *models.User) error {
	if !s.isAdminName(user.Name) || user.Role == models.RoleAdmin {
		return nil
	}
	if err := s.users.SetRole(ctx, user.ID, models.RoleAdmin); err != nil {
		return fromStore("promote admin", "user", err)
	}
	user.Role = models.RoleAdmin
	user.IsAdmin = true
	return nil
}

func (s *AuthService) isAdminName(name string) bool {
	return s.adminName != "" && strings.EqualFold(strings.TrimSpace(name), s.adminName)
}
