package services

import (
	"context"

	"github.com/LovationAdmin/holiday-api/models"
	"github.com/LovationAdmin/holiday-api/repository"
)

type MemberService struct {
	users repository.UserRepository
}

func NewMemberService(users repository.UserRepository) *MemberService {
	return &MemberService{users: users}
}

// List returns the roster ordered by join date.
func (s *MemberService) List(ctx context.Context) ([]models.Member, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fromStore("list members", "member", err)
	}

	members := make([]models.Member, 0, len(users))
	for _, u := range users {
		members = append(members, models.Member{
			ID:       u.ID,
			Name:     u.Name,
			IsAdmin:  u.Admin(),
			JoinedAt: u.CreatedAt,
		})
	}
	return members, nil
}

// SetRole changes a member's stored role. Admins cannot demote themselves.
func (s *MemberService) SetRole(ctx context.Context, actor *models.User, targetID, role string) (*models.Member, error) {
	if !actor.Admin() {
		return nil, forbidden("Admin access required")
	}
	if role != models.RoleMember && role != models.RoleAdmin {
		return nil, invalid("role", "Role must be member or admin")
	}
	if actor.ID == targetID && role != models.RoleAdmin {
		return nil, invalid("role", "You cannot remove your own admin role")
	}

	if err := s.users.SetRole(ctx, targetID, role); err != nil {
		return nil, fromStore("set role", "member", err)
	}

	user, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return nil, fromStore("load member", "member", err)
	}
	return &models.Member{ID: user.ID, Name: user.Name, IsAdmin: user.Admin(), JoinedAt: user.CreatedAt}, nil
}
