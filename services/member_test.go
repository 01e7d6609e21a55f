package services

import (
	"context"
	"testing"

	"github.com/LovationAdmin/holiday-api/models"
)

func TestMemberService_ListInJoinOrder(t *testing.T) {
	env := newTestEnv(t)
	for _, name := range []string{"Zed", "Amy", "Kim"} {
		env.user(t, name)
	}

	members, err := env.members.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"Zed", "Amy", "Kim"}
	if len(members) != len(want) {
		t.Fatalf("List returned %d members, want %d", len(members), len(want))
	}
	for i, name := range want {
		if members[i].Name != name {
			t.Errorf("members[%d] = %s, want %s", i, members[i].Name, name)
		}
	}
}

func TestMemberService_SetRole(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := env.user(t, "Admin")
	if err := env.store.Users.SetRole(ctx, admin.ID, models.RoleAdmin); err != nil {
		t.Fatalf("SetRole: %v", err)
	}
	admin.Role = models.RoleAdmin
	bob := env.user(t, "Bob")

	member, err := env.members.SetRole(ctx, admin, bob.ID, models.RoleAdmin)
	if err != nil {
		t.Fatalf("SetRole: %v", err)
	}
	if !member.IsAdmin {
		t.Errorf("Bob not promoted: %+v", member)
	}

	tests := []struct {
		name   string
		actor  *models.User
		target string
		role   string
		check  func(error) bool
	}{
		{"member actor", bob, admin.ID, models.RoleMember, isForbidden},
		{"unknown role", admin, bob.ID, "owner", isValidation},
		{"self demotion", admin, admin.ID, models.RoleMember, isValidation},
		{"unknown member", admin, "3f1c1d3e-0000-4000-8000-000000000000", models.RoleMember, isNotFound},
	}
	bob.Role = models.RoleMember
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := env.members.SetRole(ctx, tt.actor, tt.target, tt.role); !tt.check(err) {
				t.Errorf("SetRole = %v", err)
			}
		})
	}
}
