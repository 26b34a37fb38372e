package service

import (
	"errors"
	"testing"

	"github.com/bkpsdm/portal-api/internal/constants"
	"github.com/bkpsdm/portal-api/internal/repository"
)

func setupUserService(t *testing.T) *UserService {
	t.Helper()
	return NewUserService(repository.NewUserRepository(setupServiceTestDB(t)))
}

func TestUserCreateHashesAndScrubs(t *testing.T) {
	svc := setupUserService(t)

	user, err := svc.Create(CreateUserInput{
		Username: "operator",
		Email:    "operator@bkpsdm.test",
		Password: "rahasia1",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if user.PasswordHash != "" {
		t.Fatalf("expected scrubbed hash in the response")
	}
	if user.Role != constants.RoleEditor {
		t.Fatalf("expected editor default role, got %q", user.Role)
	}
	if !user.IsActive {
		t.Fatalf("expected active account by default")
	}

	stored, err := svc.GetByUsername("operator")
	if err != nil {
		t.Fatalf("get by username failed: %v", err)
	}
	if stored.PasswordHash == "" || stored.PasswordHash == "rahasia1" {
		t.Fatalf("expected bcrypt hash in storage, got %q", stored.PasswordHash)
	}
	if err := VerifyPassword(stored.PasswordHash, "rahasia1"); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestUserCreateValidation(t *testing.T) {
	svc := setupUserService(t)

	cases := []struct {
		name  string
		input CreateUserInput
		field string
	}{
		{"short username", CreateUserInput{Username: "ab", Email: "a@b.co", Password: "rahasia1"}, "username"},
		{"bad email", CreateUserInput{Username: "abc", Email: "bukan-email", Password: "rahasia1"}, "email"},
		{"short password", CreateUserInput{Username: "abc", Email: "a@b.co", Password: "12345"}, "password"},
		{"bad role", CreateUserInput{Username: "abc", Email: "a@b.co", Password: "rahasia1", Role: "superuser"}, "role"},
	}
	for _, tc := range cases {
		_, err := svc.Create(tc.input)
		var validationErr *ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("%s: expected ValidationError, got %v", tc.name, err)
		}
		if validationErr.Field != tc.field {
			t.Fatalf("%s: expected field %q, got %q", tc.name, tc.field, validationErr.Field)
		}
	}
}

func TestUserCreateUniqueness(t *testing.T) {
	svc := setupUserService(t)

	if _, err := svc.Create(CreateUserInput{Username: "operator", Email: "op@bkpsdm.test", Password: "rahasia1"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err := svc.Create(CreateUserInput{Username: "operator", Email: "lain@bkpsdm.test", Password: "rahasia1"})
	var constraintErr *ConstraintError
	if !errors.As(err, &constraintErr) || constraintErr.Rule != "unique_username" {
		t.Fatalf("expected unique_username constraint, got %v", err)
	}

	_, err = svc.Create(CreateUserInput{Username: "lainnya", Email: "op@bkpsdm.test", Password: "rahasia1"})
	if !errors.As(err, &constraintErr) || constraintErr.Rule != "unique_email" {
		t.Fatalf("expected unique_email constraint, got %v", err)
	}
}

func TestUserListScrubsHashes(t *testing.T) {
	svc := setupUserService(t)

	if _, err := svc.Create(CreateUserInput{Username: "operator", Email: "op@bkpsdm.test", Password: "rahasia1"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	users, total, err := svc.List(0, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(users) != 1 {
		t.Fatalf("expected one account, got total=%d len=%d", total, len(users))
	}
	if users[0].PasswordHash != "" {
		t.Fatalf("expected scrubbed hash in listing")
	}
}

func TestUserUpdateLastActiveAdminGuard(t *testing.T) {
	svc := setupUserService(t)

	admin, err := svc.Create(CreateUserInput{
		Username: "kepala", Email: "kepala@bkpsdm.test", Password: "rahasia1",
		Role: constants.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("create admin failed: %v", err)
	}

	if _, err := svc.Update(admin.ID, UpdateUserInput{IsActive: boolPtr(false)}); !errors.Is(err, ErrLastActiveAdmin) {
		t.Fatalf("expected ErrLastActiveAdmin on deactivation, got %v", err)
	}
	if _, err := svc.Update(admin.ID, UpdateUserInput{Role: stringPtr(constants.RoleEditor)}); !errors.Is(err, ErrLastActiveAdmin) {
		t.Fatalf("expected ErrLastActiveAdmin on demotion, got %v", err)
	}

	if _, err := svc.Create(CreateUserInput{
		Username: "wakil", Email: "wakil@bkpsdm.test", Password: "rahasia1",
		Role: constants.RoleAdmin,
	}); err != nil {
		t.Fatalf("create second admin failed: %v", err)
	}

	if _, err := svc.Update(admin.ID, UpdateUserInput{Role: stringPtr(constants.RoleEditor)}); err != nil {
		t.Fatalf("demotion with another active admin should succeed: %v", err)
	}
}

func TestUserDeleteMapsPolicyError(t *testing.T) {
	svc := setupUserService(t)

	admin, err := svc.Create(CreateUserInput{
		Username: "kepala", Email: "kepala@bkpsdm.test", Password: "rahasia1",
		Role: constants.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("create admin failed: %v", err)
	}

	if err := svc.Delete(admin.ID); !errors.Is(err, ErrLastActiveAdmin) {
		t.Fatalf("expected ErrLastActiveAdmin, got %v", err)
	}
	if err := svc.Delete(999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
