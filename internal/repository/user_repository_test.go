package repository

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/bkpsdm/portal-api/internal/constants"
	"github.com/bkpsdm/portal-api/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupUserRepositoryTest(t *testing.T) (*GormUserRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.MigrateAll(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return NewUserRepository(db), db
}

func createTestUser(t *testing.T, db *gorm.DB, username, role string, active bool) *models.User {
	t.Helper()
	user := &models.User{
		Username:     username,
		Email:        username + "@bkpsdm.test",
		PasswordHash: "hash",
		Role:         role,
		IsActive:     active,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user %s failed: %v", username, err)
	}
	return user
}

func TestUserDeleteLastActiveAdmin(t *testing.T) {
	repo, db := setupUserRepositoryTest(t)
	admin := createTestUser(t, db, "admin", constants.RoleAdmin, true)
	createTestUser(t, db, "editor", constants.RoleEditor, true)

	_, err := repo.Delete(admin.ID)
	if !errors.Is(err, ErrLastActiveAdmin) {
		t.Fatalf("expected ErrLastActiveAdmin, got %v", err)
	}

	var count int64
	if err := db.Model(&models.User{}).Where("id = ?", admin.ID).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("admin should not have been deleted")
	}
}

func TestUserDeleteAdminWithAnotherActiveAdmin(t *testing.T) {
	repo, db := setupUserRepositoryTest(t)
	first := createTestUser(t, db, "admin1", constants.RoleAdmin, true)
	createTestUser(t, db, "admin2", constants.RoleAdmin, true)

	deleted, err := repo.Delete(first.ID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !deleted {
		t.Fatalf("expected deletion to succeed")
	}
}

func TestUserDeleteInactiveAdminIgnoresGuard(t *testing.T) {
	repo, db := setupUserRepositoryTest(t)
	createTestUser(t, db, "admin", constants.RoleAdmin, true)
	inactive := createTestUser(t, db, "dormant", constants.RoleAdmin, false)

	deleted, err := repo.Delete(inactive.ID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !deleted {
		t.Fatalf("expected inactive admin deletion to succeed")
	}
}

func TestUserDeleteMissing(t *testing.T) {
	repo, _ := setupUserRepositoryTest(t)

	deleted, err := repo.Delete(999)
	if err != nil {
		t.Fatalf("delete missing failed: %v", err)
	}
	if deleted {
		t.Fatalf("expected no deletion for missing id")
	}
}

func TestUserCreateKeepsInactive(t *testing.T) {
	repo, db := setupUserRepositoryTest(t)
	created := createTestUser(t, db, "dormant", constants.RoleEditor, false)

	got, err := repo.GetByID(created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got == nil || got.IsActive {
		t.Fatalf("explicit inactive account must stay inactive, got %+v", got)
	}
}

func TestUserGetByUsernameKeepsHash(t *testing.T) {
	repo, db := setupUserRepositoryTest(t)
	createTestUser(t, db, "operator", constants.RoleEditor, true)

	got, err := repo.GetByUsername("operator")
	if err != nil {
		t.Fatalf("get by username failed: %v", err)
	}
	if got == nil || got.PasswordHash != "hash" {
		t.Fatalf("expected password hash on the auth path, got %+v", got)
	}

	missing, err := repo.GetByUsername("nobody")
	if err != nil {
		t.Fatalf("get missing username failed: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing username, got %+v", missing)
	}
}
