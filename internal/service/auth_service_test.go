package service

import (
	"errors"
	"testing"
	"time"

	"github.com/bkpsdm/portal-api/internal/config"
	"github.com/bkpsdm/portal-api/internal/constants"
	"github.com/bkpsdm/portal-api/internal/models"
	"github.com/bkpsdm/portal-api/internal/repository"

	"gorm.io/gorm"
)

func setupAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	db := setupServiceTestDB(t)
	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret"
	cfg.JWT.ExpireHours = 24
	return NewAuthService(cfg, repository.NewUserRepository(db)), db
}

func seedAuthUser(t *testing.T, db *gorm.DB, username, password string, active bool) *models.User {
	t.Helper()
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	user := &models.User{
		Username:     username,
		Email:        username + "@bkpsdm.test",
		PasswordHash: hash,
		Role:         constants.RoleAdmin,
		IsActive:     active,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user failed: %v", err)
	}
	return user
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("rahasia1")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "rahasia1" {
		t.Fatalf("password stored in plain text")
	}
	if err := VerifyPassword(hash, "rahasia1"); err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if err := VerifyPassword(hash, "salah"); err == nil {
		t.Fatalf("expected mismatch error")
	}
}

func TestJWTRoundTrip(t *testing.T) {
	svc, _ := setupAuthService(t)

	user := &models.User{
		ID:       7,
		Username: "kepala",
		Role:     constants.RoleAdmin,
	}
	token, expiresAt, err := svc.GenerateJWT(user)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if time.Until(expiresAt) < 23*time.Hour {
		t.Fatalf("expiry too early: %v", expiresAt)
	}

	claims, err := svc.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if claims.UserID != 7 || claims.Username != "kepala" || claims.Role != constants.RoleAdmin {
		t.Fatalf("unexpected claims %+v", claims)
	}

	if _, err := svc.ParseJWT(token + "x"); err == nil {
		t.Fatalf("expected tampered token to fail")
	}
}

func TestLogin(t *testing.T) {
	svc, db := setupAuthService(t)
	seedAuthUser(t, db, "kepala", "rahasia1", true)
	seedAuthUser(t, db, "dormant", "rahasia1", false)

	user, token, _, err := svc.Login("kepala", "rahasia1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}
	if user.PasswordHash != "" {
		t.Fatalf("expected scrubbed user in login response")
	}

	if _, _, _, err := svc.Login("kepala", "salah"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, _, _, err := svc.Login("nobody", "rahasia1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown username, got %v", err)
	}
	if _, _, _, err := svc.Login("dormant", "rahasia1"); !errors.Is(err, ErrAccountInactive) {
		t.Fatalf("expected ErrAccountInactive, got %v", err)
	}
}
