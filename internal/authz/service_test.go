package authz

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAuthzService(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	svc, err := NewService(db)
	if err != nil {
		t.Fatalf("init authz failed: %v", err)
	}
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}
	return svc
}

func TestBuiltinRoleMatrix(t *testing.T) {
	svc := setupAuthzService(t)

	cases := []struct {
		role   string
		obj    string
		act    string
		expect bool
	}{
		{"admin", "/api/v1/admin/news", "POST", true},
		{"admin", "/api/v1/admin/users", "GET", true},
		{"admin", "/api/v1/admin/users/3", "DELETE", true},
		{"admin", "/api/v1/admin/config", "PUT", true},
		{"editor", "/api/v1/admin/news", "POST", true},
		{"editor", "/api/v1/admin/news/5", "DELETE", true},
		{"editor", "/api/v1/admin/events/2", "PUT", true},
		{"editor", "/api/v1/admin/static-content", "PUT", true},
		{"editor", "/api/v1/admin/users", "GET", false},
		{"editor", "/api/v1/admin/users/3", "DELETE", false},
		{"editor", "/api/v1/admin/config", "PUT", false},
	}
	for _, tc := range cases {
		ok, err := svc.EnforceRole(tc.role, tc.obj, tc.act)
		if err != nil {
			t.Fatalf("%s %s %s: enforce failed: %v", tc.role, tc.act, tc.obj, err)
		}
		if ok != tc.expect {
			t.Fatalf("%s %s %s: expected %v, got %v", tc.role, tc.act, tc.obj, tc.expect, ok)
		}
	}
}

func TestBootstrapIsIdempotent(t *testing.T) {
	svc := setupAuthzService(t)

	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("second bootstrap failed: %v", err)
	}
	ok, err := svc.EnforceRole("editor", "/admin/news", "GET")
	if err != nil || !ok {
		t.Fatalf("expected editor access after re-bootstrap, ok=%v err=%v", ok, err)
	}
}

func TestNormalizeRole(t *testing.T) {
	if _, err := NormalizeRole("  "); err == nil {
		t.Fatalf("expected error for blank role")
	}
	got, err := NormalizeRole("admin")
	if err != nil || got != "role:admin" {
		t.Fatalf("expected role:admin, got %q err=%v", got, err)
	}
	got, err = NormalizeRole("role:editor")
	if err != nil || got != "role:editor" {
		t.Fatalf("expected prefix kept, got %q err=%v", got, err)
	}
}

func TestNormalizeObject(t *testing.T) {
	cases := map[string]string{
		"":                   "/",
		"/api/v1":            "/",
		"/api/v1/admin/news": "/admin/news",
		"/public/news":       "/public/news",
		"admin/config":       "/admin/config",
	}
	for in, want := range cases {
		if got := NormalizeObject(in); got != want {
			t.Fatalf("NormalizeObject(%q) = %q, want %q", in, got, want)
		}
	}
}
