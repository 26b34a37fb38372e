package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/bkpsdm/portal-api/internal/constants"
	"github.com/bkpsdm/portal-api/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupWebsiteConfigRepositoryTest(t *testing.T) *GormWebsiteConfigRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.MigrateAll(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return NewWebsiteConfigRepository(db)
}

func TestWebsiteConfigUpsert(t *testing.T) {
	repo := setupWebsiteConfigRepositoryTest(t)

	created, err := repo.Upsert(constants.ConfigKeyHeaderLogo, "/uploads/logo-a.png")
	if err != nil {
		t.Fatalf("upsert create failed: %v", err)
	}
	if created == nil || created.Value != "/uploads/logo-a.png" {
		t.Fatalf("expected created config, got %+v", created)
	}

	updated, err := repo.Upsert(constants.ConfigKeyHeaderLogo, "/uploads/logo-b.png")
	if err != nil {
		t.Fatalf("upsert overwrite failed: %v", err)
	}
	if updated.Value != "/uploads/logo-b.png" {
		t.Fatalf("expected overwritten value, got %q", updated.Value)
	}
	if updated.ID != created.ID {
		t.Fatalf("expected same record, got id %d and %d", created.ID, updated.ID)
	}

	all, err := repo.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected single config entry, got %d", len(all))
	}

	missing, err := repo.GetByKey("does-not-exist")
	if err != nil {
		t.Fatalf("get missing key failed: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing key, got %+v", missing)
	}
}
