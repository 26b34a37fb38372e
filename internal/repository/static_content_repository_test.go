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

func setupStaticContentRepositoryTest(t *testing.T) *GormStaticContentRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.MigrateAll(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return NewStaticContentRepository(db)
}

func strPtr(s string) *string { return &s }

func TestStaticContentUpsertCreatesAndPatches(t *testing.T) {
	repo := setupStaticContentRepositoryTest(t)

	created, err := repo.Upsert(constants.StaticContentVisiMisi, StaticContentUpdate{
		Title:   strPtr("Visi dan Misi"),
		Content: strPtr("Terwujudnya ASN profesional."),
	})
	if err != nil {
		t.Fatalf("upsert create failed: %v", err)
	}
	if created == nil || created.Title != "Visi dan Misi" {
		t.Fatalf("expected created record, got %+v", created)
	}

	patched, err := repo.Upsert(constants.StaticContentVisiMisi, StaticContentUpdate{
		Title: strPtr("Visi, Misi, dan Motto"),
	})
	if err != nil {
		t.Fatalf("upsert patch failed: %v", err)
	}
	if patched.Title != "Visi, Misi, dan Motto" {
		t.Fatalf("expected patched title, got %q", patched.Title)
	}
	if patched.Content != "Terwujudnya ASN profesional." {
		t.Fatalf("expected untouched content, got %q", patched.Content)
	}
	if patched.ID != created.ID {
		t.Fatalf("expected same record, got id %d and %d", created.ID, patched.ID)
	}
}

func TestStaticContentUpsertClearsImage(t *testing.T) {
	repo := setupStaticContentRepositoryTest(t)

	if _, err := repo.Upsert("profil", StaticContentUpdate{
		Title:     strPtr("Profil"),
		ImagePath: strPtr("/uploads/profil.png"),
		HasImage:  true,
	}); err != nil {
		t.Fatalf("upsert with image failed: %v", err)
	}

	cleared, err := repo.Upsert("profil", StaticContentUpdate{
		ImagePath: nil,
		HasImage:  true,
	})
	if err != nil {
		t.Fatalf("upsert clearing image failed: %v", err)
	}
	if cleared.ImagePath != nil {
		t.Fatalf("expected cleared image path, got %v", *cleared.ImagePath)
	}
}

func TestStaticContentUpsertDefaultsMissingFields(t *testing.T) {
	repo := setupStaticContentRepositoryTest(t)

	created, err := repo.Upsert("kontak", StaticContentUpdate{})
	if err != nil {
		t.Fatalf("bare upsert failed: %v", err)
	}
	if created.Title != "" || created.Content != "" {
		t.Fatalf("expected empty defaults, got %+v", created)
	}
}
