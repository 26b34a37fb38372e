package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bkpsdm/portal-api/internal/constants"
	"github.com/bkpsdm/portal-api/internal/models"
	"github.com/bkpsdm/portal-api/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.MigrateAll(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

func setupNewsService(t *testing.T) *NewsService {
	t.Helper()
	return NewNewsService(repository.NewNewsRepository(setupServiceTestDB(t)))
}

func stringPtr(s string) *string { return &s }
func boolPtr(b bool) *bool       { return &b }

func TestNewsCreateDefaults(t *testing.T) {
	svc := setupNewsService(t)

	news, err := svc.Create(CreateNewsInput{
		Title:       "Judul",
		Content:     "Isi",
		PublishDate: "2026-08-01",
		Author:      "Humas",
		Category:    constants.NewsCategoryUmum,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if news.Status {
		t.Fatalf("expected draft status by default")
	}
	if news.ViewCount != 0 {
		t.Fatalf("expected zero views, got %d", news.ViewCount)
	}
	if news.PublishDate.Format("2006-01-02") != "2026-08-01" {
		t.Fatalf("unexpected publish date %v", news.PublishDate)
	}
}

func TestNewsCreateValidation(t *testing.T) {
	svc := setupNewsService(t)

	cases := []struct {
		name  string
		input CreateNewsInput
		field string
	}{
		{"missing title", CreateNewsInput{Content: "x", PublishDate: "2026-01-01", Author: "a", Category: constants.NewsCategoryUmum}, "title"},
		{"missing content", CreateNewsInput{Title: "t", PublishDate: "2026-01-01", Author: "a", Category: constants.NewsCategoryUmum}, "content"},
		{"bad category", CreateNewsInput{Title: "t", Content: "x", PublishDate: "2026-01-01", Author: "a", Category: "olahraga"}, "category"},
		{"bad date", CreateNewsInput{Title: "t", Content: "x", PublishDate: "bukan-tanggal", Author: "a", Category: constants.NewsCategoryUmum}, "publish_date"},
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

func TestNewsGetByIDCountsView(t *testing.T) {
	svc := setupNewsService(t)

	created, err := svc.Create(CreateNewsInput{
		Title: "t", Content: "x", PublishDate: "2026-01-01", Author: "a",
		Category: constants.NewsCategoryUmum,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := svc.GetByID(created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.ViewCount != 1 {
		t.Fatalf("expected one view, got %d", got.ViewCount)
	}

	if _, err := svc.GetByID(999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestNewsUpdateEmptyPayloadReturnsUnchanged(t *testing.T) {
	svc := setupNewsService(t)

	created, err := svc.Create(CreateNewsInput{
		Title: "Asli", Content: "x", PublishDate: "2026-01-01", Author: "a",
		Category: constants.NewsCategoryUmum,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := svc.Update(created.ID, UpdateNewsInput{})
	if err != nil {
		t.Fatalf("empty update failed: %v", err)
	}
	if got.Title != "Asli" || got.ID != created.ID {
		t.Fatalf("expected unchanged record, got %+v", got)
	}

	if _, err := svc.Update(999, UpdateNewsInput{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing id, got %v", err)
	}
}

func TestNewsUpdateMergesFields(t *testing.T) {
	svc := setupNewsService(t)

	created, err := svc.Create(CreateNewsInput{
		Title: "Asli", Content: "Isi", PublishDate: "2026-01-01", Author: "a",
		Category: constants.NewsCategoryUmum,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := svc.Update(created.ID, UpdateNewsInput{
		Title:  stringPtr("Diubah"),
		Status: boolPtr(true),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if got.Title != "Diubah" || !got.Status {
		t.Fatalf("expected merged update, got %+v", got)
	}
	if got.Content != "Isi" {
		t.Fatalf("expected untouched content, got %q", got.Content)
	}
}

func TestNewsPopularAndLatest(t *testing.T) {
	db := setupServiceTestDB(t)
	repo := repository.NewNewsRepository(db)
	svc := NewNewsService(repo)

	seed := []models.News{
		{Title: "Sering Dibaca", Content: "x", PublishDate: time.Now().AddDate(0, 0, -5), Author: "a", Category: constants.NewsCategoryUmum, Status: true, ViewCount: 50},
		{Title: "Baru Terbit", Content: "x", PublishDate: time.Now(), Author: "a", Category: constants.NewsCategoryUmum, Status: true, ViewCount: 1},
		{Title: "Draf", Content: "x", PublishDate: time.Now(), Author: "a", Category: constants.NewsCategoryUmum, Status: false, ViewCount: 99},
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	popular, err := svc.Popular(1)
	if err != nil {
		t.Fatalf("popular failed: %v", err)
	}
	if len(popular) != 1 || popular[0].Title != "Draf" {
		t.Fatalf("expected most viewed article, got %+v", popular)
	}

	latest, err := svc.Latest(1)
	if err != nil {
		t.Fatalf("latest failed: %v", err)
	}
	if len(latest) != 1 || latest[0].Title != "Baru Terbit" {
		t.Fatalf("expected latest published article, got %+v", latest)
	}
}
