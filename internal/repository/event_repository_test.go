package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bkpsdm/portal-api/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupEventRepositoryTest(t *testing.T) (*GormEventRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.MigrateAll(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return NewEventRepository(db), db
}

func TestEventListUpcomingBoundary(t *testing.T) {
	repo, db := setupEventRepositoryTest(t)

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	events := []models.Event{
		{EventName: "Kemarin", StartDate: startOfDay.AddDate(0, 0, -1), EndDate: startOfDay.AddDate(0, 0, -1), Time: "09.00", Location: "Aula", Description: "d", Organizer: "o"},
		{EventName: "Hari Ini", StartDate: startOfDay, EndDate: startOfDay, Time: "09.00", Location: "Aula", Description: "d", Organizer: "o"},
		{EventName: "Minggu Depan", StartDate: startOfDay.AddDate(0, 0, 7), EndDate: startOfDay.AddDate(0, 0, 7), Time: "09.00", Location: "Aula", Description: "d", Organizer: "o"},
	}
	for i := range events {
		if err := db.Create(&events[i]).Error; err != nil {
			t.Fatalf("create event failed: %v", err)
		}
	}

	got, total, err := repo.List(EventListFilter{UpcomingOnly: true})
	if err != nil {
		t.Fatalf("list upcoming failed: %v", err)
	}
	if total != 2 || len(got) != 2 {
		t.Fatalf("expected 2 upcoming events, got total=%d len=%d", total, len(got))
	}
	if got[0].EventName != "Hari Ini" || got[1].EventName != "Minggu Depan" {
		t.Fatalf("expected events starting today first, got %q then %q", got[0].EventName, got[1].EventName)
	}
}
