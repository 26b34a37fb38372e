package service

import (
	"errors"
	"testing"

	"github.com/bkpsdm/portal-api/internal/repository"
)

func setupEventService(t *testing.T) *EventService {
	t.Helper()
	return NewEventService(repository.NewEventRepository(setupServiceTestDB(t)))
}

func validEventInput() CreateEventInput {
	return CreateEventInput{
		EventName:   "Rapat Koordinasi",
		StartDate:   "2026-09-01",
		EndDate:     "2026-09-02",
		Time:        "09.00 - 12.00 WIB",
		Location:    "Aula",
		Description: "rapat",
		Organizer:   "Sekretariat",
	}
}

func TestEventCreateDateOrder(t *testing.T) {
	svc := setupEventService(t)

	input := validEventInput()
	input.EndDate = "2026-08-31"
	_, err := svc.Create(input)
	var constraintErr *ConstraintError
	if !errors.As(err, &constraintErr) {
		t.Fatalf("expected ConstraintError, got %v", err)
	}
	if constraintErr.Rule != "event_date_order" {
		t.Fatalf("unexpected rule %q", constraintErr.Rule)
	}

	// equal dates are allowed
	input = validEventInput()
	input.EndDate = input.StartDate
	if _, err := svc.Create(input); err != nil {
		t.Fatalf("single-day event should be allowed: %v", err)
	}
}

func TestEventUpdateRevalidatesDateOrder(t *testing.T) {
	svc := setupEventService(t)

	created, err := svc.Create(validEventInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// moving only the end date before the stored start date must fail
	_, err = svc.Update(created.ID, UpdateEventInput{EndDate: stringPtr("2026-08-30")})
	var constraintErr *ConstraintError
	if !errors.As(err, &constraintErr) {
		t.Fatalf("expected ConstraintError, got %v", err)
	}

	// moving both dates together is fine
	got, err := svc.Update(created.ID, UpdateEventInput{
		StartDate: stringPtr("2026-10-01"),
		EndDate:   stringPtr("2026-10-03"),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if got.StartDate.Format("2006-01-02") != "2026-10-01" {
		t.Fatalf("unexpected start date %v", got.StartDate)
	}
}

func TestEventCreateValidation(t *testing.T) {
	svc := setupEventService(t)

	input := validEventInput()
	input.Location = " "
	_, err := svc.Create(input)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if validationErr.Field != "location" {
		t.Fatalf("expected location field, got %q", validationErr.Field)
	}
}
