package service

import (
	"time"

	"github.com/bkpsdm/portal-api/internal/constants"
	"github.com/bkpsdm/portal-api/internal/models"
	"github.com/bkpsdm/portal-api/internal/repository"
)

// EventService agenda kegiatan business service
type EventService struct {
	repo repository.EventRepository
}

// NewEventService creates the event service
func NewEventService(repo repository.EventRepository) *EventService {
	return &EventService{repo: repo}
}

// CreateEventInput create payload
type CreateEventInput struct {
	EventName   string
	StartDate   string
	EndDate     string
	Time        string
	Location    string
	Description string
	Organizer   string
}

// UpdateEventInput partial update payload; nil fields stay untouched
type UpdateEventInput struct {
	EventName   *string
	StartDate   *string
	EndDate     *string
	Time        *string
	Location    *string
	Description *string
	Organizer   *string
}

// IsEmpty reports whether the payload carries no updatable field
func (in UpdateEventInput) IsEmpty() bool {
	return in.EventName == nil && in.StartDate == nil && in.EndDate == nil &&
		in.Time == nil && in.Location == nil && in.Description == nil && in.Organizer == nil
}

// Create validates and inserts an event. The end date must not precede the
// start date.
func (s *EventService) Create(input CreateEventInput) (*models.Event, error) {
	if err := validateRequired("event_name", input.EventName); err != nil {
		return nil, err
	}
	if err := validateRequired("time", input.Time); err != nil {
		return nil, err
	}
	if err := validateRequired("location", input.Location); err != nil {
		return nil, err
	}
	if err := validateRequired("description", input.Description); err != nil {
		return nil, err
	}
	if err := validateRequired("organizer", input.Organizer); err != nil {
		return nil, err
	}
	startDate, err := parseDate("start_date", input.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate("end_date", input.EndDate)
	if err != nil {
		return nil, err
	}
	if endDate.Before(startDate) {
		return nil, newConstraintError("event_date_order", "end date must not be before start date")
	}

	event := models.Event{
		EventName:   input.EventName,
		StartDate:   startDate,
		EndDate:     endDate,
		Time:        input.Time,
		Location:    input.Location,
		Description: input.Description,
		Organizer:   input.Organizer,
	}
	if err := s.repo.Create(&event); err != nil {
		return nil, err
	}
	return &event, nil
}

// List lists events, earliest start first
func (s *EventService) List(limit, offset int) ([]models.Event, int64, error) {
	return s.repo.List(repository.EventListFilter{
		Limit:  limit,
		Offset: offset,
	})
}

// Upcoming lists events starting today or later
func (s *EventService) Upcoming(limit int) ([]models.Event, error) {
	if limit <= 0 {
		limit = constants.DefaultUpcomingLimit
	}
	items, _, err := s.repo.List(repository.EventListFilter{
		UpcomingOnly: true,
		Limit:        limit,
	})
	return items, err
}

// GetByID fetches one event
func (s *EventService) GetByID(id uint) (*models.Event, error) {
	event, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrNotFound
	}
	return event, nil
}

// Update applies only the provided fields. The date-order rule is re-checked
// against the merged record, so moving either boundary past the other fails.
func (s *EventService) Update(id uint, input UpdateEventInput) (*models.Event, error) {
	if input.EventName != nil {
		if err := validateRequired("event_name", *input.EventName); err != nil {
			return nil, err
		}
	}
	if input.Time != nil {
		if err := validateRequired("time", *input.Time); err != nil {
			return nil, err
		}
	}
	if input.Location != nil {
		if err := validateRequired("location", *input.Location); err != nil {
			return nil, err
		}
	}
	if input.Description != nil {
		if err := validateRequired("description", *input.Description); err != nil {
			return nil, err
		}
	}
	if input.Organizer != nil {
		if err := validateRequired("organizer", *input.Organizer); err != nil {
			return nil, err
		}
	}
	var startDate, endDate *time.Time
	if input.StartDate != nil {
		parsed, err := parseDate("start_date", *input.StartDate)
		if err != nil {
			return nil, err
		}
		startDate = &parsed
	}
	if input.EndDate != nil {
		parsed, err := parseDate("end_date", *input.EndDate)
		if err != nil {
			return nil, err
		}
		endDate = &parsed
	}

	event, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrNotFound
	}
	if input.IsEmpty() {
		return event, nil
	}

	mergedStart := event.StartDate
	if startDate != nil {
		mergedStart = *startDate
	}
	mergedEnd := event.EndDate
	if endDate != nil {
		mergedEnd = *endDate
	}
	if mergedEnd.Before(mergedStart) {
		return nil, newConstraintError("event_date_order", "end date must not be before start date")
	}

	if input.EventName != nil {
		event.EventName = *input.EventName
	}
	event.StartDate = mergedStart
	event.EndDate = mergedEnd
	if input.Time != nil {
		event.Time = *input.Time
	}
	if input.Location != nil {
		event.Location = *input.Location
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.Organizer != nil {
		event.Organizer = *input.Organizer
	}

	if err := s.repo.Update(event); err != nil {
		return nil, err
	}
	return event, nil
}

// Delete removes an event
func (s *EventService) Delete(id uint) error {
	event, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if event == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}
