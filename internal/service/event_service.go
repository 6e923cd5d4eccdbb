package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"eventhub/internal/errors"
	"eventhub/internal/model"
	"eventhub/internal/repository"
)

const (
	defaultEventLimit = 100
	maxEventLimit     = 500
)

// EventCreateInput carries the fields needed to create an event.
type EventCreateInput struct {
	Title       string
	Description string
	Date        time.Time
	Time        string
	ImageURL    string
}

// EventUpdateInput carries partial-update fields; nil means "leave unchanged".
type EventUpdateInput struct {
	Title       *string
	Description *string
	Date        *time.Time
	Time        *string
	ImageURL    *string
}

// EventService handles event CRUD operations.
type EventService interface {
	ListEvents(ctx context.Context, skip, limit int) ([]model.Event, error)
	CreateEvent(ctx context.Context, in EventCreateInput, createdByID uint) (*model.Event, error)
	UpdateEvent(ctx context.Context, id uint, in EventUpdateInput) (*model.Event, error)
	DeleteEvent(ctx context.Context, id uint) error
}

type eventService struct {
	repo      repository.EventRepository
	validator *EventValidator
}

// NewEventService creates a new event service.
func NewEventService(repo repository.EventRepository, validator *EventValidator) EventService {
	return &eventService{
		repo:      repo,
		validator: validator,
	}
}

// ListEvents returns a page of events with creators resolved. Negative skip
// resets to 0; limit defaults to 100 and is capped at 500.
func (s *eventService) ListEvents(ctx context.Context, skip, limit int) ([]model.Event, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultEventLimit
	}
	if limit > maxEventLimit {
		limit = maxEventLimit
	}

	events, err := s.repo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// CreateEvent validates the time format and persists the event attributed to
// its creator, all within one transaction.
func (s *eventService) CreateEvent(ctx context.Context, in EventCreateInput, createdByID uint) (*model.Event, error) {
	if err := s.validator.ValidateTime(in.Time); err != nil {
		return nil, err
	}

	var created *model.Event
	err := s.repo.WithTransaction(ctx, func(ctx context.Context, repo repository.EventRepository) error {
		event := &model.Event{
			Title:       in.Title,
			Description: in.Description,
			Date:        in.Date,
			Time:        in.Time,
			ImageURL:    in.ImageURL,
			CreatedByID: createdByID,
		}
		if err := repo.Create(ctx, event); err != nil {
			return fmt.Errorf("create event: %w", err)
		}

		// Re-read so the response carries the resolved creator.
		loaded, err := repo.FindByID(ctx, event.ID)
		if err != nil {
			return fmt.Errorf("load created event: %w", err)
		}
		created = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateEvent applies a partial update. Only non-nil input fields change;
// the time format is re-validated when present. The existence check and the
// save run in one transaction.
func (s *eventService) UpdateEvent(ctx context.Context, id uint, in EventUpdateInput) (*model.Event, error) {
	var updated *model.Event
	err := s.repo.WithTransaction(ctx, func(ctx context.Context, repo repository.EventRepository) error {
		event, err := repo.FindByID(ctx, id)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrEventNotFound
			}
			return fmt.Errorf("find event: %w", err)
		}

		if in.Time != nil {
			if err := s.validator.ValidateTime(*in.Time); err != nil {
				return err
			}
			event.Time = *in.Time
		}
		if in.Title != nil {
			event.Title = *in.Title
		}
		if in.Description != nil {
			event.Description = *in.Description
		}
		if in.Date != nil {
			event.Date = *in.Date
		}
		if in.ImageURL != nil {
			event.ImageURL = *in.ImageURL
		}

		if err := repo.Save(ctx, event); err != nil {
			return fmt.Errorf("save event: %w", err)
		}
		updated = event
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteEvent hard-deletes an event after checking it exists.
func (s *eventService) DeleteEvent(ctx context.Context, id uint) error {
	return s.repo.WithTransaction(ctx, func(ctx context.Context, repo repository.EventRepository) error {
		if _, err := repo.FindByID(ctx, id); err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrEventNotFound
			}
			return fmt.Errorf("find event: %w", err)
		}
		if err := repo.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete event: %w", err)
		}
		return nil
	})
}
