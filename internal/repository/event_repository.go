package repository

import (
	"context"

	"gorm.io/gorm"

	"eventhub/internal/model"
)

// EventRepository defines event persistence operations.
type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	FindByID(ctx context.Context, id uint) (*model.Event, error)
	List(ctx context.Context, offset, limit int) ([]model.Event, error)
	Save(ctx context.Context, event *model.Event) error
	Delete(ctx context.Context, id uint) error
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo EventRepository) error) error
}

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository builds a GORM-backed repository.
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// FindByID loads an event with its creator resolved.
func (r *eventRepository) FindByID(ctx context.Context, id uint) (*model.Event, error) {
	var event model.Event
	if err := r.db.WithContext(ctx).Preload("CreatedBy").First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// List returns a page of events with creators resolved in a single extra
// query rather than one lookup per row.
func (r *eventRepository) List(ctx context.Context, offset, limit int) ([]model.Event, error) {
	var events []model.Event
	if err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) Save(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *eventRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Event{}, id).Error
}

// WithTransaction executes fn within a database transaction. The transaction
// commits when fn returns nil and rolls back otherwise.
func (r *eventRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo EventRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &eventRepository{db: tx})
	})
}
