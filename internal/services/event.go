package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"evently/internal/domain"
)

// CategoryAll disables category filtering in event listings.
const CategoryAll = "all"

type eventService struct {
	eventRepo      domain.EventRepository
	publisher      domain.EventPublisher
	logger         *slog.Logger
	now            func() time.Time
	contextTimeout time.Duration
}

func NewEventService(eventRepo domain.EventRepository, publisher domain.EventPublisher, logger *slog.Logger, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		publisher:      publisher,
		logger:         logger,
		now:            time.Now,
		contextTimeout: timeout,
	}
}

func (s *eventService) ListEvents(ctx context.Context, filter domain.EventFilter, page domain.PaginationParams) ([]*domain.Event, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	filter.Category = strings.TrimSpace(filter.Category)
	if strings.EqualFold(filter.Category, CategoryAll) {
		filter.Category = ""
	}
	filter.Search = strings.TrimSpace(filter.Search)
	return s.eventRepo.List(ctx, filter, page)
}

func (s *eventService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	id = normalizeID(id)
	if !isUUID(id) {
		return nil, domain.ErrNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.eventRepo.GetByID(ctx, id)
}

func (s *eventService) ListCategories(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.eventRepo.ListCategories(ctx)
}

func normalizeEvent(e *domain.Event) error {
	e.Title = strings.TrimSpace(e.Title)
	e.Description = strings.TrimSpace(e.Description)
	e.Date = strings.TrimSpace(e.Date)
	e.Time = strings.TrimSpace(e.Time)
	e.Location = strings.TrimSpace(e.Location)
	e.Image = strings.TrimSpace(e.Image)
	e.Category = strings.TrimSpace(e.Category)
	e.Organizer = strings.TrimSpace(e.Organizer)

	tags := make([]string, 0, len(e.Tags))
	for _, t := range e.Tags {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	e.Tags = tags

	var problems []string
	for _, f := range []struct{ name, value string }{
		{"title", e.Title},
		{"description", e.Description},
		{"date", e.Date},
		{"time", e.Time},
		{"location", e.Location},
		{"image", e.Image},
		{"category", e.Category},
		{"organizer", e.Organizer},
	} {
		if f.value == "" {
			problems = append(problems, f.name+" is required")
		}
	}
	if e.MaxAttendees < 0 {
		problems = append(problems, "maxAttendees must not be negative")
	}
	if e.Price < 0 {
		problems = append(problems, "price must not be negative")
	}
	if len(problems) > 0 {
		return domain.NewValidationError(problems...)
	}
	return nil
}

func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	if err := normalizeEvent(event); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	now := s.now()
	event.CurrentAttendees = 0
	event.CreatedAt = now
	event.UpdatedAt = now
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}

	s.publish(ctx, domain.RoutingKeyEventCreated, event)
	return nil
}

// UpdateEvent replaces the editable fields of an existing event. The attendee counter is kept.
func (s *eventService) UpdateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	event.ID = normalizeID(event.ID)
	if !isUUID(event.ID) {
		return nil, domain.ErrNotFound
	}
	if err := normalizeEvent(event); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	existing, err := s.eventRepo.GetByID(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	if event.MaxAttendees < existing.CurrentAttendees {
		return nil, domain.NewValidationError("maxAttendees cannot be lower than currentAttendees")
	}

	event.UpdatedAt = s.now()
	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	s.publish(ctx, domain.RoutingKeyEventUpdated, event)
	return event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) error {
	id = normalizeID(id)
	if !isUUID(id) {
		return domain.ErrNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	s.publish(ctx, domain.RoutingKeyEventDeleted, domain.EventDeleted{EventID: id})
	return nil
}

func (s *eventService) publish(ctx context.Context, routingKey string, payload any) {
	if err := s.publisher.Publish(ctx, routingKey, payload); err != nil {
		s.logger.WarnContext(ctx, "publish failed", "routing_key", routingKey, "err", err)
	}
}
