package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventbooking/internal/domain"
	"eventbooking/internal/validate"
)

type eventService struct {
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
}

func NewEventService(eventRepo domain.EventRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

// CommitEvent is the all-or-nothing commit gate for events. The candidate is
// run through the normalization pipeline; on the first failure nothing is
// persisted and the error names the offending field. On success the
// normalized record is written, with slug uniqueness resolved atomically by
// the storage layer: of two concurrent creates normalizing to the same slug,
// exactly one succeeds and the other gets ErrConflict.
func (s *eventService) CommitEvent(ctx context.Context, candidate *domain.Event) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var priorTitle, priorSlug string
	var createdAt time.Time
	if candidate.ID != "" {
		existing, err := s.eventRepo.GetByID(ctx, candidate.ID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.ErrNotFound
			}
			return nil, fmt.Errorf("get event: %w", err)
		}
		priorTitle = existing.Title
		priorSlug = existing.Slug
		createdAt = existing.CreatedAt
	}

	normalized, err := validate.Event(candidate, priorTitle, priorSlug)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	normalized.UpdatedAt = now
	if normalized.ID == "" {
		normalized.CreatedAt = now
		if err := s.eventRepo.Create(ctx, normalized); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				return nil, domain.ErrConflict
			}
			return nil, fmt.Errorf("create event: %w", err)
		}
		return normalized, nil
	}

	normalized.CreatedAt = createdAt
	if err := s.eventRepo.Update(ctx, normalized); err != nil {
		if errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return normalized, nil
}

func (s *eventService) GetEventBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event by slug: %w", err)
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context, params domain.PaginationParams) ([]*domain.Event, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, total, err := s.eventRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, total, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
