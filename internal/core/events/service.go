package events

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"Devlife/internal/core/identity"
)

// FeedPageSize is the fixed window size for the paginated feed
const FeedPageSize = 6

// eventService implements the Service interface
// Coordinates between the repository, the authorization gate, and the
// identity resolver used for view construction
type eventService struct {
	viewResolver
	repo Repository
	now  func() time.Time
}

// NewEventService creates a new event service instance
func NewEventService(repo Repository, resolver identity.Resolver, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &eventService{
		viewResolver: viewResolver{resolver: resolver, logger: logger},
		repo:         repo,
		now:          time.Now,
	}
}

// CreateEvent validates the request, fixes the author from the caller
// identity, and persists the new event
func (s *eventService) CreateEvent(ctx context.Context, caller Caller, req CreateEventRequest) (*EventView, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrTitleRequired
	}
	if strings.TrimSpace(req.Body) == "" {
		return nil, ErrBodyRequired
	}

	event := &Event{
		ID:        uuid.New().String(),
		Title:     req.Title,
		Body:      req.Body,
		AuthorID:  caller.ID,
		CreatedAt: s.now().UTC(),
		Photo:     req.Photo,
		Comments:  []Comment{},
		Likes:     []string{},
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	s.logger.Info("event created", "eventID", event.ID, "authorID", caller.ID)
	return s.resolveView(ctx, event), nil
}

// GetEvent retrieves a single event with references resolved
func (s *eventService) GetEvent(ctx context.Context, id string) (*EventView, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.resolveView(ctx, event), nil
}

// GetPhoto retrieves the raw attachment bytes and content type
func (s *eventService) GetPhoto(ctx context.Context, id string) (*Photo, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event.Photo == nil {
		return nil, ErrNoPhoto
	}
	return event.Photo, nil
}

// ListEvents returns one page of the newest-first feed.
// The total count and the page slice are two separate reads; under
// concurrent insert/delete they may be mutually inconsistent. That skew is
// accepted; fixing it would need cursor pagination and a contract change.
func (s *eventService) ListEvents(ctx context.Context, page int) (*FeedPage, error) {
	if page < 1 {
		page = 1
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count events: %w", err)
	}

	items, err := s.repo.List(ctx, FeedPageSize, (page-1)*FeedPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	views := make([]*EventView, 0, len(items))
	for _, event := range items {
		views = append(views, s.resolveView(ctx, event))
	}

	return &FeedPage{
		Events:     views,
		TotalCount: total,
		Page:       page,
	}, nil
}

// ListEventsByAuthor returns the author's events oldest-first as summaries
func (s *eventService) ListEventsByAuthor(ctx context.Context, authorID string) ([]*EventSummary, error) {
	items, err := s.repo.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events by author: %w", err)
	}

	resolved := s.resolve(ctx, []string{authorID})

	summaries := make([]*EventSummary, 0, len(items))
	for _, event := range items {
		summaries = append(summaries, &EventSummary{
			ID:        event.ID,
			Title:     event.Title,
			Body:      event.Body,
			CreatedAt: event.CreatedAt,
			Author:    displayProfile(resolved, event.AuthorID, false),
			LikeCount: len(event.Likes),
		})
	}
	return summaries, nil
}

// UpdateEvent merges the allow-listed patch onto the event.
// The patch type can only carry title, body, and photo, so ownership can
// never be reassigned through an update.
func (s *eventService) UpdateEvent(ctx context.Context, id string, caller Caller, req UpdateEventRequest) (*EventView, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanMutate(event, caller) {
		return nil, ErrNotAuthorized
	}

	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return nil, ErrTitleRequired
	}
	if req.Body != nil && strings.TrimSpace(*req.Body) == "" {
		return nil, ErrBodyRequired
	}

	updatedEvent, err := s.repo.Update(ctx, id, req, s.now().UTC())
	if err != nil {
		return nil, err
	}

	s.logger.Info("event updated", "eventID", id, "callerID", caller.ID)
	return s.resolveView(ctx, updatedEvent), nil
}

// DeleteEvent removes the event and everything embedded in it
func (s *eventService) DeleteEvent(ctx context.Context, id string, caller Caller) error {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !CanMutate(event, caller) {
		return ErrNotAuthorized
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("event deleted", "eventID", id, "callerID", caller.ID)
	return nil
}

