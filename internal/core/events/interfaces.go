package events

import (
	"context"
	"time"
)

// Service defines the business logic interface for event CRUD and listing
// Orchestrates repository calls, authorization, and view construction
type Service interface {
	// CreateEvent creates a new event owned by the caller
	// The author is fixed from the caller identity and can never be patched later
	CreateEvent(ctx context.Context, caller Caller, req CreateEventRequest) (*EventView, error)

	// GetEvent retrieves a single event with author and commenter references resolved
	GetEvent(ctx context.Context, id string) (*EventView, error)

	// GetPhoto retrieves the raw photo attachment for an event
	GetPhoto(ctx context.Context, id string) (*Photo, error)

	// ListEvents returns one page of the newest-first feed plus the total count.
	// Pages are 1-indexed and FeedPageSize wide. The count and the page slice
	// come from two separate reads and may disagree under concurrent writes.
	ListEvents(ctx context.Context, page int) (*FeedPage, error)

	// ListEventsByAuthor returns the author's events oldest-first as summaries
	ListEventsByAuthor(ctx context.Context, authorID string) ([]*EventSummary, error)

	// UpdateEvent merges an allow-listed field patch onto the event.
	// The caller must pass the authorization gate before any write is attempted.
	UpdateEvent(ctx context.Context, id string, caller Caller, req UpdateEventRequest) (*EventView, error)

	// DeleteEvent removes the event and all embedded comments and likes.
	// The caller must pass the authorization gate before any write is attempted.
	DeleteEvent(ctx context.Context, id string, caller Caller) error
}

// Engagement defines the mutator interface for likes and comments.
// Every operation is a single atomic read-modify-write transform applied at
// the store, never a load-mutate-save through application memory, so
// concurrent callers on the same event cannot produce lost updates.
// Each returns the post-mutation event with references resolved.
type Engagement interface {
	// Like adds the user to the event's liker set; idempotent
	Like(ctx context.Context, eventID, userID string) (*EventView, error)

	// Unlike removes the user from the liker set; no-op if absent
	Unlike(ctx context.Context, eventID, userID string) (*EventView, error)

	// AddComment appends a new comment to the end of the comment sequence
	AddComment(ctx context.Context, eventID, authorID, text string) (*EventView, error)

	// RemoveComment removes the comment with the given id; no-op if absent
	RemoveComment(ctx context.Context, eventID, commentID string) (*EventView, error)

	// EditComment replaces the text of the comment carrying edited.ID,
	// preserving its identity, and bumps the event's updated timestamp.
	// Text, identity, and the parent timestamp change in one atomic step;
	// a concurrent reader never observes the comment absent mid-edit.
	EditComment(ctx context.Context, eventID string, edited CommentEdit) (*EventView, error)
}

// Repository defines the data access interface for the event store.
// Engagement methods map to the store's native atomic array operations
// and return the post-mutation document from the same operation.
type Repository interface {
	// Create inserts a new event document
	Create(ctx context.Context, event *Event) error

	// GetByID retrieves an event by id
	// Returns ErrEventNotFound if absent
	GetByID(ctx context.Context, id string) (*Event, error)

	// List returns events sorted by creation time descending, windowed
	// by limit/offset
	List(ctx context.Context, limit, offset int) ([]*Event, error)

	// Count returns the total number of events, independent of any window
	Count(ctx context.Context) (int64, error)

	// ListByAuthor returns the author's events sorted by creation time ascending
	ListByAuthor(ctx context.Context, authorID string) ([]*Event, error)

	// Update applies the allow-listed patch and sets updated in one write
	// Returns the post-update document; ErrEventNotFound if absent
	Update(ctx context.Context, id string, patch UpdateEventRequest, updated time.Time) (*Event, error)

	// Delete removes the event document
	// Returns ErrEventNotFound if already absent
	Delete(ctx context.Context, id string) error

	// AddLike atomically adds userID to the liker set if not already present
	AddLike(ctx context.Context, eventID, userID string) (*Event, error)

	// RemoveLike atomically removes userID from the liker set
	RemoveLike(ctx context.Context, eventID, userID string) (*Event, error)

	// PushComment atomically appends the comment to the comment sequence
	PushComment(ctx context.Context, eventID string, comment Comment) (*Event, error)

	// PullComment atomically removes the comment with the given id
	PullComment(ctx context.Context, eventID, commentID string) (*Event, error)

	// SetCommentText atomically replaces the matched comment's text and the
	// event's updated timestamp in a single document write.
	// Returns ErrCommentNotFound when no comment matched (the event itself
	// may also be absent; callers disambiguate with GetByID).
	SetCommentText(ctx context.Context, eventID, commentID, text string, updated time.Time) (*Event, error)
}
