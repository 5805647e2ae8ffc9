package events

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"Devlife/internal/core/identity"
)

// maxCommentLength is the maximum comment text length in characters
const maxCommentLength = 2000

// engagementService implements the Engagement interface.
// It never mutates events through application memory: every operation is
// delegated to the repository's atomic array primitives, and the document
// it returns is the post-mutation state of that very write.
type engagementService struct {
	viewResolver
	repo Repository
	now  func() time.Time
}

// NewEngagementService creates a new engagement mutator instance
func NewEngagementService(repo Repository, resolver identity.Resolver, logger *slog.Logger) Engagement {
	if logger == nil {
		logger = slog.Default()
	}
	return &engagementService{
		viewResolver: viewResolver{resolver: resolver, logger: logger},
		repo:         repo,
		now:          time.Now,
	}
}

// Like adds the user to the event's liker set.
// Set-union semantics: liking twice observes the same state as liking once.
func (s *engagementService) Like(ctx context.Context, eventID, userID string) (*EventView, error) {
	event, err := s.repo.AddLike(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("event liked", "eventID", eventID, "userID", userID)
	return s.resolveView(ctx, event), nil
}

// Unlike removes the user from the liker set; absence is not an error
func (s *engagementService) Unlike(ctx context.Context, eventID, userID string) (*EventView, error) {
	event, err := s.repo.RemoveLike(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("event unliked", "eventID", eventID, "userID", userID)
	return s.resolveView(ctx, event), nil
}

// AddComment validates the text and appends a new comment to the end of
// the event's comment sequence
func (s *engagementService) AddComment(ctx context.Context, eventID, authorID, text string) (*EventView, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrContentEmpty
	}
	if len(text) > maxCommentLength {
		return nil, ErrContentTooLong
	}

	comment := Comment{
		ID:        uuid.New().String(),
		Text:      text,
		AuthorID:  authorID,
		CreatedAt: s.now().UTC(),
	}

	event, err := s.repo.PushComment(ctx, eventID, comment)
	if err != nil {
		return nil, err
	}

	s.logger.Info("comment added", "eventID", eventID, "commentID", comment.ID, "authorID", authorID)
	return s.resolveView(ctx, event), nil
}

// RemoveComment removes the comment with the given id.
// An id that matches nothing leaves the sequence untouched and is not an
// error; the order and identity of the remaining comments never change.
func (s *engagementService) RemoveComment(ctx context.Context, eventID, commentID string) (*EventView, error) {
	event, err := s.repo.PullComment(ctx, eventID, commentID)
	if err != nil {
		return nil, err
	}
	s.logger.Info("comment removed", "eventID", eventID, "commentID", commentID)
	return s.resolveView(ctx, event), nil
}

// EditComment replaces the text of the comment carrying edited.ID while
// preserving its identity, and bumps the event's updated timestamp.
// All three change in one atomic document write at the store.
func (s *engagementService) EditComment(ctx context.Context, eventID string, edited CommentEdit) (*EventView, error) {
	if strings.TrimSpace(edited.Text) == "" {
		return nil, ErrContentEmpty
	}
	if len(edited.Text) > maxCommentLength {
		return nil, ErrContentTooLong
	}

	event, err := s.repo.SetCommentText(ctx, eventID, edited.ID, edited.Text, s.now().UTC())
	if err != nil {
		// The combined event+comment filter can't tell a missing comment
		// from a missing event; disambiguate for the caller.
		if errors.Is(err, ErrCommentNotFound) {
			if _, getErr := s.repo.GetByID(ctx, eventID); getErr != nil {
				return nil, getErr
			}
		}
		return nil, err
	}

	s.logger.Info("comment edited", "eventID", eventID, "commentID", edited.ID)
	return s.resolveView(ctx, event), nil
}
