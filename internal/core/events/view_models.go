package events

import (
	"context"
	"log/slog"
	"time"

	"Devlife/internal/core/identity"
)

// EventView is the full read model of an event with author and commenter
// references resolved to display-safe profiles
type EventView struct {
	CreatedAt time.Time         `json:"created"`
	UpdatedAt *time.Time        `json:"updated,omitempty"`
	Author    *identity.Profile `json:"postedBy"`
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Comments  []*CommentView    `json:"comments"`
	Likes     []string          `json:"likes"`
	HasPhoto  bool              `json:"hasPhoto"`
}

// CommentView is a comment with its author resolved.
// Commenter profiles are projected without role; only the event's own
// author exposes one.
type CommentView struct {
	CreatedAt time.Time         `json:"created"`
	Author    *identity.Profile `json:"postedBy"`
	ID        string            `json:"id"`
	Text      string            `json:"text"`
}

// EventSummary is the projection used for per-author listings: no comments,
// just the event fields and its like count
type EventSummary struct {
	CreatedAt time.Time         `json:"created"`
	Author    *identity.Profile `json:"postedBy"`
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	LikeCount int               `json:"likes"`
}

// FeedPage is one window of the newest-first feed
type FeedPage struct {
	Events     []*EventView `json:"events"`
	TotalCount int64        `json:"totalItems"`
	Page       int          `json:"page"`
}

// displayProfile returns the profile for id from resolved, or nil when the
// identity is unknown. withRole controls whether the role survives the
// projection; only the event's own author is shown with one.
func displayProfile(resolved map[string]*identity.Profile, id string, withRole bool) *identity.Profile {
	profile, ok := resolved[id]
	if !ok || profile == nil {
		return nil
	}
	view := &identity.Profile{ID: profile.ID, Name: profile.Name}
	if withRole {
		view.Role = profile.Role
	}
	return view
}

// buildEventView assembles the full read model from an event document and a
// batch of resolved profiles
func buildEventView(event *Event, resolved map[string]*identity.Profile) *EventView {
	comments := make([]*CommentView, 0, len(event.Comments))
	for i := range event.Comments {
		c := &event.Comments[i]
		comments = append(comments, &CommentView{
			ID:        c.ID,
			Text:      c.Text,
			CreatedAt: c.CreatedAt,
			Author:    displayProfile(resolved, c.AuthorID, false),
		})
	}

	likes := event.Likes
	if likes == nil {
		likes = []string{}
	}

	return &EventView{
		ID:        event.ID,
		Title:     event.Title,
		Body:      event.Body,
		CreatedAt: event.CreatedAt,
		UpdatedAt: event.UpdatedAt,
		Author:    displayProfile(resolved, event.AuthorID, true),
		Comments:  comments,
		Likes:     likes,
		HasPhoto:  event.Photo != nil,
	}
}

// viewResolver hydrates event documents into views.
// Shared by the CRUD service and the engagement mutator so both project
// references the same way.
type viewResolver struct {
	resolver identity.Resolver
	logger   *slog.Logger
}

// resolve looks up display profiles for ids, tolerating resolver failure.
// A failed lookup degrades the read to unresolved references instead of
// failing it.
func (v *viewResolver) resolve(ctx context.Context, ids []string) map[string]*identity.Profile {
	resolved, err := v.resolver.Resolve(ctx, ids)
	if err != nil {
		v.logger.Warn("identity resolution failed", "error", err)
		return map[string]*identity.Profile{}
	}
	return resolved
}

// resolveView builds the full event view with references resolved
func (v *viewResolver) resolveView(ctx context.Context, event *Event) *EventView {
	return buildEventView(event, v.resolve(ctx, referencedIDs(event)))
}

// referencedIDs collects the unique user ids an event view needs resolved:
// the author plus every commenter
func referencedIDs(event *Event) []string {
	seen := make(map[string]bool, len(event.Comments)+1)
	ids := make([]string, 0, len(event.Comments)+1)

	seen[event.AuthorID] = true
	ids = append(ids, event.AuthorID)

	for i := range event.Comments {
		if !seen[event.Comments[i].AuthorID] {
			seen[event.Comments[i].AuthorID] = true
			ids = append(ids, event.Comments[i].AuthorID)
		}
	}
	return ids
}
