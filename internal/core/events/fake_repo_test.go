package events

import (
	"context"
	"sort"
	"sync"
	"time"

	"Devlife/internal/core/identity"
)

// fakeEventRepo is an in-memory Repository with the same observable
// semantics as the MongoDB adapter: every engagement method is one
// mutation under the lock and returns the post-mutation document.
type fakeEventRepo struct {
	mu     sync.Mutex
	events map[string]*Event
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[string]*Event)}
}

// cloneEvent returns a deep copy so callers never alias stored state
func cloneEvent(e *Event) *Event {
	clone := *e
	clone.Comments = append([]Comment(nil), e.Comments...)
	clone.Likes = append([]string(nil), e.Likes...)
	if e.Photo != nil {
		photo := *e.Photo
		photo.Data = append([]byte(nil), e.Photo.Data...)
		clone.Photo = &photo
	}
	return &clone
}

func (r *fakeEventRepo) Create(_ context.Context, event *Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[event.ID] = cloneEvent(event)
	return nil
}

func (r *fakeEventRepo) GetByID(_ context.Context, id string) (*Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	event, ok := r.events[id]
	if !ok {
		return nil, ErrEventNotFound
	}
	return cloneEvent(event), nil
}

func (r *fakeEventRepo) List(_ context.Context, limit, offset int) ([]*Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make([]*Event, 0, len(r.events))
	for _, event := range r.events {
		all = append(all, cloneEvent(event))
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	if offset >= len(all) {
		return []*Event{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *fakeEventRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.events)), nil
}

func (r *fakeEventRepo) ListByAuthor(_ context.Context, authorID string) ([]*Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*Event
	for _, event := range r.events {
		if event.AuthorID == authorID {
			result = append(result, cloneEvent(event))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (r *fakeEventRepo) Update(_ context.Context, id string, patch UpdateEventRequest, updated time.Time) (*Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	event, ok := r.events[id]
	if !ok {
		return nil, ErrEventNotFound
	}
	if patch.Title != nil {
		event.Title = *patch.Title
	}
	if patch.Body != nil {
		event.Body = *patch.Body
	}
	if patch.Photo != nil {
		event.Photo = patch.Photo
	}
	event.UpdatedAt = &updated
	return cloneEvent(event), nil
}

func (r *fakeEventRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[id]; !ok {
		return ErrEventNotFound
	}
	delete(r.events, id)
	return nil
}

func (r *fakeEventRepo) AddLike(_ context.Context, eventID, userID string) (*Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	event, ok := r.events[eventID]
	if !ok {
		return nil, ErrEventNotFound
	}
	if !event.HasLiker(userID) {
		event.Likes = append(event.Likes, userID)
	}
	return cloneEvent(event), nil
}

func (r *fakeEventRepo) RemoveLike(_ context.Context, eventID, userID string) (*Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	event, ok := r.events[eventID]
	if !ok {
		return nil, ErrEventNotFound
	}
	likes := event.Likes[:0]
	for _, id := range event.Likes {
		if id != userID {
			likes = append(likes, id)
		}
	}
	event.Likes = likes
	return cloneEvent(event), nil
}

func (r *fakeEventRepo) PushComment(_ context.Context, eventID string, comment Comment) (*Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	event, ok := r.events[eventID]
	if !ok {
		return nil, ErrEventNotFound
	}
	event.Comments = append(event.Comments, comment)
	return cloneEvent(event), nil
}

func (r *fakeEventRepo) PullComment(_ context.Context, eventID, commentID string) (*Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	event, ok := r.events[eventID]
	if !ok {
		return nil, ErrEventNotFound
	}
	comments := event.Comments[:0]
	for _, c := range event.Comments {
		if c.ID != commentID {
			comments = append(comments, c)
		}
	}
	event.Comments = comments
	return cloneEvent(event), nil
}

func (r *fakeEventRepo) SetCommentText(_ context.Context, eventID, commentID, text string, updated time.Time) (*Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	event, ok := r.events[eventID]
	if !ok {
		return nil, ErrCommentNotFound
	}
	comment := event.FindComment(commentID)
	if comment == nil {
		return nil, ErrCommentNotFound
	}
	comment.Text = text
	event.UpdatedAt = &updated
	return cloneEvent(event), nil
}

// stubResolver resolves from a fixed profile map; unknown ids are omitted
type stubResolver map[string]*identity.Profile

func (r stubResolver) Resolve(_ context.Context, ids []string) (map[string]*identity.Profile, error) {
	result := make(map[string]*identity.Profile, len(ids))
	for _, id := range ids {
		if profile, ok := r[id]; ok {
			result[id] = profile
		}
	}
	return result, nil
}
