package engagement

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"Devlife/internal/api/middleware"
	"Devlife/internal/core/events"
)

// mockEngagement implements events.Engagement for handler tests
type mockEngagement struct {
	likeFunc    func(ctx context.Context, eventID, userID string) (*events.EventView, error)
	unlikeFunc  func(ctx context.Context, eventID, userID string) (*events.EventView, error)
	addFunc     func(ctx context.Context, eventID, authorID, text string) (*events.EventView, error)
	removeFunc  func(ctx context.Context, eventID, commentID string) (*events.EventView, error)
	editFunc    func(ctx context.Context, eventID string, edited events.CommentEdit) (*events.EventView, error)
}

func (m *mockEngagement) Like(ctx context.Context, eventID, userID string) (*events.EventView, error) {
	if m.likeFunc != nil {
		return m.likeFunc(ctx, eventID, userID)
	}
	return &events.EventView{ID: eventID, Likes: []string{userID}}, nil
}

func (m *mockEngagement) Unlike(ctx context.Context, eventID, userID string) (*events.EventView, error) {
	if m.unlikeFunc != nil {
		return m.unlikeFunc(ctx, eventID, userID)
	}
	return &events.EventView{ID: eventID, Likes: []string{}}, nil
}

func (m *mockEngagement) AddComment(ctx context.Context, eventID, authorID, text string) (*events.EventView, error) {
	if m.addFunc != nil {
		return m.addFunc(ctx, eventID, authorID, text)
	}
	return &events.EventView{ID: eventID}, nil
}

func (m *mockEngagement) RemoveComment(ctx context.Context, eventID, commentID string) (*events.EventView, error) {
	if m.removeFunc != nil {
		return m.removeFunc(ctx, eventID, commentID)
	}
	return &events.EventView{ID: eventID}, nil
}

func (m *mockEngagement) EditComment(ctx context.Context, eventID string, edited events.CommentEdit) (*events.EventView, error) {
	if m.editFunc != nil {
		return m.editFunc(ctx, eventID, edited)
	}
	return &events.EventView{ID: eventID}, nil
}

// authedRequest builds a request with a caller identity already injected,
// simulating the auth middleware
func authedRequest(method, path, body, userID string) *http.Request {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)
		req = req.WithContext(ctx)
	}
	return req
}

func TestLikeHandler_Success(t *testing.T) {
	var gotEventID, gotUserID string
	handler := NewLikeHandler(&mockEngagement{
		likeFunc: func(ctx context.Context, eventID, userID string) (*events.EventView, error) {
			gotEventID, gotUserID = eventID, userID
			return &events.EventView{ID: eventID, Likes: []string{userID}}, nil
		},
	})

	req := authedRequest(http.MethodPut, "/events/like", `{"eventId":"e1"}`, "u2")
	rec := httptest.NewRecorder()
	handler.HandleLike(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "e1", gotEventID)
	// The caller identity comes from the token, not the body
	assert.Equal(t, "u2", gotUserID)
}

func TestLikeHandler_Unauthenticated(t *testing.T) {
	handler := NewLikeHandler(&mockEngagement{})

	req := authedRequest(http.MethodPut, "/events/like", `{"eventId":"e1"}`, "")
	rec := httptest.NewRecorder()
	handler.HandleLike(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLikeHandler_MissingEventID(t *testing.T) {
	handler := NewLikeHandler(&mockEngagement{})

	req := authedRequest(http.MethodPut, "/events/like", `{}`, "u2")
	rec := httptest.NewRecorder()
	handler.HandleLike(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLikeHandler_EventNotFound(t *testing.T) {
	handler := NewLikeHandler(&mockEngagement{
		likeFunc: func(ctx context.Context, eventID, userID string) (*events.EventView, error) {
			return nil, events.ErrEventNotFound
		},
	})

	req := authedRequest(http.MethodPut, "/events/like", `{"eventId":"missing"}`, "u2")
	rec := httptest.NewRecorder()
	handler.HandleLike(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnlikeHandler_Success(t *testing.T) {
	handler := NewLikeHandler(&mockEngagement{})

	req := authedRequest(http.MethodPut, "/events/unlike", `{"eventId":"e1"}`, "u2")
	rec := httptest.NewRecorder()
	handler.HandleUnlike(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
