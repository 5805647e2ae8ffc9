package engagement

import (
	"context"
	"encoding/json"
	"net/http"

	"Devlife/internal/api/handlers"
	"Devlife/internal/api/middleware"
	"Devlife/internal/core/events"
)

// LikeHandler handles like and unlike requests
type LikeHandler struct {
	service events.Engagement
}

// NewLikeHandler creates a new like handler
func NewLikeHandler(service events.Engagement) *LikeHandler {
	return &LikeHandler{service: service}
}

type likeRequest struct {
	EventID string `json:"eventId"`
}

// HandleLike adds the authenticated caller to the event's liker set.
// Repeating the request observes the same state as sending it once.
// PUT /events/like
//
// Request body: { "eventId": "..." }
func (h *LikeHandler) HandleLike(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, h.service.Like)
}

// HandleUnlike removes the authenticated caller from the liker set.
// Unliking an event the caller never liked succeeds with the current state.
// PUT /events/unlike
//
// Request body: { "eventId": "..." }
func (h *LikeHandler) HandleUnlike(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, h.service.Unlike)
}

func (h *LikeHandler) handle(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, eventID, userID string) (*events.EventView, error),
) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	var req likeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}
	if req.EventID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "eventId is required")
		return
	}

	view, err := op(r.Context(), req.EventID, userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, view)
}
