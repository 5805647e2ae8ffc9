package engagement

import (
	"encoding/json"
	"net/http"

	"Devlife/internal/api/handlers"
	"Devlife/internal/api/middleware"
	"Devlife/internal/core/events"
)

// CommentHandler handles add, remove, and edit comment requests
type CommentHandler struct {
	service events.Engagement
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(service events.Engagement) *CommentHandler {
	return &CommentHandler{service: service}
}

// HandleAddComment appends a comment by the authenticated caller
// PUT /events/comment
//
// Request body: { "eventId": "...", "text": "..." }
func (h *CommentHandler) HandleAddComment(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	var req struct {
		EventID string `json:"eventId"`
		Text    string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}
	if req.EventID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "eventId is required")
		return
	}

	view, err := h.service.AddComment(r.Context(), req.EventID, userID, req.Text)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, view)
}

// HandleRemoveComment removes a comment by id; an already-removed comment
// succeeds with the current state
// PUT /events/uncomment
//
// Request body: { "eventId": "...", "commentId": "..." }
func (h *CommentHandler) HandleRemoveComment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EventID   string `json:"eventId"`
		CommentID string `json:"commentId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}
	if req.EventID == "" || req.CommentID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "eventId and commentId are required")
		return
	}

	view, err := h.service.RemoveComment(r.Context(), req.EventID, req.CommentID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, view)
}

// HandleEditComment replaces a comment's text, preserving its id
// PUT /events/updatecomment
//
// Request body: { "eventId": "...", "comment": { "id": "...", "text": "..." } }
func (h *CommentHandler) HandleEditComment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EventID string `json:"eventId"`
		Comment struct {
			ID   string `json:"id"`
			Text string `json:"text"`
		} `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}
	if req.EventID == "" || req.Comment.ID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "eventId and comment.id are required")
		return
	}

	view, err := h.service.EditComment(r.Context(), req.EventID, events.CommentEdit{
		ID:   req.Comment.ID,
		Text: req.Comment.Text,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, view)
}
