package event

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Devlife/internal/api/handlers"
	"Devlife/internal/core/events"
)

// ListHandler handles the paginated feed and per-author listings
type ListHandler struct {
	service events.Service
}

// NewListHandler creates a new list handler
func NewListHandler(service events.Service) *ListHandler {
	return &ListHandler{service: service}
}

// HandleList returns one page of the newest-first feed
// GET /events?page=N
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "page must be a number")
			return
		}
		page = parsed
	}

	feed, err := h.service.ListEvents(r.Context(), page)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, feed)
}

// HandleListByAuthor returns the author's events oldest-first as summaries
// GET /events/by/{userID}
func (h *ListHandler) HandleListByAuthor(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "userID is required")
		return
	}

	summaries, err := h.service.ListEventsByAuthor(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, summaries)
}
