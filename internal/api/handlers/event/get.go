package event

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Devlife/internal/api/handlers"
	"Devlife/internal/core/events"
)

// GetHandler handles single event reads
type GetHandler struct {
	service events.Service
}

// NewGetHandler creates a new get event handler
func NewGetHandler(service events.Service) *GetHandler {
	return &GetHandler{service: service}
}

// HandleGet returns a single event with author and commenter references
// resolved
// GET /events/{eventID}
func (h *GetHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")
	if eventID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "eventID is required")
		return
	}

	view, err := h.service.GetEvent(r.Context(), eventID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, view)
}
