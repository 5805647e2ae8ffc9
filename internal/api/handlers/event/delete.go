package event

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Devlife/internal/api/handlers"
	"Devlife/internal/api/middleware"
	"Devlife/internal/core/events"
)

// DeleteHandler handles event deletion
type DeleteHandler struct {
	service events.Service
}

// NewDeleteHandler creates a new delete event handler
func NewDeleteHandler(service events.Service) *DeleteHandler {
	return &DeleteHandler{service: service}
}

// HandleDelete removes the event and all embedded comments and likes
// DELETE /events/{eventID}
func (h *DeleteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")
	if eventID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "eventID is required")
		return
	}

	caller := events.Caller{ID: middleware.GetUserID(r), Role: middleware.GetUserRole(r)}
	if caller.ID == "" {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	if err := h.service.DeleteEvent(r.Context(), eventID, caller); err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Event deleted successfully",
	})
}
