package event

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Devlife/internal/api/handlers"
	"Devlife/internal/api/middleware"
	"Devlife/internal/core/events"
)

// UpdateHandler handles event field updates
type UpdateHandler struct {
	service events.Service
}

// NewUpdateHandler creates a new update event handler
func NewUpdateHandler(service events.Service) *UpdateHandler {
	return &UpdateHandler{service: service}
}

// HandleUpdate merges the submitted fields onto the event.
// Only title, body, and photo are mergeable; the author can never change.
// PUT /events/{eventID}
func (h *UpdateHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
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

	form, err := parseEventForm(r)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	view, err := h.service.UpdateEvent(r.Context(), eventID, caller, events.UpdateEventRequest{
		Title: form.Title,
		Body:  form.Body,
		Photo: form.Photo,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, view)
}
