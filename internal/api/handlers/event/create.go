package event

import (
	"net/http"

	"Devlife/internal/api/handlers"
	"Devlife/internal/api/middleware"
	"Devlife/internal/core/events"
)

// CreateHandler handles event creation
type CreateHandler struct {
	service events.Service
}

// NewCreateHandler creates a new create event handler
func NewCreateHandler(service events.Service) *CreateHandler {
	return &CreateHandler{service: service}
}

// HandleCreate creates a new event owned by the authenticated caller
// POST /events
//
// Accepts multipart/form-data with title, body, and an optional photo file,
// or a JSON body with title and body.
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
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

	req := events.CreateEventRequest{Photo: form.Photo}
	if form.Title != nil {
		req.Title = *form.Title
	}
	if form.Body != nil {
		req.Body = *form.Body
	}

	view, err := h.service.CreateEvent(r.Context(), caller, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, view)
}
