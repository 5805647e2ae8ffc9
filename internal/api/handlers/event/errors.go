package event

import (
	"errors"
	"net/http"

	"Devlife/internal/api/handlers"
	"Devlife/internal/core/events"
)

// handleServiceError converts service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, events.ErrEventNotFound):
		handlers.WriteError(w, http.StatusNotFound, "EventNotFound", "Event not found")
	case errors.Is(err, events.ErrNoPhoto):
		handlers.WriteError(w, http.StatusNotFound, "PhotoNotFound", "Event has no photo")
	case errors.Is(err, events.ErrNotAuthorized):
		handlers.WriteError(w, http.StatusForbidden, "NotAuthorized", "User is not authorized")
	case events.IsValidation(err):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
	default:
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Something went wrong")
	}
}
