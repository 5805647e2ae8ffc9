package engagement

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
	case errors.Is(err, events.ErrCommentNotFound):
		handlers.WriteError(w, http.StatusNotFound, "CommentNotFound", "Comment not found")
	case events.IsValidation(err):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
	default:
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Something went wrong")
	}
}
