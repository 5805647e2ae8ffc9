package event

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Devlife/internal/api/handlers"
	"Devlife/internal/core/events"
)

// PhotoHandler serves raw photo attachments
type PhotoHandler struct {
	service events.Service
}

// NewPhotoHandler creates a new photo handler
func NewPhotoHandler(service events.Service) *PhotoHandler {
	return &PhotoHandler{service: service}
}

// HandlePhoto serves the event's photo bytes with its stored content type
// GET /events/photo/{eventID}
func (h *PhotoHandler) HandlePhoto(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")
	if eventID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "eventID is required")
		return
	}

	photo, err := h.service.GetPhoto(r.Context(), eventID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", photo.ContentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(photo.Data); err != nil {
		// Client likely disconnected mid-response; nothing to recover
		return
	}
}
