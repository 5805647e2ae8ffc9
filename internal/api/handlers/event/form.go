package event

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"Devlife/internal/core/events"
)

// maxUploadBytes caps the photo attachment size at 8 MiB
const maxUploadBytes = 8 << 20

// eventForm holds the decoded fields of a create or update request.
// Nil fields were not present in the request.
type eventForm struct {
	Title *string
	Body  *string
	Photo *events.Photo
}

// parseEventForm decodes an event create/update request. Multipart bodies
// may carry a photo file; JSON bodies carry title/body only. The body is
// fully consumed or rejected before the caller touches the store, so a
// half-read upload can never end up half-applied to an event.
func parseEventForm(r *http.Request) (*eventForm, error) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		return parseMultipartForm(r)
	}
	return parseJSONForm(r)
}

func parseMultipartForm(r *http.Request) (*eventForm, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, fmt.Errorf("invalid multipart form: %w", err)
	}

	form := &eventForm{}
	if values, ok := r.MultipartForm.Value["title"]; ok && len(values) > 0 {
		form.Title = &values[0]
	}
	if values, ok := r.MultipartForm.Value["body"]; ok && len(values) > 0 {
		form.Body = &values[0]
	}

	file, header, err := r.FormFile("photo")
	if errors.Is(err, http.ErrMissingFile) {
		return form, nil
	}
	if err != nil {
		return nil, fmt.Errorf("invalid photo upload: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read photo: %w", err)
	}
	if len(data) > maxUploadBytes {
		return nil, fmt.Errorf("photo exceeds %d bytes", maxUploadBytes)
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	form.Photo = &events.Photo{Data: data, ContentType: contentType}
	return form, nil
}

func parseJSONForm(r *http.Request) (*eventForm, error) {
	var body struct {
		Title *string `json:"title"`
		Body  *string `json:"body"`
	}
	if err := json.NewDecoder(io.LimitReader(r.Body, maxUploadBytes)).Decode(&body); err != nil {
		return nil, fmt.Errorf("invalid request body: %w", err)
	}
	return &eventForm{Title: body.Title, Body: body.Body}, nil
}
