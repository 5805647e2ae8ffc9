package routes

import (
	"github.com/go-chi/chi/v5"

	"Devlife/internal/api/handlers/event"
	"Devlife/internal/api/middleware"
	"Devlife/internal/core/events"
)

// RegisterEventRoutes registers the event CRUD and listing endpoints.
// The feed, single-event reads, and photo fetches are public; everything
// mutating requires authentication, and update/delete additionally pass the
// owner-or-admin gate inside the service.
func RegisterEventRoutes(r chi.Router, service events.Service, authMiddleware *middleware.AuthMiddleware) {
	createHandler := event.NewCreateHandler(service)
	getHandler := event.NewGetHandler(service)
	listHandler := event.NewListHandler(service)
	updateHandler := event.NewUpdateHandler(service)
	deleteHandler := event.NewDeleteHandler(service)
	photoHandler := event.NewPhotoHandler(service)

	r.Get("/events", listHandler.HandleList)
	r.Get("/events/{eventID}", getHandler.HandleGet)
	r.Get("/events/photo/{eventID}", photoHandler.HandlePhoto)

	r.With(authMiddleware.RequireAuth).Post("/events", createHandler.HandleCreate)
	r.With(authMiddleware.RequireAuth).Get("/events/by/{userID}", listHandler.HandleListByAuthor)
	r.With(authMiddleware.RequireAuth).Put("/events/{eventID}", updateHandler.HandleUpdate)
	r.With(authMiddleware.RequireAuth).Delete("/events/{eventID}", deleteHandler.HandleDelete)
}
