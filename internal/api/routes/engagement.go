package routes

import (
	"github.com/go-chi/chi/v5"

	"Devlife/internal/api/handlers/engagement"
	"Devlife/internal/api/middleware"
	"Devlife/internal/core/events"
)

// RegisterEngagementRoutes registers the like and comment endpoints.
// All of them mutate an event document and require authentication; the
// caller identity comes from the token, never from the request body.
func RegisterEngagementRoutes(r chi.Router, service events.Engagement, authMiddleware *middleware.AuthMiddleware) {
	likeHandler := engagement.NewLikeHandler(service)
	commentHandler := engagement.NewCommentHandler(service)

	r.With(authMiddleware.RequireAuth).Put("/events/like", likeHandler.HandleLike)
	r.With(authMiddleware.RequireAuth).Put("/events/unlike", likeHandler.HandleUnlike)

	r.With(authMiddleware.RequireAuth).Put("/events/comment", commentHandler.HandleAddComment)
	r.With(authMiddleware.RequireAuth).Put("/events/uncomment", commentHandler.HandleRemoveComment)
	r.With(authMiddleware.RequireAuth).Put("/events/updatecomment", commentHandler.HandleEditComment)
}
