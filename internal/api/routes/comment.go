package routes

import (
	commenthandlers "Murmur/internal/api/handlers/comments"
	"Murmur/internal/api/middleware"
	"Murmur/internal/core/comments"

	"github.com/go-chi/chi/v5"
)

// RegisterCommentRoutes registers comment endpoints under their parent post
func RegisterCommentRoutes(
	r chi.Router,
	commentService comments.Service,
	authMiddleware *middleware.AuthMiddleware,
) {
	// Create handlers
	getHandler := commenthandlers.NewGetCommentsHandler(commentService)
	createHandler := commenthandlers.NewCreateCommentHandler(commentService)
	updateHandler := commenthandlers.NewUpdateCommentHandler(commentService)
	deleteHandler := commenthandlers.NewDeleteCommentHandler(commentService)

	// GET /api/v1/post/{postID}/comment - top-level comments of a post
	r.With(authMiddleware.RequireAuth).Get("/api/v1/post/{postID}/comment", getHandler.HandleGetComments)

	// POST /api/v1/post/{postID}/comment - create a comment or reply
	r.With(authMiddleware.RequireAuth).Post("/api/v1/post/{postID}/comment", createHandler.HandleCreateComment)

	// GET /api/v1/post/{postID}/comment/{commentID}/subcomment - replies to a comment
	r.With(authMiddleware.RequireAuth).Get("/api/v1/post/{postID}/comment/{commentID}/subcomment", getHandler.HandleGetSubcomments)

	// PUT /api/v1/post/{postID}/comment/{commentID} - update a comment
	r.With(authMiddleware.RequireAuth).Put("/api/v1/post/{postID}/comment/{commentID}", updateHandler.HandleUpdateComment)

	// DELETE /api/v1/post/{postID}/comment/{commentID} - delete a comment
	r.With(authMiddleware.RequireAuth).Delete("/api/v1/post/{postID}/comment/{commentID}", deleteHandler.HandleDeleteComment)
}
