package routes

import (
	"Murmur/internal/api/handlers/reaction"
	"Murmur/internal/api/middleware"
	"Murmur/internal/core/reactions"

	"github.com/go-chi/chi/v5"
)

// RegisterReactionRoutes registers like endpoints for posts and comments
func RegisterReactionRoutes(
	r chi.Router,
	reactionService reactions.Service,
	authMiddleware *middleware.AuthMiddleware,
) {
	// Create handlers
	postHandler := reaction.NewPostReactionHandler(reactionService)
	commentHandler := reaction.NewCommentReactionHandler(reactionService)

	// POST /api/v1/post/{postID}/like - react to a post
	r.With(authMiddleware.RequireAuth).Post("/api/v1/post/{postID}/like", postHandler.HandleAddReaction)

	// DELETE /api/v1/post/{postID}/like - remove a reaction from a post
	r.With(authMiddleware.RequireAuth).Delete("/api/v1/post/{postID}/like", postHandler.HandleRemoveReaction)

	// POST /api/v1/post/{postID}/comment/{commentID}/like - like a comment
	r.With(authMiddleware.RequireAuth).Post("/api/v1/post/{postID}/comment/{commentID}/like", commentHandler.HandleAddLike)

	// DELETE /api/v1/post/{postID}/comment/{commentID}/like - remove a like from a comment
	r.With(authMiddleware.RequireAuth).Delete("/api/v1/post/{postID}/comment/{commentID}/like", commentHandler.HandleRemoveLike)
}
