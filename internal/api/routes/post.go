package routes

import (
	"Murmur/internal/api/handlers/post"
	"Murmur/internal/api/middleware"
	"Murmur/internal/core/posts"

	"github.com/go-chi/chi/v5"
)

// RegisterPostRoutes registers post CRUD and search endpoints
func RegisterPostRoutes(
	r chi.Router,
	postService posts.Service,
	authMiddleware *middleware.AuthMiddleware,
) {
	// Create handlers
	createHandler := post.NewCreatePostHandler(postService)
	getHandler := post.NewGetPostHandler(postService)
	searchHandler := post.NewSearchPostsHandler(postService)
	updateHandler := post.NewUpdatePostHandler(postService)
	deleteHandler := post.NewDeletePostHandler(postService)

	// GET /api/v1/post - filtered, paginated search
	r.With(authMiddleware.RequireAuth).Get("/api/v1/post", searchHandler.HandleSearchPosts)

	// POST /api/v1/post - create a post
	r.With(authMiddleware.RequireAuth).Post("/api/v1/post", createHandler.HandleCreatePost)

	// GET /api/v1/post/{postID} - fetch a single post
	r.With(authMiddleware.RequireAuth).Get("/api/v1/post/{postID}", getHandler.HandleGetPost)

	// PUT /api/v1/post/{postID} - update a post
	r.With(authMiddleware.RequireAuth).Put("/api/v1/post/{postID}", updateHandler.HandleUpdatePost)

	// DELETE /api/v1/post/{postID} - soft-delete a post
	r.With(authMiddleware.RequireAuth).Delete("/api/v1/post/{postID}", deleteHandler.HandleDeletePost)
}
