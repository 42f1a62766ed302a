package comments

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Murmur/internal/api/handlers"
	"Murmur/internal/core/comments"
)

// GetCommentsHandler handles comment listing for a post
type GetCommentsHandler struct {
	service comments.Service
}

// NewGetCommentsHandler creates a new get comments handler
func NewGetCommentsHandler(service comments.Service) *GetCommentsHandler {
	return &GetCommentsHandler{service: service}
}

// HandleGetComments returns the top-level comments of a post
// GET /api/v1/post/{postID}/comment?likeAmount=&commentsCount=&isBlocked=&isDeleted=&commentText=&imagePath=&page=&size=&sort=
func (h *GetCommentsHandler) HandleGetComments(w http.ResponseWriter, r *http.Request) {
	postID, err := handlers.PathUUID(chi.URLParam(r, "postID"), "post id")
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	criteria, err := parseCommentCriteria(r)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := h.service.GetByPostID(r.Context(), postID, criteria, handlers.ParsePage(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, page)
}

// HandleGetSubcomments returns the replies to one comment
// GET /api/v1/post/{postID}/comment/{commentID}/subcomment
func (h *GetCommentsHandler) HandleGetSubcomments(w http.ResponseWriter, r *http.Request) {
	postID, err := handlers.PathUUID(chi.URLParam(r, "postID"), "post id")
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	commentID, err := handlers.PathUUID(chi.URLParam(r, "commentID"), "comment id")
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := h.service.GetSubcomments(r.Context(), postID, commentID, handlers.ParsePage(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, page)
}

func parseCommentCriteria(r *http.Request) (comments.SearchCriteria, error) {
	var c comments.SearchCriteria
	var err error

	if c.LikeAmount, err = handlers.QueryInt(r, "likeAmount"); err != nil {
		return c, err
	}
	if c.CommentsCount, err = handlers.QueryInt(r, "commentsCount"); err != nil {
		return c, err
	}
	if c.IsBlocked, err = handlers.QueryBool(r, "isBlocked"); err != nil {
		return c, err
	}
	if c.IsDeleted, err = handlers.QueryBool(r, "isDeleted"); err != nil {
		return c, err
	}

	q := r.URL.Query()
	c.CommentText = q.Get("commentText")
	c.ImagePath = q.Get("imagePath")

	return c, nil
}
