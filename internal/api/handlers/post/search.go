package post

import (
	"net/http"

	"Murmur/internal/api/handlers"
	"Murmur/internal/api/middleware"
	"Murmur/internal/core/posts"
)

// SearchPostsHandler handles the paged, filtered post search
type SearchPostsHandler struct {
	service posts.Service
}

// NewSearchPostsHandler creates a new search posts handler
func NewSearchPostsHandler(service posts.Service) *SearchPostsHandler {
	return &SearchPostsHandler{service: service}
}

// HandleSearchPosts runs the post search for the caller
// GET /api/v1/post?ids=&accountIds=&blockedIds=&title=&text=&tags=&dateFrom=&dateTo=&isBlocked=&isDeleted=&page=&size=&sort=
//
// Date bounds are epoch-millisecond strings. By default the caller's
// own posts are excluded; listing the caller in accountIds includes them.
func (h *SearchPostsHandler) HandleSearchPosts(w http.ResponseWriter, r *http.Request) {
	criteria, err := parseSearchCriteria(r)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	callerID := middleware.GetAccountID(r)

	page, err := h.service.Search(r.Context(), callerID, criteria, handlers.ParsePage(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, page)
}

func parseSearchCriteria(r *http.Request) (posts.SearchCriteria, error) {
	var c posts.SearchCriteria
	var err error

	if c.IDs, err = handlers.QueryUUIDs(r, "ids"); err != nil {
		return c, err
	}
	if c.AccountIDs, err = handlers.QueryUUIDs(r, "accountIds"); err != nil {
		return c, err
	}
	if c.BlockedIDs, err = handlers.QueryUUIDs(r, "blockedIds"); err != nil {
		return c, err
	}
	if c.IsBlocked, err = handlers.QueryBool(r, "isBlocked"); err != nil {
		return c, err
	}
	if c.IsDeleted, err = handlers.QueryBool(r, "isDeleted"); err != nil {
		return c, err
	}

	q := r.URL.Query()
	c.Title = q.Get("title")
	c.Text = q.Get("text")
	c.Tags = handlers.QueryStrings(r, "tags")
	c.DateFrom = q.Get("dateFrom")
	c.DateTo = q.Get("dateTo")

	return c, nil
}
