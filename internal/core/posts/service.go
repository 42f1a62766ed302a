package posts

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"Murmur/internal/core/notifications"
	"Murmur/internal/core/paging"
)

type postService struct {
	repo   Repository
	sink   notifications.Sink
	logger *slog.Logger
}

// NewPostService creates a new post service.
// sink may be nil when no broker is configured; notifications are then skipped.
func NewPostService(repo Repository, sink notifications.Sink, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	if sink == nil {
		sink = notifications.NoopSink{}
	}
	return &postService{
		repo:   repo,
		sink:   sink,
		logger: logger,
	}
}

func (s *postService) GetByID(ctx context.Context, id uuid.UUID) (*Post, error) {
	return s.repo.GetByID(ctx, id)
}

// Search runs the paged post search. The search endpoint is meant for
// browsing other people's posts: with no AccountIDs the caller's own
// posts are excluded, and the caller only sees their own posts by
// listing themselves explicitly. That asymmetry lives in the filter
// builder; here we only log the scoping decision.
func (s *postService) Search(ctx context.Context, callerID uuid.UUID, criteria SearchCriteria, page paging.Request) (paging.Page[*Post], error) {
	if len(criteria.AccountIDs) > 0 && !criteria.IncludesAccount(callerID) {
		s.logger.Info("post search scoped to other accounts",
			"caller", callerID,
			"accounts", len(criteria.AccountIDs))
	}

	content, total, err := s.repo.Search(ctx, callerID, criteria, page)
	if err != nil {
		return paging.Page[*Post]{}, fmt.Errorf("failed to search posts: %w", err)
	}

	return paging.NewPage(content, total, page), nil
}

func (s *postService) Create(ctx context.Context, callerID uuid.UUID, req CreatePostRequest) (*Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	publishDate := now
	if req.PublishDate != nil {
		publishDate = req.PublishDate.UTC()
	}

	post := &Post{
		ID:          uuid.New(),
		AuthorID:    callerID,
		Title:       req.Title,
		PostText:    req.PostText,
		Tags:        req.Tags,
		PublishDate: publishDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.logger.Info("post created",
		"post", post.ID,
		"author", callerID)

	// Fire-and-forget: a publish failure never undoes the write
	if err := s.sink.Publish(ctx, notifications.EventNewPost, notifications.PostEvent{
		PostID:    post.ID,
		AuthorID:  post.AuthorID,
		Title:     post.Title,
		CreatedAt: post.CreatedAt,
	}); err != nil {
		s.logger.Error("failed to publish new-post event",
			"error", err,
			"post", post.ID)
	}

	return post, nil
}

func (s *postService) Update(ctx context.Context, id uuid.UUID, req UpdatePostRequest) (*Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.PostText != nil {
		post.PostText = *req.PostText
	}
	if req.PublishDate != nil {
		post.PublishDate = req.PublishDate.UTC()
	}
	if req.Tags != nil {
		post.Tags = req.Tags
	}
	post.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return post, nil
}

func (s *postService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("post deleted", "post", id)
	return nil
}
