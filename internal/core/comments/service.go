package comments

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"Murmur/internal/core/notifications"
	"Murmur/internal/core/paging"
	"Murmur/internal/core/posts"
)

// notificationExcerptLen caps the comment text carried in a
// new-comment event.
const notificationExcerptLen = 64

type commentService struct {
	repo     Repository
	postRepo posts.Repository
	tx       TxRunner
	sink     notifications.Sink
	logger   *slog.Logger
}

// NewCommentService creates a new comment service.
// sink may be nil when no broker is configured; notifications are then skipped.
func NewCommentService(repo Repository, postRepo posts.Repository, tx TxRunner, sink notifications.Sink, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	if sink == nil {
		sink = notifications.NoopSink{}
	}
	return &commentService{
		repo:     repo,
		postRepo: postRepo,
		tx:       tx,
		sink:     sink,
		logger:   logger,
	}
}

func (s *commentService) GetByPostID(ctx context.Context, postID uuid.UUID, criteria SearchCriteria, page paging.Request) (paging.Page[*Comment], error) {
	// Top-level listing only; replies come through GetSubcomments
	criteria.PostID = &postID
	criteria.CommentType = TypePost

	content, total, err := s.repo.Search(ctx, criteria, page)
	if err != nil {
		return paging.Page[*Comment]{}, fmt.Errorf("failed to search comments: %w", err)
	}

	return paging.NewPage(content, total, page), nil
}

func (s *commentService) GetSubcomments(ctx context.Context, postID, parentCommentID uuid.UUID, page paging.Request) (paging.Page[*Comment], error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return paging.Page[*Comment]{}, err
	}
	if _, err := s.repo.GetByID(ctx, parentCommentID); err != nil {
		return paging.Page[*Comment]{}, err
	}

	criteria := SearchCriteria{
		PostID:          &postID,
		ParentCommentID: &parentCommentID,
		CommentType:     TypeComment,
	}

	content, total, err := s.repo.Search(ctx, criteria, page)
	if err != nil {
		return paging.Page[*Comment]{}, fmt.Errorf("failed to search subcomments: %w", err)
	}

	return paging.NewPage(content, total, page), nil
}

func (s *commentService) Create(ctx context.Context, callerID, postID uuid.UUID, req CreateCommentRequest) (*Comment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	if req.ParentID != nil {
		if _, err := s.repo.GetByID(ctx, *req.ParentID); err != nil {
			if err == ErrCommentNotFound {
				return nil, ErrParentCommentNotFound
			}
			return nil, err
		}
	}

	now := time.Now().UTC()
	comment := &Comment{
		ID:              uuid.New(),
		PostID:          postID,
		ParentCommentID: req.ParentID,
		AuthorID:        callerID,
		CommentText:     req.CommentText,
		ImagePath:       req.ImagePath,
		CommentType:     TypeOf(req.ParentID),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	// Insert and counter bump commit or roll back together
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, comment); err != nil {
			return fmt.Errorf("failed to create comment: %w", err)
		}
		if err := s.postRepo.IncrementCommentsCount(ctx, postID, 1); err != nil {
			return fmt.Errorf("failed to increment comments count: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("comment created",
		"comment", comment.ID,
		"post", postID,
		"author", callerID,
		"type", comment.CommentType)

	// Fire-and-forget: a publish failure never undoes the write
	if err := s.sink.Publish(ctx, notifications.EventNewComment, notifications.CommentEvent{
		CommentID: comment.ID,
		PostID:    postID,
		ParentID:  comment.ParentCommentID,
		AuthorID:  callerID,
		Text:      excerpt(comment.CommentText, notificationExcerptLen),
		CreatedAt: comment.CreatedAt,
	}); err != nil {
		s.logger.Error("failed to publish new-comment event",
			"error", err,
			"comment", comment.ID)
	}

	return comment, nil
}

func (s *commentService) Update(ctx context.Context, postID, commentID uuid.UUID, req UpdateCommentRequest) (*Comment, error) {
	// Reject before touching storage
	if req.ID != commentID {
		return nil, ErrIDMismatch
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.PostID != postID {
		return nil, ErrCommentPostMismatch
	}

	// Re-parent only when a different parent is supplied
	if req.ParentID != nil && (comment.ParentCommentID == nil || *comment.ParentCommentID != *req.ParentID) {
		if _, err := s.repo.GetByID(ctx, *req.ParentID); err != nil {
			if err == ErrCommentNotFound {
				return nil, ErrParentCommentNotFound
			}
			return nil, err
		}
		comment.ParentCommentID = req.ParentID
	}

	// Re-assign to another post only when a different post is supplied
	if req.PostID != nil && *req.PostID != comment.PostID {
		if _, err := s.postRepo.GetByID(ctx, *req.PostID); err != nil {
			return nil, err
		}
		comment.PostID = *req.PostID
	}

	comment.CommentText = req.CommentText
	comment.ImagePath = req.ImagePath
	comment.CommentType = TypeOf(comment.ParentCommentID)
	if req.UpdatedAt != nil {
		comment.UpdatedAt = req.UpdatedAt.UTC()
	} else {
		comment.UpdatedAt = time.Now().UTC()
	}

	if err := s.repo.Update(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	return comment, nil
}

func (s *commentService) Delete(ctx context.Context, postID, commentID uuid.UUID) error {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return err
	}

	comment, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.PostID != postID {
		return ErrCommentPostMismatch
	}

	// Marks every comment of the post as deleted, not only the addressed
	// one. Carried over from the original service pending a product
	// decision; see DESIGN.md.
	// TODO: scope the deletion to the single comment once the intended
	// contract is confirmed.
	if err := s.repo.MarkAllDeletedByPost(ctx, postID); err != nil {
		return fmt.Errorf("failed to delete comments: %w", err)
	}

	s.logger.Info("comments marked deleted",
		"post", postID,
		"comment", commentID)

	return nil
}

// excerpt returns the first n runes of s.
func excerpt(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
