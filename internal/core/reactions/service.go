package reactions

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"Murmur/internal/core/comments"
	"Murmur/internal/core/notifications"
	"Murmur/internal/core/posts"
)

type reactionService struct {
	repo        Repository
	postRepo    posts.Repository
	commentRepo comments.Repository
	tx          TxRunner
	sink        notifications.Sink
	logger      *slog.Logger
}

// NewReactionService creates a new reaction service.
// sink may be nil when no broker is configured; notifications are then skipped.
func NewReactionService(repo Repository, postRepo posts.Repository, commentRepo comments.Repository, tx TxRunner, sink notifications.Sink, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	if sink == nil {
		sink = notifications.NoopSink{}
	}
	return &reactionService{
		repo:        repo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		tx:          tx,
		sink:        sink,
		logger:      logger,
	}
}

// AddToPost records a post-level reaction.
// The whole sequence runs in one transaction: the existence check is the
// fast path, the store's unique key on (post, author, comment-null) is
// the backstop against a concurrent duplicate from the same author.
func (s *reactionService) AddToPost(ctx context.Context, callerID, postID uuid.UUID, req AddReactionRequest) (*Summary, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	reaction := &Reaction{
		ID:           uuid.New(),
		AuthorID:     callerID,
		PostID:       postID,
		Type:         req.Type,
		ReactionType: req.ReactionType,
		CreatedAt:    time.Now().UTC(),
	}

	var count int
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		post, err := s.postRepo.GetByID(ctx, postID)
		if err != nil {
			return err
		}

		exists, err := s.repo.ExistsForPost(ctx, postID, callerID)
		if err != nil {
			return fmt.Errorf("failed to check existing reaction: %w", err)
		}
		if exists {
			return ErrReactionAlreadyExists
		}

		if err := s.repo.Create(ctx, reaction); err != nil {
			return err
		}

		// The flag only flips when the caller reacted to their own post;
		// the counter moves for everyone.
		var setMyReaction *bool
		if callerID == post.AuthorID {
			flag := true
			setMyReaction = &flag
		}
		if err := s.postRepo.IncrementReactionsCount(ctx, postID, 1, setMyReaction); err != nil {
			return fmt.Errorf("failed to increment reactions count: %w", err)
		}

		count, err = s.repo.CountByTypeForPost(ctx, postID, req.ReactionType)
		if err != nil {
			return fmt.Errorf("failed to count reactions: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("reaction added to post",
		"post", postID,
		"author", callerID,
		"reactionType", req.ReactionType)

	s.publish(ctx, reaction)

	return &Summary{
		Type:         req.Type,
		ReactionType: req.ReactionType,
		Count:        count,
	}, nil
}

// RemoveFromPost removes the caller's post-level reaction. The row
// delete is a no-op when the row is absent; the counter guard runs on
// the post row inside the same transaction.
func (s *reactionService) RemoveFromPost(ctx context.Context, callerID, postID uuid.UUID) error {
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		post, err := s.postRepo.GetByID(ctx, postID)
		if err != nil {
			return err
		}
		if post.ReactionsCount <= 0 {
			return ErrNoReactionsToRemove
		}

		var setMyReaction *bool
		if callerID == post.AuthorID {
			flag := false
			setMyReaction = &flag
		}
		if err := s.postRepo.IncrementReactionsCount(ctx, postID, -1, setMyReaction); err != nil {
			return fmt.Errorf("failed to decrement reactions count: %w", err)
		}

		if err := s.repo.DeleteForPost(ctx, postID, callerID); err != nil {
			return fmt.Errorf("failed to delete reaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("reaction removed from post",
		"post", postID,
		"author", callerID)

	return nil
}

// AddToComment records a reaction to a comment under the post. A
// duplicate from the same author is a silent no-op rather than a
// conflict; the post path behaves differently and that asymmetry is
// deliberate (see DESIGN.md).
func (s *reactionService) AddToComment(ctx context.Context, callerID, postID, commentID uuid.UUID) error {
	reaction := &Reaction{
		ID:           uuid.New(),
		AuthorID:     callerID,
		PostID:       postID,
		CommentID:    &commentID,
		Type:         DefaultType,
		ReactionType: DefaultReactionType,
		CreatedAt:    time.Now().UTC(),
	}

	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
			return err
		}

		comment, err := s.commentRepo.GetByID(ctx, commentID)
		if err != nil {
			return err
		}
		if comment.PostID != postID {
			return comments.ErrCommentPostMismatch
		}

		exists, err := s.repo.ExistsForComment(ctx, commentID, callerID)
		if err != nil {
			return fmt.Errorf("failed to check existing reaction: %w", err)
		}
		if exists {
			return ErrReactionAlreadyExists
		}

		if err := s.repo.Create(ctx, reaction); err != nil {
			return err
		}

		var setMyLike *bool
		if callerID == comment.AuthorID {
			flag := true
			setMyLike = &flag
		}
		if err := s.commentRepo.IncrementLikeAmount(ctx, commentID, 1, setMyLike); err != nil {
			return fmt.Errorf("failed to increment like amount: %w", err)
		}
		return nil
	})
	if errors.Is(err, ErrReactionAlreadyExists) {
		// Duplicate comment likes don't raise
		s.logger.Debug("duplicate comment reaction ignored",
			"comment", commentID,
			"author", callerID)
		return nil
	}
	if err != nil {
		return err
	}

	s.logger.Info("reaction added to comment",
		"post", postID,
		"comment", commentID,
		"author", callerID)

	s.publish(ctx, reaction)

	return nil
}

// RemoveFromComment removes the caller's reaction to a comment.
func (s *reactionService) RemoveFromComment(ctx context.Context, callerID, postID, commentID uuid.UUID) error {
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
			return err
		}

		comment, err := s.commentRepo.GetByID(ctx, commentID)
		if err != nil {
			return err
		}
		if comment.PostID != postID {
			return comments.ErrCommentPostMismatch
		}
		if comment.LikeAmount <= 0 {
			return ErrNoLikesToRemove
		}

		var setMyLike *bool
		if callerID == comment.AuthorID {
			flag := false
			setMyLike = &flag
		}
		if err := s.commentRepo.IncrementLikeAmount(ctx, commentID, -1, setMyLike); err != nil {
			return fmt.Errorf("failed to decrement like amount: %w", err)
		}

		if err := s.repo.DeleteForComment(ctx, commentID, callerID); err != nil {
			return fmt.Errorf("failed to delete reaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("reaction removed from comment",
		"post", postID,
		"comment", commentID,
		"author", callerID)

	return nil
}

// publish sends the new-reaction event after a committed write.
// Fire-and-forget: a publish failure never undoes the write.
func (s *reactionService) publish(ctx context.Context, reaction *Reaction) {
	if err := s.sink.Publish(ctx, notifications.EventNewReaction, notifications.ReactionEvent{
		ReactionID:   reaction.ID,
		PostID:       reaction.PostID,
		CommentID:    reaction.CommentID,
		AuthorID:     reaction.AuthorID,
		ReactionType: reaction.ReactionType,
		CreatedAt:    reaction.CreatedAt,
	}); err != nil {
		s.logger.Error("failed to publish new-reaction event",
			"error", err,
			"reaction", reaction.ID)
	}
}
