package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"Murmur/internal/core/reactions"
)

type postgresReactionRepo struct {
	store *Store
}

// NewReactionRepository creates a new PostgreSQL reaction repository
func NewReactionRepository(store *Store) reactions.Repository {
	return &postgresReactionRepo{store: store}
}

// Create inserts a new reaction row. The partial unique indexes on
// (post_id, author_id) and (comment_id, author_id) are the backstop
// against a concurrent duplicate from the same author; a violation
// surfaces as ErrReactionAlreadyExists, same as the fast-path check.
func (r *postgresReactionRepo) Create(ctx context.Context, reaction *reactions.Reaction) error {
	query := `
		INSERT INTO reactions (
			id, author_id, post_id, comment_id,
			type, reaction_type, created_at
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7
		)
	`

	var commentID any
	if reaction.CommentID != nil {
		commentID = reaction.CommentID.String()
	}

	_, err := r.store.q(ctx).ExecContext(
		ctx, query,
		reaction.ID.String(), reaction.AuthorID.String(), reaction.PostID.String(), commentID,
		reaction.Type, reaction.ReactionType, reaction.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "unique_author_post_reaction") || isUniqueViolation(err, "unique_author_comment_reaction") {
			return reactions.ErrReactionAlreadyExists
		}
		return fmt.Errorf("failed to insert reaction: %w", err)
	}

	return nil
}

func (r *postgresReactionRepo) ExistsForPost(ctx context.Context, postID, authorID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM reactions
			WHERE post_id = $1 AND author_id = $2 AND comment_id IS NULL
		)
	`

	var exists bool
	if err := r.store.q(ctx).QueryRowContext(ctx, query, postID.String(), authorID.String()).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check post reaction: %w", err)
	}

	return exists, nil
}

func (r *postgresReactionRepo) ExistsForComment(ctx context.Context, commentID, authorID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM reactions
			WHERE comment_id = $1 AND author_id = $2
		)
	`

	var exists bool
	if err := r.store.q(ctx).QueryRowContext(ctx, query, commentID.String(), authorID.String()).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check comment reaction: %w", err)
	}

	return exists, nil
}

// DeleteForPost removes the author's post-level reaction row.
// Deleting an absent row is a no-op, not an error.
func (r *postgresReactionRepo) DeleteForPost(ctx context.Context, postID, authorID uuid.UUID) error {
	query := `
		DELETE FROM reactions
		WHERE post_id = $1 AND author_id = $2 AND comment_id IS NULL
	`

	if _, err := r.store.q(ctx).ExecContext(ctx, query, postID.String(), authorID.String()); err != nil {
		return fmt.Errorf("failed to delete post reaction: %w", err)
	}

	return nil
}

// DeleteForComment removes the author's reaction row on the comment.
// Deleting an absent row is a no-op, not an error.
func (r *postgresReactionRepo) DeleteForComment(ctx context.Context, commentID, authorID uuid.UUID) error {
	query := `
		DELETE FROM reactions
		WHERE comment_id = $1 AND author_id = $2
	`

	if _, err := r.store.q(ctx).ExecContext(ctx, query, commentID.String(), authorID.String()); err != nil {
		return fmt.Errorf("failed to delete comment reaction: %w", err)
	}

	return nil
}

func (r *postgresReactionRepo) CountByTypeForPost(ctx context.Context, postID uuid.UUID, reactionType string) (int, error) {
	query := `
		SELECT COUNT(*) FROM reactions
		WHERE post_id = $1 AND reaction_type = $2 AND comment_id IS NULL
	`

	var count int
	if err := r.store.q(ctx).QueryRowContext(ctx, query, postID.String(), reactionType).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count post reactions: %w", err)
	}

	return count, nil
}

func (r *postgresReactionRepo) CountByTypeForComment(ctx context.Context, commentID uuid.UUID, reactionType string) (int, error) {
	query := `
		SELECT COUNT(*) FROM reactions
		WHERE comment_id = $1 AND reaction_type = $2
	`

	var count int
	if err := r.store.q(ctx).QueryRowContext(ctx, query, commentID.String(), reactionType).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count comment reactions: %w", err)
	}

	return count, nil
}
