package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"Murmur/internal/core/comments"
	"Murmur/internal/core/paging"
)

var commentSortColumns = map[string]bool{
	"created_at":     true,
	"updated_at":     true,
	"like_amount":    true,
	"comments_count": true,
}

const commentColumns = `
	id, post_id, parent_comment_id, author_id,
	comment_text, image_path, created_at, updated_at,
	is_blocked, is_deleted, like_amount, comments_count, my_like`

type postgresCommentRepo struct {
	store *Store
}

// NewCommentRepository creates a new PostgreSQL comment repository
func NewCommentRepository(store *Store) comments.Repository {
	return &postgresCommentRepo{store: store}
}

func (r *postgresCommentRepo) GetByID(ctx context.Context, id uuid.UUID) (*comments.Comment, error) {
	query := fmt.Sprintf(`SELECT %s FROM comments WHERE id = $1`, commentColumns)

	comment, err := scanComment(r.store.q(ctx).QueryRowContext(ctx, query, id.String()))
	if err == sql.ErrNoRows {
		return nil, comments.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment by id: %w", err)
	}

	return comment, nil
}

func (r *postgresCommentRepo) Search(ctx context.Context, criteria comments.SearchCriteria, page paging.Request) ([]*comments.Comment, int64, error) {
	where, args := buildCommentFilter(criteria)

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM comments WHERE %s`, where)
	if err := r.store.q(ctx).QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count comments: %w", err)
	}

	order := orderClause(page.Sort, commentSortColumns, "created_at ASC")
	query := fmt.Sprintf(`SELECT %s FROM comments WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d`,
		commentColumns, where, order, len(args)+1, len(args)+2)
	args = append(args, page.Limit(), page.Offset())

	rows, err := r.store.q(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search comments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []*comments.Comment
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan comment: %w", err)
		}
		result = append(result, comment)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating comments: %w", err)
	}

	return result, total, nil
}

func (r *postgresCommentRepo) Create(ctx context.Context, comment *comments.Comment) error {
	query := `
		INSERT INTO comments (
			id, post_id, parent_comment_id, author_id,
			comment_text, image_path, created_at, updated_at,
			is_blocked, is_deleted, like_amount, comments_count, my_like
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8,
			$9, $10, $11, $12, $13
		)
	`

	var parentID any
	if comment.ParentCommentID != nil {
		parentID = comment.ParentCommentID.String()
	}

	_, err := r.store.q(ctx).ExecContext(
		ctx, query,
		comment.ID.String(), comment.PostID.String(), parentID, comment.AuthorID.String(),
		comment.CommentText, comment.ImagePath, comment.CreatedAt, comment.UpdatedAt,
		comment.IsBlocked, comment.IsDeleted, comment.LikeAmount, comment.CommentsCount, comment.MyLike,
	)
	if err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}

	return nil
}

func (r *postgresCommentRepo) Update(ctx context.Context, comment *comments.Comment) error {
	query := `
		UPDATE comments
		SET
			post_id = $2,
			parent_comment_id = $3,
			comment_text = $4,
			image_path = $5,
			is_blocked = $6,
			is_deleted = $7,
			updated_at = $8
		WHERE id = $1
	`

	var parentID any
	if comment.ParentCommentID != nil {
		parentID = comment.ParentCommentID.String()
	}

	result, err := r.store.q(ctx).ExecContext(
		ctx, query,
		comment.ID.String(), comment.PostID.String(), parentID,
		comment.CommentText, comment.ImagePath,
		comment.IsBlocked, comment.IsDeleted, comment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return comments.ErrCommentNotFound
	}

	return nil
}

// MarkAllDeletedByPost flips is_deleted on every comment of the post in
// one statement. Idempotent: already-deleted rows simply stay deleted.
func (r *postgresCommentRepo) MarkAllDeletedByPost(ctx context.Context, postID uuid.UUID) error {
	query := `UPDATE comments SET is_deleted = TRUE WHERE post_id = $1`

	if _, err := r.store.q(ctx).ExecContext(ctx, query, postID.String()); err != nil {
		return fmt.Errorf("failed to mark comments deleted: %w", err)
	}

	return nil
}

// IncrementLikeAmount moves the counter in one statement so concurrent
// likes can't lose updates; the flag rides along when requested.
// GREATEST keeps the counter from dipping below zero.
func (r *postgresCommentRepo) IncrementLikeAmount(ctx context.Context, id uuid.UUID, delta int, setMyLike *bool) error {
	query := `
		UPDATE comments
		SET
			like_amount = GREATEST(like_amount + $2, 0),
			my_like = COALESCE($3, my_like)
		WHERE id = $1
	`

	flag := sql.NullBool{}
	if setMyLike != nil {
		flag = sql.NullBool{Bool: *setMyLike, Valid: true}
	}

	result, err := r.store.q(ctx).ExecContext(ctx, query, id.String(), delta, flag)
	if err != nil {
		return fmt.Errorf("failed to update like amount: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return comments.ErrCommentNotFound
	}

	return nil
}

func scanComment(row rowScanner) (*comments.Comment, error) {
	var (
		comment  comments.Comment
		id       string
		postID   string
		authorID string
		parentID sql.NullString
	)

	err := row.Scan(
		&id, &postID, &parentID, &authorID,
		&comment.CommentText, &comment.ImagePath, &comment.CreatedAt, &comment.UpdatedAt,
		&comment.IsBlocked, &comment.IsDeleted, &comment.LikeAmount, &comment.CommentsCount, &comment.MyLike,
	)
	if err != nil {
		return nil, err
	}

	comment.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid comment id %q: %w", id, err)
	}
	comment.PostID, err = uuid.Parse(postID)
	if err != nil {
		return nil, fmt.Errorf("invalid post id %q: %w", postID, err)
	}
	comment.AuthorID, err = uuid.Parse(authorID)
	if err != nil {
		return nil, fmt.Errorf("invalid author id %q: %w", authorID, err)
	}
	if parentID.Valid {
		parsed, err := uuid.Parse(parentID.String)
		if err != nil {
			return nil, fmt.Errorf("invalid parent comment id %q: %w", parentID.String, err)
		}
		comment.ParentCommentID = &parsed
	}
	comment.CommentType = comments.TypeOf(comment.ParentCommentID)

	return &comment, nil
}
