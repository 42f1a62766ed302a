package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"Murmur/internal/core/paging"
	"Murmur/internal/core/posts"
)

var postSortColumns = map[string]bool{
	"created_at":      true,
	"updated_at":      true,
	"publish_date":    true,
	"title":           true,
	"reactions_count": true,
	"comments_count":  true,
}

const postColumns = `
	id, author_id, title, post_text, publish_date,
	created_at, updated_at, is_blocked, is_deleted,
	reactions_count, comments_count, tags, my_reaction`

type postgresPostRepo struct {
	store *Store
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(store *Store) posts.Repository {
	return &postgresPostRepo{store: store}
}

func (r *postgresPostRepo) GetByID(ctx context.Context, id uuid.UUID) (*posts.Post, error) {
	query := fmt.Sprintf(`SELECT %s FROM posts WHERE id = $1`, postColumns)

	post, err := scanPost(r.store.q(ctx).QueryRowContext(ctx, query, id.String()))
	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

// Search runs the paged, filtered post query. The filter fragment and
// its args come from buildPostFilter; the total is counted with the
// same predicate so page math stays consistent.
func (r *postgresPostRepo) Search(ctx context.Context, callerID uuid.UUID, criteria posts.SearchCriteria, page paging.Request) ([]*posts.Post, int64, error) {
	where, args, err := buildPostFilter(criteria, callerID)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM posts WHERE %s`, where)
	if err := r.store.q(ctx).QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	order := orderClause(page.Sort, postSortColumns, "publish_date DESC")
	query := fmt.Sprintf(`SELECT %s FROM posts WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d`,
		postColumns, where, order, len(args)+1, len(args)+2)
	args = append(args, page.Limit(), page.Offset())

	rows, err := r.store.q(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search posts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []*posts.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan post: %w", err)
		}
		result = append(result, post)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating posts: %w", err)
	}

	return result, total, nil
}

func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) error {
	query := `
		INSERT INTO posts (
			id, author_id, title, post_text, publish_date,
			created_at, updated_at, is_blocked, is_deleted,
			reactions_count, comments_count, tags, my_reaction
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9,
			$10, $11, $12, $13
		)
	`

	_, err := r.store.q(ctx).ExecContext(
		ctx, query,
		post.ID.String(), post.AuthorID.String(), post.Title, post.PostText, post.PublishDate,
		post.CreatedAt, post.UpdatedAt, post.IsBlocked, post.IsDeleted,
		post.ReactionsCount, post.CommentsCount, pq.Array(post.Tags), post.MyReaction,
	)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

func (r *postgresPostRepo) Update(ctx context.Context, post *posts.Post) error {
	query := `
		UPDATE posts
		SET
			title = $2,
			post_text = $3,
			publish_date = $4,
			tags = $5,
			is_blocked = $6,
			is_deleted = $7,
			updated_at = $8
		WHERE id = $1
	`

	result, err := r.store.q(ctx).ExecContext(
		ctx, query,
		post.ID.String(),
		post.Title, post.PostText, post.PublishDate,
		pq.Array(post.Tags), post.IsBlocked, post.IsDeleted,
		post.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return posts.ErrPostNotFound
	}

	return nil
}

func (r *postgresPostRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.store.q(ctx).ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return posts.ErrPostNotFound
	}

	return nil
}

// IncrementReactionsCount moves the counter in one statement so
// concurrent reactions can't lose updates; the flag rides along in the
// same statement when requested. GREATEST keeps the counter from
// dipping below zero no matter the interleaving.
func (r *postgresPostRepo) IncrementReactionsCount(ctx context.Context, id uuid.UUID, delta int, setMyReaction *bool) error {
	query := `
		UPDATE posts
		SET
			reactions_count = GREATEST(reactions_count + $2, 0),
			my_reaction = COALESCE($3, my_reaction)
		WHERE id = $1
	`

	flag := sql.NullBool{}
	if setMyReaction != nil {
		flag = sql.NullBool{Bool: *setMyReaction, Valid: true}
	}

	result, err := r.store.q(ctx).ExecContext(ctx, query, id.String(), delta, flag)
	if err != nil {
		return fmt.Errorf("failed to update reactions count: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return posts.ErrPostNotFound
	}

	return nil
}

// IncrementCommentsCount moves the counter in one statement, same
// contract as IncrementReactionsCount.
func (r *postgresPostRepo) IncrementCommentsCount(ctx context.Context, id uuid.UUID, delta int) error {
	query := `
		UPDATE posts
		SET comments_count = GREATEST(comments_count + $2, 0)
		WHERE id = $1
	`

	result, err := r.store.q(ctx).ExecContext(ctx, query, id.String(), delta)
	if err != nil {
		return fmt.Errorf("failed to update comments count: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return posts.ErrPostNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*posts.Post, error) {
	var (
		post     posts.Post
		id       string
		authorID string
		tags     pq.StringArray
	)

	err := row.Scan(
		&id, &authorID, &post.Title, &post.PostText, &post.PublishDate,
		&post.CreatedAt, &post.UpdatedAt, &post.IsBlocked, &post.IsDeleted,
		&post.ReactionsCount, &post.CommentsCount, &tags, &post.MyReaction,
	)
	if err != nil {
		return nil, err
	}

	post.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid post id %q: %w", id, err)
	}
	post.AuthorID, err = uuid.Parse(authorID)
	if err != nil {
		return nil, fmt.Errorf("invalid author id %q: %w", authorID, err)
	}
	post.Tags = tags

	return &post, nil
}

// isUniqueViolation reports whether the error is a unique constraint
// violation for the named constraint.
func isUniqueViolation(err error, constraint string) bool {
	return err != nil &&
		strings.Contains(err.Error(), "duplicate key") &&
		strings.Contains(err.Error(), constraint)
}
