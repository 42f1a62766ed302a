package postgres

import (
	"fmt"

	"Murmur/internal/core/comments"
)

// buildCommentFilter translates comment search criteria into an
// AND-composed WHERE fragment with positional args, starting at $1.
// Each present criterion contributes exactly one clause.
func buildCommentFilter(c comments.SearchCriteria) (string, []any) {
	var (
		conds []string
		args  []any
	)
	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if c.LikeAmount != nil {
		conds = append(conds, fmt.Sprintf("like_amount >= %s", next(*c.LikeAmount)))
	}
	if c.CommentsCount != nil {
		conds = append(conds, fmt.Sprintf("comments_count >= %s", next(*c.CommentsCount)))
	}
	if c.IsBlocked != nil {
		conds = append(conds, fmt.Sprintf("is_blocked = %s", next(*c.IsBlocked)))
	}
	if c.IsDeleted != nil {
		conds = append(conds, fmt.Sprintf("is_deleted = %s", next(*c.IsDeleted)))
	}

	// The comment type is derived from the parent reference
	switch c.CommentType {
	case comments.TypePost:
		conds = append(conds, "parent_comment_id IS NULL")
	case comments.TypeComment:
		conds = append(conds, "parent_comment_id IS NOT NULL")
	}

	if c.ParentCommentID != nil {
		conds = append(conds, fmt.Sprintf("parent_comment_id = %s", next(c.ParentCommentID.String())))
	}
	if c.PostID != nil {
		conds = append(conds, fmt.Sprintf("post_id = %s", next(c.PostID.String())))
	}

	if c.CommentText != "" {
		conds = append(conds, fmt.Sprintf("comment_text ILIKE %s", next("%"+c.CommentText+"%")))
	}
	if c.ImagePath != "" {
		conds = append(conds, fmt.Sprintf("image_path LIKE %s", next("%"+c.ImagePath+"%")))
	}

	return joinConds(conds), args
}
