package postgres

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Murmur/internal/core/comments"
)

func TestBuildCommentFilter_Empty(t *testing.T) {
	where, args := buildCommentFilter(comments.SearchCriteria{})

	assert.Equal(t, "TRUE", where)
	assert.Empty(t, args)
}

func TestBuildCommentFilter_TypeClauses(t *testing.T) {
	t.Run("post type selects top-level comments", func(t *testing.T) {
		where, args := buildCommentFilter(comments.SearchCriteria{CommentType: comments.TypePost})

		assert.Equal(t, "parent_comment_id IS NULL", where)
		assert.Empty(t, args)
	})

	t.Run("comment type selects replies", func(t *testing.T) {
		where, _ := buildCommentFilter(comments.SearchCriteria{CommentType: comments.TypeComment})

		assert.Equal(t, "parent_comment_id IS NOT NULL", where)
	})
}

func TestBuildCommentFilter_ScopingClauses(t *testing.T) {
	postID := uuid.New()
	parentID := uuid.New()

	where, args := buildCommentFilter(comments.SearchCriteria{
		PostID:          &postID,
		ParentCommentID: &parentID,
		CommentType:     comments.TypeComment,
	})

	assert.Contains(t, where, "parent_comment_id IS NOT NULL")
	assert.Contains(t, where, "parent_comment_id = $1")
	assert.Contains(t, where, "post_id = $2")
	require.Len(t, args, 2)
	assert.Equal(t, parentID.String(), args[0])
	assert.Equal(t, postID.String(), args[1])
}

func TestBuildCommentFilter_CountersAndFlags(t *testing.T) {
	likes := 5
	replies := 2
	isDeleted := false

	where, args := buildCommentFilter(comments.SearchCriteria{
		LikeAmount:    &likes,
		CommentsCount: &replies,
		IsDeleted:     &isDeleted,
	})

	assert.Contains(t, where, "like_amount >= $1")
	assert.Contains(t, where, "comments_count >= $2")
	assert.Contains(t, where, "is_deleted = $3")
	require.Len(t, args, 3)
	assert.Equal(t, 5, args[0])
	assert.Equal(t, 2, args[1])
	assert.Equal(t, false, args[2])
}

func TestBuildCommentFilter_TextSearch(t *testing.T) {
	where, args := buildCommentFilter(comments.SearchCriteria{
		CommentText: "nice",
		ImagePath:   "uploads/",
	})

	assert.Contains(t, where, "comment_text ILIKE $1")
	assert.Contains(t, where, "image_path LIKE $2")
	require.Len(t, args, 2)
	assert.Equal(t, "%nice%", args[0])
	assert.Equal(t, "%uploads/%", args[1])
}
