package comments

import "github.com/google/uuid"

// SearchCriteria holds the optional filters for the paged comment
// search. Absent (zero/nil) fields add no constraint; each present
// field contributes exactly one AND clause.
type SearchCriteria struct {
	CommentText     string      `json:"commentText,omitempty"`
	ImagePath       string      `json:"imagePath,omitempty"`
	CommentType     CommentType `json:"commentType,omitempty"`
	ParentCommentID *uuid.UUID  `json:"parentId,omitempty"`
	PostID          *uuid.UUID  `json:"postId,omitempty"`
	LikeAmount      *int        `json:"likeAmount,omitempty"`
	CommentsCount   *int        `json:"commentsCount,omitempty"`
	IsBlocked       *bool       `json:"isBlocked,omitempty"`
	IsDeleted       *bool       `json:"isDeleted,omitempty"`
}
