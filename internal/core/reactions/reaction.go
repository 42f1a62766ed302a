package reactions

import (
	"time"

	"github.com/google/uuid"
)

// Sentinel values recorded when a comment-level reaction arrives
// without an explicit type.
const (
	DefaultType         = "No_type"
	DefaultReactionType = "No_reaction"
)

// Reaction represents one author's reaction to a post or to a comment
// under that post. CommentID nil means the reaction targets the post
// itself. At most one reaction exists per (author, post, comment) key,
// where a nil comment id is its own key.
type Reaction struct {
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	Type         string     `json:"type" db:"type"`
	ReactionType string     `json:"reactionType" db:"reaction_type"`
	CommentID    *uuid.UUID `json:"commentId,omitempty" db:"comment_id"`
	ID           uuid.UUID  `json:"id" db:"id"`
	AuthorID     uuid.UUID  `json:"authorId" db:"author_id"`
	PostID       uuid.UUID  `json:"postId" db:"post_id"`
}

// AddReactionRequest represents input for reacting to a post.
type AddReactionRequest struct {
	Type         string `json:"type"`
	ReactionType string `json:"reactionType"`
}

// Validate checks the request at the service boundary.
func (r AddReactionRequest) Validate() error {
	if r.Type == "" || r.ReactionType == "" {
		return ErrInvalidReaction
	}
	return nil
}

// Summary is returned after reacting to a post: the reaction as stored
// plus the recomputed number of reactions of that type on the target.
type Summary struct {
	Type         string `json:"type"`
	ReactionType string `json:"reactionType"`
	Count        int    `json:"count"`
}
