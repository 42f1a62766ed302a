package notifications

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventKind identifies the kind of notification event published to the bus.
type EventKind string

const (
	EventNewPost     EventKind = "new-post"
	EventNewComment  EventKind = "new-comment"
	EventNewReaction EventKind = "new-reaction"
)

// Sink publishes notification events to the message bus.
// Publishing is fire-and-forget: callers log failures and move on,
// a committed write is never rolled back because the bus was unavailable.
type Sink interface {
	Publish(ctx context.Context, kind EventKind, payload any) error
}

// PostEvent is the payload for EventNewPost.
type PostEvent struct {
	CreatedAt time.Time `json:"createdAt"`
	Title     string    `json:"title"`
	PostID    uuid.UUID `json:"postId"`
	AuthorID  uuid.UUID `json:"authorId"`
}

// CommentEvent is the payload for EventNewComment. Text carries only a
// short excerpt of the comment body, not the full text.
type CommentEvent struct {
	CreatedAt time.Time  `json:"createdAt"`
	Text      string     `json:"text"`
	CommentID uuid.UUID  `json:"commentId"`
	PostID    uuid.UUID  `json:"postId"`
	AuthorID  uuid.UUID  `json:"authorId"`
	ParentID  *uuid.UUID `json:"parentId,omitempty"`
}

// ReactionEvent is the payload for EventNewReaction.
type ReactionEvent struct {
	CreatedAt    time.Time  `json:"createdAt"`
	ReactionType string     `json:"reactionType"`
	ReactionID   uuid.UUID  `json:"reactionId"`
	PostID       uuid.UUID  `json:"postId"`
	AuthorID     uuid.UUID  `json:"authorId"`
	CommentID    *uuid.UUID `json:"commentId,omitempty"`
}

// NoopSink discards every event. Used in tests and local setups
// without a broker.
type NoopSink struct{}

func (NoopSink) Publish(ctx context.Context, kind EventKind, payload any) error {
	return nil
}
