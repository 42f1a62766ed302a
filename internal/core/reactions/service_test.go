package reactions

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"Murmur/internal/core/comments"
	"Murmur/internal/core/notifications"
	"Murmur/internal/core/paging"
	"Murmur/internal/core/posts"
)

// Mock repositories for testing
type mockReactionRepository struct {
	mock.Mock
}

func (m *mockReactionRepository) Create(ctx context.Context, reaction *Reaction) error {
	args := m.Called(ctx, reaction)
	return args.Error(0)
}

func (m *mockReactionRepository) ExistsForPost(ctx context.Context, postID, authorID uuid.UUID) (bool, error) {
	args := m.Called(ctx, postID, authorID)
	return args.Bool(0), args.Error(1)
}

func (m *mockReactionRepository) ExistsForComment(ctx context.Context, commentID, authorID uuid.UUID) (bool, error) {
	args := m.Called(ctx, commentID, authorID)
	return args.Bool(0), args.Error(1)
}

func (m *mockReactionRepository) DeleteForPost(ctx context.Context, postID, authorID uuid.UUID) error {
	args := m.Called(ctx, postID, authorID)
	return args.Error(0)
}

func (m *mockReactionRepository) DeleteForComment(ctx context.Context, commentID, authorID uuid.UUID) error {
	args := m.Called(ctx, commentID, authorID)
	return args.Error(0)
}

func (m *mockReactionRepository) CountByTypeForPost(ctx context.Context, postID uuid.UUID, reactionType string) (int, error) {
	args := m.Called(ctx, postID, reactionType)
	return args.Int(0), args.Error(1)
}

func (m *mockReactionRepository) CountByTypeForComment(ctx context.Context, commentID uuid.UUID, reactionType string) (int, error) {
	args := m.Called(ctx, commentID, reactionType)
	return args.Int(0), args.Error(1)
}

type mockPostRepository struct {
	mock.Mock
}

func (m *mockPostRepository) GetByID(ctx context.Context, id uuid.UUID) (*posts.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.Post), args.Error(1)
}

func (m *mockPostRepository) Search(ctx context.Context, callerID uuid.UUID, criteria posts.SearchCriteria, page paging.Request) ([]*posts.Post, int64, error) {
	args := m.Called(ctx, callerID, criteria, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*posts.Post), args.Get(1).(int64), args.Error(2)
}

func (m *mockPostRepository) Create(ctx context.Context, post *posts.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *mockPostRepository) Update(ctx context.Context, post *posts.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *mockPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockPostRepository) IncrementReactionsCount(ctx context.Context, id uuid.UUID, delta int, setMyReaction *bool) error {
	args := m.Called(ctx, id, delta, setMyReaction)
	return args.Error(0)
}

func (m *mockPostRepository) IncrementCommentsCount(ctx context.Context, id uuid.UUID, delta int) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

type mockCommentRepository struct {
	mock.Mock
}

func (m *mockCommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*comments.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*comments.Comment), args.Error(1)
}

func (m *mockCommentRepository) Search(ctx context.Context, criteria comments.SearchCriteria, page paging.Request) ([]*comments.Comment, int64, error) {
	args := m.Called(ctx, criteria, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*comments.Comment), args.Get(1).(int64), args.Error(2)
}

func (m *mockCommentRepository) Create(ctx context.Context, comment *comments.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *mockCommentRepository) Update(ctx context.Context, comment *comments.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *mockCommentRepository) MarkAllDeletedByPost(ctx context.Context, postID uuid.UUID) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func (m *mockCommentRepository) IncrementLikeAmount(ctx context.Context, id uuid.UUID, delta int, setMyLike *bool) error {
	args := m.Called(ctx, id, delta, setMyLike)
	return args.Error(0)
}

// passthroughTx runs the function directly without a real transaction
type passthroughTx struct{}

func (passthroughTx) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestService(reactionRepo *mockReactionRepository, postRepo *mockPostRepository, commentRepo *mockCommentRepository) Service {
	return NewReactionService(reactionRepo, postRepo, commentRepo, passthroughTx{}, notifications.NoopSink{}, nil)
}

func TestReactionService_AddToPost(t *testing.T) {
	ctx := context.Background()
	callerID := uuid.New()
	authorID := uuid.New()
	postID := uuid.New()

	t.Run("adds reaction and returns count", func(t *testing.T) {
		reactionRepo := new(mockReactionRepository)
		postRepo := new(mockPostRepository)
		service := newTestService(reactionRepo, postRepo, new(mockCommentRepository))

		postRepo.On("GetByID", ctx, postID).Return(&posts.Post{ID: postID, AuthorID: authorID}, nil)
		reactionRepo.On("ExistsForPost", ctx, postID, callerID).Return(false, nil)
		reactionRepo.On("Create", ctx, mock.AnythingOfType("*reactions.Reaction")).Return(nil)
		postRepo.On("IncrementReactionsCount", ctx, postID, 1, (*bool)(nil)).Return(nil)
		reactionRepo.On("CountByTypeForPost", ctx, postID, "like").Return(3, nil)

		summary, err := service.AddToPost(ctx, callerID, postID, AddReactionRequest{Type: "emoji", ReactionType: "like"})
		require.NoError(t, err)
		assert.Equal(t, "emoji", summary.Type)
		assert.Equal(t, "like", summary.ReactionType)
		assert.Equal(t, 3, summary.Count)

		postRepo.AssertExpectations(t)
		reactionRepo.AssertExpectations(t)
	})

	t.Run("duplicate reaction is a conflict", func(t *testing.T) {
		reactionRepo := new(mockReactionRepository)
		postRepo := new(mockPostRepository)
		service := newTestService(reactionRepo, postRepo, new(mockCommentRepository))

		postRepo.On("GetByID", ctx, postID).Return(&posts.Post{ID: postID, AuthorID: authorID}, nil)
		reactionRepo.On("ExistsForPost", ctx, postID, callerID).Return(true, nil)

		_, err := service.AddToPost(ctx, callerID, postID, AddReactionRequest{Type: "emoji", ReactionType: "like"})
		require.ErrorIs(t, err, ErrReactionAlreadyExists)
		assert.True(t, IsConflict(err))

		reactionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		postRepo.AssertNotCalled(t, "IncrementReactionsCount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing post propagates not found", func(t *testing.T) {
		reactionRepo := new(mockReactionRepository)
		postRepo := new(mockPostRepository)
		service := newTestService(reactionRepo, postRepo, new(mockCommentRepository))

		postRepo.On("GetByID", ctx, postID).Return(nil, posts.ErrPostNotFound)

		_, err := service.AddToPost(ctx, callerID, postID, AddReactionRequest{Type: "emoji", ReactionType: "like"})
		require.ErrorIs(t, err, posts.ErrPostNotFound)
	})

	t.Run("empty type is a validation error", func(t *testing.T) {
		service := newTestService(new(mockReactionRepository), new(mockPostRepository), new(mockCommentRepository))

		_, err := service.AddToPost(ctx, callerID, postID, AddReactionRequest{})
		require.ErrorIs(t, err, ErrInvalidReaction)
		assert.True(t, IsValidationError(err))
	})

	t.Run("own post flips the my-reaction flag", func(t *testing.T) {
		reactionRepo := new(mockReactionRepository)
		postRepo := new(mockPostRepository)
		service := newTestService(reactionRepo, postRepo, new(mockCommentRepository))

		postRepo.On("GetByID", ctx, postID).Return(&posts.Post{ID: postID, AuthorID: callerID}, nil)
		reactionRepo.On("ExistsForPost", ctx, postID, callerID).Return(false, nil)
		reactionRepo.On("Create", ctx, mock.AnythingOfType("*reactions.Reaction")).Return(nil)
		postRepo.On("IncrementReactionsCount", ctx, postID, 1, mock.MatchedBy(func(flag *bool) bool {
			return flag != nil && *flag
		})).Return(nil)
		reactionRepo.On("CountByTypeForPost", ctx, postID, "laugh").Return(1, nil)

		summary, err := service.AddToPost(ctx, callerID, postID, AddReactionRequest{Type: "emoji", ReactionType: "laugh"})
		require.NoError(t, err)
		assert.Equal(t, 1, summary.Count)
		postRepo.AssertExpectations(t)
	})
}

func TestReactionService_RemoveFromPost(t *testing.T) {
	ctx := context.Background()
	callerID := uuid.New()
	authorID := uuid.New()
	postID := uuid.New()

	t.Run("removes reaction and decrements", func(t *testing.T) {
		reactionRepo := new(mockReactionRepository)
		postRepo := new(mockPostRepository)
		service := newTestService(reactionRepo, postRepo, new(mockCommentRepository))

		postRepo.On("GetByID", ctx, postID).Return(&posts.Post{ID: postID, AuthorID: authorID, ReactionsCount: 2}, nil)
		postRepo.On("IncrementReactionsCount", ctx, postID, -1, (*bool)(nil)).Return(nil)
		reactionRepo.On("DeleteForPost", ctx, postID, callerID).Return(nil)

		err := service.RemoveFromPost(ctx, callerID, postID)
		require.NoError(t, err)
		postRepo.AssertExpectations(t)
		reactionRepo.AssertExpectations(t)
	})

	t.Run("zero counter refuses removal", func(t *testing.T) {
		reactionRepo := new(mockReactionRepository)
		postRepo := new(mockPostRepository)
		service := newTestService(reactionRepo, postRepo, new(mockCommentRepository))

		postRepo.On("GetByID", ctx, postID).Return(&posts.Post{ID: postID, AuthorID: authorID, ReactionsCount: 0}, nil)

		err := service.RemoveFromPost(ctx, callerID, postID)
		require.ErrorIs(t, err, ErrNoReactionsToRemove)
		reactionRepo.AssertNotCalled(t, "DeleteForPost", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("own post clears the my-reaction flag", func(t *testing.T) {
		reactionRepo := new(mockReactionRepository)
		postRepo := new(mockPostRepository)
		service := newTestService(reactionRepo, postRepo, new(mockCommentRepository))

		postRepo.On("GetByID", ctx, postID).Return(&posts.Post{ID: postID, AuthorID: callerID, ReactionsCount: 1, MyReaction: true}, nil)
		postRepo.On("IncrementReactionsCount", ctx, postID, -1, mock.MatchedBy(func(flag *bool) bool {
			return flag != nil && !*flag
		})).Return(nil)
		reactionRepo.On("DeleteForPost", ctx, postID, callerID).Return(nil)

		err := service.RemoveFromPost(ctx, callerID, postID)
		require.NoError(t, err)
		postRepo.AssertExpectations(t)
	})
}

func TestReactionService_AddToComment(t *testing.T) {
	ctx := context.Background()
	callerID := uuid.New()
	authorID := uuid.New()
	postID := uuid.New()
	commentID := uuid.New()

	t.Run("adds like and increments counter", func(t *testing.T) {
		reactionRepo := new(mockReactionRepository)
		postRepo := new(mockPostRepository)
		commentRepo := new(mockCommentRepository)
		service := newTestService(reactionRepo, postRepo, commentRepo)

		postRepo.On("GetByID", ctx, postID).Return(&posts.Post{ID: postID, AuthorID: authorID}, nil)
		commentRepo.On("GetByID", ctx, commentID).Return(&comments.Comment{ID: commentID, PostID: postID, AuthorID: authorID}, nil)
		reactionRepo.On("ExistsForComment", ctx, commentID, callerID).Return(false, nil)
		reactionRepo.On("Create", ctx, mock.MatchedBy(func(r *Reaction) bool {
			return r.CommentID != nil && *r.CommentID == commentID &&
				r.Type == DefaultType && r.ReactionType == DefaultReactionType
		})).Return(nil)
		commentRepo.On("IncrementLikeAmount", ctx, commentID, 1, (*bool)(nil)).Return(nil)

		err := service.AddToComment(ctx, callerID, postID, commentID)
		require.NoError(t, err)
		reactionRepo.AssertExpectations(t)
		commentRepo.AssertExpectations(t)
	})

	t.Run("duplicate like is a silent no-op", func(t *testing.T) {
		reactionRepo := new(mockReactionRepository)
		postRepo := new(mockPostRepository)
		commentRepo := new(mockCommentRepository)
		service := newTestService(reactionRepo, postRepo, commentRepo)

		postRepo.On("GetByID", ctx, postID).Return(&posts.Post{ID: postID, AuthorID: authorID}, nil)
		commentRepo.On("GetByID", ctx, commentID).Return(&comments.Comment{ID: commentID, PostID: postID, AuthorID: authorID}, nil)
		reactionRepo.On("ExistsForComment", ctx, commentID, callerID).Return(true, nil)

		err := service.AddToComment(ctx, callerID, postID, commentID)
		require.NoError(t, err)

		reactionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		commentRepo.AssertNotCalled(t, "IncrementLikeAmount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("comment under another post is rejected", func(t *testing.T) {
		reactionRepo := new(mockReactionRepository)
		postRepo := new(mockPostRepository)
		commentRepo := new(mockCommentRepository)
		service := newTestService(reactionRepo, postRepo, commentRepo)

		postRepo.On("GetByID", ctx, postID).Return(&posts.Post{ID: postID, AuthorID: authorID}, nil)
		commentRepo.On("GetByID", ctx, commentID).Return(&comments.Comment{ID: commentID, PostID: uuid.New(), AuthorID: authorID}, nil)

		err := service.AddToComment(ctx, callerID, postID, commentID)
		require.ErrorIs(t, err, comments.ErrCommentPostMismatch)
	})

	t.Run("own comment flips the my-like flag", func(t *testing.T) {
		reactionRepo := new(mockReactionRepository)
		postRepo := new(mockPostRepository)
		commentRepo := new(mockCommentRepository)
		service := newTestService(reactionRepo, postRepo, commentRepo)

		postRepo.On("GetByID", ctx, postID).Return(&posts.Post{ID: postID, AuthorID: authorID}, nil)
		commentRepo.On("GetByID", ctx, commentID).Return(&comments.Comment{ID: commentID, PostID: postID, AuthorID: callerID}, nil)
		reactionRepo.On("ExistsForComment", ctx, commentID, callerID).Return(false, nil)
		reactionRepo.On("Create", ctx, mock.AnythingOfType("*reactions.Reaction")).Return(nil)
		commentRepo.On("IncrementLikeAmount", ctx, commentID, 1, mock.MatchedBy(func(flag *bool) bool {
			return flag != nil && *flag
		})).Return(nil)

		err := service.AddToComment(ctx, callerID, postID, commentID)
		require.NoError(t, err)
		commentRepo.AssertExpectations(t)
	})
}

func TestReactionService_RemoveFromComment(t *testing.T) {
	ctx := context.Background()
	callerID := uuid.New()
	authorID := uuid.New()
	postID := uuid.New()
	commentID := uuid.New()

	t.Run("removes like and decrements", func(t *testing.T) {
		reactionRepo := new(mockReactionRepository)
		postRepo := new(mockPostRepository)
		commentRepo := new(mockCommentRepository)
		service := newTestService(reactionRepo, postRepo, commentRepo)

		postRepo.On("GetByID", ctx, postID).Return(&posts.Post{ID: postID, AuthorID: authorID}, nil)
		commentRepo.On("GetByID", ctx, commentID).Return(&comments.Comment{ID: commentID, PostID: postID, AuthorID: authorID, LikeAmount: 4}, nil)
		commentRepo.On("IncrementLikeAmount", ctx, commentID, -1, (*bool)(nil)).Return(nil)
		reactionRepo.On("DeleteForComment", ctx, commentID, callerID).Return(nil)

		err := service.RemoveFromComment(ctx, callerID, postID, commentID)
		require.NoError(t, err)
		reactionRepo.AssertExpectations(t)
	})

	t.Run("zero counter refuses removal", func(t *testing.T) {
		reactionRepo := new(mockReactionRepository)
		postRepo := new(mockPostRepository)
		commentRepo := new(mockCommentRepository)
		service := newTestService(reactionRepo, postRepo, commentRepo)

		postRepo.On("GetByID", ctx, postID).Return(&posts.Post{ID: postID, AuthorID: authorID}, nil)
		commentRepo.On("GetByID", ctx, commentID).Return(&comments.Comment{ID: commentID, PostID: postID, AuthorID: authorID, LikeAmount: 0}, nil)

		err := service.RemoveFromComment(ctx, callerID, postID, commentID)
		require.ErrorIs(t, err, ErrNoLikesToRemove)
		assert.True(t, IsConflict(err))
		reactionRepo.AssertNotCalled(t, "DeleteForComment", mock.Anything, mock.Anything, mock.Anything)
	})
}
