package service

import (
	"context"
	"testing"

	"github.com/forumapi/forum-api/shared/domain"
	internal_errors "github.com/forumapi/forum-api/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		deps := newThreadDeps()
		deps.comments.addCommentFunc = func(ctx context.Context, comment domain.RegisterComment, threadId domain.ThreadId, owner domain.UserId) (domain.RegisteredComment, error) {
			assert.Equal(t, "sebuah comment", comment.Content)
			assert.Equal(t, "thread-123", threadId)
			assert.Equal(t, "user-123", owner)
			return domain.RegisteredComment{Id: "comment-123", Content: comment.Content, Owner: owner}, nil
		}
		service := NewComment(deps.threads, deps.comments)

		added, err := service.Create(ctx, domain.Payload{"content": "sebuah comment"}, "thread-123", "user-123")

		require.NoError(t, err)
		assert.Equal(t, domain.RegisteredComment{Id: "comment-123", Content: "sebuah comment", Owner: "user-123"}, added)
		assert.Equal(t, []string{"VerifyThreadExists", "AddComment"}, deps.rec.Calls())
	})

	t.Run("Thread not found", func(t *testing.T) {
		deps := newThreadDeps()
		deps.threads.verifyThreadExistsFunc = func(context.Context, domain.ThreadId) error {
			return internal_errors.NewNotFound("thread tidak ditemukan")
		}
		service := NewComment(deps.threads, deps.comments)

		_, err := service.Create(ctx, domain.Payload{"content": "sebuah comment"}, "thread-xxx", "user-123")

		assert.True(t, internal_errors.IsNotFound(err))
		assert.Equal(t, []string{"VerifyThreadExists"}, deps.rec.Calls())
	})

	t.Run("Invalid payload", func(t *testing.T) {
		deps := newThreadDeps()
		service := NewComment(deps.threads, deps.comments)

		_, err := service.Create(ctx, domain.Payload{"content": 123.0}, "thread-123", "user-123")

		assert.EqualError(t, err, "REGISTER_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION")
		assert.NotContains(t, deps.rec.Calls(), "AddComment")
	})
}

func TestCommentDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success runs the full chain in order", func(t *testing.T) {
		deps := newThreadDeps()
		deps.comments.verifyCommentOwnerFunc = func(ctx context.Context, id domain.CommentId, owner domain.UserId) error {
			assert.Equal(t, "comment-123", id)
			assert.Equal(t, "user-123", owner)
			return nil
		}
		service := NewComment(deps.threads, deps.comments)

		err := service.Delete(ctx, "thread-123", "comment-123", "user-123")

		require.NoError(t, err)
		assert.Equal(t, []string{
			"VerifyThreadExists",
			"VerifyCommentExists",
			"VerifyCommentOwner",
			"DeleteComment",
		}, deps.rec.Calls())
	})

	t.Run("Missing comment fails before ownership check", func(t *testing.T) {
		deps := newThreadDeps()
		deps.comments.verifyCommentExistsFunc = func(context.Context, domain.CommentId) error {
			return internal_errors.NewNotFound("komentar tidak ditemukan")
		}
		deps.comments.verifyCommentOwnerFunc = func(context.Context, domain.CommentId, domain.UserId) error {
			return internal_errors.NewAuthorization()
		}
		service := NewComment(deps.threads, deps.comments)

		err := service.Delete(ctx, "thread-123", "comment-xxx", "user-456")

		assert.True(t, internal_errors.IsNotFound(err))
		assert.Equal(t, []string{"VerifyThreadExists", "VerifyCommentExists"}, deps.rec.Calls())
	})

	t.Run("Missing thread fails first", func(t *testing.T) {
		deps := newThreadDeps()
		deps.threads.verifyThreadExistsFunc = func(context.Context, domain.ThreadId) error {
			return internal_errors.NewNotFound("thread tidak ditemukan")
		}
		service := NewComment(deps.threads, deps.comments)

		err := service.Delete(ctx, "thread-xxx", "comment-123", "user-123")

		assert.EqualError(t, err, "thread tidak ditemukan")
		assert.Equal(t, []string{"VerifyThreadExists"}, deps.rec.Calls())
	})

	t.Run("Other owner is rejected", func(t *testing.T) {
		deps := newThreadDeps()
		deps.comments.verifyCommentOwnerFunc = func(context.Context, domain.CommentId, domain.UserId) error {
			return internal_errors.NewAuthorization()
		}
		service := NewComment(deps.threads, deps.comments)

		err := service.Delete(ctx, "thread-123", "comment-123", "user-456")

		assert.True(t, internal_errors.IsAuthorization(err))
		assert.NotContains(t, deps.rec.Calls(), "DeleteComment")
	})
}
