package service

import (
	"context"
	"errors"

	"github.com/forumapi/forum-api/shared/domain"
	internal_errors "github.com/forumapi/forum-api/shared/errors"
	"github.com/forumapi/forum-api/shared/logger"
)

type CommentLikeService interface {
	// Toggle likes the comment if owner has not liked it yet, otherwise
	// removes the like. It reports whether the comment is liked afterwards.
	Toggle(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) (bool, error)
}

type CommentLike struct {
	threads  ThreadRepository
	comments CommentRepository
	likes    CommentLikeRepository
}

func NewCommentLike(threads ThreadRepository, comments CommentRepository, likes CommentLikeRepository) *CommentLike {
	return &CommentLike{threads: threads, comments: comments, likes: likes}
}

// Toggle is check-then-act and not atomic. Two concurrent toggles may both
// see "not liked"; the storage uniqueness constraint rejects the second
// insert and that rejection is treated as success.
func (s *CommentLike) Toggle(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) (bool, error) {
	err := verify(ctx,
		threadExists(s.threads, threadId),
		commentExists(s.comments, commentId),
	)
	if err != nil {
		return false, err
	}

	liked, err := s.likes.VerifyLikeExists(ctx, commentId, owner)
	if err != nil {
		return false, err
	}

	if liked {
		if err := s.likes.DeleteLike(ctx, commentId, owner); err != nil {
			return false, err
		}
		logger.Log.Info("comment unliked", "comment_id", commentId, "owner", owner)
		return false, nil
	}

	if err := s.likes.AddLike(ctx, commentId, owner); err != nil {
		if !errors.Is(err, internal_errors.ErrDuplicateLike) {
			return false, err
		}
		logger.Log.Debug("concurrent like resolved by uniqueness constraint", "comment_id", commentId, "owner", owner)
	}
	logger.Log.Info("comment liked", "comment_id", commentId, "owner", owner)
	return true, nil
}
