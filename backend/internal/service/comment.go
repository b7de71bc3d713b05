package service

import (
	"context"

	"github.com/forumapi/forum-api/shared/domain"
	"github.com/forumapi/forum-api/shared/logger"
)

type CommentService interface {
	Create(ctx context.Context, payload domain.Payload, threadId domain.ThreadId, owner domain.UserId) (domain.RegisteredComment, error)
	Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error
}

type Comment struct {
	threads  ThreadRepository
	comments CommentRepository
}

func NewComment(threads ThreadRepository, comments CommentRepository) *Comment {
	return &Comment{threads: threads, comments: comments}
}

func (s *Comment) Create(ctx context.Context, payload domain.Payload, threadId domain.ThreadId, owner domain.UserId) (domain.RegisteredComment, error) {
	if err := verify(ctx, threadExists(s.threads, threadId)); err != nil {
		return domain.RegisteredComment{}, err
	}

	registerComment, err := domain.NewRegisterComment(payload)
	if err != nil {
		return domain.RegisteredComment{}, err
	}

	comment, err := s.comments.AddComment(ctx, registerComment, threadId, owner)
	if err != nil {
		return domain.RegisteredComment{}, err
	}
	logger.Log.Info("comment added", "comment_id", comment.Id, "thread_id", threadId, "owner", owner)
	return comment, nil
}

// Delete soft-deletes a comment owned by owner.
func (s *Comment) Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error {
	err := verify(ctx,
		threadExists(s.threads, threadId),
		commentExists(s.comments, commentId),
		commentOwner(s.comments, commentId, owner),
	)
	if err != nil {
		return err
	}

	if err := s.comments.DeleteComment(ctx, commentId); err != nil {
		return err
	}
	logger.Log.Info("comment deleted", "comment_id", commentId, "thread_id", threadId, "owner", owner)
	return nil
}
