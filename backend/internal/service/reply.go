package service

import (
	"context"

	"github.com/forumapi/forum-api/shared/domain"
	"github.com/forumapi/forum-api/shared/logger"
)

type ReplyService interface {
	Create(ctx context.Context, payload domain.Payload, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) (domain.RegisteredReply, error)
	Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, owner domain.UserId) error
}

type Reply struct {
	threads  ThreadRepository
	comments CommentRepository
	replies  ReplyRepository
}

func NewReply(threads ThreadRepository, comments CommentRepository, replies ReplyRepository) *Reply {
	return &Reply{threads: threads, comments: comments, replies: replies}
}

func (s *Reply) Create(ctx context.Context, payload domain.Payload, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) (domain.RegisteredReply, error) {
	err := verify(ctx,
		threadExists(s.threads, threadId),
		commentExists(s.comments, commentId),
	)
	if err != nil {
		return domain.RegisteredReply{}, err
	}

	registerReply, err := domain.NewRegisterReply(payload)
	if err != nil {
		return domain.RegisteredReply{}, err
	}

	reply, err := s.replies.AddReply(ctx, registerReply, commentId, owner)
	if err != nil {
		return domain.RegisteredReply{}, err
	}
	logger.Log.Info("reply added", "reply_id", reply.Id, "comment_id", commentId, "owner", owner)
	return reply, nil
}

func (s *Reply) Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, owner domain.UserId) error {
	err := verify(ctx,
		threadExists(s.threads, threadId),
		commentExists(s.comments, commentId),
		replyExists(s.replies, replyId),
		replyOwner(s.replies, replyId, owner),
	)
	if err != nil {
		return err
	}

	if err := s.replies.DeleteReply(ctx, replyId); err != nil {
		return err
	}
	logger.Log.Info("reply deleted", "reply_id", replyId, "comment_id", commentId, "owner", owner)
	return nil
}
