package service

import (
	"context"

	"github.com/forumapi/forum-api/shared/domain"
	"github.com/forumapi/forum-api/shared/logger"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

type ThreadService interface {
	Create(ctx context.Context, payload domain.Payload, owner domain.UserId) (domain.RegisteredThread, error)
	Get(ctx context.Context, id domain.ThreadId) (domain.ThreadDetail, error)
	Delete(ctx context.Context, id domain.ThreadId, owner domain.UserId) error
}

type Thread struct {
	threads  ThreadRepository
	comments CommentRepository
	replies  ReplyRepository
	likes    CommentLikeRepository
}

func NewThread(threads ThreadRepository, comments CommentRepository, replies ReplyRepository, likes CommentLikeRepository) *Thread {
	return &Thread{
		threads:  threads,
		comments: comments,
		replies:  replies,
		likes:    likes,
	}
}

func (s *Thread) Create(ctx context.Context, payload domain.Payload, owner domain.UserId) (domain.RegisteredThread, error) {
	registerThread, err := domain.NewRegisterThread(payload)
	if err != nil {
		return domain.RegisteredThread{}, err
	}

	thread, err := s.threads.AddThread(ctx, registerThread, owner)
	if err != nil {
		return domain.RegisteredThread{}, err
	}
	logger.Log.Info("thread added", "thread_id", thread.Id, "owner", owner)
	return thread, nil
}

// Get assembles the full thread detail: comments in chronological order, each
// with its like count and chronologically ordered replies. Soft-deleted
// comments and replies stay in place with their content redacted.
func (s *Thread) Get(ctx context.Context, id domain.ThreadId) (domain.ThreadDetail, error) {
	thread, err := s.threads.GetThreadById(ctx, id)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	// comments and like counts do not depend on each other
	var (
		comments   []domain.CommentRecord
		likeCounts domain.LikeCounts
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		comments, err = s.comments.GetCommentsByThreadId(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		likeCounts, err = s.likes.GetLikeCountsByThreadId(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.ThreadDetail{}, err
	}

	var replies map[domain.CommentId][]domain.ReplyRecord
	if len(comments) > 0 {
		commentIds := lo.Map(comments, func(c domain.CommentRecord, _ int) domain.CommentId {
			return c.Id
		})
		replies, err = s.replies.GetRepliesByCommentIds(ctx, commentIds)
		if err != nil {
			return domain.ThreadDetail{}, err
		}
	}

	details := lo.Map(comments, func(c domain.CommentRecord, _ int) domain.CommentDetail {
		views := lo.Map(replies[c.Id], func(r domain.ReplyRecord, _ int) domain.ReplyView {
			return domain.NewReplyView(r)
		})
		return domain.NewCommentDetail(c, likeCounts[c.Id], views)
	})

	logger.Log.Debug("thread detail assembled", "thread_id", id, "comments", len(details))
	return domain.NewThreadDetail(thread, details), nil
}

func (s *Thread) Delete(ctx context.Context, id domain.ThreadId, owner domain.UserId) error {
	err := verify(ctx,
		threadExists(s.threads, id),
		threadOwner(s.threads, id, owner),
	)
	if err != nil {
		return err
	}

	if err := s.threads.DeleteThread(ctx, id); err != nil {
		return err
	}
	logger.Log.Info("thread deleted", "thread_id", id, "owner", owner)
	return nil
}
