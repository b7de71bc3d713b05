package service

import (
	"context"

	"github.com/forumapi/forum-api/shared/domain"
)

// guard is one step of a verification chain: it either passes or fails.
type guard func(ctx context.Context) error

// verify runs guards in order and stops at the first failure.
// Chains are always written ancestor first (thread, comment, reply) and end
// with the ownership check, so a missing resource reports NotFound before any
// Authorization error can be produced.
func verify(ctx context.Context, guards ...guard) error {
	for _, g := range guards {
		if err := g(ctx); err != nil {
			return err
		}
	}
	return nil
}

func threadExists(repo ThreadRepository, id domain.ThreadId) guard {
	return func(ctx context.Context) error {
		return repo.VerifyThreadExists(ctx, id)
	}
}

func threadOwner(repo ThreadRepository, id domain.ThreadId, owner domain.UserId) guard {
	return func(ctx context.Context) error {
		return repo.VerifyThreadOwner(ctx, id, owner)
	}
}

func commentExists(repo CommentRepository, id domain.CommentId) guard {
	return func(ctx context.Context) error {
		return repo.VerifyCommentExists(ctx, id)
	}
}

func commentOwner(repo CommentRepository, id domain.CommentId, owner domain.UserId) guard {
	return func(ctx context.Context) error {
		return repo.VerifyCommentOwner(ctx, id, owner)
	}
}

func replyExists(repo ReplyRepository, id domain.ReplyId) guard {
	return func(ctx context.Context) error {
		return repo.VerifyReplyExists(ctx, id)
	}
}

func replyOwner(repo ReplyRepository, id domain.ReplyId, owner domain.UserId) guard {
	return func(ctx context.Context) error {
		return repo.VerifyReplyOwner(ctx, id, owner)
	}
}
