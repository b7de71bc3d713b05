package service

import (
	"context"

	"github.com/forumapi/forum-api/shared/domain"
	"github.com/forumapi/forum-api/shared/errors"
)

// Repository contracts consumed by the use cases. Storage adapters either
// return records or fail with *errors.NotFoundError / *errors.AuthorizationError.

type ThreadRepository interface {
	AddThread(ctx context.Context, thread domain.RegisterThread, owner domain.UserId) (domain.RegisteredThread, error)
	GetThreadById(ctx context.Context, id domain.ThreadId) (domain.ThreadRecord, error)
	VerifyThreadExists(ctx context.Context, id domain.ThreadId) error
	VerifyThreadOwner(ctx context.Context, id domain.ThreadId, owner domain.UserId) error
	DeleteThread(ctx context.Context, id domain.ThreadId) error
}

type CommentRepository interface {
	AddComment(ctx context.Context, comment domain.RegisterComment, threadId domain.ThreadId, owner domain.UserId) (domain.RegisteredComment, error)
	// GetCommentsByThreadId returns comments ordered by date ascending.
	GetCommentsByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentRecord, error)
	DeleteComment(ctx context.Context, id domain.CommentId) error
	VerifyCommentExists(ctx context.Context, id domain.CommentId) error
	VerifyCommentOwner(ctx context.Context, id domain.CommentId, owner domain.UserId) error
}

type ReplyRepository interface {
	// AddReply stores the reply under the thread of commentId and fails
	// NotFound when the comment does not exist.
	AddReply(ctx context.Context, reply domain.RegisterReply, commentId domain.CommentId, owner domain.UserId) (domain.RegisteredReply, error)
	// GetRepliesByCommentId returns replies ordered by date ascending.
	GetRepliesByCommentId(ctx context.Context, commentId domain.CommentId) ([]domain.ReplyRecord, error)
	// GetRepliesByCommentIds fetches replies of several comments in one call.
	// Each list is ordered by date ascending; comments without replies are absent.
	GetRepliesByCommentIds(ctx context.Context, commentIds []domain.CommentId) (map[domain.CommentId][]domain.ReplyRecord, error)
	DeleteReply(ctx context.Context, id domain.ReplyId) error
	VerifyReplyExists(ctx context.Context, id domain.ReplyId) error
	VerifyReplyOwner(ctx context.Context, id domain.ReplyId, owner domain.UserId) error
}

type CommentLikeRepository interface {
	// AddLike returns errors.ErrDuplicateLike when the pair is already liked.
	AddLike(ctx context.Context, commentId domain.CommentId, owner domain.UserId) error
	DeleteLike(ctx context.Context, commentId domain.CommentId, owner domain.UserId) error
	VerifyLikeExists(ctx context.Context, commentId domain.CommentId, owner domain.UserId) (bool, error)
	GetLikeCountsByThreadId(ctx context.Context, threadId domain.ThreadId) (domain.LikeCounts, error)
}

// Unimplemented* types can be embedded by partial adapters. Every method they
// provide fails with CONTRACT.METHOD_NOT_IMPLEMENTED.

type UnimplementedThreadRepository struct{}

var _ ThreadRepository = UnimplementedThreadRepository{}

func (UnimplementedThreadRepository) AddThread(context.Context, domain.RegisterThread, domain.UserId) (domain.RegisteredThread, error) {
	return domain.RegisteredThread{}, errors.NotImplemented("THREAD_REPOSITORY")
}

func (UnimplementedThreadRepository) GetThreadById(context.Context, domain.ThreadId) (domain.ThreadRecord, error) {
	return domain.ThreadRecord{}, errors.NotImplemented("THREAD_REPOSITORY")
}

func (UnimplementedThreadRepository) VerifyThreadExists(context.Context, domain.ThreadId) error {
	return errors.NotImplemented("THREAD_REPOSITORY")
}

func (UnimplementedThreadRepository) VerifyThreadOwner(context.Context, domain.ThreadId, domain.UserId) error {
	return errors.NotImplemented("THREAD_REPOSITORY")
}

func (UnimplementedThreadRepository) DeleteThread(context.Context, domain.ThreadId) error {
	return errors.NotImplemented("THREAD_REPOSITORY")
}

type UnimplementedCommentRepository struct{}

var _ CommentRepository = UnimplementedCommentRepository{}

func (UnimplementedCommentRepository) AddComment(context.Context, domain.RegisterComment, domain.ThreadId, domain.UserId) (domain.RegisteredComment, error) {
	return domain.RegisteredComment{}, errors.NotImplemented("COMMENT_REPOSITORY")
}

func (UnimplementedCommentRepository) GetCommentsByThreadId(context.Context, domain.ThreadId) ([]domain.CommentRecord, error) {
	return nil, errors.NotImplemented("COMMENT_REPOSITORY")
}

func (UnimplementedCommentRepository) DeleteComment(context.Context, domain.CommentId) error {
	return errors.NotImplemented("COMMENT_REPOSITORY")
}

func (UnimplementedCommentRepository) VerifyCommentExists(context.Context, domain.CommentId) error {
	return errors.NotImplemented("COMMENT_REPOSITORY")
}

func (UnimplementedCommentRepository) VerifyCommentOwner(context.Context, domain.CommentId, domain.UserId) error {
	return errors.NotImplemented("COMMENT_REPOSITORY")
}

type UnimplementedReplyRepository struct{}

var _ ReplyRepository = UnimplementedReplyRepository{}

func (UnimplementedReplyRepository) AddReply(context.Context, domain.RegisterReply, domain.CommentId, domain.UserId) (domain.RegisteredReply, error) {
	return domain.RegisteredReply{}, errors.NotImplemented("REPLY_REPOSITORY")
}

func (UnimplementedReplyRepository) GetRepliesByCommentId(context.Context, domain.CommentId) ([]domain.ReplyRecord, error) {
	return nil, errors.NotImplemented("REPLY_REPOSITORY")
}

func (UnimplementedReplyRepository) GetRepliesByCommentIds(context.Context, []domain.CommentId) (map[domain.CommentId][]domain.ReplyRecord, error) {
	return nil, errors.NotImplemented("REPLY_REPOSITORY")
}

func (UnimplementedReplyRepository) DeleteReply(context.Context, domain.ReplyId) error {
	return errors.NotImplemented("REPLY_REPOSITORY")
}

func (UnimplementedReplyRepository) VerifyReplyExists(context.Context, domain.ReplyId) error {
	return errors.NotImplemented("REPLY_REPOSITORY")
}

func (UnimplementedReplyRepository) VerifyReplyOwner(context.Context, domain.ReplyId, domain.UserId) error {
	return errors.NotImplemented("REPLY_REPOSITORY")
}

type UnimplementedCommentLikeRepository struct{}

var _ CommentLikeRepository = UnimplementedCommentLikeRepository{}

func (UnimplementedCommentLikeRepository) AddLike(context.Context, domain.CommentId, domain.UserId) error {
	return errors.NotImplemented("COMMENT_LIKE_REPOSITORY")
}

func (UnimplementedCommentLikeRepository) DeleteLike(context.Context, domain.CommentId, domain.UserId) error {
	return errors.NotImplemented("COMMENT_LIKE_REPOSITORY")
}

func (UnimplementedCommentLikeRepository) VerifyLikeExists(context.Context, domain.CommentId, domain.UserId) (bool, error) {
	return false, errors.NotImplemented("COMMENT_LIKE_REPOSITORY")
}

func (UnimplementedCommentLikeRepository) GetLikeCountsByThreadId(context.Context, domain.ThreadId) (domain.LikeCounts, error) {
	return nil, errors.NotImplemented("COMMENT_LIKE_REPOSITORY")
}
