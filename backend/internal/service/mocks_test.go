package service

import (
	"context"
	"sync"

	"github.com/forumapi/forum-api/shared/domain"
)

// --- Call tracking ---

// callRecorder keeps the order of repository calls across several mocks,
// which is what verification chain tests assert on.
type callRecorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *callRecorder) record(name string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, name)
}

func (r *callRecorder) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

// --- Mocks ---

// MockThreadRepository mocks the ThreadRepository interface.
type MockThreadRepository struct {
	rec *callRecorder

	addThreadFunc          func(ctx context.Context, thread domain.RegisterThread, owner domain.UserId) (domain.RegisteredThread, error)
	getThreadByIdFunc      func(ctx context.Context, id domain.ThreadId) (domain.ThreadRecord, error)
	verifyThreadExistsFunc func(ctx context.Context, id domain.ThreadId) error
	verifyThreadOwnerFunc  func(ctx context.Context, id domain.ThreadId, owner domain.UserId) error
	deleteThreadFunc       func(ctx context.Context, id domain.ThreadId) error
}

func (m *MockThreadRepository) AddThread(ctx context.Context, thread domain.RegisterThread, owner domain.UserId) (domain.RegisteredThread, error) {
	m.rec.record("AddThread")
	if m.addThreadFunc != nil {
		return m.addThreadFunc(ctx, thread, owner)
	}
	return domain.RegisteredThread{Id: "thread-123", Title: thread.Title, Owner: owner}, nil
}

func (m *MockThreadRepository) GetThreadById(ctx context.Context, id domain.ThreadId) (domain.ThreadRecord, error) {
	m.rec.record("GetThreadById")
	if m.getThreadByIdFunc != nil {
		return m.getThreadByIdFunc(ctx, id)
	}
	return domain.ThreadRecord{Id: id}, nil
}

func (m *MockThreadRepository) VerifyThreadExists(ctx context.Context, id domain.ThreadId) error {
	m.rec.record("VerifyThreadExists")
	if m.verifyThreadExistsFunc != nil {
		return m.verifyThreadExistsFunc(ctx, id)
	}
	return nil
}

func (m *MockThreadRepository) VerifyThreadOwner(ctx context.Context, id domain.ThreadId, owner domain.UserId) error {
	m.rec.record("VerifyThreadOwner")
	if m.verifyThreadOwnerFunc != nil {
		return m.verifyThreadOwnerFunc(ctx, id, owner)
	}
	return nil
}

func (m *MockThreadRepository) DeleteThread(ctx context.Context, id domain.ThreadId) error {
	m.rec.record("DeleteThread")
	if m.deleteThreadFunc != nil {
		return m.deleteThreadFunc(ctx, id)
	}
	return nil
}

// MockCommentRepository mocks the CommentRepository interface.
type MockCommentRepository struct {
	rec *callRecorder

	addCommentFunc            func(ctx context.Context, comment domain.RegisterComment, threadId domain.ThreadId, owner domain.UserId) (domain.RegisteredComment, error)
	getCommentsByThreadIdFunc func(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentRecord, error)
	deleteCommentFunc         func(ctx context.Context, id domain.CommentId) error
	verifyCommentExistsFunc   func(ctx context.Context, id domain.CommentId) error
	verifyCommentOwnerFunc    func(ctx context.Context, id domain.CommentId, owner domain.UserId) error
}

func (m *MockCommentRepository) AddComment(ctx context.Context, comment domain.RegisterComment, threadId domain.ThreadId, owner domain.UserId) (domain.RegisteredComment, error) {
	m.rec.record("AddComment")
	if m.addCommentFunc != nil {
		return m.addCommentFunc(ctx, comment, threadId, owner)
	}
	return domain.RegisteredComment{Id: "comment-123", Content: comment.Content, Owner: owner}, nil
}

func (m *MockCommentRepository) GetCommentsByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentRecord, error) {
	m.rec.record("GetCommentsByThreadId")
	if m.getCommentsByThreadIdFunc != nil {
		return m.getCommentsByThreadIdFunc(ctx, threadId)
	}
	return nil, nil
}

func (m *MockCommentRepository) DeleteComment(ctx context.Context, id domain.CommentId) error {
	m.rec.record("DeleteComment")
	if m.deleteCommentFunc != nil {
		return m.deleteCommentFunc(ctx, id)
	}
	return nil
}

func (m *MockCommentRepository) VerifyCommentExists(ctx context.Context, id domain.CommentId) error {
	m.rec.record("VerifyCommentExists")
	if m.verifyCommentExistsFunc != nil {
		return m.verifyCommentExistsFunc(ctx, id)
	}
	return nil
}

func (m *MockCommentRepository) VerifyCommentOwner(ctx context.Context, id domain.CommentId, owner domain.UserId) error {
	m.rec.record("VerifyCommentOwner")
	if m.verifyCommentOwnerFunc != nil {
		return m.verifyCommentOwnerFunc(ctx, id, owner)
	}
	return nil
}

// MockReplyRepository mocks the ReplyRepository interface.
type MockReplyRepository struct {
	rec *callRecorder

	addReplyFunc               func(ctx context.Context, reply domain.RegisterReply, commentId domain.CommentId, owner domain.UserId) (domain.RegisteredReply, error)
	getRepliesByCommentIdFunc  func(ctx context.Context, commentId domain.CommentId) ([]domain.ReplyRecord, error)
	getRepliesByCommentIdsFunc func(ctx context.Context, commentIds []domain.CommentId) (map[domain.CommentId][]domain.ReplyRecord, error)
	deleteReplyFunc            func(ctx context.Context, id domain.ReplyId) error
	verifyReplyExistsFunc      func(ctx context.Context, id domain.ReplyId) error
	verifyReplyOwnerFunc       func(ctx context.Context, id domain.ReplyId, owner domain.UserId) error
}

func (m *MockReplyRepository) AddReply(ctx context.Context, reply domain.RegisterReply, commentId domain.CommentId, owner domain.UserId) (domain.RegisteredReply, error) {
	m.rec.record("AddReply")
	if m.addReplyFunc != nil {
		return m.addReplyFunc(ctx, reply, commentId, owner)
	}
	return domain.RegisteredReply{Id: "reply-123", Content: reply.Content, Owner: owner}, nil
}

func (m *MockReplyRepository) GetRepliesByCommentId(ctx context.Context, commentId domain.CommentId) ([]domain.ReplyRecord, error) {
	m.rec.record("GetRepliesByCommentId")
	if m.getRepliesByCommentIdFunc != nil {
		return m.getRepliesByCommentIdFunc(ctx, commentId)
	}
	return nil, nil
}

func (m *MockReplyRepository) GetRepliesByCommentIds(ctx context.Context, commentIds []domain.CommentId) (map[domain.CommentId][]domain.ReplyRecord, error) {
	m.rec.record("GetRepliesByCommentIds")
	if m.getRepliesByCommentIdsFunc != nil {
		return m.getRepliesByCommentIdsFunc(ctx, commentIds)
	}
	return map[domain.CommentId][]domain.ReplyRecord{}, nil
}

func (m *MockReplyRepository) DeleteReply(ctx context.Context, id domain.ReplyId) error {
	m.rec.record("DeleteReply")
	if m.deleteReplyFunc != nil {
		return m.deleteReplyFunc(ctx, id)
	}
	return nil
}

func (m *MockReplyRepository) VerifyReplyExists(ctx context.Context, id domain.ReplyId) error {
	m.rec.record("VerifyReplyExists")
	if m.verifyReplyExistsFunc != nil {
		return m.verifyReplyExistsFunc(ctx, id)
	}
	return nil
}

func (m *MockReplyRepository) VerifyReplyOwner(ctx context.Context, id domain.ReplyId, owner domain.UserId) error {
	m.rec.record("VerifyReplyOwner")
	if m.verifyReplyOwnerFunc != nil {
		return m.verifyReplyOwnerFunc(ctx, id, owner)
	}
	return nil
}

// MockCommentLikeRepository mocks the CommentLikeRepository interface.
type MockCommentLikeRepository struct {
	rec *callRecorder

	addLikeFunc                 func(ctx context.Context, commentId domain.CommentId, owner domain.UserId) error
	deleteLikeFunc              func(ctx context.Context, commentId domain.CommentId, owner domain.UserId) error
	verifyLikeExistsFunc        func(ctx context.Context, commentId domain.CommentId, owner domain.UserId) (bool, error)
	getLikeCountsByThreadIdFunc func(ctx context.Context, threadId domain.ThreadId) (domain.LikeCounts, error)
}

func (m *MockCommentLikeRepository) AddLike(ctx context.Context, commentId domain.CommentId, owner domain.UserId) error {
	m.rec.record("AddLike")
	if m.addLikeFunc != nil {
		return m.addLikeFunc(ctx, commentId, owner)
	}
	return nil
}

func (m *MockCommentLikeRepository) DeleteLike(ctx context.Context, commentId domain.CommentId, owner domain.UserId) error {
	m.rec.record("DeleteLike")
	if m.deleteLikeFunc != nil {
		return m.deleteLikeFunc(ctx, commentId, owner)
	}
	return nil
}

func (m *MockCommentLikeRepository) VerifyLikeExists(ctx context.Context, commentId domain.CommentId, owner domain.UserId) (bool, error) {
	m.rec.record("VerifyLikeExists")
	if m.verifyLikeExistsFunc != nil {
		return m.verifyLikeExistsFunc(ctx, commentId, owner)
	}
	return false, nil
}

func (m *MockCommentLikeRepository) GetLikeCountsByThreadId(ctx context.Context, threadId domain.ThreadId) (domain.LikeCounts, error) {
	m.rec.record("GetLikeCountsByThreadId")
	if m.getLikeCountsByThreadIdFunc != nil {
		return m.getLikeCountsByThreadIdFunc(ctx, threadId)
	}
	return domain.LikeCounts{}, nil
}
