package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/forumapi/forum-api/shared/config"
	"github.com/forumapi/forum-api/shared/domain"
	mw "github.com/forumapi/forum-api/shared/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockHealthChecker struct {
	PingFunc func(ctx context.Context) error
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

type MockAuthService struct {
	RegisterFunc func(ctx context.Context, data domain.UserCreationData) (domain.User, error)
	LoginFunc    func(ctx context.Context, creds domain.Credentials) (string, error)
}

func (m *MockAuthService) Register(ctx context.Context, data domain.UserCreationData) (domain.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, data)
	}
	return domain.User{Id: "user-123", Username: data.Username, Fullname: data.Fullname}, nil
}

func (m *MockAuthService) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, creds)
	}
	return "token", nil
}

type MockThreadService struct {
	CreateFunc func(ctx context.Context, payload domain.Payload, owner domain.UserId) (domain.RegisteredThread, error)
	GetFunc    func(ctx context.Context, id domain.ThreadId) (domain.ThreadDetail, error)
	DeleteFunc func(ctx context.Context, id domain.ThreadId, owner domain.UserId) error
}

func (m *MockThreadService) Create(ctx context.Context, payload domain.Payload, owner domain.UserId) (domain.RegisteredThread, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, payload, owner)
	}
	return domain.RegisteredThread{}, nil
}

func (m *MockThreadService) Get(ctx context.Context, id domain.ThreadId) (domain.ThreadDetail, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return domain.ThreadDetail{Id: id, Comments: []domain.CommentDetail{}}, nil
}

func (m *MockThreadService) Delete(ctx context.Context, id domain.ThreadId, owner domain.UserId) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, owner)
	}
	return nil
}

type MockCommentService struct {
	CreateFunc func(ctx context.Context, payload domain.Payload, threadId domain.ThreadId, owner domain.UserId) (domain.RegisteredComment, error)
	DeleteFunc func(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error
}

func (m *MockCommentService) Create(ctx context.Context, payload domain.Payload, threadId domain.ThreadId, owner domain.UserId) (domain.RegisteredComment, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, payload, threadId, owner)
	}
	return domain.RegisteredComment{}, nil
}

func (m *MockCommentService) Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, threadId, commentId, owner)
	}
	return nil
}

type MockReplyService struct {
	CreateFunc func(ctx context.Context, payload domain.Payload, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) (domain.RegisteredReply, error)
	DeleteFunc func(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, owner domain.UserId) error
}

func (m *MockReplyService) Create(ctx context.Context, payload domain.Payload, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) (domain.RegisteredReply, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, payload, threadId, commentId, owner)
	}
	return domain.RegisteredReply{}, nil
}

func (m *MockReplyService) Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, owner domain.UserId) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, threadId, commentId, replyId, owner)
	}
	return nil
}

type MockCommentLikeService struct {
	ToggleFunc func(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) (bool, error)
}

func (m *MockCommentLikeService) Toggle(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) (bool, error) {
	if m.ToggleFunc != nil {
		return m.ToggleFunc(ctx, threadId, commentId, owner)
	}
	return true, nil
}

// --- Helpers ---

type testServices struct {
	auth    *MockAuthService
	thread  *MockThreadService
	comment *MockCommentService
	reply   *MockReplyService
	like    *MockCommentLikeService
}

func newTestHandler() (*Handler, *testServices) {
	s := &testServices{
		auth:    &MockAuthService{},
		thread:  &MockThreadService{},
		comment: &MockCommentService{},
		reply:   &MockReplyService{},
		like:    &MockCommentLikeService{},
	}
	h := New(s.auth, s.thread, s.comment, s.reply, s.like, &config.Config{}, &MockHealthChecker{})
	return h, s
}

var testUser = &domain.User{Id: "user-123", Username: "dicoding"}

// serve routes a single request through chi so URL params resolve.
// A non-nil user is placed in the context the way NeedAuth does it.
func serve(method, pattern, target, body string, user *domain.User, handler http.HandlerFunc) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Method(method, pattern, handler)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if user != nil {
		req = req.WithContext(context.WithValue(req.Context(), mw.UserClaimsKey, user))
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

type responseBody struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) responseBody {
	t.Helper()
	var body responseBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), rr.Body.String())
	return body
}
