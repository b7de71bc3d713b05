package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/forumapi/forum-api/shared/domain"
	internal_errors "github.com/forumapi/forum-api/shared/errors"
	"github.com/forumapi/forum-api/shared/utils"
	"github.com/lib/pq"
)

const replyNotFound = "balasan tidak ditemukan"

// AddReply takes thread_id from the parent comment, so the stored thread
// always matches the comment's thread whatever path the request used.
func (s *Storage) AddReply(ctx context.Context, reply domain.RegisterReply, commentId domain.CommentId, owner domain.UserId) (domain.RegisteredReply, error) {
	id := utils.NewId(domain.ReplyIdPrefix, s.newId)

	var added domain.RegisteredReply
	err := s.db.QueryRowContext(ctx, `
        INSERT INTO replies (id, comment_id, thread_id, owner, content, date)
        SELECT $1, c.id, c.thread_id, $3, $4, $5
        FROM comments c
        WHERE c.id = $2
        RETURNING id, content, owner
    `, id, commentId, owner, reply.Content, s.now()).Scan(&added.Id, &added.Content, &added.Owner)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.RegisteredReply{}, internal_errors.NewNotFound(commentNotFound)
	}
	if err != nil {
		return domain.RegisteredReply{}, fmt.Errorf("failed to insert reply: %w", err)
	}
	return added, nil
}

const selectReplies = `
        SELECT r.id, r.comment_id, COALESCE(u.username, ''), r.date, r.content, r.is_deleted
        FROM replies r
        LEFT JOIN users u ON u.id = r.owner
`

func (s *Storage) GetRepliesByCommentId(ctx context.Context, commentId domain.CommentId) ([]domain.ReplyRecord, error) {
	byComment, err := s.queryReplies(ctx, selectReplies+"WHERE r.comment_id = $1 ORDER BY r.date ASC, r.id ASC", commentId)
	if err != nil {
		return nil, err
	}
	replies := byComment[commentId]
	if replies == nil {
		replies = []domain.ReplyRecord{}
	}
	return replies, nil
}

func (s *Storage) GetRepliesByCommentIds(ctx context.Context, commentIds []domain.CommentId) (map[domain.CommentId][]domain.ReplyRecord, error) {
	if len(commentIds) == 0 {
		return map[domain.CommentId][]domain.ReplyRecord{}, nil
	}
	return s.queryReplies(ctx, selectReplies+"WHERE r.comment_id = ANY($1) ORDER BY r.date ASC, r.id ASC", pq.Array(commentIds))
}

// queryReplies groups rows by comment id, keeping the query's order within each group.
func (s *Storage) queryReplies(ctx context.Context, query string, args ...any) (map[domain.CommentId][]domain.ReplyRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch replies: %w", err)
	}
	defer rows.Close()

	replies := make(map[domain.CommentId][]domain.ReplyRecord)
	for rows.Next() {
		var r domain.ReplyRecord
		if err := rows.Scan(&r.Id, &r.CommentId, &r.Username, &r.Date, &r.Content, &r.IsDeleted); err != nil {
			return nil, fmt.Errorf("failed to scan reply: %w", err)
		}
		r.Date = r.Date.UTC()
		replies[r.CommentId] = append(replies[r.CommentId], r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return replies, nil
}

func (s *Storage) DeleteReply(ctx context.Context, id domain.ReplyId) error {
	return s.softDelete(ctx, "replies", id, replyNotFound)
}

func (s *Storage) VerifyReplyExists(ctx context.Context, id domain.ReplyId) error {
	found, err := s.exists(ctx, s.db, "SELECT EXISTS(SELECT 1 FROM replies WHERE id = $1)", id)
	if err != nil {
		return fmt.Errorf("failed to verify reply: %w", err)
	}
	if !found {
		return internal_errors.NewNotFound(replyNotFound)
	}
	return nil
}

func (s *Storage) VerifyReplyOwner(ctx context.Context, id domain.ReplyId, owner domain.UserId) error {
	found, err := s.exists(ctx, s.db, "SELECT EXISTS(SELECT 1 FROM replies WHERE id = $1 AND owner = $2)", id, owner)
	if err != nil {
		return fmt.Errorf("failed to verify reply owner: %w", err)
	}
	if !found {
		return internal_errors.NewAuthorization()
	}
	return nil
}
