package pg

import (
	"context"
	"fmt"

	"github.com/forumapi/forum-api/shared/domain"
	internal_errors "github.com/forumapi/forum-api/shared/errors"
	"github.com/forumapi/forum-api/shared/utils"
)

const commentNotFound = "komentar tidak ditemukan"

func (s *Storage) AddComment(ctx context.Context, comment domain.RegisterComment, threadId domain.ThreadId, owner domain.UserId) (domain.RegisteredComment, error) {
	id := utils.NewId(domain.CommentIdPrefix, s.newId)

	var added domain.RegisteredComment
	err := s.db.QueryRowContext(ctx, `
        INSERT INTO comments (id, thread_id, owner, content, date)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, content, owner
    `, id, threadId, owner, comment.Content, s.now()).Scan(&added.Id, &added.Content, &added.Owner)
	if err != nil {
		return domain.RegisteredComment{}, fmt.Errorf("failed to insert comment: %w", err)
	}
	return added, nil
}

func (s *Storage) GetCommentsByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT c.id, COALESCE(u.username, ''), c.date, c.content, c.is_deleted
        FROM comments c
        LEFT JOIN users u ON u.id = c.owner
        WHERE c.thread_id = $1
        ORDER BY c.date ASC, c.id ASC
    `, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}
	defer rows.Close()

	comments := []domain.CommentRecord{}
	for rows.Next() {
		var c domain.CommentRecord
		if err := rows.Scan(&c.Id, &c.Username, &c.Date, &c.Content, &c.IsDeleted); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		c.Date = c.Date.UTC()
		comments = append(comments, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return comments, nil
}

func (s *Storage) DeleteComment(ctx context.Context, id domain.CommentId) error {
	return s.softDelete(ctx, "comments", id, commentNotFound)
}

// VerifyCommentExists looks the comment up globally, not within a thread.
func (s *Storage) VerifyCommentExists(ctx context.Context, id domain.CommentId) error {
	found, err := s.exists(ctx, s.db, "SELECT EXISTS(SELECT 1 FROM comments WHERE id = $1)", id)
	if err != nil {
		return fmt.Errorf("failed to verify comment: %w", err)
	}
	if !found {
		return internal_errors.NewNotFound(commentNotFound)
	}
	return nil
}

func (s *Storage) VerifyCommentOwner(ctx context.Context, id domain.CommentId, owner domain.UserId) error {
	found, err := s.exists(ctx, s.db, "SELECT EXISTS(SELECT 1 FROM comments WHERE id = $1 AND owner = $2)", id, owner)
	if err != nil {
		return fmt.Errorf("failed to verify comment owner: %w", err)
	}
	if !found {
		return internal_errors.NewAuthorization()
	}
	return nil
}
