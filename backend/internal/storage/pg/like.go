package pg

import (
	"context"
	"fmt"

	"github.com/forumapi/forum-api/shared/domain"
	internal_errors "github.com/forumapi/forum-api/shared/errors"
	shared_pg "github.com/forumapi/forum-api/shared/storage/pg"
	"github.com/forumapi/forum-api/shared/utils"
)

// AddLike inserts the (comment, owner) pair. A concurrent insert of the same
// pair surfaces as ErrDuplicateLike via the unique constraint.
func (s *Storage) AddLike(ctx context.Context, commentId domain.CommentId, owner domain.UserId) error {
	id := utils.NewId(domain.LikeIdPrefix, s.newId)

	_, err := s.db.ExecContext(ctx, `
        INSERT INTO comment_likes (id, comment_id, owner, date)
        VALUES ($1, $2, $3, $4)
    `, id, commentId, owner, s.now())
	if err != nil {
		if shared_pg.IsUniqueViolation(err) {
			return fmt.Errorf("failed to insert like: %w", internal_errors.ErrDuplicateLike)
		}
		return fmt.Errorf("failed to insert like: %w", err)
	}
	return nil
}

func (s *Storage) DeleteLike(ctx context.Context, commentId domain.CommentId, owner domain.UserId) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM comment_likes WHERE comment_id = $1 AND owner = $2", commentId, owner); err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	return nil
}

func (s *Storage) VerifyLikeExists(ctx context.Context, commentId domain.CommentId, owner domain.UserId) (bool, error) {
	found, err := s.exists(ctx, s.db, "SELECT EXISTS(SELECT 1 FROM comment_likes WHERE comment_id = $1 AND owner = $2)", commentId, owner)
	if err != nil {
		return false, fmt.Errorf("failed to verify like: %w", err)
	}
	return found, nil
}

// GetLikeCountsByThreadId omits comments without likes.
func (s *Storage) GetLikeCountsByThreadId(ctx context.Context, threadId domain.ThreadId) (domain.LikeCounts, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT cl.comment_id, COUNT(*)
        FROM comment_likes cl
        INNER JOIN comments c ON c.id = cl.comment_id
        WHERE c.thread_id = $1
        GROUP BY cl.comment_id
    `, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to count thread likes: %w", err)
	}
	defer rows.Close()

	counts := domain.LikeCounts{}
	for rows.Next() {
		var commentId domain.CommentId
		var count int
		if err := rows.Scan(&commentId, &count); err != nil {
			return nil, fmt.Errorf("failed to scan like count: %w", err)
		}
		counts[commentId] = count
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return counts, nil
}
