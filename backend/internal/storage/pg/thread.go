package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/forumapi/forum-api/shared/domain"
	internal_errors "github.com/forumapi/forum-api/shared/errors"
	"github.com/forumapi/forum-api/shared/utils"
)

const threadNotFound = "thread tidak ditemukan"

func (s *Storage) AddThread(ctx context.Context, thread domain.RegisterThread, owner domain.UserId) (domain.RegisteredThread, error) {
	id := utils.NewId(domain.ThreadIdPrefix, s.newId)

	var added domain.RegisteredThread
	err := s.db.QueryRowContext(ctx, `
        INSERT INTO threads (id, title, body, owner, date)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, title, owner
    `, id, thread.Title, thread.Body, owner, s.now()).Scan(&added.Id, &added.Title, &added.Owner)
	if err != nil {
		return domain.RegisteredThread{}, fmt.Errorf("failed to insert thread: %w", err)
	}
	return added, nil
}

func (s *Storage) GetThreadById(ctx context.Context, id domain.ThreadId) (domain.ThreadRecord, error) {
	var thread domain.ThreadRecord
	err := s.db.QueryRowContext(ctx, `
        SELECT t.id, t.title, t.body, t.date, COALESCE(u.username, '')
        FROM threads t
        LEFT JOIN users u ON u.id = t.owner
        WHERE t.id = $1
    `, id).Scan(&thread.Id, &thread.Title, &thread.Body, &thread.Date, &thread.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ThreadRecord{}, internal_errors.NewNotFound(threadNotFound)
		}
		return domain.ThreadRecord{}, fmt.Errorf("failed to fetch thread: %w", err)
	}
	thread.Date = thread.Date.UTC()
	return thread, nil
}

func (s *Storage) VerifyThreadExists(ctx context.Context, id domain.ThreadId) error {
	found, err := s.exists(ctx, s.db, "SELECT EXISTS(SELECT 1 FROM threads WHERE id = $1)", id)
	if err != nil {
		return fmt.Errorf("failed to verify thread: %w", err)
	}
	if !found {
		return internal_errors.NewNotFound(threadNotFound)
	}
	return nil
}

func (s *Storage) VerifyThreadOwner(ctx context.Context, id domain.ThreadId, owner domain.UserId) error {
	found, err := s.exists(ctx, s.db, "SELECT EXISTS(SELECT 1 FROM threads WHERE id = $1 AND owner = $2)", id, owner)
	if err != nil {
		return fmt.Errorf("failed to verify thread owner: %w", err)
	}
	if !found {
		return internal_errors.NewAuthorization()
	}
	return nil
}

// DeleteThread only flags the row; comments and reads are unaffected.
func (s *Storage) DeleteThread(ctx context.Context, id domain.ThreadId) error {
	return s.softDelete(ctx, "threads", id, threadNotFound)
}

// softDelete flags a row in one of the fixed forum tables.
func (s *Storage) softDelete(ctx context.Context, table, id, notFound string) error {
	result, err := s.db.ExecContext(ctx, fmt.Sprintf("UPDATE %s SET is_deleted = TRUE WHERE id = $1", table), id)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	if affected == 0 {
		return internal_errors.NewNotFound(notFound)
	}
	return nil
}
