package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/forumapi/forum-api/shared/domain"
	internal_errors "github.com/forumapi/forum-api/shared/errors"
	shared_pg "github.com/forumapi/forum-api/shared/storage/pg"
	"github.com/forumapi/forum-api/shared/utils"
)

var errUsernameTaken = &internal_errors.ErrorWithStatusCode{
	Message:    "username tidak tersedia",
	StatusCode: http.StatusBadRequest,
}

// =========================================================================
// Public Methods (satisfy the service.AuthStorage interface)
// =========================================================================

func (s *Storage) VerifyAvailableUsername(ctx context.Context, username domain.Username) error {
	return s.verifyAvailableUsername(ctx, s.db, username)
}

// SaveUser checks availability and inserts inside one transaction. A race
// lost to a concurrent registration is still reported as a taken username.
func (s *Storage) SaveUser(ctx context.Context, user domain.User) (domain.User, error) {
	var saved domain.User
	err := shared_pg.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := s.verifyAvailableUsername(ctx, tx, user.Username); err != nil {
			return err
		}
		var err error
		saved, err = s.saveUser(ctx, tx, user)
		return err
	})
	if err != nil {
		return domain.User{}, err
	}
	return saved, nil
}

// User fetches a user with its password hash.
func (s *Storage) User(ctx context.Context, username domain.Username) (domain.User, error) {
	return s.user(ctx, s.db, username)
}

// =========================================================================
// Private Helpers (accept a Querier to work with or without a transaction)
// =========================================================================

func (s *Storage) verifyAvailableUsername(ctx context.Context, q shared_pg.Querier, username domain.Username) error {
	taken, err := s.exists(ctx, q, "SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)", username)
	if err != nil {
		return fmt.Errorf("failed to verify username: %w", err)
	}
	if taken {
		return errUsernameTaken
	}
	return nil
}

func (s *Storage) saveUser(ctx context.Context, q shared_pg.Querier, user domain.User) (domain.User, error) {
	user.Id = utils.NewId(domain.UserIdPrefix, s.newId)
	_, err := q.ExecContext(ctx,
		"INSERT INTO users (id, username, password, fullname) VALUES ($1, $2, $3, $4)",
		user.Id, user.Username, user.PassHash, user.Fullname,
	)
	if err != nil {
		if shared_pg.IsUniqueViolation(err) {
			return domain.User{}, errUsernameTaken
		}
		return domain.User{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return user, nil
}

func (s *Storage) user(ctx context.Context, q shared_pg.Querier, username domain.Username) (domain.User, error) {
	var user domain.User
	err := q.QueryRowContext(ctx,
		"SELECT id, username, fullname, password FROM users WHERE username = $1",
		username,
	).Scan(&user.Id, &user.Username, &user.Fullname, &user.PassHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, internal_errors.NewNotFound("username tidak ditemukan")
		}
		return domain.User{}, fmt.Errorf("failed to fetch user: %w", err)
	}
	return user, nil
}
