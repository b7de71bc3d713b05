package pg

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/forumapi/forum-api/shared/config"
	"github.com/forumapi/forum-api/shared/logger"
	shared_pg "github.com/forumapi/forum-api/shared/storage/pg"
	"github.com/forumapi/forum-api/shared/utils"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type Storage struct {
	db    *sql.DB
	newId utils.IdGenerator
	now   func() time.Time
}

// New connects to postgres, applies pending migrations and returns a
// storage that generates uuid-suffixed ids.
func New(ctx context.Context, cfg config.Pg) (*Storage, error) {
	logger.Log.Info("connecting to db", "host", cfg.Host, "dbname", cfg.Dbname)
	db, err := shared_pg.Connect(ctx, cfg, shared_pg.DefaultConnectionConfig())
	if err != nil {
		return nil, err
	}
	logger.Log.Info("successfully connected to db")

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return NewWithDB(db, utils.UUIDGenerator), nil
}

// NewWithDB wraps an existing pool. Migrations are the caller's concern.
func NewWithDB(db *sql.DB, newId utils.IdGenerator) *Storage {
	return &Storage{
		db:    db,
		newId: newId,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Migrate applies every embedded migration that has not run yet.
// A dirty version left by a crashed run is forced clean first.
func Migrate(db *sql.DB) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to open migrations: %w", err)
	}
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migrate driver: %w", err)
	}
	// m is never closed: closing the driver would close db as well
	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	if dirty {
		logger.Log.Warn("database is dirty, forcing version", "version", version)
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force migration version: %w", err)
		}
	}

	logger.Log.Info("applying migrations")
	if err := m.Up(); err != nil {
		if !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("failed to migrate: %w", err)
		}
		logger.Log.Info("nothing to migrate")
		return nil
	}
	logger.Log.Info("migrated successfully")
	return nil
}

// Ping satisfies the handler's HealthChecker.
func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

func (s *Storage) exists(ctx context.Context, q shared_pg.Querier, query string, args ...any) (bool, error) {
	var found bool
	if err := q.QueryRowContext(ctx, query, args...).Scan(&found); err != nil {
		return false, err
	}
	return found, nil
}
