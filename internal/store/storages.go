package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
)

// MemoryDSN selects the in-memory backend.
const MemoryDSN = "memory://"

// Storages bundles the repositories and the transaction runner of one
// backend.
type Storages struct {
	UserRepository UserRepository
	TaskRepository TaskRepository
	Transactor     Transactor

	db *DB
}

// NewStorages connects to the backend selected by cfg.DB.DSN, applies the
// schema migrations and builds the repositories:
//   - "postgres://", "postgresql://" → PostgreSQL via pgx
//   - "sqlite://", "file:"           → SQLite via go-sqlite3
//   - "memory://"                    → [MemoryStore]
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	dsn := strings.TrimSpace(cfg.DB.DSN)

	var db *DB
	var err error
	switch {
	case dsn == MemoryDSN:
		log.Warn().Str("func", "NewStorages").Msg("using in-memory storage, data will not be persisted")
		return NewMemoryStorages(), nil
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		db, err = NewConnectPostgres(ctx, dsn, log)
	case strings.HasPrefix(dsn, "sqlite://"), strings.HasPrefix(dsn, "file:"):
		db, err = NewConnectSQLite(ctx, dsn, log)
	default:
		return nil, ErrUnsupportedDSN
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return NewSQLStorages(db, log), nil
}

// NewSQLStorages builds SQL repositories over an open handle.
func NewSQLStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		TaskRepository: NewTaskRepository(db, log),
		Transactor:     db,
		db:             db,
	}
}

// NewMemoryStorages builds repositories over a fresh [MemoryStore].
func NewMemoryStorages() *Storages {
	mem := NewMemoryStore()
	return &Storages{
		UserRepository: mem,
		TaskRepository: mem,
		Transactor:     mem,
	}
}

// Close releases the database handle, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
