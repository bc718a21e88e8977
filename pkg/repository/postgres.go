package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const postgresSchema = `CREATE TABLE IF NOT EXISTS ledger_snapshots (
	collection TEXT PRIMARY KEY,
	data JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// postgresLockKey identifies the advisory lock held by an open ledger.
const postgresLockKey int64 = 0x6c6564676572

// PostgresBackend stores every collection as a row in a PostgreSQL table.
type PostgresBackend struct {
	pool *pgxpool.Pool
	lock *pgxpool.Conn
}

// NewPostgresBackend connects to the database at url and creates the table.
func NewPostgresBackend(ctx context.Context, url string) (*PostgresBackend, error) {
	if url == "" {
		return nil, errors.New("the postgres backend needs a database URL")
	}

	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	_, err = pool.Exec(ctx, postgresSchema)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("error during DB migration: %w", err)
	}

	return &PostgresBackend{pool: pool}, nil
}

func openPostgres(ctx context.Context, url string) (Backend, error) {
	b, err := NewPostgresBackend(ctx, url)
	if err != nil {
		return nil, err
	}

	if err := b.Lock(ctx); err != nil {
		_ = b.Close()
		return nil, err
	}

	return b, nil
}

// Lock takes a session advisory lock on a dedicated connection. It is
// released by Close.
//
// If another session holds the lock, the error wraps ErrLocked.
func (b *PostgresBackend) Lock(ctx context.Context) error {
	conn, err := b.pool.Acquire(ctx)
	if err != nil {
		return err
	}

	var ok bool
	err = conn.QueryRow(ctx, "SELECT pg_try_advisory_lock($1)", postgresLockKey).Scan(&ok)
	if err != nil {
		conn.Release()
		return err
	}

	if !ok {
		conn.Release()
		return fmt.Errorf("%w: the database is locked", ErrLocked)
	}

	b.lock = conn
	return nil
}

func (b *PostgresBackend) Store(collection string) (Store, error) {
	return &postgresStore{pool: b.pool, name: collection}, nil
}

func (b *PostgresBackend) Close() error {
	var err error
	if b.lock != nil {
		_, err = b.lock.Exec(context.Background(), "SELECT pg_advisory_unlock($1)", postgresLockKey)
		b.lock.Release()
		b.lock = nil
	}

	b.pool.Close()
	return err
}

type postgresStore struct {
	pool *pgxpool.Pool
	name string
}

func (s *postgresStore) Name() string {
	return s.name
}

func (s *postgresStore) Load(ctx context.Context) ([]byte, error) {
	var data []byte

	err := s.pool.QueryRow(ctx, "SELECT data FROM ledger_snapshots WHERE collection = $1", s.name).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSnapshotMissing
	}

	return data, err
}

func (s *postgresStore) Save(ctx context.Context, data []byte) error {
	_, err := s.pool.Exec(ctx, `INSERT INTO ledger_snapshots (collection, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (collection) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`,
		s.name, string(data))

	return err
}

func (s *postgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
