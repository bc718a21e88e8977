package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrSnapshotMissing is returned by Store.Load when nothing has been
// persisted for the collection yet.
var ErrSnapshotMissing = errors.New("no snapshot has been persisted")

// Store persists the snapshot of a single collection.
//
// Save must replace the previous snapshot as one unit: after it returns
// successfully, Load returns exactly the saved data.
type Store interface {
	Name() string
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	Ping(ctx context.Context) error
}

// Backend hands out one Store per named collection.
type Backend interface {
	Store(collection string) (Store, error)
	Close() error
}

// Backend types that can be configured.
const (
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendBolt     = "bolt"
	BackendPostgres = "postgres"
)

// OpenBackend opens the backend of the given type.
//
// dataDir is created if it does not exist. databaseURL is only used for
// the postgres backend.
//
// The returned backend holds an exclusive lock on the storage until it
// is closed. If another process holds it, the error wraps ErrLocked.
func OpenBackend(ctx context.Context, backend, dataDir, databaseURL string) (Backend, error) {
	var open func() (Backend, error)

	switch backend {
	case BackendFile, "":
		open = func() (Backend, error) { return NewFileBackend(dataDir) }
	case BackendSQLite:
		open = func() (Backend, error) { return NewSQLiteBackend(filepath.Join(dataDir, "ledger.db")) }
	case BackendBolt:
		open = func() (Backend, error) { return NewBoltBackend(filepath.Join(dataDir, "ledger.bolt")) }
	case BackendPostgres:
		return openPostgres(ctx, databaseURL)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}

	err := os.MkdirAll(dataDir, 0o750)
	if err != nil {
		return nil, fmt.Errorf("could not create data directory: %w", err)
	}

	return lockDir(dataDir, open)
}
