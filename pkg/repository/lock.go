package repository

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLocked is returned by OpenBackend when another process has the
// storage open.
var ErrLocked = errors.New("the storage is in use by another process")

const lockFile = "ledger.lock"

// lockedBackend holds an exclusive lock on the data directory until
// it is closed.
type lockedBackend struct {
	Backend
	lock *flock.Flock
}

// lockDir takes the lock on dir, then opens the backend and wraps it
// with the lock.
func lockDir(dir string, open func() (Backend, error)) (Backend, error) {
	lock := flock.New(filepath.Join(dir, lockFile))

	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("could not lock data directory: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s is locked", ErrLocked, dir)
	}

	backend, err := open()
	if err != nil {
		_ = lock.Unlock()
		return nil, err
	}

	return &lockedBackend{Backend: backend, lock: lock}, nil
}

func (b *lockedBackend) Close() error {
	return errors.Join(b.Backend.Close(), b.lock.Unlock())
}
