package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileBackend stores every collection as a JSON file in a directory.
type FileBackend struct {
	dir string
}

// NewFileBackend returns a backend storing files in dir.
func NewFileBackend(dir string) (*FileBackend, error) {
	err := os.MkdirAll(dir, 0o750)
	if err != nil {
		return nil, fmt.Errorf("could not create data directory: %w", err)
	}

	return &FileBackend{dir: dir}, nil
}

func (b *FileBackend) Store(collection string) (Store, error) {
	return &fileStore{
		name: collection,
		dir:  b.dir,
		path: filepath.Join(b.dir, collection+".json"),
	}, nil
}

func (b *FileBackend) Close() error {
	return nil
}

type fileStore struct {
	name string
	dir  string
	path string
}

func (s *fileStore) Name() string {
	return s.name
}

func (s *fileStore) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrSnapshotMissing
	}

	return data, err
}

// Save writes the data to a temporary file in the same directory and
// renames it over the collection file. A crash during the write leaves
// the previous snapshot intact.
func (s *fileStore) Save(_ context.Context, data []byte) (err error) {
	tmp, err := os.CreateTemp(s.dir, s.name+"-*.tmp")
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}

	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}

	if err = tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), s.path)
}

func (s *fileStore) Ping(_ context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", s.dir)
	}

	return nil
}
