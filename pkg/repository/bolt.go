package repository

import (
	"context"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

const boltBucket = "snapshots"

// BoltBackend stores every collection as a key in a bbolt database.
type BoltBackend struct {
	db *bolt.DB
}

// NewBoltBackend opens the bbolt database at path and creates the bucket.
func NewBoltBackend(path string) (*BoltBackend, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create bucket %s: %w", boltBucket, err)
	}

	return &BoltBackend{db: db}, nil
}

func (b *BoltBackend) Store(collection string) (Store, error) {
	return &boltStore{db: b.db, name: collection}, nil
}

func (b *BoltBackend) Close() error {
	return b.db.Close()
}

type boltStore struct {
	db   *bolt.DB
	name string
}

func (s *boltStore) Name() string {
	return s.name
}

func (s *boltStore) Load(_ context.Context) ([]byte, error) {
	var data []byte

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(boltBucket))
		if b == nil {
			return fmt.Errorf("bucket %s not found", boltBucket)
		}

		v := b.Get([]byte(s.name))
		if v == nil {
			return ErrSnapshotMissing
		}

		// v is only valid during the transaction
		data = append([]byte(nil), v...)
		return nil
	})

	return data, err
}

func (s *boltStore) Save(_ context.Context, data []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(boltBucket))
		if b == nil {
			return fmt.Errorf("bucket %s not found", boltBucket)
		}

		return b.Put([]byte(s.name), data)
	})
}

func (s *boltStore) Ping(_ context.Context) error {
	return s.db.View(func(tx *bolt.Tx) error {
		if tx.Bucket([]byte(boltBucket)) == nil {
			return fmt.Errorf("bucket %s not found", boltBucket)
		}
		return nil
	})
}
