package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// snapshot is the row holding the full snapshot of one collection.
type snapshot struct {
	Collection string `gorm:"primaryKey"`
	Data       []byte
	UpdatedAt  time.Time
}

func (snapshot) TableName() string {
	return "snapshots"
}

// SQLiteBackend stores every collection as a row in an SQLite database.
type SQLiteBackend struct {
	db *gorm.DB
}

// NewSQLiteBackend opens the SQLite database at dsn and migrates the schema.
func NewSQLiteBackend(dsn string) (*SQLiteBackend, error) {
	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection prevents SQLITE_BUSY errors
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&snapshot{})
	if err != nil {
		return nil, fmt.Errorf("error during DB migration: %w", err)
	}

	return &SQLiteBackend{db: db}, nil
}

func (b *SQLiteBackend) Store(collection string) (Store, error) {
	return &sqliteStore{db: b.db, name: collection}, nil
}

func (b *SQLiteBackend) Close() error {
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

type sqliteStore struct {
	db   *gorm.DB
	name string
}

func (s *sqliteStore) Name() string {
	return s.name
}

func (s *sqliteStore) Load(ctx context.Context) ([]byte, error) {
	var row snapshot
	err := s.db.WithContext(ctx).First(&row, "collection = ?", s.name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSnapshotMissing
	}

	if err != nil {
		return nil, sqliteError(err)
	}

	return row.Data, nil
}

func (s *sqliteStore) Save(ctx context.Context, data []byte) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&snapshot{Collection: s.name, Data: data}).
		Error

	return sqliteError(err)
}

func (s *sqliteStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}

// sqliteError adds the SQLite result code to errors returned by the driver.
func sqliteError(err error) error {
	if err == nil {
		return nil
	}

	var sqliteErr *go_sqlite.Error
	if errors.As(err, &sqliteErr) {
		return fmt.Errorf("sqlite error %d: %w", sqliteErr.Code(), err)
	}

	return err
}
