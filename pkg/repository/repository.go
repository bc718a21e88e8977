package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/envelope-zero/ledger/pkg/models"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// Repository is a durable collection of entities with unique IDs.
//
// The collection is held in memory. Every mutation writes the whole
// collection to the Store before it becomes visible, so the persisted
// snapshot always equals the in-memory state after a successful call.
type Repository[T models.Entity] struct {
	mu     sync.RWMutex
	name   string
	entity string
	store  Store
	data   []T
}

// Options configure how a Repository is opened.
type Options struct {
	Reset bool // Discard any persisted content and start empty
}

// Open loads the collection from the store.
//
// If nothing has been persisted yet, or opts.Reset is set, an empty
// collection is persisted and used.
func Open[T models.Entity](ctx context.Context, store Store, opts Options) (*Repository[T], error) {
	r := &Repository[T]{
		name:   store.Name(),
		entity: singular(store.Name()),
		store:  store,
		data:   []T{},
	}

	raw, err := store.Load(ctx)
	switch {
	case errors.Is(err, ErrSnapshotMissing):
		log.Info().Str("collection", r.name).Msg("creating collection")
		opts.Reset = true
	case err != nil:
		return nil, fmt.Errorf("%w: could not load %s: %w", models.ErrStorage, r.name, err)
	case opts.Reset:
		log.Info().Str("collection", r.name).Msg("resetting collection")
	default:
		if err := json.Unmarshal(raw, &r.data); err != nil {
			return nil, fmt.Errorf("%w: could not decode %s: %w", models.ErrStorage, r.name, err)
		}
	}

	if opts.Reset {
		r.data = []T{}
		if err := r.persist(ctx, r.data); err != nil {
			return nil, err
		}
	}

	log.Debug().Str("collection", r.name).Int("count", len(r.data)).Msg("collection loaded")
	return r, nil
}

// singular turns a collection name into the name of its entities.
func singular(name string) string {
	if strings.HasSuffix(name, "ies") {
		return strings.TrimSuffix(name, "ies") + "y"
	}
	return strings.TrimSuffix(name, "s")
}

// Name returns the name of the collection.
func (r *Repository[T]) Name() string {
	return r.name
}

// Ping checks that the underlying store is reachable.
func (r *Repository[T]) Ping(ctx context.Context) error {
	return r.store.Ping(ctx)
}

// GetByID returns the entity with the given ID.
func (r *Repository[T]) GetByID(id string) (T, error) {
	return r.GetByKey("id", id)
}

// GetByKey returns the first entity in insertion order whose key
// field equals value.
func (r *Repository[T]) GetByKey(key, value string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := slices.IndexFunc(r.data, func(e T) bool {
		v, ok := e.Key(key)
		return ok && v == value
	})

	if idx == -1 {
		var zero T
		return zero, fmt.Errorf("%w: %s with %s %q", models.ErrNotFound, r.entity, key, value)
	}

	return r.data[idx], nil
}

// GetAll returns a copy of all entities in insertion order.
func (r *Repository[T]) GetAll() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.data)
}

// InsertIfNotExists appends item to the collection and persists it.
//
// It fails with models.ErrAlreadyExists if an existing entity has the
// same ID or the same value for any of the uniqueKeys.
func (r *Repository[T]) InsertIfNotExists(ctx context.Context, item T, uniqueKeys ...string) (T, error) {
	var zero T
	keys := append([]string{"id"}, uniqueKeys...)

	for _, key := range keys {
		if _, ok := item.Key(key); !ok {
			return zero, fmt.Errorf("%s is not a key of %s", key, r.entity)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.data {
		for _, key := range keys {
			existing, _ := e.Key(key)
			candidate, _ := item.Key(key)
			if existing == candidate {
				return zero, fmt.Errorf("%w: there already is a %s with %s %q", models.ErrAlreadyExists, r.entity, key, candidate)
			}
		}
	}

	next := append(slices.Clone(r.data), item)
	if err := r.persist(ctx, next); err != nil {
		return zero, err
	}
	r.data = next

	return item, nil
}

// Replace swaps the entity with the same ID as item and persists the collection.
func (r *Repository[T]) Replace(ctx context.Context, item T) (T, error) {
	var zero T

	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.index(item.GetID())
	if idx == -1 {
		return zero, fmt.Errorf("%w: %s with id %q", models.ErrNotFound, r.entity, item.GetID())
	}

	next := slices.Clone(r.data)
	next[idx] = item
	if err := r.persist(ctx, next); err != nil {
		return zero, err
	}
	r.data = next

	return item, nil
}

// DeleteByID removes the entity with the given ID and persists the collection.
func (r *Repository[T]) DeleteByID(ctx context.Context, id string) (T, error) {
	var zero T

	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.index(id)
	if idx == -1 {
		return zero, fmt.Errorf("%w: %s with id %q", models.ErrNotFound, r.entity, id)
	}

	item := r.data[idx]
	next := slices.Delete(slices.Clone(r.data), idx, idx+1)
	if err := r.persist(ctx, next); err != nil {
		return zero, err
	}
	r.data = next

	return item, nil
}

// index returns the position of the entity with the ID. The caller must hold r.mu.
func (r *Repository[T]) index(id string) int {
	return slices.IndexFunc(r.data, func(e T) bool {
		return e.GetID() == id
	})
}

// persist writes data as the full snapshot of the collection.
func (r *Repository[T]) persist(ctx context.Context, data []T) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("%w: could not encode %s: %w", models.ErrStorage, r.name, err)
	}

	err = r.store.Save(ctx, raw)
	if err != nil {
		log.Error().Err(err).Str("collection", r.name).Msg("persisting collection failed")
		return fmt.Errorf("%w: could not persist %s: %w", models.ErrStorage, r.name, err)
	}

	return nil
}
