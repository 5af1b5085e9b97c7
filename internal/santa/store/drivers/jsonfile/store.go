// Package jsonfile is a store.Store backed by one JSON document per
// collection in a local directory. All state lives in memory; Save writes
// it out with a timestamped backup of whatever was on disk before.
package jsonfile

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aussiebroadwan/santa/internal/santa/domain"
	"github.com/aussiebroadwan/santa/internal/santa/store"
	"github.com/aussiebroadwan/santa/pkg/slogx"
	"github.com/prometheus/client_golang/prometheus"
)

const backupDirName = "backups"

// Store keeps the three collections in memory behind a single lock so a
// save always captures a consistent snapshot of all of them.
type Store struct {
	dir     string
	logger  *slog.Logger
	now     func() time.Time
	metrics *storeMetrics

	mu          sync.RWMutex
	groups      *collection[domain.Group]
	assignments *collection[domain.Assignment]
	guests      *collection[domain.Guest]
	gen         uint64 // bumped by every change to memory, guarded by mu

	// saveMu is held for the whole of a save. Save only ever TryLocks it,
	// which is what drops overlapping calls.
	saveMu   sync.Mutex
	savedGen uint64 // gen of the last successful save, guarded by saveMu

	backupSeq atomic.Uint64

	// beforeWrite runs after backups and before the collection files are
	// written. Tests use it to hold a save in flight.
	beforeWrite func()
}

type Option func(*Store)

// WithLogger sets the logger used for load and save reporting.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithRegisterer registers the store metrics with reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(s *Store) { s.metrics = initStoreMetrics(reg) }
}

// WithClock overrides the clock used to stamp backups.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore returns a store rooted at dir. Nothing touches disk until Load.
func NewStore(dir string, opts ...Option) *Store {
	s := &Store{
		dir:         dir,
		logger:      slogx.Discard(),
		now:         time.Now,
		groups:      newCollection[domain.Group]("groups"),
		assignments: newCollection[domain.Assignment]("assignments"),
		guests:      newCollection[domain.Guest]("guests"),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = initStoreMetrics(nil)
	}
	return s
}

func (s *Store) Groups() store.Groups           { return &groupsRepo{s: s} }
func (s *Store) Assignments() store.Assignments { return &assignmentsRepo{s: s} }
func (s *Store) Guests() store.Guests           { return &guestsRepo{s: s} }

// Ping verifies the data directory still accepts writes.
func (s *Store) Ping(ctx context.Context) error {
	return s.probe()
}

// Close waits for any in-flight save and then flushes once more, so the
// last writes before shutdown are never dropped by the single-flight guard.
// Like Save, it writes nothing if memory has not changed since the last
// successful save.
func (s *Store) Close() error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	return s.save()
}

func (s *Store) resources() []resource {
	return []resource{s.groups, s.assignments, s.guests}
}

// resource is the type-erased view of a collection used by load and save.
type resource interface {
	name() string
	encode() ([]byte, error)
	decode(data []byte) error
	reset()
}

type collection[T any] struct {
	label string
	items map[string]T
}

func newCollection[T any](label string) *collection[T] {
	return &collection[T]{label: label, items: make(map[string]T)}
}

func (c *collection[T]) name() string { return c.label }
func (c *collection[T]) reset()       { c.items = make(map[string]T) }

type groupsRepo struct{ s *Store }

func (r *groupsRepo) GetGroup(ctx context.Context, id string) (domain.Group, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	g, ok := r.s.groups.items[id]
	if !ok {
		return domain.Group{}, store.ErrNotFound
	}
	g.Members = slices.Clone(g.Members)
	return g, nil
}

func (r *groupsRepo) CreateGroup(ctx context.Context, g domain.Group) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.groups.items[g.ID]; ok {
		return store.ErrAlreadyExists
	}
	g.Members = slices.Clone(g.Members)
	r.s.groups.items[g.ID] = g
	r.s.gen++
	return nil
}

func (r *groupsRepo) DeleteGroup(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.groups.items[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.s.groups.items, id)
	r.s.gen++
	return nil
}

func (r *groupsRepo) Count(ctx context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.groups.items), nil
}

type assignmentsRepo struct{ s *Store }

func (r *assignmentsRepo) GetAssignment(ctx context.Context, groupID string) (domain.Assignment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.assignments.items[groupID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return a.Clone(), nil
}

func (r *assignmentsRepo) PutAssignment(ctx context.Context, groupID string, a domain.Assignment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.assignments.items[groupID] = maps.Clone(a)
	r.s.gen++
	return nil
}

type guestsRepo struct{ s *Store }

func (r *guestsRepo) GetGuest(ctx context.Context, tokenHash string) (domain.Guest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	g, ok := r.s.guests.items[tokenHash]
	if !ok {
		return domain.Guest{}, store.ErrNotFound
	}
	return g, nil
}

func (r *guestsRepo) CreateGuest(ctx context.Context, tokenHash string, g domain.Guest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.guests.items[tokenHash]; ok {
		return store.ErrAlreadyExists
	}
	r.s.guests.items[tokenHash] = g
	r.s.gen++
	return nil
}

func (r *guestsRepo) DeleteGuest(ctx context.Context, tokenHash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.guests.items[tokenHash]; !ok {
		return store.ErrNotFound
	}
	delete(r.s.guests.items, tokenHash)
	r.s.gen++
	return nil
}
