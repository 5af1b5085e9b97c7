package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/santa/internal/santa/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrUnwritable means the storage location failed its write probe.
	// Nothing can be made durable, so callers must refuse to serve.
	ErrUnwritable = errors.New("store: storage location is not writable")
)

// Store is the root data access interface. It owns the three collections
// (groups, assignments, guests) and is the only thing that touches disk.
//
// The Create/Put methods on the sub-repositories change memory only. Nothing
// is durable until Save returns.
type Store interface {
	Groups() Groups
	Assignments() Assignments
	Guests() Guests

	// Load prepares the storage location and reads every collection into
	// memory. A collection whose data cannot be parsed starts empty; the
	// others load normally. Returns ErrUnwritable if the location fails
	// its write probe.
	Load(ctx context.Context) error

	// Save backs up the current files and writes all collections. Only one
	// Save runs at a time; a call made while another is in flight returns
	// nil straight away without writing anything. A call with no change
	// since the last successful save writes nothing either.
	Save(ctx context.Context) error

	// PruneBackups keeps the newest keep backups of each collection and
	// deletes the rest, returning how many were removed.
	PruneBackups(ctx context.Context, keep int) (int, error)

	// Ping verifies the storage location is still writable.
	Ping(ctx context.Context) error

	// Close waits for an in-flight save, then flushes outstanding state.
	Close() error
}

type Groups interface {
	// GetGroup returns a group by id.
	GetGroup(ctx context.Context, id string) (domain.Group, error)

	// CreateGroup inserts a new group. Groups are immutable, so an existing
	// id yields ErrAlreadyExists.
	CreateGroup(ctx context.Context, g domain.Group) error

	// DeleteGroup removes a group that has not been saved yet. It exists to
	// undo a partly failed creation.
	DeleteGroup(ctx context.Context, id string) error

	// Count returns the number of stored groups.
	Count(ctx context.Context) (int, error)
}

type Assignments interface {
	// GetAssignment returns the assignment table for a group.
	GetAssignment(ctx context.Context, groupID string) (domain.Assignment, error)

	// PutAssignment stores the assignment table for a group.
	PutAssignment(ctx context.Context, groupID string, a domain.Assignment) error
}

type Guests interface {
	// GetGuest resolves a token fingerprint to its guest.
	GetGuest(ctx context.Context, tokenHash string) (domain.Guest, error)

	// CreateGuest stores a guest under its token fingerprint.
	CreateGuest(ctx context.Context, tokenHash string, g domain.Guest) error

	// DeleteGuest removes a guest by token fingerprint.
	DeleteGuest(ctx context.Context, tokenHash string) error
}
