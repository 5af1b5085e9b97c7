package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/aussiebroadwan/santa/internal/santa/domain"
	"github.com/aussiebroadwan/santa/internal/santa/store"
	"github.com/aussiebroadwan/santa/pkg/slogx"
	"golang.org/x/sync/singleflight"
)

// AssignmentService computes and serves the gift assignment of a group.
// A group's assignment is computed once, on first request, and returned
// unchanged from then on.
type AssignmentService struct {
	Store   store.Store
	Metrics *Metrics

	mu  sync.Mutex // guards rng
	rng *rand.Rand

	// flights makes creation per group atomic: concurrent first requests
	// for one group share a single computation.
	flights singleflight.Group
}

// NewAssignmentService returns an AssignmentService. A nil rng is replaced
// by a randomly seeded PCG source; pass a seeded one for reproducible tests.
func NewAssignmentService(st store.Store, metrics *Metrics, rng *rand.Rand) *AssignmentService {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	return &AssignmentService{Store: st, Metrics: metrics, rng: rng}
}

// AssignmentFor returns the assignment table of the group, creating and
// saving it if the group has none yet. The group must exist and hold at
// least two members.
func (s *AssignmentService) AssignmentFor(ctx context.Context, groupID string) (domain.Assignment, error) {
	ctx = slogx.With(ctx, slog.String("group_id", groupID))

	a, err := s.Store.Assignments().GetAssignment(ctx, groupID)
	if err == nil {
		return a, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		slogx.FromContext(ctx).Error("failed to fetch assignment", slog.Any("error", err))
		return nil, err
	}

	v, err, _ := s.flights.Do(groupID, func() (any, error) {
		return s.create(ctx, groupID)
	})
	if err != nil {
		return nil, err
	}

	// Every caller sharing the flight gets the same map; hand out copies.
	return v.(domain.Assignment).Clone(), nil
}

func (s *AssignmentService) create(ctx context.Context, groupID string) (domain.Assignment, error) {
	log := slogx.FromContext(ctx)

	// A flight that finished between our miss and joining this one has
	// already stored the table.
	if a, err := s.Store.Assignments().GetAssignment(ctx, groupID); err == nil {
		return a, nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	group, err := s.Store.Groups().GetGroup(ctx, groupID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrGroupNotFound
		}
		log.Error("failed to fetch group", slog.Any("error", err))
		return nil, err
	}

	if err := domain.ValidateMembers(group.Members); err != nil {
		log.Error("stored group violates member invariants", slog.Any("error", err))
		return nil, fmt.Errorf("%w: %w", ErrInvalidGroup, err)
	}

	s.mu.Lock()
	perm := derange(group.Members, s.rng)
	s.mu.Unlock()

	a := make(domain.Assignment, len(group.Members))
	for i, member := range group.Members {
		a[member] = perm[i]
	}
	if !a.IsDerangementOf(group.Members) {
		log.Error("computed assignment is not a derangement")
		return nil, fmt.Errorf("assignment for group %s: %w", groupID, ErrBadAssignment)
	}

	if err := s.Store.Assignments().PutAssignment(ctx, groupID, a); err != nil {
		log.Error("failed to store assignment", slog.Any("error", err))
		return nil, err
	}
	s.Metrics.assignmentsCreated.Inc()

	// Memory is the source of truth from here; a failed save is retried by
	// the next one.
	if err := s.Store.Save(ctx); err != nil {
		log.Error("failed to persist new assignment", slog.Any("error", err))
	}

	log.Info("assignment created", slog.Int("members", len(group.Members)))
	return a, nil
}
