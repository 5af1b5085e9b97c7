package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/santa/internal/santa/domain"
	"github.com/aussiebroadwan/santa/internal/santa/store"
	"github.com/aussiebroadwan/santa/pkg/cryptox"
	"github.com/aussiebroadwan/santa/pkg/idx"
	"github.com/aussiebroadwan/santa/pkg/slogx"
)

// GuestPath is the route prefix guest links point at.
const GuestPath = "/v1/guests/"

type GroupService struct {
	Store       store.Store
	Assignments *AssignmentService
	Metrics     *Metrics

	// BaseURL is prepended to guest links, e.g. "https://santa.example.com".
	BaseURL string
}

// CreateGroup stores a new group and mints one guest link per member.
// The raw tokens only exist in the returned links.
func (s *GroupService) CreateGroup(ctx context.Context, ng domain.NewGroup) (domain.Group, []domain.GuestLink, error) {
	log := slogx.FromContext(ctx)

	// 1. Check the invariants every stored group keeps.
	if strings.TrimSpace(ng.Name) == "" {
		return domain.Group{}, nil, fmt.Errorf("%w: name is required", ErrInvalidGroup)
	}
	if err := domain.ValidateMembers(ng.Members); err != nil {
		log.Warn("rejected group", slog.Any("error", err))
		return domain.Group{}, nil, fmt.Errorf("%w: %w", ErrInvalidGroup, err)
	}

	group := domain.Group{
		ID:        idx.New().String(),
		Name:      ng.Name,
		Budget:    ng.Budget,
		Criteria:  ng.Criteria,
		Members:   append([]string(nil), ng.Members...),
		CreatedAt: time.Now().UTC(),
	}

	// 2. Mint every token before touching the store so a failure leaves
	// nothing behind.
	links := make([]domain.GuestLink, len(group.Members))
	for i, member := range group.Members {
		token, err := cryptox.GenerateToken(cryptox.TokenSize256)
		if err != nil {
			log.Error("failed to generate guest token", slog.Any("error", err))
			return domain.Group{}, nil, err
		}
		links[i] = domain.GuestLink{
			Member: member,
			Token:  token,
			URL:    s.guestURL(token),
		}
	}

	// 3. Store the group, then a guest per member keyed by fingerprint.
	if err := s.Store.Groups().CreateGroup(ctx, group); err != nil {
		log.Error("failed to create group", slog.String("group_id", group.ID), slog.Any("error", err))
		return domain.Group{}, nil, err
	}
	created := make([]string, 0, len(links))
	for _, link := range links {
		guest := domain.Guest{
			GroupID:   group.ID,
			Member:    link.Member,
			CreatedAt: group.CreatedAt,
		}
		fp := cryptox.FingerprintToken(link.Token)
		if err := s.Store.Guests().CreateGuest(ctx, fp, guest); err != nil {
			log.Error("failed to create guest",
				slog.String("group_id", group.ID),
				slog.Any("error", err),
			)
			s.rollback(ctx, group.ID, created)
			return domain.Group{}, nil, err
		}
		created = append(created, fp)
	}
	s.Metrics.groupsCreated.Inc()

	// 4. Persist. A failed save is logged; memory stays authoritative.
	if err := s.Store.Save(ctx); err != nil {
		log.Error("failed to persist new group", slog.String("group_id", group.ID), slog.Any("error", err))
	}

	log.Info("group created",
		slog.String("group_id", group.ID),
		slog.Int("members", len(group.Members)),
	)
	return group, links, nil
}

// rollback removes a group and the guests already stored for it, so a
// creation that failed partway leaves nothing for the next save to persist.
func (s *GroupService) rollback(ctx context.Context, groupID string, fingerprints []string) {
	log := slogx.FromContext(ctx)
	for _, fp := range fingerprints {
		if err := s.Store.Guests().DeleteGuest(ctx, fp); err != nil {
			log.Error("failed to roll back guest", slog.String("group_id", groupID), slog.Any("error", err))
		}
	}
	if err := s.Store.Groups().DeleteGroup(ctx, groupID); err != nil {
		log.Error("failed to roll back group", slog.String("group_id", groupID), slog.Any("error", err))
	}
}

// GetGroup returns the full group record.
func (s *GroupService) GetGroup(ctx context.Context, id string) (domain.Group, error) {
	g, err := s.Store.Groups().GetGroup(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Group{}, ErrGroupNotFound
		}
		slogx.FromContext(ctx).Error("failed to fetch group", slog.String("group_id", id), slog.Any("error", err))
		return domain.Group{}, err
	}
	return g, nil
}

// AssignMember returns the recipient member gives a gift to, computing the
// group's assignment if this is the first request for it.
func (s *GroupService) AssignMember(ctx context.Context, groupID, member string) (string, error) {
	group, err := s.GetGroup(ctx, groupID)
	if err != nil {
		return "", err
	}
	if !group.HasMember(member) {
		return "", ErrMemberNotFound
	}

	a, err := s.Assignments.AssignmentFor(ctx, groupID)
	if err != nil {
		return "", err
	}
	return a[member], nil
}

// GuestView resolves a guest token to the restricted view its holder may
// see: the group details, their own name, and their recipient.
func (s *GroupService) GuestView(ctx context.Context, token string) (domain.GuestView, error) {
	log := slogx.FromContext(ctx)

	if token == "" {
		s.Metrics.guestLookups.WithLabelValues("not_found").Inc()
		return domain.GuestView{}, ErrGuestNotFound
	}

	guest, err := s.Store.Guests().GetGuest(ctx, cryptox.FingerprintToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.Metrics.guestLookups.WithLabelValues("not_found").Inc()
			return domain.GuestView{}, ErrGuestNotFound
		}
		log.Error("failed to fetch guest", slog.Any("error", err))
		return domain.GuestView{}, err
	}

	group, err := s.GetGroup(ctx, guest.GroupID)
	if err != nil {
		if errors.Is(err, ErrGroupNotFound) {
			// Guest outlived its group, which only happens if a data file
			// was lost or reset at load.
			log.Warn("guest refers to a missing group", slog.String("group_id", guest.GroupID))
			s.Metrics.guestLookups.WithLabelValues("not_found").Inc()
			return domain.GuestView{}, ErrGuestNotFound
		}
		return domain.GuestView{}, err
	}

	a, err := s.Assignments.AssignmentFor(ctx, group.ID)
	if err != nil {
		return domain.GuestView{}, err
	}
	s.Metrics.guestLookups.WithLabelValues("ok").Inc()

	return domain.GuestView{
		GroupName: group.Name,
		Budget:    group.Budget,
		Criteria:  group.Criteria,
		Member:    guest.Member,
		Recipient: a[guest.Member],
	}, nil
}

func (s *GroupService) guestURL(token string) string {
	return strings.TrimSuffix(s.BaseURL, "/") + GuestPath + token
}
