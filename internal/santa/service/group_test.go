package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aussiebroadwan/santa/internal/santa/domain"
	"github.com/aussiebroadwan/santa/internal/santa/store"
	"github.com/aussiebroadwan/santa/pkg/cryptox"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCreateGroupAndResolveEveryLink(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	group, links, err := f.groups.CreateGroup(ctx, domain.NewGroup{
		Name:     "Office",
		Budget:   "$20",
		Criteria: "something handmade",
		Members:  []string{"Al", "Bo", "Cy"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, group.ID)
	require.Equal(t, []string{"Al", "Bo", "Cy"}, group.Members)
	require.Len(t, links, 3)
	require.Equal(t, 1.0, testutil.ToFloat64(f.metrics.groupsCreated))

	recipients := map[string]bool{}
	for i, link := range links {
		require.Equal(t, group.Members[i], link.Member)
		require.Equal(t, "https://santa.test/v1/guests/"+link.Token, link.URL)

		view, err := f.groups.GuestView(ctx, link.Token)
		require.NoError(t, err)
		require.Equal(t, "Office", view.GroupName)
		require.Equal(t, "$20", view.Budget)
		require.Equal(t, "something handmade", view.Criteria)
		require.Equal(t, link.Member, view.Member)
		require.NotEqual(t, link.Member, view.Recipient)
		require.True(t, group.HasMember(view.Recipient))
		recipients[view.Recipient] = true
	}
	require.Len(t, recipients, 3, "every member receives exactly one gift")
	require.Equal(t, 1.0, testutil.ToFloat64(f.metrics.assignmentsCreated))
	require.Equal(t, 3.0, testutil.ToFloat64(f.metrics.guestLookups.WithLabelValues("ok")))
}

func TestCreateGroupStoresOnlyFingerprints(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, links, err := f.groups.CreateGroup(ctx, domain.NewGroup{
		Name:    "Family",
		Members: []string{"Ann", "Ben"},
	})
	require.NoError(t, err)

	for _, link := range links {
		_, err := f.store.Guests().GetGuest(ctx, link.Token)
		require.Error(t, err, "raw token must not be a key")

		guest, err := f.store.Guests().GetGuest(ctx, cryptox.FingerprintToken(link.Token))
		require.NoError(t, err)
		require.Equal(t, link.Member, guest.Member)
	}
}

// flakyGuests stores n guests and then fails every further CreateGuest.
type flakyGuests struct {
	store.Guests
	n int
}

func (g *flakyGuests) CreateGuest(ctx context.Context, tokenHash string, guest domain.Guest) error {
	if g.n == 0 {
		return errors.New("disk full")
	}
	g.n--
	return g.Guests.CreateGuest(ctx, tokenHash, guest)
}

type flakyGuestStore struct {
	store.Store
	guests *flakyGuests
}

func (s *flakyGuestStore) Guests() store.Guests { return s.guests }

func TestCreateGroupRollsBackOnGuestFailure(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.groups.Store = &flakyGuestStore{
		Store:  f.store,
		guests: &flakyGuests{Guests: f.store.Guests(), n: 2},
	}

	_, _, err := f.groups.CreateGroup(ctx, domain.NewGroup{
		Name:    "Office",
		Members: []string{"Al", "Bo", "Cy"},
	})
	require.Error(t, err)
	require.Zero(t, testutil.ToFloat64(f.metrics.groupsCreated))

	n, err := f.store.Groups().Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n)

	// Nothing of the failed group reaches disk on the next save.
	require.NoError(t, f.store.Save(ctx))
	for _, name := range []string{"groups", "guests"} {
		data, err := os.ReadFile(filepath.Join(f.dir, name+".json"))
		require.NoError(t, err)
		require.JSONEq(t, `{}`, string(data), name)
	}
}

func TestCreateGroupRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		input   domain.NewGroup
		wantErr error
	}{
		{
			name:    "blank name",
			input:   domain.NewGroup{Name: "  ", Members: []string{"A", "B"}},
			wantErr: ErrInvalidGroup,
		},
		{
			name:    "single member",
			input:   domain.NewGroup{Name: "x", Members: []string{"A"}},
			wantErr: domain.ErrTooFewMembers,
		},
		{
			name:    "duplicate members",
			input:   domain.NewGroup{Name: "x", Members: []string{"A", "B", "A"}},
			wantErr: domain.ErrDuplicateMember,
		},
		{
			name:    "empty member",
			input:   domain.NewGroup{Name: "x", Members: []string{"A", ""}},
			wantErr: domain.ErrEmptyMemberName,
		},
		{
			name:    "too many members",
			input:   domain.NewGroup{Name: "x", Members: memberNames(domain.MaxMembers + 1)},
			wantErr: domain.ErrTooManyMembers,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			_, links, err := f.groups.CreateGroup(context.Background(), tt.input)
			require.ErrorIs(t, err, ErrInvalidGroup)
			require.ErrorIs(t, err, tt.wantErr)
			require.Nil(t, links)

			n, err := f.store.Groups().Count(context.Background())
			require.NoError(t, err)
			require.Zero(t, n)
		})
	}
}

func TestGetGroup(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	created, _, err := f.groups.CreateGroup(ctx, domain.NewGroup{Name: "Office", Members: []string{"Al", "Bo"}})
	require.NoError(t, err)

	got, err := f.groups.GetGroup(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, created.Members, got.Members)

	_, err = f.groups.GetGroup(ctx, "missing")
	require.ErrorIs(t, err, ErrGroupNotFound)
}

func TestAssignMember(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	group, _, err := f.groups.CreateGroup(ctx, domain.NewGroup{Name: "Office", Members: []string{"Al", "Bo", "Cy"}})
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, m := range group.Members {
		recipient, err := f.groups.AssignMember(ctx, group.ID, m)
		require.NoError(t, err)
		require.NotEqual(t, m, recipient)
		seen[recipient] = true
	}
	require.Len(t, seen, 3)

	_, err = f.groups.AssignMember(ctx, group.ID, "Zed")
	require.ErrorIs(t, err, ErrMemberNotFound)

	_, err = f.groups.AssignMember(ctx, "missing", "Al")
	require.ErrorIs(t, err, ErrGroupNotFound)
}

func TestGuestViewUnknownToken(t *testing.T) {
	f := newFixture(t)

	for _, token := range []string{"", "not-a-real-token", strings.Repeat("A", 43)} {
		_, err := f.groups.GuestView(context.Background(), token)
		require.ErrorIs(t, err, ErrGuestNotFound, "token %q", token)
	}
	require.Equal(t, 3.0, testutil.ToFloat64(f.metrics.guestLookups.WithLabelValues("not_found")))
}

func TestGuestViewOrphanedGuest(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	require.NoError(t, err)
	require.NoError(t, f.store.Guests().CreateGuest(ctx, cryptox.FingerprintToken(token), domain.Guest{
		GroupID: "gone",
		Member:  "Al",
	}))

	_, err = f.groups.GuestView(ctx, token)
	require.ErrorIs(t, err, ErrGuestNotFound)
}

func TestGuestURLTrimsTrailingSlash(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{base: "https://santa.test", want: "https://santa.test/v1/guests/tok"},
		{base: "https://santa.test/", want: "https://santa.test/v1/guests/tok"},
		{base: "", want: "/v1/guests/tok"},
	}

	for _, tt := range tests {
		s := &GroupService{BaseURL: tt.base}
		require.Equal(t, tt.want, s.guestURL("tok"))
	}
}
