package santa_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/aussiebroadwan/santa/pkg/santasdk"
	"github.com/stretchr/testify/require"
)

// TestGroupLifecycle creates a group, opens every link, and checks the
// assignment is a derangement that the assign endpoint agrees with.
func TestGroupLifecycle(t *testing.T) {
	svc := setupService(t)
	members := []string{"Al", "Bo", "Cy"}

	created := createGroup(t, svc, "Office", members...)
	for _, link := range created.Links {
		require.Equal(t, testBaseURL+"/v1/guests/"+link.Token, link.URL)
	}

	got := recipients(t, svc, created)
	assertDerangement(t, members, got)

	for giver, recipient := range got {
		assigned, err := svc.client.Assign(t.Context(), created.Group.ID, giver)
		require.NoError(t, err)
		require.Equal(t, recipient, assigned.Recipient)
	}

	group, err := svc.client.GetGroup(t.Context(), created.Group.ID)
	require.NoError(t, err)
	require.Equal(t, members, group.Members)
	require.Equal(t, "$25", group.Budget)
}

// TestTwoMemberGroup checks the smallest group swaps its members.
func TestTwoMemberGroup(t *testing.T) {
	svc := setupService(t)

	created := createGroup(t, svc, "Pair", "Ann", "Ben")
	require.Equal(t, map[string]string{"Ann": "Ben", "Ben": "Ann"}, recipients(t, svc, created))
}

// TestLargestGroup checks a group at the member limit.
func TestLargestGroup(t *testing.T) {
	svc := setupService(t)

	members := make([]string, santasdk.MaxMembers)
	for i := range members {
		members[i] = fmt.Sprintf("Member %02d", i)
	}
	created := createGroup(t, svc, "Everyone", members...)

	// Lookups are rate limited, so sample a subset of givers.
	seen := map[string]bool{}
	for _, m := range members[:20] {
		assigned, err := svc.client.Assign(t.Context(), created.Group.ID, m)
		require.NoError(t, err)
		require.NotEqual(t, m, assigned.Recipient)
		require.Contains(t, members, assigned.Recipient)
		require.False(t, seen[assigned.Recipient], "%s receives twice", assigned.Recipient)
		seen[assigned.Recipient] = true
	}
}

// TestConcurrentFirstRequests opens every link of a fresh group at once;
// all of them must see the same single assignment.
func TestConcurrentFirstRequests(t *testing.T) {
	svc := setupService(t)
	members := []string{"Al", "Bo", "Cy", "Di", "Ed", "Flo"}
	created := createGroup(t, svc, "Rush", members...)

	got := make(map[string]string, len(members))
	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, link := range created.Links {
		wg.Add(1)
		go func() {
			defer wg.Done()
			guest, err := svc.client.GetGuest(t.Context(), link.Token)
			if !assertNoError(t, err) {
				return
			}
			mu.Lock()
			got[guest.Member] = guest.Recipient
			mu.Unlock()
		}()
	}
	wg.Wait()

	assertDerangement(t, members, got)
	require.Equal(t, got, recipients(t, svc, created), "assignment changed after first computation")
}

func assertNoError(t *testing.T, err error) bool {
	t.Helper()
	if err != nil {
		t.Errorf("unexpected error: %v", err)
		return false
	}
	return true
}

// TestCreateGroupValidation covers the rejected inputs.
func TestCreateGroupValidation(t *testing.T) {
	svc := setupService(t)

	tests := []struct {
		name  string
		req   santasdk.CreateGroupRequest
		field string
	}{
		{"no name", santasdk.CreateGroupRequest{Members: []string{"Al", "Bo"}}, "name"},
		{"one member", santasdk.CreateGroupRequest{Name: "x", Members: []string{"Al"}}, "members"},
		{"duplicate ignoring case", santasdk.CreateGroupRequest{Name: "x", Members: []string{"Al", "aL"}}, "members[1]"},
		{"blank member", santasdk.CreateGroupRequest{Name: "x", Members: []string{"Al", "\u200b"}}, "members[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.client.CreateGroup(t.Context(), tt.req)
			assertAPIError(t, err, http.StatusBadRequest, santasdk.ErrorCodeValidation)

			var apiErr *santasdk.APIError
			require.ErrorAs(t, err, &apiErr)
			require.Contains(t, apiErr.Details, tt.field)
		})
	}
}

// TestNotFound covers unknown groups, members, and links.
func TestNotFound(t *testing.T) {
	svc := setupService(t)
	created := createGroup(t, svc, "Office", "Al", "Bo")

	_, err := svc.client.GetGroup(t.Context(), "01J00000000000000000000000")
	assertAPIError(t, err, http.StatusNotFound, santasdk.ErrorCodeGroupNotFound)

	_, err = svc.client.Assign(t.Context(), created.Group.ID, "Zed")
	assertAPIError(t, err, http.StatusNotFound, santasdk.ErrorCodeMemberNotFound)

	_, err = svc.client.GetGuest(t.Context(), "definitely-not-a-token")
	assertAPIError(t, err, http.StatusNotFound, santasdk.ErrorCodeGuestNotFound)
}
