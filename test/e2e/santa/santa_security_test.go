package santa_test

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestGuestViewIsRestricted checks a link reveals only its holder's
// recipient and never the member list.
func TestGuestViewIsRestricted(t *testing.T) {
	svc := setupService(t)
	created := createGroup(t, svc, "Office", "Al", "Bo", "Cy")

	resp, err := http.Get(svc.baseURL + "/v1/guests/" + created.Links[0].Token)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "no-store", resp.Header.Get("Cache-Control"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NotContains(t, string(body), `"members"`)
	require.NotContains(t, string(body), created.Group.ID)
}

// TestTokensNeverStored checks raw link tokens never reach the data files.
func TestTokensNeverStored(t *testing.T) {
	svc := setupService(t)
	created := createGroup(t, svc, "Office", "Al", "Bo", "Cy")

	for _, name := range []string{"groups.json", "assignments.json", "guests.json"} {
		data, err := os.ReadFile(filepath.Join(svc.dataDir, name))
		require.NoError(t, err)
		for _, link := range created.Links {
			require.NotContains(t, string(data), link.Token, name)
		}
	}
}

// TestTokensAreUnique checks every minted token differs.
func TestTokensAreUnique(t *testing.T) {
	svc := setupService(t)

	seen := map[string]bool{}
	for range 3 {
		created := createGroup(t, svc, "Office", "Al", "Bo", "Cy", "Di")
		for _, link := range created.Links {
			require.False(t, seen[link.Token], "duplicate token")
			require.GreaterOrEqual(t, len(link.Token), 43)
			seen[link.Token] = true
		}
	}
}
