package santa_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/santa/internal/santa/app"
	"github.com/aussiebroadwan/santa/pkg/santasdk"
	"github.com/stretchr/testify/require"
)

/*
 * Common helpers for santa service end-to-end tests. Each test gets its own
 * application over its own data directory, served on a loopback listener
 * and driven only through the SDK.
 */

const testBaseURL = "https://santa.test"

type service struct {
	baseURL string
	dataDir string
	client  *santasdk.SDKClient
}

func testConfig(dataDir string) app.Config {
	return app.Config{
		DataDir:             dataDir,
		BaseURL:             testBaseURL,
		BackupRetention:     5,
		FlushInterval:       time.Hour,
		Env:                 "test",
		LogLevel:            "error",
		LogFormat:           "text",
		ShutdownGracePeriod: time.Second,
	}
}

// startService starts the service over dataDir and returns a function that
// shuts it down, flushing the store.
func startService(t *testing.T, dataDir string) (*service, func()) {
	t.Helper()

	application, err := app.New(testConfig(dataDir))
	require.NoError(t, err)

	srv := httptest.NewServer(application.Handler())

	stopped := false
	stop := func() {
		if stopped {
			return
		}
		stopped = true
		srv.Close()
		require.NoError(t, application.Shutdown())
	}
	t.Cleanup(stop)

	return &service{
		baseURL: srv.URL,
		dataDir: dataDir,
		client:  santasdk.NewSDKClient(srv.URL),
	}, stop
}

// setupService starts a service over a fresh data directory.
func setupService(t *testing.T) *service {
	t.Helper()

	svc, _ := startService(t, t.TempDir())
	return svc
}

// createGroup creates a group and fails the test on error.
func createGroup(t *testing.T, svc *service, name string, members ...string) *santasdk.CreateGroupResponse {
	t.Helper()

	created, err := svc.client.CreateGroup(t.Context(), santasdk.CreateGroupRequest{
		Name:     name,
		Budget:   "$25",
		Criteria: "no socks",
		Members:  members,
	})
	require.NoError(t, err)
	require.Len(t, created.Links, len(members))
	return created
}

// recipients opens every link of a group and returns giver -> recipient.
func recipients(t *testing.T, svc *service, created *santasdk.CreateGroupResponse) map[string]string {
	t.Helper()

	out := make(map[string]string, len(created.Links))
	for _, link := range created.Links {
		guest, err := svc.client.GetGuest(t.Context(), link.Token)
		require.NoError(t, err)
		require.Equal(t, link.Member, guest.Member)
		out[guest.Member] = guest.Recipient
	}
	return out
}

// assertDerangement checks that every member gives to exactly one other
// member and receives from exactly one.
func assertDerangement(t *testing.T, members []string, got map[string]string) {
	t.Helper()

	require.Len(t, got, len(members))
	received := make(map[string]int, len(members))
	for _, m := range members {
		r, ok := got[m]
		require.True(t, ok, "%s has no recipient", m)
		require.NotEqual(t, m, r, "%s gives to themselves", m)
		received[r]++
	}
	for _, m := range members {
		require.Equal(t, 1, received[m], "%s receives %d gifts", m, received[m])
	}
}

// assertAPIError checks err is an *APIError with the given status and code.
func assertAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()

	var apiErr *santasdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
}
