package service

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/aussiebroadwan/santa/internal/santa/domain"
	"github.com/aussiebroadwan/santa/internal/santa/store/drivers/jsonfile"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	dir     string
	store   *jsonfile.Store
	assign  *AssignmentService
	groups  *GroupService
	metrics *Metrics
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dir := t.TempDir()
	st := jsonfile.NewStore(dir)
	require.NoError(t, st.Load(context.Background()))

	metrics := NewMetrics(nil)
	assign := NewAssignmentService(st, metrics, rand.New(rand.NewPCG(42, 1337)))

	return &fixture{
		dir:    dir,
		store:  st,
		assign: assign,
		groups: &GroupService{
			Store:       st,
			Assignments: assign,
			Metrics:     metrics,
			BaseURL:     "https://santa.test/",
		},
		metrics: metrics,
	}
}

// seedGroup writes a group straight into the store, bypassing validation.
func (f *fixture) seedGroup(t *testing.T, id string, members ...string) {
	t.Helper()
	require.NoError(t, f.store.Groups().CreateGroup(context.Background(), domain.Group{
		ID:        id,
		Name:      "Office",
		Members:   members,
		CreatedAt: time.Now().UTC(),
	}))
}
