package inventory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/la-clusterizer/pkg/clusterization"
	"github.com/NVIDIA/la-clusterizer/pkg/header"
)

// failingQueries wraps a Provider and fails usage queries for some workspaces.
type failingQueries struct {
	*Provider
	fail map[string]bool
	seen []clusterization.UsageQuery
}

func (f *failingQueries) QueryUsage(ctx context.Context, q clusterization.UsageQuery) ([][]any, error) {
	f.seen = append(f.seen, q)
	if f.fail[q.Workspace.ID] {
		return nil, errors.New("throttled")
	}
	return f.Provider.QueryUsage(ctx, q)
}

func TestCapture(t *testing.T) {
	src, err := Load(t.Context(), writeInventory(t, sampleInventory))
	require.NoError(t, err)
	src.doc.Subscriptions[0].Workspaces[3].Usage = nil
	src.workspaces["w2"] = src.doc.Subscriptions[0].Workspaces[3]

	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	wrapped := &failingQueries{Provider: src, fail: map[string]bool{"w1": true}}

	doc, err := Capture(t.Context(), wrapped, WithVersion("v9"), WithClock(func() time.Time { return now }))
	require.NoError(t, err)

	assert.Equal(t, header.KindInventory, doc.Kind)
	assert.Equal(t, APIVersion, doc.APIVersion)
	assert.Equal(t, "v9", doc.Metadata[header.MetadataVersion])

	require.Len(t, doc.Subscriptions, 1)
	s := doc.Subscriptions[0]
	assert.Equal(t, "production", s.Name)
	require.Len(t, s.Clusters, 1)
	assert.Equal(t, []string{"e1", "e2"}, s.Clusters[0].Workspaces)
	assert.Equal(t, int64(500), s.Clusters[0].Capacity)

	require.Len(t, s.Workspaces, 4)
	require.NotNil(t, s.Workspaces[0].Usage)
	assert.InDelta(t, 21000.0, *s.Workspaces[0].Usage, 1e-9)
	assert.Equal(t, "throttled", s.Workspaces[2].UsageError)
	assert.Nil(t, s.Workspaces[2].Usage)
	assert.Nil(t, s.Workspaces[3].Usage)
	assert.Empty(t, s.Workspaces[3].UsageError)

	require.Len(t, wrapped.seen, 4)
	assert.Equal(t, now, wrapped.seen[0].End)
	assert.Equal(t, now.AddDate(0, 0, -30), wrapped.seen[0].Start)

	// the capture replays into a valid provider
	replay, err := New(doc)
	require.NoError(t, err)
	_, err = clusterization.NewRunner(replay).Audit(t.Context())
	assert.Error(t, err, "recorded query failure must fail the replayed audit")
}
