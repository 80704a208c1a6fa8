package inventory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"

	"github.com/NVIDIA/la-clusterizer/pkg/clusterization"
	apperrors "github.com/NVIDIA/la-clusterizer/pkg/errors"
	"github.com/NVIDIA/la-clusterizer/pkg/header"
)

const sampleInventory = `kind: Inventory
apiVersion: clusterizer.nvidia.com/v1alpha1
subscriptions:
  - id: sub-1
    name: production
    clusters:
      - id: c-east
        name: east
        location: East US
        capacity: 500
        workspaces: [e1, e2]
    workspaces:
      - id: e1
        customerId: cust-e1
        location: eastus
        clusterId: c-east
        usage: 21000
      - id: e2
        location: eastus
        clusterId: c-east
        usage: 12000
      - id: w1
        location: westus
        usage: 7500
      - id: w2
        location: West US
        usage: 10500
`

func writeInventory(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventory.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	p, err := Load(t.Context(), writeInventory(t, sampleInventory))
	require.NoError(t, err)
	assert.Equal(t, header.KindInventory, p.Document().Kind)

	subs, err := p.ListSubscriptions(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []clusterization.Subscription{{ID: "sub-1", Name: "production"}}, subs)

	clusters, err := p.ListClusters(t.Context(), subs[0])
	require.NoError(t, err)
	require.Len(t, clusters, 1)
	assert.Equal(t, clusterization.Tier500, clusters[0].Capacity)
	assert.Equal(t, "East US", clusters[0].Region)
	assert.Equal(t, []clusterization.WorkspaceRef{{ID: "e1", CustomerID: "cust-e1"}, {ID: "e2"}}, clusters[0].Workspaces)

	workspaces, err := p.ListWorkspaces(t.Context(), subs[0])
	require.NoError(t, err)
	require.Len(t, workspaces, 4)
	assert.True(t, workspaces[0].Clustered())
	assert.False(t, workspaces[2].Clustered())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "unknown field", content: "subscriptions:\n  - id: s\n    bogus: 1\n"},
		{name: "wrong kind", content: "kind: ClusterizationReport\nsubscriptions: []\n"},
		{name: "malformed", content: "subscriptions: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(t.Context(), writeInventory(t, tt.content))
			require.Error(t, err)
			assert.Equal(t, apperrors.ErrCodeInvalidRequest, apperrors.CodeOf(err))
		})
	}

	_, err := Load(t.Context(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		doc  *Document
		ok   bool
	}{
		{name: "nil", doc: nil},
		{name: "empty", doc: &Document{}, ok: true},
		{name: "missing subscription id", doc: &Document{Subscriptions: []Subscription{{}}}},
		{name: "duplicate subscription", doc: &Document{Subscriptions: []Subscription{{ID: "a"}, {ID: "a"}}}},
		{
			name: "duplicate workspace across subscriptions",
			doc: &Document{Subscriptions: []Subscription{
				{ID: "a", Workspaces: []Workspace{{ID: "w"}}},
				{ID: "b", Workspaces: []Workspace{{ID: "w"}}},
			}},
		},
		{
			name: "dangling cluster reference",
			doc: &Document{Subscriptions: []Subscription{
				{ID: "a", Clusters: []Cluster{{ID: "c", Workspaces: []string{"missing"}}}},
			}},
		},
		{
			name: "reference to other subscription",
			doc: &Document{Subscriptions: []Subscription{
				{ID: "a", Clusters: []Cluster{{ID: "c", Workspaces: []string{"w"}}}},
				{ID: "b", Workspaces: []Workspace{{ID: "w"}}},
			}},
		},
		{
			name: "usage and error",
			doc: &Document{Subscriptions: []Subscription{
				{ID: "a", Workspaces: []Workspace{{ID: "w", Usage: ptr.To(1.0), UsageError: "x"}}},
			}},
		},
		{
			name: "duplicate cluster",
			doc: &Document{Subscriptions: []Subscription{
				{ID: "a", Clusters: []Cluster{{ID: "c"}, {ID: "c"}}},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.doc)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, apperrors.ErrCodeInvalidRequest, apperrors.CodeOf(err))
		})
	}
}

func TestProvider_QueryUsage(t *testing.T) {
	p, err := New(&Document{Subscriptions: []Subscription{{
		ID: "s",
		Workspaces: []Workspace{
			{ID: "ok", Usage: ptr.To(300.0)},
			{ID: "empty"},
			{ID: "broken", UsageError: "throttled"},
		},
	}}})
	require.NoError(t, err)

	rows, err := p.QueryUsage(t.Context(), clusterization.UsageQuery{Workspace: clusterization.WorkspaceRef{ID: "ok"}})
	require.NoError(t, err)
	assert.Equal(t, [][]any{{300.0}}, rows)

	rows, err = p.QueryUsage(t.Context(), clusterization.UsageQuery{Workspace: clusterization.WorkspaceRef{ID: "empty"}})
	require.NoError(t, err)
	assert.Empty(t, rows)

	_, err = p.QueryUsage(t.Context(), clusterization.UsageQuery{Workspace: clusterization.WorkspaceRef{ID: "broken"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "throttled")

	_, err = p.QueryUsage(t.Context(), clusterization.UsageQuery{Workspace: clusterization.WorkspaceRef{ID: "nope"}})
	assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.CodeOf(err))

	_, err = p.ListClusters(t.Context(), clusterization.Subscription{ID: "other"})
	assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.CodeOf(err))
}

func TestProvider_Audit(t *testing.T) {
	p, err := Load(t.Context(), writeInventory(t, sampleInventory))
	require.NoError(t, err)

	report, err := clusterization.NewRunner(p).Audit(t.Context())
	require.NoError(t, err)

	recs := report.Recommendations()
	require.Len(t, recs, 2)
	assert.Equal(t, clusterization.KindUpgradeCluster, recs[0].Kind)
	assert.Equal(t, "c-east", recs[0].SubjectID)
	assert.InDelta(t, 1100.0, recs[0].ObservedVolume, 1e-9)
	assert.Equal(t, clusterization.KindCreateCluster, recs[1].Kind)
	assert.Equal(t, "westus", recs[1].Region)
	assert.InDelta(t, 600.0, recs[1].ObservedVolume, 1e-9)
}
