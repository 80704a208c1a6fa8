package azure

import (
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/operationalinsights/armoperationalinsights"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
	"github.com/stretchr/testify/assert"
	"k8s.io/utils/ptr"

	"github.com/NVIDIA/la-clusterizer/pkg/clusterization"
)

const (
	wsResourceID      = "/subscriptions/s1/resourceGroups/rg/providers/Microsoft.OperationalInsights/workspaces/ws1"
	clusterResourceID = "/subscriptions/s1/resourceGroups/rg/providers/Microsoft.OperationalInsights/clusters/c1"
)

func TestSubscriptionFromARM(t *testing.T) {
	tests := []struct {
		name string
		in   *armsubscriptions.Subscription
		want clusterization.Subscription
		ok   bool
	}{
		{name: "nil", in: nil},
		{name: "missing id", in: &armsubscriptions.Subscription{DisplayName: ptr.To("x")}},
		{
			name: "full",
			in: &armsubscriptions.Subscription{
				ID:             ptr.To("/subscriptions/s1"),
				SubscriptionID: ptr.To("s1"),
				DisplayName:    ptr.To("Production"),
			},
			want: clusterization.Subscription{ID: "s1", Name: "Production"},
			ok:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := subscriptionFromARM(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClusterFromARM(t *testing.T) {
	capacity := armoperationalinsights.Capacity(1000)
	in := &armoperationalinsights.Cluster{
		ID:       ptr.To(clusterResourceID),
		Name:     ptr.To("c1"),
		Location: ptr.To("East US"),
		SKU:      &armoperationalinsights.ClusterSKU{Capacity: &capacity},
		Properties: &armoperationalinsights.ClusterProperties{
			AssociatedWorkspaces: []*armoperationalinsights.AssociatedWorkspace{
				{ResourceID: ptr.To(wsResourceID), WorkspaceName: ptr.To("ws1"), WorkspaceID: ptr.To("cust-1")},
				nil,
				{WorkspaceName: ptr.To("no-resource-id")},
			},
		},
	}

	got, ok := clusterFromARM(in)
	assert.True(t, ok)
	assert.Equal(t, clusterization.Cluster{
		ID:       clusterResourceID,
		Name:     "c1",
		Region:   "East US",
		Capacity: clusterization.Tier1000,
		Workspaces: []clusterization.WorkspaceRef{
			{ID: wsResourceID, Name: "ws1", CustomerID: "cust-1"},
		},
	}, got)
}

func TestClusterFromARM_Sparse(t *testing.T) {
	_, ok := clusterFromARM(nil)
	assert.False(t, ok)

	_, ok = clusterFromARM(&armoperationalinsights.Cluster{Name: ptr.To("c1")})
	assert.False(t, ok)

	got, ok := clusterFromARM(&armoperationalinsights.Cluster{ID: ptr.To(clusterResourceID)})
	assert.True(t, ok)
	assert.Zero(t, got.Capacity)
	assert.Empty(t, got.Workspaces)
	assert.Empty(t, got.Region)
}

func TestWorkspaceFromARM(t *testing.T) {
	tests := []struct {
		name string
		in   *armoperationalinsights.Workspace
		want clusterization.Workspace
		ok   bool
	}{
		{name: "nil", in: nil},
		{name: "missing id", in: &armoperationalinsights.Workspace{Name: ptr.To("ws1")}},
		{
			name: "unclustered",
			in: &armoperationalinsights.Workspace{
				ID:       ptr.To(wsResourceID),
				Name:     ptr.To("ws1"),
				Location: ptr.To("westus"),
				Properties: &armoperationalinsights.WorkspaceProperties{
					CustomerID: ptr.To("cust-1"),
				},
			},
			want: clusterization.Workspace{
				WorkspaceRef: clusterization.WorkspaceRef{ID: wsResourceID, Name: "ws1", CustomerID: "cust-1"},
				Region:       "westus",
			},
			ok: true,
		},
		{
			name: "clustered",
			in: &armoperationalinsights.Workspace{
				ID:       ptr.To(wsResourceID),
				Location: ptr.To("eastus"),
				Properties: &armoperationalinsights.WorkspaceProperties{
					CustomerID: ptr.To("cust-1"),
					Features: &armoperationalinsights.WorkspaceFeatures{
						ClusterResourceID: ptr.To(clusterResourceID),
					},
				},
			},
			want: clusterization.Workspace{
				WorkspaceRef: clusterization.WorkspaceRef{ID: wsResourceID, CustomerID: "cust-1"},
				Region:       "eastus",
				ClusterID:    clusterResourceID,
			},
			ok: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := workspaceFromARM(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.ClusterID != "", got.Clustered())
		})
	}
}
