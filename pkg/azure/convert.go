// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package azure

import (
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/operationalinsights/armoperationalinsights"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
	"k8s.io/utils/ptr"

	"github.com/NVIDIA/la-clusterizer/pkg/clusterization"
)

// subscriptionFromARM maps an ARM subscription. Entries without a
// subscription id are skipped.
func subscriptionFromARM(s *armsubscriptions.Subscription) (clusterization.Subscription, bool) {
	if s == nil {
		return clusterization.Subscription{}, false
	}
	id := ptr.Deref(s.SubscriptionID, "")
	if id == "" {
		return clusterization.Subscription{}, false
	}
	return clusterization.Subscription{
		ID:   id,
		Name: ptr.Deref(s.DisplayName, ""),
	}, true
}

// clusterFromARM maps a dedicated cluster with its associated workspaces.
// Region is passed through as reported; the core normalizes it.
func clusterFromARM(c *armoperationalinsights.Cluster) (clusterization.Cluster, bool) {
	if c == nil || ptr.Deref(c.ID, "") == "" {
		return clusterization.Cluster{}, false
	}

	out := clusterization.Cluster{
		ID:     *c.ID,
		Name:   ptr.Deref(c.Name, ""),
		Region: ptr.Deref(c.Location, ""),
	}

	if c.SKU != nil {
		out.Capacity = clusterization.CapacityTier(ptr.Deref(c.SKU.Capacity, 0))
	}

	if c.Properties != nil {
		out.Workspaces = make([]clusterization.WorkspaceRef, 0, len(c.Properties.AssociatedWorkspaces))
		for _, aw := range c.Properties.AssociatedWorkspaces {
			if aw == nil || ptr.Deref(aw.ResourceID, "") == "" {
				continue
			}
			out.Workspaces = append(out.Workspaces, clusterization.WorkspaceRef{
				ID:         *aw.ResourceID,
				Name:       ptr.Deref(aw.WorkspaceName, ""),
				CustomerID: ptr.Deref(aw.WorkspaceID, ""),
			})
		}
	}

	return out, true
}

// workspaceFromARM maps a workspace. The linked cluster comes from the
// clusterResourceId feature, empty when the workspace is not in a cluster.
func workspaceFromARM(w *armoperationalinsights.Workspace) (clusterization.Workspace, bool) {
	if w == nil || ptr.Deref(w.ID, "") == "" {
		return clusterization.Workspace{}, false
	}

	out := clusterization.Workspace{
		WorkspaceRef: clusterization.WorkspaceRef{
			ID:   *w.ID,
			Name: ptr.Deref(w.Name, ""),
		},
		Region: ptr.Deref(w.Location, ""),
	}

	if p := w.Properties; p != nil {
		out.CustomerID = ptr.Deref(p.CustomerID, "")
		if p.Features != nil {
			out.ClusterID = ptr.Deref(p.Features.ClusterResourceID, "")
		}
	}

	return out, true
}
