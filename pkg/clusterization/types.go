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

package clusterization

import (
	"context"
	"fmt"
	"slices"
	"time"
)

// CapacityTier is a dedicated cluster commitment tier in GB/day.
type CapacityTier int64

// Commitment tier ladder.
const (
	Tier500  CapacityTier = 500
	Tier1000 CapacityTier = 1000
	Tier2000 CapacityTier = 2000
	Tier5000 CapacityTier = 5000
)

var tierLadder = []CapacityTier{Tier500, Tier1000, Tier2000, Tier5000}

// SupportedTiers returns the commitment tier ladder in ascending order.
func SupportedTiers() []CapacityTier {
	return slices.Clone(tierLadder)
}

// IsValid reports whether the tier is on the ladder.
func (t CapacityTier) IsValid() bool {
	return slices.Contains(tierLadder, t)
}

// Next returns the smallest ladder tier strictly above t.
// The second value is false when t is at or above the top of the ladder.
func (t CapacityTier) Next() (CapacityTier, bool) {
	for _, c := range tierLadder {
		if c > t {
			return c, true
		}
	}
	return 0, false
}

// GBPerDay returns the tier as a daily volume.
func (t CapacityTier) GBPerDay() float64 {
	return float64(t)
}

// Subscription is the scoping boundary of a single clusterization run.
type Subscription struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// String returns "name (id)" or the id when the name is unknown.
func (s Subscription) String() string {
	if s.Name == "" {
		return s.ID
	}
	return fmt.Sprintf("%s (%s)", s.Name, s.ID)
}

// WorkspaceRef identifies a workspace for a usage query.
type WorkspaceRef struct {
	// ID is the resource id of the workspace.
	ID string `json:"id" yaml:"id"`

	// Name is the workspace display name.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// CustomerID is the workspace id used by the logs query API.
	CustomerID string `json:"customerId,omitempty" yaml:"customerId,omitempty"`
}

// Workspace is a telemetry workspace and its current cluster association.
type Workspace struct {
	WorkspaceRef `json:",inline" yaml:",inline"`

	// Region is the normalized region of the workspace.
	Region string `json:"region" yaml:"region"`

	// ClusterID is the resource id of the dedicated cluster the workspace is
	// linked to. Empty when the workspace is not in any cluster.
	ClusterID string `json:"clusterId,omitempty" yaml:"clusterId,omitempty"`
}

// Clustered reports whether the workspace is currently linked to a cluster.
func (w Workspace) Clustered() bool {
	return w.ClusterID != ""
}

// Cluster is a dedicated capacity cluster and its associated workspaces.
type Cluster struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Region is the normalized region of the cluster.
	Region string `json:"region" yaml:"region"`

	Capacity CapacityTier `json:"capacity" yaml:"capacity"`

	Workspaces []WorkspaceRef `json:"workspaces,omitempty" yaml:"workspaces,omitempty"`
}

// UsageQuery is a single billable usage query against one workspace.
type UsageQuery struct {
	Workspace WorkspaceRef
	Query     string
	Start     time.Time
	End       time.Time
}

// SubscriptionLister enumerates the subscriptions visible to the ambient identity.
type SubscriptionLister interface {
	ListSubscriptions(ctx context.Context) ([]Subscription, error)
}

// ClusterLister enumerates the dedicated clusters of a subscription.
// Regions may be returned unnormalized.
type ClusterLister interface {
	ListClusters(ctx context.Context, sub Subscription) ([]Cluster, error)
}

// WorkspaceLister enumerates the workspaces of a subscription.
// Regions may be returned unnormalized.
type WorkspaceLister interface {
	ListWorkspaces(ctx context.Context, sub Subscription) ([]Workspace, error)
}

// UsageQuerier executes a usage query and returns the rows of the primary result table.
type UsageQuerier interface {
	QueryUsage(ctx context.Context, q UsageQuery) ([][]any, error)
}

// Provider bundles every collaborator an audit needs.
type Provider interface {
	SubscriptionLister
	ClusterLister
	WorkspaceLister
	UsageQuerier
}
