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

package inventory

import (
	"github.com/NVIDIA/la-clusterizer/pkg/header"
)

// APIVersion is the API version of inventory documents.
const APIVersion = "clusterizer.nvidia.com/v1alpha1"

// Document is a static description of subscriptions, clusters, workspaces
// and their usage. It drives offline audits and is what the snapshot command
// captures from a live environment.
type Document struct {
	header.Header `json:",inline" yaml:",inline"`

	Subscriptions []Subscription `json:"subscriptions" yaml:"subscriptions"`
}

// Subscription lists the resources of one subscription.
type Subscription struct {
	ID         string      `json:"id" yaml:"id"`
	Name       string      `json:"name,omitempty" yaml:"name,omitempty"`
	Clusters   []Cluster   `json:"clusters,omitempty" yaml:"clusters,omitempty"`
	Workspaces []Workspace `json:"workspaces,omitempty" yaml:"workspaces,omitempty"`
}

// Cluster is a dedicated cluster. Workspaces holds the ids of its
// associated workspaces, each of which must be listed in the same subscription.
type Cluster struct {
	ID         string   `json:"id" yaml:"id"`
	Name       string   `json:"name,omitempty" yaml:"name,omitempty"`
	Location   string   `json:"location" yaml:"location"`
	Capacity   int64    `json:"capacity" yaml:"capacity"`
	Workspaces []string `json:"workspaces,omitempty" yaml:"workspaces,omitempty"`
}

// Workspace is a Log Analytics workspace.
type Workspace struct {
	ID         string `json:"id" yaml:"id"`
	Name       string `json:"name,omitempty" yaml:"name,omitempty"`
	CustomerID string `json:"customerId,omitempty" yaml:"customerId,omitempty"`
	Location   string `json:"location" yaml:"location"`
	ClusterID  string `json:"clusterId,omitempty" yaml:"clusterId,omitempty"`

	// Usage is the billable GB over the 30 day window, as the usage query
	// returns it. Nil means the query returns no row.
	Usage *float64 `json:"usage,omitempty" yaml:"usage,omitempty"`

	// UsageError makes the usage query fail with this message.
	UsageError string `json:"usageError,omitempty" yaml:"usageError,omitempty"`
}
