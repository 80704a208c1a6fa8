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

// Kind is the type of a clusterization recommendation.
type Kind string

const (
	// KindCreateCluster proposes a new dedicated cluster for a region whose
	// unclustered workspaces ingest enough to justify one.
	KindCreateCluster Kind = "CreateCluster"

	// KindUpgradeCluster proposes moving a cluster to the next commitment tier.
	KindUpgradeCluster Kind = "UpgradeCluster"

	// KindRemoveCluster proposes removing an underused cluster.
	KindRemoveCluster Kind = "RemoveCluster"

	// KindReassignWorkspace proposes linking a workspace to the cluster of its
	// region. It is also emitted for a workspace linked to a cluster while its
	// own region has none.
	KindReassignWorkspace Kind = "ReassignWorkspace"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid reports whether k is a known recommendation kind.
func (k Kind) IsValid() bool {
	switch k {
	case KindCreateCluster, KindUpgradeCluster, KindRemoveCluster, KindReassignWorkspace:
		return true
	default:
		return false
	}
}

// SupportedKinds returns all recommendation kinds.
func SupportedKinds() []Kind {
	return []Kind{KindCreateCluster, KindUpgradeCluster, KindRemoveCluster, KindReassignWorkspace}
}

// Recommendation is a single structured finding of a clusterization run.
type Recommendation struct {
	// Kind is the recommended action.
	Kind Kind `json:"kind" yaml:"kind"`

	// Region is the normalized region the recommendation applies to.
	Region string `json:"region" yaml:"region"`

	// SubjectID identifies what the action applies to: the cluster id for
	// upgrade and removal, the workspace id for reassignment and the region
	// for creation.
	SubjectID string `json:"subjectId" yaml:"subjectId"`

	// SubjectName is the display name of the subject, when known.
	SubjectName string `json:"subjectName,omitempty" yaml:"subjectName,omitempty"`

	// ObservedVolume is the average daily billable ingestion in GB that
	// triggered the recommendation.
	ObservedVolume float64 `json:"observedGBPerDay" yaml:"observedGBPerDay"`

	// Capacity is the current commitment tier of the cluster.
	Capacity CapacityTier `json:"capacity,omitempty" yaml:"capacity,omitempty"`

	// TargetCapacity is the proposed commitment tier for an upgrade. Zero when
	// the cluster is already at the top of the ladder.
	TargetCapacity CapacityTier `json:"targetCapacity,omitempty" yaml:"targetCapacity,omitempty"`

	// ClusterID is the cluster a reassigned workspace should join, when the
	// region already has one.
	ClusterID string `json:"clusterId,omitempty" yaml:"clusterId,omitempty"`

	// CurrentClusterID is the cluster a reassigned workspace is linked to today.
	CurrentClusterID string `json:"currentClusterId,omitempty" yaml:"currentClusterId,omitempty"`
}
