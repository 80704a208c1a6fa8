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

import "log/slog"

// Commitment tier thresholds, in GB/day. All comparisons are strict.
const (
	// UpgradeFactor is the multiple of a cluster's tier its volume must exceed
	// before an upgrade is recommended. Doubling is an approximation that does
	// not model the 2000 to 5000 step exactly.
	UpgradeFactor = 2.0

	// RemovalThreshold is the volume a cluster must stay at or above to be kept.
	RemovalThreshold = 500.0

	// CreationThreshold is the volume unclustered workspaces of a region must
	// exceed before a new cluster is recommended.
	CreationThreshold = 500.0
)

// Recommend applies the commitment tier rules to a subscription's inventory and
// proposed volumes. It is a pure function of its inputs: existing clusters are
// evaluated first in the order of clusters, then proposed regions in their
// order. The upgrade and removal rules are checked independently for each
// cluster.
func Recommend(clusters RegionMap[Cluster], volumes RegionMap[float64], proposed RegionMap[float64]) []Recommendation {
	recs := make([]Recommendation, 0)

	for region, c := range clusters.All() {
		volume, _ := volumes.Get(region)

		if volume > UpgradeFactor*c.Capacity.GBPerDay() {
			target, _ := c.Capacity.Next()
			slog.Debug("cluster exceeds its commitment tier",
				"cluster", c.ID,
				"region", region,
				"daily_gb", volume,
				"capacity", int64(c.Capacity),
				"target", int64(target))
			recs = append(recs, Recommendation{
				Kind:           KindUpgradeCluster,
				Region:         region,
				SubjectID:      c.ID,
				SubjectName:    c.Name,
				ObservedVolume: volume,
				Capacity:       c.Capacity,
				TargetCapacity: target,
			})
		}

		if volume < RemovalThreshold {
			slog.Debug("cluster below minimum commitment",
				"cluster", c.ID,
				"region", region,
				"daily_gb", volume)
			recs = append(recs, Recommendation{
				Kind:           KindRemoveCluster,
				Region:         region,
				SubjectID:      c.ID,
				SubjectName:    c.Name,
				ObservedVolume: volume,
				Capacity:       c.Capacity,
			})
		}
	}

	for region, volume := range proposed.All() {
		if volume > CreationThreshold {
			slog.Debug("unclustered region justifies a cluster",
				"region", region,
				"daily_gb", volume)
			recs = append(recs, Recommendation{
				Kind:           KindCreateCluster,
				Region:         region,
				SubjectID:      region,
				ObservedVolume: volume,
			})
		}
	}

	return recs
}
