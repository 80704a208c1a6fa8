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
	"log/slog"
	"slices"

	apperrors "github.com/NVIDIA/la-clusterizer/pkg/errors"
)

// Inventory is the per-region view of a subscription's dedicated clusters.
// Clusters and Volumes share the same keys in the same order.
type Inventory struct {
	// Clusters maps a normalized region to its dedicated cluster.
	Clusters RegionMap[Cluster]

	// Volumes maps a normalized region to the summed average daily usage of
	// the workspaces associated with that region's cluster.
	Volumes RegionMap[float64]
}

// HasCluster reports whether region has a dedicated cluster.
func (inv *Inventory) HasCluster(region string) bool {
	return inv != nil && inv.Clusters.Has(region)
}

// BuildInventory lists the dedicated clusters of sub and sums the sampled usage
// of every associated workspace per normalized region.
//
// Clusters without workspaces are kept with a volume of zero. When two clusters
// normalize to the same region the last one listed wins. Any listing or sampling
// failure aborts the build and no inventory is returned.
func BuildInventory(ctx context.Context, lister ClusterLister, sampler *Sampler, sub Subscription) (*Inventory, error) {
	clusters, err := lister.ListClusters(ctx, sub)
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeListing,
			"failed to list dedicated clusters", err,
			map[string]any{"subscription": sub.ID})
	}

	byRegion := newRegionMapBuilder[Cluster]()
	volumes := newRegionMapBuilder[float64]()

	for _, c := range clusters {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		c.Region = NormalizeRegion(c.Region)
		c.Workspaces = slices.Clone(c.Workspaces)

		if !c.Capacity.IsValid() {
			slog.Warn("cluster capacity is not a known commitment tier",
				"cluster", c.ID,
				"capacity", int64(c.Capacity),
				"tiers", tierLadder)
		}

		var volume float64
		for _, ws := range c.Workspaces {
			v, err := sampler.SampleDailyVolume(ctx, ws)
			if err != nil {
				return nil, fmt.Errorf("cluster %s: %w", c.ID, err)
			}
			volume += v
		}

		if prev, ok := byRegion.get(c.Region); ok {
			slog.Warn("multiple dedicated clusters in one region, keeping the last listed",
				"subscription", sub.ID,
				"region", c.Region,
				"replaced", prev.ID,
				"kept", c.ID)
		}
		byRegion.set(c.Region, c)
		volumes.set(c.Region, volume)

		slog.Debug("inventoried cluster",
			"cluster", c.ID,
			"region", c.Region,
			"capacity", int64(c.Capacity),
			"workspaces", len(c.Workspaces),
			"daily_gb", volume)
	}

	return &Inventory{
		Clusters: byRegion.build(),
		Volumes:  volumes.build(),
	}, nil
}
