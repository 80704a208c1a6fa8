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

	apperrors "github.com/NVIDIA/la-clusterizer/pkg/errors"
)

// Placement is the outcome of classifying every workspace of a subscription
// against its cluster inventory.
type Placement struct {
	// Reassignments holds one ReassignWorkspace recommendation per misplaced
	// workspace, in listing order.
	Reassignments []Recommendation

	// Proposed maps each region without a cluster to the summed average daily
	// usage of its unclustered workspaces.
	Proposed RegionMap[float64]
}

// Classify decides, for every workspace of sub, whether it sits where the
// inventory says it should:
//
//   - region has a cluster, workspace unclustered: reassign to that cluster
//   - region has a cluster, workspace clustered: correctly placed
//   - region has no cluster, workspace clustered: reassign (inconsistent link)
//   - region has no cluster, workspace unclustered: its usage counts toward
//     a proposed cluster for the region
//
// Any listing or sampling failure aborts classification.
func Classify(ctx context.Context, lister WorkspaceLister, sampler *Sampler, sub Subscription, inv *Inventory) (*Placement, error) {
	workspaces, err := lister.ListWorkspaces(ctx, sub)
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeListing,
			"failed to list workspaces", err,
			map[string]any{"subscription": sub.ID})
	}

	if inv == nil {
		inv = &Inventory{}
	}

	proposed := newRegionMapBuilder[float64]()
	reassign := make([]Recommendation, 0)

	for _, ws := range workspaces {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		region := NormalizeRegion(ws.Region)

		if cluster, ok := inv.Clusters.Get(region); ok {
			if !ws.Clustered() {
				slog.Debug("workspace should join regional cluster",
					"workspace", ws.ID,
					"region", region,
					"cluster", cluster.ID)
				reassign = append(reassign, reassignment(ws, region, cluster.ID))
			}
			continue
		}

		if ws.Clustered() {
			slog.Debug("workspace linked to a cluster outside its region",
				"workspace", ws.ID,
				"region", region,
				"current_cluster", ws.ClusterID)
			reassign = append(reassign, reassignment(ws, region, ""))
			continue
		}

		v, err := sampler.SampleDailyVolume(ctx, ws.WorkspaceRef)
		if err != nil {
			return nil, fmt.Errorf("workspace %s: %w", ws.ID, err)
		}
		acc, _ := proposed.get(region)
		proposed.set(region, acc+v)
	}

	return &Placement{
		Reassignments: reassign,
		Proposed:      proposed.build(),
	}, nil
}

func reassignment(ws Workspace, region, clusterID string) Recommendation {
	return Recommendation{
		Kind:             KindReassignWorkspace,
		Region:           region,
		SubjectID:        ws.ID,
		SubjectName:      ws.Name,
		ClusterID:        clusterID,
		CurrentClusterID: ws.ClusterID,
	}
}
