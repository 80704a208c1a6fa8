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
	"context"
	"log/slog"
	"time"

	"github.com/NVIDIA/la-clusterizer/pkg/clusterization"
	apperrors "github.com/NVIDIA/la-clusterizer/pkg/errors"
	"github.com/NVIDIA/la-clusterizer/pkg/header"
)

// CaptureOption configures Capture.
type CaptureOption func(*capture)

type capture struct {
	version string
	now     func() time.Time
}

// WithVersion records the producing version in the document header.
func WithVersion(v string) CaptureOption {
	return func(c *capture) {
		c.version = v
	}
}

// WithClock sets the end of the usage window.
func WithClock(now func() time.Time) CaptureOption {
	return func(c *capture) {
		c.now = now
	}
}

// Capture records what p exposes into a Document that Load can replay.
//
// Listing failures abort the capture. A failed usage query is recorded as
// the workspace usageError so the replayed audit fails the same way.
// Cluster references to workspaces outside the subscription are dropped.
func Capture(ctx context.Context, p clusterization.Provider, opts ...CaptureOption) (*Document, error) {
	c := &capture{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}

	subs, err := p.ListSubscriptions(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeListing, "failed to list subscriptions", err)
	}

	doc := &Document{Subscriptions: make([]Subscription, 0, len(subs))}
	doc.Init(header.KindInventory, APIVersion, c.version)

	end := c.now().UTC()
	query := clusterization.BillableUsageQuery(clusterization.UsageWindowDays)
	start := end.AddDate(0, 0, -clusterization.UsageWindowDays)

	for _, sub := range subs {
		s, err := c.subscription(ctx, p, sub, query, start, end)
		if err != nil {
			return nil, err
		}
		doc.Subscriptions = append(doc.Subscriptions, *s)
	}

	return doc, nil
}

func (c *capture) subscription(ctx context.Context, p clusterization.Provider, sub clusterization.Subscription,
	query string, start, end time.Time) (*Subscription, error) {
	clusters, err := p.ListClusters(ctx, sub)
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeListing, "failed to list clusters", err,
			map[string]any{"subscription": sub.ID})
	}
	workspaces, err := p.ListWorkspaces(ctx, sub)
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeListing, "failed to list workspaces", err,
			map[string]any{"subscription": sub.ID})
	}

	out := &Subscription{
		ID:         sub.ID,
		Name:       sub.Name,
		Clusters:   make([]Cluster, 0, len(clusters)),
		Workspaces: make([]Workspace, 0, len(workspaces)),
	}

	known := make(map[string]bool, len(workspaces))
	for _, w := range workspaces {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		known[w.ID] = true

		rec := Workspace{
			ID:         w.ID,
			Name:       w.Name,
			CustomerID: w.CustomerID,
			Location:   w.Region,
			ClusterID:  w.ClusterID,
		}

		rows, err := p.QueryUsage(ctx, clusterization.UsageQuery{
			Workspace: w.WorkspaceRef,
			Query:     query,
			Start:     start,
			End:       end,
		})
		if err != nil {
			rec.UsageError = err.Error()
			slog.Warn("usage query failed during capture", "workspace", w.ID, "error", err)
		} else if v, verr := clusterization.UsageValue(rows); verr == nil {
			rec.Usage = &v
		}
		out.Workspaces = append(out.Workspaces, rec)
	}

	for _, cl := range clusters {
		refs := make([]string, 0, len(cl.Workspaces))
		for _, r := range cl.Workspaces {
			if !known[r.ID] {
				slog.Warn("dropping cluster workspace outside subscription",
					"cluster", cl.ID,
					"workspace", r.ID,
					"subscription", sub.ID)
				continue
			}
			refs = append(refs, r.ID)
		}
		out.Clusters = append(out.Clusters, Cluster{
			ID:         cl.ID,
			Name:       cl.Name,
			Location:   cl.Region,
			Capacity:   int64(cl.Capacity),
			Workspaces: refs,
		})
	}

	slog.Info("captured subscription",
		"subscription", sub.ID,
		"clusters", len(out.Clusters),
		"workspaces", len(out.Workspaces))

	return out, nil
}
