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
	"fmt"
	"log/slog"

	"github.com/NVIDIA/la-clusterizer/pkg/clusterization"
	apperrors "github.com/NVIDIA/la-clusterizer/pkg/errors"
	"github.com/NVIDIA/la-clusterizer/pkg/header"
	"github.com/NVIDIA/la-clusterizer/pkg/serializer"
)

// Provider serves a Document through clusterization.Provider.
type Provider struct {
	doc        *Document
	subs       map[string]*Subscription
	workspaces map[string]Workspace
}

var _ clusterization.Provider = (*Provider)(nil)

// Load reads a Document from a file, http(s) URL or cm://namespace/name and
// validates it. Unknown fields are rejected.
func Load(ctx context.Context, path string, opts ...serializer.ConfigMapOption) (*Provider, error) {
	doc, err := serializer.FromSource[Document](ctx, path, serializer.Source{
		Strict:    true,
		ConfigMap: opts,
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, fmt.Sprintf("failed to load inventory %q", path), err)
	}

	p, err := New(doc)
	if err != nil {
		return nil, err
	}

	slog.Info("loaded inventory",
		"path", path,
		"subscriptions", len(doc.Subscriptions),
		"workspaces", len(p.workspaces))

	return p, nil
}

// New validates doc and returns a Provider over it.
func New(doc *Document) (*Provider, error) {
	if err := Validate(doc); err != nil {
		return nil, err
	}

	p := &Provider{
		doc:        doc,
		subs:       make(map[string]*Subscription, len(doc.Subscriptions)),
		workspaces: make(map[string]Workspace),
	}
	for i := range doc.Subscriptions {
		s := &doc.Subscriptions[i]
		p.subs[s.ID] = s
		for _, w := range s.Workspaces {
			p.workspaces[w.ID] = w
		}
	}
	return p, nil
}

// Validate checks that ids are present and unique and that every cluster
// workspace reference resolves within its subscription.
func Validate(doc *Document) error {
	if doc == nil {
		return apperrors.New(apperrors.ErrCodeInvalidRequest, "inventory is empty")
	}
	if doc.Kind != "" && doc.Kind != header.KindInventory {
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest, "document is not an inventory",
			map[string]any{"kind": doc.Kind})
	}

	subIDs := make(map[string]bool, len(doc.Subscriptions))
	wsIDs := make(map[string]bool)

	for i, s := range doc.Subscriptions {
		if s.ID == "" {
			return invalid("subscription %d has no id", i)
		}
		if subIDs[s.ID] {
			return invalid("duplicate subscription %s", s.ID)
		}
		subIDs[s.ID] = true

		local := make(map[string]bool, len(s.Workspaces))
		for j, w := range s.Workspaces {
			if w.ID == "" {
				return invalid("subscription %s: workspace %d has no id", s.ID, j)
			}
			if wsIDs[w.ID] {
				return invalid("duplicate workspace %s", w.ID)
			}
			if w.Usage != nil && w.UsageError != "" {
				return invalid("workspace %s sets both usage and usageError", w.ID)
			}
			wsIDs[w.ID] = true
			local[w.ID] = true
		}

		clusterIDs := make(map[string]bool, len(s.Clusters))
		for j, c := range s.Clusters {
			if c.ID == "" {
				return invalid("subscription %s: cluster %d has no id", s.ID, j)
			}
			if clusterIDs[c.ID] {
				return invalid("duplicate cluster %s", c.ID)
			}
			clusterIDs[c.ID] = true
			for _, ref := range c.Workspaces {
				if !local[ref] {
					return invalid("cluster %s references unknown workspace %s", c.ID, ref)
				}
			}
		}
	}
	return nil
}

func invalid(format string, args ...any) error {
	return apperrors.New(apperrors.ErrCodeInvalidRequest, fmt.Sprintf(format, args...))
}

// Document returns the underlying inventory.
func (p *Provider) Document() *Document {
	return p.doc
}

// ListSubscriptions returns the subscriptions in document order.
func (p *Provider) ListSubscriptions(_ context.Context) ([]clusterization.Subscription, error) {
	out := make([]clusterization.Subscription, 0, len(p.doc.Subscriptions))
	for _, s := range p.doc.Subscriptions {
		out = append(out, clusterization.Subscription{ID: s.ID, Name: s.Name})
	}
	return out, nil
}

// ListClusters returns the clusters of sub with resolved workspace references.
func (p *Provider) ListClusters(_ context.Context, sub clusterization.Subscription) ([]clusterization.Cluster, error) {
	s, err := p.subscription(sub)
	if err != nil {
		return nil, err
	}

	out := make([]clusterization.Cluster, 0, len(s.Clusters))
	for _, c := range s.Clusters {
		refs := make([]clusterization.WorkspaceRef, 0, len(c.Workspaces))
		for _, id := range c.Workspaces {
			refs = append(refs, p.workspaces[id].ref())
		}
		out = append(out, clusterization.Cluster{
			ID:         c.ID,
			Name:       c.Name,
			Region:     c.Location,
			Capacity:   clusterization.CapacityTier(c.Capacity),
			Workspaces: refs,
		})
	}
	return out, nil
}

// ListWorkspaces returns the workspaces of sub in document order.
func (p *Provider) ListWorkspaces(_ context.Context, sub clusterization.Subscription) ([]clusterization.Workspace, error) {
	s, err := p.subscription(sub)
	if err != nil {
		return nil, err
	}

	out := make([]clusterization.Workspace, 0, len(s.Workspaces))
	for _, w := range s.Workspaces {
		out = append(out, clusterization.Workspace{
			WorkspaceRef: w.ref(),
			Region:       w.Location,
			ClusterID:    w.ClusterID,
		})
	}
	return out, nil
}

// QueryUsage answers from the recorded usage of the workspace. The query text
// and window are not interpreted.
func (p *Provider) QueryUsage(ctx context.Context, q clusterization.UsageQuery) ([][]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	w, ok := p.workspaces[q.Workspace.ID]
	if !ok {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeNotFound, "workspace not in inventory",
			map[string]any{"workspace": q.Workspace.ID})
	}
	if w.UsageError != "" {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeUnavailable, w.UsageError,
			map[string]any{"workspace": w.ID})
	}
	if w.Usage == nil {
		return [][]any{}, nil
	}
	return [][]any{{*w.Usage}}, nil
}

func (p *Provider) subscription(sub clusterization.Subscription) (*Subscription, error) {
	s, ok := p.subs[sub.ID]
	if !ok {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeNotFound, "subscription not in inventory",
			map[string]any{"subscription": sub.ID})
	}
	return s, nil
}

func (w Workspace) ref() clusterization.WorkspaceRef {
	return clusterization.WorkspaceRef{ID: w.ID, Name: w.Name, CustomerID: w.CustomerID}
}
