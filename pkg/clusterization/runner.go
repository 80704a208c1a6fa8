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
	"log/slog"

	apperrors "github.com/NVIDIA/la-clusterizer/pkg/errors"
)

// Runner drives clusterization runs against a Provider.
// Subscriptions are processed one at a time and every usage query is issued
// sequentially; a Runner keeps no state between runs.
type Runner struct {
	// Version is the runner version (typically the CLI version).
	Version string

	provider Provider
	sampler  *Sampler
}

// Option is a functional option for configuring the Runner.
type Option func(*Runner)

// WithVersion returns an Option that sets the Runner version string.
func WithVersion(version string) Option {
	return func(r *Runner) {
		r.Version = version
	}
}

// WithSampler returns an Option that replaces the default usage sampler.
func WithSampler(s *Sampler) Option {
	return func(r *Runner) {
		r.sampler = s
	}
}

// NewRunner creates a Runner backed by p.
func NewRunner(p Provider, opts ...Option) *Runner {
	r := &Runner{provider: p}
	for _, opt := range opts {
		opt(r)
	}
	if r.sampler == nil {
		r.sampler = NewSampler(p)
	}
	return r
}

// RunClusterization audits a single subscription: it builds the cluster
// inventory, classifies every workspace and applies the tier rules.
// Reassignments come first, followed by the rule output. On error no
// recommendation is returned.
func (r *Runner) RunClusterization(ctx context.Context, sub Subscription) ([]Recommendation, error) {
	res, err := r.run(ctx, sub)
	if err != nil {
		return nil, err
	}
	return res.Recommendations, nil
}

func (r *Runner) run(ctx context.Context, sub Subscription) (*SubscriptionResult, error) {
	if r.provider == nil {
		return nil, apperrors.New(apperrors.ErrCodeInternal, "runner has no provider")
	}

	inv, err := BuildInventory(ctx, r.provider, r.sampler, sub)
	if err != nil {
		subscriptionRunTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	placement, err := Classify(ctx, r.provider, r.sampler, sub, inv)
	if err != nil {
		subscriptionRunTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	ruled := Recommend(inv.Clusters, inv.Volumes, placement.Proposed)

	recs := make([]Recommendation, 0, len(placement.Reassignments)+len(ruled))
	recs = append(recs, placement.Reassignments...)
	recs = append(recs, ruled...)

	for _, rec := range recs {
		recommendationTotal.WithLabelValues(rec.Kind.String()).Inc()
	}
	subscriptionRunTotal.WithLabelValues("success").Inc()

	slog.Info("subscription audited",
		"subscription", sub.ID,
		"name", sub.Name,
		"clusters", inv.Clusters.Len(),
		"proposed_regions", placement.Proposed.Len(),
		"recommendations", len(recs))

	return &SubscriptionResult{
		Subscription:    sub,
		Clusters:        inv.Clusters.Len(),
		ProposedRegions: placement.Proposed.Len(),
		Recommendations: recs,
	}, nil
}
