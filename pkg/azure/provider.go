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
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/monitor/azquery"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/operationalinsights/armoperationalinsights"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
	"golang.org/x/time/rate"

	"github.com/NVIDIA/la-clusterizer/pkg/clusterization"
	"github.com/NVIDIA/la-clusterizer/pkg/defaults"
	apperrors "github.com/NVIDIA/la-clusterizer/pkg/errors"
)

// Provider implements clusterization.Provider against Azure Resource Manager
// and the Log Analytics query API.
type Provider struct {
	cred    azcore.TokenCredential
	armOpts *arm.ClientOptions
	subs    *armsubscriptions.Client
	logs    logsClient
	limiter *rate.Limiter

	applicationID string
	listTimeout   time.Duration
	queryTimeout  time.Duration
	serverWait    time.Duration
}

var _ clusterization.Provider = (*Provider)(nil)

// Option is a functional option for configuring the Provider.
type Option func(*Provider)

// WithQueryRate limits usage queries to perSecond with the given burst.
// A non-positive rate disables limiting.
func WithQueryRate(perSecond float64, burst int) Option {
	return func(p *Provider) {
		if perSecond <= 0 {
			p.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		if burst < 1 {
			burst = 1
		}
		p.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// WithQueryTimeout sets the client-side bound of a single usage query.
func WithQueryTimeout(d time.Duration) Option {
	return func(p *Provider) {
		if d > 0 {
			p.queryTimeout = d
		}
	}
}

// WithListTimeout sets the bound of a single paged listing.
func WithListTimeout(d time.Duration) Option {
	return func(p *Provider) {
		if d > 0 {
			p.listTimeout = d
		}
	}
}

// WithApplicationID sets the application id sent in the SDK telemetry header.
func WithApplicationID(id string) Option {
	return func(p *Provider) {
		p.applicationID = id
	}
}

// NewProvider creates a Provider authenticated with cred.
func NewProvider(cred azcore.TokenCredential, opts ...Option) (*Provider, error) {
	if cred == nil {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "credential is required")
	}

	p := &Provider{
		cred:         cred,
		limiter:      rate.NewLimiter(rate.Limit(defaults.UsageQueryRate), defaults.UsageQueryBurst),
		listTimeout:  defaults.ListTimeout,
		queryTimeout: defaults.UsageQueryTimeout,
		serverWait:   defaults.UsageQueryServerWait,
	}
	for _, opt := range opts {
		opt(p)
	}

	clientOpts := policy.ClientOptions{
		Transport: newHTTPClient(),
		Telemetry: policy.TelemetryOptions{ApplicationID: p.applicationID},
	}
	p.armOpts = &arm.ClientOptions{ClientOptions: clientOpts}

	subs, err := armsubscriptions.NewClient(cred, p.armOpts)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to create subscriptions client", err)
	}
	p.subs = subs

	logs, err := azquery.NewLogsClient(cred, &azquery.LogsClientOptions{ClientOptions: clientOpts})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to create logs client", err)
	}
	p.logs = logs

	return p, nil
}

// newHTTPClient returns the transport shared by every SDK client.
// No total or response header timeout; calls are bounded by their context.
func newHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   defaults.HTTPConnectTimeout,
				KeepAlive: defaults.HTTPKeepAlive,
			}).DialContext,
			TLSHandshakeTimeout: defaults.HTTPTLSHandshakeTimeout,
			IdleConnTimeout:     defaults.HTTPIdleConnTimeout,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			ForceAttemptHTTP2:   true,
		},
	}
}

// ListSubscriptions returns every subscription visible to the identity.
func (p *Provider) ListSubscriptions(ctx context.Context) ([]clusterization.Subscription, error) {
	ctx, cancel := context.WithTimeout(ctx, p.listTimeout)
	defer cancel()

	items, err := collect(ctx, p.subs.NewListPager(nil),
		func(page armsubscriptions.ClientListResponse) []*armsubscriptions.Subscription {
			return page.Value
		})
	if err != nil {
		return nil, classify(apperrors.ErrCodeListing, "failed to list subscriptions", err)
	}

	out := make([]clusterization.Subscription, 0, len(items))
	for _, item := range items {
		if s, ok := subscriptionFromARM(item); ok {
			out = append(out, s)
		}
	}

	slog.Debug("listed subscriptions", "count", len(out))
	return out, nil
}

// ListClusters returns the dedicated clusters of a subscription.
func (p *Provider) ListClusters(ctx context.Context, sub clusterization.Subscription) ([]clusterization.Cluster, error) {
	client, err := armoperationalinsights.NewClustersClient(sub.ID, p.cred, p.armOpts)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to create clusters client", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.listTimeout)
	defer cancel()

	items, err := collect(ctx, client.NewListPager(nil),
		func(page armoperationalinsights.ClustersClientListResponse) []*armoperationalinsights.Cluster {
			return page.Value
		})
	if err != nil {
		return nil, classify(apperrors.ErrCodeListing, "failed to list clusters", err)
	}

	out := make([]clusterization.Cluster, 0, len(items))
	for _, item := range items {
		if c, ok := clusterFromARM(item); ok {
			out = append(out, c)
		}
	}

	slog.Debug("listed clusters", "subscription", sub.ID, "count", len(out))
	return out, nil
}

// ListWorkspaces returns the Log Analytics workspaces of a subscription.
func (p *Provider) ListWorkspaces(ctx context.Context, sub clusterization.Subscription) ([]clusterization.Workspace, error) {
	client, err := armoperationalinsights.NewWorkspacesClient(sub.ID, p.cred, p.armOpts)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to create workspaces client", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.listTimeout)
	defer cancel()

	items, err := collect(ctx, client.NewListPager(nil),
		func(page armoperationalinsights.WorkspacesClientListResponse) []*armoperationalinsights.Workspace {
			return page.Value
		})
	if err != nil {
		return nil, classify(apperrors.ErrCodeListing, "failed to list workspaces", err)
	}

	out := make([]clusterization.Workspace, 0, len(items))
	for _, item := range items {
		if w, ok := workspaceFromARM(item); ok {
			out = append(out, w)
		}
	}

	slog.Debug("listed workspaces", "subscription", sub.ID, "count", len(out))
	return out, nil
}

// collect drains a pager, preserving service order.
func collect[P, T any](ctx context.Context, pager *runtime.Pager[P], items func(P) []*T) ([]*T, error) {
	var out []*T
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, items(page)...)
	}
	return out, nil
}
