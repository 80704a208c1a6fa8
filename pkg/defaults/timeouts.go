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

package defaults

import "time"

// Audit adapter timeouts. The clusterization core has no timeouts of its own;
// these bound individual calls made by the cloud adapters.
const (
	// AuthTimeout bounds the eager token acquisition done before any subscription is audited.
	AuthTimeout = 30 * time.Second

	// ListTimeout bounds a single paged listing of subscriptions, clusters or workspaces.
	ListTimeout = 2 * time.Minute

	// UsageQueryTimeout bounds a single billable usage query against one workspace.
	// Must be longer than the logs API server-side wait.
	UsageQueryTimeout = 3 * time.Minute

	// UsageQueryServerWait is the server-side query timeout requested from the logs API.
	UsageQueryServerWait = 120 * time.Second
)

// Logs API request shaping.
const (
	// UsageQueryRate is the default sustained number of usage queries per second.
	UsageQueryRate = 2.0

	// UsageQueryBurst is the number of usage queries allowed back to back.
	UsageQueryBurst = 5
)

// HTTP client timeouts for outbound requests.
const (
	// HTTPClientTimeout is the default total timeout for HTTP requests.
	HTTPClientTimeout = 30 * time.Second

	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPTLSHandshakeTimeout is the timeout for TLS handshake.
	HTTPTLSHandshakeTimeout = 5 * time.Second

	// HTTPResponseHeaderTimeout is the timeout for reading response headers.
	HTTPResponseHeaderTimeout = 10 * time.Second

	// HTTPIdleConnTimeout is the timeout for idle connections in the pool.
	HTTPIdleConnTimeout = 90 * time.Second

	// HTTPKeepAlive is the keep-alive duration for connections.
	HTTPKeepAlive = 30 * time.Second
)

// ConfigMap timeouts for Kubernetes ConfigMap operations.
const (
	// ConfigMapWriteTimeout is the timeout for writing to ConfigMaps.
	ConfigMapWriteTimeout = 30 * time.Second

	// ConfigMapReadTimeout is the timeout for reading inventories from ConfigMaps.
	ConfigMapReadTimeout = 30 * time.Second
)
