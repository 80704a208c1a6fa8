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

// Package defaults provides centralized configuration constants for the clusterizer.
//
// This package defines timeout values, request shaping parameters, and other
// configuration defaults used by the cloud adapters and output sinks.
// Centralizing these values ensures consistency and makes tuning easier.
//
// # Timeout Categories
//
// Timeouts are organized by component:
//
//   - Audit adapter timeouts: token acquisition, control plane listings, usage queries
//   - HTTP client timeouts: For inventory downloads
//   - ConfigMap timeouts: For report output and inventory input in Kubernetes
//
// The clusterization core itself never applies a timeout or retry; a call that
// exceeds one of these limits surfaces as an ordinary failure of that call.
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/NVIDIA/la-clusterizer/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.UsageQueryTimeout)
//	defer cancel()
package defaults
