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

// Package inventory provides a file-backed clusterization provider.
//
// An inventory document lists subscriptions with their dedicated clusters and
// workspaces, plus the raw usage each workspace's billable usage query
// returns. It lets an audit run without cloud access, for example in CI or
// to replay a captured environment:
//
//	kind: Inventory
//	apiVersion: clusterizer.nvidia.com/v1alpha1
//	subscriptions:
//	  - id: 00000000-0000-0000-0000-000000000001
//	    name: production
//	    clusters:
//	      - id: /subscriptions/.../clusters/east
//	        location: East US
//	        capacity: 500
//	        workspaces: [ws-east-1]
//	    workspaces:
//	      - id: ws-east-1
//	        location: eastus
//	        clusterId: /subscriptions/.../clusters/east
//	        usage: 33000        # GB over 30 days
//	      - id: ws-west-1
//	        location: westus
//	        usageError: throttled
//
// Omitting usage makes the query return no row.
//
// Load accepts a file path, an http(s) URL or cm://namespace/name. Capture
// builds a document from any clusterization.Provider.
package inventory
