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

// Package client provides a singleton Kubernetes client.
//
// clusterizer only talks to Kubernetes when an inventory is read from, or a
// report is written to, a ConfigMap (cm://namespace/name). The client is built
// once with sync.Once and reused.
//
//	clientset, _, err := client.GetKubeClient()
//	if err != nil {
//	    return fmt.Errorf("failed to get kubernetes client: %w", err)
//	}
//
// A custom kubeconfig bypasses the cache:
//
//	clientset, err := client.ForKubeconfig("/path/to/kubeconfig")
//
// # Authentication Modes
//
// In-cluster (CronJob with a service account): credentials come from
// /var/run/secrets/kubernetes.io/serviceaccount/.
//
// Out-of-cluster: KUBECONFIG first, then ~/.kube/config.
package client
