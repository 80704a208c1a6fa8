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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Usage sampling metrics
	usageQueryTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clusterizer_usage_queries_total",
			Help: "Total number of workspace usage queries",
		},
		[]string{"status"}, // success, error or no_data
	)

	usageQueryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "clusterizer_usage_query_duration_seconds",
			Help:    "Time taken by a single workspace usage query",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 120},
		},
	)

	// Audit metrics
	subscriptionRunTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clusterizer_subscription_runs_total",
			Help: "Total number of subscription clusterization runs",
		},
		[]string{"status"}, // success or error
	)

	recommendationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clusterizer_recommendations_total",
			Help: "Total number of recommendations emitted",
		},
		[]string{"kind"},
	)

	auditDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "clusterizer_audit_duration_seconds",
			Help:    "Time taken to audit all visible subscriptions",
			Buckets: []float64{1, 5, 10, 30, 60, 300, 900, 1800},
		},
	)
)
