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
	"strconv"
	"time"

	"github.com/NVIDIA/la-clusterizer/pkg/header"
)

const (
	// APIVersion is the API version for clusterization reports.
	APIVersion = "clusterizer.nvidia.com/v1alpha1"

	// MetadataRunID is the report metadata key holding the audit run id.
	MetadataRunID = "run-id"
)

// Status represents the overall audit outcome.
type Status string

const (
	// StatusClean indicates no recommendation was produced.
	StatusClean Status = "clean"

	// StatusActionRequired indicates at least one recommendation was produced.
	StatusActionRequired Status = "action-required"
)

// Report is the outcome of auditing every visible subscription.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	// Subscriptions holds per-subscription results in audit order.
	Subscriptions []SubscriptionResult `json:"subscriptions" yaml:"subscriptions"`

	// Summary contains aggregate statistics.
	Summary Summary `json:"summary" yaml:"summary"`
}

// SubscriptionResult is the outcome of one clusterization run.
type SubscriptionResult struct {
	Subscription Subscription `json:"subscription" yaml:"subscription"`

	// Clusters is the number of regions with a dedicated cluster.
	Clusters int `json:"clusters" yaml:"clusters"`

	// ProposedRegions is the number of regions with unclustered usage.
	ProposedRegions int `json:"proposedRegions" yaml:"proposedRegions"`

	Recommendations []Recommendation `json:"recommendations" yaml:"recommendations"`
}

// Summary contains aggregate statistics about an audit.
type Summary struct {
	// Subscriptions is the number of subscriptions audited.
	Subscriptions int `json:"subscriptions" yaml:"subscriptions"`

	// Recommendations is the total number of recommendations.
	Recommendations int `json:"recommendations" yaml:"recommendations"`

	// ByKind counts recommendations per kind.
	ByKind map[Kind]int `json:"byKind,omitempty" yaml:"byKind,omitempty"`

	// Status is the overall audit status.
	Status Status `json:"status" yaml:"status"`

	// Duration is how long the audit took.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// NewReport creates an empty Report with initialized collections.
func NewReport() *Report {
	return &Report{
		Subscriptions: make([]SubscriptionResult, 0),
		Summary: Summary{
			ByKind: make(map[Kind]int),
			Status: StatusClean,
		},
	}
}

// Add appends a subscription result and updates the summary.
func (r *Report) Add(res SubscriptionResult) {
	r.Subscriptions = append(r.Subscriptions, res)
	r.Summary.Subscriptions++
	for _, rec := range res.Recommendations {
		r.Summary.Recommendations++
		if r.Summary.ByKind == nil {
			r.Summary.ByKind = make(map[Kind]int)
		}
		r.Summary.ByKind[rec.Kind]++
	}
	if r.Summary.Recommendations > 0 {
		r.Summary.Status = StatusActionRequired
	}
}

// Recommendations returns every recommendation across subscriptions in audit order.
func (r *Report) Recommendations() []Recommendation {
	out := make([]Recommendation, 0, r.Summary.Recommendations)
	for _, s := range r.Subscriptions {
		out = append(out, s.Recommendations...)
	}
	return out
}

// HasRecommendations reports whether the audit produced any recommendation.
func (r *Report) HasRecommendations() bool {
	return r != nil && r.Summary.Recommendations > 0
}

// TableHeader implements serializer.Tabular.
func (r *Report) TableHeader() []string {
	return []string{"SUBSCRIPTION", "KIND", "REGION", "SUBJECT", "GB/DAY", "CAPACITY", "TARGET", "CLUSTER"}
}

// TableRows implements serializer.Tabular with one row per recommendation.
func (r *Report) TableRows() [][]string {
	rows := make([][]string, 0, r.Summary.Recommendations)
	for _, s := range r.Subscriptions {
		for _, rec := range s.Recommendations {
			rows = append(rows, []string{
				s.Subscription.ID,
				rec.Kind.String(),
				rec.Region,
				rec.SubjectID,
				strconv.FormatFloat(rec.ObservedVolume, 'f', 1, 64),
				tierCell(rec.Capacity),
				tierCell(rec.TargetCapacity),
				rec.ClusterID,
			})
		}
	}
	return rows
}

func tierCell(t CapacityTier) string {
	if t == 0 {
		return "-"
	}
	return strconv.FormatInt(int64(t), 10)
}
