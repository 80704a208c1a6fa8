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
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"time"

	apperrors "github.com/NVIDIA/la-clusterizer/pkg/errors"
)

const (
	// UsageWindowDays is the trailing window the daily average is computed over.
	UsageWindowDays = 30

	// usageUnitDivisor converts the summed Usage.Quantity (MB) to GB inside the query.
	usageUnitDivisor = 1000
)

// usageQueryTemplate sums billable usage generated and started inside the window.
const usageQueryTemplate = `Usage
| where TimeGenerated > ago(%[1]dd)
| where StartTime > ago(%[1]dd)
| where IsBillable == true
| summarize BillableGB = sum(Quantity) / %[2]d`

// BillableUsageQuery returns the query text for a trailing window of days.
func BillableUsageQuery(days int) string {
	return fmt.Sprintf(usageQueryTemplate, days, usageUnitDivisor)
}

// Sampler computes the average daily billable ingestion of a workspace.
// It issues exactly one query per call and never retries.
type Sampler struct {
	querier UsageQuerier
	now     func() time.Time
}

// SamplerOption is a functional option for configuring the Sampler.
type SamplerOption func(*Sampler)

// WithClock overrides the clock used to compute the query window.
func WithClock(now func() time.Time) SamplerOption {
	return func(s *Sampler) {
		s.now = now
	}
}

// NewSampler creates a Sampler that queries through q.
func NewSampler(q UsageQuerier, opts ...SamplerOption) *Sampler {
	s := &Sampler{
		querier: q,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SampleDailyVolume returns the workspace's trailing 30-day average daily
// billable ingestion in GB: the summed quantity divided by 1000 in the query,
// then by 30 here.
//
// Every failure is a QUERY_FAILURE. When the query succeeds but yields no row
// or a non-numeric value the cause carries NO_USAGE_DATA.
func (s *Sampler) SampleDailyVolume(ctx context.Context, ws WorkspaceRef) (float64, error) {
	if s == nil || s.querier == nil {
		return 0, apperrors.New(apperrors.ErrCodeInternal, "sampler has no usage querier")
	}

	end := s.now().UTC()
	q := UsageQuery{
		Workspace: ws,
		Query:     BillableUsageQuery(UsageWindowDays),
		Start:     end.AddDate(0, 0, -UsageWindowDays),
		End:       end,
	}

	start := time.Now()
	rows, err := s.querier.QueryUsage(ctx, q)
	usageQueryDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		usageQueryTotal.WithLabelValues("error").Inc()
		return 0, apperrors.WrapWithContext(apperrors.ErrCodeQuery,
			fmt.Sprintf("usage query failed for workspace %s", ws.ID), err,
			map[string]any{"workspace": ws.ID, "customerId": ws.CustomerID})
	}

	total, err := UsageValue(rows)
	if err != nil {
		usageQueryTotal.WithLabelValues("no_data").Inc()
		return 0, apperrors.WrapWithContext(apperrors.ErrCodeQuery,
			fmt.Sprintf("no usable usage data for workspace %s", ws.ID), err,
			map[string]any{"workspace": ws.ID, "customerId": ws.CustomerID})
	}

	usageQueryTotal.WithLabelValues("success").Inc()
	daily := total / UsageWindowDays

	slog.Debug("sampled workspace usage",
		"workspace", ws.ID,
		"window_gb", total,
		"daily_gb", daily)

	return daily, nil
}

// UsageValue extracts the scalar of a usage query result: the first column
// of the first row. A missing row or a non-numeric value is NO_USAGE_DATA.
func UsageValue(rows [][]any) (float64, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return 0, apperrors.New(apperrors.ErrCodeNoUsageData, "usage query returned no rows")
	}
	v, ok := toFloat(rows[0][0])
	if !ok {
		return 0, apperrors.NewWithContext(apperrors.ErrCodeNoUsageData,
			"usage query returned a non-numeric value",
			map[string]any{"value": rows[0][0]})
	}
	return v, nil
}

func toFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
