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
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/NVIDIA/la-clusterizer/pkg/errors"
	"github.com/NVIDIA/la-clusterizer/pkg/header"
)

// Audit runs clusterization for every visible subscription in listing order.
// The first failing subscription aborts the whole audit.
func (r *Runner) Audit(ctx context.Context) (*Report, error) {
	if r.provider == nil {
		return nil, apperrors.New(apperrors.ErrCodeInternal, "runner has no provider")
	}

	start := time.Now()
	defer func() {
		auditDuration.Observe(time.Since(start).Seconds())
	}()

	subs, err := r.provider.ListSubscriptions(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeListing, "failed to list subscriptions", err)
	}

	report := NewReport()
	report.Init(header.KindClusterizationReport, APIVersion, r.Version)
	runID := uuid.NewString()
	report.Metadata[MetadataRunID] = runID

	slog.Info("starting clusterization audit",
		"run_id", runID,
		"subscriptions", len(subs))

	for _, sub := range subs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res, err := r.run(ctx, sub)
		if err != nil {
			slog.Error("subscription audit failed",
				"subscription", sub.ID,
				"code", apperrors.CodeOf(err),
				"error", err)
			return nil, fmt.Errorf("subscription %s: %w", sub, err)
		}
		report.Add(*res)
	}

	report.Summary.Duration = time.Since(start)

	slog.Info("clusterization audit completed",
		"run_id", runID,
		"subscriptions", report.Summary.Subscriptions,
		"recommendations", report.Summary.Recommendations,
		"status", report.Summary.Status,
		"duration", report.Summary.Duration)

	return report, nil
}
