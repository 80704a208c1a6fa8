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
	"fmt"
	"log/slog"

	"github.com/Azure/azure-sdk-for-go/sdk/monitor/azquery"
	"k8s.io/utils/ptr"

	"github.com/NVIDIA/la-clusterizer/pkg/clusterization"
	apperrors "github.com/NVIDIA/la-clusterizer/pkg/errors"
)

type logsClient interface {
	QueryWorkspace(ctx context.Context, workspaceID string, body azquery.Body,
		options *azquery.LogsClientQueryWorkspaceOptions) (azquery.LogsClientQueryWorkspaceResponse, error)
}

// QueryUsage runs q against the workspace customer id and returns the rows of
// the first result table. Calls are paced by the provider rate limiter.
func (p *Provider) QueryUsage(ctx context.Context, q clusterization.UsageQuery) ([][]any, error) {
	if q.Workspace.CustomerID == "" {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"workspace has no customer id", map[string]any{"workspace": q.Workspace.ID})
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeTimeout, "usage query rate limiter wait failed", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.queryTimeout)
	defer cancel()

	body := azquery.Body{Query: ptr.To(q.Query)}
	if !q.Start.IsZero() && !q.End.IsZero() {
		span := azquery.NewTimeInterval(q.Start, q.End)
		body.Timespan = &span
	}

	var opts *azquery.LogsClientQueryWorkspaceOptions
	if p.serverWait > 0 {
		opts = &azquery.LogsClientQueryWorkspaceOptions{
			Options: &azquery.LogsQueryOptions{Wait: ptr.To(int(p.serverWait.Seconds()))},
		}
	}

	res, err := p.logs.QueryWorkspace(ctx, q.Workspace.CustomerID, body, opts)
	if err != nil {
		return nil, classify(apperrors.ErrCodeQuery,
			fmt.Sprintf("logs query failed for workspace %s", q.Workspace.CustomerID), err)
	}
	if res.Error != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeQuery,
			"logs query returned a partial failure", res.Error,
			map[string]any{"workspace": q.Workspace.ID, "azureCode": res.Error.Code})
	}

	if len(res.Tables) == 0 || res.Tables[0] == nil {
		slog.Debug("logs query returned no table", "workspace", q.Workspace.ID)
		return [][]any{}, nil
	}

	rows := make([][]any, 0, len(res.Tables[0].Rows))
	for _, r := range res.Tables[0].Rows {
		rows = append(rows, []any(r))
	}
	return rows, nil
}
