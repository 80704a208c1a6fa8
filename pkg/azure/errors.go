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
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"

	apperrors "github.com/NVIDIA/la-clusterizer/pkg/errors"
)

// classify wraps an SDK error with the code matching its cause.
func classify(code apperrors.ErrorCode, msg string, err error) error {
	var authErr *azidentity.AuthenticationFailedError
	if stderrors.As(err, &authErr) {
		return apperrors.Wrap(apperrors.ErrCodeAuthentication, msg, err)
	}

	var respErr *azcore.ResponseError
	if stderrors.As(err, &respErr) {
		switch respErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return apperrors.WrapWithContext(apperrors.ErrCodeAuthentication, msg, err,
				map[string]any{"status": respErr.StatusCode, "azureCode": respErr.ErrorCode})
		case http.StatusTooManyRequests, http.StatusServiceUnavailable:
			return apperrors.WrapWithContext(apperrors.ErrCodeUnavailable, msg, err,
				map[string]any{"status": respErr.StatusCode, "azureCode": respErr.ErrorCode})
		}
	}

	if stderrors.Is(err, context.DeadlineExceeded) {
		return apperrors.Wrap(apperrors.ErrCodeTimeout, fmt.Sprintf("%s: deadline exceeded", msg), err)
	}

	return apperrors.Wrap(code, msg, err)
}
