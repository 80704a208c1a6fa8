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
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"

	"github.com/NVIDIA/la-clusterizer/pkg/defaults"
	apperrors "github.com/NVIDIA/la-clusterizer/pkg/errors"
)

// ManagementScope is the token scope of the Azure Resource Manager API.
const ManagementScope = "https://management.azure.com/.default"

// NewCredential returns the ambient managed identity of the host.
// When clientID is set the user-assigned identity with that client id is used,
// otherwise the system-assigned identity.
//
// A management token is acquired before returning so a missing or
// misconfigured identity fails here with AUTHENTICATION_FAILURE.
func NewCredential(ctx context.Context, clientID string) (azcore.TokenCredential, error) {
	opts := &azidentity.ManagedIdentityCredentialOptions{}
	if clientID != "" {
		opts.ID = azidentity.ClientID(clientID)
	}

	cred, err := azidentity.NewManagedIdentityCredential(opts)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeAuthentication, "failed to create managed identity credential", err)
	}

	if err := verifyCredential(ctx, cred, defaults.AuthTimeout); err != nil {
		return nil, err
	}

	return cred, nil
}

func verifyCredential(ctx context.Context, cred azcore.TokenCredential, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	tok, err := cred.GetToken(ctx, policy.TokenRequestOptions{Scopes: []string{ManagementScope}})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeAuthentication, "failed to acquire management token", err)
	}
	if tok.Token == "" {
		return apperrors.New(apperrors.ErrCodeAuthentication, "identity returned an empty management token")
	}
	return nil
}
