/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/la-clusterizer/pkg/azure"
	"github.com/NVIDIA/la-clusterizer/pkg/clusterization"
	"github.com/NVIDIA/la-clusterizer/pkg/defaults"
	"github.com/NVIDIA/la-clusterizer/pkg/inventory"
	"github.com/NVIDIA/la-clusterizer/pkg/serializer"
)

const (
	providerAzure     = "azure"
	providerInventory = "inventory"
)

func providerFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "provider",
			Usage:   fmt.Sprintf("Source of subscriptions, clusters and usage (supported values: %s, %s)", providerAzure, providerInventory),
			Value:   providerAzure,
			Sources: cli.EnvVars("CLUSTERIZER_PROVIDER"),
		},
		&cli.StringFlag{
			Name:    "inventory",
			Aliases: []string{"f"},
			Usage: `Path/URI to an inventory document used instead of Azure.
	Supports: file paths, HTTP/HTTPS URLs, or ConfigMap URIs (cm://namespace/name).
	Implies --provider inventory unless --provider is set.`,
			Sources: cli.EnvVars("CLUSTERIZER_INVENTORY"),
		},
		&cli.StringFlag{
			Name:    "managed-identity-client-id",
			Usage:   "Client id of a user-assigned managed identity (default: system-assigned identity)",
			Sources: cli.EnvVars("CLUSTERIZER_MANAGED_IDENTITY_CLIENT_ID", "AZURE_CLIENT_ID"),
		},
		&cli.FloatFlag{
			Name:    "query-rate",
			Usage:   "Usage queries per second sent to the logs API (0 disables throttling)",
			Value:   defaults.UsageQueryRate,
			Sources: cli.EnvVars("CLUSTERIZER_QUERY_RATE"),
		},
		&cli.DurationFlag{
			Name:    "query-timeout",
			Usage:   "Timeout for a single workspace usage query",
			Value:   defaults.UsageQueryTimeout,
			Sources: cli.EnvVars("CLUSTERIZER_QUERY_TIMEOUT"),
		},
	}
}

// providerKind resolves --provider, letting a bare --inventory select the
// inventory provider.
func providerKind(cmd *cli.Command) (string, error) {
	kind := cmd.String("provider")
	if cmd.IsSet("inventory") && !cmd.IsSet("provider") {
		kind = providerInventory
	}
	switch kind {
	case providerAzure, providerInventory:
		return kind, nil
	default:
		return "", fmt.Errorf("unknown provider %q, supported: %s, %s", kind, providerAzure, providerInventory)
	}
}

func newProvider(ctx context.Context, cmd *cli.Command) (clusterization.Provider, error) {
	kind, err := providerKind(cmd)
	if err != nil {
		return nil, err
	}

	if kind == providerInventory {
		path := cmd.String("inventory")
		if path == "" {
			return nil, fmt.Errorf("--inventory is required with --provider %s", providerInventory)
		}
		return inventory.Load(ctx, path, serializer.WithKubeconfig(cmd.String("kubeconfig")))
	}

	cred, err := azure.NewCredential(ctx, cmd.String("managed-identity-client-id"))
	if err != nil {
		return nil, err
	}
	return azure.NewProvider(cred,
		azure.WithQueryRate(cmd.Float("query-rate"), defaults.UsageQueryBurst),
		azure.WithQueryTimeout(cmd.Duration("query-timeout")),
		azure.WithApplicationID(name+"/"+version),
	)
}
