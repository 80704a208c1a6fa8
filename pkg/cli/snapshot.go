/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/la-clusterizer/pkg/inventory"
)

func snapshotCmd() *cli.Command {
	flags := append(providerFlags(),
		outputFlag(),
		formatFlag(),
		kubeconfigFlag(),
	)

	return &cli.Command{
		Name:                  "snapshot",
		EnableShellCompletion: true,
		Usage:                 "Capture subscriptions, clusters and workspace usage as an inventory",
		Description: `Capture everything an audit reads into an inventory document. The document
can be replayed later without Azure access:

  clusterizer snapshot --output inventory.yaml
  clusterizer audit --inventory inventory.yaml

Usage query failures are recorded in the inventory rather than aborting the
capture, so the replayed audit fails the same way.`,
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			p, err := newProvider(ctx, cmd)
			if err != nil {
				return fmt.Errorf("failed to initialize provider: %w", err)
			}

			doc, err := inventory.Capture(ctx, p, inventory.WithVersion(version))
			if err != nil {
				return fmt.Errorf("snapshot failed: %w", err)
			}

			return writeDocument(ctx, cmd, outFormat, doc)
		},
	}
}
