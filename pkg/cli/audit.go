/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/la-clusterizer/pkg/clusterization"
	"github.com/NVIDIA/la-clusterizer/pkg/serializer"
)

func auditCmd() *cli.Command {
	flags := append(providerFlags(),
		&cli.StringFlag{
			Name:    "metrics-file",
			Usage:   "Write audit metrics in Prometheus text format to this file on exit",
			Sources: cli.EnvVars("CLUSTERIZER_METRICS_FILE"),
		},
		outputFlag(),
		formatFlag(),
		kubeconfigFlag(),
	)

	return &cli.Command{
		Name:                  "audit",
		EnableShellCompletion: true,
		Usage:                 "Audit workspace placement and recommend dedicated cluster changes",
		Description: `Audit every subscription visible to the managed identity. For each one the
30 day billable usage of every workspace is sampled, workspaces are placed in
their region's dedicated cluster, and recommendations are produced.

The report is written in JSON, YAML, or table format. A human summary goes to
stderr. The command exits 1 when the audit fails or recommends changes.

# Examples

Audit with the system-assigned identity:
  clusterizer audit

Audit with a user-assigned identity and write the report to a ConfigMap:
  clusterizer audit --managed-identity-client-id 00000000-0000-0000-0000-000000000000 \
    --output cm://monitoring/clusterizer-report

Audit a captured inventory:
  clusterizer audit --inventory inventory.yaml --format table`,
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			if path := cmd.String("metrics-file"); path != "" {
				defer writeMetrics(path)
			}

			p, err := newProvider(ctx, cmd)
			if err != nil {
				return fmt.Errorf("failed to initialize provider: %w", err)
			}

			runner := clusterization.NewRunner(p, clusterization.WithVersion(version))
			report, err := runner.Audit(ctx)
			if err != nil {
				return fmt.Errorf("audit failed: %w", err)
			}

			if err := writeDocument(ctx, cmd, outFormat, report); err != nil {
				return err
			}

			writeSummary(cmd.Root().ErrWriter, report)

			if report.HasRecommendations() {
				return fmt.Errorf("audit recommends %d change(s)", report.Summary.Recommendations)
			}
			return nil
		},
	}
}

func writeDocument(ctx context.Context, cmd *cli.Command, format serializer.Format, doc any) error {
	ser, err := serializer.NewFileWriterOrStdout(format, cmd.String("output"),
		serializer.WithKubeconfig(cmd.String("kubeconfig")))
	if err != nil {
		return fmt.Errorf("failed to create output writer: %w", err)
	}
	defer func() {
		if closer, ok := ser.(serializer.Closer); ok {
			if err := closer.Close(); err != nil {
				slog.Warn("failed to close serializer", "error", err)
			}
		}
	}()

	if err := ser.Serialize(ctx, doc); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func writeMetrics(path string) {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		slog.Warn("failed to write metrics file", "path", path, "error", err)
		return
	}
	slog.Debug("metrics written", "path", path)
}
