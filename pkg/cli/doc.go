// Package cli implements the command-line interface for clusterizer.
//
// # Overview
//
// clusterizer audits the placement of Azure Log Analytics workspaces against
// dedicated clusters. Every subscription visible to the managed identity is
// audited in turn and the recommendations are written as a report.
//
// # Commands
//
// audit - Audit subscriptions and recommend cluster changes:
//
//	clusterizer audit [--output FILE|cm://ns/name] [--format yaml|json|table]
//
// Samples the 30 day billable usage of every workspace, groups it by region,
// and recommends creating, upgrading or removing clusters and reassigning
// workspaces. A one-line-per-recommendation summary is printed to stderr.
//
// snapshot - Capture an inventory:
//
//	clusterizer snapshot --output inventory.yaml
//
// Records subscriptions, clusters, workspaces and raw usage so an audit can be
// replayed offline with --inventory.
//
// # Providers
//
//	--provider azure       Managed identity, ARM listings and the logs query API (default)
//	--provider inventory   An inventory document from a file, URL or ConfigMap
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (default: info)
//	--debug        Shorthand for --log-level debug
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Environment Variables
//
//	LOG_LEVEL                 Set logging verbosity
//	AZURE_CLIENT_ID           Client id of a user-assigned managed identity
//	KUBECONFIG                Kubeconfig used for cm:// locations
//	CLUSTERIZER_*             Any command flag, e.g. CLUSTERIZER_QUERY_RATE
//
// # Exit Codes
//
//	0  Clean audit, nothing to change
//	1  Audit failed, or recommendations were found
package cli
