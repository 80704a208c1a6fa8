// Package clusterization audits Log Analytics dedicated clusters and proposes
// commitment-tier changes.
//
// # Overview
//
// For a subscription the package builds an inventory of dedicated clusters
// keyed by region, samples the average daily billable ingestion of every
// workspace over a trailing 30 day window, and compares the totals against the
// commitment tier ladder (500, 1000, 2000 and 5000 GB/day).
//
// # Core Concepts
//
// Inventory: one cluster per normalized region plus the summed daily volume of
// the workspaces already linked to it. BuildInventory produces it.
//
// Placement: the outcome of classifying every workspace. A workspace in a
// region that has a cluster but is not linked to one is reassigned. A
// workspace linked to a cluster while its region has none is also reassigned.
// Unclustered workspaces in regions without a cluster contribute their volume
// to the proposed map. Classify produces it.
//
// Rules: Recommend applies the tier rules to the inventory and placement:
//   - volume > 2 x capacity: UpgradeCluster to the next tier
//   - volume < 500: RemoveCluster
//   - proposed volume > 500: CreateCluster
//
// Regions are compared after NormalizeRegion, so "East US" and "eastus" are
// the same region. Every map keeps first-insertion order so the output is
// deterministic for identical input.
//
// # Usage
//
// Audit a single subscription:
//
//	runner := clusterization.NewRunner(provider,
//	    clusterization.WithVersion("v1.0.0"),
//	)
//
//	recs, err := runner.RunClusterization(ctx, clusterization.Subscription{ID: subID})
//	if err != nil {
//	    return err
//	}
//
// Audit every visible subscription and serialize the report:
//
//	report, err := runner.Audit(ctx)
//	if err != nil {
//	    return err
//	}
//	if err := ser.Serialize(ctx, report); err != nil {
//	    return err
//	}
//
// # Error Handling
//
// Listing failures carry the LISTING_FAILURE code and usage sampling failures
// carry QUERY_FAILURE. A missing or non-numeric usage row is a QUERY_FAILURE
// wrapping NO_USAGE_DATA. Any failure aborts the subscription run with no
// recommendations. Audit stops at the first failing subscription.
//
// # Metrics
//
// Prometheus metrics are registered with the default registry:
//   - clusterizer_usage_queries_total{status}
//   - clusterizer_usage_query_duration_seconds
//   - clusterizer_subscription_runs_total{status}
//   - clusterizer_recommendations_total{kind}
//   - clusterizer_audit_duration_seconds
package clusterization
