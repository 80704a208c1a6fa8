// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// The audit distinguishes three failure kinds: AUTHENTICATION_FAILURE (the
// ambient identity is unusable), LISTING_FAILURE (subscriptions, clusters or
// workspaces could not be enumerated) and QUERY_FAILURE (a usage query failed).
// NO_USAGE_DATA is reported by the usage sampler and is always found wrapped
// inside a QUERY_FAILURE by the time it reaches the caller.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeQuery,
//	    "failed to sample workspace usage",
//	    cause,
//	    map[string]any{
//	        "workspace": ws.ID,
//	        "subscription": sub.ID,
//	    },
//	)
//
//	if errors.HasCode(err, errors.ErrCodeNoUsageData) {
//	    // the workspace returned no billable usage rows
//	}
package errors
