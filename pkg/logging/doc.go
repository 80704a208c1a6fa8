// Package logging provides structured logging utilities for the clusterizer.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults
// and conventions for consistent logging across all components. It supports
// environment-based log level configuration, module/version context injection,
// and automatic source location tracking for debug logs.
//
// # Features
//
//   - Structured JSON logging to stderr
//   - Environment-based log level configuration (LOG_LEVEL)
//   - Automatic module and version context
//   - Source location tracking for debug logs
//   - Flexible log level parsing
//   - Integration with standard library log package
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("clusterizer", "v1.0.0")
//	    slog.Info("application started")
//
//	    // Use slog as normal
//	    slog.Info("auditing subscription", "subscription", "sub-1")
//	    slog.Debug("detailed state", "data", complexObject)
//	    slog.Error("operation failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("clusterizer", "v2.0.0", "debug")
//	logger.Info("audit starting", "provider", "azure")
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("clusterizer", "v1.0.0", "warn")
//
// Converting standard library logger:
//
//	stdLogger := logging.NewLogLogger(slog.LevelInfo, false)
//	stdLogger.Println("legacy log message")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug clusterizer audit
//	LOG_LEVEL=error clusterizer audit --provider inventory
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "audit completed",
//	    "module": "clusterizer",
//	    "version": "v1.0.0",
//	    "recommendations": 2
//	}
//
// Debug logs include source location:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "DEBUG",
//	    "source": {
//	        "function": "clusterization.(*Sampler).SampleDailyVolume",
//	        "file": "sampler.go",
//	        "line": 45
//	    },
//	    "msg": "sampled workspace usage",
//	    "module": "clusterizer",
//	    "version": "v1.0.0"
//	}
//
// # Best Practices
//
// 1. Set default logger early in main():
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("myapp", version)
//	    slog.Info("application started")
//	    // ...
//	}
//
// 2. Include context in log messages:
//
//	slog.Info("subscription audited",
//	    "subscription", sub.ID,
//	    "clusters", inv.Clusters.Len(),
//	    "recommendations", len(recs),
//	)
//
// 3. Use appropriate log levels:
//
//	slog.Debug("sampled", "ws", id)      // Development/troubleshooting
//	slog.Info("audit started")           // Normal operations
//	slog.Warn("duplicate region")        // Potential issues
//	slog.Error("audit failed")           // Errors requiring action
//
// 4. Log errors with context:
//
//	slog.Error("usage query failed",
//	    "error", err,
//	    "workspace", ws.ID,
//	    "subscription", sub.ID,
//	)
//
// # Integration
//
// This package is used by:
//   - pkg/cli - CLI command logging
//   - pkg/clusterization - Audit, sampling and rule evaluation logging
//   - pkg/azure - Control plane and logs API adapter logging
//   - pkg/inventory - Inventory file provider logging
//
// All components share consistent logging format and configuration.
package logging
