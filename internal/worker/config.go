// Package worker provides background job processing for SenseTheWorld.
package worker

import (
	"time"
)

// RefreshConfig holds configuration for the advisory refresh job.
type RefreshConfig struct {
	// Countries are the ISO codes to audit after the refresh.
	// If empty, audits every country in the catalog.
	Countries []string

	// Concurrency is the number of concurrent audit workers.
	// Default: 3
	Concurrency int

	// Timeout is the timeout for each country audit.
	// Default: 30 seconds
	Timeout time.Duration

	// RefreshAdvisories enables the advisory provider fetch.
	// Default: true
	RefreshAdvisories bool

	// AuditCatalog enables the per-country catalog audit.
	// Default: true
	AuditCatalog bool
}

// DefaultRefreshConfig returns the default refresh configuration.
func DefaultRefreshConfig() RefreshConfig {
	return RefreshConfig{
		Concurrency:       3,
		Timeout:           30 * time.Second,
		RefreshAdvisories: true,
		AuditCatalog:      true,
	}
}
