// Package controller provides output adapters for displaying run results.
package controller

import (
	m "incfix.dev/pkg/incfix/internal/model"
)

// UI defines the interface for user-facing output during a run.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayScanInfo announces the root being scanned and the effective
	// extension set.
	DisplayScanInfo(root m.Path, extensions []string)

	// DisplayWouldUpdate reports a file a dry run would have rewritten.
	DisplayWouldUpdate(file m.Path)

	// DisplayUpdated reports a file that was rewritten on disk.
	DisplayUpdated(file m.Path)

	// DisplaySkipped reports a file left untouched. Emitted only in verbose
	// runs.
	DisplaySkipped(file m.Path)

	// DisplayFileError reports a per-file failure (read, backup or write).
	DisplayFileError(file m.Path, err error)

	// DisplayDiff prints an already-rendered unified diff.
	DisplayDiff(diff string)

	// DisplayIncludeStats renders the list command's per-file include counts.
	DisplayIncludeStats(stats []m.IncludeStat)

	// DisplaySummary renders the end-of-run counters and the missing-include
	// listing.
	DisplaySummary(summary m.RunSummary)

	// DisplayDryRunNotice states explicitly that no files were written.
	DisplayDryRunNotice()
}
