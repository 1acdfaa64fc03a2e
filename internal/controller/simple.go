package controller

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "incfix.dev/pkg/incfix/internal/model"
)

// SimpleUI implements UI using the cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// NewUI returns the UI implementation for the given command. Currently always
// the plain-text SimpleUI; the seam exists so an interactive implementation
// can plug in later.
func NewUI(cmd *cobra.Command) UI {
	return NewSimpleUI(cmd)
}

// DisplayScanInfo announces the scan root and extension set.
func (s *SimpleUI) DisplayScanInfo(root m.Path, extensions []string) {
	s.printf("Scanning %s for extensions %s\n", root, strings.Join(extensions, " "))
}

// DisplayWouldUpdate reports a file a dry run would have rewritten.
func (s *SimpleUI) DisplayWouldUpdate(file m.Path) {
	s.printf("Would update: %s\n", file)
}

// DisplayUpdated reports a file that was rewritten on disk.
func (s *SimpleUI) DisplayUpdated(file m.Path) {
	s.printf("Updated: %s\n", file)
}

// DisplaySkipped reports a file left untouched.
func (s *SimpleUI) DisplaySkipped(file m.Path) {
	s.printf("Skipped: %s\n", file)
}

// DisplayFileError reports a per-file failure.
func (s *SimpleUI) DisplayFileError(file m.Path, err error) {
	s.printf("Error: %s: %v\n", file, err)
}

// DisplayDiff prints an already-rendered unified diff.
func (s *SimpleUI) DisplayDiff(diff string) {
	s.printf("%s", diff)
}

// DisplayIncludeStats renders a table of scanned files and their
// root-relative include counts.
func (s *SimpleUI) DisplayIncludeStats(stats []m.IncludeStat) {
	sorted := make([]m.IncludeStat, len(stats))
	copy(sorted, stats)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].File < sorted[j].File
	})

	total := 0

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Includes"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, stat := range sorted {
		table.Append([]string{string(stat.File), fmt.Sprintf("%d", stat.Includes)})

		total += stat.Includes
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(sorted)),
		fmt.Sprintf("%d", total),
	})

	table.Render()

	s.printf("\n%s", tableBuffer.String())
}

// DisplaySummary renders the end-of-run counters followed by every
// missing-include record as (file, subpath).
func (s *SimpleUI) DisplaySummary(summary m.RunSummary) {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Summary", "Count"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	table.Append([]string{"Total files scanned", fmt.Sprintf("%d", summary.Scanned)})
	table.Append([]string{"Files updated", fmt.Sprintf("%d", summary.Updated)})
	table.Append([]string{"Files skipped", fmt.Sprintf("%d", summary.Skipped)})
	table.Append([]string{"Missing include targets", fmt.Sprintf("%d", len(summary.Missing))})

	table.Render()

	s.printf("\n%s", tableBuffer.String())

	for _, record := range summary.Missing {
		s.printf("  %s: '@/%s' not found\n", record.File, record.Subpath)
	}
}

// DisplayDryRunNotice states that no files were written.
func (s *SimpleUI) DisplayDryRunNotice() {
	s.printf("Dry-run mode: no files were written.\n")
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
