package domain

import (
	"os"
	"path/filepath"
	"testing"

	m "incfix.dev/pkg/incfix/internal/model"
)

// stubUI records UI calls so tests can assert on user-facing notifications
// without a cobra command.
type stubUI struct {
	scanRoots    []m.Path
	wouldUpdate  []m.Path
	updated      []m.Path
	skipped      []m.Path
	fileErrors   []m.Path
	diffs        []string
	stats        [][]m.IncludeStat
	summaries    []m.RunSummary
	dryRunNotice int
}

func (u *stubUI) DisplayScanInfo(root m.Path, _ []string) { u.scanRoots = append(u.scanRoots, root) }

func (u *stubUI) DisplayWouldUpdate(file m.Path) { u.wouldUpdate = append(u.wouldUpdate, file) }

func (u *stubUI) DisplayUpdated(file m.Path) { u.updated = append(u.updated, file) }

func (u *stubUI) DisplaySkipped(file m.Path) { u.skipped = append(u.skipped, file) }

func (u *stubUI) DisplayFileError(file m.Path, _ error) { u.fileErrors = append(u.fileErrors, file) }

func (u *stubUI) DisplayDiff(diff string) { u.diffs = append(u.diffs, diff) }

func (u *stubUI) DisplayIncludeStats(stats []m.IncludeStat) { u.stats = append(u.stats, stats) }

func (u *stubUI) DisplaySummary(summary m.RunSummary) { u.summaries = append(u.summaries, summary) }

func (u *stubUI) DisplayDryRunNotice() { u.dryRunNotice++ }

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()

	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", path, err)
		}

		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}

	return string(content)
}
