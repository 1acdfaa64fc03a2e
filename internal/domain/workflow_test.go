package domain

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"incfix.dev/pkg/incfix/internal/adapter"
	m "incfix.dev/pkg/incfix/internal/model"
)

func newTestWorkflow() (Workflow, *stubUI) {
	ui := &stubUI{}

	return NewWorkflow(adapter.NewLocalSourceFSAdapter(), ui), ui
}

func fixtureTree(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/util.h":  "#pragma once\n",
		"src/a/b.h":   "#include \"@/src/util.h\"\n",
		"src/main.c":  "#include \"@/src/util.h\"\n#include \"@/src/gone.h\"\nint main() {}\n",
		"src/plain.c": "#include <stdio.h>\n",
		"build/gen.c": "#include \"@/src/util.h\"\n",
		"docs/readme": "not scanned\n",
	})

	return root
}

func TestWorkflow_Fix(t *testing.T) {
	workflow, ui := newTestWorkflow()
	root := fixtureTree(t)

	summary, err := workflow.Fix(FixArgs{
		Root:    m.Path(root),
		Exclude: []string{"build"},
		Options: m.ProcessOptions{MakeBackup: true},
	})
	require.NoError(t, err)

	assert.Equal(t, 4, summary.Scanned, "util.h, a/b.h, main.c, plain.c")
	assert.Equal(t, 2, summary.Updated)
	assert.Equal(t, 2, summary.Skipped)
	require.Len(t, summary.Missing, 1)
	assert.Equal(t, m.Path(filepath.Join(root, "src", "main.c")), summary.Missing[0].File)
	assert.Equal(t, "src/gone.h", summary.Missing[0].Subpath)

	assert.Equal(t, "#include \"../util.h\"\n", readFile(t, filepath.Join(root, "src", "a", "b.h")))
	assert.Equal(t, "#include \"util.h\"\n#include \"@/src/gone.h\"\nint main() {}\n",
		readFile(t, filepath.Join(root, "src", "main.c")))

	// Excluded subtree stays untouched.
	assert.Equal(t, "#include \"@/src/util.h\"\n", readFile(t, filepath.Join(root, "build", "gen.c")))

	require.Len(t, ui.summaries, 1)
	assert.Equal(t, summary, ui.summaries[0])
	assert.Zero(t, ui.dryRunNotice)
}

func TestWorkflow_FixDryRunMatchesLiveClassification(t *testing.T) {
	dryWorkflow, dryUI := newTestWorkflow()
	root := fixtureTree(t)

	before := readFile(t, filepath.Join(root, "src", "a", "b.h"))

	drySummary, err := dryWorkflow.Fix(FixArgs{
		Root:    m.Path(root),
		Exclude: []string{"build"},
		Options: m.ProcessOptions{DryRun: true, MakeBackup: true},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, dryUI.dryRunNotice)
	assert.Equal(t, before, readFile(t, filepath.Join(root, "src", "a", "b.h")), "dry-run must not write")

	liveWorkflow, _ := newTestWorkflow()

	liveSummary, err := liveWorkflow.Fix(FixArgs{
		Root:    m.Path(root),
		Exclude: []string{"build"},
		Options: m.ProcessOptions{MakeBackup: true},
	})
	require.NoError(t, err)

	assert.Equal(t, liveSummary.Scanned, drySummary.Scanned)
	assert.Equal(t, liveSummary.Updated, drySummary.Updated)
	assert.Equal(t, liveSummary.Skipped, drySummary.Skipped)
}

func TestWorkflow_FixCheckOnlyCountsWithoutWriting(t *testing.T) {
	workflow, _ := newTestWorkflow()
	root := fixtureTree(t)

	before := readFile(t, filepath.Join(root, "src", "a", "b.h"))

	summary, err := workflow.Fix(FixArgs{
		Root:    m.Path(root),
		Exclude: []string{"build"},
		Options: m.ProcessOptions{CheckOnly: true},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Updated, "check-only counts changed files")
	assert.Equal(t, before, readFile(t, filepath.Join(root, "src", "a", "b.h")))
}

func TestWorkflow_FixMissingRootIsFatal(t *testing.T) {
	workflow, ui := newTestWorkflow()

	_, err := workflow.Fix(FixArgs{Root: m.Path(filepath.Join(t.TempDir(), "nope"))})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "root directory does not exist")
	assert.Empty(t, ui.summaries, "no summary without a scan")
}

func TestWorkflow_List(t *testing.T) {
	workflow, ui := newTestWorkflow()
	root := fixtureTree(t)

	err := workflow.List(ListArgs{Root: m.Path(root), Exclude: []string{"build"}})
	require.NoError(t, err)

	require.Len(t, ui.stats, 1)

	counts := make(map[string]int, len(ui.stats[0]))
	for _, stat := range ui.stats[0] {
		counts[string(stat.File)] = stat.Includes
	}

	assert.Equal(t, map[string]int{
		filepath.Join(root, "src", "util.h"):   0,
		filepath.Join(root, "src", "a", "b.h"): 1,
		filepath.Join(root, "src", "main.c"):   2,
		filepath.Join(root, "src", "plain.c"):  0,
	}, counts)

	// Listing never mutates.
	assert.Equal(t, "#include \"@/src/util.h\"\n", readFile(t, filepath.Join(root, "src", "a", "b.h")))
}
