package domain

import (
	"fmt"
	"log/slog"
	"sort"

	"incfix.dev/pkg/incfix/internal/adapter"
	"incfix.dev/pkg/incfix/internal/controller"
	m "incfix.dev/pkg/incfix/internal/model"
)

// FixArgs carries everything a fix run needs.
type FixArgs struct {
	Root       m.Path
	Extensions []string
	Exclude    []string
	Options    m.ProcessOptions
}

// ListArgs carries everything a scan-only list run needs.
type ListArgs struct {
	Root       m.Path
	Extensions []string
	Exclude    []string
}

// Workflow ties the scanner, processor and UI together for whole-tree runs.
type Workflow interface {
	// Fix rewrites root-relative includes under args.Root and prints a
	// summary. Only a missing root directory aborts the run.
	Fix(args FixArgs) (m.RunSummary, error)

	// List reports candidate files and their include counts without
	// touching anything.
	List(args ListArgs) error
}

type workflow struct {
	fs        adapter.SourceFSAdapter
	ui        controller.UI
	scanner   *Scanner
	processor *FileProcessor
}

// NewWorkflow wires the domain components around the shared adapters.
func NewWorkflow(fsAdapter adapter.SourceFSAdapter, ui controller.UI) Workflow {
	rewriter := NewRewriter(NewResolver(fsAdapter))

	return &workflow{
		fs:        fsAdapter,
		ui:        ui,
		scanner:   NewScanner(fsAdapter),
		processor: NewFileProcessor(fsAdapter, ui, rewriter),
	}
}

func (w *workflow) Fix(args FixArgs) (m.RunSummary, error) {
	var summary m.RunSummary

	root, extensions, err := w.prepare(args.Root, args.Extensions)
	if err != nil {
		return summary, err
	}

	files, err := w.scanner.FindSourceFiles(root, extensions, args.Exclude)
	if err != nil {
		return summary, fmt.Errorf("scan failed: %w", err)
	}

	// Strictly sequential: each file's read-modify-write is independent and
	// outcomes are merged as they arrive.
	for _, file := range files {
		summary.Merge(w.processor.Process(file, root, args.Options))
	}

	w.ui.DisplaySummary(summary)

	if args.Options.DryRun {
		w.ui.DisplayDryRunNotice()
	}

	return summary, nil
}

func (w *workflow) List(args ListArgs) error {
	root, extensions, err := w.prepare(args.Root, args.Extensions)
	if err != nil {
		return err
	}

	files, err := w.scanner.FindSourceFiles(root, extensions, args.Exclude)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	stats := make([]m.IncludeStat, 0, len(files))

	for _, file := range files {
		content, err := w.fs.ReadFile(file)
		if err != nil {
			slog.Error("could not read file", "file", file, "error", err)
			w.ui.DisplayFileError(file, err)

			continue
		}

		stats = append(stats, m.IncludeStat{
			File:     file,
			Includes: CountIncludes(SplitLines(string(content))),
		})
	}

	w.ui.DisplayIncludeStats(stats)

	return nil
}

// prepare resolves the root to an absolute directory, verifies it exists and
// builds the effective extension set. A bad root is the only fatal error.
func (w *workflow) prepare(root m.Path, extra []string) (m.Path, map[string]struct{}, error) {
	absRoot, err := w.fs.AbsPath(root)
	if err != nil {
		return "", nil, fmt.Errorf("root directory does not exist: %s: %w", root, err)
	}

	info, err := w.fs.FileInfo(absRoot)
	if err != nil || !info.IsDir() {
		return "", nil, fmt.Errorf("root directory does not exist: %s", absRoot)
	}

	extensions := NormalizeExtensions(extra)

	w.ui.DisplayScanInfo(absRoot, sortedExtensions(extensions))

	return absRoot, extensions, nil
}

func sortedExtensions(extensions map[string]struct{}) []string {
	list := make([]string, 0, len(extensions))
	for ext := range extensions {
		list = append(list, ext)
	}

	sort.Strings(list)

	return list
}
