package domain

import (
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"incfix.dev/pkg/incfix/internal/adapter"
	"incfix.dev/pkg/incfix/internal/controller"
	m "incfix.dev/pkg/incfix/internal/model"
)

// fallbackFileMode is used when the original file's mode cannot be read back
// before the rewrite.
const fallbackFileMode fs.FileMode = 0o644

// diffContextLines is the number of context lines in unified diffs.
const diffContextLines = 3

// FileProcessor orchestrates the read, rewrite, backup, diff and write steps
// for one source file.
type FileProcessor struct {
	fs       adapter.SourceFSAdapter
	ui       controller.UI
	rewriter *Rewriter
}

// NewFileProcessor constructs a FileProcessor.
func NewFileProcessor(fsAdapter adapter.SourceFSAdapter, ui controller.UI, rewriter *Rewriter) *FileProcessor {
	return &FileProcessor{fs: fsAdapter, ui: ui, rewriter: rewriter}
}

// Process rewrites the includes of a single file according to opts. All
// failures are contained in the returned outcome; the run continues with the
// next file. In check-only mode the outcome's Updated flag carries the
// changed classification without any filesystem effect.
func (p *FileProcessor) Process(file, root m.Path, opts m.ProcessOptions) m.FileOutcome {
	outcome := m.FileOutcome{File: file}

	content, err := p.fs.ReadFile(file)
	if err != nil {
		slog.Error("could not read file", "file", file, "error", err)
		p.ui.DisplayFileError(file, err)

		outcome.Err = fmt.Errorf("could not read file %s: %w", file, err)

		return outcome
	}

	lines := SplitLines(string(content))

	updated, changed, missing := p.rewriter.RewriteLines(lines, file, root)
	outcome.Changed = changed
	outcome.Missing = missing

	if opts.CheckOnly {
		outcome.Updated = changed

		return outcome
	}

	if !changed && !opts.Force {
		slog.Debug("skipped", "file", file)

		if opts.Verbose {
			p.ui.DisplaySkipped(file)
		}

		return outcome
	}

	if opts.DryRun {
		p.ui.DisplayWouldUpdate(file)

		outcome.Updated = true

		return outcome
	}

	if opts.MakeBackup {
		backup := nextBackupPath(p.fs, file)

		if err := p.fs.CopyFile(file, backup); err != nil {
			slog.Error("failed to create backup", "file", file, "backup", backup, "error", err)
			p.ui.DisplayFileError(file, err)

			outcome.Err = fmt.Errorf("failed to create backup for %s: %w", file, err)

			return outcome
		}

		outcome.Backup = backup

		slog.Debug("created backup", "path", backup)
	}

	if opts.ShowDiff {
		p.displayDiff(file, lines, updated)
	}

	if err := p.fs.WriteFile(file, []byte(strings.Join(updated, "")), p.fileMode(file)); err != nil {
		slog.Error("failed to write file", "file", file, "error", err)
		p.ui.DisplayFileError(file, err)

		// A backup may already exist at this point; the file still counts
		// as not-updated.
		outcome.Err = fmt.Errorf("failed to write file %s: %w", file, err)

		return outcome
	}

	p.ui.DisplayUpdated(file)

	outcome.Updated = true

	return outcome
}

func (p *FileProcessor) displayDiff(file m.Path, original, updated []string) {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        original,
		B:        updated,
		FromFile: string(file),
		ToFile:   string(file) + " (updated)",
		Context:  diffContextLines,
	})
	if err != nil {
		slog.Error("failed to render diff", "file", file, "error", err)

		return
	}

	p.ui.DisplayDiff(diff)
}

func (p *FileProcessor) fileMode(file m.Path) fs.FileMode {
	info, err := p.fs.FileInfo(file)
	if err != nil {
		return fallbackFileMode
	}

	return info.Mode().Perm()
}

// nextBackupPath returns the first <file>.bakN path, N starting at 1, that
// does not exist yet. Existing backups are never overwritten.
func nextBackupPath(fsAdapter adapter.SourceFSAdapter, original m.Path) m.Path {
	for i := 1; ; i++ {
		candidate := m.Path(fmt.Sprintf("%s.bak%d", original, i))
		if !fsAdapter.Exists(candidate) {
			return candidate
		}
	}
}
