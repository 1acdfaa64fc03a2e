package domain

import (
	"errors"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"

	m "incfix.dev/pkg/incfix/internal/model"
)

// includePattern matches a root-relative include directive. The capture is
// non-greedy: it stops at the first closing quote.
var includePattern = regexp.MustCompile(`#include\s+"@/(.+?)"`)

// Rewriter scans source lines for root-relative include directives and
// replaces them with resolved relative paths.
type Rewriter struct {
	resolver *Resolver
}

// NewRewriter constructs a Rewriter using the given resolver.
func NewRewriter(resolver *Resolver) *Rewriter {
	return &Rewriter{resolver: resolver}
}

// RewriteLines rewrites every line carrying an include directive whose target
// resolves. Only the first match per line is handled. Lines whose target is
// missing or unresolvable pass through verbatim; missing targets are returned
// as records for the run summary rather than accumulated in shared state.
func (rw *Rewriter) RewriteLines(lines []string, file, root m.Path) ([]string, bool, []m.MissingInclude) {
	updated := make([]string, 0, len(lines))
	changed := false

	var missing []m.MissingInclude

	for _, line := range lines {
		if match := includePattern.FindStringSubmatch(line); match != nil {
			ref := m.IncludeRef{Subpath: match[1]}

			rel, err := rw.resolver.Resolve(file, ref.Subpath, root)
			switch {
			case errors.Is(err, ErrTargetMissing):
				slog.Error("include target missing", "file", file, "subpath", ref.Subpath)
				missing = append(missing, m.MissingInclude{File: file, Subpath: ref.Subpath})
			case err != nil:
				slog.Error("failed to resolve include", "file", file, "subpath", ref.Subpath, "error", err)
			default:
				newLine := strings.Replace(line, `"@/`+ref.Subpath+`"`, `"`+rel+`"`, 1)
				if newLine != line {
					changed = true

					slog.Debug("updating include",
						"file", filepath.Base(string(file)),
						"from", strings.TrimSpace(line),
						"to", strings.TrimSpace(newLine),
					)

					line = newLine
				}
			}
		}

		updated = append(updated, line)
	}

	return updated, changed, missing
}

// CountIncludes returns the number of lines carrying a root-relative include
// directive. Used by the list command for scan-only reporting.
func CountIncludes(lines []string) int {
	count := 0

	for _, line := range lines {
		if includePattern.MatchString(line) {
			count++
		}
	}

	return count
}

// SplitLines splits text into lines, keeping each line's `\n` terminator. A
// final line without a terminator is preserved as-is, so joining the result
// reproduces the input byte for byte. Content is treated as UTF-8 throughout.
func SplitLines(text string) []string {
	var lines []string

	start := 0

	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, text[start:i+1])
			start = i + 1
		}
	}

	if start < len(text) {
		lines = append(lines, text[start:])
	}

	return lines
}
