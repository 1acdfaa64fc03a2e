package domain

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"incfix.dev/pkg/incfix/internal/adapter"
	m "incfix.dev/pkg/incfix/internal/model"
)

// DefaultExtensions are the C/C++ file extensions scanned when the user
// supplies no extra tokens.
var DefaultExtensions = []string{".c", ".h", ".cpp", ".hpp", ".cc", ".cxx"}

// Scanner enumerates candidate source files under a project root.
type Scanner struct {
	fs adapter.SourceFSAdapter
}

// NewScanner constructs a Scanner backed by the given filesystem adapter.
func NewScanner(fs adapter.SourceFSAdapter) *Scanner {
	return &Scanner{fs: fs}
}

// NormalizeExtensions merges the default extension set with extra tokens,
// normalizing each token to carry a leading dot. Matching is case-sensitive.
func NormalizeExtensions(extra []string) map[string]struct{} {
	exts := make(map[string]struct{}, len(DefaultExtensions)+len(extra))

	for _, ext := range DefaultExtensions {
		exts[ext] = struct{}{}
	}

	for _, token := range extra {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		exts["."+strings.TrimLeft(token, ".")] = struct{}{}
	}

	return exts
}

// FindSourceFiles walks the tree under root and returns every regular file
// whose extension is in extensions and which does not live under an excluded
// directory. Order is filesystem traversal order; callers must not depend on
// it. Unreadable entries are logged and skipped.
func (s *Scanner) FindSourceFiles(root m.Path, extensions map[string]struct{}, excludeDirs []string) ([]m.Path, error) {
	excluded := resolveExcludes(root, excludeDirs)

	var files []m.Path

	err := s.fs.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			slog.Warn("skipping unreadable entry", "path", path, "error", err)

			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if info.IsDir() {
			if _, ok := excluded[path]; ok && path != string(root) {
				return filepath.SkipDir
			}

			return nil
		}

		if _, ok := extensions[filepath.Ext(path)]; !ok {
			return nil
		}

		if hasExcludedAncestor(path, excluded) {
			return nil
		}

		files = append(files, m.Path(path))

		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// resolveExcludes turns the user-supplied exclusion list into a set of
// absolute directory paths anchored at root (relative entries resolve
// against root, absolute entries are cleaned as given).
func resolveExcludes(root m.Path, excludeDirs []string) map[string]struct{} {
	excluded := make(map[string]struct{}, len(excludeDirs))

	for _, dir := range excludeDirs {
		dir = strings.TrimSpace(dir)
		if dir == "" {
			continue
		}

		if !filepath.IsAbs(dir) {
			dir = filepath.Join(string(root), dir)
		}

		excluded[filepath.Clean(dir)] = struct{}{}
	}

	return excluded
}

// hasExcludedAncestor reports whether any ancestor directory of path equals
// an excluded directory. Exact ancestor match, not substring.
func hasExcludedAncestor(path string, excluded map[string]struct{}) bool {
	if len(excluded) == 0 {
		return false
	}

	dir := filepath.Dir(path)

	for {
		if _, ok := excluded[dir]; ok {
			return true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return false
		}

		dir = parent
	}
}
