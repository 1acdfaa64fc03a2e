// Package domain provides the core logic for rewriting root-relative
// include directives into plain relative includes.
package domain

import (
	"errors"
	"fmt"
	"path/filepath"

	"incfix.dev/pkg/incfix/internal/adapter"
	m "incfix.dev/pkg/incfix/internal/model"
)

// ErrTargetMissing reports that an include target does not exist under the
// project root. Recoverable: the directive is left untouched and recorded.
var ErrTargetMissing = errors.New("include target does not exist")

// Resolver computes relative include strings against a fixed project root.
type Resolver struct {
	fs adapter.SourceFSAdapter
}

// NewResolver constructs a Resolver backed by the given filesystem adapter.
func NewResolver(fs adapter.SourceFSAdapter) *Resolver {
	return &Resolver{fs: fs}
}

// Resolve computes the relative path from currentFile's directory to
// root/<subpath>. It returns ErrTargetMissing when the target is absent on
// disk; any other error means no relative path could be expressed (different
// volume roots, for example). Only existence is checked, not readability.
func (r *Resolver) Resolve(currentFile m.Path, subpath string, root m.Path) (string, error) {
	target := r.fs.JoinPath(string(root), subpath)
	if !r.fs.Exists(target) {
		return "", fmt.Errorf("%w: %s", ErrTargetMissing, subpath)
	}

	rel, err := r.fs.RelPath(m.Path(filepath.Dir(string(currentFile))), target)
	if err != nil {
		return "", fmt.Errorf("failed to compute relative path for %s: %w", subpath, err)
	}

	return string(rel), nil
}
