package model

// ProcessOptions controls how a single source file is processed.
type ProcessOptions struct {
	// DryRun reports what would change without touching the filesystem.
	DryRun bool

	// Force rewrites the file even when no include was changed.
	Force bool

	// MakeBackup copies the original bytes to a .bakN sibling before writing.
	MakeBackup bool

	// Verbose enables debug-level log lines.
	Verbose bool

	// CheckOnly classifies the file as changed/unchanged and stops there.
	CheckOnly bool

	// ShowDiff prints a unified diff for every file that would be written.
	ShowDiff bool
}
