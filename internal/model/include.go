package model

// IncludeRef is a root-relative include directive extracted from a source
// line: the text between `"@/` and the closing quote.
type IncludeRef struct {
	Subpath string
}

// MissingInclude records an include whose target does not exist under the
// project root. Accumulated across the run and listed in the final summary.
type MissingInclude struct {
	File    Path
	Subpath string
}

// IncludeStat pairs a scanned file with the number of root-relative include
// directives it carries. Produced by the list command.
type IncludeStat struct {
	File     Path
	Includes int
}
