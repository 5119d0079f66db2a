// Package runner discovers source files under a path and feeds them through
// the symbol extractor, skipping unreadable and binary files as recoverable
// per-item failures.
package runner

// Options controls discovery and extraction for one run.
type Options struct {
	// Path is the file or directory tree to scan.
	Path string

	// WorkingDir anchors relative paths and glob matching.
	// Defaults to the process working directory.
	WorkingDir string

	// Extensions is the accepted file extension set, including the dot.
	Extensions []string

	// ExcludeGlobs lists glob patterns for paths to skip.
	ExcludeGlobs []string

	// Diag receives recoverable per-item diagnostics. May be nil.
	Diag func(format string, args ...any)
}

func (o Options) diag(format string, args ...any) {
	if o.Diag != nil {
		o.Diag(format, args...)
	}
}
