package runner

import (
	"context"

	"github.com/go-enry/go-enry/v2"

	"github.com/aloe-os/symtool/pkg/extract"
	"github.com/aloe-os/symtool/pkg/fsutil"
)

// Result summarizes one extraction run.
type Result struct {
	FilesScanned int
	SymbolsFound int
}

// Run discovers files per opts and streams every candidate symbol to emit.
// Unreadable files are reported through opts.Diag and skipped; binary files
// are skipped silently. A non-nil error from emit aborts the run and is
// returned unchanged, so the caller can treat a closed output pipe as
// normal termination.
func Run(ctx context.Context, opts Options, ex *extract.Extractor, emit func(name string) error) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for _, path := range files {
		content, _, err := fsutil.ReadFile(ctx, path)
		if err != nil {
			opts.diag("Failed to read file %s: %v", path, err)
			continue
		}

		if enry.IsBinary(content) {
			continue
		}

		result.FilesScanned++
		err = ex.Scan(string(content), func(name string) error {
			result.SymbolsFound++
			return emit(name)
		})
		if err != nil {
			return result, err
		}
	}

	return result, nil
}
