package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Discover finds files under opts.Path matching the extension set.
// It returns a deterministically sorted list of paths. Unreadable entries
// are reported through opts.Diag and skipped.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	root := opts.Path
	if !filepath.IsAbs(root) {
		root = filepath.Join(workDir, root)
	}
	root = filepath.Clean(root)

	info, err := os.Stat(root)
	if err != nil {
		// A missing or unreadable root yields no files, not a failed run.
		opts.diag("Failed to read %s: %v", opts.Path, err)
		return nil, nil
	}

	if !info.IsDir() {
		if matchesFile(root, workDir, opts) {
			return []string{root}, nil
		}
		return nil, nil
	}

	files, err := walkDirectory(ctx, root, workDir, opts)
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

func walkDirectory(ctx context.Context, root, workDir string, opts Options) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if walkErr != nil {
			opts.diag("Failed to read %s: %v", path, walkErr)
			if entry != nil && entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.IsDir() {
			// Skip hidden directories (except the root itself).
			if path != root && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			if matchesExclude(relTo(workDir, path), opts.ExcludeGlobs) {
				return filepath.SkipDir
			}
			return nil
		}

		if !entry.Type().IsRegular() {
			return nil
		}

		if matchesFile(path, workDir, opts) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	return files, nil
}

func matchesFile(path, workDir string, opts Options) bool {
	if !hasMatchingExtension(path, opts.Extensions) {
		return false
	}
	return !matchesExclude(relTo(workDir, path), opts.ExcludeGlobs)
}

func hasMatchingExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}

func matchesExclude(relPath string, patterns []string) bool {
	relPath = filepath.ToSlash(relPath)
	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if matched, err := filepath.Match(pattern, relPath); err == nil && matched {
			return true
		}
		if matched, err := filepath.Match(pattern, filepath.Base(relPath)); err == nil && matched {
			return true
		}
	}
	return false
}

func relTo(workDir, path string) string {
	rel, err := filepath.Rel(workDir, path)
	if err != nil {
		return path
	}
	return rel
}
