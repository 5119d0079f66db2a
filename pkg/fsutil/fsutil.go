// Package fsutil provides whole-file reads and atomic whole-file writes.
// The map file is the only durable artifact the tool owns, so persistence
// goes through a temp-file-and-rename to keep a crash mid-write from
// corrupting it.
package fsutil

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// Sentinel errors for categorization via errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")
)

// ReadFile reads a file entirely into memory and returns its content along
// with the file's mode bits, so a later rewrite can preserve them.
func ReadFile(ctx context.Context, path string) ([]byte, os.FileMode, error) {
	select {
	case <-ctx.Done():
		return nil, 0, fmt.Errorf("read file: %w", ctx.Err())
	default:
	}

	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
		}
		if os.IsPermission(err) {
			return nil, 0, fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
		}
		return nil, 0, fmt.Errorf("stat %s: %w", path, err)
	}

	if stat.IsDir() {
		return nil, 0, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, 0, fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
		}
		return nil, 0, fmt.Errorf("read %s: %w", path, err)
	}

	return content, stat.Mode(), nil
}
