package cli

import (
	"errors"

	"github.com/aloe-os/symtool/pkg/fsutil"
)

// ErrUsage marks errors caused by invalid command-line usage.
var ErrUsage = errors.New("invalid usage")

// Exit codes for symtool, following the sysexits convention.
const (
	// ExitSuccess indicates successful execution, including early
	// termination on a closed output pipe.
	ExitSuccess = 0

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors on a command's primary subject.
	ExitIOError = 74
)

// ExitCode maps an error returned from command execution to an exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrUsage):
		return ExitInvalidUsage
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
