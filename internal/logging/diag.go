package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// diagOut is where Diag writes. Recoverable failures go to standard output,
// not error output, so they interleave with the command's normal output
// stream when piped.
//
//nolint:gochecknoglobals // Swappable for tests
var diagOut io.Writer = os.Stdout

// SetDiagOutput redirects Diag output, returning the previous writer.
func SetDiagOutput(w io.Writer) io.Writer {
	prev := diagOut
	diagOut = w
	return prev
}

// Diag reports a recoverable per-item failure as a single line on standard
// output, prefixed by the invoking command line and a separator:
//
//	symtool extract src | Failed to read file src/x.c: permission denied
//
// Leveled logging stays on the stderr logger; this format is an exact output
// contract and must not carry level or timestamp decoration.
func Diag(format string, args ...any) {
	var b strings.Builder
	for _, arg := range os.Args {
		b.WriteString(arg)
		b.WriteString(" ")
	}
	b.WriteString("| ")
	fmt.Fprintf(&b, format, args...)
	b.WriteString("\n")
	_, _ = io.WriteString(diagOut, b.String())
}
