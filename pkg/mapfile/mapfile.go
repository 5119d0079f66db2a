// Package mapfile builds symbol tables from map-file text and applies
// symbol renames back onto it. A map file is any text file in which each
// line of interest carries a symbol and its address; no fixed layout is
// assumed beyond that.
package mapfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/aloe-os/symtool/pkg/mapline"
)

// BuildLookup parses every line of a map file and returns the symbol to
// address mapping. Later duplicate symbols overwrite earlier ones.
func BuildLookup(content string, win mapline.Window) map[string]uint32 {
	lookup := make(map[string]uint32)
	for rest := content; rest != ""; {
		line := rest
		if i := strings.IndexByte(rest, '\n'); i >= 0 {
			line, rest = rest[:i+1], rest[i+1:]
		} else {
			rest = ""
		}
		if sa, ok := mapline.Parse(strings.TrimSuffix(line, "\n"), win); ok {
			lookup[sa.Symbol] = sa.Addr
		}
	}
	return lookup
}

// ReadRenames builds the address to new-name table from r, one candidate
// per line. Lines with no in-window address are skipped silently; lines that
// are not valid UTF-8 are reported through skip (if non-nil) and then
// skipped. Later duplicate addresses overwrite earlier ones. Lines are
// streamed without a length cap.
func ReadRenames(r io.Reader, win mapline.Window, skip func(lineNo int, err error)) (map[uint32]string, error) {
	renames := make(map[uint32]string)

	br := bufio.NewReader(r)
	lineNo := 0
	for {
		line, rerr := br.ReadString('\n')
		if line != "" {
			lineNo++
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if !utf8.ValidString(line) {
				if skip != nil {
					skip(lineNo, fmt.Errorf("line %d is not valid UTF-8", lineNo))
				}
			} else if sa, ok := mapline.Parse(line, win); ok {
				renames[sa.Addr] = sa.Symbol
			}
		}
		if rerr != nil {
			if errors.Is(rerr, io.EOF) {
				return renames, nil
			}
			return nil, fmt.Errorf("read input: %w", rerr)
		}
	}
}
