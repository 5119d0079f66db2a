package mapfile

import (
	"fmt"
	"strings"

	"github.com/aloe-os/symtool/pkg/edit"
	"github.com/aloe-os/symtool/pkg/mapline"
)

// Replacement records one applied rename.
type Replacement struct {
	Old string
	New string
}

// Update applies renames to the map file text and returns the rewritten
// content plus the replacements in the order they were found.
//
// Lines are visited from the end of the file backward, so the reported
// order is end-to-start. The edits themselves are collected as byte-range
// replacements and applied onto an immutable copy of content, so a rename
// that changes a symbol's length never disturbs another line's offsets.
//
// When renames is empty, content is returned unchanged with no replacements.
func Update(content string, renames map[uint32]string, win mapline.Window) ([]byte, []Replacement, error) {
	if len(renames) == 0 {
		return []byte(content), nil, nil
	}

	b := edit.NewBuilder()
	var applied []Replacement

	// Split on the last remaining newline each round; the final chunk with
	// no newline before it is the file's first line.
	i := len(content)
	for i > 0 {
		lineStart := strings.LastIndexByte(content[:i], '\n') + 1
		line := content[lineStart:i]

		if sa, ok := mapline.Parse(line, win); ok {
			if newName, renamed := renames[sa.Addr]; renamed {
				b.ReplaceRange(lineStart+sa.SymStart, lineStart+sa.SymEnd, newName)
				applied = append(applied, Replacement{Old: sa.Symbol, New: newName})
			}
		}

		if lineStart == 0 {
			break
		}
		i = lineStart - 1
	}

	edits, err := edit.Prepare(b.Edits, len(content))
	if err != nil {
		return nil, nil, fmt.Errorf("prepare edits: %w", err)
	}

	return edit.Apply([]byte(content), edits), applied, nil
}
