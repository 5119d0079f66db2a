// Package mapline heuristically extracts one address and one symbol name
// from a single line of a symbol map file. No column or field layout is
// assumed; the only requirement is that the address and the symbol share
// the line. The heuristics are deliberate and callers depend on their exact
// behavior, misparses included, so they must not be "improved".
package mapline

import (
	"unicode"

	"github.com/aloe-os/symtool/pkg/scan"
)

// Window is the half-open range of values accepted as addresses. It exists
// to disambiguate real addresses from incidental hex-looking text.
type Window struct {
	Lo uint32
	Hi uint32
}

// DefaultWindow is the plausible address range for the target memory
// layout: [0x80000000, 0x81800000).
func DefaultWindow() Window {
	return Window{Lo: 0x80000000, Hi: 0x81800000}
}

// Contains reports whether v lies inside the window.
func (w Window) Contains(v uint32) bool {
	return v >= w.Lo && v < w.Hi
}

// SymAddr is the result of parsing one line: an address and a symbol name,
// each with its byte range within the line. The ranges may appear in either
// relative order.
type SymAddr struct {
	Addr      uint32
	AddrStart int
	AddrEnd   int

	Symbol   string
	SymStart int
	SymEnd   int
}

// Parse extracts the address and symbol from line. ok is false when the
// line contains no in-window address or no symbol.
//
// The address is the first (leftmost) run of exactly 8 hexadecimal digits
// whose value falls inside win; out-of-window runs are skipped. The symbol
// scan always restarts from the beginning of the line: runs of hex digits
// introduced by a numeric character are skipped so raw addresses are not
// mistaken for identifiers, and the first identifier-start character after
// that wins.
//
// Known quirk: a "0x" address prefix makes the leading 0 enter the hex-skip,
// which stops at the non-hex 'x'; the scan then accepts 'x' as an identifier
// start, so the symbol parses as the 'x' plus the address digits. Real map
// corpora do not carry 0x prefixes, and downstream scripts depend on the
// behavior as it stands.
func Parse(line string, win Window) (SymAddr, bool) {
	addr, addrStart, found := findAddr(line, win)
	if !found {
		return SymAddr{}, false
	}

	symStart, symEnd, found := findSymbol(line)
	if !found {
		return SymAddr{}, false
	}

	return SymAddr{
		Addr:      addr,
		AddrStart: addrStart,
		AddrEnd:   addrStart + 8,
		Symbol:    line[symStart:symEnd],
		SymStart:  symStart,
		SymEnd:    symEnd,
	}, true
}

// findAddr slides an 8-byte window across the line and accepts the first
// all-hex window whose value is inside win.
func findAddr(line string, win Window) (addr uint32, start int, ok bool) {
window:
	for i := 0; i+8 <= len(line); i++ {
		var v uint32
		for j := 0; j < 8; j++ {
			n, hex := hexVal(line[i+j])
			if !hex {
				continue window
			}
			v = v<<4 | n
		}
		if win.Contains(v) {
			return v, i, true
		}
	}
	return 0, 0, false
}

// findSymbol locates the symbol's byte range, scanning from the start of
// the line regardless of where the address was found.
func findSymbol(line string) (start, end int, ok bool) {
	cur := scan.New(line)

	for {
		r, more := cur.Peek()
		if !more {
			return 0, 0, false
		}
		switch {
		case unicode.IsNumber(r):
			// Looks like the start of a hex number; skip past it so an
			// address is not parsed as a symbol.
			cur.Next()
			cur.TakeWhile(isHexRune)
			if cur.Done() {
				return 0, 0, false
			}
		case scan.IsIdentStart(r):
			tok := cur.TakeWhile(scan.IsIdentRune)
			return tok.Start, tok.End, true
		default:
			cur.Next()
		}
	}
}

func hexVal(b byte) (uint32, bool) {
	switch {
	case b >= '0' && b <= '9':
		return uint32(b - '0'), true
	case b >= 'a' && b <= 'f':
		return uint32(b-'a') + 10, true
	case b >= 'A' && b <= 'F':
		return uint32(b-'A') + 10, true
	}
	return 0, false
}

func isHexRune(r rune) bool {
	return (r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'f') ||
		(r >= 'A' && r <= 'F')
}
