// Package extract finds candidate function-symbol names in C-like source
// text. It is a line-local heuristic, not a C parser: any identifier
// immediately followed by '(' is reported unless filtered, including plain
// function calls and macro invocations. Callers accept that imprecision.
package extract

import "github.com/aloe-os/symtool/pkg/scan"

// DefaultKeywords are the control-flow and operator keywords that look like
// calls but never name a function.
func DefaultKeywords() []string {
	return []string{
		"if", "for", "while", "return", "switch", "case",
		"sizeof", "alignof", "__attribute__",
	}
}

// Extractor scans source text for function-definition-like sites.
type Extractor struct {
	keywords map[string]struct{}
}

// New returns an extractor filtering the default keywords plus any extras.
func New(extra ...string) *Extractor {
	e := &Extractor{keywords: make(map[string]struct{})}
	for _, kw := range DefaultKeywords() {
		e.keywords[kw] = struct{}{}
	}
	for _, kw := range extra {
		e.keywords[kw] = struct{}{}
	}
	return e
}

// Scan walks src and calls emit for each candidate symbol in order of first
// occurrence. Duplicates are not deduplicated. A non-nil error from emit
// stops the scan and is returned unchanged, so callers can abort early when
// a downstream consumer stops reading.
func (e *Extractor) Scan(src string, emit func(name string) error) error {
	cur := scan.New(src)
	for !cur.Done() {
		if name, ok := e.candidate(cur); ok {
			if err := emit(name); err != nil {
				return err
			}
		}
		// Skip until the next possible identifier start, then try again.
		cur.TakeWhile(notIdentStart)
	}
	return nil
}

// Symbols returns all candidate symbols in src.
func (e *Extractor) Symbols(src string) []string {
	var syms []string
	_ = e.Scan(src, func(name string) error {
		syms = append(syms, name)
		return nil
	})
	return syms
}

// candidate attempts to read one function-like site at the cursor.
func (e *Extractor) candidate(cur *scan.Cursor) (string, bool) {
	cur.TakeWhitespace()

	name := cur.TakeIdentifier()
	if name.IsEmpty() {
		return "", false
	}

	// The call/definition marker.
	cur.TakeWhitespace()
	if cur.TakeWhile(isOpenParen).IsEmpty() {
		return "", false
	}

	// Filter function-pointer and typedef declarations: identifier ( * ... ).
	cur.TakeWhitespace()
	if !cur.TakeWhile(isStar).IsEmpty() {
		return "", false
	}

	if _, reserved := e.keywords[name.Text]; reserved {
		return "", false
	}

	return name.Text, true
}

func isOpenParen(r rune) bool { return r == '(' }

func isStar(r rune) bool { return r == '*' }

func notIdentStart(r rune) bool { return !scan.IsIdentStart(r) }
