package edit

import (
	"fmt"
	"sort"
)

// ValidationError describes an edit with an invalid range.
type ValidationError struct {
	Edit    TextEdit
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid edit [%d:%d]: %s", e.Edit.StartOffset, e.Edit.EndOffset, e.Message)
}

// ConflictError describes overlapping edits.
type ConflictError struct {
	Edit1 TextEdit
	Edit2 TextEdit
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("overlapping edits: [%d:%d] and [%d:%d]",
		e.Edit1.StartOffset, e.Edit1.EndOffset,
		e.Edit2.StartOffset, e.Edit2.EndOffset)
}

// Validate checks that all edits have valid ranges for the given content
// length. Returns the first invalid edit encountered, or nil.
func Validate(edits []TextEdit, contentLen int) error {
	for _, e := range edits {
		if e.StartOffset < 0 {
			return &ValidationError{Edit: e, Message: "start offset is negative"}
		}
		if e.EndOffset < e.StartOffset {
			return &ValidationError{Edit: e, Message: "end offset is before start offset"}
		}
		if e.EndOffset > contentLen {
			return &ValidationError{
				Edit:    e,
				Message: fmt.Sprintf("end offset %d exceeds content length %d", e.EndOffset, contentLen),
			}
		}
	}
	return nil
}

// Sort orders edits by start offset, then by end offset, producing a
// deterministic application order.
func Sort(edits []TextEdit) {
	sort.Slice(edits, func(i, j int) bool {
		if edits[i].StartOffset != edits[j].StartOffset {
			return edits[i].StartOffset < edits[j].StartOffset
		}
		return edits[i].EndOffset < edits[j].EndOffset
	})
}

// DetectConflicts checks a sorted slice for overlapping edits.
// Returns the first conflict found, or nil.
func DetectConflicts(edits []TextEdit) error {
	for i := 1; i < len(edits); i++ {
		prev := edits[i-1]
		curr := edits[i]
		if curr.StartOffset < prev.EndOffset {
			return &ConflictError{Edit1: prev, Edit2: curr}
		}
	}
	return nil
}

// Prepare validates, sorts, and checks for conflicts without mutating the
// input. The returned slice is ready for Apply.
func Prepare(edits []TextEdit, contentLen int) ([]TextEdit, error) {
	if len(edits) == 0 {
		return edits, nil
	}

	if err := Validate(edits, contentLen); err != nil {
		return nil, err
	}

	result := make([]TextEdit, len(edits))
	copy(result, edits)
	Sort(result)

	if err := DetectConflicts(result); err != nil {
		return nil, err
	}

	return result, nil
}
