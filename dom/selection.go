package dom

import "fmt"

// Selection is the document's current-selection state: an ordered list of
// ranges. It mirrors the selection model of a browsing host, where user
// interaction produces ranges and the document owns their lifecycle.
//
// Most consumers use only the first range.
type Selection struct {
	ranges []*Range
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{}
}

// RangeCount returns the number of ranges in the selection.
func (s *Selection) RangeCount() int {
	return len(s.ranges)
}

// RangeAt returns the range at index i. It returns ErrNoRange when the
// selection is empty or i is out of bounds.
func (s *Selection) RangeAt(i int) (*Range, error) {
	if i < 0 || i >= len(s.ranges) {
		return nil, fmt.Errorf("range %d of %d: %w", i, len(s.ranges), ErrNoRange)
	}
	return s.ranges[i], nil
}

// AddRange appends a range to the selection. Nil ranges are ignored.
func (s *Selection) AddRange(r *Range) {
	if r == nil {
		return
	}
	s.ranges = append(s.ranges, r)
}

// RemoveAllRanges empties the selection.
func (s *Selection) RemoveAllRanges() {
	s.ranges = nil
}

// IsCollapsed returns true if the selection is empty or every range in it
// has no extent.
func (s *Selection) IsCollapsed() bool {
	for _, r := range s.ranges {
		if !r.Collapsed() {
			return false
		}
	}
	return true
}

// String returns a human-readable representation of the selection.
func (s *Selection) String() string {
	if len(s.ranges) == 0 {
		return "Selection()"
	}
	return fmt.Sprintf("Selection(%d ranges, first %s)", len(s.ranges), s.ranges[0])
}
