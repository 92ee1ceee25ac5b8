package dom

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Boundary is a position inside a text node: the container node plus a byte
// offset into its text content. Offset 0 is before the first byte; an offset
// equal to len(Node.Data) is after the last.
type Boundary struct {
	Node   *html.Node // Text node containing the position
	Offset int        // Byte offset into Node.Data
}

// valid reports whether the boundary points inside a text node's content.
func (b Boundary) valid() error {
	if b.Node == nil || b.Node.Type != html.TextNode {
		return ErrNotTextNode
	}
	if b.Offset < 0 || b.Offset > len(b.Node.Data) {
		return ErrInvalidOffset
	}
	return nil
}

// Range is a contiguous span of document text between two boundaries.
// Start is inclusive, End is exclusive.
//
// A Range aliases live document state: its boundary nodes are owned by the
// host document, and operations such as SurroundContents move the boundaries
// to track the mutation. Ranges are not snapshots.
type Range struct {
	Start Boundary // Inclusive start position
	End   Boundary // Exclusive end position
}

// NewRange creates a range between two boundaries. Both containers must be
// text nodes with in-bounds offsets, and the end must not precede the start
// in document order.
func NewRange(start, end Boundary) (*Range, error) {
	if err := start.valid(); err != nil {
		return nil, fmt.Errorf("start boundary: %w", err)
	}
	if err := end.valid(); err != nil {
		return nil, fmt.Errorf("end boundary: %w", err)
	}
	if start.Node == end.Node {
		if start.Offset > end.Offset {
			return nil, ErrReversedRange
		}
	} else if !precedes(start.Node, end.Node) {
		return nil, ErrReversedRange
	}
	return &Range{Start: start, End: end}, nil
}

// Collapsed returns true if the range has no extent.
func (r *Range) Collapsed() bool {
	return r.Start.Node == r.End.Node && r.Start.Offset == r.End.Offset
}

// SameContainer returns true if both boundaries live in the same text node.
func (r *Range) SameContainer() bool {
	return r.Start.Node == r.End.Node
}

// Text returns the document text currently spanned by the range. For a
// same-container range this is a slice of the node's content; otherwise it
// is the start tail, every intervening text node, and the end head, in
// document order.
func (r *Range) Text() string {
	if r.Start.Node == nil || r.End.Node == nil {
		return ""
	}
	if r.SameContainer() {
		data := r.Start.Node.Data
		s, e := clampOffset(r.Start.Offset, len(data)), clampOffset(r.End.Offset, len(data))
		if s > e {
			return ""
		}
		return data[s:e]
	}

	var sb strings.Builder
	sb.WriteString(r.Start.Node.Data[clampOffset(r.Start.Offset, len(r.Start.Node.Data)):])
	for n := nextNode(r.Start.Node, nil); n != nil && n != r.End.Node; n = nextNode(n, nil) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
	}
	sb.WriteString(r.End.Node.Data[:clampOffset(r.End.Offset, len(r.End.Node.Data))])
	return sb.String()
}

// Clone returns a copy of the range sharing the same boundary nodes.
func (r *Range) Clone() *Range {
	return &Range{Start: r.Start, End: r.End}
}

// String returns a human-readable representation of the range.
func (r *Range) String() string {
	if r.SameContainer() {
		return fmt.Sprintf("[%d:%d)", r.Start.Offset, r.End.Offset)
	}
	return fmt.Sprintf("[%d:...:%d)", r.Start.Offset, r.End.Offset)
}

// precedes reports whether text node a comes before text node b in document
// order. Text nodes are leaves, so b can never be a descendant of a.
func precedes(a, b *html.Node) bool {
	for n := nextNode(a, nil); n != nil; n = nextNode(n, nil) {
		if n == b {
			return true
		}
	}
	return false
}

// clampOffset limits off to [0, max].
func clampOffset(off, max int) int {
	if off < 0 {
		return 0
	}
	if off > max {
		return max
	}
	return off
}
