package selmark

import (
	"golang.org/x/net/html"

	"github.com/dshills/selmark/dom"
)

// Selection wraps one contiguous text range of a host document and tracks
// the highlight wrapper currently applied to it, if any.
//
// The range is owned by the host: a Selection holds a non-owning reference
// to shared, live state, and SnapToWord and Highlight mutate that state in
// place. A Selection is created per processing call and discarded when the
// caller is done; the host's own selection may change independently
// afterward.
type Selection struct {
	rng     *dom.Range
	wrapper *html.Node // Highlight wrapper, nil when not highlighted
}

// NewSelection wraps a host range in a Selection value. The value starts
// unhighlighted.
func NewSelection(r *dom.Range) *Selection {
	return &Selection{rng: r}
}

// Range returns the wrapped host range.
func (s *Selection) Range() *dom.Range {
	return s.rng
}

// IsHighlighted returns true if a highlight wrapper is currently applied.
func (s *Selection) IsHighlighted() bool {
	return s.wrapper != nil
}

// Wrapper returns the highlight wrapper element, or nil when the selection
// is not highlighted.
func (s *Selection) Wrapper() *html.Node {
	return s.wrapper
}

// Text returns the text currently spanned by the range, reflecting any
// boundary mutation already applied.
func (s *Selection) Text() string {
	return s.rng.Text()
}

// SnapToWord expands the range in place so that its start and end land on
// word boundaries. Space is the only boundary character; the start and end
// are adjusted independently within their own containers, so no boundary
// detection happens across nodes.
//
// The start walks backward while the character at the offset is not a
// space; if it stops on a space short of both the node start and the
// original offset, it steps forward to land just after that space. The end
// walks forward until it reaches a space or the end of the node's text.
func (s *Selection) SnapToWord() {
	start := s.rng.Start
	data := start.Node.Data
	off := start.Offset
	for off > 0 && !spaceAt(data, off) {
		off--
	}
	if off != 0 && off != start.Offset {
		off++
	}
	s.rng.Start.Offset = off

	end := s.rng.End
	data = end.Node.Data
	off = end.Offset
	for off < len(data) && !spaceAt(data, off) {
		off++
	}
	s.rng.End.Offset = off
}

// spaceAt reports whether the byte at off is a space. An offset at the end
// of the text is not a space.
func spaceAt(data string, off int) bool {
	return off < len(data) && data[off] == ' '
}

// Highlight wraps the selected text in a new element of the given tag,
// styled by the decorator, and inserts it into the document tree. Any
// existing highlight is removed first, so repeated calls leave exactly one
// wrapper. The decorator may be nil.
//
// Highlighting requires the range's start and end to share one text node.
// When the range spans two containers the call is a silent no-op and the
// selection stays unhighlighted.
func (s *Selection) Highlight(tag string, decorate Decorator) {
	s.RemoveHighlight()
	if !s.rng.SameContainer() {
		return
	}

	el := dom.NewElement(tag)
	if decorate != nil {
		decorate(el)
	}
	if err := dom.SurroundContents(s.rng, el); err != nil {
		return // leave the selection unhighlighted
	}
	s.wrapper = el
}

// RemoveHighlight unwraps the highlight wrapper, reparenting its content to
// the wrapper's former position, and clears the stored reference. It is a
// no-op when nothing is highlighted.
func (s *Selection) RemoveHighlight() {
	if s.wrapper == nil {
		return
	}
	_ = dom.Unwrap(s.wrapper) // wrapper may already be detached
	s.wrapper = nil
}
