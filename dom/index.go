package dom

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Index is a flattened view of a document's text: every text node's content
// concatenated in document order, with a run table mapping flat byte offsets
// back to boundaries inside the originating nodes. Script and style content
// and empty text nodes are excluded.
//
// An Index is a snapshot. Mutating the document (including SurroundContents
// and Unwrap) invalidates it; build a fresh one after structural changes.
type Index struct {
	text string
	runs []run
}

// run records where one text node's content landed in the flat text.
type run struct {
	node  *html.Node
	start int // Flat offset of the node's first byte
}

// Index builds a flattened text index of the document in its current state.
func (d *Document) Index() *Index {
	var sb strings.Builder
	var runs []run
	for n := d.root; n != nil; n = nextNode(n, d.root) {
		if n.Type != html.TextNode || n.Data == "" || inSkippedElement(n) {
			continue
		}
		runs = append(runs, run{node: n, start: sb.Len()})
		sb.WriteString(n.Data)
	}
	return &Index{text: sb.String(), runs: runs}
}

// inSkippedElement reports whether a text node sits inside an element whose
// text is not document-visible text.
func inSkippedElement(n *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type != html.ElementNode {
			continue
		}
		switch p.DataAtom {
		case atom.Script, atom.Style, atom.Template:
			return true
		}
	}
	return false
}

// Text returns the flattened document text.
func (ix *Index) Text() string {
	return ix.text
}

// Len returns the length of the flattened text in bytes.
func (ix *Index) Len() int {
	return len(ix.text)
}

// Boundary maps a flat offset to a boundary inside a text node. An offset
// on the seam between two nodes maps to the start of the later node; the
// final offset maps to the end of the last node.
func (ix *Index) Boundary(off int) (Boundary, error) {
	if off < 0 || off > len(ix.text) || len(ix.runs) == 0 {
		return Boundary{}, fmt.Errorf("flat offset %d: %w", off, ErrInvalidOffset)
	}
	i := sort.Search(len(ix.runs), func(i int) bool { return ix.runs[i].start > off }) - 1
	r := ix.runs[i]
	return Boundary{Node: r.node, Offset: off - r.start}, nil
}

// endBoundary maps a flat offset to a boundary suited to ending a range: an
// offset on a seam maps to the end of the earlier node, keeping ranges whose
// text lies in one node inside that node.
func (ix *Index) endBoundary(off int) (Boundary, error) {
	if off < 0 || off > len(ix.text) || len(ix.runs) == 0 {
		return Boundary{}, fmt.Errorf("flat offset %d: %w", off, ErrInvalidOffset)
	}
	i := sort.Search(len(ix.runs), func(i int) bool { return ix.runs[i].start >= off }) - 1
	if i < 0 {
		i = 0
	}
	r := ix.runs[i]
	return Boundary{Node: r.node, Offset: off - r.start}, nil
}

// Offset maps a boundary back to a flat offset. It returns ErrNotIndexed if
// the boundary's node is not part of the index.
func (ix *Index) Offset(b Boundary) (int, error) {
	for _, r := range ix.runs {
		if r.node == b.Node {
			return r.start + b.Offset, nil
		}
	}
	return 0, ErrNotIndexed
}

// Range builds a document range covering the flat interval [start, end).
// A range whose text lies in a single node gets same-container boundaries;
// an interval crossing node seams yields a cross-node range.
func (ix *Index) Range(start, end int) (*Range, error) {
	if start > end {
		return nil, ErrReversedRange
	}
	sb, err := ix.Boundary(start)
	if err != nil {
		return nil, err
	}
	if start == end {
		return NewRange(sb, sb)
	}
	eb, err := ix.endBoundary(end)
	if err != nil {
		return nil, err
	}
	return NewRange(sb, eb)
}

// Find returns a range covering the nth occurrence (0-based) of query in
// the flattened text. It returns ErrNotFound when there is no such
// occurrence or the query is empty.
func (ix *Index) Find(query string, nth int) (*Range, error) {
	if query == "" || nth < 0 {
		return nil, ErrNotFound
	}
	off := 0
	for i := 0; ; i++ {
		j := strings.Index(ix.text[off:], query)
		if j < 0 {
			return nil, ErrNotFound
		}
		s := off + j
		if i == nth {
			return ix.Range(s, s+len(query))
		}
		off = s + len(query)
	}
}

// FindAll returns ranges covering every non-overlapping occurrence of query
// in the flattened text, in document order.
func (ix *Index) FindAll(query string) []*Range {
	if query == "" {
		return nil
	}
	var out []*Range
	off := 0
	for {
		j := strings.Index(ix.text[off:], query)
		if j < 0 {
			return out
		}
		s := off + j
		if r, err := ix.Range(s, s+len(query)); err == nil {
			out = append(out, r)
		}
		off = s + len(query)
	}
}
