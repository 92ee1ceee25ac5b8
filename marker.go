package selmark

import (
	"github.com/google/uuid"
	"golang.org/x/net/html"

	"github.com/dshills/selmark/dom"
)

// DefaultIDAttr is the attribute carrying a mark's identifier.
const DefaultIDAttr = "data-selmark-id"

// Mark records one highlight a Marker applied.
type Mark struct {
	// ID is the identifier written to the wrapper's id attribute, empty
	// when id attributes are disabled.
	ID string

	// Text is the highlighted text.
	Text string

	// Element is the wrapper inserted into the document.
	Element *html.Node
}

// Marker applies a highlight to every occurrence of a query in a document.
// Each occurrence is processed as its own single-range selection.
//
// Occurrences whose text spans more than one text node cannot be wrapped
// and are skipped.
type Marker struct {
	// Tag is the wrapper element's tag name.
	Tag string

	// Decorate styles each wrapper. May be nil.
	Decorate Decorator

	// IDAttr is the attribute receiving a generated identifier on each
	// wrapper. Set it empty to disable identifiers.
	IDAttr string
}

// NewMarker returns a marker with the default tag, highlight color, and id
// attribute.
func NewMarker() *Marker {
	return &Marker{
		Tag:      DefaultTag,
		Decorate: BackgroundColor(DefaultColor),
		IDAttr:   DefaultIDAttr,
	}
}

// Apply highlights every occurrence of query in the document and returns
// the applied marks in document order. It returns ErrEmptyQuery for an
// empty query; a query with no wrappable occurrences yields no marks and
// no error.
//
// Matches are applied in reverse document order: wrapping splits the
// containing text node, and applying back-to-front keeps the boundaries of
// earlier matches valid while later ones are wrapped.
func (m *Marker) Apply(doc *dom.Document, query string) ([]Mark, error) {
	if query == "" {
		return nil, ErrEmptyQuery
	}

	ranges := doc.Index().FindAll(query)

	var marks []Mark
	for i := len(ranges) - 1; i >= 0; i-- {
		sel := NewSelection(ranges[i])
		sel.Highlight(m.Tag, m.Decorate)
		if !sel.IsHighlighted() {
			continue // occurrence spans text nodes
		}

		mark := Mark{Text: sel.Text(), Element: sel.Wrapper()}
		if m.IDAttr != "" {
			mark.ID = uuid.NewString()
			dom.SetAttr(mark.Element, m.IDAttr, mark.ID)
		}
		marks = append(marks, mark)
	}

	// Applied back-to-front; report in document order.
	for i, j := 0, len(marks)-1; i < j; i, j = i+1, j-1 {
		marks[i], marks[j] = marks[j], marks[i]
	}
	return marks, nil
}

// Unmark removes every wrapper carrying the given id attribute from the
// document and returns how many were removed.
func Unmark(doc *dom.Document, idAttr string) int {
	if idAttr == "" {
		return 0
	}
	removed := 0
	for _, el := range dom.ElementsByAttr(doc.Root(), idAttr) {
		if dom.Unwrap(el) == nil {
			removed++
		}
	}
	return removed
}
