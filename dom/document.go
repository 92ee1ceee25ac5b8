package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a parsed HTML document that owns a selection state. It is the
// host side of selection processing: it hands out ranges into its own text
// nodes and carries the mutations highlighting applies.
type Document struct {
	root *html.Node
	sel  *Selection
}

// Parse reads and parses an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	return &Document{root: root, sel: NewSelection()}, nil
}

// ParseString parses an HTML document from a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Root returns the document's root node.
func (d *Document) Root() *html.Node {
	return d.root
}

// Body returns the document's body element, or nil if the document has none.
func (d *Document) Body() *html.Node {
	for n := d.root; n != nil; n = nextNode(n, d.root) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Body {
			return n
		}
	}
	return nil
}

// Selection returns the document's selection state. The returned value is
// live: changes made through it are visible to every holder.
func (d *Document) Selection() *Selection {
	return d.sel
}

// Select replaces the current selection with the single given range.
func (d *Document) Select(r *Range) {
	d.sel.RemoveAllRanges()
	d.sel.AddRange(r)
}

// SelectText selects the first occurrence of query in the document's text.
// It returns ErrNotFound when the text does not occur.
func (d *Document) SelectText(query string) error {
	r, err := d.Index().Find(query, 0)
	if err != nil {
		return fmt.Errorf("selecting %q: %w", query, err)
	}
	d.Select(r)
	return nil
}

// ClearSelection removes all ranges from the selection.
func (d *Document) ClearSelection() {
	d.sel.RemoveAllRanges()
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	if err := html.Render(w, d.root); err != nil {
		return fmt.Errorf("rendering document: %w", err)
	}
	return nil
}

// HTML returns the document rendered as HTML.
func (d *Document) HTML() (string, error) {
	var sb strings.Builder
	if err := d.Render(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Text returns the document's visible text: the concatenation of its text
// nodes in document order, excluding script and style content.
func (d *Document) Text() string {
	return d.Index().Text()
}
