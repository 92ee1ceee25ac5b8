// Package dom provides an in-memory HTML document with text ranges and a
// document-owned selection state. It plays the role of the host environment
// for selection processing: parsing documents, addressing spans of text
// inside them, and applying the tree mutations highlighting needs.
//
// The package provides:
//
//   - Document parsing and rendering built on golang.org/x/net/html
//   - Boundary and Range types addressing positions inside text nodes
//   - A Selection holding the document's active ranges
//   - A flattened text Index mapping document text to range boundaries
//   - Tree mutation helpers: SurroundContents, Unwrap, attribute and
//     style setters
//
// Basic usage:
//
//	doc, err := dom.ParseString("<p>hello world</p>")
//	if err != nil {
//	    return err
//	}
//
//	// Select a span of text and read it back
//	if err := doc.SelectText("world"); err != nil {
//	    return err
//	}
//	rng, _ := doc.Selection().RangeAt(0)
//	fmt.Println(rng.Text()) // "world"
//
//	// Wrap the span in a new element
//	mark := dom.NewElement("mark")
//	if err := dom.SurroundContents(rng, mark); err != nil {
//	    return err
//	}
//
// Ranges alias live document state. A Range holds references to text nodes
// owned by the document; mutating operations such as SurroundContents move
// the range's boundaries to track the change, and invalidate any other
// boundaries held into the same text node. The package assumes the
// single-threaded, UI-driven access pattern of its host: no operation is
// safe for concurrent use.
package dom
