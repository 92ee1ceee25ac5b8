// Package selmark processes a document's active text selection: it reads
// the first range of the host's selection state, wraps it in a Selection
// value, and offers two convenience behaviors on top. The range can be
// expanded to whole-word boundaries, and the selected text can be wrapped
// in a decorated element for visual highlighting.
//
// Basic usage:
//
//	doc, _ := dom.ParseString("<p>hello world</p>")
//	_ = doc.SelectText("world")
//
//	sel, err := selmark.Process(doc, selmark.Options{
//	    SnapToWord: true,
//	    Highlight:  true,
//	})
//	if err != nil {
//	    return err // no active selection
//	}
//	fmt.Println(sel.Text())          // "world"
//	fmt.Println(sel.IsHighlighted()) // true
//
// Custom highlighting uses a tag name and a Decorator:
//
//	sel.Highlight("em", func(el *html.Node) {
//	    dom.SetAttr(el, "class", "note")
//	})
//
// A Selection value aliases live host state: its range belongs to the
// document, and SnapToWord and Highlight mutate that shared range and the
// document tree in place. The value itself tracks only the highlight
// wrapper currently applied, if any. Highlighting is restricted
// to ranges within a single text node; a request to highlight a range that
// spans text nodes is silently ignored and the value stays unhighlighted.
//
// Marker applies the same highlighting to every occurrence of a query in a
// document in one pass; see its documentation for details.
package selmark
