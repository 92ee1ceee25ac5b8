package dom

import "golang.org/x/net/html"

// SurroundContents wraps the text spanned by r in the given element,
// inserting the element into the document tree in the range's place. The
// range must lie within a single attached text node; the wrapper must be a
// detached element.
//
// The container text node is split around the range: text before the range
// stays in the container, the selected text moves into a fresh text node
// inside the wrapper, and text after the range becomes a new sibling node.
// Empty leftovers are dropped. On return, r spans the wrapper's text
// content, so the text it reports is unchanged.
//
// Boundaries other than r's that point into the container are invalidated
// by the split.
//
// Errors: ErrNotElement if wrapper is not an element, ErrAttachedNode if it
// is already in a tree, ErrCrossNode if the range spans two containers,
// ErrDetachedNode if the container has no parent, plus boundary validation
// errors.
func SurroundContents(r *Range, wrapper *html.Node) error {
	if wrapper == nil || wrapper.Type != html.ElementNode {
		return ErrNotElement
	}
	if wrapper.Parent != nil {
		return ErrAttachedNode
	}
	if err := r.Start.valid(); err != nil {
		return err
	}
	if err := r.End.valid(); err != nil {
		return err
	}
	if !r.SameContainer() {
		return ErrCrossNode
	}
	if r.Start.Offset > r.End.Offset {
		return ErrReversedRange
	}

	container := r.Start.Node
	parent := container.Parent
	if parent == nil {
		return ErrDetachedNode
	}

	data := container.Data
	before, selected, after := data[:r.Start.Offset], data[r.Start.Offset:r.End.Offset], data[r.End.Offset:]

	inner := NewText(selected)
	wrapper.AppendChild(inner)

	// The container keeps the leading text; the wrapper and any trailing
	// text are inserted after it in order.
	container.Data = before
	parent.InsertBefore(wrapper, container.NextSibling)
	if after != "" {
		parent.InsertBefore(NewText(after), wrapper.NextSibling)
	}
	if before == "" {
		parent.RemoveChild(container)
	}

	r.Start = Boundary{Node: inner, Offset: 0}
	r.End = Boundary{Node: inner, Offset: len(selected)}
	return nil
}
