package dom

import "errors"

// Errors returned by document and range operations.
var (
	// ErrNoRange indicates the selection holds no range at the requested index.
	ErrNoRange = errors.New("no range in selection")

	// ErrNotTextNode indicates a range boundary container is not a text node.
	ErrNotTextNode = errors.New("boundary container is not a text node")

	// ErrNotElement indicates an element node was required.
	ErrNotElement = errors.New("node is not an element")

	// ErrInvalidOffset indicates a boundary offset is outside its node's text.
	ErrInvalidOffset = errors.New("offset outside node text")

	// ErrReversedRange indicates a range whose end precedes its start.
	ErrReversedRange = errors.New("range end precedes start")

	// ErrCrossNode indicates an operation restricted to a single text node was
	// given a range spanning two containers.
	ErrCrossNode = errors.New("range spans multiple text nodes")

	// ErrDetachedNode indicates a node with no parent where one was required.
	ErrDetachedNode = errors.New("node is detached from the tree")

	// ErrAttachedNode indicates a node that must be detached is already in a tree.
	ErrAttachedNode = errors.New("node is already attached to a tree")

	// ErrNotFound indicates the requested text does not occur in the document.
	ErrNotFound = errors.New("text not found in document")

	// ErrNotIndexed indicates a boundary whose node is not part of the index.
	ErrNotIndexed = errors.New("node is not in the index")
)
