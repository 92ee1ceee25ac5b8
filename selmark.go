package selmark

import (
	"fmt"

	"github.com/dshills/selmark/dom"
)

// Options configures a processing call. The zero value applies no behavior
// beyond wrapping the active range.
type Options struct {
	// SnapToWord expands the selection to word boundaries before returning.
	SnapToWord bool

	// Highlight wraps the selection in the default highlight element (a
	// span with a yellow background) before returning.
	Highlight bool
}

// Host provides access to a document's selection state. *dom.Document
// satisfies Host.
type Host interface {
	Selection() *dom.Selection
}

// Process reads the host's first active selection range and returns a
// Selection value around it, applying the behaviors the options request.
// It returns ErrNoSelection when the host reports no active range.
//
// The returned value aliases the host's live range; snapping and
// highlighting mutate shared host state.
func Process(host Host, opts Options) (*Selection, error) {
	rng, err := host.Selection().RangeAt(0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoSelection, err)
	}

	sel := NewSelection(rng)
	if opts.SnapToWord {
		sel.SnapToWord()
	}
	if opts.Highlight {
		sel.Highlight(DefaultTag, BackgroundColor(DefaultColor))
	}
	return sel, nil
}
