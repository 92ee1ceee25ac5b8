package selmark

import (
	"golang.org/x/net/html"

	"github.com/dshills/selmark/dom"
)

// Defaults used when Options.Highlight applies a highlight.
const (
	// DefaultTag is the element wrapped around highlighted text.
	DefaultTag = "span"

	// DefaultColor is the background color of the default highlight.
	DefaultColor = "yellow"
)

// Decorator styles a freshly created highlight wrapper before it is
// inserted into the document. It receives the detached element and may set
// any attributes on it.
type Decorator func(el *html.Node)

// BackgroundColor returns a decorator that sets the element's background
// color, preserving any other style declarations.
func BackgroundColor(color string) Decorator {
	return func(el *html.Node) {
		dom.SetStyle(el, "background-color", color)
	}
}

// Class returns a decorator that sets the element's class attribute.
func Class(name string) Decorator {
	return func(el *html.Node) {
		dom.SetAttr(el, "class", name)
	}
}

// Compose returns a decorator applying each given decorator in order. Nil
// decorators are skipped.
func Compose(decorators ...Decorator) Decorator {
	return func(el *html.Node) {
		for _, d := range decorators {
			if d != nil {
				d(el)
			}
		}
	}
}
