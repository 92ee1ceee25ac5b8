package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// NewElement creates a detached element node with the given tag name.
func NewElement(tag string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
}

// NewText creates a detached text node with the given content.
func NewText(text string) *html.Node {
	return &html.Node{
		Type: html.TextNode,
		Data: text,
	}
}

// GetAttr returns the value of the named attribute and whether it is present.
func GetAttr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets the named attribute, replacing any existing value.
func SetAttr(n *html.Node, name, value string) {
	for i := range n.Attr {
		if n.Attr[i].Key == name {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: name, Val: value})
}

// SetStyle sets one CSS property in the node's style attribute, preserving
// any other declarations already present.
func SetStyle(n *html.Node, property, value string) {
	style, _ := GetAttr(n, "style")

	var decls []string
	for _, d := range strings.Split(style, ";") {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		name, _, ok := strings.Cut(d, ":")
		if ok && strings.TrimSpace(name) == property {
			continue // replaced below
		}
		decls = append(decls, d)
	}
	decls = append(decls, property+": "+value)

	SetAttr(n, "style", strings.Join(decls, "; "))
}

// Unwrap detaches an element while reparenting all of its children to its
// former position, preserving their order. The element must be attached.
func Unwrap(el *html.Node) error {
	if el == nil || el.Type != html.ElementNode {
		return ErrNotElement
	}
	parent := el.Parent
	if parent == nil {
		return ErrDetachedNode
	}

	for el.FirstChild != nil {
		c := el.FirstChild
		el.RemoveChild(c)
		parent.InsertBefore(c, el)
	}
	parent.RemoveChild(el)
	return nil
}

// ElementsByTag returns all elements with the given tag name under root,
// in document order.
func ElementsByTag(root *html.Node, tag string) []*html.Node {
	var out []*html.Node
	for n := root; n != nil; n = nextNode(n, root) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
		}
	}
	return out
}

// ElementsByAttr returns all elements under root carrying the named
// attribute, in document order.
func ElementsByAttr(root *html.Node, name string) []*html.Node {
	var out []*html.Node
	for n := root; n != nil; n = nextNode(n, root) {
		if n.Type != html.ElementNode {
			continue
		}
		if _, ok := GetAttr(n, name); ok {
			out = append(out, n)
		}
	}
	return out
}

// FirstText returns the first text node under root in document order,
// or nil if root contains no text.
func FirstText(root *html.Node) *html.Node {
	for n := root; n != nil; n = nextNode(n, root) {
		if n.Type == html.TextNode {
			return n
		}
	}
	return nil
}

// TextNodes returns all text nodes under root in document order.
func TextNodes(root *html.Node) []*html.Node {
	var out []*html.Node
	for n := root; n != nil; n = nextNode(n, root) {
		if n.Type == html.TextNode {
			out = append(out, n)
		}
	}
	return out
}

// nextNode returns the node following n in document (pre-order) traversal,
// never escaping the subtree rooted at stop. Returns nil when the traversal
// is exhausted.
func nextNode(n, stop *html.Node) *html.Node {
	if n.FirstChild != nil {
		return n.FirstChild
	}
	for n != nil && n != stop {
		if n.NextSibling != nil {
			return n.NextSibling
		}
		n = n.Parent
	}
	return nil
}

// contains reports whether node is root or a descendant of root.
func contains(root, node *html.Node) bool {
	for n := node; n != nil; n = n.Parent {
		if n == root {
			return true
		}
	}
	return false
}
