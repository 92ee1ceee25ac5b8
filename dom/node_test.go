package dom

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func TestNewElement(t *testing.T) {
	el := NewElement("span")

	if el.Type != html.ElementNode {
		t.Errorf("node type = %v, want ElementNode", el.Type)
	}
	if el.Data != "span" {
		t.Errorf("tag = %q, want %q", el.Data, "span")
	}
	if el.DataAtom != atom.Span {
		t.Errorf("atom = %v, want atom.Span", el.DataAtom)
	}
	if el.Parent != nil {
		t.Error("new element should be detached")
	}
}

func TestNewElementUnknownTag(t *testing.T) {
	el := NewElement("custom-widget")

	if el.Data != "custom-widget" {
		t.Errorf("tag = %q, want %q", el.Data, "custom-widget")
	}
	if el.DataAtom != 0 {
		t.Errorf("unknown tag should have zero atom, got %v", el.DataAtom)
	}
}

func TestAttrRoundTrip(t *testing.T) {
	el := NewElement("span")

	if _, ok := GetAttr(el, "class"); ok {
		t.Error("new element should have no attributes")
	}

	SetAttr(el, "class", "note")
	if got, ok := GetAttr(el, "class"); !ok || got != "note" {
		t.Errorf("GetAttr = %q, %v; want %q, true", got, ok, "note")
	}

	SetAttr(el, "class", "other")
	if got, _ := GetAttr(el, "class"); got != "other" {
		t.Errorf("SetAttr should replace: got %q, want %q", got, "other")
	}
	if len(el.Attr) != 1 {
		t.Errorf("attribute count = %d, want 1", len(el.Attr))
	}
}

func TestSetStyle(t *testing.T) {
	el := NewElement("span")

	SetStyle(el, "background-color", "yellow")
	if got, _ := GetAttr(el, "style"); got != "background-color: yellow" {
		t.Errorf("style = %q, want %q", got, "background-color: yellow")
	}

	SetStyle(el, "color", "red")
	if got, _ := GetAttr(el, "style"); got != "background-color: yellow; color: red" {
		t.Errorf("style = %q, want both declarations", got)
	}

	// Re-setting a property replaces its value, not appends.
	SetStyle(el, "background-color", "lime")
	if got, _ := GetAttr(el, "style"); got != "color: red; background-color: lime" {
		t.Errorf("style = %q, want replaced background", got)
	}
}

func TestUnwrap(t *testing.T) {
	doc := mustParse(t, "<p>one <b>two</b> three</p>")
	bold := ElementsByTag(doc.Root(), "b")[0]
	inner := findText(t, doc, "two")

	if err := Unwrap(bold); err != nil {
		t.Fatalf("Unwrap failed: %v", err)
	}

	if bold.Parent != nil {
		t.Error("unwrapped element should be detached")
	}
	if inner.Parent == nil || inner.Parent.DataAtom != atom.P {
		t.Error("child should be reparented to the former parent")
	}
	if got := doc.Text(); got != "one two three" {
		t.Errorf("Text() = %q, want %q", got, "one two three")
	}

	out, err := doc.HTML()
	if err != nil {
		t.Fatalf("HTML failed: %v", err)
	}
	if want := "<p>one two three</p>"; !strings.Contains(out, want) {
		t.Errorf("rendered HTML = %q, want %q present", out, want)
	}
}

func TestUnwrapPreservesChildOrder(t *testing.T) {
	doc := mustParse(t, "<p><b>one<i>two</i>three</b></p>")
	bold := ElementsByTag(doc.Root(), "b")[0]

	if err := Unwrap(bold); err != nil {
		t.Fatalf("Unwrap failed: %v", err)
	}
	if got := doc.Text(); got != "onetwothree" {
		t.Errorf("Text() = %q, want %q", got, "onetwothree")
	}
}

func TestUnwrapErrors(t *testing.T) {
	if err := Unwrap(nil); !errors.Is(err, ErrNotElement) {
		t.Errorf("nil: got %v, want ErrNotElement", err)
	}
	if err := Unwrap(NewText("x")); !errors.Is(err, ErrNotElement) {
		t.Errorf("text node: got %v, want ErrNotElement", err)
	}
	if err := Unwrap(NewElement("span")); !errors.Is(err, ErrDetachedNode) {
		t.Errorf("detached: got %v, want ErrDetachedNode", err)
	}
}

func TestElementsByTag(t *testing.T) {
	doc := mustParse(t, "<p><span>a</span><b><span>b</span></b></p>")

	spans := ElementsByTag(doc.Root(), "span")
	if len(spans) != 2 {
		t.Fatalf("found %d spans, want 2", len(spans))
	}
	if FirstText(spans[0]).Data != "a" || FirstText(spans[1]).Data != "b" {
		t.Error("elements not in document order")
	}
}

func TestElementsByAttr(t *testing.T) {
	doc := mustParse(t, `<p><span data-id="1">a</span><span>b</span><em data-id="2">c</em></p>`)

	marked := ElementsByAttr(doc.Root(), "data-id")
	if len(marked) != 2 {
		t.Fatalf("found %d marked elements, want 2", len(marked))
	}
	if marked[0].Data != "span" || marked[1].Data != "em" {
		t.Errorf("unexpected elements: %s, %s", marked[0].Data, marked[1].Data)
	}
}

func TestFirstText(t *testing.T) {
	doc := mustParse(t, "<p><b></b><i>inner</i></p>")

	n := FirstText(doc.Body())
	if n == nil || n.Data != "inner" {
		t.Errorf("FirstText = %v, want text node %q", n, "inner")
	}

	empty := NewElement("div")
	if FirstText(empty) != nil {
		t.Error("FirstText of empty element should be nil")
	}
}

func TestTextNodes(t *testing.T) {
	doc := mustParse(t, "<p>a<b>b</b>c</p>")

	nodes := TextNodes(doc.Body())
	if len(nodes) != 3 {
		t.Fatalf("found %d text nodes, want 3", len(nodes))
	}
	for i, want := range []string{"a", "b", "c"} {
		if nodes[i].Data != want {
			t.Errorf("node %d = %q, want %q", i, nodes[i].Data, want)
		}
	}

	if TextNodes(NewElement("div")) != nil {
		t.Error("TextNodes of empty element should be nil")
	}
}
