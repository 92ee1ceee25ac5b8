package dom

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// mustParse parses an HTML document, failing the test on error.
func mustParse(t *testing.T, src string) *Document {
	t.Helper()
	doc, err := ParseString(src)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return doc
}

// findText returns the first text node whose content equals data.
func findText(t *testing.T, doc *Document, data string) *html.Node {
	t.Helper()
	for n := doc.Root(); n != nil; n = nextNode(n, doc.Root()) {
		if n.Type == html.TextNode && n.Data == data {
			return n
		}
	}
	t.Fatalf("text node %q not found", data)
	return nil
}

func TestParseString(t *testing.T) {
	doc := mustParse(t, "<p>hello world</p>")

	if doc.Root() == nil {
		t.Fatal("document has no root")
	}
	if doc.Body() == nil {
		t.Fatal("document has no body")
	}
	if doc.Selection() == nil {
		t.Fatal("document has no selection state")
	}
	if doc.Selection().RangeCount() != 0 {
		t.Errorf("new document has %d ranges, want 0", doc.Selection().RangeCount())
	}
}

func TestParseReader(t *testing.T) {
	doc, err := Parse(strings.NewReader("<p>from a reader</p>"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got := doc.Text(); got != "from a reader" {
		t.Errorf("Text() = %q, want %q", got, "from a reader")
	}
}

func TestDocumentText(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"<p>hello</p>", "hello"},
		{"<p>hello <b>bold</b> world</p>", "hello bold world"},
		{"<div><p>one</p><p>two</p></div>", "onetwo"},
		{"<p>keep</p><script>drop()</script>", "keep"},
		{"<p>keep</p><style>p{}</style>", "keep"},
	}

	for _, tt := range tests {
		doc := mustParse(t, tt.src)
		if got := doc.Text(); got != tt.want {
			t.Errorf("Text(%q) = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestSelectText(t *testing.T) {
	doc := mustParse(t, "<p>hello world</p>")

	if err := doc.SelectText("world"); err != nil {
		t.Fatalf("SelectText failed: %v", err)
	}

	rng, err := doc.Selection().RangeAt(0)
	if err != nil {
		t.Fatalf("RangeAt(0) failed: %v", err)
	}
	if got := rng.Text(); got != "world" {
		t.Errorf("selected text = %q, want %q", got, "world")
	}
}

func TestSelectTextNotFound(t *testing.T) {
	doc := mustParse(t, "<p>hello world</p>")

	err := doc.SelectText("absent")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if doc.Selection().RangeCount() != 0 {
		t.Error("failed select should not add a range")
	}
}

func TestSelectTextReplacesSelection(t *testing.T) {
	doc := mustParse(t, "<p>hello world</p>")

	if err := doc.SelectText("hello"); err != nil {
		t.Fatalf("SelectText failed: %v", err)
	}
	if err := doc.SelectText("world"); err != nil {
		t.Fatalf("SelectText failed: %v", err)
	}

	if doc.Selection().RangeCount() != 1 {
		t.Fatalf("selection has %d ranges, want 1", doc.Selection().RangeCount())
	}
	rng, _ := doc.Selection().RangeAt(0)
	if got := rng.Text(); got != "world" {
		t.Errorf("selected text = %q, want %q", got, "world")
	}
}

func TestClearSelection(t *testing.T) {
	doc := mustParse(t, "<p>hello</p>")

	if err := doc.SelectText("hello"); err != nil {
		t.Fatalf("SelectText failed: %v", err)
	}
	doc.ClearSelection()

	if doc.Selection().RangeCount() != 0 {
		t.Errorf("selection has %d ranges after clear, want 0", doc.Selection().RangeCount())
	}
}

func TestDocumentHTML(t *testing.T) {
	doc := mustParse(t, "<p>hello</p>")

	out, err := doc.HTML()
	if err != nil {
		t.Fatalf("HTML failed: %v", err)
	}
	if !strings.Contains(out, "<p>hello</p>") {
		t.Errorf("rendered HTML %q does not contain original markup", out)
	}
}

func TestDocumentRenderAfterMutation(t *testing.T) {
	doc := mustParse(t, "<p>hello world</p>")

	if err := doc.SelectText("world"); err != nil {
		t.Fatalf("SelectText failed: %v", err)
	}
	rng, _ := doc.Selection().RangeAt(0)

	mark := NewElement("mark")
	if err := SurroundContents(rng, mark); err != nil {
		t.Fatalf("SurroundContents failed: %v", err)
	}

	out, err := doc.HTML()
	if err != nil {
		t.Fatalf("HTML failed: %v", err)
	}
	if !strings.Contains(out, "<p>hello <mark>world</mark></p>") {
		t.Errorf("rendered HTML = %q, want wrapped markup", out)
	}
}

func TestBodyMissing(t *testing.T) {
	// A bare text node still gets an implicit body from the parser.
	doc := mustParse(t, "just text")
	if doc.Body() == nil {
		t.Error("parser should synthesize a body element")
	}
}
