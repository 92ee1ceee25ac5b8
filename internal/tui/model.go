package tui

import (
	"fmt"
	"unicode/utf8"

	"github.com/dshills/selmark"
	"github.com/dshills/selmark/dom"
)

// Model holds the viewer's state: the document, its flattened text, the
// wrapped layout, the cursor, the selection anchor, and the stack of
// applied highlights. The cursor and anchor are flat byte offsets; the
// anchor marks the fixed end of the selection and the cursor the moving,
// exclusive end. Model methods never touch the terminal.
type Model struct {
	doc   *dom.Document
	index *dom.Index
	text  string

	tag  string
	deco selmark.Decorator
	snap bool

	width, height int
	lines         []Line
	top           int // first visible line

	cursor int
	anchor int // -1 when no selection is active

	applied []*selmark.Selection
	status  string
}

// NewModel creates a viewer model over a parsed document. Highlights use
// the given tag and decorator; snap expands selections to word boundaries
// before highlighting.
func NewModel(doc *dom.Document, tag string, deco selmark.Decorator, snap bool) *Model {
	m := &Model{
		doc:    doc,
		tag:    tag,
		deco:   deco,
		snap:   snap,
		anchor: -1,
		width:  80,
		height: 24,
	}
	m.rebuild()
	return m
}

// rebuild re-derives the flat text and layout from the document. Call
// after any tree mutation; the cursor keeps its flat offset, clamped to
// the new text.
func (m *Model) rebuild() {
	m.index = m.doc.Index()
	m.text = m.index.Text()
	if m.cursor > len(m.text) {
		m.cursor = len(m.text)
	}
	if m.anchor > len(m.text) {
		m.anchor = len(m.text)
	}
	m.relayout()
}

func (m *Model) relayout() {
	m.lines = wrapText(m.text, m.width)
	m.scrollIntoView()
}

// SetSize updates the terminal dimensions. The bottom row is reserved for
// the status line.
func (m *Model) SetSize(w, h int) {
	m.width, m.height = w, h
	m.relayout()
}

// viewRows returns the number of rows available for text.
func (m *Model) viewRows() int {
	if m.height <= 1 {
		return 1
	}
	return m.height - 1
}

func (m *Model) scrollIntoView() {
	row := lineIndex(m.lines, m.cursor)
	if row < m.top {
		m.top = row
	}
	if rows := m.viewRows(); row >= m.top+rows {
		m.top = row - rows + 1
	}
}

// Cursor returns the cursor's flat byte offset.
func (m *Model) Cursor() int {
	return m.cursor
}

// CursorPos returns the cursor's screen position within the viewport.
func (m *Model) CursorPos() (x, y int) {
	row := lineIndex(m.lines, m.cursor)
	return columnOf(m.text, m.lines[row], m.cursor), row - m.top
}

// Text returns the flattened document text.
func (m *Model) Text() string {
	return m.text
}

// Status returns the current status message.
func (m *Model) Status() string {
	return m.status
}

// Document returns the viewed document.
func (m *Model) Document() *dom.Document {
	return m.doc
}

// MoveLeft moves the cursor one rune left.
func (m *Model) MoveLeft() {
	if m.cursor == 0 {
		return
	}
	_, size := utf8.DecodeLastRuneInString(m.text[:m.cursor])
	m.cursor -= size
	m.scrollIntoView()
}

// MoveRight moves the cursor one rune right.
func (m *Model) MoveRight() {
	if m.cursor >= len(m.text) {
		return
	}
	_, size := utf8.DecodeRuneInString(m.text[m.cursor:])
	m.cursor += size
	m.scrollIntoView()
}

// MoveUp moves the cursor one display line up, keeping the column.
func (m *Model) MoveUp() {
	row := lineIndex(m.lines, m.cursor)
	if row == 0 {
		return
	}
	col := columnOf(m.text, m.lines[row], m.cursor)
	m.cursor = offsetForColumn(m.text, m.lines[row-1], col)
	m.scrollIntoView()
}

// MoveDown moves the cursor one display line down, keeping the column.
func (m *Model) MoveDown() {
	row := lineIndex(m.lines, m.cursor)
	if row >= len(m.lines)-1 {
		return
	}
	col := columnOf(m.text, m.lines[row], m.cursor)
	m.cursor = offsetForColumn(m.text, m.lines[row+1], col)
	m.scrollIntoView()
}

// ToggleAnchor starts a selection at the cursor, or drops the anchor when
// a selection is already active.
func (m *Model) ToggleAnchor() {
	if m.anchor >= 0 {
		m.anchor = -1
		return
	}
	m.anchor = m.cursor
}

// CancelSelection drops the selection anchor.
func (m *Model) CancelSelection() {
	m.anchor = -1
}

// Selecting returns true while a selection anchor is set.
func (m *Model) Selecting() bool {
	return m.anchor >= 0
}

// Span returns the selected flat interval [start, end). Without an anchor
// the span is collapsed at the cursor.
func (m *Model) Span() (start, end int) {
	if m.anchor < 0 {
		return m.cursor, m.cursor
	}
	if m.anchor <= m.cursor {
		return m.anchor, m.cursor
	}
	return m.cursor, m.anchor
}

// Snap expands the selected span to word boundaries and selects the
// result. A collapsed span grows to the word under the cursor.
func (m *Model) Snap() {
	start, end := m.Span()
	rng, err := m.index.Range(start, end)
	if err != nil {
		m.status = err.Error()
		return
	}
	sel := selmark.NewSelection(rng)
	sel.SnapToWord()

	s, err := m.index.Offset(rng.Start)
	if err != nil {
		m.status = err.Error()
		return
	}
	e, err := m.index.Offset(rng.End)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.anchor, m.cursor = s, e
	m.status = fmt.Sprintf("snapped to %q", sel.Text())
	m.scrollIntoView()
}

// Highlight wraps the selected text and pushes the result on the
// highlight stack.
func (m *Model) Highlight() {
	start, end := m.Span()
	rng, err := m.index.Range(start, end)
	if err != nil {
		m.status = err.Error()
		return
	}
	sel := selmark.NewSelection(rng)
	if m.snap {
		sel.SnapToWord()
	}
	if rng.Collapsed() {
		m.status = "nothing selected"
		return
	}
	sel.Highlight(m.tag, m.deco)
	if !sel.IsHighlighted() {
		m.status = "selection spans elements; not highlighted"
		return
	}
	m.applied = append(m.applied, sel)
	m.anchor = -1
	m.rebuild()
	m.status = fmt.Sprintf("highlighted %q", sel.Text())
}

// Unhighlight removes the most recently applied highlight.
func (m *Model) Unhighlight() {
	if len(m.applied) == 0 {
		m.status = "no highlights"
		return
	}
	sel := m.applied[len(m.applied)-1]
	m.applied = m.applied[:len(m.applied)-1]
	sel.RemoveHighlight()
	m.rebuild()
	m.status = "highlight removed"
}

// HighlightCount returns the number of highlights on the stack.
func (m *Model) HighlightCount() int {
	return len(m.applied)
}

// HighlightSpans returns the flat intervals covered by applied highlight
// wrappers, for rendering.
func (m *Model) HighlightSpans() [][2]int {
	var spans [][2]int
	for _, sel := range m.applied {
		w := sel.Wrapper()
		if w == nil {
			continue
		}
		for _, tn := range dom.TextNodes(w) {
			off, err := m.index.Offset(dom.Boundary{Node: tn})
			if err != nil {
				continue
			}
			spans = append(spans, [2]int{off, off + len(tn.Data)})
		}
	}
	return spans
}

// YankText returns the selected text; empty when the span is collapsed.
func (m *Model) YankText() string {
	start, end := m.Span()
	return m.text[start:end]
}

// SetDocument replaces the document after an external reload. Applied
// highlights belong to the old tree and are dropped.
func (m *Model) SetDocument(doc *dom.Document) {
	m.doc = doc
	m.applied = nil
	m.anchor = -1
	m.rebuild()
	m.status = "reloaded"
}
