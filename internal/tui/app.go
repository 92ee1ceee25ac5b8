package tui

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/selmark"
	"github.com/dshills/selmark/dom"
	"github.com/dshills/selmark/internal/logger"
)

// Options configures an interactive viewer session.
type Options struct {
	// Doc is the parsed document to view.
	Doc *dom.Document

	// Path is the source file; reloaded by r and watched when Watch is set.
	Path string

	// Out is the destination for the W command; empty writes back to Path.
	Out string

	// Tag and Decorator style applied highlights.
	Tag       string
	Decorator selmark.Decorator

	// Snap expands selections to word boundaries before highlighting.
	Snap bool

	// Watch reloads the document when the source file changes.
	Watch bool
}

// App couples a Model to a tcell screen and runs the event loop.
type App struct {
	screen tcell.Screen
	model  *Model
	path   string
	out    string
	log    *logger.Logger
}

// eventReload is posted by the file watcher to request a document reload.
type eventReload struct {
	tcell.EventTime
}

func newEventReload() *eventReload {
	ev := &eventReload{}
	ev.SetEventNow()
	return ev
}

// Run starts the interactive viewer and blocks until the user quits.
func Run(opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	defer screen.Fini()

	app := &App{
		screen: screen,
		model:  NewModel(opts.Doc, opts.Tag, opts.Decorator, opts.Snap),
		path:   opts.Path,
		out:    opts.Out,
		log:    logger.Named("tui"),
	}

	if opts.Watch && opts.Path != "" {
		w, err := watchFile(opts.Path, func() {
			_ = screen.PostEvent(newEventReload()) // best-effort; queue may be full
		})
		if err != nil {
			app.log.Warn().Err(err).Str("path", opts.Path).Msg("file watch unavailable")
		} else {
			defer w.Close()
		}
	}

	return app.loop()
}

func (a *App) loop() error {
	w, h := a.screen.Size()
	a.model.SetSize(w, h)

	for {
		a.draw()

		switch ev := a.screen.PollEvent().(type) {
		case *tcell.EventResize:
			w, h := ev.Size()
			a.model.SetSize(w, h)
			a.screen.Sync()
		case *eventReload:
			a.reload()
		case *tcell.EventKey:
			if !a.handleKey(ev) {
				return nil
			}
		case nil:
			return nil
		}
	}
}

// handleKey applies one key event; it returns false to quit.
func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch actionFor(ev) {
	case ActionQuit:
		return false
	case ActionLeft:
		a.model.MoveLeft()
	case ActionRight:
		a.model.MoveRight()
	case ActionUp:
		a.model.MoveUp()
	case ActionDown:
		a.model.MoveDown()
	case ActionAnchor:
		a.model.ToggleAnchor()
	case ActionCancel:
		a.model.CancelSelection()
	case ActionSnap:
		a.model.Snap()
	case ActionHighlight:
		a.model.Highlight()
	case ActionUnhighlight:
		a.model.Unhighlight()
	case ActionYank:
		a.yank()
	case ActionWrite:
		a.write()
	case ActionReload:
		a.reload()
	}
	return true
}

func (a *App) yank() {
	text := a.model.YankText()
	if text == "" {
		a.model.status = "nothing selected"
		return
	}
	if err := clipboard.WriteAll(text); err != nil {
		a.log.Error().Err(err).Msg("clipboard write failed")
		a.model.status = "clipboard unavailable"
		return
	}
	a.model.status = fmt.Sprintf("yanked %d bytes", len(text))
}

func (a *App) write() {
	dest := a.out
	if dest == "" {
		dest = a.path
	}
	if dest == "" {
		a.model.status = "no output path"
		return
	}

	f, err := os.Create(dest)
	if err != nil {
		a.log.Error().Err(err).Str("path", dest).Msg("write failed")
		a.model.status = err.Error()
		return
	}
	if err := a.model.doc.Render(f); err != nil {
		f.Close()
		a.model.status = err.Error()
		return
	}
	if err := f.Close(); err != nil {
		a.model.status = err.Error()
		return
	}
	a.model.status = fmt.Sprintf("wrote %s", dest)
}

func (a *App) reload() {
	if a.path == "" {
		a.model.status = "no source file"
		return
	}
	f, err := os.Open(a.path)
	if err != nil {
		a.log.Error().Err(err).Str("path", a.path).Msg("reload failed")
		a.model.status = err.Error()
		return
	}
	doc, err := dom.Parse(f)
	f.Close()
	if err != nil {
		a.model.status = err.Error()
		return
	}
	a.model.SetDocument(doc)
	a.log.Debug().Str("path", a.path).Msg("document reloaded")
}

// Viewer styles.
var (
	styleText      = tcell.StyleDefault
	styleSelection = tcell.StyleDefault.Reverse(true)
	styleHighlight = tcell.StyleDefault.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack)
	styleStatus    = tcell.StyleDefault.Reverse(true)
)

func (a *App) draw() {
	m := a.model
	a.screen.Clear()

	selStart, selEnd := m.Span()
	hl := m.HighlightSpans()

	rows := m.viewRows()
	for row := 0; row < rows && m.top+row < len(m.lines); row++ {
		ln := m.lines[m.top+row]
		x := 0
		for i := ln.Start; i < ln.End; {
			r, size := utf8.DecodeRuneInString(m.text[i:])
			style := styleText
			if inSpans(hl, i) {
				style = styleHighlight
			}
			if m.Selecting() && i >= selStart && i < selEnd {
				style = styleSelection
			}
			a.screen.SetContent(x, row, r, nil, style)
			x += runewidth.RuneWidth(r)
			i += size
		}
	}

	a.drawStatus()
	x, y := m.CursorPos()
	a.screen.ShowCursor(x, y)
	a.screen.Show()
}

func inSpans(spans [][2]int, off int) bool {
	for _, s := range spans {
		if off >= s[0] && off < s[1] {
			return true
		}
	}
	return false
}

func (a *App) drawStatus() {
	m := a.model
	y := m.height - 1
	if y < 0 {
		y = 0
	}

	title := a.path
	if title == "" {
		title = "(stdin)"
	}
	status := fmt.Sprintf(" %s  %d/%d  %s", title, m.cursor, len(m.text), m.status)

	x := 0
	for _, r := range status {
		if x >= m.width {
			break
		}
		a.screen.SetContent(x, y, r, nil, styleStatus)
		x += runewidth.RuneWidth(r)
	}
	for ; x < m.width; x++ {
		a.screen.SetContent(x, y, ' ', nil, styleStatus)
	}
}
