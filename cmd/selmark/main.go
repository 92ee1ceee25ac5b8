// Package main is the entry point for the selmark tool.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dshills/selmark"
	"github.com/dshills/selmark/dom"
	"github.com/dshills/selmark/internal/config"
	"github.com/dshills/selmark/internal/logger"
	"github.com/dshills/selmark/internal/script"
	"github.com/dshills/selmark/internal/tui"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger.Init(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log := logger.Named("selmark")

	args := flag.Args()
	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "Error: expected at most one input file")
		flag.Usage()
		return 2
	}
	input := ""
	if len(args) == 1 {
		input = args[0]
	}

	deco, closer, err := buildDecorator(cfg, opts.decorate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if closer != nil {
		defer closer.Close()
	}

	if opts.interactive {
		return runInteractive(opts, cfg, input, deco)
	}
	return runOneShot(opts, cfg, input, deco, log)
}

// loadConfig merges the configuration file with explicit flag overrides.
func loadConfig(opts options) (*config.Config, error) {
	cfg, err := config.Load(config.Locate(opts.configPath))
	if err != nil {
		return nil, err
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "tag":
			cfg.Tag = opts.tag
		case "color":
			cfg.Color = opts.color
		case "attr":
			cfg.Attr = opts.attr
		case "snap":
			cfg.Snap = opts.snap
		case "log-level":
			cfg.LogLevel = opts.logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildDecorator builds the highlight decorator: the configured background
// color, composed with the Lua script when one is given. The returned
// closer releases the script state and is nil without a script.
func buildDecorator(cfg *config.Config, scriptPath string) (selmark.Decorator, io.Closer, error) {
	base := selmark.BackgroundColor(cfg.Color)
	if scriptPath == "" {
		return base, nil, nil
	}
	s, err := script.Load(scriptPath)
	if err != nil {
		return nil, nil, err
	}
	return selmark.Compose(base, s.Decorator()), s, nil
}

func runInteractive(opts options, cfg *config.Config, input string, deco selmark.Decorator) int {
	if input == "" {
		fmt.Fprintln(os.Stderr, "Error: interactive mode requires an input file")
		flag.Usage()
		return 2
	}
	doc, err := parseInput(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	err = tui.Run(tui.Options{
		Doc:       doc,
		Path:      input,
		Out:       opts.output,
		Tag:       cfg.Tag,
		Decorator: deco,
		Snap:      cfg.Snap,
		Watch:     opts.watch,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func runOneShot(opts options, cfg *config.Config, input string, deco selmark.Decorator, log *logger.Logger) int {
	if opts.query == "" {
		fmt.Fprintln(os.Stderr, "Error: -q is required unless -i is given")
		flag.Usage()
		return 2
	}
	if opts.nth < 1 {
		fmt.Fprintln(os.Stderr, "Error: -nth starts at 1")
		flag.Usage()
		return 2
	}

	doc, err := parseInput(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	rep := report{Query: opts.query}

	if opts.all {
		marker := selmark.NewMarker()
		marker.Tag = cfg.Tag
		marker.Decorate = deco
		marker.IDAttr = cfg.Attr
		marks, err := marker.Apply(doc, opts.query)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		log.Debug().Int("marks", len(marks)).Str("query", opts.query).Msg("marked occurrences")
		for _, mk := range marks {
			rep.Marks = append(rep.Marks, reportMark{ID: mk.ID, Text: mk.Text})
		}
		rep.Highlighted = len(marks) > 0
	} else {
		ix := doc.Index()
		rng, err := ix.Find(opts.query, opts.nth-1)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: occurrence %d of %q: %v\n", opts.nth, opts.query, err)
			return 1
		}
		doc.Select(rng)

		sel, err := selmark.Process(doc, selmark.Options{SnapToWord: cfg.Snap})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}

		rep.Text = sel.Text()
		rep.Start, _ = ix.Offset(rng.Start)
		rep.End, _ = ix.Offset(rng.End)

		if opts.highlight {
			sel.Highlight(cfg.Tag, deco)
			if !sel.IsHighlighted() {
				log.Warn().Str("query", opts.query).Msg("selection spans elements; not highlighted")
			}
		}
		rep.Highlighted = sel.IsHighlighted()
	}

	if opts.jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		if opts.output != "" {
			if err := writeDocumentFile(doc, opts.output); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return 1
			}
		}
		return 0
	}

	if err := writeDocument(doc, opts.output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// report is the -json output shape.
type report struct {
	Query       string       `json:"query"`
	Text        string       `json:"text,omitempty"`
	Start       int          `json:"start"`
	End         int          `json:"end"`
	Highlighted bool         `json:"highlighted"`
	Marks       []reportMark `json:"marks,omitempty"`
}

type reportMark struct {
	ID   string `json:"id,omitempty"`
	Text string `json:"text"`
}

func parseInput(path string) (*dom.Document, error) {
	if path == "" || path == "-" {
		doc, err := dom.Parse(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading standard input: %w", err)
		}
		return doc, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	doc, err := dom.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

func writeDocument(doc *dom.Document, path string) error {
	if path == "" || path == "-" {
		return doc.Render(os.Stdout)
	}
	return writeDocumentFile(doc, path)
}

func writeDocumentFile(doc *dom.Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := doc.Render(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

type options struct {
	query       string
	nth         int
	all         bool
	snap        bool
	highlight   bool
	tag         string
	color       string
	attr        string
	decorate    string
	jsonOut     bool
	output      string
	configPath  string
	logLevel    string
	interactive bool
	watch       bool
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	def := config.Default()

	flag.StringVar(&opts.query, "q", "", "Text to select")
	flag.IntVar(&opts.nth, "nth", 1, "Which occurrence of the query to select (1-based)")
	flag.BoolVar(&opts.all, "all", false, "Mark every occurrence of the query")
	flag.BoolVar(&opts.snap, "snap", def.Snap, "Expand the selection to word boundaries")
	flag.BoolVar(&opts.highlight, "highlight", false, "Wrap the selection in a highlight element")
	flag.StringVar(&opts.tag, "tag", def.Tag, "Highlight element tag")
	flag.StringVar(&opts.color, "color", def.Color, "Highlight background color")
	flag.StringVar(&opts.attr, "attr", def.Attr, "Attribute carrying mark identifiers with -all; empty disables")
	flag.StringVar(&opts.decorate, "decorate", "", "Lua script decorating highlight elements")
	flag.BoolVar(&opts.jsonOut, "json", false, "Report the selection as JSON on standard output")
	flag.StringVar(&opts.output, "o", "", "Write the document to this file instead of standard output")
	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.logLevel, "log-level", def.LogLevel, "Log level (trace, debug, info, warn, error, off)")
	flag.BoolVar(&opts.interactive, "i", false, "Open the interactive viewer")
	flag.BoolVar(&opts.watch, "watch", true, "Reload the document on file changes (with -i)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "selmark - select, snap, and highlight text in HTML documents\n\n")
		fmt.Fprintf(os.Stderr, "Usage: selmark [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Reads the document from file (or standard input) and writes the result\n")
		fmt.Fprintf(os.Stderr, "to standard output unless -o is given.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  selmark -q jumps -snap -highlight page.html   Highlight the word around \"jumps\"\n")
		fmt.Fprintf(os.Stderr, "  selmark -q cat -all -tag mark page.html       Mark every \"cat\"\n")
		fmt.Fprintf(os.Stderr, "  cat page.html | selmark -q dog -highlight     Read from standard input\n")
		fmt.Fprintf(os.Stderr, "  selmark -q fox -json page.html                Report the selection as JSON\n")
		fmt.Fprintf(os.Stderr, "  selmark -i page.html                          Open the interactive viewer\n")
		fmt.Fprintf(os.Stderr, "\nExit codes: 0 success, 1 processing error, 2 usage error\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("selmark %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	return opts
}
