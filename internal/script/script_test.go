package script

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/selmark/dom"
)

func TestLoadString(t *testing.T) {
	s, err := LoadString(`function decorate(el) end`)
	if err != nil {
		t.Fatalf("LoadString failed: %v", err)
	}
	defer s.Close()
}

func TestLoadStringVerifiesDecorate(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"no decorate", `local x = 1`},
		{"decorate is not a function", `decorate = 42`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadString(tt.code)
			if !errors.Is(err, ErrNoDecorateFunc) {
				t.Errorf("error = %v, want ErrNoDecorateFunc", err)
			}
		})
	}
}

func TestLoadStringSyntaxError(t *testing.T) {
	_, err := LoadString(`function decorate(el`)
	if err == nil {
		t.Fatal("expected error for broken script, got nil")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deco.lua")
	code := `
function decorate(el)
  el:set_attr("class", "note")
end
`
	if err := os.WriteFile(path, []byte(code), 0o644); err != nil {
		t.Fatalf("writing script: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer s.Close()

	el := dom.NewElement("span")
	s.Decorator()(el)

	if got, _ := dom.GetAttr(el, "class"); got != "note" {
		t.Errorf("class = %q, want %q", got, "note")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.lua"))
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestDecoratorSetStyle(t *testing.T) {
	s, err := LoadString(`
function decorate(el)
  el:set_style("background-color", "orange")
  el:set_style("font-weight", "bold")
end
`)
	if err != nil {
		t.Fatalf("LoadString failed: %v", err)
	}
	defer s.Close()

	el := dom.NewElement("mark")
	s.Decorator()(el)

	want := "background-color: orange; font-weight: bold"
	if got, _ := dom.GetAttr(el, "style"); got != want {
		t.Errorf("style = %q, want %q", got, want)
	}
}

func TestDecoratorReadsElement(t *testing.T) {
	s, err := LoadString(`
function decorate(el)
  el:set_attr("data-tag", el:tag())
  if el:get_attr("id") == nil then
    el:set_attr("data-missing", "yes")
  end
end
`)
	if err != nil {
		t.Fatalf("LoadString failed: %v", err)
	}
	defer s.Close()

	el := dom.NewElement("em")
	s.Decorator()(el)

	if got, _ := dom.GetAttr(el, "data-tag"); got != "em" {
		t.Errorf("data-tag = %q, want %q", got, "em")
	}
	if got, _ := dom.GetAttr(el, "data-missing"); got != "yes" {
		t.Errorf("data-missing = %q, want %q", got, "yes")
	}
}

func TestDecoratorErrorLeavesElement(t *testing.T) {
	s, err := LoadString(`
function decorate(el)
  error("boom")
  el:set_attr("class", "never")
end
`)
	if err != nil {
		t.Fatalf("LoadString failed: %v", err)
	}
	defer s.Close()

	el := dom.NewElement("span")
	s.Decorator()(el)

	if _, ok := dom.GetAttr(el, "class"); ok {
		t.Error("attribute set despite script error")
	}
}

func TestDecoratorAfterClose(t *testing.T) {
	s, err := LoadString(`function decorate(el) el:set_attr("class", "late") end`)
	if err != nil {
		t.Fatalf("LoadString failed: %v", err)
	}
	deco := s.Decorator()
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}

	el := dom.NewElement("span")
	deco(el)

	if _, ok := dom.GetAttr(el, "class"); ok {
		t.Error("attribute set after Close")
	}
}

func TestSandboxRemovesLoaders(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"dofile", `dofile("/etc/passwd") function decorate(el) end`},
		{"loadfile", `loadfile("/etc/passwd") function decorate(el) end`},
		{"load", `load("return 1") function decorate(el) end`},
		{"os", `os.getenv("HOME") function decorate(el) end`},
		{"io", `io.open("/etc/passwd") function decorate(el) end`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadString(tt.code); err == nil {
				t.Errorf("%s available inside sandbox", tt.name)
			}
		})
	}
}
