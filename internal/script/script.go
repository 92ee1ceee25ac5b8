// Package script runs user-supplied Lua decorators. A script defines a
// global decorate(el) function that receives each highlight wrapper as an
// element object with tag, get_attr, set_attr, and set_style methods.
//
// Scripts execute in a sandboxed state: only the base, table, string, and
// math libraries are open, and the file and code loading functions are
// removed. gopher-lua states are not goroutine-safe, so all calls into a
// Script are serialized by an internal mutex.
package script

import (
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"golang.org/x/net/html"

	"github.com/dshills/selmark"
	"github.com/dshills/selmark/internal/logger"
)

// decorateFunc is the global function a script must define.
const decorateFunc = "decorate"

// Script is a loaded Lua decorator.
type Script struct {
	mu     sync.Mutex
	L      *lua.LState
	source string
	closed bool
}

// Load reads and executes a Lua script from a file, then verifies that it
// defined a decorate function.
func Load(path string) (*Script, error) {
	s := &Script{L: newState(), source: path}
	if err := s.doWithRecovery(func() error { return s.L.DoFile(path) }); err != nil {
		s.L.Close()
		return nil, fmt.Errorf("loading script %s: %w", path, err)
	}
	return s.verify()
}

// LoadString executes Lua source directly, then verifies that it defined a
// decorate function.
func LoadString(code string) (*Script, error) {
	s := &Script{L: newState(), source: "<string>"}
	if err := s.doWithRecovery(func() error { return s.L.DoString(code) }); err != nil {
		s.L.Close()
		return nil, fmt.Errorf("loading script: %w", err)
	}
	return s.verify()
}

// verify checks that the script defined a callable decorate function.
func (s *Script) verify() (*Script, error) {
	if s.L.GetGlobal(decorateFunc).Type() != lua.LTFunction {
		s.L.Close()
		return nil, fmt.Errorf("script %s: %w", s.source, ErrNoDecorateFunc)
	}
	return s, nil
}

// newState creates a sandboxed Lua state: safe libraries only, loaders
// removed, element type registered.
func newState() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	// Remove functions that could load code from outside the script.
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}

	registerElementType(L)
	return L
}

// Decorator adapts the script's decorate function to selmark.Decorator.
// Script errors cannot propagate through the Decorator signature, so they
// are logged and the element is left as the script got it.
func (s *Script) Decorator() selmark.Decorator {
	log := logger.Named("script")
	return func(el *html.Node) {
		if err := s.call(el); err != nil {
			log.Error().Err(err).Str("script", s.source).Msg("decorate failed")
		}
	}
}

// call invokes decorate(el) on the script's state.
func (s *Script) call(el *html.Node) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStateClosed
	}
	fn := s.L.GetGlobal(decorateFunc)
	if fn.Type() != lua.LTFunction {
		return ErrNoDecorateFunc
	}

	return s.doWithRecovery(func() error {
		s.L.Push(fn)
		s.L.Push(newElement(s.L, el))
		return s.L.PCall(1, 0, nil)
	})
}

// doWithRecovery executes a function with panic recovery.
func (s *Script) doWithRecovery(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}

// Close releases the script's Lua state. Decorators obtained from the
// script stop modifying elements after Close.
func (s *Script) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.L.Close()
	s.closed = true
	return nil
}
