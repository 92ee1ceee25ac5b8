package script

import (
	lua "github.com/yuin/gopher-lua"
	"golang.org/x/net/html"

	"github.com/dshills/selmark/dom"
)

const luaElementTypeName = "element"

// registerElementType registers the element type with the Lua state.
// Call this once during state initialization.
func registerElementType(L *lua.LState) {
	mt := L.NewTypeMetatable(luaElementTypeName)
	L.SetField(mt, "__index", L.SetFuncs(L.NewTable(), elementMethods))
}

// newElement wraps an *html.Node as element userdata.
func newElement(L *lua.LState, el *html.Node) *lua.LUserData {
	ud := L.NewUserData()
	ud.Value = el
	L.SetMetatable(ud, L.GetTypeMetatable(luaElementTypeName))
	return ud
}

// checkElement retrieves an *html.Node from Lua userdata at the given
// stack position.
func checkElement(L *lua.LState, n int) *html.Node {
	ud := L.CheckUserData(n)
	if el, ok := ud.Value.(*html.Node); ok {
		return el
	}
	L.ArgError(n, "element expected")
	return nil
}

// elementMethods defines the methods available on element objects in Lua.
var elementMethods = map[string]lua.LGFunction{
	"tag":       elementTag,
	"get_attr":  elementGetAttr,
	"set_attr":  elementSetAttr,
	"set_style": elementSetStyle,
}

// elementTag returns the element's tag name.
// Usage: el:tag()
func elementTag(L *lua.LState) int {
	el := checkElement(L, 1)
	L.Push(lua.LString(el.Data))
	return 1
}

// elementGetAttr returns an attribute value, or nil if absent.
// Usage: el:get_attr("class")
func elementGetAttr(L *lua.LState) int {
	el := checkElement(L, 1)
	name := L.CheckString(2)
	val, ok := dom.GetAttr(el, name)
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(val))
	return 1
}

// elementSetAttr sets an attribute, replacing any existing value.
// Usage: el:set_attr("class", "note")
func elementSetAttr(L *lua.LState) int {
	el := checkElement(L, 1)
	name := L.CheckString(2)
	value := L.CheckString(3)
	dom.SetAttr(el, name, value)
	return 0
}

// elementSetStyle sets one CSS property in the element's style attribute.
// Usage: el:set_style("background-color", "orange")
func elementSetStyle(L *lua.LState) int {
	el := checkElement(L, 1)
	property := L.CheckString(2)
	value := L.CheckString(3)
	dom.SetStyle(el, property, value)
	return 0
}
