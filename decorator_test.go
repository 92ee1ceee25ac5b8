package selmark

import (
	"testing"

	"github.com/dshills/selmark/dom"
)

func TestBackgroundColor(t *testing.T) {
	el := dom.NewElement("span")

	BackgroundColor("yellow")(el)

	if got, _ := dom.GetAttr(el, "style"); got != "background-color: yellow" {
		t.Errorf("style = %q, want %q", got, "background-color: yellow")
	}
}

func TestBackgroundColorPreservesOtherDeclarations(t *testing.T) {
	el := dom.NewElement("span")
	dom.SetStyle(el, "color", "red")

	BackgroundColor("yellow")(el)

	if got, _ := dom.GetAttr(el, "style"); got != "color: red; background-color: yellow" {
		t.Errorf("style = %q, want both declarations", got)
	}
}

func TestClass(t *testing.T) {
	el := dom.NewElement("span")

	Class("highlight")(el)

	if got, _ := dom.GetAttr(el, "class"); got != "highlight" {
		t.Errorf("class = %q, want %q", got, "highlight")
	}
}

func TestCompose(t *testing.T) {
	el := dom.NewElement("span")

	Compose(Class("hl"), nil, BackgroundColor("yellow"))(el)

	if got, _ := dom.GetAttr(el, "class"); got != "hl" {
		t.Errorf("class = %q, want %q", got, "hl")
	}
	if got, _ := dom.GetAttr(el, "style"); got != "background-color: yellow" {
		t.Errorf("style = %q, want %q", got, "background-color: yellow")
	}
}
