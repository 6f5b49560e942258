//go:build wasm
// +build wasm

package ui

import (
	"syscall/js"

	"github.com/tinywasm/fmt"

	"github.com/tinywasm/chart/definition"
	"github.com/tinywasm/chart/env"
)

var (
	sourceInput js.Value
	typeSelect  js.Value
)

// Setup builds the page and draws the definition found at source.
func Setup(source string) {
	setupUI(source)
	go Load()
}

func setupUI(source string) {
	document := js.Global().Get("document")
	body := document.Get("body")
	body.Set("innerHTML", "")

	page := document.Call("createElement", "div")
	page.Set("className", "page")

	heading := document.Call("createElement", "h1")
	heading.Set("textContent", "Charts")
	page.Call("appendChild", heading)

	form := document.Call("createElement", "div")
	form.Set("className", "form-section")

	label := document.Call("createElement", "label")
	label.Set("textContent", "Definition:")
	form.Call("appendChild", label)

	sourceInput = document.Call("createElement", "input")
	sourceInput.Set("type", "text")
	sourceInput.Set("value", source)
	form.Call("appendChild", sourceInput)

	typeSelect = document.Call("createElement", "select")
	for _, name := range []string{"", "hbar", "vbar", "pie", "line"} {
		opt := document.Call("createElement", "option")
		opt.Set("value", name)
		if name == "" {
			opt.Set("textContent", "as defined")
		} else {
			opt.Set("textContent", name)
		}
		typeSelect.Call("appendChild", opt)
	}
	form.Call("appendChild", typeSelect)

	btn := document.Call("createElement", "button")
	btn.Set("textContent", "Draw")
	btn.Call("addEventListener", "click", js.FuncOf(func(this js.Value, args []js.Value) any {
		// fetch blocks, so it cannot run on the event loop goroutine
		go Load()
		return nil
	}))
	form.Call("appendChild", btn)
	page.Call("appendChild", form)

	out := document.Call("createElement", "div")
	out.Set("className", "chart-output")
	out.Set("id", "chart-output")
	page.Call("appendChild", out)

	body.Call("appendChild", page)
	loadStyles()
}

func loadStyles() {
	document := js.Global().Get("document")
	if existing := document.Call("querySelector", "link[href='style.css']"); !existing.IsNull() {
		return
	}
	link := document.Call("createElement", "link")
	link.Set("rel", "stylesheet")
	link.Set("href", "style.css")
	document.Get("head").Call("appendChild", link)
}

// Load fetches the definition named in the form and draws it.
func Load() {
	source := fmt.Convert(sourceInput.Get("value").String()).TrimSpace().String()
	if source == "" {
		ShowError("no definition given")
		return
	}
	env.Logger("loading", source)

	format, err := definition.FormatOf(source)
	if err != nil {
		ShowError(err.Error())
		return
	}
	data, err := env.ReadSource(source)
	if err != nil {
		ShowError(err.Error())
		return
	}
	f, err := definition.Parse(data, format)
	if err != nil {
		ShowError(err.Error())
		return
	}
	if kind := typeSelect.Get("value").String(); kind != "" {
		f.Type = kind
	}

	markup, err := Draw(f)
	if err != nil {
		env.Logger("draw failed:", err)
		ShowError(err.Error())
		return
	}
	ShowChart(markup)
}

// ShowChart replaces the output area with markup.
func ShowChart(markup string) {
	out := js.Global().Get("document").Call("getElementById", "chart-output")
	if out.IsNull() {
		env.Logger("ERROR: chart-output not found")
		return
	}
	out.Set("innerHTML", markup)
}

// ShowError replaces the output area with message.
func ShowError(message string) {
	document := js.Global().Get("document")
	out := document.Call("getElementById", "chart-output")
	if out.IsNull() {
		env.Logger("ERROR:", message)
		return
	}
	out.Set("innerHTML", "")

	div := document.Call("createElement", "div")
	div.Set("className", "error-message")
	div.Set("textContent", message)
	out.Call("appendChild", div)
}
