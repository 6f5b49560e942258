//go:build wasm
// +build wasm

package env

import (
	"syscall/js"

	"github.com/tinywasm/fmt"

	"github.com/tinywasm/chart/utils"
)

// SetupDefaultLogger forwards to the browser console.
func SetupDefaultLogger() func(a ...any) {
	return func(a ...any) {
		console := js.Global().Get("console")
		if console.IsUndefined() {
			return
		}
		args := make([]any, len(a))
		for i, arg := range a {
			args[i] = utils.AnyToString(arg)
		}
		console.Call("log", args...)
	}
}

// SetupDefaultFileWriter triggers a browser download of data named filename.
func SetupDefaultFileWriter() func(filename string, data []byte) error {
	return func(filename string, data []byte) error {
		global := js.Global()
		buf := global.Get("Uint8Array").New(len(data))
		js.CopyBytesToJS(buf, data)

		blob := global.Get("Blob").New([]any{buf}, map[string]any{"type": mimeOf(filename)})
		url := global.Get("URL").Call("createObjectURL", blob)

		link := global.Get("document").Call("createElement", "a")
		link.Set("href", url)
		link.Set("download", filename)
		link.Call("click")
		global.Get("URL").Call("revokeObjectURL", url)
		return nil
	}
}

// SetupDefaultReader fetches definitions relative to the page.
func SetupDefaultReader() func(source string) ([]byte, error) {
	return FetchSource
}

func mimeOf(filename string) string {
	name := fmt.Convert(filename).ToLower().String()
	switch {
	case fmt.Contains(name, ".json"):
		return "application/json"
	case fmt.Contains(name, ".htm"):
		return "text/html"
	}
	return "application/octet-stream"
}
