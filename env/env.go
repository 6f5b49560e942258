// Package env holds the per-environment I/O used by the chartgen command,
// the web server and the wasm client. The chart packages never call it.
package env

var (
	// Logger prints diagnostics: stderr on the backend, console.log in wasm.
	Logger = SetupDefaultLogger()
	// FileWriter stores rendered output, eg: FileWriter("chart.html", data).
	// In wasm the data is offered as a browser download.
	FileWriter = SetupDefaultFileWriter()
	// ReadSource loads a chart definition: a file path on the backend, a URL
	// fetched over HTTP in wasm.
	ReadSource = SetupDefaultReader()
)
