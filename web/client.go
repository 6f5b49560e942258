//go:build wasm

package main

import (
	"github.com/tinywasm/chart/env"
	"github.com/tinywasm/chart/web/ui"
)

// source is the definition shown when the page loads.
const source = "chart.yaml"

func main() {
	env.Logger("chart client starting...")

	ui.Setup(source)

	env.Logger("chart client ready")

	select {}
}
