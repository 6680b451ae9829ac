//go:build js && wasm

// Command counter-wasm mounts the counter widget into the page's #app element.
package main

import (
	"github.com/vcrobe/nojs-counter/components/counter"
	"github.com/vcrobe/nojs-counter/runtime"
)

func main() {
	renderer := runtime.NewRenderer("#app")
	renderer.SetCurrentComponent(counter.New())
	renderer.RenderRoot()

	// Keep the Go program running so click handlers stay alive.
	select {}
}
