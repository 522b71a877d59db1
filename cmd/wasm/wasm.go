//go:build js && wasm

// Command wasm is the renderer for the browser. It exports render(x, y, zoom)
// on the global object and draws through the functions of the global
// fractalHost object. The theme is the one selected by build tag.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"syscall/js"

	"github.com/willbeason/fractal-draw/pkg/render"
	"github.com/willbeason/fractal-draw/pkg/theme"
)

// hostName is the global JS object providing the host functions.
const hostName = "fractalHost"

func main() {
	render.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	th, err := theme.NewDefault()
	if err != nil {
		log.Fatalf("theme: %v", err)
	}

	// render blocks the calling thread until the frame is painted. On the page's
	// main thread the progress element repaints only afterwards.
	// TODO: load main.wasm in a Web Worker and proxy fractalHost over postMessage.
	js.Global().Set("render", js.FuncOf(func(_ js.Value, args []js.Value) any {
		if err := renderJS(th, args); err != nil {
			log.Printf("render: %v", err)
			return err.Error()
		}
		return nil
	}))
	log.Printf("wasm renderer ready, theme %s", th.Variant())

	// Keep the exported function alive.
	select {}
}

func renderJS(th theme.Theme, args []js.Value) error {
	if len(args) != 3 {
		return fmt.Errorf("got %d arguments, want x, y, zoom", len(args))
	}

	host := js.Global().Get(hostName)
	if host.Type() != js.TypeObject {
		return fmt.Errorf("global %s is %s, want an object", hostName, host.Type())
	}

	x, y := args[0].Float(), args[1].Float()
	zoom := uint32(args[2].Int())

	return render.New[uint32](jsHost{obj: host}, th).RenderXY(x, y, zoom)
}
