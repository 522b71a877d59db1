//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/willbeason/fractal-draw/pkg/render"
)

// jsHost forwards host calls to functions on a JS object. The names match the
// imports the page's worker provides to wasm renderers.
type jsHost struct {
	obj js.Value
}

var (
	_ render.Host[uint32]     = jsHost{}
	_ render.ProgressReporter = jsHost{}
	_ render.Painter          = jsHost{}
)

func (h jsHost) CanvasWidth() uint32 {
	return uint32(h.obj.Call("canvas_width").Int())
}

func (h jsHost) CanvasHeight() uint32 {
	return uint32(h.obj.Call("canvas_height").Int())
}

func (h jsHost) MaxSteps() uint64 {
	return uint64(h.obj.Call("max_steps").Int())
}

func (h jsHost) DrawPixel(x, y uint32, color uint32) {
	h.obj.Call("draw_pixel", x, y, color)
}

// ReportProgress and Paint are optional on the JS side; some pages only
// draw.
func (h jsHost) ReportProgress(fraction float64) {
	if h.has("progress") {
		h.obj.Call("progress", fraction)
	}
}

func (h jsHost) Paint() {
	if h.has("paint") {
		h.obj.Call("paint")
	}
}

func (h jsHost) has(name string) bool {
	return h.obj.Get(name).Type() == js.TypeFunction
}
