// Package svg implements a vector export device for gg-style 2D canvases.
//
// A Device receives high-level drawing commands (filled or stroked shapes,
// images, positioned text) together with the full paint state and writes a
// well-formed SVG document to an io.Writer. The output is device
// independent: gradients, clip paths, image patterns and color filters are
// synthesized as referenced definitions, shapes keep their geometry instead
// of being rasterized, and text stays text.
//
// The Device does not dispatch drawing itself. A host canvas drives it
// through the Renderer interface, updating the device transform and clip
// stack between draw calls:
//
//	var buf bytes.Buffer
//	dev := svg.NewDevice(&buf, 800, 600)
//	dev.DrawRect(svg.NewRect(10, 10, 100, 50), svg.NewPaint())
//	if err := dev.Close(); err != nil {
//	    log.Fatal(err)
//	}
//
// Output is deterministic for deterministic input: resource identifiers are
// allocated in call order and every draw call completes its whole subtree
// before returning. A Device is not safe for concurrent use.
package svg
