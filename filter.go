package svg

// BlendMode represents a Porter-Duff compositing rule.
type BlendMode int

const (
	// BlendSourceOver is the default alpha blending mode.
	BlendSourceOver BlendMode = iota
	// BlendSourceIn keeps the source where the destination is opaque.
	BlendSourceIn
	// BlendSourceOut keeps the source where the destination is transparent.
	BlendSourceOut
	// BlendDestinationOver draws destination over source.
	BlendDestinationOver
	// BlendDestinationIn keeps destination where the source is opaque.
	BlendDestinationIn
	// BlendDestinationOut keeps destination where the source is transparent.
	BlendDestinationOut
)

// BlendColorFilter replaces the element's color with a constant color,
// composited with the given blend mode.
//
// Only BlendSourceIn resolves to a filter definition (a flood fill kept
// inside the element's coverage). Other modes yield no filter attribute.
type BlendColorFilter struct {
	Color RGBA
	Mode  BlendMode
}

// NewBlendColorFilter creates a color filter with the given color and mode.
func NewBlendColorFilter(c RGBA, mode BlendMode) *BlendColorFilter {
	return &BlendColorFilter{Color: c, Mode: mode}
}
