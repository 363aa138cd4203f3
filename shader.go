package svg

// TileMode defines how an image shader extends beyond its pixel bounds,
// per axis.
type TileMode int

const (
	// TilePad extends edge pixels beyond bounds.
	TilePad TileMode = iota
	// TileRepeat repeats the image.
	TileRepeat
	// TileReflect mirrors the image.
	TileReflect
)

// Shader represents a paint server other than the flat paint color.
// This is a sealed interface - only types in this package implement it.
//
// Supported shader types:
//   - LinearGradient: a linear color transition between two points
//   - ImageShader: an image used as a (possibly tiling) pattern
//
// Unsupported shader configurations degrade silently: the paint-server
// reference stays the flat paint color and no definition is emitted.
type Shader interface {
	// shaderMarker is an unexported method that seals this interface.
	shaderMarker()
}

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// LinearGradient represents a linear color transition between two points.
// It resolves to a linearGradient definition when it carries at least two
// stops; with fewer stops no definition is emitted.
type LinearGradient struct {
	Start Point       // Start point of the gradient
	End   Point       // End point of the gradient
	Stops []ColorStop // Color stops defining the gradient
	Local Matrix      // Shader-local transform (gradientTransform)
}

// NewLinearGradient creates a linear gradient from (x0, y0) to (x1, y1).
func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return &LinearGradient{
		Start: Point{X: x0, Y: y0},
		End:   Point{X: x1, Y: y1},
		Local: Identity(),
	}
}

// AddColorStop adds a color stop at the specified offset.
// Offset should be in the range [0, 1].
// Returns the gradient for method chaining.
func (g *LinearGradient) AddColorStop(offset float64, c RGBA) *LinearGradient {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

func (*LinearGradient) shaderMarker() {}

// ImageShader uses an image as the paint source, tiling per axis
// according to TileX and TileY.
type ImageShader struct {
	Image *Image   // Backing image
	TileX TileMode // Horizontal tile mode
	TileY TileMode // Vertical tile mode
	Local Matrix   // Shader-local transform
}

// NewImageShader creates an image shader with the given per-axis tile modes.
func NewImageShader(img *Image, tileX, tileY TileMode) *ImageShader {
	return &ImageShader{
		Image: img,
		TileX: tileX,
		TileY: tileY,
		Local: Identity(),
	}
}

func (*ImageShader) shaderMarker() {}

// repeats reports whether either axis uses TileRepeat.
func (s *ImageShader) repeats() bool {
	return s.TileX == TileRepeat || s.TileY == TileRepeat
}
