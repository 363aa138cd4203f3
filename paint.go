package svg

// PaintStyle selects whether geometry is filled, stroked, or both.
type PaintStyle int

const (
	// StyleFill fills the interior of the shape.
	StyleFill PaintStyle = iota
	// StyleStroke strokes the outline of the shape.
	StyleStroke
	// StyleStrokeAndFill fills the interior and strokes the outline.
	StyleStrokeAndFill
)

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// Paint represents the styling information for drawing.
//
// Color is the flat paint color; it is also the paint-server fallback when
// Shader is nil or does not resolve to a definition. The color's alpha
// drives the fill-opacity and stroke-opacity attributes.
type Paint struct {
	// Style selects fill, stroke, or both.
	Style PaintStyle

	// Color is the flat paint color.
	Color RGBA

	// Shader overrides Color as the paint server when it resolves
	// (linear gradient or image pattern). Nil means flat color.
	Shader Shader

	// ColorFilter is applied to the element via a filter definition.
	// Only the src-in blend kind is supported; others are ignored.
	ColorFilter *BlendColorFilter

	// LineWidth is the width of strokes. A width of exactly zero
	// requests a hairline stroke.
	LineWidth float64

	// LineCap is the shape of line endpoints.
	LineCap LineCap

	// LineJoin is the shape of line joins.
	LineJoin LineJoin

	// MiterLimit is the miter limit for sharp joins.
	MiterLimit float64

	// Antialias enables anti-aliasing. It has no effect on vector
	// output but is part of the paint state hosts carry around.
	Antialias bool
}

// NewPaint creates a new Paint with default values.
func NewPaint() *Paint {
	return &Paint{
		Style:      StyleFill,
		Color:      Black,
		LineWidth:  1.0,
		LineCap:    LineCapButt,
		LineJoin:   LineJoinMiter,
		MiterLimit: 4.0,
		Antialias:  true,
	}
}

// Clone creates a copy of the Paint.
func (p *Paint) Clone() *Paint {
	q := *p
	return &q
}

// hasFill reports whether the paint style includes a fill.
func (p *Paint) hasFill() bool {
	return p.Style == StyleFill || p.Style == StyleStrokeAndFill
}

// hasStroke reports whether the paint style includes a stroke.
func (p *Paint) hasStroke() bool {
	return p.Style == StyleStroke || p.Style == StyleStrokeAndFill
}
