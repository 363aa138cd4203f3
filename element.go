package svg

import (
	"strconv"
	"strings"
)

// element is a scoped guard for one emitted element, plus any implicit
// wrapper opened with it. Close ends exactly the elements this guard
// opened, in reverse order, so nesting stays balanced on every exit
// path; callers pair each open with a single Close (usually deferred).
type element struct {
	dev  *Device
	open int
}

// openElement opens a bare element with no attribute computation.
// Used for structural wrappers (defs, gradient/pattern/filter bodies).
func (d *Device) openElement(name string) *element {
	d.writer.StartElement(name)
	return &element{dev: d, open: 1}
}

// openPaintedElement resolves the paint's resources, opens the element
// and applies the full paint-to-attribute mapping.
//
// Resource definitions (gradients, clip paths, patterns, filters) are
// emitted first, inside their own defs subtree, so that every reference
// written on the element points to an earlier definition. A non-empty
// clip reference additionally wraps the element in a <g clip-path=...>:
// the clip is in device space and must not interact with the element's
// own transform attribute.
func (d *Device) openPaintedElement(name string, ctx drawCtx, paint *Paint) *element {
	res := d.resolveResources(ctx, paint)

	e := &element{dev: d}
	if res.clip != "" {
		d.writer.StartElement("g")
		e.open++
		d.writer.Attr("clip-path", res.clip)
	}

	d.writer.StartElement(name)
	e.open++

	e.applyPaint(paint, res)

	if !ctx.matrix.IsIdentity() {
		e.attr("transform", transformString(ctx.matrix))
	}
	return e
}

// Close ends every element this guard opened, innermost first.
func (e *element) Close() {
	for ; e.open > 0; e.open-- {
		e.dev.writer.EndElement()
	}
}

func (e *element) attr(name, value string) {
	e.dev.writer.Attr(name, value)
}

func (e *element) attrScalar(name string, v float64) {
	e.dev.writer.Attr(name, fmtScalar(v))
}

func (e *element) attrInt(name string, v int) {
	e.dev.writer.Attr(name, itoa(v))
}

// text writes pre-escaped character data into the element.
func (e *element) text(s string) {
	e.dev.writer.Text(s)
}

// capNames and joinNames map stroke caps/joins to attribute values.
// The empty string marks the SVG default, which emits no attribute.
var capNames = [...]string{
	LineCapButt:   "",
	LineCapRound:  "round",
	LineCapSquare: "square",
}

var joinNames = [...]string{
	LineJoinMiter: "",
	LineJoinRound: "round",
	LineJoinBevel: "bevel",
}

// applyPaint writes the paint-to-attribute mapping.
func (e *element) applyPaint(paint *Paint, res resources) {
	if paint.hasFill() {
		e.attr("fill", res.paintServer)
		if !paint.Color.IsOpaque() {
			e.attr("fill-opacity", svgOpacity(paint.Color))
		}
	} else {
		e.attr("fill", "none")
	}

	if res.colorFilter != "" {
		e.attr("filter", res.colorFilter)
	}

	if paint.hasStroke() {
		e.attr("stroke", res.paintServer)

		width := paint.LineWidth
		if width == 0 {
			// Hairline stroke
			width = 1
			e.attr("vector-effect", "non-scaling-stroke")
		}
		e.attrScalar("stroke-width", width)

		if name := capNames[paint.LineCap]; name != "" {
			e.attr("stroke-linecap", name)
		}
		if name := joinNames[paint.LineJoin]; name != "" {
			e.attr("stroke-linejoin", name)
		}
		if paint.LineJoin == LineJoinMiter {
			e.attrScalar("stroke-miterlimit", paint.MiterLimit)
		}
		if !paint.Color.IsOpaque() {
			e.attr("stroke-opacity", svgOpacity(paint.Color))
		}
	} else {
		e.attr("stroke", "none")
	}
}

// rectAttributes writes a rectangle's geometry. The x and y attributes
// default to 0 in SVG and are omitted when zero.
func (e *element) rectAttributes(r Rect) {
	if r.X != 0 {
		e.attrScalar("x", r.X)
	}
	if r.Y != 0 {
		e.attrScalar("y", r.Y)
	}
	e.attrScalar("width", r.W)
	e.attrScalar("height", r.H)
}

// pathAttributes writes the path geometry as a d attribute.
func (e *element) pathAttributes(p *Path) {
	e.attr("d", PathData(p))
}

// fontWeights maps the (weight-50)/100 bucket to attribute values; the
// normal bucket emits no attribute.
var fontWeights = [...]string{
	"100", "200", "300", "normal", "400", "500", "600", "bold", "800", "900",
}

// fontStretches maps Width-1 to attribute values; normal (index 4)
// emits no attribute.
var fontStretches = [...]string{
	"ultra-condensed", "extra-condensed", "condensed", "semi-condensed",
	"normal",
	"semi-expanded", "expanded", "extra-expanded", "ultra-expanded",
}

// textAttributes writes font-size, anchoring and typeface attributes.
func (e *element) textAttributes(f *Font) {
	e.attrScalar("font-size", f.Size)

	switch f.Anchor {
	case AnchorMiddle:
		e.attr("text-anchor", "middle")
	case AnchorEnd:
		e.attr("text-anchor", "end")
	}

	face := f.Typeface
	if face == nil {
		return
	}

	style := face.Style()
	switch style.Slant {
	case SlantItalic:
		e.attr("font-style", "italic")
	case SlantOblique:
		e.attr("font-style", "oblique")
	}

	weightIndex := (pin(style.Weight, 100, 900) - 50) / 100
	if weightIndex != 3 {
		e.attr("font-weight", fontWeights[weightIndex])
	}
	stretchIndex := pin(style.Width, 1, 9) - 1
	if stretchIndex != 4 {
		e.attr("font-stretch", fontStretches[stretchIndex])
	}

	if families := face.FamilyNames(); len(families) > 0 {
		e.attr("font-family", strings.Join(families, ", "))
	}
}

func pin(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
