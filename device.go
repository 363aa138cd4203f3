package svg

import (
	"io"
	"strconv"

	"github.com/gogpu/svg/internal/xmlw"
)

// PointMode selects how DrawPoints interprets its point list.
type PointMode int

const (
	// PointsAsPoints draws each point individually. Points have no
	// markup equivalent and the draw is skipped.
	PointsAsPoints PointMode = iota
	// PointsAsLines draws consecutive point pairs as line segments.
	PointsAsLines
	// PointsAsPolygon draws the points as one open polygon.
	PointsAsPolygon
)

// Annotation keys recognized by DrawAnnotation.
const (
	// AnnotationURL marks the rectangle as a link target; the value is
	// the destination URL.
	AnnotationURL = "url"
	// AnnotationNamedDestination defines a named link anchor; the value
	// is the anchor name.
	AnnotationNamedDestination = "named-destination"
)

// Renderer is the draw surface a canvas dispatcher invokes. Device is
// the markup-emitting implementation; the interface makes no assumption
// about who dispatches to it or in what composition.
type Renderer interface {
	Save()
	Restore()
	SetTransform(m Matrix)
	ClipRect(r Rect)
	ClipPath(p *Path)

	DrawPaint(paint *Paint)
	DrawRect(r Rect, paint *Paint)
	DrawOval(bounds Rect, paint *Paint)
	DrawRoundRect(r Rect, rx, ry float64, paint *Paint)
	DrawPath(p *Path, paint *Paint)
	DrawPoints(mode PointMode, pts []Point, paint *Paint)
	DrawImage(img *Image, x, y float64, paint *Paint)
	DrawSprite(img *Image, x, y float64, paint *Paint)
	DrawImageRect(img *Image, src, dst Rect, paint *Paint)
	DrawPosText(text []byte, enc TextEncoding, font *Font, paint *Paint, offset Point, scalarsPerPos int, pos []float64)
	DrawTextOnPath(text []byte, enc TextEncoding, path *Path, font *Font, paint *Paint)
	DrawAnnotation(r Rect, key string, value []byte)
}

// Device translates draw calls into SVG markup on an io.Writer. It owns
// the full document: the constructor writes the prolog and opens the
// root element, every draw call emits one complete subtree, and Close
// ends the root.
//
// A Device is single-threaded. Draw calls must not overlap and nothing
// may be drawn after Close.
type Device struct {
	writer *xmlw.Writer
	ids    identRegistry

	width  int
	height int

	transform Matrix
	clip      *ClipStack
	saves     []Matrix

	closed bool
}

var _ Renderer = (*Device)(nil)

// drawCtx snapshots the device state a single draw resolves against.
type drawCtx struct {
	matrix Matrix
	clip   *ClipStack
}

func (d *Device) ctx() drawCtx {
	return drawCtx{matrix: d.transform, clip: d.clip}
}

// NewDevice writes the document prolog and root element for a canvas of
// the given pixel size and returns the device.
func NewDevice(w io.Writer, width, height int) *Device {
	d := &Device{
		writer:    xmlw.New(w),
		width:     width,
		height:    height,
		transform: Identity(),
		clip:      NewClipStack(NewRect(0, 0, float64(width), float64(height))),
	}
	d.writer.WriteHeader()
	d.writer.StartElement("svg")
	d.writer.Attr("xmlns", "http://www.w3.org/2000/svg")
	d.writer.Attr("xmlns:xlink", "http://www.w3.org/1999/xlink")
	d.writer.Attr("width", strconv.Itoa(width))
	d.writer.Attr("height", strconv.Itoa(height))
	return d
}

// Close ends the root element and reports the first write error, if
// any. Closing twice is harmless.
func (d *Device) Close() error {
	if !d.closed {
		d.closed = true
		d.writer.EndElement()
	}
	return d.writer.Err()
}

// Save pushes the current transform and clip state.
func (d *Device) Save() {
	d.saves = append(d.saves, d.transform)
	d.clip.Save()
}

// Restore pops to the most recent Save. Unbalanced calls are ignored.
func (d *Device) Restore() {
	if len(d.saves) == 0 {
		return
	}
	d.transform = d.saves[len(d.saves)-1]
	d.saves = d.saves[:len(d.saves)-1]
	d.clip.Restore()
}

// SetTransform replaces the current transform.
func (d *Device) SetTransform(m Matrix) {
	d.transform = m
}

// Transform returns the current transform.
func (d *Device) Transform() Matrix {
	return d.transform
}

// ClipRect intersects the clip with a rectangle in local coordinates.
func (d *Device) ClipRect(r Rect) {
	d.clip.ClipRect(r, d.transform)
}

// ClipPath intersects the clip with a path in local coordinates.
func (d *Device) ClipPath(p *Path) {
	d.clip.ClipPath(p, d.transform)
}

// DrawPaint fills the whole device area with the paint.
func (d *Device) DrawPaint(paint *Paint) {
	rect := d.openPaintedElement("rect", d.ctx(), paint)
	rect.rectAttributes(NewRect(0, 0, float64(d.width), float64(d.height)))
	rect.Close()
}

// DrawRect emits a rect element.
//
// Pattern tiles sized in pixels repeat relative to the nearest viewport,
// not the shape, so a repeating image shader first opens a nested svg
// element spanning the rectangle and then fills it edge to edge. Both
// elements carry the paint, so the pattern definition is emitted twice
// under two ids.
func (d *Device) DrawRect(r Rect, paint *Paint) {
	var viewport *element
	if requiresViewportReset(paint) {
		viewport = d.openPaintedElement("svg", d.ctx(), paint)
		viewport.rectAttributes(r)
	}

	rect := d.openPaintedElement("rect", d.ctx(), paint)
	if viewport != nil {
		rect.attr("x", "0")
		rect.attr("y", "0")
		rect.attr("width", "100%")
		rect.attr("height", "100%")
	} else {
		rect.rectAttributes(r)
	}
	rect.Close()

	if viewport != nil {
		viewport.Close()
	}
}

// DrawOval emits an ellipse element inscribed in bounds.
func (d *Device) DrawOval(bounds Rect, paint *Paint) {
	e := d.openPaintedElement("ellipse", d.ctx(), paint)
	e.attrScalar("cx", bounds.CenterX())
	e.attrScalar("cy", bounds.CenterY())
	e.attrScalar("rx", bounds.W/2)
	e.attrScalar("ry", bounds.H/2)
	e.Close()
}

// DrawRoundRect emits a rounded rectangle as a path element.
func (d *Device) DrawRoundRect(r Rect, rx, ry float64, paint *Paint) {
	p := NewPath()
	p.RoundedRectangle(r.X, r.Y, r.W, r.H, rx, ry)
	d.DrawPath(p, paint)
}

// DrawPath emits a path element.
func (d *Device) DrawPath(p *Path, paint *Paint) {
	e := d.openPaintedElement("path", d.ctx(), paint)
	e.pathAttributes(p)
	if p.FillRule == FillRuleEvenOdd {
		e.attr("fill-rule", "evenodd")
	}
	e.Close()
}

// DrawPoints draws a point sequence as line segments or a polygon.
// Line mode emits one element per segment. Individual points have no
// markup equivalent and are skipped.
func (d *Device) DrawPoints(mode PointMode, pts []Point, paint *Paint) {
	switch mode {
	case PointsAsPoints:
		Logger().Debug("point-mode draw skipped", "points", len(pts))
	case PointsAsLines:
		for i := 0; i+1 < len(pts); i += 2 {
			p := NewPath()
			p.MoveTo(pts[i].X, pts[i].Y)
			p.LineTo(pts[i+1].X, pts[i+1].Y)
			d.DrawPath(p, paint)
		}
	case PointsAsPolygon:
		p := NewPath()
		if len(pts) > 1 {
			p.Polyline(pts)
			p.MoveTo(pts[0].X, pts[0].Y)
		}
		d.DrawPath(p, paint)
	}
}

// DrawImage draws the image with its top-left corner at (x, y) in local
// coordinates.
func (d *Device) DrawImage(img *Image, x, y float64, paint *Paint) {
	ctx := d.ctx()
	ctx.matrix = ctx.matrix.Multiply(Translate(x, y))
	d.drawImageCommon(ctx, img, paint)
}

// DrawSprite draws the image with its top-left corner at (x, y) in
// local coordinates, like DrawImage. Sprite positions are whole pixels
// at the call site; the transform handling is identical.
func (d *Device) DrawSprite(img *Image, x, y float64, paint *Paint) {
	ctx := d.ctx()
	ctx.matrix = ctx.matrix.Multiply(Translate(x, y))
	d.drawImageCommon(ctx, img, paint)
}

// DrawImageRect draws the src portion of the image scaled into dst.
// Drawing a sub-rectangle clips to dst so scaled-up neighboring pixels
// do not bleed outside it.
func (d *Device) DrawImageRect(img *Image, src, dst Rect, paint *Paint) {
	full := NewRect(0, 0, float64(img.Width()), float64(img.Height()))
	subset := src != full
	if subset {
		d.clip.Save()
		d.clip.ClipRect(dst, d.transform)
	}

	ctx := d.ctx()
	ctx.matrix = ctx.matrix.Multiply(RectToRect(src, dst))
	d.drawImageCommon(ctx, img, paint)

	if subset {
		d.clip.Restore()
	}
}

// drawImageCommon defines the image once under defs and references it
// with a paint-bound use element.
func (d *Device) drawImageCommon(ctx drawCtx, img *Image, paint *Paint) {
	uri, err := img.DataURI()
	if err != nil {
		Logger().Warn("image draw skipped", "error", err)
		return
	}

	id := d.ids.next(kindImage)
	defs := d.openElement("defs")
	image := d.openElement("image")
	image.attr("id", id)
	image.attrInt("width", img.Width())
	image.attrInt("height", img.Height())
	image.attr("xlink:href", uri)
	image.Close()
	defs.Close()

	use := d.openPaintedElement("use", ctx, paint)
	use.attr("xlink:href", "#"+id)
	use.Close()
}

// DrawPosText emits a text element with explicit per-glyph positions.
//
// pos holds scalarsPerPos values per decoded unit: 0 positions every
// unit at offset, 1 supplies x values with y fixed at offset.Y, and 2
// supplies x and y pairs.
func (d *Device) DrawPosText(text []byte, enc TextEncoding, font *Font, paint *Paint, offset Point, scalarsPerPos int, pos []float64) {
	e := d.openPaintedElement("text", d.ctx(), paint)
	e.textAttributes(font)

	b := newTextBuilder(text, enc, font.Typeface, offset, scalarsPerPos, pos)
	e.attr("x", b.PosX())
	e.attr("y", b.PosY())
	e.text(b.Text())
	e.Close()
}

// DrawTextOnPath lays the text along the path. The path is defined
// under defs and referenced from a textPath element; the outer text
// element is structural and carries no paint of its own.
func (d *Device) DrawTextOnPath(text []byte, enc TextEncoding, path *Path, font *Font, paint *Paint) {
	id := d.ids.next(kindPath)
	defs := d.openElement("defs")
	p := d.openElement("path")
	p.attr("id", id)
	p.pathAttributes(path)
	p.Close()
	defs.Close()

	t := d.openElement("text")
	t.textAttributes(font)

	tp := d.openElement("textPath")
	tp.attr("xlink:href", "#"+id)
	switch font.Anchor {
	case AnchorMiddle:
		tp.attr("startOffset", "50%")
	case AnchorEnd:
		tp.attr("startOffset", "100%")
	}

	b := newTextBuilder(text, enc, font.Typeface, Point{}, 0, nil)
	tp.text(b.Text())
	tp.Close()
	t.Close()
}

// DrawAnnotation attaches link metadata to a rectangle. The rectangle
// is mapped to device space and intersected with the current clip; an
// empty result emits nothing. URL and named-destination annotations
// both produce an anchor wrapping an invisible rectangle; the value is
// the link target in either case. Unrecognized keys are ignored.
func (d *Device) DrawAnnotation(r Rect, key string, value []byte) {
	if len(value) == 0 {
		return
	}

	bounds := r.TransformBounds(d.transform).Intersect(d.clip.Bounds())
	if bounds.IsEmpty() {
		return
	}

	switch key {
	case AnnotationURL, AnnotationNamedDestination:
		a := d.openElement("a")
		a.attr("xlink:href", string(value))
		rect := d.openElement("rect")
		rect.attr("fill-opacity", "0")
		rect.rectAttributes(bounds)
		rect.Close()
		a.Close()
	}
}
