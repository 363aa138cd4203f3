package svg

import "strings"

// PathData serializes the path as SVG path data (the d attribute).
// Commands use absolute coordinates: M, L, Q, C and Z.
func PathData(p *Path) string {
	var b strings.Builder
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			writeCommand(&b, 'M', e.Point)
		case LineTo:
			writeCommand(&b, 'L', e.Point)
		case QuadTo:
			writeCommand(&b, 'Q', e.Control, e.Point)
		case CubicTo:
			writeCommand(&b, 'C', e.Control1, e.Control2, e.Point)
		case Close:
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte('Z')
		}
	}
	return b.String()
}

func writeCommand(b *strings.Builder, cmd byte, pts ...Point) {
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
	b.WriteByte(cmd)
	for i, pt := range pts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(fmtScalar(pt.X))
		b.WriteByte(' ')
		b.WriteString(fmtScalar(pt.Y))
	}
}

// IsRect reports whether the path is a single closed, axis-aligned
// rectangle, and returns it. The expected element pattern is
// MoveTo + 3-4 LineTo + Close, with each segment axis-aligned and the
// optional fourth line returning to the start point.
func (p *Path) IsRect() (Rect, bool) {
	elems := p.Elements()
	if len(elems) < 5 || len(elems) > 6 {
		return Rect{}, false
	}

	move, ok := elems[0].(MoveTo)
	if !ok {
		return Rect{}, false
	}
	if _, ok := elems[len(elems)-1].(Close); !ok {
		return Rect{}, false
	}

	pts := []Point{move.Point}
	for _, elem := range elems[1 : len(elems)-1] {
		line, ok := elem.(LineTo)
		if !ok {
			return Rect{}, false
		}
		pts = append(pts, line.Point)
	}

	// An explicit closing line back to the start is tolerated.
	if len(pts) == 5 {
		if pts[4] != pts[0] {
			return Rect{}, false
		}
		pts = pts[:4]
	}

	// Each segment must be axis-aligned, alternating direction.
	for i := 0; i < 4; i++ {
		a, b := pts[i], pts[(i+1)%4]
		horizontal := a.Y == b.Y && a.X != b.X
		vertical := a.X == b.X && a.Y != b.Y
		if !horizontal && !vertical {
			return Rect{}, false
		}
	}
	if (pts[0].Y == pts[1].Y) == (pts[1].Y == pts[2].Y) {
		return Rect{}, false
	}

	minX := min(pts[0].X, pts[2].X)
	minY := min(pts[0].Y, pts[2].Y)
	maxX := max(pts[0].X, pts[2].X)
	maxY := max(pts[0].Y, pts[2].Y)
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}, true
}
