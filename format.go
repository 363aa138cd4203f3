package svg

import (
	"fmt"
	"strconv"
	"strings"
)

// fmtScalar formats a scalar the way it appears in attribute values:
// the shortest decimal representation that round-trips.
func fmtScalar(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// svgColor formats a color as rgb(r,g,b) with 0-255 channels.
// Alpha is carried separately via -opacity attributes.
func svgColor(c RGBA) string {
	return fmt.Sprintf("rgb(%d,%d,%d)",
		uint8(clamp255(c.R*255)),
		uint8(clamp255(c.G*255)),
		uint8(clamp255(c.B*255)))
}

// svgOpacity formats a color's alpha for -opacity attributes.
func svgOpacity(c RGBA) string {
	return fmtScalar(c.A)
}

// transformString renders a matrix as an SVG transform attribute value,
// using the most specific of the translate/scale/matrix forms.
// The caller must not pass the identity matrix (the attribute is omitted
// entirely in that case).
func transformString(m Matrix) string {
	var b strings.Builder
	switch {
	case m.IsTranslationOnly():
		b.WriteString("translate(")
		b.WriteString(fmtScalar(m.C))
		b.WriteByte(' ')
		b.WriteString(fmtScalar(m.F))
		b.WriteByte(')')
	case m.B == 0 && m.D == 0 && m.C == 0 && m.F == 0:
		b.WriteString("scale(")
		b.WriteString(fmtScalar(m.A))
		b.WriteByte(' ')
		b.WriteString(fmtScalar(m.E))
		b.WriteByte(')')
	default:
		// SVG matrix(a b c d e f) is column-major:
		//	| a c e |
		//	| b d f |
		b.WriteString("matrix(")
		for i, v := range [6]float64{m.A, m.D, m.B, m.E, m.C, m.F} {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(fmtScalar(v))
		}
		b.WriteByte(')')
	}
	return b.String()
}
