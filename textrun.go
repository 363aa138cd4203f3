package svg

import (
	"encoding/binary"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// TextEncoding declares how the byte run passed to a text draw call is
// to be decoded.
type TextEncoding int

const (
	// EncodingUTF8 decodes the run as UTF-8.
	EncodingUTF8 TextEncoding = iota
	// EncodingUTF16 decodes the run as little-endian UTF-16.
	EncodingUTF16
	// EncodingUTF32 decodes the run as little-endian UTF-32.
	EncodingUTF32
	// EncodingGlyphID treats the run as little-endian 16-bit glyph
	// identifiers, converted to code points via the typeface.
	EncodingGlyphID
)

// textBuilder turns a byte run into a normalized, escaped markup string
// plus parallel per-glyph x/y position streams.
//
// Whitespace is consolidated to match SVG's xml:space default handling:
// runs of spaces and tabs collapse to one space and leading whitespace
// is stripped. Inconvertible glyphs decode to the null code point, which
// is not a legal XML character; those are dropped from the text and
// their positions are discarded, but the glyph-position cursor still
// advances so later glyphs stay aligned with their position slots.
type textBuilder struct {
	offset        Point
	scalarsPerPos int
	pos           []float64
	cursor        int

	text strings.Builder
	posX strings.Builder
	posY strings.Builder

	// start in whitespace mode to strip all leading space
	lastWasWhitespace bool
}

// newTextBuilder decodes text according to enc and runs the
// normalization state machine. scalarsPerPos must be 0, 1 or 2; when it
// is non-zero, pos supplies that many scalars per decoded glyph.
// face is only consulted for EncodingGlyphID.
//
// An unrecognized encoding is a programming error and panics.
func newTextBuilder(text []byte, enc TextEncoding, face Typeface, offset Point, scalarsPerPos int, pos []float64) *textBuilder {
	if scalarsPerPos < 0 || scalarsPerPos > 2 {
		panic(fmt.Sprintf("svg: invalid scalarsPerPos %d", scalarsPerPos))
	}

	b := &textBuilder{
		offset:            offset,
		scalarsPerPos:     scalarsPerPos,
		pos:               pos,
		lastWasWhitespace: true,
	}

	switch enc {
	case EncodingGlyphID:
		for i := 0; i+1 < len(text); i += 2 {
			g := GlyphID(binary.LittleEndian.Uint16(text[i:]))
			var r rune
			if face != nil {
				r = face.GlyphRune(g)
			}
			b.appendRune(r)
		}
	case EncodingUTF8:
		for _, r := range string(text) {
			b.appendRune(r)
		}
	case EncodingUTF16:
		dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
		decoded, err := dec.Bytes(text)
		if err != nil {
			decoded = nil
		}
		for _, r := range string(decoded) {
			b.appendRune(r)
		}
	case EncodingUTF32:
		dec := utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM).NewDecoder()
		decoded, err := dec.Bytes(text)
		if err != nil {
			decoded = nil
		}
		for _, r := range string(decoded) {
			b.appendRune(r)
		}
	default:
		panic(fmt.Sprintf("svg: unknown text encoding %d", enc))
	}

	// Without per-glyph positions the streams hold one fixed scalar:
	// the call offset.
	if scalarsPerPos < 2 {
		b.posY.WriteString(fmtScalar(offset.Y))
	}
	if scalarsPerPos < 1 {
		b.posX.WriteString(fmtScalar(offset.X))
	}
	return b
}

// Text returns the normalized, escaped character data.
func (b *textBuilder) Text() string { return b.text.String() }

// PosX returns the x position stream.
func (b *textBuilder) PosX() string { return b.posX.String() }

// PosY returns the y position stream.
func (b *textBuilder) PosY() string { return b.posY.String() }

func (b *textBuilder) appendRune(r rune) {
	discardPos := false
	isWhitespace := false

	switch r {
	case ' ', '\t':
		// consolidate whitespace to match SVG's xml:space default
		// munging (http://www.w3.org/TR/SVG/text.html#WhiteSpace)
		if b.lastWasWhitespace {
			discardPos = true
		} else {
			b.text.WriteByte(' ')
		}
		isWhitespace = true
	case 0:
		// not a legal XML character
		// (http://www.w3.org/TR/REC-xml/#charsets)
		discardPos = true
		isWhitespace = b.lastWasWhitespace // preserve whitespace consolidation
	case '&':
		b.text.WriteString("&amp;")
	case '"':
		b.text.WriteString("&quot;")
	case '\'':
		b.text.WriteString("&apos;")
	case '<':
		b.text.WriteString("&lt;")
	case '>':
		b.text.WriteString("&gt;")
	default:
		b.text.WriteRune(r)
	}

	b.advancePos(discardPos)
	b.lastWasWhitespace = isWhitespace
}

// advancePos appends the current glyph's positions to the streams unless
// the glyph was discarded. The cursor advances either way: discarded
// glyphs consume their position slot without emitting it.
func (b *textBuilder) advancePos(discard bool) {
	if !discard && b.scalarsPerPos > 0 {
		base := b.cursor * b.scalarsPerPos
		fmt.Fprintf(&b.posX, "%.8g, ", b.offset.X+b.pos[base])
		if b.scalarsPerPos > 1 {
			fmt.Fprintf(&b.posY, "%.8g, ", b.offset.Y+b.pos[base+1])
		}
	}
	b.cursor++
}
