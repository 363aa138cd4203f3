package svg

import (
	"fmt"
	"sync"
	"unicode"

	"golang.org/x/image/font/sfnt"
)

// GlyphID identifies a glyph within a typeface.
type GlyphID uint16

// Slant describes the slant of a typeface.
type Slant int

const (
	// SlantUpright is a regular, unslanted face.
	SlantUpright Slant = iota
	// SlantItalic is a true italic face.
	SlantItalic
	// SlantOblique is a mechanically slanted face.
	SlantOblique
)

// FontStyle describes the weight, width and slant of a typeface.
// Weight uses the CSS 100-900 scale; Width the 1-9 scale where 5 is
// normal.
type FontStyle struct {
	Weight int
	Width  int
	Slant  Slant
}

// NormalStyle returns the default font style (weight 400, normal width,
// upright).
func NormalStyle() FontStyle {
	return FontStyle{Weight: 400, Width: 5, Slant: SlantUpright}
}

// Typeface provides the font metadata the device needs: style
// attributes, the ordered family-name list, and the glyph-to-code-point
// lookup used when text arrives glyph-encoded.
type Typeface interface {
	// Style returns the typeface's weight/width/slant.
	Style() FontStyle

	// FamilyNames returns the family names, most specific first,
	// without duplicates. An empty slice omits the font-family
	// attribute.
	FamilyNames() []string

	// GlyphRune returns the code point for a glyph, or 0 when the
	// glyph has no convertible code point.
	GlyphRune(g GlyphID) rune
}

// TextAnchor controls horizontal text alignment relative to the
// position.
type TextAnchor int

const (
	// AnchorStart aligns the start of the text at the position (default).
	AnchorStart TextAnchor = iota
	// AnchorMiddle centers the text on the position.
	AnchorMiddle
	// AnchorEnd aligns the end of the text at the position.
	AnchorEnd
)

// Font carries the text attributes of a draw call: which typeface, at
// what size, with which anchoring.
type Font struct {
	Typeface Typeface
	Size     float64
	Anchor   TextAnchor
}

// OpenTypeFace is a Typeface backed by an OpenType/TrueType font parsed
// with golang.org/x/image/font/sfnt. Family names come from the font's
// name table; the glyph-to-rune mapping is a reverse character map built
// lazily over the Basic Multilingual Plane.
type OpenTypeFace struct {
	font     *sfnt.Font
	style    FontStyle
	families []string

	once    sync.Once
	reverse map[GlyphID]rune
}

// TypefaceOption configures ParseTypeface.
type TypefaceOption func(*OpenTypeFace)

// WithStyle declares the face's style. Fonts do not always carry
// reliable style metadata, so the caller may state it explicitly.
func WithStyle(style FontStyle) TypefaceOption {
	return func(f *OpenTypeFace) {
		f.style = style
	}
}

// WithFamilies overrides the family-name list read from the font.
func WithFamilies(names ...string) TypefaceOption {
	return func(f *OpenTypeFace) {
		f.families = dedupeNames(names)
	}
}

// ParseTypeface parses TTF or OTF font data.
func ParseTypeface(data []byte, opts ...TypefaceOption) (*OpenTypeFace, error) {
	parsed, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("svg: parse font: %w", err)
	}
	face := &OpenTypeFace{
		font:  parsed,
		style: NormalStyle(),
	}
	if name, err := parsed.Name(nil, sfnt.NameIDFamily); err == nil && name != "" {
		face.families = []string{name}
	}
	for _, opt := range opts {
		opt(face)
	}
	return face, nil
}

// Style implements Typeface.
func (f *OpenTypeFace) Style() FontStyle {
	return f.style
}

// FamilyNames implements Typeface.
func (f *OpenTypeFace) FamilyNames() []string {
	return f.families
}

// GlyphRune implements Typeface. The first lookup builds the reverse
// character map; when several runes map to one glyph the lowest rune
// wins.
func (f *OpenTypeFace) GlyphRune(g GlyphID) rune {
	f.once.Do(f.buildReverseCmap)
	return f.reverse[g]
}

func (f *OpenTypeFace) buildReverseCmap() {
	f.reverse = make(map[GlyphID]rune)
	var buf sfnt.Buffer
	for r := rune(0); r <= 0xffff; r++ {
		if unicode.Is(unicode.Cs, r) {
			continue // surrogates are not valid code points
		}
		idx, err := f.font.GlyphIndex(&buf, r)
		if err != nil || idx == 0 {
			continue
		}
		g := GlyphID(idx)
		if _, ok := f.reverse[g]; !ok {
			f.reverse[g] = r
		}
	}
}

func dedupeNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := names[:0]
	for _, n := range names {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
