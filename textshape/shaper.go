// Package textshape turns strings into positioned glyph runs using
// HarfBuzz shaping via go-text/typesetting. A shaped run encodes
// directly into the glyph-id text form consumed by positioned text
// draws, so hosts get kerning and ligature substitution without the
// rendering side knowing anything about shaping.
package textshape

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// Glyph is one shaped glyph with its pen position in px.
type Glyph struct {
	ID      uint16
	Cluster int // rune index in the source text
	X, Y    float64
	Advance float64
}

// Run is the result of shaping one string at one size.
type Run struct {
	Glyphs  []Glyph
	Advance float64 // total horizontal advance in px
}

// Shaper shapes text with a single parsed font. It keeps mutable
// shaping state and is not safe for concurrent use, matching the
// single-threaded discipline of the rendering device it feeds.
type Shaper struct {
	face *font.Face
	hb   shaping.HarfbuzzShaper
}

// NewShaper parses TTF or OTF font data.
func NewShaper(data []byte) (*Shaper, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("textshape: parse font: %w", err)
	}
	return &Shaper{face: face}, nil
}

// Shape shapes text left to right at the given size in px.
func (s *Shaper) Shape(text string, size float64) Run {
	if text == "" {
		return Run{}
	}
	runes := []rune(text)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      s.face,
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	output := s.hb.Shape(input)

	run := Run{Glyphs: make([]Glyph, len(output.Glyphs))}
	var x float64
	for i, g := range output.Glyphs {
		adv := fixedToFloat(g.Advance)
		run.Glyphs[i] = Glyph{
			ID:      uint16(g.GlyphID),
			Cluster: g.TextIndex(),
			X:       x + fixedToFloat(g.XOffset),
			Y:       fixedToFloat(g.YOffset),
			Advance: adv,
		}
		x += adv
	}
	run.Advance = x
	return run
}

// Encode converts the run into the glyph-id byte form and the x/y
// position pairs expected by positioned text draws.
func (r Run) Encode() (text []byte, pos []float64) {
	text = make([]byte, 2*len(r.Glyphs))
	pos = make([]float64, 0, 2*len(r.Glyphs))
	for i, g := range r.Glyphs {
		binary.LittleEndian.PutUint16(text[2*i:], g.ID)
		pos = append(pos, g.X, g.Y)
	}
	return text, pos
}

// detectScript returns the script of the first non-space rune. Mixed
// scripts should be split into runs before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
