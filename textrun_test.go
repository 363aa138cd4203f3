package svg

import "testing"

// runeTypeface maps glyph ids to runes directly.
type runeTypeface map[GlyphID]rune

func (m runeTypeface) Style() FontStyle        { return NormalStyle() }
func (m runeTypeface) FamilyNames() []string   { return nil }
func (m runeTypeface) GlyphRune(g GlyphID) rune { return m[g] }

func TestTextBuilderWhitespace(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello", "hello"},
		{"inner run collapses", "a  b", "a b"},
		{"leading space stripped", " x", "x"},
		{"leading run stripped", "  \t x", "x"},
		{"tab becomes space", "a\tb", "a b"},
		{"mixed run collapses", "a \t b", "a b"},
		{"trailing space kept", "a ", "a "},
		{"only whitespace", " \t ", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTextBuilder([]byte(tt.in), EncodingUTF8, nil, Point{}, 0, nil)
			if got := b.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTextBuilderEscaping(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ampersand", "a & b", "a &amp; b"},
		{"angle brackets", "<svg>", "&lt;svg&gt;"},
		{"quotes", `"x" 'y'`, "&quot;x&quot; &apos;y&apos;"},
		{"non-ascii passes through", "héllo", "héllo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTextBuilder([]byte(tt.in), EncodingUTF8, nil, Point{}, 0, nil)
			if got := b.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTextBuilderFixedPosition(t *testing.T) {
	b := newTextBuilder([]byte("abc"), EncodingUTF8, nil, Point{X: 5, Y: 7}, 0, nil)
	if got := b.PosX(); got != "5" {
		t.Errorf("PosX() = %q, want %q", got, "5")
	}
	if got := b.PosY(); got != "7" {
		t.Errorf("PosY() = %q, want %q", got, "7")
	}
}

func TestTextBuilderPositionStreams(t *testing.T) {
	t.Run("x only", func(t *testing.T) {
		b := newTextBuilder([]byte("ab"), EncodingUTF8, nil, Point{X: 10, Y: 3}, 1,
			[]float64{0, 6})
		if got := b.PosX(); got != "10, 16, " {
			t.Errorf("PosX() = %q, want %q", got, "10, 16, ")
		}
		if got := b.PosY(); got != "3" {
			t.Errorf("PosY() = %q, want %q", got, "3")
		}
	})

	t.Run("x and y", func(t *testing.T) {
		b := newTextBuilder([]byte("ab"), EncodingUTF8, nil, Point{}, 2,
			[]float64{1, 2, 3, 4})
		if got := b.PosX(); got != "1, 3, " {
			t.Errorf("PosX() = %q, want %q", got, "1, 3, ")
		}
		if got := b.PosY(); got != "2, 4, " {
			t.Errorf("PosY() = %q, want %q", got, "2, 4, ")
		}
	})

	t.Run("consolidated whitespace drops its position", func(t *testing.T) {
		b := newTextBuilder([]byte("a  b"), EncodingUTF8, nil, Point{}, 1,
			[]float64{0, 5, 6, 11})
		if got := b.Text(); got != "a b" {
			t.Errorf("Text() = %q, want %q", got, "a b")
		}
		// The second space consumes its slot without emitting it.
		if got := b.PosX(); got != "0, 5, 11, " {
			t.Errorf("PosX() = %q, want %q", got, "0, 5, 11, ")
		}
	})
}

func TestTextBuilderGlyphEncoding(t *testing.T) {
	face := runeTypeface{1: 'A', 2: 'B', 3: 'C'}

	// Little-endian 16-bit glyph ids.
	run := []byte{1, 0, 2, 0, 3, 0}
	b := newTextBuilder(run, EncodingGlyphID, face, Point{}, 1, []float64{0, 8, 16})
	if got := b.Text(); got != "ABC" {
		t.Errorf("Text() = %q, want %q", got, "ABC")
	}
	if got := b.PosX(); got != "0, 8, 16, " {
		t.Errorf("PosX() = %q, want %q", got, "0, 8, 16, ")
	}
}

func TestTextBuilderInconvertibleGlyph(t *testing.T) {
	// Glyph 9 has no rune: it decodes to the null code point, which is
	// dropped from the text while its position slot is still consumed.
	face := runeTypeface{1: 'A', 2: 'B'}
	run := []byte{1, 0, 9, 0, 2, 0}
	b := newTextBuilder(run, EncodingGlyphID, face, Point{}, 1, []float64{0, 8, 16})
	if got := b.Text(); got != "AB" {
		t.Errorf("Text() = %q, want %q", got, "AB")
	}
	if got := b.PosX(); got != "0, 16, " {
		t.Errorf("PosX() = %q, want %q", got, "0, 16, ")
	}
}

func TestTextBuilderUTF16(t *testing.T) {
	// "hi" in little-endian UTF-16.
	b := newTextBuilder([]byte{'h', 0, 'i', 0}, EncodingUTF16, nil, Point{}, 0, nil)
	if got := b.Text(); got != "hi" {
		t.Errorf("Text() = %q, want %q", got, "hi")
	}
}

func TestTextBuilderUTF32(t *testing.T) {
	// "hi" in little-endian UTF-32.
	b := newTextBuilder([]byte{'h', 0, 0, 0, 'i', 0, 0, 0}, EncodingUTF32, nil, Point{}, 0, nil)
	if got := b.Text(); got != "hi" {
		t.Errorf("Text() = %q, want %q", got, "hi")
	}
}

func TestTextBuilderUnknownEncodingPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("newTextBuilder did not panic on unknown encoding")
		}
	}()
	newTextBuilder([]byte("x"), TextEncoding(42), nil, Point{}, 0, nil)
}

func TestTextBuilderInvalidScalarsPerPosPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("newTextBuilder did not panic on scalarsPerPos 3")
		}
	}()
	newTextBuilder([]byte("x"), EncodingUTF8, nil, Point{}, 3, []float64{1, 2, 3})
}
