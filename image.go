package svg

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	// Registered for format auto-detection in DecodeImage.
	_ "image/jpeg"
	_ "image/png"

	"github.com/gogpu/svg/internal/datauri"
)

// ErrNoImageData is returned when an Image holds neither decoded pixels
// nor encoded bytes.
var ErrNoImageData = errors.New("svg: image has no data")

// Image pairs decoded pixels with the original encoded bytes, when
// available. Keeping the encoded form lets file-loaded images embed
// without a lossy (and possibly larger) re-encode; images that only
// exist as pixels are re-encoded as PNG on demand.
type Image struct {
	src     image.Image
	encoded []byte
}

// NewImage wraps decoded pixels. Embedding re-encodes them as PNG.
func NewImage(src image.Image) *Image {
	return &Image{src: src}
}

// DecodeImage decodes PNG or JPEG bytes and keeps the encoded form for
// later embedding.
func DecodeImage(data []byte) (*Image, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("svg: decode image: %w", err)
	}
	encoded := make([]byte, len(data))
	copy(encoded, data)
	return &Image{src: src, encoded: encoded}, nil
}

// Width returns the pixel width of the image.
func (m *Image) Width() int {
	if m.src == nil {
		return 0
	}
	return m.src.Bounds().Dx()
}

// Height returns the pixel height of the image.
func (m *Image) Height() int {
	if m.src == nil {
		return 0
	}
	return m.src.Bounds().Dy()
}

// Bounds returns the pixel bounds as a Rect anchored at the origin.
func (m *Image) Bounds() Rect {
	return NewRect(0, 0, float64(m.Width()), float64(m.Height()))
}

// Source returns the decoded pixels, or nil.
func (m *Image) Source() image.Image {
	return m.src
}

// DataURI returns the image as a base64 data URI. Encoded bytes are
// embedded as-is when they sniff as PNG or JPEG; otherwise the decoded
// pixels are re-encoded as PNG.
func (m *Image) DataURI() (string, error) {
	if m == nil {
		return "", ErrNoImageData
	}
	if m.encoded != nil {
		uri, err := datauri.FromEncoded(m.encoded)
		if err == nil {
			return uri, nil
		}
	}
	if m.src == nil {
		return "", ErrNoImageData
	}
	return datauri.FromImage(m.src)
}
