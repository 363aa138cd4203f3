// Package datauri encodes images as base64 data URIs for inline
// embedding in markup.
package datauri

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"
)

// Media-type prefixes for supported encodings.
const (
	pngPrefix  = "data:image/png;base64,"
	jpegPrefix = "data:image/jpeg;base64,"
)

// ErrUnknownFormat is returned by FromEncoded when the byte payload is
// neither PNG nor JPEG.
var ErrUnknownFormat = errors.New("datauri: unrecognized image format")

// pngMagic is the 8-byte PNG file signature.
var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// IsPNG reports whether data starts with the PNG signature.
func IsPNG(data []byte) bool {
	return bytes.HasPrefix(data, pngMagic)
}

// IsJPEG reports whether data starts with a JPEG SOI marker.
func IsJPEG(data []byte) bool {
	return len(data) >= 3 && data[0] == 0xff && data[1] == 0xd8 && data[2] == 0xff
}

// FromEncoded builds a data URI from already-encoded image bytes,
// selecting the media type by sniffing the PNG/JPEG magic bytes.
// Unrecognized payloads return ErrUnknownFormat; callers holding the
// decoded pixels should fall back to FromImage.
func FromEncoded(data []byte) (string, error) {
	switch {
	case IsJPEG(data):
		return jpegPrefix + base64.StdEncoding.EncodeToString(data), nil
	case IsPNG(data):
		return pngPrefix + base64.StdEncoding.EncodeToString(data), nil
	default:
		return "", ErrUnknownFormat
	}
}

// FromImage encodes the image as PNG and builds a data URI from it.
func FromImage(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("datauri: encode png: %w", err)
	}
	return pngPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
