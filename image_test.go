package svg

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/png"
	"strings"
	"testing"
)

func TestImageDataURIFromPixels(t *testing.T) {
	img := NewImage(image.NewRGBA(image.Rect(0, 0, 4, 2)))
	if img.Width() != 4 || img.Height() != 2 {
		t.Fatalf("size = %dx%d, want 4x2", img.Width(), img.Height())
	}
	uri, err := img.DataURI()
	if err != nil {
		t.Fatalf("DataURI() error = %v", err)
	}
	if !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Errorf("uri does not carry a PNG payload: %q", uri[:min(len(uri), 30)])
	}
}

func TestImageDataURIKeepsEncodedBytes(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	img, err := DecodeImage(buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeImage() error = %v", err)
	}
	uri, err := img.DataURI()
	if err != nil {
		t.Fatalf("DataURI() error = %v", err)
	}
	// A file-loaded image keeps its original compressed bytes.
	wantPayload := "base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
	if !strings.HasSuffix(uri, wantPayload) {
		t.Error("data URI does not reuse the original encoded bytes")
	}
}

func TestDecodeImageInvalid(t *testing.T) {
	if _, err := DecodeImage([]byte("not an image")); err == nil {
		t.Error("DecodeImage accepted invalid data")
	}
}

func TestImageDataURIEmpty(t *testing.T) {
	var img Image
	if _, err := img.DataURI(); !errors.Is(err, ErrNoImageData) {
		t.Errorf("error = %v, want ErrNoImageData", err)
	}
}
