package datauri

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/png"
	"strings"
	"testing"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func TestSniffing(t *testing.T) {
	jpeg := []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10, 'J', 'F', 'I', 'F'}

	tests := []struct {
		name     string
		data     []byte
		png, jpg bool
	}{
		{"png", pngBytes(t), true, false},
		{"jpeg", jpeg, false, true},
		{"text", []byte("not an image"), false, false},
		{"empty", nil, false, false},
		{"truncated png magic", []byte{0x89, 'P', 'N'}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPNG(tt.data); got != tt.png {
				t.Errorf("IsPNG() = %v, want %v", got, tt.png)
			}
			if got := IsJPEG(tt.data); got != tt.jpg {
				t.Errorf("IsJPEG() = %v, want %v", got, tt.jpg)
			}
		})
	}
}

func TestFromEncoded(t *testing.T) {
	t.Run("png", func(t *testing.T) {
		data := pngBytes(t)
		uri, err := FromEncoded(data)
		if err != nil {
			t.Fatalf("FromEncoded() error = %v", err)
		}
		if !strings.HasPrefix(uri, "data:image/png;base64,") {
			t.Errorf("uri prefix = %q", uri[:min(len(uri), 30)])
		}
		payload := strings.TrimPrefix(uri, "data:image/png;base64,")
		decoded, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			t.Fatalf("payload is not valid base64: %v", err)
		}
		if !bytes.Equal(decoded, data) {
			t.Error("payload does not round-trip to the input bytes")
		}
	})

	t.Run("jpeg", func(t *testing.T) {
		uri, err := FromEncoded([]byte{0xff, 0xd8, 0xff, 0xdb})
		if err != nil {
			t.Fatalf("FromEncoded() error = %v", err)
		}
		if !strings.HasPrefix(uri, "data:image/jpeg;base64,") {
			t.Errorf("uri = %q", uri)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := FromEncoded([]byte("plain text"))
		if !errors.Is(err, ErrUnknownFormat) {
			t.Errorf("error = %v, want ErrUnknownFormat", err)
		}
	})
}

func TestFromImage(t *testing.T) {
	uri, err := FromImage(image.NewRGBA(image.Rect(0, 0, 3, 3)))
	if err != nil {
		t.Fatalf("FromImage() error = %v", err)
	}
	if !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Errorf("uri prefix = %q", uri[:min(len(uri), 30)])
	}
	payload := strings.TrimPrefix(uri, "data:image/png;base64,")
	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		t.Fatalf("payload is not valid base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(decoded))
	if err != nil {
		t.Fatalf("payload is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 3 {
		t.Errorf("decoded bounds = %v, want 3x3", b)
	}
}
