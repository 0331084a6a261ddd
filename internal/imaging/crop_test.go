package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"testing"
)

func TestEncodePNG(t *testing.T) {
	img := barSilhouette(30, 20, image.Rect(5, 5, 25, 10))

	result, err := EncodePNG(img)
	if err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}

	if result.Width != 30 || result.Height != 20 {
		t.Errorf("dimensions: got %dx%d, want 30x20", result.Width, result.Height)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", result.MimeType)
	}

	data, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to decode PNG: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds: got %v, want %v", decoded.Bounds(), img.Bounds())
	}
}

func TestForegroundBounds(t *testing.T) {
	tests := []struct {
		name string
		img  *image.Gray
		want image.Rectangle
	}{
		{"bar", barSilhouette(30, 20, image.Rect(5, 6, 25, 9)), image.Rect(5, 6, 25, 9)},
		{"single pixel", barSilhouette(10, 10, image.Rect(9, 0, 10, 1)), image.Rect(9, 0, 10, 1)},
		{"empty", image.NewGray(image.Rect(0, 0, 10, 10)), image.Rectangle{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ForegroundBounds(tt.img); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestForegroundBounds_OffsetImage(t *testing.T) {
	full := barSilhouette(20, 20, image.Rect(12, 12, 14, 15))
	sub := full.SubImage(image.Rect(10, 10, 20, 20)).(*image.Gray)

	if got, want := ForegroundBounds(sub), image.Rect(12, 12, 14, 15); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTrim(t *testing.T) {
	img := barSilhouette(100, 60, image.Rect(10, 20, 90, 30))

	trimmed := Trim(img, 0)
	if b := trimmed.Bounds(); b.Dx() != 80 || b.Dy() != 10 {
		t.Errorf("trimmed: got %dx%d, want 80x10", b.Dx(), b.Dy())
	}

	padded := Trim(img, 5)
	if b := padded.Bounds(); b.Dx() != 90 || b.Dy() != 20 {
		t.Errorf("padded: got %dx%d, want 90x20", b.Dx(), b.Dy())
	}

	// The margin is clamped to the image.
	clamped := Trim(img, 50)
	if b := clamped.Bounds(); b.Dx() != 100 || b.Dy() != 60 {
		t.Errorf("clamped: got %dx%d, want 100x60", b.Dx(), b.Dy())
	}
}

func TestTrim_Empty(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 7, 3))

	if got := Trim(img, 2); got != image.Image(img) {
		t.Error("Trim of an empty silhouette should return the input")
	}
}
