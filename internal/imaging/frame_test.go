package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestParseFillColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"", color.NRGBA{0, 0, 0, 255}, false},
		{"#FF8000", color.NRGBA{255, 128, 0, 255}, false},
		{"#00ff00", color.NRGBA{0, 255, 0, 255}, false},
		{"green", color.NRGBA{}, true},
		{"#12", color.NRGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFillColor(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseFillColor(%q) should fail", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFillColor(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOrientFrame_QuarterTurn(t *testing.T) {
	// Red left half, blue right half. A quarter turn counter-clockwise puts red at the
	// bottom.
	frame := image.NewNRGBA(image.Rect(0, 0, 40, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			c := color.NRGBA{255, 0, 0, 255}
			if x >= 20 {
				c = color.NRGBA{0, 0, 255, 255}
			}
			frame.SetNRGBA(x, y, c)
		}
	}

	out, err := OrientFrame(frame, 90, "")
	if err != nil {
		t.Fatalf("OrientFrame failed: %v", err)
	}

	if b := out.Bounds(); b.Dx() != 20 || b.Dy() != 40 {
		t.Fatalf("dimensions: got %dx%d, want 20x40", b.Dx(), b.Dy())
	}
	if got := out.NRGBAAt(10, 35); got.R != 255 || got.B != 0 {
		t.Errorf("bottom should be red, got %v", got)
	}
	if got := out.NRGBAAt(10, 5); got.B != 255 || got.R != 0 {
		t.Errorf("top should be blue, got %v", got)
	}
}

func TestOrientFrame_FillsCorners(t *testing.T) {
	frame := image.NewNRGBA(image.Rect(0, 0, 40, 40))
	for i := range frame.Pix {
		frame.Pix[i] = 255
	}

	out, err := OrientFrame(frame, 45, "#00FF00")
	if err != nil {
		t.Fatalf("OrientFrame failed: %v", err)
	}

	if !out.Bounds().In(image.Rect(0, 0, 60, 60)) || out.Bounds().Dx() <= 40 {
		t.Fatalf("unexpected canvas %v for a 45 degree turn", out.Bounds())
	}
	if got := out.NRGBAAt(0, 0); got != (color.NRGBA{0, 255, 0, 255}) {
		t.Errorf("corner: got %v, want green fill", got)
	}
}

func TestOrientFrame_BadFill(t *testing.T) {
	frame := image.NewNRGBA(image.Rect(0, 0, 4, 4))

	if _, err := OrientFrame(frame, 10, "not-a-colour"); err == nil {
		t.Error("OrientFrame should reject an invalid fill colour")
	}
}

func TestSameSize(t *testing.T) {
	a := image.NewGray(image.Rect(0, 0, 10, 5))
	b := image.NewNRGBA(image.Rect(3, 3, 13, 8))
	c := image.NewNRGBA(image.Rect(0, 0, 5, 10))

	if !SameSize(a, b) {
		t.Error("10x5 images should match")
	}
	if SameSize(a, c) {
		t.Error("10x5 and 5x10 should not match")
	}
}
