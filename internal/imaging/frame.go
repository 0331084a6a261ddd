package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultFillColor fills the corners a rotation uncovers.
const DefaultFillColor = "#000000"

// OrientFrame rotates a full-colour frame by the rotation of a pose result, so the subject
// faces left with its long axis horizontal, exactly as the silhouette of the same frame.
//
// Parameters:
//   - frame: The colour frame the silhouette was cut from.
//   - rotation: Counter-clockwise rotation in degrees, normally pose.Result.Rotation.
//   - fillHex: Colour of the uncovered corners as "#RRGGBB". Empty selects
//     DefaultFillColor.
//
// Returns:
//   - *image.NRGBA: The rotated frame on an expanded canvas.
//   - error: Non-nil if fillHex is not a valid colour.
func OrientFrame(frame image.Image, rotation int, fillHex string) (*image.NRGBA, error) {
	fill, err := ParseFillColor(fillHex)
	if err != nil {
		return nil, err
	}
	return imaging.Rotate(frame, float64(rotation), fill), nil
}

// ParseFillColor parses a "#RRGGBB" colour. The empty string selects DefaultFillColor.
func ParseFillColor(hex string) (color.Color, error) {
	if hex == "" {
		hex = DefaultFillColor
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("invalid fill color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// SameSize reports whether a silhouette and its frame have matching dimensions.
func SameSize(a, b image.Image) bool {
	return a.Bounds().Size() == b.Bounds().Size()
}
