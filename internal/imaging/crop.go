package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// EncodedImage is a PNG image ready to be returned to an MCP client.
type EncodedImage struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// EncodePNG encodes img as base64 PNG.
func EncodePNG(img image.Image) (*EncodedImage, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	b := img.Bounds()
	return &EncodedImage{
		Width:       b.Dx(),
		Height:      b.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// ForegroundBounds returns the smallest rectangle holding every non-zero pixel of a
// binary silhouette, or an empty rectangle when there is none.
func ForegroundBounds(img *image.Gray) image.Rectangle {
	b := img.Bounds()
	box := image.Rectangle{}
	found := false
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[(y-b.Min.Y)*img.Stride:]
		for x := 0; x < b.Dx(); x++ {
			if row[x] == 0 {
				continue
			}
			p := image.Rect(b.Min.X+x, y, b.Min.X+x+1, y+1)
			if !found {
				box, found = p, true
				continue
			}
			box = box.Union(p)
		}
	}
	return box
}

// Trim crops a silhouette to its foreground bounding box plus margin pixels on every side,
// clamped to the image. A silhouette with no foreground is returned unchanged.
//
// Rotations expand the canvas, so trimming keeps oriented silhouettes compact.
func Trim(img *image.Gray, margin int) image.Image {
	box := ForegroundBounds(img)
	if box.Empty() {
		return img
	}
	if margin > 0 {
		box = box.Inset(-margin).Intersect(img.Bounds())
	}
	return imaging.Crop(img, box)
}
