package pose

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/anthonynsimon/bild/segment"
)

const (
	// On is the value of a foreground pixel in a binarized silhouette.
	On = 255

	// DefaultThreshold is the binarization cutoff: the midpoint of the 8-bit range.
	DefaultThreshold = 128
)

// FromRows builds a grayscale matrix from raw rows of 8-bit values.
//
// Every row must have the same, non-zero length. The values are copied as-is; the
// Estimator binarizes them on construction.
//
// Returns ErrArrayInit for an empty or ragged matrix.
func FromRows(rows [][]uint8) (*image.Gray, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrArrayInit)
	}
	width := len(rows[0])
	if width == 0 {
		return nil, fmt.Errorf("%w: row 0 is empty", ErrArrayInit)
	}
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrArrayInit, i, len(row), width)
		}
	}

	img := image.NewGray(image.Rect(0, 0, width, len(rows)))
	for y, row := range rows {
		copy(img.Pix[y*img.Stride:y*img.Stride+width], row)
	}
	return img, nil
}

// Binarize flattens img to an 8-bit luminance matrix anchored at the origin and thresholds
// it: pixels with luminance >= threshold become On, everything else 0.
//
// Transparent pixels count as black, so a PNG with a transparent background yields an
// empty background rather than a foreground one.
func Binarize(img image.Image, threshold uint8) *image.Gray {
	return segment.Threshold(flatten(img), threshold)
}

// flatten copies img into a zero-origin *image.Gray using the standard luminance model.
func flatten(img image.Image) *image.Gray {
	b := img.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// ForegroundPixels counts the On pixels of a binarized matrix.
func ForegroundPixels(img *image.Gray) int {
	n := 0
	for _, v := range img.Pix {
		if v == On {
			n++
		}
	}
	return n
}

// WithinLimit reports whether a silhouette with bounds b passes a MaxPixels limit. A
// limit of zero or less accepts everything.
func WithinLimit(b image.Rectangle, maxPixels int) bool {
	return maxPixels <= 0 || b.Dx()*b.Dy() <= maxPixels
}

// checkShape validates the dimensions of a candidate silhouette.
func checkShape(img image.Image, maxPixels int) error {
	if img == nil {
		return fmt.Errorf("%w: nil image", ErrArrayInit)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return fmt.Errorf("%w: image is %dx%d", ErrArrayInit, b.Dx(), b.Dy())
	}
	if !WithinLimit(b, maxPixels) {
		return fmt.Errorf("%w: %w: %dx%d is above %d pixels",
			ErrArrayInit, ErrSilhouetteTooLarge, b.Dx(), b.Dy(), maxPixels)
	}
	return nil
}
