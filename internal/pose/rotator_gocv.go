//go:build gocv
// +build gocv

package pose

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"gocv.io/x/gocv"
)

// GoCVRotator rotates with OpenCV's affine warp. Only available when built with the gocv
// tag and an OpenCV installation.
type GoCVRotator struct{}

func init() {
	rotatorFactories["gocv"] = func() Rotator { return GoCVRotator{} }
}

// Rotate implements Rotator. The rotation matrix is shifted so the expanded canvas keeps
// the rotated image centred.
func (GoCVRotator) Rotate(src *image.Gray, degrees int) (image.Image, error) {
	mat, err := gocv.ImageGrayToMatGray(src)
	if err != nil {
		return nil, fmt.Errorf("failed to convert silhouette to Mat: %w", err)
	}
	defer mat.Close()

	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	dstW, dstH := expandedSize(w, h, degrees)

	m := gocv.GetRotationMatrix2D(image.Pt(w/2, h/2), float64(degrees), 1.0)
	defer m.Close()
	m.SetDoubleAt(0, 2, m.GetDoubleAt(0, 2)+float64(dstW-w)/2)
	m.SetDoubleAt(1, 2, m.GetDoubleAt(1, 2)+float64(dstH-h)/2)

	dst := gocv.NewMat()
	defer dst.Close()
	gocv.WarpAffineWithParams(mat, &dst, m, image.Pt(dstW, dstH),
		gocv.InterpolationLinear, gocv.BorderConstant, color.RGBA{})

	out, err := dst.ToImage()
	if err != nil {
		return nil, fmt.Errorf("failed to convert rotated Mat: %w", err)
	}
	return out, nil
}

// expandedSize returns the canvas needed to hold a w x h image rotated by degrees.
func expandedSize(w, h, degrees int) (int, int) {
	sin, cos := math.Sincos(math.Pi * float64(degrees) / 180)
	sin, cos = math.Abs(sin), math.Abs(cos)
	fw, fh := float64(w), float64(h)
	return int(math.Ceil(fw*cos + fh*sin - 1e-9)), int(math.Ceil(fw*sin + fh*cos - 1e-9))
}
