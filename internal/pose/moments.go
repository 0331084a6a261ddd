package pose

import (
	"fmt"
	"image"
	"math"
	"math/big"
)

// Moments holds the raw and central moments of a binary silhouette up to second order.
//
// Coordinates are Cartesian: X is the column index and Y is the negated row index, so
// that a positive orientation is counter-clockwise on screen, matching the rotation sense
// of the caches.
type Moments struct {
	M00  int64   // foreground pixel count
	M10  int64   // sum of X
	M01  int64   // sum of Y
	Mu20 float64 // sum of (X - Xc)^2
	Mu02 float64 // sum of (Y - Yc)^2
	Mu11 float64 // sum of (X - Xc)(Y - Yc)

	// crossZero is the exact test mu11 == 0, computed in integer arithmetic so that
	// axis-aligned shapes are not hidden behind floating-point residue.
	crossZero bool
}

// ComputeMoments measures the second-order moments of the On pixels of img.
func ComputeMoments(img *image.Gray) Moments {
	b := img.Bounds()
	var m00, sx, sy, sxx, syy, sxy int64
	for row := 0; row < b.Dy(); row++ {
		line := img.Pix[row*img.Stride : row*img.Stride+b.Dx()]
		y := -int64(row)
		for col, v := range line {
			if v != On {
				continue
			}
			x := int64(col)
			m00++
			sx += x
			sy += y
			sxx += x * x
			syy += y * y
			sxy += x * y
		}
	}

	m := Moments{M00: m00, M10: sx, M01: sy, crossZero: true}
	if m00 == 0 {
		return m
	}

	n := float64(m00)
	m.Mu20 = float64(sxx) - float64(sx)*float64(sx)/n
	m.Mu02 = float64(syy) - float64(sy)*float64(sy)/n
	m.Mu11 = float64(sxy) - float64(sx)*float64(sy)/n

	// m00*mu11 = m00*sxy - sx*sy; the products can exceed int64 on large images.
	lhs := new(big.Int).Mul(big.NewInt(m00), big.NewInt(sxy))
	rhs := new(big.Int).Mul(big.NewInt(sx), big.NewInt(sy))
	m.crossZero = lhs.Cmp(rhs) == 0
	return m
}

// Orientation returns the closed-form axis angle in degrees, in (-90, 90]:
//
//	0.5 * atan2(2*mu11/m00, (mu20-mu02)/m00)
//
// The value is counter-clockwise from the +X axis and only defined modulo 180.
//
// Returns ErrUndefinedOrientation when the silhouette is empty or mu11 is exactly zero.
func (m Moments) Orientation() (float64, error) {
	if m.M00 == 0 {
		return 0, fmt.Errorf("%w: silhouette has no foreground pixels", ErrUndefinedOrientation)
	}
	if m.crossZero {
		return 0, fmt.Errorf("%w: cross moment mu11 is zero", ErrUndefinedOrientation)
	}
	n := float64(m.M00)
	rad := 0.5 * math.Atan2(2*m.Mu11/n, (m.Mu20-m.Mu02)/n)
	return rad * 180 / math.Pi, nil
}

// fastCandidates returns the four right-angle-spaced rotations tested by the fast path,
// in test order.
func fastCandidates(offset float64) [4]int {
	base := int(math.Round(-offset))
	var out [4]int
	for k := range out {
		out[k] = mod360(k*90 + base)
	}
	return out
}
