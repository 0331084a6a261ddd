package pose

import (
	"image"

	"gonum.org/v1/gonum/floats"
)

// HalfMasses returns the foreground pixel counts left and right of the vertical midline.
// The midline is column width/2; the left half is [0, mid) and the right half [mid, width),
// so for odd widths the centre column belongs to the right half.
func HalfMasses(img *image.Gray) (left, right float64) {
	cols := ColumnProjection(img)
	mid := len(cols) / 2
	return floats.Sum(cols[:mid]), floats.Sum(cols[mid:])
}

// ResolveDirection decides whether a silhouette whose long axis is already horizontal
// faces the wrong way and must be turned by 180 degrees.
//
// The heavier end is taken to be the head, and the canonical pose puts the head on the
// left, so the answer is true when the left half holds strictly less mass than the right.
// Equal halves never flip. This is a mass-concentration heuristic: near-symmetric shapes
// can be called either way, and the result is still a valid orientation.
func ResolveDirection(rotated *image.Gray) bool {
	left, right := HalfMasses(rotated)
	return left < right
}
