package pose

import (
	"fmt"
	"image"
	"sort"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// RotationCache memoizes rotated, re-binarized copies of one silhouette, keyed by integer
// degrees mod 360.
//
// Each key is computed at most once: the lock is held while the rotator runs, so
// concurrent requests for the same angle wait for the first one instead of repeating it.
// Entries are never evicted and must not be modified by callers.
type RotationCache struct {
	mu        sync.Mutex
	src       *image.Gray
	rotator   Rotator
	threshold uint8
	rots      map[int]*image.Gray
}

// NewRotationCache creates an empty cache over a binarized source matrix.
func NewRotationCache(src *image.Gray, rotator Rotator, threshold uint8) *RotationCache {
	return &RotationCache{
		src:       src,
		rotator:   rotator,
		threshold: threshold,
		rots:      make(map[int]*image.Gray),
	}
}

// Get returns the silhouette rotated counter-clockwise by degrees and re-binarized.
// Degrees are reduced mod 360 first, so Get(370) and Get(10) share an entry.
//
// Returns an error only if the rotator fails; the failure is not cached.
func (c *RotationCache) Get(degrees int) (*image.Gray, error) {
	key := mod360(degrees)

	c.mu.Lock()
	defer c.mu.Unlock()

	if img, ok := c.rots[key]; ok {
		return img, nil
	}

	rotated, err := c.rotator.Rotate(c.src, key)
	if err != nil {
		return nil, fmt.Errorf("failed to rotate silhouette by %d degrees: %w", key, err)
	}
	img := Binarize(rotated, c.threshold)
	c.rots[key] = img
	return img, nil
}

// Has reports whether degrees (mod 360) is already cached.
func (c *RotationCache) Has(degrees int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.rots[mod360(degrees)]
	return ok
}

// Len returns the number of cached rotations.
func (c *RotationCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.rots)
}

// Source returns the unrotated, binarized silhouette.
func (c *RotationCache) Source() *image.Gray {
	return c.src
}

// copyOf returns a cache with its own map holding the same immutable entries.
func (c *RotationCache) copyOf() *RotationCache {
	c.mu.Lock()
	defer c.mu.Unlock()

	rots := make(map[int]*image.Gray, len(c.rots))
	for k, v := range c.rots {
		rots[k] = v
	}
	return &RotationCache{src: c.src, rotator: c.rotator, threshold: c.threshold, rots: rots}
}

// ProjectionCache memoizes per-row foreground counts of the rotations held by a
// RotationCache. A projection is only computed after its rotation exists.
type ProjectionCache struct {
	mu   sync.Mutex
	rots *RotationCache
	sums map[int][]float64
}

// NewProjectionCache creates an empty projection cache backed by rots.
func NewProjectionCache(rots *RotationCache) *ProjectionCache {
	return &ProjectionCache{
		rots: rots,
		sums: make(map[int][]float64),
	}
}

// Get returns the number of foreground pixels in each row of the silhouette rotated by
// degrees. The values are integral. Degrees are reduced mod 360.
func (c *ProjectionCache) Get(degrees int) ([]float64, error) {
	key := mod360(degrees)

	c.mu.Lock()
	defer c.mu.Unlock()

	if sums, ok := c.sums[key]; ok {
		return sums, nil
	}

	img, err := c.rots.Get(key)
	if err != nil {
		return nil, err
	}
	sums := RowProjection(img)
	c.sums[key] = sums
	return sums, nil
}

// Peak returns the largest element of the projection for degrees: the length, in
// pixels, of the longest foreground row.
func (c *ProjectionCache) Peak(degrees int) (float64, error) {
	sums, err := c.Get(degrees)
	if err != nil {
		return 0, err
	}
	return peak(sums), nil
}

// Angles returns the cached keys in ascending order.
func (c *ProjectionCache) Angles() []int {
	c.mu.Lock()
	defer c.mu.Unlock()

	angles := make([]int, 0, len(c.sums))
	for k := range c.sums {
		angles = append(angles, k)
	}
	sort.Ints(angles)
	return angles
}

// Len returns the number of cached projections.
func (c *ProjectionCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sums)
}

// copyOver returns a projection cache with its own map, backed by rots.
func (c *ProjectionCache) copyOver(rots *RotationCache) *ProjectionCache {
	c.mu.Lock()
	defer c.mu.Unlock()

	sums := make(map[int][]float64, len(c.sums))
	for k, v := range c.sums {
		sums[k] = v
	}
	return &ProjectionCache{rots: rots, sums: sums}
}

// RowProjection sums each row of a binarized matrix and divides by On, giving the
// foreground count per row.
func RowProjection(img *image.Gray) []float64 {
	b := img.Bounds()
	sums := make([]float64, b.Dy())
	for y := 0; y < b.Dy(); y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+b.Dx()]
		total := 0
		for _, v := range row {
			total += int(v)
		}
		sums[y] = float64(total / On)
	}
	return sums
}

// ColumnProjection is RowProjection along the other axis.
func ColumnProjection(img *image.Gray) []float64 {
	b := img.Bounds()
	sums := make([]float64, b.Dx())
	for y := 0; y < b.Dy(); y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+b.Dx()]
		for x, v := range row {
			sums[x] += float64(v)
		}
	}
	for x := range sums {
		sums[x] /= On
	}
	return sums
}

func peak(sums []float64) float64 {
	if len(sums) == 0 {
		return 0
	}
	return floats.Max(sums)
}
