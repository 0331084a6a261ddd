package pose

import (
	"image"
	"math"
	"sync"
)

// shapeFunc reports whether the Cartesian point (u, v), measured from the canvas centre
// with v pointing up, lies inside a shape.
type shapeFunc func(u, v float64) bool

// render rasterizes a shape onto a w x h canvas as a binary silhouette.
func render(w, h int, inside shapeFunc) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	cx, cy := float64(w)/2, float64(h)/2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			u := float64(x) + 0.5 - cx
			v := cy - (float64(y) + 0.5)
			if inside(u, v) {
				img.Pix[y*img.Stride+x] = On
			}
		}
	}
	return img
}

// axisFrame converts (u, v) into coordinates along and across an axis at heading degrees.
func axisFrame(u, v, heading float64) (along, across float64) {
	sin, cos := math.Sincos(heading * math.Pi / 180)
	return u*cos + v*sin, -u*sin + v*cos
}

// ellipse is a filled ellipse with semi-axes a (major) and b, major axis at theta degrees.
func ellipse(w, h int, theta, a, b float64) *image.Gray {
	return render(w, h, func(u, v float64) bool {
		p, q := axisFrame(u, v, theta)
		return (p*p)/(a*a)+(q*q)/(b*b) <= 1
	})
}

// teardrop is a long thin ellipse with a disc on the end that points at heading degrees,
// so its heavier end faces heading.
func teardrop(w, h int, heading float64) *image.Gray {
	const a, b, d, r = 60.0, 8.0, 35.0, 14.0
	return render(w, h, func(u, v float64) bool {
		p, q := axisFrame(u, v, heading)
		if (p*p)/(a*a)+(q*q)/(b*b) <= 1 {
			return true
		}
		return (p-d)*(p-d)+q*q <= r*r
	})
}

// rectangle is an axis-aligned filled rectangle spanning [x0,x1) x [y0,y1) in pixels.
func rectangle(w, h, x0, y0, x1, y1 int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.Pix[y*img.Stride+x] = On
		}
	}
	return img
}

func circle(w, h int, r float64) *image.Gray {
	return render(w, h, func(u, v float64) bool { return u*u+v*v <= r*r })
}

// constantRotator returns the source unchanged for every angle.
type constantRotator struct{}

func (constantRotator) Rotate(src *image.Gray, _ int) (image.Image, error) {
	return src, nil
}

// countingRotator wraps a Rotator and records how often each angle is rotated.
type countingRotator struct {
	inner Rotator

	mu    sync.Mutex
	calls map[int]int
}

func newCountingRotator() *countingRotator {
	return &countingRotator{inner: ImagingRotator{}, calls: make(map[int]int)}
}

func (c *countingRotator) Rotate(src *image.Gray, degrees int) (image.Image, error) {
	c.mu.Lock()
	c.calls[degrees]++
	c.mu.Unlock()
	return c.inner.Rotate(src, degrees)
}

func (c *countingRotator) count(degrees int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[degrees]
}

func (c *countingRotator) total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, v := range c.calls {
		n += v
	}
	return n
}
