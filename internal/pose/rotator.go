package pose

import (
	"fmt"
	"image"
	"image/color"
	"sort"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"
)

// Rotator rotates a silhouette counter-clockwise by an integer number of degrees about its
// centre. Implementations must expand the canvas so no foreground is clipped and fill the
// uncovered area with black (or transparent). The result does not need to be binary; the
// RotationCache re-binarizes it.
type Rotator interface {
	Rotate(src *image.Gray, degrees int) (image.Image, error)
}

// ImagingRotator rotates with github.com/disintegration/imaging. It is the default backend.
type ImagingRotator struct{}

// Rotate implements Rotator. Multiples of 90 degrees are exact pixel permutations.
func (ImagingRotator) Rotate(src *image.Gray, degrees int) (image.Image, error) {
	return imaging.Rotate(src, float64(degrees), color.Black), nil
}

// BildRotator rotates with github.com/anthonynsimon/bild. bild rotates clockwise, so the
// angle is negated.
type BildRotator struct{}

// Rotate implements Rotator.
func (BildRotator) Rotate(src *image.Gray, degrees int) (image.Image, error) {
	return transform.Rotate(src, -float64(degrees), &transform.RotationOptions{ResizeBounds: true}), nil
}

// rotatorFactories maps configuration names to backends. Build-tagged files may add more.
var rotatorFactories = map[string]func() Rotator{
	"imaging": func() Rotator { return ImagingRotator{} },
	"bild":    func() Rotator { return BildRotator{} },
}

// RotatorByName returns the rotator registered under name. The empty name selects the
// default imaging backend.
func RotatorByName(name string) (Rotator, error) {
	if name == "" {
		return ImagingRotator{}, nil
	}
	factory, ok := rotatorFactories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownRotator, name, RotatorNames())
	}
	return factory(), nil
}

// RotatorNames lists the registered rotator names in sorted order.
func RotatorNames() []string {
	names := make([]string, 0, len(rotatorFactories))
	for name := range rotatorFactories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
