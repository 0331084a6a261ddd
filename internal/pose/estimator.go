package pose

import (
	"errors"
	"fmt"
	"image"

	"github.com/ironsheep/silhouette-pose-mcp/internal/monitoring"
)

// Options tunes an Estimator. Start from DefaultOptions; New fills any zero Samples,
// Iterations, Threshold or Rotator with the defaults.
type Options struct {
	// Samples is the number of angles sampled per window in the full search.
	Samples int

	// Iterations is the number of coarse-to-fine rounds in the full search.
	Iterations int

	// OverscanSteps extends the first window past 180 degrees by this many initial steps,
	// so an axis close to 0/180 is also sampled from the far side of the wrap.
	OverscanSteps int

	// EdgeExclusion is the number of lowest and highest cached angles ignored when picking
	// the best projection.
	EdgeExclusion int

	// Threshold is the binarization cutoff applied on construction and after each rotation.
	Threshold uint8

	// MaxPixels rejects larger silhouettes at construction. Zero disables the check.
	MaxPixels int

	// Rotator performs the rotations. Defaults to ImagingRotator.
	Rotator Rotator
}

// DefaultOptions returns the standard tuning: 10 samples, 3 iterations (1 degree final
// resolution), one overscan step, one excluded entry at each edge, cutoff 128 and a
// 4 megapixel limit.
func DefaultOptions() Options {
	return Options{
		Samples:       10,
		Iterations:    3,
		OverscanSteps: 1,
		EdgeExclusion: 1,
		Threshold:     DefaultThreshold,
		MaxPixels:     1 << 22,
		Rotator:       ImagingRotator{},
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Samples <= 0 {
		o.Samples = def.Samples
	}
	if o.Iterations <= 0 {
		o.Iterations = def.Iterations
	}
	if o.OverscanSteps < 0 {
		o.OverscanSteps = 0
	}
	if o.EdgeExclusion < 0 {
		o.EdgeExclusion = 0
	}
	if o.Threshold == 0 {
		o.Threshold = def.Threshold
	}
	if o.Rotator == nil {
		o.Rotator = def.Rotator
	}
	return o
}

// Method selects a search strategy.
type Method int

const (
	// MethodUnset is the zero Method. A Result returned together with an error carries it.
	MethodUnset Method = iota
	// MethodFull is the coarse-to-fine projection search.
	MethodFull
	// MethodFast is the moment estimate refined with four projections.
	MethodFast
	// MethodAuto runs MethodFast and falls back to MethodFull on degenerate moments.
	MethodAuto
)

// String returns the wire name of the method.
func (m Method) String() string {
	switch m {
	case MethodUnset:
		return "unset"
	case MethodFull:
		return "full"
	case MethodFast:
		return "fast"
	case MethodAuto:
		return "auto"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// MarshalText encodes the method by name.
func (m Method) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// ParseMethod maps a wire name to a Method. The empty string selects MethodFull.
func ParseMethod(name string) (Method, error) {
	switch name {
	case "", "full":
		return MethodFull, nil
	case "fast":
		return MethodFast, nil
	case "auto":
		return MethodAuto, nil
	default:
		return MethodUnset, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
}

// Result is the outcome of one orientation search. It is only meaningful when the search
// returned a nil error; failed searches return the zero Result with MethodUnset.
type Result struct {
	// Angle is the reported orientation in [-180, 180): normalize(-Rotation).
	Angle int `json:"angle"`

	// Rotation turns the input into the canonical pose, in [0, 360).
	Rotation int `json:"rotation"`

	// Axis is the rotation found by the search before direction resolution. It aligns the
	// long axis horizontally and is only meaningful modulo 180.
	Axis int `json:"axis"`

	// Flipped reports that direction resolution added 180 degrees to Axis.
	Flipped bool `json:"flipped"`

	// Method is the strategy that produced the result.
	Method Method `json:"method"`

	// FellBack reports that MethodAuto had to use the full search.
	FellBack bool `json:"fell_back,omitempty"`
}

// Estimator finds the orientation of one silhouette. It owns its rotation and projection
// caches; create a new Estimator for every frame.
type Estimator struct {
	opts  Options
	rots  *RotationCache
	projs *ProjectionCache
}

// New binarizes src and prepares an Estimator with empty caches.
//
// Returns an error wrapping ErrArrayInit if src is nil or has no pixels, and additionally
// ErrSilhouetteTooLarge if it exceeds opts.MaxPixels.
func New(src image.Image, opts Options) (*Estimator, error) {
	opts = opts.withDefaults()
	if err := checkShape(src, opts.MaxPixels); err != nil {
		return nil, err
	}

	bin := Binarize(src, opts.Threshold)
	rots := NewRotationCache(bin, opts.Rotator, opts.Threshold)
	return &Estimator{
		opts:  opts,
		rots:  rots,
		projs: NewProjectionCache(rots),
	}, nil
}

// Options returns the effective options.
func (e *Estimator) Options() Options {
	return e.opts
}

// Silhouette returns the binarized input.
func (e *Estimator) Silhouette() *image.Gray {
	return e.rots.Source()
}

// Rotations exposes the rotation cache.
func (e *Estimator) Rotations() *RotationCache {
	return e.rots
}

// Projections exposes the projection cache.
func (e *Estimator) Projections() *ProjectionCache {
	return e.projs
}

// Rotation returns the silhouette rotated by degrees, from the cache.
func (e *Estimator) Rotation(degrees int) (*image.Gray, error) {
	return e.rots.Get(degrees)
}

// Projection returns the row projection at degrees, from the cache.
func (e *Estimator) Projection(degrees int) ([]float64, error) {
	return e.projs.Get(degrees)
}

// Oriented returns the silhouette in the canonical pose described by res.
func (e *Estimator) Oriented(res Result) (*image.Gray, error) {
	return e.rots.Get(res.Rotation)
}

// Run dispatches to the search selected by method.
func (e *Estimator) Run(method Method) (Result, error) {
	switch method {
	case MethodFull:
		return e.Estimate()
	case MethodFast:
		return e.EstimateFast()
	case MethodAuto:
		res, err := e.EstimateFast()
		if !errors.Is(err, ErrUndefinedOrientation) {
			return res, err
		}
		monitoring.Logf("pose: %v, falling back to full search", err)
		res, err = e.Estimate()
		if err != nil {
			return Result{}, err
		}
		res.FellBack = true
		return res, nil
	default:
		return Result{}, fmt.Errorf("%w: %v", ErrUnknownMethod, method)
	}
}

// CloneWithSharedCache returns an Estimator over the same silhouette that reads and fills
// the same caches as e.
func (e *Estimator) CloneWithSharedCache() *Estimator {
	return &Estimator{opts: e.opts, rots: e.rots, projs: e.projs}
}

// CloneWithIndependentCache returns an Estimator that starts with a snapshot of e's cache
// entries but fills its own caches from then on. Entries are immutable, so the snapshot
// shares them rather than copying pixels.
func (e *Estimator) CloneWithIndependentCache() *Estimator {
	rots := e.rots.copyOf()
	return &Estimator{opts: e.opts, rots: rots, projs: e.projs.copyOver(rots)}
}

// resolve applies direction resolution to an axis candidate and builds the Result.
func (e *Estimator) resolve(axis int, method Method) (Result, error) {
	img, err := e.rots.Get(axis)
	if err != nil {
		return Result{}, err
	}

	flipped := ResolveDirection(img)
	rotation := mod360(axis)
	if flipped {
		rotation = mod360(axis + 180)
	}

	return Result{
		Angle:    Normalize(-rotation),
		Rotation: rotation,
		Axis:     axis,
		Flipped:  flipped,
		Method:   method,
	}, nil
}
