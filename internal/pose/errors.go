package pose

import "errors"

var (
	// ErrArrayInit reports an input that is not a well-formed, non-empty 2-D matrix.
	ErrArrayInit = errors.New("silhouette is not a well-formed 2-D matrix")

	// ErrSilhouetteTooLarge reports an input above Options.MaxPixels. It is always
	// returned wrapped together with ErrArrayInit.
	ErrSilhouetteTooLarge = errors.New("silhouette exceeds the pixel limit")

	// ErrInvalidAngle reports a rotation or projection request for a non-integer angle.
	ErrInvalidAngle = errors.New("only integer angles are supported")

	// ErrUndefinedOrientation reports degenerate second moments; callers should fall back
	// to the full search.
	ErrUndefinedOrientation = errors.New("moment orientation is undefined")

	// ErrUnknownMethod reports an unrecognised search method name.
	ErrUnknownMethod = errors.New("unknown search method")

	// ErrUnknownRotator reports an unrecognised rotator backend name.
	ErrUnknownRotator = errors.New("unknown rotator")
)
