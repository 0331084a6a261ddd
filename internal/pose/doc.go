// Package pose estimates the long axis and facing direction of a binary silhouette.
//
// An Estimator is built from one segmented silhouette. It rotates the silhouette through
// integer angles, projects each rotation onto its rows and looks for the rotation whose
// longest row is longest: that rotation lays the object's long axis horizontal. A second
// step decides which end of the axis is the head by comparing pixel mass on either side of
// the vertical midline.
//
// # Angle Conventions
//
// Rotations are counter-clockwise as seen on screen (X right, Y down), about the image
// centre, with the canvas expanded so nothing is clipped. Angles are integers:
//   - Rotation: the rotation that carries the input into the canonical pose, in [0, 360)
//   - Angle: the reported orientation, normalize(-Rotation), in [-180, 180)
//
// The canonical pose has the long axis horizontal and the heavier end on the left. An
// Angle of 0 means the input already is in the canonical pose; in general the heavier end
// of the object points at Angle+180 degrees, counter-clockwise from the +X axis.
//
// # Search Methods
//
// Three methods are available through the Method type:
//   - MethodFull: coarse-to-fine projection search over [0, 180+overscan)
//   - MethodFast: closed-form second-moment estimate, refined with 4 projections
//   - MethodAuto: MethodFast, falling back to MethodFull when the moments are degenerate
//
// The fast path tests only four angles and is expected to disagree with the full search
// by a few degrees on noisy silhouettes.
//
// # Caching
//
// Every Estimator owns a RotationCache and a ProjectionCache keyed by degrees mod 360.
// Each entry is computed at most once and never evicted; a search touches a few dozen
// angles, so memory stays bounded by the image size times that count. Use MaxPixels to
// reject very large inputs before any rotation work is done.
//
// # Binarization
//
// Silhouettes are binarized on construction and again after every rotation, since
// interpolation introduces grey edge pixels. A pixel is on (255) when its luminance is at
// least Options.Threshold, otherwise off (0).
package pose
