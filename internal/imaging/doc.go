// Package imaging loads silhouettes and frames from disk and prepares pose output for the
// MCP server.
//
// Images are decoded once per path through ImageCache. Silhouettes go to the pose package
// for estimation; this package only deals with files and pixels around it:
//   - LoadSilhouetteInfo reports what the estimator will see after binarization.
//   - Trim crops an oriented silhouette to its foreground.
//   - OrientFrame turns the colour frame into the same canonical pose as its silhouette.
//   - EncodePNG packages any result as base64 PNG.
//
// # Coordinate System
//
// (0,0) is the top-left pixel, X grows rightward and Y downward. Rectangles are
// half-open: Min is inclusive, Max exclusive. Rotation angles are counter-clockwise as
// seen on screen, matching the pose package.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Cached images are shared between callers and
// must not be modified.
package imaging
