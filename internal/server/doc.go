// Package server exposes silhouette pose estimation as an MCP (Model Context Protocol)
// server.
//
// # Protocol
//
// The server speaks JSON-RPC 2.0 over stdio, one request per line on stdin and one
// response per line on stdout. Supported methods: initialize, tools/list, tools/call and
// ping. notifications/initialized is accepted without a response.
//
// # Available Tools
//
//   - silhouette_load: Dimensions, format and foreground statistics of a silhouette
//   - pose_estimate: Orientation angle of a silhouette (full, fast or auto search)
//   - pose_oriented_silhouette: The silhouette rotated into the canonical pose, as PNG
//   - pose_orient_frame: The matching colour frame rotated into the canonical pose, as PNG
//   - pose_projection: Row profile and peak of a silhouette at one integer angle
//
// Angles are degrees, counter-clockwise as seen on screen. The canonical pose has the long
// axis horizontal with the heavier end on the left.
//
// # Image Caching
//
// Decoded files are cached by path for the lifetime of the process. Rotation and
// projection caches are not: every tool call builds a fresh pose.Estimator.
//
// # Error Handling
//
// Tool errors come back as JSON-RPC errors with code -32000 and the Go error string as
// data. A malformed tools/call params object gives -32602, an unknown method -32601.
//
// # Usage
//
//	cfg, err := config.Load()
//	...
//	opts, err := cfg.PoseOptions()
//	...
//	if err := server.New(opts).Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
