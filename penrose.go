// Package penrose computes the 2D vertex geometry of Penrose P2 tile
// motifs (kites, darts and a regular decagon background) and composes
// them into rotationally symmetric "coin" patterns.
//
// The package only produces ordered vertex sequences; turning them into
// filled shapes is left to a renderer such as the raster and render
// sub-packages.
package penrose

import "errors"

// Errors reported for caller-supplied parameters which describe no valid
// tile. Both are returned wrapped; test with errors.Is.
var (
	// ErrInvalidGeometry indicates a degenerate tile: an acute angle
	// outside the open interval (0°, 180°), or a non-positive size where
	// a positive one is required.
	ErrInvalidGeometry = errors.New("invalid tile geometry")

	// ErrInconsistentParameters indicates that mutually exclusive sizing
	// parameters were supplied together.
	ErrInconsistentParameters = errors.New("inconsistent tile parameters")
)
