// Package geom holds the small parametric geometry the scene builders
// produce: closed 2D profiles and indexed triangle meshes.
//
// Coordinates are float32 to match what renderers upload. Profiles keep the
// outer loop counter-clockwise and hole loops clockwise.
package geom
