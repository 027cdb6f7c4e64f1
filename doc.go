// doc.go - package overview

// Package raster implements a fixed-function 3D software rasterizer for
// targets without floating-point hardware or a GPU. It transforms,
// homogeneously clips, perspective-divides, viewport-maps, back-face
// culls, and scan-converts triangles, lines and points into a caller's
// framebuffer using only 32-bit integer (Q16.16 fixed-point) math.
//
// The package never allocates once a Context is constructed, never
// returns an error, and never touches a goroutine: DrawArray runs to
// completion synchronously before returning.
package raster
