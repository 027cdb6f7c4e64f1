// cube.go - flat vertex array builders for the demo driver

// Package mesh builds flat, tightly packed vertex arrays in the layout
// raster.Context.SetVertexPointer expects (3 components per vertex,
// triangle list). It is a convenience for cmd/rasterdemo, not a model
// loader: callers who already have vertex data in this layout have no
// reason to go through it.
package mesh

import "github.com/intuitionamiga/fixedraster"

// Cube returns 12 triangles (36 vertices, 108 Fixed components) for an
// axis-aligned box of the given half-extents, one triangle pair per face,
// wound so every face is front-facing under raster's y-down, negative-area
// convention when viewed from outside the box.
func Cube(xRadius, yRadius, zRadius raster.Fixed) []raster.Fixed {
	nx, ny, nz := xRadius.Neg(), yRadius.Neg(), zRadius.Neg()

	return []raster.Fixed{
		// Front face (+Z)
		nx, ny, zRadius,
		xRadius, ny, zRadius,
		xRadius, yRadius, zRadius,
		nx, ny, zRadius,
		xRadius, yRadius, zRadius,
		nx, yRadius, zRadius,

		// Back face (-Z)
		xRadius, ny, nz,
		nx, ny, nz,
		nx, yRadius, nz,
		xRadius, ny, nz,
		nx, yRadius, nz,
		xRadius, yRadius, nz,

		// Left face (-X)
		nx, ny, nz,
		nx, ny, zRadius,
		nx, yRadius, zRadius,
		nx, ny, nz,
		nx, yRadius, zRadius,
		nx, yRadius, nz,

		// Right face (+X)
		xRadius, ny, zRadius,
		xRadius, ny, nz,
		xRadius, yRadius, nz,
		xRadius, ny, zRadius,
		xRadius, yRadius, nz,
		xRadius, yRadius, zRadius,

		// Top face (+Y)
		nx, yRadius, zRadius,
		xRadius, yRadius, zRadius,
		xRadius, yRadius, nz,
		nx, yRadius, zRadius,
		xRadius, yRadius, nz,
		nx, yRadius, nz,

		// Bottom face (-Y)
		nx, ny, nz,
		xRadius, ny, nz,
		xRadius, ny, zRadius,
		nx, ny, nz,
		xRadius, ny, zRadius,
		nx, ny, zRadius,
	}
}

// FaceColors returns one 5-5-5 color per triangle (12 entries) for Cube's
// output, two matching entries per face so a caller can SetColorPointer
// a visually distinct color for each of the cube's six faces.
func FaceColors(front, back, left, right, top, bottom uint16) []uint16 {
	return []uint16{
		front, front,
		back, back,
		left, left,
		right, right,
		top, top,
		bottom, bottom,
	}
}

// Plane returns a single two-triangle quad in the XY plane at z=0, useful
// as a minimal smoke-test mesh for a new host backend.
func Plane(xRadius, yRadius raster.Fixed) []raster.Fixed {
	nx, ny := xRadius.Neg(), yRadius.Neg()
	return []raster.Fixed{
		nx, ny, 0,
		xRadius, ny, 0,
		xRadius, yRadius, 0,
		nx, ny, 0,
		xRadius, yRadius, 0,
		nx, yRadius, 0,
	}
}
